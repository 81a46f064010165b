package services

import (
	"strings"
	"time"

	"clinicadmin_go/models"
)

// DoctorBookingBuckets partitions doctor bookings for the dashboard tabs.
type DoctorBookingBuckets struct {
	Completed []models.DoctorBooking `json:"completed"`
	Upcoming  []models.DoctorBooking `json:"upcoming"`
	Canceled  []models.DoctorBooking `json:"canceled"`
}

// ServiceBookingBuckets partitions service bookings for the dashboard tabs.
type ServiceBookingBuckets struct {
	Completed []models.ServiceBooking `json:"completed"`
	Upcoming  []models.ServiceBooking `json:"upcoming"`
	Canceled  []models.ServiceBooking `json:"canceled"`
}

// ClassifyDoctorBookings partitions doctor bookings into completed, upcoming
// and canceled buckets.
//
// Doctor bookings carry a grace rule: a SCHEDULED booking whose date has
// passed counts as completed even without an explicit status change. Service
// bookings do not get this rule; keep the two classifiers separate.
func ClassifyDoctorBookings(bookings []models.DoctorBooking, now time.Time) DoctorBookingBuckets {
	var buckets DoctorBookingBuckets
	for _, b := range bookings {
		switch {
		case b.BookingStatus == models.BookingCanceled:
			buckets.Canceled = append(buckets.Canceled, b)
		case b.BookingStatus == models.BookingCompleted || b.BookingDate.Before(now):
			buckets.Completed = append(buckets.Completed, b)
		case b.BookingDate.After(now):
			buckets.Upcoming = append(buckets.Upcoming, b)
		}
		// Anything matching none of the predicates is dropped, never duplicated.
	}
	return buckets
}

// ClassifyServiceBookings partitions service bookings purely by their
// explicit status field. No date-based inference.
func ClassifyServiceBookings(bookings []models.ServiceBooking) ServiceBookingBuckets {
	var buckets ServiceBookingBuckets
	for _, b := range bookings {
		switch b.BookingStatus {
		case models.BookingCompleted:
			buckets.Completed = append(buckets.Completed, b)
		case models.BookingScheduled:
			buckets.Upcoming = append(buckets.Upcoming, b)
		case models.BookingCanceled:
			buckets.Canceled = append(buckets.Canceled, b)
		}
	}
	return buckets
}

// BookingFilter narrows a booking list. Every clause is a no-op when its
// field is unset; clauses combine with AND.
type BookingFilter struct {
	Search   string     // case-insensitive substring over customer fields and resource name
	BranchID uint       // 0 means "all"
	Status   string     // exact booking status, "" means "all"
	DateFrom *time.Time // inclusive, date-only
	DateTo   *time.Time // inclusive, date-only
}

// FilterDoctorBookings applies the filter to doctor bookings.
func FilterDoctorBookings(bookings []models.DoctorBooking, f BookingFilter) []models.DoctorBooking {
	out := make([]models.DoctorBooking, 0, len(bookings))
	for _, b := range bookings {
		if !matchesSearch(f.Search, b.CustomerName, b.CustomerEmail, b.CustomerPhone, b.DoctorNameEn) {
			continue
		}
		if f.BranchID != 0 && b.BranchID != f.BranchID {
			continue
		}
		if f.Status != "" && b.BookingStatus != f.Status {
			continue
		}
		if !withinDateRange(b.BookingDate, f.DateFrom, f.DateTo) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// FilterServiceBookings applies the filter to service bookings.
func FilterServiceBookings(bookings []models.ServiceBooking, f BookingFilter) []models.ServiceBooking {
	out := make([]models.ServiceBooking, 0, len(bookings))
	for _, b := range bookings {
		if !matchesSearch(f.Search, b.CustomerName, b.CustomerEmail, b.CustomerPhone, b.ServiceNameEn) {
			continue
		}
		if f.BranchID != 0 && b.BranchID != f.BranchID {
			continue
		}
		if f.Status != "" && b.BookingStatus != f.Status {
			continue
		}
		if !withinDateRange(b.BookingDate, f.DateFrom, f.DateTo) {
			continue
		}
		out = append(out, b)
	}
	return out
}

func matchesSearch(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// withinDateRange compares dates only; time-of-day is ignored and both
// bounds are inclusive.
func withinDateRange(bookingDate time.Time, from, to *time.Time) bool {
	day := truncateToDay(bookingDate)
	if from != nil && day.Before(truncateToDay(*from)) {
		return false
	}
	if to != nil && day.After(truncateToDay(*to)) {
		return false
	}
	return true
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
