package services

import (
	"testing"
	"time"

	"clinicadmin_go/models"
)

var classifyNow = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func doctorBooking(id uint, status string, date time.Time) models.DoctorBooking {
	return models.DoctorBooking{
		BaseModel:     models.BaseModel{ID: id},
		BookingStatus: status,
		BookingDate:   date,
	}
}

func serviceBooking(id uint, status string, date time.Time) models.ServiceBooking {
	return models.ServiceBooking{
		BaseModel:     models.BaseModel{ID: id},
		BookingStatus: status,
		BookingDate:   date,
	}
}

func TestClassifyDoctorBookings(t *testing.T) {
	past := classifyNow.Add(-48 * time.Hour)
	future := classifyNow.Add(48 * time.Hour)

	bookings := []models.DoctorBooking{
		doctorBooking(1, models.BookingScheduled, future),
		doctorBooking(2, models.BookingScheduled, past), // grace rule: past counts as completed
		doctorBooking(3, models.BookingCompleted, past),
		doctorBooking(4, models.BookingCanceled, future),
	}

	buckets := ClassifyDoctorBookings(bookings, classifyNow)

	if len(buckets.Upcoming) != 1 || buckets.Upcoming[0].ID != 1 {
		t.Fatalf("upcoming = %+v, want booking 1", buckets.Upcoming)
	}
	if len(buckets.Completed) != 2 || buckets.Completed[0].ID != 2 || buckets.Completed[1].ID != 3 {
		t.Fatalf("completed = %+v, want bookings 2 and 3", buckets.Completed)
	}
	if len(buckets.Canceled) != 1 || buckets.Canceled[0].ID != 4 {
		t.Fatalf("canceled = %+v, want booking 4", buckets.Canceled)
	}
}

func TestClassifyDoctorBookingsMutuallyExclusive(t *testing.T) {
	// A canceled booking with a past date must land only in canceled.
	bookings := []models.DoctorBooking{
		doctorBooking(1, models.BookingCanceled, classifyNow.Add(-time.Hour)),
	}
	buckets := ClassifyDoctorBookings(bookings, classifyNow)
	total := len(buckets.Completed) + len(buckets.Upcoming) + len(buckets.Canceled)
	if total != 1 || len(buckets.Canceled) != 1 {
		t.Fatalf("booking appears %d times, want once in canceled", total)
	}
}

func TestClassifyServiceBookingsIgnoresDate(t *testing.T) {
	past := classifyNow.Add(-48 * time.Hour)
	future := classifyNow.Add(48 * time.Hour)

	bookings := []models.ServiceBooking{
		serviceBooking(1, models.BookingScheduled, past), // stays upcoming despite past date
		serviceBooking(2, models.BookingScheduled, future),
		serviceBooking(3, models.BookingCompleted, future),
		serviceBooking(4, models.BookingCanceled, past),
	}

	buckets := ClassifyServiceBookings(bookings)

	if len(buckets.Upcoming) != 2 {
		t.Fatalf("upcoming = %+v, want bookings 1 and 2", buckets.Upcoming)
	}
	if len(buckets.Completed) != 1 || buckets.Completed[0].ID != 3 {
		t.Fatalf("completed = %+v, want booking 3", buckets.Completed)
	}
	if len(buckets.Canceled) != 1 || buckets.Canceled[0].ID != 4 {
		t.Fatalf("canceled = %+v, want booking 4", buckets.Canceled)
	}
}

func TestFilterDoctorBookingsSearch(t *testing.T) {
	bookings := []models.DoctorBooking{
		{BaseModel: models.BaseModel{ID: 1}, CustomerName: "Jane Doe", BookingDate: classifyNow},
		{BaseModel: models.BaseModel{ID: 2}, CustomerName: "John Roe", BookingDate: classifyNow},
	}

	got := FilterDoctorBookings(bookings, BookingFilter{Search: "jane"})
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("search 'jane' returned %+v, want booking 1 only", got)
	}
}

func TestFilterDoctorBookingsByDoctorName(t *testing.T) {
	bookings := []models.DoctorBooking{
		{BaseModel: models.BaseModel{ID: 1}, DoctorNameEn: "Dr. Sarah Ahmed", BookingDate: classifyNow},
		{BaseModel: models.BaseModel{ID: 2}, DoctorNameEn: "Dr. Omar Khan", BookingDate: classifyNow},
	}

	got := FilterDoctorBookings(bookings, BookingFilter{Search: "SARAH"})
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("search over doctor name returned %+v, want booking 1 only", got)
	}
}

func TestFilterBookingsBranchAndDateRange(t *testing.T) {
	mar1 := time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC)
	mar15 := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)
	apr1 := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	bookings := []models.ServiceBooking{
		{BaseModel: models.BaseModel{ID: 1}, BranchID: 1, BookingDate: mar1},
		{BaseModel: models.BaseModel{ID: 2}, BranchID: 1, BookingDate: mar15},
		{BaseModel: models.BaseModel{ID: 3}, BranchID: 2, BookingDate: mar15},
		{BaseModel: models.BaseModel{ID: 4}, BranchID: 1, BookingDate: apr1},
	}

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	got := FilterServiceBookings(bookings, BookingFilter{BranchID: 1, DateFrom: &from, DateTo: &to})
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("filtered = %+v, want bookings 1 and 2", got)
	}

	// Zero branch means "all"
	got = FilterServiceBookings(bookings, BookingFilter{DateFrom: &from, DateTo: &to})
	if len(got) != 3 {
		t.Fatalf("all-branch filter returned %d bookings, want 3", len(got))
	}
}

func TestFilterDateBoundsInclusive(t *testing.T) {
	// Bound comparison is date-only: a booking late on the "to" day matches.
	endOfDay := time.Date(2026, 3, 31, 23, 59, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	bookings := []models.DoctorBooking{
		{BaseModel: models.BaseModel{ID: 1}, BookingDate: endOfDay},
	}
	got := FilterDoctorBookings(bookings, BookingFilter{DateTo: &to})
	if len(got) != 1 {
		t.Fatalf("inclusive upper bound dropped the booking")
	}
}

func TestFilterBookingsByStatus(t *testing.T) {
	bookings := []models.DoctorBooking{
		doctorBooking(1, models.BookingScheduled, classifyNow),
		doctorBooking(2, models.BookingCompleted, classifyNow),
		doctorBooking(3, models.BookingCanceled, classifyNow),
	}

	got := FilterDoctorBookings(bookings, BookingFilter{Status: models.BookingCanceled})
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("status filter returned %+v, want booking 3 only", got)
	}

	// Empty status means "all"
	got = FilterDoctorBookings(bookings, BookingFilter{})
	if len(got) != 3 {
		t.Fatalf("empty status filter returned %d bookings, want 3", len(got))
	}

	serviceBookings := []models.ServiceBooking{
		serviceBooking(1, models.BookingScheduled, classifyNow),
		serviceBooking(2, models.BookingCompleted, classifyNow),
	}
	gotSvc := FilterServiceBookings(serviceBookings, BookingFilter{Status: models.BookingCompleted})
	if len(gotSvc) != 1 || gotSvc[0].ID != 2 {
		t.Fatalf("service status filter returned %+v, want booking 2 only", gotSvc)
	}
}
