package services

import (
	"sort"
	"time"

	"clinicadmin_go/models"
)

// DoctorMetric is the per-doctor revenue/appointment rollup shown on the
// dashboard statistics screen.
type DoctorMetric struct {
	DoctorID              uint    `json:"doctor_id"`
	DoctorName            string  `json:"doctor_name"`
	TotalAppointments     int     `json:"total_appointments"`
	CompletedAppointments int     `json:"completed_appointments"`
	CanceledAppointments  int     `json:"canceled_appointments"`
	TotalIncome           float64 `json:"total_income"`
	CompletedIncome       float64 `json:"completed_income"`
	FutureIncome          float64 `json:"future_income"`
}

// MetricOptions tunes the aggregation.
//
// IncludeCanceledInTotal preserves the historical behavior of counting
// canceled session fees toward TotalIncome. Set it to false for a corrected
// revenue report; the default configuration keeps it on for continuity with
// existing dashboards.
type MetricOptions struct {
	IncludeCanceledInTotal bool
}

// AggregateByDoctor groups doctor bookings by doctor and accumulates
// appointment counts and income per status bucket, sorted descending by
// total income.
func AggregateByDoctor(bookings []models.DoctorBooking, opts MetricOptions) []DoctorMetric {
	byDoctor := make(map[uint]*DoctorMetric)
	order := make([]uint, 0)

	for _, b := range bookings {
		m, ok := byDoctor[b.DoctorID]
		if !ok {
			m = &DoctorMetric{DoctorID: b.DoctorID, DoctorName: b.DoctorNameEn}
			byDoctor[b.DoctorID] = m
			order = append(order, b.DoctorID)
		}

		m.TotalAppointments++
		if b.BookingStatus != models.BookingCanceled || opts.IncludeCanceledInTotal {
			m.TotalIncome += b.SessionFees
		}

		switch b.BookingStatus {
		case models.BookingCompleted:
			m.CompletedAppointments++
			m.CompletedIncome += b.SessionFees
		case models.BookingCanceled:
			m.CanceledAppointments++
		case models.BookingScheduled:
			m.FutureIncome += b.SessionFees
		}
	}

	metrics := make([]DoctorMetric, 0, len(order))
	for _, id := range order {
		metrics = append(metrics, *byDoctor[id])
	}
	sort.SliceStable(metrics, func(i, j int) bool {
		return metrics[i].TotalIncome > metrics[j].TotalIncome
	})
	return metrics
}

// MonthMetric is one month's sales rollup.
type MonthMetric struct {
	Month          string  `json:"month"`
	TotalSales     float64 `json:"total_sales"`
	CompletedSales float64 `json:"completed_sales"`
}

// AggregateDoctorBookingsByMonth groups doctor bookings by the short month
// name of their booking date, ordered canonically Jan through Dec (not by
// appearance, not alphabetically).
func AggregateDoctorBookingsByMonth(bookings []models.DoctorBooking) []MonthMetric {
	var months [12]*MonthMetric
	for _, b := range bookings {
		m := monthSlot(&months, b.BookingDate)
		m.TotalSales += b.SessionFees
		if b.BookingStatus == models.BookingCompleted {
			m.CompletedSales += b.SessionFees
		}
	}
	return collectMonths(&months)
}

// AggregateServiceBookingsByMonth is the service-booking counterpart; sales
// accumulate the discounted price.
func AggregateServiceBookingsByMonth(bookings []models.ServiceBooking) []MonthMetric {
	var months [12]*MonthMetric
	for _, b := range bookings {
		m := monthSlot(&months, b.BookingDate)
		m.TotalSales += b.DiscountedPrice
		if b.BookingStatus == models.BookingCompleted {
			m.CompletedSales += b.DiscountedPrice
		}
	}
	return collectMonths(&months)
}

func monthSlot(months *[12]*MonthMetric, date time.Time) *MonthMetric {
	idx := int(date.Month()) - 1
	if months[idx] == nil {
		months[idx] = &MonthMetric{Month: date.Format("Jan")}
	}
	return months[idx]
}

func collectMonths(months *[12]*MonthMetric) []MonthMetric {
	out := make([]MonthMetric, 0, 12)
	for _, m := range months {
		if m != nil {
			out = append(out, *m)
		}
	}
	return out
}
