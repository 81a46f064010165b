package services

import (
	"testing"
	"time"

	"clinicadmin_go/models"
)

func metricBooking(doctorID uint, name string, fees float64, status string) models.DoctorBooking {
	return models.DoctorBooking{
		DoctorID:      doctorID,
		DoctorNameEn:  name,
		SessionFees:   fees,
		BookingStatus: status,
		BookingDate:   time.Date(2026, 5, 10, 10, 0, 0, 0, time.UTC),
	}
}

func TestAggregateByDoctor(t *testing.T) {
	bookings := []models.DoctorBooking{
		metricBooking(1, "Dr. Sarah Ahmed", 100, models.BookingCompleted),
		metricBooking(1, "Dr. Sarah Ahmed", 50, models.BookingCanceled),
		metricBooking(2, "Dr. Omar Khan", 200, models.BookingScheduled),
	}

	metrics := AggregateByDoctor(bookings, MetricOptions{IncludeCanceledInTotal: true})
	if len(metrics) != 2 {
		t.Fatalf("got %d metrics, want 2", len(metrics))
	}

	// Sorted descending by total income: doctor 2 (200) before doctor 1 (150).
	if metrics[0].DoctorID != 2 || metrics[1].DoctorID != 1 {
		t.Fatalf("sort order = [%d, %d], want [2, 1]", metrics[0].DoctorID, metrics[1].DoctorID)
	}

	d2 := metrics[0]
	if d2.TotalAppointments != 1 || d2.TotalIncome != 200 || d2.FutureIncome != 200 {
		t.Fatalf("doctor 2 metric = %+v", d2)
	}
	if d2.CompletedIncome != 0 || d2.CanceledAppointments != 0 {
		t.Fatalf("doctor 2 metric = %+v", d2)
	}

	d1 := metrics[1]
	if d1.TotalAppointments != 2 || d1.TotalIncome != 150 {
		t.Fatalf("doctor 1 metric = %+v", d1)
	}
	if d1.CompletedAppointments != 1 || d1.CompletedIncome != 100 {
		t.Fatalf("doctor 1 metric = %+v", d1)
	}
	if d1.CanceledAppointments != 1 || d1.FutureIncome != 0 {
		t.Fatalf("doctor 1 metric = %+v", d1)
	}
}

func TestAggregateByDoctorExcludeCanceled(t *testing.T) {
	bookings := []models.DoctorBooking{
		metricBooking(1, "Dr. Sarah Ahmed", 100, models.BookingCompleted),
		metricBooking(1, "Dr. Sarah Ahmed", 50, models.BookingCanceled),
	}

	metrics := AggregateByDoctor(bookings, MetricOptions{IncludeCanceledInTotal: false})
	if metrics[0].TotalIncome != 100 {
		t.Fatalf("total income = %v, want 100 with canceled excluded", metrics[0].TotalIncome)
	}
	// Appointment counting is unaffected by the income flag.
	if metrics[0].TotalAppointments != 2 || metrics[0].CanceledAppointments != 1 {
		t.Fatalf("metric = %+v", metrics[0])
	}
}

func TestAggregateByMonthCanonicalOrder(t *testing.T) {
	mar := time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC)
	jan := time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC)

	bookings := []models.DoctorBooking{
		{SessionFees: 300, BookingStatus: models.BookingScheduled, BookingDate: mar},
		{SessionFees: 100, BookingStatus: models.BookingCompleted, BookingDate: jan},
		{SessionFees: 50, BookingStatus: models.BookingCompleted, BookingDate: mar},
	}

	metrics := AggregateDoctorBookingsByMonth(bookings)
	if len(metrics) != 2 {
		t.Fatalf("got %d months, want 2", len(metrics))
	}
	if metrics[0].Month != "Jan" || metrics[1].Month != "Mar" {
		t.Fatalf("order = [%s, %s], want [Jan, Mar]", metrics[0].Month, metrics[1].Month)
	}
	if metrics[0].TotalSales != 100 || metrics[0].CompletedSales != 100 {
		t.Fatalf("Jan metric = %+v", metrics[0])
	}
	if metrics[1].TotalSales != 350 || metrics[1].CompletedSales != 50 {
		t.Fatalf("Mar metric = %+v", metrics[1])
	}
}

func TestAggregateServiceBookingsByMonth(t *testing.T) {
	jun := time.Date(2026, 6, 2, 9, 0, 0, 0, time.UTC)
	bookings := []models.ServiceBooking{
		{DiscountedPrice: 80, BookingStatus: models.BookingCompleted, BookingDate: jun},
		{DiscountedPrice: 40, BookingStatus: models.BookingCanceled, BookingDate: jun},
	}

	metrics := AggregateServiceBookingsByMonth(bookings)
	if len(metrics) != 1 || metrics[0].Month != "Jun" {
		t.Fatalf("metrics = %+v", metrics)
	}
	if metrics[0].TotalSales != 120 || metrics[0].CompletedSales != 80 {
		t.Fatalf("Jun metric = %+v", metrics[0])
	}
}
