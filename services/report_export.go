package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"clinicadmin_go/models"
)

// BookingReportExporter renders a filtered booking snapshot as an XLSX
// workbook with one sheet per booking kind.
type BookingReportExporter struct{}

func NewBookingReportExporter() *BookingReportExporter {
	return &BookingReportExporter{}
}

// Export builds the workbook in memory and returns its bytes.
func (e *BookingReportExporter) Export(doctorBookings []models.DoctorBooking, serviceBookings []models.ServiceBooking) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const doctorSheet = "Doctor Bookings"
	const serviceSheet = "Service Bookings"

	f.SetSheetName("Sheet1", doctorSheet)
	if _, err := f.NewSheet(serviceSheet); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %v", err)
	}

	doctorHeaders := []string{"ID", "Customer", "Email", "Phone", "Doctor", "Branch", "Date", "Status", "Session Fees", "VAT %", "VAT Amount", "Final Total"}
	for col, h := range doctorHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(doctorSheet, cell, h)
	}
	for row, b := range doctorBookings {
		values := []interface{}{
			b.ID, b.CustomerName, b.CustomerEmail, b.CustomerPhone,
			b.DoctorNameEn, b.BranchNameEn,
			b.BookingDate.Format("2006-01-02 15:04"), b.BookingStatus,
			b.SessionFees, derefFloat(b.VatPercentage), derefFloat(b.VatAmount), derefFloat(b.FinalTotal),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(doctorSheet, cell, v)
		}
	}

	serviceHeaders := []string{"ID", "Customer", "Email", "Phone", "Service", "Branch", "Date", "Status", "Actual Price", "Discounted Price", "VAT %", "VAT Amount", "Final Total"}
	for col, h := range serviceHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(serviceSheet, cell, h)
	}
	for row, b := range serviceBookings {
		values := []interface{}{
			b.ID, b.CustomerName, b.CustomerEmail, b.CustomerPhone,
			b.ServiceNameEn, b.BranchNameEn,
			b.BookingDate.Format("2006-01-02 15:04"), b.BookingStatus,
			b.ActualPrice, b.DiscountedPrice,
			derefFloat(b.VatPercentage), derefFloat(b.VatAmount), derefFloat(b.FinalTotal),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(serviceSheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %v", err)
	}
	return buf, nil
}

// FileName returns a timestamped report file name.
func (e *BookingReportExporter) FileName(now time.Time) string {
	return fmt.Sprintf("booking_report_%s.xlsx", now.Format("2006-01-02"))
}

func derefFloat(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}
