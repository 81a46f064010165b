package controllers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"clinicadmin_go/config"
	"clinicadmin_go/database"
	"clinicadmin_go/middleware"
	"clinicadmin_go/models"
	"clinicadmin_go/services"
	"clinicadmin_go/services/notifications"
	"clinicadmin_go/utils"
)

// BookingController serves booking listings, admin status transitions, the
// statistics endpoints, and the XLSX export. Hub is optional; when set,
// status transitions push a live event to connected dashboards.
type BookingController struct {
	Hub notifications.WSHub
}

type bookingActionRequest struct {
	BookingID uint `json:"booking_id"`
}

// parseBookingFilter reads the shared listing filters from the query string.
// Dates use YYYY-MM-DD and are inclusive on both ends. An unrecognized
// status value is ignored rather than rejected.
func parseBookingFilter(c *fiber.Ctx) services.BookingFilter {
	f := services.BookingFilter{
		Search:   utils.SanitizeString(c.Query("search")),
		BranchID: uint(c.QueryInt("branch_id")),
	}
	if status := strings.ToUpper(c.Query("status")); utils.IsValidBookingStatus(status) {
		f.Status = status
	}
	if raw := c.Query("date_from"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			f.DateFrom = &t
		}
	}
	if raw := c.Query("date_to"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			f.DateTo = &t
		}
	}
	return f
}

func (bc *BookingController) broadcast(kind string, data interface{}) {
	if bc.Hub != nil {
		bc.Hub.BroadcastEvent(kind, data)
	}
}

// vatPercentage returns the configured VAT rate, or nil when no VAT row has
// been configured yet. Completion totals stay unset in that case.
func vatPercentage() *float64 {
	var setting models.VatSetting
	if err := database.DB.First(&setting).Error; err != nil {
		return nil
	}
	return &setting.Percentage
}

// GetDoctorBookings lists doctor bookings bucketed into completed, upcoming
// and canceled tabs, after applying search/branch/date filters.
func (bc *BookingController) GetDoctorBookings(c *fiber.Ctx) error {
	var bookings []models.DoctorBooking
	if err := database.DB.Order("booking_date DESC").Find(&bookings).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to fetch bookings")
	}

	filtered := services.FilterDoctorBookings(bookings, parseBookingFilter(c))
	buckets := services.ClassifyDoctorBookings(filtered, time.Now())

	return utils.Success(c, buckets)
}

// GetServiceBookings lists service bookings bucketed purely by status.
func (bc *BookingController) GetServiceBookings(c *fiber.Ctx) error {
	var bookings []models.ServiceBooking
	if err := database.DB.Order("booking_date DESC").Find(&bookings).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to fetch bookings")
	}

	filtered := services.FilterServiceBookings(bookings, parseBookingFilter(c))
	buckets := services.ClassifyServiceBookings(filtered)

	return utils.Success(c, buckets)
}

// GetDoctorBookingMetrics returns the per-doctor revenue rollup and the
// monthly sales series.
func (bc *BookingController) GetDoctorBookingMetrics(c *fiber.Ctx) error {
	var bookings []models.DoctorBooking
	if err := database.DB.Find(&bookings).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to fetch bookings")
	}

	filtered := services.FilterDoctorBookings(bookings, parseBookingFilter(c))
	opts := services.MetricOptions{IncludeCanceledInTotal: config.AppConfig.IncludeCanceledInTotal}

	return utils.Success(c, fiber.Map{
		"doctors": services.AggregateByDoctor(filtered, opts),
		"monthly": services.AggregateDoctorBookingsByMonth(filtered),
	})
}

// GetServiceBookingMetrics returns the monthly sales series for service
// bookings.
func (bc *BookingController) GetServiceBookingMetrics(c *fiber.Ctx) error {
	var bookings []models.ServiceBooking
	if err := database.DB.Find(&bookings).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to fetch bookings")
	}

	filtered := services.FilterServiceBookings(bookings, parseBookingFilter(c))

	return utils.Success(c, fiber.Map{
		"monthly": services.AggregateServiceBookingsByMonth(filtered),
	})
}

// CancelDoctorBooking transitions a doctor booking to CANCELED.
func (bc *BookingController) CancelDoctorBooking(c *fiber.Ctx) error {
	var req bookingActionRequest
	if err := c.BodyParser(&req); err != nil || req.BookingID == 0 {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "Missing booking_id")
	}

	var booking models.DoctorBooking
	if err := database.DB.First(&booking, req.BookingID).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, utils.CodeNotFound, "Booking not found")
	}
	if booking.BookingStatus == models.BookingCanceled {
		return utils.Fail(c, fiber.StatusConflict, utils.CodeConflict, "Booking already canceled")
	}

	booking.BookingStatus = models.BookingCanceled
	if err := database.DB.Model(&booking).Update("booking_status", booking.BookingStatus).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to cancel booking")
	}

	middleware.LogActivity(c, "UPDATE", "doctor_bookings", booking.ID, fiber.Map{"booking_status": booking.BookingStatus})
	bc.broadcast("booking_update", booking)

	return utils.Success(c, booking)
}

// CompleteDoctorBooking transitions a doctor booking to COMPLETED and stamps
// VAT totals from the current VAT configuration.
func (bc *BookingController) CompleteDoctorBooking(c *fiber.Ctx) error {
	var req bookingActionRequest
	if err := c.BodyParser(&req); err != nil || req.BookingID == 0 {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "Missing booking_id")
	}

	var booking models.DoctorBooking
	if err := database.DB.First(&booking, req.BookingID).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, utils.CodeNotFound, "Booking not found")
	}
	if booking.BookingStatus == models.BookingCompleted {
		return utils.Fail(c, fiber.StatusConflict, utils.CodeConflict, "Booking already completed")
	}

	updates := map[string]interface{}{"booking_status": models.BookingCompleted}

	pct := vatPercentage()
	if vatAmount, finalTotal, ok := utils.DeriveTotals(booking.SessionFees, pct); ok {
		updates["vat_percentage"] = *pct
		updates["vat_amount"] = vatAmount
		updates["final_total"] = finalTotal
	}

	if err := database.DB.Model(&booking).Updates(updates).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to complete booking")
	}

	// Completion counts as a visit for loyalty tracking
	database.DB.Model(&models.Customer{}).Where("id = ?", booking.CustomerID).
		Update("total_visits", gorm.Expr("total_visits + 1"))

	database.DB.First(&booking, booking.ID)

	middleware.LogActivity(c, "UPDATE", "doctor_bookings", booking.ID, fiber.Map{"booking_status": booking.BookingStatus})
	bc.broadcast("booking_update", booking)

	return utils.Success(c, booking)
}

// CancelServiceBooking transitions a service booking to CANCELED.
func (bc *BookingController) CancelServiceBooking(c *fiber.Ctx) error {
	var req bookingActionRequest
	if err := c.BodyParser(&req); err != nil || req.BookingID == 0 {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "Missing booking_id")
	}

	var booking models.ServiceBooking
	if err := database.DB.First(&booking, req.BookingID).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, utils.CodeNotFound, "Booking not found")
	}
	if booking.BookingStatus == models.BookingCanceled {
		return utils.Fail(c, fiber.StatusConflict, utils.CodeConflict, "Booking already canceled")
	}

	booking.BookingStatus = models.BookingCanceled
	if err := database.DB.Model(&booking).Update("booking_status", booking.BookingStatus).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to cancel booking")
	}

	middleware.LogActivity(c, "UPDATE", "service_bookings", booking.ID, fiber.Map{"booking_status": booking.BookingStatus})
	bc.broadcast("booking_update", booking)

	return utils.Success(c, booking)
}

// CompleteServiceBooking transitions a service booking to COMPLETED and
// stamps VAT totals off the discounted price.
func (bc *BookingController) CompleteServiceBooking(c *fiber.Ctx) error {
	var req bookingActionRequest
	if err := c.BodyParser(&req); err != nil || req.BookingID == 0 {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "Missing booking_id")
	}

	var booking models.ServiceBooking
	if err := database.DB.First(&booking, req.BookingID).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, utils.CodeNotFound, "Booking not found")
	}
	if booking.BookingStatus == models.BookingCompleted {
		return utils.Fail(c, fiber.StatusConflict, utils.CodeConflict, "Booking already completed")
	}

	updates := map[string]interface{}{"booking_status": models.BookingCompleted}

	pct := vatPercentage()
	if vatAmount, finalTotal, ok := utils.DeriveTotals(booking.DiscountedPrice, pct); ok {
		updates["vat_percentage"] = *pct
		updates["vat_amount"] = vatAmount
		updates["final_total"] = finalTotal
	}

	if err := database.DB.Model(&booking).Updates(updates).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to complete booking")
	}

	database.DB.Model(&models.Customer{}).Where("id = ?", booking.CustomerID).
		Update("total_visits", gorm.Expr("total_visits + 1"))

	database.DB.First(&booking, booking.ID)

	middleware.LogActivity(c, "UPDATE", "service_bookings", booking.ID, fiber.Map{"booking_status": booking.BookingStatus})
	bc.broadcast("booking_update", booking)

	return utils.Success(c, booking)
}

// ExportBookings streams an XLSX workbook with the filtered doctor and
// service bookings, one sheet each.
func (bc *BookingController) ExportBookings(c *fiber.Ctx) error {
	filter := parseBookingFilter(c)

	var doctorBookings []models.DoctorBooking
	if err := database.DB.Order("booking_date DESC").Find(&doctorBookings).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to fetch doctor bookings")
	}
	var serviceBookings []models.ServiceBooking
	if err := database.DB.Order("booking_date DESC").Find(&serviceBookings).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to fetch service bookings")
	}

	exporter := services.NewBookingReportExporter()
	buf, err := exporter.Export(
		services.FilterDoctorBookings(doctorBookings, filter),
		services.FilterServiceBookings(serviceBookings, filter),
	)
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to build report")
	}

	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exporter.FileName(time.Now())))
	return c.Send(buf.Bytes())
}
