package controllers

import (
	"github.com/gofiber/fiber/v2"

	"clinicadmin_go/database"
	"clinicadmin_go/models"
	"clinicadmin_go/utils"
)

type CustomerController struct{}

// GetCustomers lists customers with optional search over name, email and
// phone, paginated.
func (cc *CustomerController) GetCustomers(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := database.DB.Model(&models.Customer{})
	if search := utils.SanitizeString(c.Query("search")); search != "" {
		like := "%" + search + "%"
		query = query.Where("full_name LIKE ? OR email LIKE ? OR phone LIKE ?", like, like, like)
	}

	var total int64
	query.Count(&total)

	var customers []models.Customer
	if err := query.Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&customers).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to fetch customers")
	}

	return utils.Success(c, fiber.Map{
		"customers": customers,
		"total":     total,
		"page":      page,
		"limit":     limit,
	})
}

// GetCustomer returns a single customer by ID.
func (cc *CustomerController) GetCustomer(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "Invalid customer ID")
	}

	var customer models.Customer
	if err := database.DB.First(&customer, id).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, utils.CodeNotFound, "Customer not found")
	}

	return utils.Success(c, customer)
}

// GetCustomerBookings returns a customer's booking history, both kinds.
func (cc *CustomerController) GetCustomerBookings(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "Invalid customer ID")
	}

	var customer models.Customer
	if err := database.DB.First(&customer, id).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, utils.CodeNotFound, "Customer not found")
	}

	var doctorBookings []models.DoctorBooking
	if err := database.DB.Where("customer_id = ?", customer.ID).
		Order("booking_date DESC").
		Find(&doctorBookings).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to fetch doctor bookings")
	}

	var serviceBookings []models.ServiceBooking
	if err := database.DB.Where("customer_id = ?", customer.ID).
		Order("booking_date DESC").
		Find(&serviceBookings).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to fetch service bookings")
	}

	return utils.Success(c, fiber.Map{
		"doctor_bookings":  doctorBookings,
		"service_bookings": serviceBookings,
	})
}
