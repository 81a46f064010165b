package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"clinicadmin_go/database"
	"clinicadmin_go/middleware"
	"clinicadmin_go/models"
	"clinicadmin_go/utils"
)

type ServiceController struct{}

type serviceRequest struct {
	NameEn          string  `json:"name_en"`
	NameAr          string  `json:"name_ar"`
	AboutEn         string  `json:"about_en"`
	AboutAr         string  `json:"about_ar"`
	CategoryID      uint    `json:"category_id"`
	ActualPrice     float64 `json:"actual_price"`
	DiscountedPrice float64 `json:"discounted_price"`
	ImageEnURL      string  `json:"image_en_url"`
	ImageArURL      string  `json:"image_ar_url"`
	CanRedeem       bool    `json:"can_redeem"`
}

type serviceBranchRequest struct {
	BranchID              uint `json:"branch_id"`
	MaximumBookingPerSlot int  `json:"maximum_booking_per_slot"`
}

// GetServices returns the service catalog. Supports category_id and
// branch_id query filters.
func (sc *ServiceController) GetServices(c *fiber.Ctx) error {
	query := database.DB.
		Preload("Category").
		Preload("Branches.Branch")

	if categoryID := c.QueryInt("category_id"); categoryID > 0 {
		query = query.Where("category_id = ?", categoryID)
	}
	if branchID := c.QueryInt("branch_id"); branchID > 0 {
		query = query.Joins("JOIN service_branches ON service_branches.service_id = services.id").
			Where("service_branches.branch_id = ? AND service_branches.deleted_at IS NULL", branchID)
	}

	var services []models.Service
	if err := query.Order("name_en ASC").Find(&services).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to fetch services")
	}

	return utils.Success(c, services)
}

// GetService returns a single service by ID.
func (sc *ServiceController) GetService(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "Invalid service ID")
	}

	var service models.Service
	if err := database.DB.
		Preload("Category").
		Preload("Branches.Branch").
		First(&service, id).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, utils.CodeNotFound, "Service not found")
	}

	return utils.Success(c, service)
}

// CreateService creates a service with optional per-branch capacity rows.
func (sc *ServiceController) CreateService(c *fiber.Ctx) error {
	var req struct {
		serviceRequest
		Branches []serviceBranchRequest `json:"branches"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "Invalid request body")
	}

	service := models.Service{
		NameEn:          req.NameEn,
		NameAr:          req.NameAr,
		AboutEn:         req.AboutEn,
		AboutAr:         req.AboutAr,
		CategoryID:      req.CategoryID,
		ActualPrice:     req.ActualPrice,
		DiscountedPrice: req.DiscountedPrice,
		ImageEnURL:      req.ImageEnURL,
		ImageArURL:      req.ImageArURL,
		CanRedeem:       req.CanRedeem,
	}

	if err := utils.ValidateService(service); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, err.Error())
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&service).Error; err != nil {
			return err
		}
		for _, br := range req.Branches {
			sb := models.ServiceBranch{
				ServiceID:             service.ID,
				BranchID:              br.BranchID,
				MaximumBookingPerSlot: br.MaximumBookingPerSlot,
			}
			if err := tx.Create(&sb).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to create service")
	}

	middleware.LogActivity(c, "CREATE", "services", service.ID, fiber.Map{"name_en": service.NameEn})

	database.DB.Preload("Category").Preload("Branches.Branch").First(&service, service.ID)
	return utils.Created(c, service)
}

// UpdateService updates a service's catalog fields.
func (sc *ServiceController) UpdateService(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "Invalid service ID")
	}

	var service models.Service
	if err := database.DB.First(&service, id).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, utils.CodeNotFound, "Service not found")
	}

	var req serviceRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "Invalid request body")
	}

	service.NameEn = req.NameEn
	service.NameAr = req.NameAr
	service.AboutEn = req.AboutEn
	service.AboutAr = req.AboutAr
	service.ActualPrice = req.ActualPrice
	service.DiscountedPrice = req.DiscountedPrice
	service.CanRedeem = req.CanRedeem
	if req.CategoryID != 0 {
		service.CategoryID = req.CategoryID
	}
	if req.ImageEnURL != "" {
		service.ImageEnURL = req.ImageEnURL
	}
	if req.ImageArURL != "" {
		service.ImageArURL = req.ImageArURL
	}

	if err := utils.ValidateService(service); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, err.Error())
	}

	if err := database.DB.Save(&service).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to update service")
	}

	middleware.LogActivity(c, "UPDATE", "services", service.ID, nil)

	return utils.Success(c, service)
}

// GetServiceBranches returns a service's per-branch capacity rows.
func (sc *ServiceController) GetServiceBranches(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "Invalid service ID")
	}

	var assignments []models.ServiceBranch
	if err := database.DB.Preload("Branch").Where("service_id = ?", id).Find(&assignments).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to fetch branches")
	}

	return utils.Success(c, assignments)
}

// UpdateServiceBranches replaces a service's branch assignments and slot
// capacities.
func (sc *ServiceController) UpdateServiceBranches(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "Invalid service ID")
	}

	var service models.Service
	if err := database.DB.First(&service, id).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, utils.CodeNotFound, "Service not found")
	}

	var req struct {
		Branches []serviceBranchRequest `json:"branches"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "Invalid request body")
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id = ?", service.ID).Delete(&models.ServiceBranch{}).Error; err != nil {
			return err
		}
		for _, br := range req.Branches {
			assignment := models.ServiceBranch{
				ServiceID:             service.ID,
				BranchID:              br.BranchID,
				MaximumBookingPerSlot: br.MaximumBookingPerSlot,
			}
			if err := tx.Create(&assignment).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to update branches")
	}

	middleware.LogActivity(c, "UPDATE", "service_branches", service.ID, nil)

	return sc.GetServiceBranches(c)
}
