package controllers

import (
	"github.com/gofiber/fiber/v2"

	"clinicadmin_go/database"
	"clinicadmin_go/middleware"
	"clinicadmin_go/models"
	"clinicadmin_go/utils"
)

type VatController struct{}

// GetVat returns the single VAT configuration row, creating a zero-rate row
// on first access.
func (vc *VatController) GetVat(c *fiber.Ctx) error {
	var setting models.VatSetting
	if err := database.DB.FirstOrCreate(&setting, models.VatSetting{}).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to fetch VAT setting")
	}
	return utils.Success(c, setting)
}

// UpdateVat sets the VAT percentage. Existing bookings keep their stamped
// totals; the new rate applies to completions from now on.
func (vc *VatController) UpdateVat(c *fiber.Ctx) error {
	var req struct {
		Percentage float64 `json:"percentage"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "Invalid request body")
	}

	if err := utils.ValidateVatPercentage(req.Percentage); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "VAT percentage must be between 0 and 100")
	}

	var setting models.VatSetting
	if err := database.DB.FirstOrCreate(&setting, models.VatSetting{}).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to fetch VAT setting")
	}

	setting.Percentage = req.Percentage
	if err := database.DB.Save(&setting).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to update VAT setting")
	}

	middleware.LogActivity(c, "UPDATE", "vat_settings", setting.ID, fiber.Map{"percentage": setting.Percentage})

	return utils.Success(c, setting)
}
