package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"clinicadmin_go/database"
	"clinicadmin_go/middleware"
	"clinicadmin_go/models"
	"clinicadmin_go/utils"
)

type BannerController struct{}

type bannerRequest struct {
	Link       string    `json:"link"`
	StartAt    time.Time `json:"start_at"`
	EndAt      time.Time `json:"end_at"`
	ImageEnURL string    `json:"image_en_url"`
	ImageArURL string    `json:"image_ar_url"`
}

// GetBanners lists banners with the derived active flag. Active is computed
// against a single shared "now" so a list is internally consistent.
func (bc *BannerController) GetBanners(c *fiber.Ctx) error {
	var banners []models.Banner
	if err := database.DB.Order("start_at DESC").Find(&banners).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to fetch banners")
	}

	return utils.Success(c, utils.NewBannerDTOs(banners, time.Now()))
}

// CreateBanner creates a banner campaign.
func (bc *BannerController) CreateBanner(c *fiber.Ctx) error {
	var req bannerRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "Invalid request body")
	}

	banner := models.Banner{
		Link:       req.Link,
		StartAt:    req.StartAt,
		EndAt:      req.EndAt,
		ImageEnURL: req.ImageEnURL,
		ImageArURL: req.ImageArURL,
	}

	if err := utils.ValidateBanner(banner); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, err.Error())
	}
	if banner.EndAt.Before(banner.StartAt) {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "end_at must not be before start_at")
	}

	if err := database.DB.Create(&banner).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to create banner")
	}

	middleware.LogActivity(c, "CREATE", "banners", banner.ID, nil)

	return utils.Created(c, utils.NewBannerDTO(banner, time.Now()))
}

// DeleteBanner removes a banner.
func (bc *BannerController) DeleteBanner(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "Invalid banner ID")
	}

	var banner models.Banner
	if err := database.DB.First(&banner, id).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, utils.CodeNotFound, "Banner not found")
	}

	if err := database.DB.Delete(&banner).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to delete banner")
	}

	middleware.LogActivity(c, "DELETE", "banners", banner.ID, nil)

	return utils.Success(c, fiber.Map{"message": "Banner deleted"})
}
