package controllers

import (
	"github.com/gofiber/fiber/v2"

	"clinicadmin_go/database"
	"clinicadmin_go/middleware"
	"clinicadmin_go/models"
	"clinicadmin_go/utils"
)

type CategoryController struct{}

type categoryRequest struct {
	Type     string `json:"type"`
	NameEn   string `json:"name_en"`
	NameAr   string `json:"name_ar"`
	ImageURL string `json:"image_url"`
}

// GetCategories returns all categories, optionally filtered by type.
func (cc *CategoryController) GetCategories(c *fiber.Ctx) error {
	query := database.DB.Model(&models.Category{})
	if t := c.Query("type"); t != "" {
		query = query.Where("type = ?", t)
	}

	var categories []models.Category
	if err := query.Order("name_en ASC").Find(&categories).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to fetch categories")
	}

	return utils.Success(c, categories)
}

// CreateCategory creates a category.
func (cc *CategoryController) CreateCategory(c *fiber.Ctx) error {
	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "Invalid request body")
	}

	category := models.Category{
		Type:     req.Type,
		NameEn:   req.NameEn,
		NameAr:   req.NameAr,
		ImageURL: req.ImageURL,
	}

	if err := utils.ValidateCategory(category); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, err.Error())
	}

	if err := database.DB.Create(&category).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to create category")
	}

	middleware.LogActivity(c, "CREATE", "categories", category.ID, fiber.Map{"name_en": category.NameEn})

	return utils.Created(c, category)
}

// UpdateCategory updates a category by ID.
func (cc *CategoryController) UpdateCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "Invalid category ID")
	}

	var category models.Category
	if err := database.DB.First(&category, id).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, utils.CodeNotFound, "Category not found")
	}

	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "Invalid request body")
	}

	category.Type = req.Type
	category.NameEn = req.NameEn
	category.NameAr = req.NameAr
	if req.ImageURL != "" {
		category.ImageURL = req.ImageURL
	}

	if err := utils.ValidateCategory(category); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, err.Error())
	}

	if err := database.DB.Save(&category).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to update category")
	}

	middleware.LogActivity(c, "UPDATE", "categories", category.ID, nil)

	return utils.Success(c, category)
}
