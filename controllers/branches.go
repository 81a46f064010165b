package controllers

import (
	"github.com/gofiber/fiber/v2"

	"clinicadmin_go/database"
	"clinicadmin_go/middleware"
	"clinicadmin_go/models"
	"clinicadmin_go/utils"
)

type BranchController struct{}

type branchRequest struct {
	NameEn    string  `json:"name_en"`
	NameAr    string  `json:"name_ar"`
	CityEn    string  `json:"city_en"`
	CityAr    string  `json:"city_ar"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Phone     string  `json:"phone"`
	Active    *bool   `json:"active"`
}

// GetBranches returns all branches.
func (bc *BranchController) GetBranches(c *fiber.Ctx) error {
	query := database.DB.Model(&models.Branch{})
	if active := c.Query("active"); active != "" {
		query = query.Where("active = ?", active == "true")
	}

	var branches []models.Branch
	if err := query.Order("name_en ASC").Find(&branches).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to fetch branches")
	}

	return utils.Success(c, branches)
}

// CreateBranch creates a branch after validating the geocoordinates.
func (bc *BranchController) CreateBranch(c *fiber.Ctx) error {
	var req branchRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "Invalid request body")
	}

	branch := models.Branch{
		NameEn:    req.NameEn,
		NameAr:    req.NameAr,
		CityEn:    req.CityEn,
		CityAr:    req.CityAr,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Phone:     req.Phone,
		Active:    true,
	}
	if req.Active != nil {
		branch.Active = *req.Active
	}

	if err := utils.ValidateBranch(branch); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, err.Error())
	}

	if err := database.DB.Create(&branch).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to create branch")
	}

	middleware.LogActivity(c, "CREATE", "branches", branch.ID, fiber.Map{"name_en": branch.NameEn})

	return utils.Created(c, branch)
}

// UpdateBranch updates a branch by ID.
func (bc *BranchController) UpdateBranch(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "Invalid branch ID")
	}

	var branch models.Branch
	if err := database.DB.First(&branch, id).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, utils.CodeNotFound, "Branch not found")
	}

	var req branchRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "Invalid request body")
	}

	branch.NameEn = req.NameEn
	branch.NameAr = req.NameAr
	branch.CityEn = req.CityEn
	branch.CityAr = req.CityAr
	branch.Latitude = req.Latitude
	branch.Longitude = req.Longitude
	branch.Phone = req.Phone
	if req.Active != nil {
		branch.Active = *req.Active
	}

	if err := utils.ValidateBranch(branch); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, err.Error())
	}

	if err := database.DB.Save(&branch).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to update branch")
	}

	middleware.LogActivity(c, "UPDATE", "branches", branch.ID, nil)

	return utils.Success(c, branch)
}

// DeleteBranch soft-deletes a branch. Bookings keep their branch snapshot so
// history stays readable after removal.
func (bc *BranchController) DeleteBranch(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "Invalid branch ID")
	}

	var branch models.Branch
	if err := database.DB.First(&branch, id).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, utils.CodeNotFound, "Branch not found")
	}

	if err := database.DB.Delete(&branch).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to delete branch")
	}

	middleware.LogActivity(c, "DELETE", "branches", branch.ID, nil)

	return utils.Success(c, fiber.Map{"message": "Branch deleted"})
}
