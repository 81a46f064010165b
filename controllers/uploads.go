package controllers

import (
	"github.com/gofiber/fiber/v2"

	"clinicadmin_go/middleware"
	"clinicadmin_go/storage"
	"clinicadmin_go/utils"
)

type UploadController struct{}

var allowedUploadExtensions = []string{"jpg", "jpeg", "png", "gif", "webp", "pdf"}

// UploadAdmin accepts a multipart file from the dashboard, stores it on S3
// (images converted to WebP) and returns the public URL.
func (uc *UploadController) UploadAdmin(c *fiber.Ctx) error {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		return utils.Fail(c, fiber.StatusUnauthorized, utils.CodeUnauthorized, "Not authenticated")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "Missing file")
	}

	if !utils.IsValidFileExtension(file.Filename, allowedUploadExtensions) {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "Unsupported file type")
	}

	folder := c.Query("folder", storage.FolderGeneral)
	if !storage.IsAllowedFolder(folder) {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "Unknown upload folder")
	}

	storageService, err := storage.NewStorageService()
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Storage not configured")
	}

	url, err := storageService.UploadFile(file, folder, user.ID)
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to upload file")
	}

	middleware.LogActivity(c, "CREATE", "uploads", 0, fiber.Map{"url": url})

	return utils.Created(c, fiber.Map{"url": url})
}
