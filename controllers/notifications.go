package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"clinicadmin_go/database"
	"clinicadmin_go/middleware"
	"clinicadmin_go/models"
	"clinicadmin_go/utils"
)

type NotificationController struct{}

type notificationRequest struct {
	TitleEn     string     `json:"title_en"`
	TitleAr     string     `json:"title_ar"`
	MessageEn   string     `json:"message_en"`
	MessageAr   string     `json:"message_ar"`
	ScheduledAt *time.Time `json:"scheduled_timestamp"`
}

// GetNotifications lists notifications, newest schedule first.
func (nc *NotificationController) GetNotifications(c *fiber.Ctx) error {
	query := database.DB.Model(&models.Notification{})
	if sent := c.Query("sent"); sent != "" {
		query = query.Where("sent = ?", sent == "true")
	}

	var list []models.Notification
	if err := query.Order("scheduled_at DESC").Find(&list).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to fetch notifications")
	}

	return utils.Success(c, list)
}

// CreateNotification schedules a broadcast. A missing schedule means
// dispatch on the next scheduler tick.
func (nc *NotificationController) CreateNotification(c *fiber.Ctx) error {
	var req notificationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "Invalid request body")
	}

	scheduledAt := time.Now()
	if req.ScheduledAt != nil {
		scheduledAt = *req.ScheduledAt
	}

	n := models.Notification{
		TitleEn:     req.TitleEn,
		TitleAr:     req.TitleAr,
		MessageEn:   req.MessageEn,
		MessageAr:   req.MessageAr,
		ScheduledAt: scheduledAt,
	}

	if err := utils.ValidateNotification(n); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, err.Error())
	}

	if err := database.DB.Create(&n).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to create notification")
	}

	middleware.LogActivity(c, "CREATE", "notifications", n.ID, fiber.Map{"title_en": n.TitleEn})

	return utils.Created(c, n)
}

// DeleteNotification removes a notification. Already-sent broadcasts cannot
// be recalled, only hidden from the list.
func (nc *NotificationController) DeleteNotification(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "Invalid notification ID")
	}

	var n models.Notification
	if err := database.DB.First(&n, id).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, utils.CodeNotFound, "Notification not found")
	}

	if err := database.DB.Delete(&n).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to delete notification")
	}

	middleware.LogActivity(c, "DELETE", "notifications", n.ID, nil)

	return utils.Success(c, fiber.Map{"message": "Notification deleted"})
}
