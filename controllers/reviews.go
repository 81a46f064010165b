package controllers

import (
	"github.com/gofiber/fiber/v2"

	"clinicadmin_go/database"
	"clinicadmin_go/middleware"
	"clinicadmin_go/models"
	"clinicadmin_go/utils"
)

type ReviewController struct{}

// GetReviews lists customer reviews, newest first. Supports an approved
// query filter.
func (rc *ReviewController) GetReviews(c *fiber.Ctx) error {
	query := database.DB.Model(&models.Review{})
	if approved := c.Query("approved"); approved != "" {
		query = query.Where("approved = ?", approved == "true")
	}

	var reviews []models.Review
	if err := query.Order("created_at DESC").Find(&reviews).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to fetch reviews")
	}

	return utils.Success(c, reviews)
}

// CommentReview attaches an admin reply to a review and optionally updates
// its approval state.
func (rc *ReviewController) CommentReview(c *fiber.Ctx) error {
	var req struct {
		ReviewID   uint   `json:"review_id"`
		AdminReply string `json:"admin_reply"`
		Approved   *bool  `json:"approved"`
	}
	if err := c.BodyParser(&req); err != nil || req.ReviewID == 0 {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "Missing review_id")
	}

	var review models.Review
	if err := database.DB.First(&review, req.ReviewID).Error; err != nil {
		return utils.Fail(c, fiber.StatusNotFound, utils.CodeNotFound, "Review not found")
	}

	review.AdminReply = req.AdminReply
	if req.Approved != nil {
		review.Approved = *req.Approved
	}

	if err := database.DB.Save(&review).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to update review")
	}

	middleware.LogActivity(c, "UPDATE", "reviews", review.ID, nil)

	return utils.Success(c, review)
}
