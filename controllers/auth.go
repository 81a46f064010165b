package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"clinicadmin_go/database"
	"clinicadmin_go/middleware"
	"clinicadmin_go/models"
	"clinicadmin_go/utils"
)

type AuthController struct{}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// LoginEmail authenticates an admin user by email and password and returns an
// access/refresh token pair.
func (ac *AuthController) LoginEmail(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "Invalid request body")
	}

	if err := utils.ValidateLogin(req.Email, req.Password); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, err.Error())
	}

	var user models.AdminUser
	if err := database.DB.Where("email = ? AND status = ?", req.Email, "active").First(&user).Error; err != nil {
		return utils.Fail(c, fiber.StatusUnauthorized, utils.CodeUnauthorized, "Invalid email or password")
	}

	if err := utils.CheckPassword(req.Password, user.Password); err != nil {
		return utils.Fail(c, fiber.StatusUnauthorized, utils.CodeUnauthorized, "Invalid email or password")
	}

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to generate token")
	}
	refreshToken, err := middleware.GenerateRefreshToken(&user)
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to generate refresh token")
	}

	middleware.LogActivity(c, "LOGIN", "admin_users", user.ID, nil)

	return utils.Success(c, fiber.Map{
		"token":         token,
		"refresh_token": refreshToken,
		"user":          user,
	})
}

// AdminRegister creates a new dashboard account. Restricted to owner/admin by
// route middleware.
func (ac *AuthController) AdminRegister(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "Invalid request body")
	}

	if err := utils.ValidateAdminRegister(req.Email, req.Password, req.Role); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, err.Error())
	}

	var existing models.AdminUser
	if err := database.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return utils.Fail(c, fiber.StatusConflict, utils.CodeConflict, "Email already registered")
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to hash password")
	}

	user := models.AdminUser{
		Email:    req.Email,
		Password: hashed,
		FullName: req.FullName,
		Phone:    req.Phone,
		Role:     req.Role,
		Status:   "active",
	}
	if err := database.DB.Create(&user).Error; err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to create user")
	}

	middleware.LogActivity(c, "CREATE", "admin_users", user.ID, fiber.Map{"email": user.Email, "role": user.Role})

	return utils.Created(c, user)
}

// Refresh exchanges a valid refresh token for a fresh token pair.
func (ac *AuthController) Refresh(c *fiber.Ctx) error {
	var req refreshRequest
	if err := c.BodyParser(&req); err != nil || req.RefreshToken == "" {
		return utils.Fail(c, fiber.StatusBadRequest, utils.CodeValidation, "Missing refresh_token")
	}

	if rc := database.GetRedisClient(); rc != nil {
		if exists, err := rc.Exists(context.Background(), "blacklist:jwt:"+req.RefreshToken).Result(); err == nil && exists > 0 {
			return utils.Fail(c, fiber.StatusUnauthorized, utils.CodeUnauthorized, "Token revoked")
		}
	}

	claims, err := middleware.ParseToken(req.RefreshToken)
	if err != nil || claims.Subject != "refresh" {
		return utils.Fail(c, fiber.StatusUnauthorized, utils.CodeUnauthorized, "Invalid refresh token")
	}

	var user models.AdminUser
	if err := database.DB.Where("id = ? AND status = ?", claims.UserID, "active").First(&user).Error; err != nil {
		return utils.Fail(c, fiber.StatusUnauthorized, utils.CodeUnauthorized, "User not found or inactive")
	}

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to generate token")
	}
	refreshToken, err := middleware.GenerateRefreshToken(&user)
	if err != nil {
		return utils.Fail(c, fiber.StatusInternalServerError, utils.CodeServerError, "Failed to generate refresh token")
	}

	return utils.Success(c, fiber.Map{
		"token":         token,
		"refresh_token": refreshToken,
	})
}

// Logout blacklists the presented access token until it expires on its own.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	tokenString := c.Get("x-access-token")
	claims, err := middleware.GetCurrentClaims(c)
	if err != nil {
		return utils.Fail(c, fiber.StatusUnauthorized, utils.CodeUnauthorized, "Not authenticated")
	}

	if rc := database.GetRedisClient(); rc != nil && tokenString != "" {
		ttl := time.Until(claims.ExpiresAt.Time)
		if ttl > 0 {
			rc.Set(context.Background(), "blacklist:jwt:"+tokenString, "1", ttl)
		}
	}

	middleware.LogActivity(c, "LOGOUT", "admin_users", claims.UserID, nil)

	return utils.Success(c, fiber.Map{"message": "Logged out"})
}

// GetProfile returns the authenticated admin user.
func (ac *AuthController) GetProfile(c *fiber.Ctx) error {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		return utils.Fail(c, fiber.StatusUnauthorized, utils.CodeUnauthorized, "Not authenticated")
	}
	return utils.Success(c, user)
}
