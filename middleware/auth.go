package middleware

import (
	"clinicadmin_go/config"
	"clinicadmin_go/database"
	"clinicadmin_go/models"
	"clinicadmin_go/utils"
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken creates a new access JWT for an admin user
func GenerateToken(user *models.AdminUser) (string, error) {
	return generateTokenWithTTL(user, config.AppConfig.JWTExpiresIn, "access")
}

// GenerateRefreshToken creates a long-lived refresh JWT
func GenerateRefreshToken(user *models.AdminUser) (string, error) {
	return generateTokenWithTTL(user, config.AppConfig.RefreshExpiresIn, "refresh")
}

func generateTokenWithTTL(user *models.AdminUser, ttl time.Duration, subject string) (string, error) {
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

// ParseToken validates a JWT string and returns its claims
func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// JWTMiddleware validates the x-access-token header carried by every
// authenticated dashboard request.
func JWTMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Get("x-access-token")
		if tokenString == "" {
			return utils.Fail(c, fiber.StatusUnauthorized, utils.CodeUnauthorized, "Missing x-access-token header")
		}

		// Reject tokens blacklisted by logout
		if rc := database.GetRedisClient(); rc != nil {
			ctx := context.Background()
			if exists, err := rc.Exists(ctx, "blacklist:jwt:"+tokenString).Result(); err == nil && exists > 0 {
				return utils.Fail(c, fiber.StatusUnauthorized, utils.CodeUnauthorized, "Token revoked")
			}
		}

		claims, err := ParseToken(tokenString)
		if err != nil {
			return utils.Fail(c, fiber.StatusUnauthorized, utils.CodeUnauthorized, "Invalid or expired token")
		}

		// Verify user still exists and is active
		var user models.AdminUser
		if err := database.DB.Where("id = ? AND status = ?", claims.UserID, "active").First(&user).Error; err != nil {
			return utils.Fail(c, fiber.StatusUnauthorized, utils.CodeUnauthorized, "User not found or inactive")
		}

		c.Locals("user", &user)
		c.Locals("claims", claims)

		return c.Next()
	}
}

// RequireRole middleware checks if user has required role
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("claims").(*Claims)
		if !ok {
			return utils.Fail(c, fiber.StatusUnauthorized, utils.CodeUnauthorized, "Missing user claims")
		}

		for _, role := range roles {
			if claims.Role == role {
				return c.Next()
			}
		}

		return utils.Fail(c, fiber.StatusForbidden, utils.CodeForbidden, "Insufficient permissions")
	}
}

// RequireOwnerOrAdmin middleware allows only owner or admin
func RequireOwnerOrAdmin() fiber.Handler {
	return RequireRole("owner", "admin")
}

// RequireStaffOrAbove middleware allows staff, admin, or owner
func RequireStaffOrAbove() fiber.Handler {
	return RequireRole("staff", "admin", "owner")
}

// GetCurrentUser returns the current authenticated admin user
func GetCurrentUser(c *fiber.Ctx) (*models.AdminUser, error) {
	user, ok := c.Locals("user").(*models.AdminUser)
	if !ok {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "User not found in context")
	}
	return user, nil
}

// GetCurrentClaims returns the current JWT claims
func GetCurrentClaims(c *fiber.Ctx) (*Claims, error) {
	claims, ok := c.Locals("claims").(*Claims)
	if !ok {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Claims not found in context")
	}
	return claims, nil
}
