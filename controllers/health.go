package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"clinicadmin_go/database"
	"clinicadmin_go/utils"
)

type HealthController struct{}

// Health reports service, database, and Redis status.
func (hc *HealthController) Health(c *fiber.Ctx) error {
	dbStatus := "ok"
	if sqlDB, err := database.DB.DB(); err != nil || sqlDB.Ping() != nil {
		dbStatus = "down"
	}

	redisStatus := "disabled"
	if rc := database.GetRedisClient(); rc != nil {
		redisStatus = "ok"
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := rc.Ping(ctx).Err(); err != nil {
			redisStatus = "down"
		}
	}

	return utils.Success(c, fiber.Map{
		"status":   "ok",
		"database": dbStatus,
		"redis":    redisStatus,
		"time":     time.Now().UTC(),
	})
}
