package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"cmsapi/internal/config"
)

// Health reports service health. The response always carries the version and
// environment; the status degrades when the primary store is unreachable.
func Health(cfg *config.AppConfig, db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := "healthy"

		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			status = "degraded"
		}

		return c.JSON(fiber.Map{
			"status":      status,
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"version":     cfg.Version,
			"environment": cfg.Environment,
		})
	}
}

// Liveness is a bare liveness probe.
func Liveness() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// ComingSoon marks an endpoint that is routed but not implemented yet.
func ComingSoon(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": name + " endpoint - Coming soon"})
	}
}

// Fallback is the default informational response for unmatched paths.
func Fallback(cfg *config.AppConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":     "CMS API",
			"version":     cfg.Version,
			"environment": cfg.Environment,
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
		})
	}
}
