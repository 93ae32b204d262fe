package middleware

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/iammeliaskhan/habit-tracker/internal/dto"
	"github.com/iammeliaskhan/habit-tracker/internal/services"
	"github.com/iammeliaskhan/habit-tracker/internal/session"
)

// Paths that don't need an active profile.
var profileSkipPaths = []string{
	"/api/health",
}

// ActiveProfile resolves the client's cookie to a persisted profile once
// per request and stores the id on the request context. A missing or stale
// cookie falls back to the default profile, which is created on first
// access, so every tracked request sees a valid profile.
func ActiveProfile(profiles *services.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		for _, skip := range profileSkipPaths {
			if strings.HasPrefix(path, skip) {
				return c.Next()
			}
		}

		cookieID, _ := session.CookieProfileID(c)
		profile, err := profiles.Resolve(cookieID)
		if err != nil {
			slog.Error("active profile resolution failed", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to resolve active profile",
			})
		}

		session.SetProfileID(c, profile.ID)
		return c.Next()
	}
}
