package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/iammeliaskhan/habit-tracker/internal/handlers"
)

func Setup(
	app *fiber.App,
	healthHandler *handlers.HealthHandler,
	habitHandler *handlers.HabitHandler,
	profileHandler *handlers.ProfileHandler,
	statsHandler *handlers.StatsHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health (no active profile required)
	api.Get("/health", healthHandler.Check)

	// Habits + check-ins (scoped to the active profile)
	api.Get("/habits", habitHandler.List)
	api.Post("/habits", habitHandler.Create)
	api.Patch("/habits/:id", habitHandler.Update)
	api.Delete("/habits/:id", habitHandler.Delete)
	api.Post("/habits/:id/checkins", habitHandler.Toggle)

	// Profiles
	api.Get("/profiles", profileHandler.List)
	api.Post("/profiles", profileHandler.Create)
	api.Post("/profiles/active", profileHandler.SetActive)
	api.Delete("/profiles/:id", profileHandler.Delete)

	// Views
	api.Get("/overview", statsHandler.Overview)
	api.Get("/stats", statsHandler.Stats)
}
