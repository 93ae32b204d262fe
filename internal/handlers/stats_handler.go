package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/iammeliaskhan/habit-tracker/internal/dates"
	"github.com/iammeliaskhan/habit-tracker/internal/dto"
	"github.com/iammeliaskhan/habit-tracker/internal/services"
	"github.com/iammeliaskhan/habit-tracker/internal/session"
)

type StatsHandler struct {
	stats    *services.StatsService
	habits   *services.HabitService
	profiles *services.ProfileService
}

func NewStatsHandler(stats *services.StatsService, habits *services.HabitService, profiles *services.ProfileService) *StatsHandler {
	return &StatsHandler{stats: stats, habits: habits, profiles: profiles}
}

// Stats serves the multi-profile completion chart: one percent line per
// profile over the last N days (default 30).
func (h *StatsHandler) Stats(c *fiber.Ctx) error {
	days, _ := strconv.Atoi(c.Query("days", "30"))
	if days < 1 || days > 365 {
		days = 30
	}

	end, err := dates.Parse(dates.Today())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to compute date range",
		})
	}
	start := dates.AddDays(end, -(days - 1))

	series, data, err := h.stats.MultiProfileSeries(start, end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to compute stats",
		})
	}

	return c.JSON(dto.StatsResponse{
		Start:  dates.Format(start),
		End:    dates.Format(end),
		Series: series,
		Data:   data,
	})
}

// Overview serves the tracker bootstrap payload: profiles, the active
// profile's habits, and the check-in map spanning the 30-day history plus
// the rest of the current week.
func (h *StatsHandler) Overview(c *fiber.Ctx) error {
	activeID, ok := session.ProfileID(c)
	if !ok {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Active profile not resolved",
		})
	}

	today, err := dates.Parse(dates.Today())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to compute date range",
		})
	}
	weekStart := dates.StartOfWeek(today, time.Monday)
	weekEnd := dates.AddDays(weekStart, 6)
	historyStart := dates.AddDays(today, -29)

	profiles, err := h.profiles.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch profiles",
		})
	}

	habits, err := h.habits.ListActive(activeID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch habits",
		})
	}

	completedByDate, err := h.stats.CompletedByDate(activeID, historyStart, weekEnd)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch check-ins",
		})
	}

	summary, err := h.stats.Summary(activeID, today)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to compute summary",
		})
	}

	return c.JSON(dto.OverviewResponse{
		Today:           dates.Format(today),
		WeekStart:       dates.Format(weekStart),
		ActiveProfileID: activeID,
		Profiles:        profiles,
		Habits:          habits,
		CompletedByDate: completedByDate,
		Summary:         summary,
	})
}
