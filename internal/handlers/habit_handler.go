package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/iammeliaskhan/habit-tracker/internal/dates"
	"github.com/iammeliaskhan/habit-tracker/internal/dto"
	"github.com/iammeliaskhan/habit-tracker/internal/services"
	"github.com/iammeliaskhan/habit-tracker/internal/session"
)

type HabitHandler struct {
	habits *services.HabitService
	stats  *services.StatsService
}

func NewHabitHandler(habits *services.HabitService, stats *services.StatsService) *HabitHandler {
	return &HabitHandler{habits: habits, stats: stats}
}

// List returns the active profile's habits annotated with the completed
// flag for the requested date (default: today).
func (h *HabitHandler) List(c *fiber.Ctx) error {
	profileID, ok := session.ProfileID(c)
	if !ok {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Active profile not resolved",
		})
	}

	dateStr := c.Query("date", dates.Today())
	date, err := dates.Parse(dateStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	habits, completed, err := h.stats.HabitsForDate(profileID, date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch habits",
		})
	}

	result := make([]dto.HabitWithCompletion, len(habits))
	for i, habit := range habits {
		result[i] = dto.HabitWithCompletion{
			ID:        habit.ID,
			Name:      habit.Name,
			Color:     habit.Color,
			CreatedAt: habit.CreatedAt,
			Completed: completed[habit.ID],
		}
	}

	return c.JSON(dto.HabitsForDateResponse{Date: dateStr, Habits: result})
}

func (h *HabitHandler) Create(c *fiber.Ctx) error {
	profileID, ok := session.ProfileID(c)
	if !ok {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Active profile not resolved",
		})
	}

	var req dto.CreateHabitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	habit, err := h.habits.Create(profileID, req.Name, req.Color)
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			return validationFailed(c, ve)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create habit",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.HabitResponse{Habit: *habit})
}

func (h *HabitHandler) Update(c *fiber.Ctx) error {
	profileID, ok := session.ProfileID(c)
	if !ok {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Active profile not resolved",
		})
	}

	habitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid habit ID",
		})
	}

	var req dto.UpdateHabitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	habit, err := h.habits.Update(habitID, profileID, req.Name, req.Color, req.Archived)
	if err != nil {
		var ve *services.ValidationError
		switch {
		case errors.Is(err, services.ErrHabitNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrNoUpdateFields):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.As(err, &ve):
			return validationFailed(c, ve)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update habit",
		})
	}

	return c.JSON(dto.HabitResponse{Habit: *habit})
}

func (h *HabitHandler) Delete(c *fiber.Ctx) error {
	profileID, ok := session.ProfileID(c)
	if !ok {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Active profile not resolved",
		})
	}

	habitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid habit ID",
		})
	}

	if err := h.habits.Delete(habitID, profileID); err != nil {
		if errors.Is(err, services.ErrHabitNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete habit",
		})
	}

	return c.JSON(dto.OKResponse{OK: true})
}

// Toggle flips a habit's check-in for one calendar day.
func (h *HabitHandler) Toggle(c *fiber.Ctx) error {
	profileID, ok := session.ProfileID(c)
	if !ok {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Active profile not resolved",
		})
	}

	habitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid habit ID",
		})
	}

	var req dto.ToggleCheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	date, err := dates.Parse(req.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	completed, err := h.habits.Toggle(habitID, profileID, date, req.Completed)
	if err != nil {
		if errors.Is(err, services.ErrHabitNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to toggle check-in",
		})
	}

	return c.JSON(dto.ToggleCheckInResponse{Completed: completed})
}

func validationFailed(c *fiber.Ctx, ve *services.ValidationError) error {
	issues := make([]dto.FieldIssue, len(ve.Issues))
	for i, issue := range ve.Issues {
		issues[i] = dto.FieldIssue{Field: issue.Field, Message: issue.Message}
	}
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: "Invalid payload", Issues: issues,
	})
}
