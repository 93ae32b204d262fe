package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/iammeliaskhan/habit-tracker/internal/models"
)

type CreateHabitRequest struct {
	Name  string  `json:"name"`
	Color *string `json:"color"`
}

// UpdateHabitRequest must carry at least one non-nil field.
type UpdateHabitRequest struct {
	Name     *string `json:"name"`
	Color    *string `json:"color"`
	Archived *bool   `json:"archived"`
}

type ToggleCheckInRequest struct {
	Date string `json:"date"`
	// Completed nil means toggle.
	Completed *bool `json:"completed"`
}

type ToggleCheckInResponse struct {
	Completed bool `json:"completed"`
}

type HabitResponse struct {
	Habit models.Habit `json:"habit"`
}

type HabitWithCompletion struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Color     *string   `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	Completed bool      `json:"completed"`
}

type HabitsForDateResponse struct {
	Date   string                `json:"date"`
	Habits []HabitWithCompletion `json:"habits"`
}
