package dto

import (
	"github.com/google/uuid"

	"github.com/iammeliaskhan/habit-tracker/internal/models"
)

type CreateProfileRequest struct {
	Name  string  `json:"name"`
	Color *string `json:"color"`
}

type ProfileResponse struct {
	Profile models.Profile `json:"profile"`
}

type ListProfilesResponse struct {
	ActiveProfileID uuid.UUID        `json:"active_profile_id"`
	Profiles        []models.Profile `json:"profiles"`
}

type SetActiveProfileRequest struct {
	ProfileID string `json:"profile_id"`
}
