package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/iammeliaskhan/habit-tracker/internal/dto"
	"github.com/iammeliaskhan/habit-tracker/internal/services"
	"github.com/iammeliaskhan/habit-tracker/internal/session"
)

type ProfileHandler struct {
	profiles     *services.ProfileService
	cookieMaxAge time.Duration
}

func NewProfileHandler(profiles *services.ProfileService, cookieMaxAge time.Duration) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, cookieMaxAge: cookieMaxAge}
}

func (h *ProfileHandler) List(c *fiber.Ctx) error {
	activeID, ok := session.ProfileID(c)
	if !ok {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Active profile not resolved",
		})
	}

	profiles, err := h.profiles.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch profiles",
		})
	}

	return c.JSON(dto.ListProfilesResponse{
		ActiveProfileID: activeID,
		Profiles:        profiles,
	})
}

// Create stores a new profile seeded with the active profile's habit set.
func (h *ProfileHandler) Create(c *fiber.Ctx) error {
	activeID, ok := session.ProfileID(c)
	if !ok {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Active profile not resolved",
		})
	}

	var req dto.CreateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	profile, err := h.profiles.Create(activeID, req.Name, req.Color)
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			return validationFailed(c, ve)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create profile",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ProfileResponse{Profile: *profile})
}

// SetActive switches the client's active profile via the session cookie.
func (h *ProfileHandler) SetActive(c *fiber.Ctx) error {
	var req dto.SetActiveProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	profileID, err := uuid.Parse(req.ProfileID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid profile ID",
		})
	}

	profile, err := h.profiles.SetActive(profileID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to switch profile",
		})
	}

	session.SetCookie(c, profile.ID, h.cookieMaxAge)
	return c.JSON(dto.OKResponse{OK: true})
}

func (h *ProfileHandler) Delete(c *fiber.Ctx) error {
	activeID, ok := session.ProfileID(c)
	if !ok {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Active profile not resolved",
		})
	}

	profileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid profile ID",
		})
	}

	if err := h.profiles.Delete(profileID, activeID); err != nil {
		switch {
		case errors.Is(err, services.ErrProfileIsActive):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrProfileNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete profile",
		})
	}

	return c.JSON(dto.OKResponse{OK: true})
}
