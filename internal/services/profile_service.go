package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/iammeliaskhan/habit-tracker/internal/models"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileIsActive = errors.New("cannot delete the active profile, switch profiles first")
)

const (
	defaultProfileName  = "Default"
	defaultProfileColor = "#0ea5e9"

	profileNameMaxLen = 40
)

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// EnsureDefault returns the oldest profile, creating the stable "Default"
// one if the table is empty. Idempotent.
func (s *ProfileService) EnsureDefault() (*models.Profile, error) {
	var profile models.Profile
	err := s.db.Order("created_at ASC").First(&profile).Error
	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	color := defaultProfileColor
	profile = models.Profile{
		ID:    uuid.New(),
		Name:  defaultProfileName,
		Color: &color,
	}
	if err := s.db.Create(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Resolve maps a client's cookie value to a persisted profile, falling back
// to the default profile when the cookie is absent or stale. May create a
// profile as a side effect.
func (s *ProfileService) Resolve(cookieID uuid.UUID) (*models.Profile, error) {
	if cookieID != uuid.Nil {
		var profile models.Profile
		err := s.db.First(&profile, "id = ?", cookieID).Error
		if err == nil {
			return &profile, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	return s.EnsureDefault()
}

// List returns all profiles, oldest first.
func (s *ProfileService) List() ([]models.Profile, error) {
	var profiles []models.Profile
	err := s.db.Order("created_at ASC").Find(&profiles).Error
	return profiles, err
}

// Create validates and stores a new profile. The new profile inherits the
// source (active) profile's active habits by name and color, with no
// check-ins, so it starts with the same loaded habit set.
func (s *ProfileService) Create(sourceProfileID uuid.UUID, name string, color *string) (*models.Profile, error) {
	var issues []FieldIssue
	trimmed := validateName("name", name, profileNameMaxLen, &issues)
	validateColor(color, &issues)
	if len(issues) > 0 {
		return nil, &ValidationError{Issues: issues}
	}

	profile := models.Profile{
		ID:    uuid.New(),
		Name:  trimmed,
		Color: color,
	}

	var sourceHabits []models.Habit
	if err := s.db.Scopes(models.ActiveHabits).
		Where("profile_id = ?", sourceProfileID).
		Find(&sourceHabits).Error; err != nil {
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		for _, h := range sourceHabits {
			copied := models.Habit{
				ID:        uuid.New(),
				ProfileID: profile.ID,
				Name:      h.Name,
				Color:     h.Color,
			}
			if err := tx.Create(&copied).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// SetActive validates that the target profile exists. The caller persists
// the choice on the client via the session cookie.
func (s *ProfileService) SetActive(id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// Delete removes a profile and everything it owns. Deleting the active
// profile is rejected so at least one selectable profile always remains.
func (s *ProfileService) Delete(id, activeID uuid.UUID) error {
	if id == activeID {
		return ErrProfileIsActive
	}

	var profile models.Profile
	if err := s.db.First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProfileNotFound
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		habitIDs := tx.Model(&models.Habit{}).Select("id").Where("profile_id = ?", id)
		if err := tx.Where("habit_id IN (?)", habitIDs).Delete(&models.CheckIn{}).Error; err != nil {
			return err
		}
		if err := tx.Where("profile_id = ?", id).Delete(&models.Habit{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Profile{}, "id = ?", id).Error
	})
}
