package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/iammeliaskhan/habit-tracker/internal/dates"
	"github.com/iammeliaskhan/habit-tracker/internal/models"
)

var (
	ErrHabitNotFound  = errors.New("habit not found")
	ErrNoUpdateFields = errors.New("provide at least one field to update")
)

const habitNameMaxLen = 80

type HabitService struct {
	db *gorm.DB
}

func NewHabitService(db *gorm.DB) *HabitService {
	return &HabitService{db: db}
}

// ListActive returns the profile's non-archived habits in creation order.
func (s *HabitService) ListActive(profileID uuid.UUID) ([]models.Habit, error) {
	var habits []models.Habit
	err := s.db.Scopes(models.ActiveHabits).
		Where("profile_id = ?", profileID).
		Find(&habits).Error
	return habits, err
}

func (s *HabitService) Create(profileID uuid.UUID, name string, color *string) (*models.Habit, error) {
	var issues []FieldIssue
	trimmed := validateName("name", name, habitNameMaxLen, &issues)
	validateColor(color, &issues)
	if len(issues) > 0 {
		return nil, &ValidationError{Issues: issues}
	}

	habit := models.Habit{
		ID:        uuid.New(),
		ProfileID: profileID,
		Name:      trimmed,
		Color:     color,
	}
	if err := s.db.Create(&habit).Error; err != nil {
		return nil, err
	}
	return &habit, nil
}

// getOwned fetches a habit scoped to the profile. A habit belonging to a
// different profile reads as not-found so cross-profile existence never
// leaks.
func (s *HabitService) getOwned(habitID, profileID uuid.UUID) (*models.Habit, error) {
	var habit models.Habit
	err := s.db.First(&habit, "id = ? AND profile_id = ?", habitID, profileID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrHabitNotFound
	}
	if err != nil {
		return nil, err
	}
	return &habit, nil
}

// Update renames, recolors, or archives/unarchives an owned habit. At least
// one field must be supplied. Archiving stamps archived_at with now;
// unarchiving clears it.
func (s *HabitService) Update(habitID, profileID uuid.UUID, name, color *string, archived *bool) (*models.Habit, error) {
	if name == nil && color == nil && archived == nil {
		return nil, ErrNoUpdateFields
	}

	var issues []FieldIssue
	var trimmed string
	if name != nil {
		trimmed = validateName("name", *name, habitNameMaxLen, &issues)
	}
	validateColor(color, &issues)
	if len(issues) > 0 {
		return nil, &ValidationError{Issues: issues}
	}

	habit, err := s.getOwned(habitID, profileID)
	if err != nil {
		return nil, err
	}

	if name != nil {
		habit.Name = trimmed
	}
	if color != nil {
		habit.Color = color
	}
	if archived != nil {
		if *archived {
			now := time.Now().UTC()
			habit.ArchivedAt = &now
		} else {
			habit.ArchivedAt = nil
		}
	}

	if err := s.db.Save(habit).Error; err != nil {
		return nil, err
	}
	return habit, nil
}

// Delete removes an owned habit and all its check-ins.
func (s *HabitService) Delete(habitID, profileID uuid.UUID) error {
	habit, err := s.getOwned(habitID, profileID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("habit_id = ?", habit.ID).Delete(&models.CheckIn{}).Error; err != nil {
			return err
		}
		return tx.Delete(habit).Error
	})
}

// Toggle flips the check-in for an owned habit on one calendar day and
// returns the resulting completed state.
//
// An explicit desired=false deletes any existing row. When desired is true
// or omitted and a row already exists, the row is still deleted: the
// operation toggles off even on an explicit "true", so clients cannot
// idempotently re-assert completion.
func (s *HabitService) Toggle(habitID, profileID uuid.UUID, date time.Time, desired *bool) (bool, error) {
	if _, err := s.getOwned(habitID, profileID); err != nil {
		return false, err
	}

	day := dates.Midnight(date)

	var existing models.CheckIn
	err := s.db.First(&existing, "habit_id = ? AND date = ?", habitID, day).Error
	found := err == nil
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	if desired != nil && !*desired {
		if found {
			if err := s.db.Delete(&existing).Error; err != nil {
				return false, err
			}
		}
		return false, nil
	}

	if found {
		if err := s.db.Delete(&existing).Error; err != nil {
			return false, err
		}
		return false, nil
	}

	checkIn := models.CheckIn{
		ID:        uuid.New(),
		HabitID:   habitID,
		Date:      day,
		Completed: true,
	}
	if err := s.db.Create(&checkIn).Error; err != nil {
		return false, err
	}
	return true, nil
}
