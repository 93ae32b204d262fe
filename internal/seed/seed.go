// Package seed loads a starter habit set onto the default profile so a
// fresh install has something to track.
package seed

import (
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/iammeliaskhan/habit-tracker/internal/models"
)

var starterHabits = []struct {
	Name  string
	Color string
}{
	{"Drink water", "#0ea5e9"},
	{"Workout", "#f97316"},
	{"Read", "#22c55e"},
	{"Meditate", "#a855f7"},
	{"Journal", "#14b8a6"},
	{"Walk 30 min", "#84cc16"},
	{"Stretch", "#f43f5e"},
	{"No sugar", "#ef4444"},
	{"Take vitamins", "#eab308"},
	{"Practice coding", "#3b82f6"},
	{"Plan tomorrow", "#0f766e"},
	{"Clean desk", "#64748b"},
	{"Sleep 8 hours", "#1d4ed8"},
	{"Read 10 pages", "#16a34a"},
	{"Limit social media", "#fb7185"},
	{"Protein goal", "#f59e0b"},
}

// Run inserts the starter habits the profile doesn't already have, matched
// by name. Safe to run repeatedly.
func Run(db *gorm.DB, profileID uuid.UUID) error {
	var existing []models.Habit
	if err := db.Select("name").Where("profile_id = ?", profileID).Find(&existing).Error; err != nil {
		return err
	}

	existingNames := make(map[string]bool, len(existing))
	for _, h := range existing {
		existingNames[h.Name] = true
	}

	created := 0
	for _, sh := range starterHabits {
		if existingNames[sh.Name] {
			continue
		}
		color := sh.Color
		habit := models.Habit{
			ID:        uuid.New(),
			ProfileID: profileID,
			Name:      sh.Name,
			Color:     &color,
		}
		if err := db.Create(&habit).Error; err != nil {
			return err
		}
		created++
	}

	if created > 0 {
		slog.Info("seeded starter habits", "created", created)
	}
	return nil
}
