package models

import (
	"time"

	"github.com/google/uuid"
)

// CheckIn asserts a habit was completed on one UTC calendar day.
// At most one row exists per (habit_id, date); absence means not completed,
// and the toggle flow deletes rows rather than setting Completed false.
type CheckIn struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	HabitID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_check_ins_habit_date" json:"habit_id"`
	Date      time.Time `gorm:"not null;uniqueIndex:idx_check_ins_habit_date" json:"date"`
	Completed bool      `gorm:"not null;default:true" json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}
