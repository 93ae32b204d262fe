package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Habit is a recurring task tracked per calendar day. Archiving hides it
// from current tracking views but keeps its check-in history.
type Habit struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ProfileID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"profile_id"`
	Name       string     `gorm:"size:80;not null" json:"name"`
	Color      *string    `gorm:"size:7" json:"color"`
	ArchivedAt *time.Time `gorm:"index" json:"archived_at"`
	CreatedAt  time.Time  `gorm:"index" json:"created_at"`

	CheckIns []CheckIn `gorm:"foreignKey:HabitID;constraint:OnDelete:CASCADE" json:"-"`
}

// Archived reports the habit's state; archived_at is never read elsewhere.
func (h *Habit) Archived() bool {
	return h.ArchivedAt != nil
}

// ActiveHabits scopes a query to non-archived habits in creation order.
func ActiveHabits(db *gorm.DB) *gorm.DB {
	return db.Where("archived_at IS NULL").Order("created_at ASC")
}
