package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile is a local, unauthenticated identity. Exactly one profile is
// "active" per client, tracked via a cookie referencing its id.
type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:40;not null" json:"name"`
	Color     *string   `gorm:"size:7" json:"color"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	Habits []Habit `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"-"`
}
