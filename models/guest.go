package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Guest is one RSVP submission. Rows are insert-only: a guest who
// submits twice produces two rows, and only an explicit admin delete
// removes one.
type Guest struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name  string    `gorm:"type:varchar(150);not null" json:"name"`
	Email string    `gorm:"type:varchar(150);not null;index" json:"email"`
	// Attending is tri-state: nil means no response recorded yet.
	Attending           *bool     `gorm:"index" json:"attending"`
	GuestCount          int       `gorm:"not null;default:1" json:"guest_count"`
	DietaryRestrictions string    `gorm:"type:text" json:"dietary_restrictions,omitempty"`
	Message             string    `gorm:"type:text" json:"message,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

func (g *Guest) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// GuestStats aggregates the guest list for the dashboard. TotalAttendees
// sums GuestCount over attending=true rows only; pending rows carry no
// attendee semantics.
type GuestStats struct {
	Total          int64 `json:"total"`
	Confirmed      int64 `json:"confirmed"`
	Declined       int64 `json:"declined"`
	Pending        int64 `json:"pending"`
	TotalAttendees int64 `json:"total_attendees"`
}
