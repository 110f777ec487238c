package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GalleryImage is one photo in the public gallery. Featured images sort
// ahead of the rest, newest first within each group.
type GalleryImage struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Caption     string    `gorm:"type:varchar(255)" json:"caption,omitempty"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	ImageURL    string    `gorm:"type:varchar(500);not null" json:"image_url"`
	IsFeatured  bool      `gorm:"not null;default:false;index" json:"is_featured"`
	CreatedAt   time.Time `json:"created_at"`
}

func (g *GalleryImage) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
