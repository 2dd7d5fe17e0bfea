package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Instructor is the public profile shown on the instructors page.
type Instructor struct {
	ID           string         `json:"id" gorm:"primaryKey;size:36"`
	Name         string         `json:"name" gorm:"size:100"`
	Email        string         `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Image        string         `json:"image" gorm:"size:500"`
	ClassesTaken int            `json:"classes_taken" gorm:"not null;default:0"`
	Classes      datatypes.JSON `json:"classes" gorm:"type:jsonb"` // class names

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Instructor) TableName() string {
	return "instructors"
}

func (i *Instructor) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

type Testimonial struct {
	ID     string `json:"id" gorm:"primaryKey;size:36"`
	Name   string `json:"name" gorm:"size:100"`
	Image  string `json:"image" gorm:"size:500"`
	Rating int    `json:"rating"`
	Quote  string `json:"quote" gorm:"size:2000"`

	CreatedAt time.Time `json:"created_at"`
}

func (Testimonial) TableName() string {
	return "testimonials"
}

func (t *Testimonial) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
