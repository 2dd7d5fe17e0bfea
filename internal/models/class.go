package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassStatus string

const (
	ClassPending  ClassStatus = "pending"
	ClassApproved ClassStatus = "approved"
	ClassDenied   ClassStatus = "denied"
)

type Class struct {
	ID              string      `json:"id" gorm:"primaryKey;size:36"`
	Name            string      `json:"name" gorm:"not null;size:200"`
	Image           string      `json:"image" gorm:"size:500"`
	InstructorName  string      `json:"instructor_name" gorm:"size:100"`
	InstructorEmail string      `json:"instructor_email" gorm:"index;not null;size:255"`
	AvailableSeats  int         `json:"available_seats" gorm:"not null;default:0"`
	Enrolled        int         `json:"enrolled" gorm:"not null;default:0"`
	Price           float64     `json:"price" gorm:"not null"`
	Status          ClassStatus `json:"status" gorm:"index;size:20;default:pending"`
	Feedback        *string     `json:"feedback,omitempty" gorm:"size:1000"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Class) TableName() string {
	return "classes"
}

func (c *Class) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
