package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Selection is a class a student has put in their cart but not paid for yet.
type Selection struct {
	ID             string  `json:"id" gorm:"primaryKey;size:36"`
	ClassID        string  `json:"class_id" gorm:"uniqueIndex:idx_selection_student_class;not null;size:36"`
	StudentEmail   string  `json:"student_email" gorm:"uniqueIndex:idx_selection_student_class;not null;size:255"`
	Name           string  `json:"name" gorm:"size:200"`
	Image          string  `json:"image" gorm:"size:500"`
	InstructorName string  `json:"instructor_name" gorm:"size:100"`
	Price          float64 `json:"price"`

	CreatedAt time.Time `json:"created_at"`
}

func (Selection) TableName() string {
	return "selected_classes"
}

func (s *Selection) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

type Payment struct {
	ID            string  `json:"id" gorm:"primaryKey;size:36"`
	Email         string  `json:"email" gorm:"index;not null;size:255"`
	TransactionID string  `json:"transaction_id" gorm:"uniqueIndex;not null;size:255"`
	Price         float64 `json:"price" gorm:"not null"`
	ClassID       string  `json:"class_id" gorm:"index;not null;size:36"`
	SelectionID   string  `json:"selection_id" gorm:"size:36"`
	ClassName     string  `json:"class_name" gorm:"size:200"`

	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

func (Payment) TableName() string {
	return "payments"
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
