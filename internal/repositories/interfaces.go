package repositories

import (
	"context"
	"errors"

	"github.com/sports-camp360/camp-service/internal/models"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicate        = errors.New("duplicate record")
	ErrNoSeatsAvailable = errors.New("no seats available")
)

// ===== FILTERS =====

type ClassFilters struct {
	Status          *models.ClassStatus `json:"status"`
	InstructorEmail *string             `json:"instructor_email"`
	SortBy          string              `json:"sort_by"`    // "created_at", "enrolled", "price", "name"
	SortOrder       string              `json:"sort_order"` // "asc", "desc"
	Limit           int                 `json:"limit"`
}

type InstructorFilters struct {
	SortBy    string `json:"sort_by"` // "classes_taken", "name"
	SortOrder string `json:"sort_order"`
	Limit     int    `json:"limit"`
}

// ===== REPOSITORIES =====

type ClassRepository interface {
	Create(ctx context.Context, class *models.Class) error
	GetByID(ctx context.Context, id string) (*models.Class, error)
	List(ctx context.Context, filters ClassFilters) ([]*models.Class, error)
	Update(ctx context.Context, class *models.Class) error
	UpdateStatus(ctx context.Context, id string, status models.ClassStatus) error
	SetFeedback(ctx context.Context, id string, feedback string) error

	// ReserveSeat takes one seat and counts one enrollment, failing with
	// ErrNoSeatsAvailable when the class is full.
	ReserveSeat(ctx context.Context, id string) error
}

type InstructorRepository interface {
	List(ctx context.Context, filters InstructorFilters) ([]*models.Instructor, error)
	GetByEmail(ctx context.Context, email string) (*models.Instructor, error)
	Create(ctx context.Context, instructor *models.Instructor) error

	// The profile writers below return ErrNotFound when email has no profile.
	AddClass(ctx context.Context, email, className string) error
	IncrementClassesTaken(ctx context.Context, email string) error
	DeleteByEmail(ctx context.Context, email string) error
}

type TestimonialRepository interface {
	List(ctx context.Context, limit int) ([]*models.Testimonial, error)
}

type SelectionRepository interface {
	Create(ctx context.Context, selection *models.Selection) error
	GetByID(ctx context.Context, id string) (*models.Selection, error)
	ListByStudent(ctx context.Context, email string) ([]*models.Selection, error)
	Exists(ctx context.Context, email, classID string) (bool, error)
	Delete(ctx context.Context, id string) error
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	ListByEmail(ctx context.Context, email string) ([]*models.Payment, error)
	ListAll(ctx context.Context) ([]*models.Payment, error)
	HasPaid(ctx context.Context, email, classID string) (bool, error)
}
