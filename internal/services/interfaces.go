package services

import (
	"bytes"
	"context"

	"github.com/sports-camp360/camp-service/internal/models"
)

type UserService interface {
	// Register is idempotent by email: an existing record is returned with
	// Created false and nothing is written.
	Register(ctx context.Context, req *RegisterUserRequest) (*RegisterResult, error)
	List(ctx context.Context, query *ListUsersQuery) (*UserListResponse, error)
	Delete(ctx context.Context, id string) error
	MakeAdmin(ctx context.Context, id string) (*models.User, error)
	// MakeInstructor also creates the public instructor profile.
	MakeInstructor(ctx context.Context, id string) (*models.User, error)
}

type ClassService interface {
	ListApproved(ctx context.Context, query *ListClassesQuery) ([]*models.Class, error)
	Popular(ctx context.Context) ([]*models.Class, error)
	ListAll(ctx context.Context, query *ListAllClassesQuery) ([]*models.Class, error)
	ListByInstructor(ctx context.Context, email string) ([]*models.Class, error)
	Create(ctx context.Context, req *CreateClassRequest, instructorEmail string) (*models.Class, error)
	Update(ctx context.Context, id string, req *UpdateClassRequest, instructorEmail string) (*models.Class, error)
	Approve(ctx context.Context, id string) (*models.Class, error)
	Deny(ctx context.Context, id string) (*models.Class, error)
	SetFeedback(ctx context.Context, id string, req *FeedbackRequest) (*models.Class, error)
}

type CatalogService interface {
	Instructors(ctx context.Context, query *ListInstructorsQuery) ([]*models.Instructor, error)
	PopularInstructors(ctx context.Context) ([]*models.Instructor, error)
	Testimonials(ctx context.Context) ([]*models.Testimonial, error)
}

type EnrollmentService interface {
	Select(ctx context.Context, studentEmail string, req *SelectClassRequest) (*models.Selection, error)
	Selections(ctx context.Context, studentEmail string) ([]*models.Selection, error)
	RemoveSelection(ctx context.Context, id, studentEmail string) error
	EnrolledClasses(ctx context.Context, studentEmail string) ([]*models.Class, error)
}

type PaymentService interface {
	CreateIntent(ctx context.Context, req *PaymentIntentRequest) (*PaymentIntentResponse, error)
	// Record commits the payment, drops the selection and takes a seat in one
	// transaction, then publishes a payment event.
	Record(ctx context.Context, studentEmail string, req *RecordPaymentRequest) (*models.Payment, error)
	History(ctx context.Context, studentEmail string) ([]*models.Payment, error)
	Export(ctx context.Context) (*bytes.Buffer, error)
}

// ServiceManager manages all service instances
type ServiceManager interface {
	Initialize(ctx context.Context) error
	User() UserService
	Class() ClassService
	Catalog() CatalogService
	Enrollment() EnrollmentService
	Payment() PaymentService
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
