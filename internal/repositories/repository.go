package repositories

import "context"

// Repository groups every store the service talks to.
type Repository interface {
	User() UserRepository
	Class() ClassRepository
	Instructor() InstructorRepository
	Testimonial() TestimonialRepository
	Selection() SelectionRepository
	Payment() PaymentRepository

	// WithTransaction runs fn against repositories bound to one transaction.
	WithTransaction(ctx context.Context, fn func(Repository) error) error

	Ping(ctx context.Context) error
	Close() error
}

// RepositoryManager owns the repository lifecycle.
type RepositoryManager interface {
	Initialize() error
	GetRepository() Repository
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
