package repositories

import (
	"context"

	"github.com/sports-camp360/camp-service/internal/models"
)

type UserFilters struct {
	Role   *models.UserRole // nil lists every user
	Limit  int
	Offset int
}

// UserRepository is the authoritative owner of role state.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, filters UserFilters) ([]*models.User, int64, error)
	UpdateRole(ctx context.Context, id string, role models.UserRole) (*models.User, error)
	Delete(ctx context.Context, id string) error
}
