package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sports-camp360/camp-service/internal/models"
	"github.com/sports-camp360/camp-service/internal/repositories"
)

const DefaultLookupTimeout = 3 * time.Second

// UserLookup is the slice of the user store the resolver reads.
type UserLookup interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// RoleResolver reads the caller's role from the store on every call. It keeps
// no cache, so a promotion is visible on the very next request.
type RoleResolver struct {
	users   UserLookup
	timeout time.Duration
}

func NewRoleResolver(users UserLookup, timeout time.Duration) *RoleResolver {
	if timeout <= 0 {
		timeout = DefaultLookupTimeout
	}
	return &RoleResolver{users: users, timeout: timeout}
}

// Resolve returns the stored role for email, or RoleNone when the user does
// not exist or has no role.
func (r *RoleResolver) Resolve(ctx context.Context, email string) (models.UserRole, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	user, err := r.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.RoleNone, nil
		}
		return models.RoleNone, fmt.Errorf("resolve role: %w", err)
	}
	return user.RoleOrNone(), nil
}
