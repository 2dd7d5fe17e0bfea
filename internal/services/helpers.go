package services

import (
	"errors"
	"fmt"

	"github.com/sports-camp360/camp-service/internal/repositories"
)

// translate maps repository sentinels to service errors and wraps anything
// else with op.
func translate(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repositories.ErrDuplicate):
		return ErrConflict
	case errors.Is(err, repositories.ErrNoSeatsAvailable):
		return ErrNoSeatsAvailable
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// ignoreNotFound drops ErrNotFound for optional records such as instructor
// profiles, which only exist for users promoted through make-instructor.
func ignoreNotFound(err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return nil
	}
	return err
}
