package services

import (
	"errors"
	"fmt"

	"github.com/sports-camp360/camp-service/internal/validator"
)

var (
	ErrNotFound         = errors.New("resource not found")
	ErrConflict         = errors.New("resource conflict")
	ErrAlreadySelected  = errors.New("class already selected")
	ErrAlreadyEnrolled  = errors.New("already enrolled in class")
	ErrNoSeatsAvailable = errors.New("no seats available")
	ErrClassNotOpen     = errors.New("class is not open for enrollment")
	ErrPermission       = errors.New("insufficient permissions")
	ErrPaymentDeclined  = errors.New("payment declined")
	ErrProviderDown     = errors.New("payment provider unavailable")
)

// PermissionError reports which action on which resource was refused.
// It matches ErrPermission under errors.Is.
type PermissionError struct {
	Email      string
	Resource   string
	ResourceID string
	Action     string
	Reason     string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: %s cannot %s %s %s: %s", e.Email, e.Action, e.Resource, e.ResourceID, e.Reason)
}

func (e *PermissionError) Is(target error) bool {
	return target == ErrPermission
}

func NewPermissionError(email, resource, resourceID, action, reason string) error {
	return &PermissionError{
		Email:      email,
		Resource:   resource,
		ResourceID: resourceID,
		Action:     action,
		Reason:     reason,
	}
}

// NewValidationError builds a single-field validation failure.
func NewValidationError(field, message string) error {
	return validator.ValidationErrors{{Field: field, Message: message}}
}
