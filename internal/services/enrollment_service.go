package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sports-camp360/camp-service/internal/models"
	"github.com/sports-camp360/camp-service/internal/repositories"
	"github.com/sports-camp360/camp-service/internal/validator"
)

type enrollmentService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewEnrollmentService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) EnrollmentService {
	return &enrollmentService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

func (s *enrollmentService) Select(ctx context.Context, studentEmail string, req *SelectClassRequest) (*models.Selection, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	class, err := s.repo.Class().GetByID(ctx, req.ClassID)
	if err != nil {
		return nil, translate("get class", err)
	}
	if class.Status != models.ClassApproved {
		return nil, ErrClassNotOpen
	}

	paid, err := s.repo.Payment().HasPaid(ctx, studentEmail, class.ID)
	if err != nil {
		return nil, translate("check enrollment", err)
	}
	if paid {
		return nil, ErrAlreadyEnrolled
	}

	selected, err := s.repo.Selection().Exists(ctx, studentEmail, class.ID)
	if err != nil {
		return nil, translate("check selection", err)
	}
	if selected {
		return nil, ErrAlreadySelected
	}
	if class.AvailableSeats <= 0 {
		return nil, ErrNoSeatsAvailable
	}

	selection := &models.Selection{
		ClassID:        class.ID,
		StudentEmail:   studentEmail,
		Name:           class.Name,
		Image:          class.Image,
		InstructorName: class.InstructorName,
		Price:          class.Price,
	}
	if err := s.repo.Selection().Create(ctx, selection); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrAlreadySelected
		}
		return nil, translate("create selection", err)
	}

	s.logger.Info("Class selected", "selection_id", selection.ID, "class_id", class.ID, "email", studentEmail)
	return selection, nil
}

func (s *enrollmentService) Selections(ctx context.Context, studentEmail string) ([]*models.Selection, error) {
	selections, err := s.repo.Selection().ListByStudent(ctx, studentEmail)
	return selections, translate("list selections", err)
}

func (s *enrollmentService) RemoveSelection(ctx context.Context, id, studentEmail string) error {
	selection, err := s.repo.Selection().GetByID(ctx, id)
	if err != nil {
		return translate("get selection", err)
	}
	if selection.StudentEmail != studentEmail {
		return NewPermissionError(studentEmail, "selection", id, "delete", "not the selecting student")
	}
	if err := s.repo.Selection().Delete(ctx, id); err != nil {
		return translate("delete selection", err)
	}
	return nil
}

func (s *enrollmentService) EnrolledClasses(ctx context.Context, studentEmail string) ([]*models.Class, error) {
	payments, err := s.repo.Payment().ListByEmail(ctx, studentEmail)
	if err != nil {
		return nil, translate("list payments", err)
	}

	classes := []*models.Class{}
	seen := make(map[string]bool, len(payments))
	for _, payment := range payments {
		if seen[payment.ClassID] {
			continue
		}
		seen[payment.ClassID] = true

		class, err := s.repo.Class().GetByID(ctx, payment.ClassID)
		if errors.Is(err, repositories.ErrNotFound) {
			s.logger.Warn("Paid class no longer exists", "class_id", payment.ClassID, "payment_id", payment.ID)
			continue
		}
		if err != nil {
			return nil, translate("get class", err)
		}
		classes = append(classes, class)
	}
	return classes, nil
}
