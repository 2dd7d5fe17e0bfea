package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sports-camp360/camp-service/internal/models"
	"github.com/sports-camp360/camp-service/internal/repositories"
	"github.com/sports-camp360/camp-service/internal/validator"
)

const popularLimit = 6

type classService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewClassService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) ClassService {
	return &classService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

func (s *classService) ListApproved(ctx context.Context, query *ListClassesQuery) ([]*models.Class, error) {
	if err := s.validator.Validate(query); err != nil {
		return nil, err
	}
	approved := models.ClassApproved
	classes, err := s.repo.Class().List(ctx, repositories.ClassFilters{
		Status:    &approved,
		SortBy:    query.Sort,
		SortOrder: query.Order,
		Limit:     query.Limit,
	})
	return classes, translate("list classes", err)
}

func (s *classService) Popular(ctx context.Context) ([]*models.Class, error) {
	return s.ListApproved(ctx, &ListClassesQuery{Sort: "enrolled", Order: "desc", Limit: popularLimit})
}

func (s *classService) ListAll(ctx context.Context, query *ListAllClassesQuery) ([]*models.Class, error) {
	if err := s.validator.Validate(query); err != nil {
		return nil, err
	}
	var filters repositories.ClassFilters
	if query.Status != "" {
		status := models.ClassStatus(query.Status)
		filters.Status = &status
	}
	classes, err := s.repo.Class().List(ctx, filters)
	return classes, translate("list classes", err)
}

func (s *classService) ListByInstructor(ctx context.Context, email string) ([]*models.Class, error) {
	classes, err := s.repo.Class().List(ctx, repositories.ClassFilters{InstructorEmail: &email})
	return classes, translate("list instructor classes", err)
}

func (s *classService) Create(ctx context.Context, req *CreateClassRequest, instructorEmail string) (*models.Class, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	instructorName := ""
	user, err := s.repo.User().GetByEmail(ctx, instructorEmail)
	switch {
	case err == nil:
		instructorName = user.Name
	case !errors.Is(err, repositories.ErrNotFound):
		return nil, translate("lookup instructor", err)
	}

	class := &models.Class{
		Name:            req.Name,
		Image:           req.Image,
		InstructorName:  instructorName,
		InstructorEmail: instructorEmail,
		AvailableSeats:  req.AvailableSeats,
		Price:           req.Price,
		Status:          models.ClassPending,
	}
	if err := s.repo.Class().Create(ctx, class); err != nil {
		return nil, translate("create class", err)
	}

	s.logger.Info("Class created", "class_id", class.ID, "instructor_email", instructorEmail)
	return class, nil
}

func (s *classService) Update(ctx context.Context, id string, req *UpdateClassRequest, instructorEmail string) (*models.Class, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	class, err := s.repo.Class().GetByID(ctx, id)
	if err != nil {
		return nil, translate("get class", err)
	}
	if class.InstructorEmail != instructorEmail {
		return nil, NewPermissionError(instructorEmail, "class", id, "update", "not the class instructor")
	}

	if req.Name != nil {
		class.Name = *req.Name
	}
	if req.Image != nil {
		class.Image = *req.Image
	}
	if req.AvailableSeats != nil {
		class.AvailableSeats = *req.AvailableSeats
	}
	if req.Price != nil {
		class.Price = *req.Price
	}

	if err := s.repo.Class().Update(ctx, class); err != nil {
		return nil, translate("update class", err)
	}
	return class, nil
}

func (s *classService) Approve(ctx context.Context, id string) (*models.Class, error) {
	return s.setStatus(ctx, id, models.ClassApproved)
}

func (s *classService) Deny(ctx context.Context, id string) (*models.Class, error) {
	return s.setStatus(ctx, id, models.ClassDenied)
}

// setStatus moves a class to status. Approval also lists the class on the
// instructor's public profile when one exists.
func (s *classService) setStatus(ctx context.Context, id string, status models.ClassStatus) (*models.Class, error) {
	var class *models.Class
	err := s.repo.WithTransaction(ctx, func(tx repositories.Repository) error {
		if err := tx.Class().UpdateStatus(ctx, id, status); err != nil {
			return err
		}
		var err error
		class, err = tx.Class().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if status != models.ClassApproved {
			return nil
		}
		return ignoreNotFound(tx.Instructor().AddClass(ctx, class.InstructorEmail, class.Name))
	})
	if err != nil {
		return nil, translate("update class status", err)
	}

	s.logger.Info("Class status changed", "class_id", id, "status", status)
	return class, nil
}

func (s *classService) SetFeedback(ctx context.Context, id string, req *FeedbackRequest) (*models.Class, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}
	if err := s.repo.Class().SetFeedback(ctx, id, req.Feedback); err != nil {
		return nil, translate("set feedback", err)
	}

	class, err := s.repo.Class().GetByID(ctx, id)
	return class, translate("get class", err)
}
