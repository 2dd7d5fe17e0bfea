package services

import (
	"context"
	"log/slog"

	"github.com/sports-camp360/camp-service/internal/models"
	"github.com/sports-camp360/camp-service/internal/repositories"
	"github.com/sports-camp360/camp-service/internal/validator"
)

type catalogService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewCatalogService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) CatalogService {
	return &catalogService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

func (s *catalogService) Instructors(ctx context.Context, query *ListInstructorsQuery) ([]*models.Instructor, error) {
	if err := s.validator.Validate(query); err != nil {
		return nil, err
	}
	instructors, err := s.repo.Instructor().List(ctx, repositories.InstructorFilters{Limit: query.Limit})
	return instructors, translate("list instructors", err)
}

func (s *catalogService) PopularInstructors(ctx context.Context) ([]*models.Instructor, error) {
	instructors, err := s.repo.Instructor().List(ctx, repositories.InstructorFilters{
		SortBy:    "classes_taken",
		SortOrder: "desc",
		Limit:     popularLimit,
	})
	return instructors, translate("list popular instructors", err)
}

func (s *catalogService) Testimonials(ctx context.Context) ([]*models.Testimonial, error) {
	testimonials, err := s.repo.Testimonial().List(ctx, 0)
	return testimonials, translate("list testimonials", err)
}
