package services

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"gorm.io/datatypes"

	"github.com/sports-camp360/camp-service/internal/models"
	"github.com/sports-camp360/camp-service/internal/repositories"
	"github.com/sports-camp360/camp-service/internal/validator"
)

type userService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewUserService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) UserService {
	return &userService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

func (s *userService) Register(ctx context.Context, req *RegisterUserRequest) (*RegisterResult, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	existing, err := s.repo.User().GetByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return &RegisterResult{User: existing, Created: false}, nil
	case !errors.Is(err, repositories.ErrNotFound):
		return nil, translate("lookup user", err)
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		PhotoURL: req.PhotoURL,
		Role:     req.Role,
	}
	if err := s.repo.User().Create(ctx, user); err != nil {
		// Lost a race with a concurrent registration of the same email.
		if errors.Is(err, repositories.ErrDuplicate) {
			existing, getErr := s.repo.User().GetByEmail(ctx, req.Email)
			if getErr != nil {
				return nil, translate("lookup user", getErr)
			}
			return &RegisterResult{User: existing, Created: false}, nil
		}
		return nil, translate("create user", err)
	}

	s.logger.Info("User registered", "user_id", user.ID, "email", user.Email)
	return &RegisterResult{User: user, Created: true}, nil
}

func (s *userService) List(ctx context.Context, query *ListUsersQuery) (*UserListResponse, error) {
	if err := s.validator.Validate(query); err != nil {
		return nil, err
	}
	var filters repositories.UserFilters
	if query.Role != "" {
		role := models.UserRole(query.Role)
		filters.Role = &role
	}
	users, total, err := s.repo.User().List(ctx, filters)
	if err != nil {
		return nil, translate("list users", err)
	}
	return &UserListResponse{Users: users, Total: total}, nil
}

// Delete removes the user and, for instructors, their public profile.
func (s *userService) Delete(ctx context.Context, id string) error {
	err := s.repo.WithTransaction(ctx, func(tx repositories.Repository) error {
		user, err := tx.User().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := tx.User().Delete(ctx, id); err != nil {
			return err
		}
		return ignoreNotFound(tx.Instructor().DeleteByEmail(ctx, user.Email))
	})
	if err != nil {
		return translate("delete user", err)
	}
	s.logger.Info("User deleted", "user_id", id)
	return nil
}

func (s *userService) MakeAdmin(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.User().UpdateRole(ctx, id, models.RoleAdmin)
	if err != nil {
		return nil, translate("make admin", err)
	}
	s.logger.Info("User role changed", "user_id", id, "role", models.RoleAdmin)
	return user, nil
}

func (s *userService) MakeInstructor(ctx context.Context, id string) (*models.User, error) {
	var user *models.User
	err := s.repo.WithTransaction(ctx, func(tx repositories.Repository) error {
		var err error
		user, err = tx.User().UpdateRole(ctx, id, models.RoleInstructor)
		if err != nil {
			return err
		}

		_, err = tx.Instructor().GetByEmail(ctx, user.Email)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repositories.ErrNotFound) {
			return err
		}

		classes, _ := json.Marshal([]string{})
		profile := &models.Instructor{
			Name:    user.Name,
			Email:   user.Email,
			Classes: datatypes.JSON(classes),
		}
		if user.PhotoURL != nil {
			profile.Image = *user.PhotoURL
		}
		return tx.Instructor().Create(ctx, profile)
	})
	if err != nil {
		return nil, translate("make instructor", err)
	}

	s.logger.Info("User role changed", "user_id", id, "role", models.RoleInstructor)
	return user, nil
}
