package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sports-camp360/camp-service/internal/cache"
	"github.com/sports-camp360/camp-service/internal/models"
	"github.com/sports-camp360/camp-service/internal/repositories"
)

var classSortColumns = map[string]string{
	"created_at": "created_at",
	"enrolled":   "enrolled",
	"price":      "price",
	"name":       "name",
}

type ClassPostgreSQL struct {
	db    *gorm.DB
	cache *cache.CacheManager
}

func NewClassPostgreSQL(db *gorm.DB, cacheManager *cache.CacheManager) repositories.ClassRepository {
	return &ClassPostgreSQL{db: db, cache: cacheManager}
}

func (r *ClassPostgreSQL) Create(ctx context.Context, class *models.Class) error {
	if err := r.db.WithContext(ctx).Create(class).Error; err != nil {
		return mapError(err)
	}
	cache.InvalidateClassCache(ctx, r.cache)
	return nil
}

func (r *ClassPostgreSQL) GetByID(ctx context.Context, id string) (*models.Class, error) {
	var class models.Class
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&class).Error; err != nil {
		return nil, mapError(err)
	}
	return &class, nil
}

// List serves the public approved-class listings from cache; instructor and
// admin views always hit the database.
func (r *ClassPostgreSQL) List(ctx context.Context, filters repositories.ClassFilters) ([]*models.Class, error) {
	if filters.Status == nil || *filters.Status != models.ClassApproved || filters.InstructorEmail != nil {
		return r.list(ctx, filters)
	}

	key := fmt.Sprintf("list:%s:%s:%s:%d", *filters.Status, filters.SortBy, filters.SortOrder, filters.Limit)
	var classes []*models.Class
	err := r.cache.Class.CacheOrExecute(ctx, key, &classes, func() (interface{}, error) {
		return r.list(ctx, filters)
	})
	return classes, err
}

func (r *ClassPostgreSQL) list(ctx context.Context, filters repositories.ClassFilters) ([]*models.Class, error) {
	query := r.db.WithContext(ctx).Model(&models.Class{})
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.InstructorEmail != nil {
		query = query.Where("instructor_email = ?", *filters.InstructorEmail)
	}
	query = applyOrder(query, filters.SortBy, filters.SortOrder, classSortColumns, "created_at")
	query = applyLimit(query, filters.Limit)

	classes := []*models.Class{}
	if err := query.Find(&classes).Error; err != nil {
		return nil, mapError(err)
	}
	return classes, nil
}

func (r *ClassPostgreSQL) Update(ctx context.Context, class *models.Class) error {
	result := r.db.WithContext(ctx).
		Model(&models.Class{}).
		Where("id = ?", class.ID).
		Updates(map[string]interface{}{
			"name":            class.Name,
			"image":           class.Image,
			"available_seats": class.AvailableSeats,
			"price":           class.Price,
		})
	return r.afterWrite(ctx, result)
}

func (r *ClassPostgreSQL) UpdateStatus(ctx context.Context, id string, status models.ClassStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.Class{}).
		Where("id = ?", id).
		Update("status", status)
	return r.afterWrite(ctx, result)
}

func (r *ClassPostgreSQL) SetFeedback(ctx context.Context, id string, feedback string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Class{}).
		Where("id = ?", id).
		Update("feedback", feedback)
	return r.afterWrite(ctx, result)
}

func (r *ClassPostgreSQL) ReserveSeat(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Class{}).
		Where("id = ? AND available_seats > 0", id).
		Updates(map[string]interface{}{
			"available_seats": gorm.Expr("available_seats - 1"),
			"enrolled":        gorm.Expr("enrolled + 1"),
		})
	if result.Error != nil {
		return mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.Class{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return mapError(err)
		}
		if count == 0 {
			return repositories.ErrNotFound
		}
		return repositories.ErrNoSeatsAvailable
	}
	cache.InvalidateClassCache(ctx, r.cache)
	return nil
}

func (r *ClassPostgreSQL) afterWrite(ctx context.Context, result *gorm.DB) error {
	if result.Error != nil {
		return mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	cache.InvalidateClassCache(ctx, r.cache)
	return nil
}
