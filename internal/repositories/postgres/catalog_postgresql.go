package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sports-camp360/camp-service/internal/cache"
	"github.com/sports-camp360/camp-service/internal/models"
	"github.com/sports-camp360/camp-service/internal/repositories"
)

var instructorSortColumns = map[string]string{
	"classes_taken": "classes_taken",
	"name":          "name",
	"created_at":    "created_at",
}

type InstructorPostgreSQL struct {
	db    *gorm.DB
	cache *cache.CacheManager
}

func NewInstructorPostgreSQL(db *gorm.DB, cacheManager *cache.CacheManager) repositories.InstructorRepository {
	return &InstructorPostgreSQL{db: db, cache: cacheManager}
}

func (r *InstructorPostgreSQL) List(ctx context.Context, filters repositories.InstructorFilters) ([]*models.Instructor, error) {
	key := fmt.Sprintf("list:%s:%s:%d", filters.SortBy, filters.SortOrder, filters.Limit)
	var instructors []*models.Instructor
	err := r.cache.Instructor.CacheOrExecute(ctx, key, &instructors, func() (interface{}, error) {
		query := r.db.WithContext(ctx).Model(&models.Instructor{})
		query = applyOrder(query, filters.SortBy, filters.SortOrder, instructorSortColumns, "created_at")
		query = applyLimit(query, filters.Limit)

		out := []*models.Instructor{}
		if err := query.Find(&out).Error; err != nil {
			return nil, mapError(err)
		}
		return out, nil
	})
	return instructors, err
}

func (r *InstructorPostgreSQL) GetByEmail(ctx context.Context, email string) (*models.Instructor, error) {
	var instructor models.Instructor
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&instructor).Error; err != nil {
		return nil, mapError(err)
	}
	return &instructor, nil
}

func (r *InstructorPostgreSQL) Create(ctx context.Context, instructor *models.Instructor) error {
	if err := r.db.WithContext(ctx).Create(instructor).Error; err != nil {
		return mapError(err)
	}
	cache.InvalidateInstructorCache(ctx, r.cache)
	return nil
}

// AddClass appends className to the profile's class list unless it is
// already there. The row is locked so concurrent approvals do not drop names.
func (r *InstructorPostgreSQL) AddClass(ctx context.Context, email, className string) error {
	var instructor models.Instructor
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("email = ?", email).
		First(&instructor).Error
	if err != nil {
		return mapError(err)
	}

	names := []string{}
	if len(instructor.Classes) > 0 {
		if err := json.Unmarshal(instructor.Classes, &names); err != nil {
			return fmt.Errorf("decode instructor classes: %w", err)
		}
	}
	if slices.Contains(names, className) {
		return nil
	}
	encoded, err := json.Marshal(append(names, className))
	if err != nil {
		return fmt.Errorf("encode instructor classes: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.Instructor{}).
		Where("id = ?", instructor.ID).
		Update("classes", datatypes.JSON(encoded))
	return r.afterWrite(ctx, result)
}

func (r *InstructorPostgreSQL) IncrementClassesTaken(ctx context.Context, email string) error {
	result := r.db.WithContext(ctx).Model(&models.Instructor{}).
		Where("email = ?", email).
		Update("classes_taken", gorm.Expr("classes_taken + 1"))
	return r.afterWrite(ctx, result)
}

func (r *InstructorPostgreSQL) DeleteByEmail(ctx context.Context, email string) error {
	result := r.db.WithContext(ctx).Where("email = ?", email).Delete(&models.Instructor{})
	return r.afterWrite(ctx, result)
}

func (r *InstructorPostgreSQL) afterWrite(ctx context.Context, result *gorm.DB) error {
	if result.Error != nil {
		return mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	cache.InvalidateInstructorCache(ctx, r.cache)
	return nil
}

type TestimonialPostgreSQL struct {
	db    *gorm.DB
	cache *cache.CacheManager
}

func NewTestimonialPostgreSQL(db *gorm.DB, cacheManager *cache.CacheManager) repositories.TestimonialRepository {
	return &TestimonialPostgreSQL{db: db, cache: cacheManager}
}

func (r *TestimonialPostgreSQL) List(ctx context.Context, limit int) ([]*models.Testimonial, error) {
	var testimonials []*models.Testimonial
	err := r.cache.Testimonial.CacheOrExecute(ctx, fmt.Sprintf("list:%d", limit), &testimonials, func() (interface{}, error) {
		out := []*models.Testimonial{}
		query := applyLimit(r.db.WithContext(ctx).Order("created_at DESC"), limit)
		if err := query.Find(&out).Error; err != nil {
			return nil, mapError(err)
		}
		return out, nil
	})
	return testimonials, err
}
