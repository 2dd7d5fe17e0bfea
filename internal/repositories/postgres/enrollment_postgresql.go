package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/sports-camp360/camp-service/internal/models"
	"github.com/sports-camp360/camp-service/internal/repositories"
)

type SelectionPostgreSQL struct {
	db *gorm.DB
}

func NewSelectionPostgreSQL(db *gorm.DB) repositories.SelectionRepository {
	return &SelectionPostgreSQL{db: db}
}

func (r *SelectionPostgreSQL) Create(ctx context.Context, selection *models.Selection) error {
	return mapError(r.db.WithContext(ctx).Create(selection).Error)
}

func (r *SelectionPostgreSQL) GetByID(ctx context.Context, id string) (*models.Selection, error) {
	var selection models.Selection
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&selection).Error; err != nil {
		return nil, mapError(err)
	}
	return &selection, nil
}

func (r *SelectionPostgreSQL) ListByStudent(ctx context.Context, email string) ([]*models.Selection, error) {
	selections := []*models.Selection{}
	err := r.db.WithContext(ctx).
		Where("student_email = ?", email).
		Order("created_at DESC").
		Find(&selections).Error
	return selections, mapError(err)
}

func (r *SelectionPostgreSQL) Exists(ctx context.Context, email, classID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Selection{}).
		Where("student_email = ? AND class_id = ?", email, classID).
		Count(&count).Error
	return count > 0, mapError(err)
}

func (r *SelectionPostgreSQL) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Selection{})
	if result.Error != nil {
		return mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

type PaymentPostgreSQL struct {
	db *gorm.DB
}

func NewPaymentPostgreSQL(db *gorm.DB) repositories.PaymentRepository {
	return &PaymentPostgreSQL{db: db}
}

func (r *PaymentPostgreSQL) Create(ctx context.Context, payment *models.Payment) error {
	return mapError(r.db.WithContext(ctx).Create(payment).Error)
}

func (r *PaymentPostgreSQL) ListByEmail(ctx context.Context, email string) ([]*models.Payment, error) {
	payments := []*models.Payment{}
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at DESC").
		Find(&payments).Error
	return payments, mapError(err)
}

func (r *PaymentPostgreSQL) ListAll(ctx context.Context) ([]*models.Payment, error) {
	payments := []*models.Payment{}
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&payments).Error
	return payments, mapError(err)
}

func (r *PaymentPostgreSQL) HasPaid(ctx context.Context, email, classID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Where("email = ? AND class_id = ?", email, classID).
		Count(&count).Error
	return count > 0, mapError(err)
}
