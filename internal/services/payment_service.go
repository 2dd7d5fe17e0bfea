package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/sports-camp360/camp-service/internal/events"
	"github.com/sports-camp360/camp-service/internal/models"
	"github.com/sports-camp360/camp-service/internal/observability"
	"github.com/sports-camp360/camp-service/internal/payments"
	"github.com/sports-camp360/camp-service/internal/repositories"
	"github.com/sports-camp360/camp-service/internal/validator"
)

const exportSheet = "Sheet1"

var exportHeaders = []string{"Date", "Email", "Class", "Transaction ID", "Price"}

type paymentService struct {
	repo      repositories.Repository
	provider  payments.IntentProvider
	publisher events.EventPublisher
	metrics   *observability.Metrics
	currency  string
	logger    *slog.Logger
	validator *validator.Validator
}

type PaymentServiceConfig struct {
	Provider  payments.IntentProvider
	Publisher events.EventPublisher
	Metrics   *observability.Metrics
	Currency  string
}

func NewPaymentService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator, config PaymentServiceConfig) PaymentService {
	return &paymentService{
		repo:      repo,
		provider:  config.Provider,
		publisher: config.Publisher,
		metrics:   config.Metrics,
		currency:  config.Currency,
		logger:    logger,
		validator: validator,
	}
}

func (s *paymentService) CreateIntent(ctx context.Context, req *PaymentIntentRequest) (*PaymentIntentResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	secret, err := s.provider.CreateIntent(ctx, payments.AmountInCents(req.Price), s.currency)
	s.metrics.RecordPaymentIntent(err)
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrPaymentDeclined):
			return nil, fmt.Errorf("%w: %v", ErrPaymentDeclined, err)
		case errors.Is(err, payments.ErrProviderDown):
			return nil, ErrProviderDown
		case errors.Is(err, payments.ErrInvalidAmount):
			return nil, NewValidationError("price", "must be positive")
		}
		return nil, fmt.Errorf("create payment intent: %w", err)
	}
	return &PaymentIntentResponse{ClientSecret: secret}, nil
}

func (s *paymentService) Record(ctx context.Context, studentEmail string, req *RecordPaymentRequest) (*models.Payment, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	var payment *models.Payment
	err := s.repo.WithTransaction(ctx, func(tx repositories.Repository) error {
		selection, err := tx.Selection().GetByID(ctx, req.SelectionID)
		if err != nil {
			return err
		}
		if selection.StudentEmail != studentEmail {
			return NewPermissionError(studentEmail, "selection", selection.ID, "pay", "not the selecting student")
		}

		class, err := tx.Class().GetByID(ctx, selection.ClassID)
		if err != nil {
			return err
		}
		if class.Status != models.ClassApproved {
			return ErrClassNotOpen
		}

		paid, err := tx.Payment().HasPaid(ctx, studentEmail, selection.ClassID)
		if err != nil {
			return err
		}
		if paid {
			return ErrAlreadyEnrolled
		}

		payment = &models.Payment{
			Email:         studentEmail,
			TransactionID: req.TransactionID,
			Price:         selection.Price,
			ClassID:       selection.ClassID,
			SelectionID:   selection.ID,
			ClassName:     selection.Name,
		}
		if err := tx.Payment().Create(ctx, payment); err != nil {
			return err
		}
		if err := tx.Selection().Delete(ctx, selection.ID); err != nil {
			return err
		}
		if err := tx.Class().ReserveSeat(ctx, selection.ClassID); err != nil {
			return err
		}
		return ignoreNotFound(tx.Instructor().IncrementClassesTaken(ctx, class.InstructorEmail))
	})
	if err != nil {
		if errors.Is(err, ErrPermission) || errors.Is(err, ErrAlreadyEnrolled) || errors.Is(err, ErrClassNotOpen) {
			return nil, err
		}
		return nil, translate("record payment", err)
	}

	s.metrics.RecordPayment()
	s.logger.Info("Payment recorded",
		"payment_id", payment.ID,
		"class_id", payment.ClassID,
		"email", studentEmail)

	event := events.PaymentRecordedEvent{
		PaymentID:     payment.ID,
		TransactionID: payment.TransactionID,
		Email:         payment.Email,
		ClassID:       payment.ClassID,
		ClassName:     payment.ClassName,
		Price:         payment.Price,
		OccurredAt:    payment.CreatedAt,
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	// The payment is committed; a lost event must not fail the request.
	if err := s.publisher.PublishPaymentRecorded(ctx, event); err != nil {
		s.logger.Error("Failed to publish payment event", "payment_id", payment.ID, "error", err)
	}
	return payment, nil
}

func (s *paymentService) History(ctx context.Context, studentEmail string) ([]*models.Payment, error) {
	history, err := s.repo.Payment().ListByEmail(ctx, studentEmail)
	return history, translate("list payments", err)
}

func (s *paymentService) Export(ctx context.Context) (*bytes.Buffer, error) {
	all, err := s.repo.Payment().ListAll(ctx)
	if err != nil {
		return nil, translate("list payments", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, header := range exportHeaders {
		if err := setCell(f, i+1, 1, header); err != nil {
			return nil, err
		}
	}
	for r, p := range all {
		row := r + 2
		values := []interface{}{
			p.CreatedAt.UTC().Format(time.RFC3339),
			p.Email,
			p.ClassName,
			p.TransactionID,
			p.Price,
		}
		for col, value := range values {
			if err := setCell(f, col+1, row, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	s.logger.Info("Payments exported", "rows", len(all))
	return buf, nil
}

func setCell(f *excelize.File, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetCellValue(exportSheet, cell, value); err != nil {
		return fmt.Errorf("set cell %s: %w", cell, err)
	}
	return nil
}
