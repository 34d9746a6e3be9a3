package payment

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"crm-services/internal/adapter/queue"
	domain "crm-services/internal/domain/payment"
	pkgerrors "crm-services/pkg/errors"
)

// Repository defines the interface for payment data access operations.
type Repository interface {
	Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*domain.Payment, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, userID *int64, limit, offset int) ([]domain.Payment, error)
}

// PaymentUsecase implements the business logic for payment operations.
type PaymentUsecase struct {
	repo     Repository
	producer queue.Producer
	log      *zap.Logger
	validate *validator.Validate
}

// New creates a new instance of PaymentUsecase. Created payment ids are
// handed to producer for asynchronous downstream processing.
func New(r Repository, producer queue.Producer, log *zap.Logger) *PaymentUsecase {
	return &PaymentUsecase{repo: r, producer: producer, log: log, validate: validator.New()}
}

func formatValidationError(err error) error {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, e := range validationErrors {
			switch e.Tag() {
			case "required":
				messages = append(messages, fmt.Sprintf("%s is required", e.Field()))
			case "gt":
				messages = append(messages, fmt.Sprintf("%s must be greater than %s", e.Field(), e.Param()))
			case "oneof":
				messages = append(messages, fmt.Sprintf("%s must be one of: %s", e.Field(), e.Param()))
			case "max":
				messages = append(messages, fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param()))
			default:
				messages = append(messages, fmt.Sprintf("%s is invalid", e.Field()))
			}
		}
		return pkgerrors.NewValidationError("", strings.Join(messages, ", "))
	}
	return err
}

// CreatePayment creates a new payment in "pending" status and enqueues its
// id on the work queue. Queue failures are logged but do not fail the
// request; the payment row is the source of truth.
func (uc *PaymentUsecase) CreatePayment(ctx context.Context, in CreatePaymentRequest) (*domain.Payment, error) {
	uc.log.Info("creating payment", zap.Int64("user_id", in.UserID), zap.Float64("amount", in.Amount))

	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("validate failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	currency := in.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	p, err := uc.repo.Create(ctx, &domain.Payment{
		UserID:      in.UserID,
		Amount:      in.Amount,
		Currency:    currency,
		Description: in.Description,
		Status:      domain.StatusPending,
	})
	if err != nil {
		uc.log.Error("failed to create payment", zap.Error(err))
		return nil, err
	}

	if err := uc.producer.Push(ctx, p.ID); err != nil {
		uc.log.Warn("failed to enqueue payment for processing", zap.Int64("id", p.ID), zap.Error(err))
	}

	return p, nil
}

// GetPayment retrieves a payment by ID.
func (uc *PaymentUsecase) GetPayment(ctx context.Context, id int64) (*domain.Payment, error) {
	if id <= 0 {
		uc.log.Warn("get payment validation failed", zap.Int64("id", id))
		return nil, pkgerrors.NewValidationError("id", "must be a positive number")
	}

	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.log.Error("failed to get payment", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return p, nil
}

// UpdateStatus transitions a payment to a new status. Values outside the
// enumerated set are rejected before storage is touched.
func (uc *PaymentUsecase) UpdateStatus(ctx context.Context, in UpdateStatusRequest) (*domain.Payment, error) {
	uc.log.Info("updating payment status", zap.Int64("id", in.ID), zap.String("status", in.Status))

	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("validate failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	p, err := uc.repo.UpdateStatus(ctx, in.ID, in.Status)
	if err != nil {
		uc.log.Error("failed to update payment status", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	return p, nil
}

// DeletePayment deletes a payment by ID.
func (uc *PaymentUsecase) DeletePayment(ctx context.Context, id int64) error {
	uc.log.Info("deleting payment", zap.Int64("id", id))

	if id <= 0 {
		uc.log.Warn("delete payment validation failed", zap.Int64("id", id))
		return pkgerrors.NewValidationError("id", "must be a positive number")
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.log.Error("failed to delete payment", zap.Int64("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ListPayments retrieves a page of payments ordered by creation time
// descending, optionally filtered by user id.
func (uc *PaymentUsecase) ListPayments(ctx context.Context, in ListPaymentsRequest) ([]domain.Payment, error) {
	limit, offset := normalizePage(in.Limit, in.Offset)

	uc.log.Info("listing payments", zap.Int("limit", limit), zap.Int("offset", offset))

	payments, err := uc.repo.List(ctx, in.UserID, limit, offset)
	if err != nil {
		uc.log.Error("failed to list payments", zap.Error(err))
		return nil, err
	}

	return payments, nil
}

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 100
	}
	if limit > 1000 {
		limit = 1000
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
