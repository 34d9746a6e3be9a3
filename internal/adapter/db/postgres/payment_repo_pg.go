package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"crm-services/internal/domain/payment"
	pkgerrors "crm-services/pkg/errors"
)

// PaymentRepoPG implements the payment repository interface using GORM.
type PaymentRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewPaymentRepoPG creates a new instance of PaymentRepoPG.
func NewPaymentRepoPG(db *gorm.DB, log *zap.Logger) *PaymentRepoPG {
	return &PaymentRepoPG{db: db, log: log}
}

// PaymentSchema represents the database schema for the payments table.
type PaymentSchema struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	UserID      int64     `gorm:"not null;index:idx_payments_user"`
	Amount      float64   `gorm:"type:decimal(10,2);not null"`
	Currency    string    `gorm:"size:10;not null;default:USD"`
	Description string    `gorm:"type:text"`
	Status      string    `gorm:"size:20;not null;default:pending;index:idx_payments_status"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index:idx_payments_created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the PaymentSchema model.
func (PaymentSchema) TableName() string {
	return "payments"
}

func (m *PaymentSchema) toDomain() *payment.Payment {
	return &payment.Payment{
		ID:          m.ID,
		UserID:      m.UserID,
		Amount:      m.Amount,
		Currency:    m.Currency,
		Description: m.Description,
		Status:      m.Status,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// Create inserts a new payment and returns the stored row including the
// server-assigned id and timestamps.
func (r *PaymentRepoPG) Create(ctx context.Context, p *payment.Payment) (*payment.Payment, error) {
	if p == nil {
		return nil, errors.New("payment cannot be nil")
	}

	model := PaymentSchema{
		UserID:      p.UserID,
		Amount:      p.Amount,
		Currency:    p.Currency,
		Description: p.Description,
		Status:      p.Status,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create payment in db", zap.Error(err), zap.Int64("user_id", p.UserID))
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	r.log.Info("payment created in db", zap.Int64("id", model.ID))
	return model.toDomain(), nil
}

// GetByID retrieves a payment by its unique ID.
func (r *PaymentRepoPG) GetByID(ctx context.Context, id int64) (*payment.Payment, error) {
	var model PaymentSchema
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Warn("payment not found", zap.Int64("id", id))
			return nil, pkgerrors.NewNotFoundError("payment", "payment not found")
		}
		r.log.Error("failed to get payment from db", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return model.toDomain(), nil
}

// UpdateStatus sets the payment status. The caller is responsible for
// validating the status against the enumeration before this is reached;
// updated_at is bumped by GORM.
func (r *PaymentRepoPG) UpdateStatus(ctx context.Context, id int64, status string) (*payment.Payment, error) {
	res := r.db.WithContext(ctx).Model(&PaymentSchema{}).Where("id = ?", id).Updates(map[string]any{
		"status": status,
	})
	if res.Error != nil {
		r.log.Error("failed to update payment status in db", zap.Error(res.Error), zap.Int64("id", id))
		return nil, fmt.Errorf("failed to update payment status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		r.log.Warn("payment not found on status update", zap.Int64("id", id))
		return nil, pkgerrors.NewNotFoundError("payment", "payment not found")
	}

	r.log.Info("payment status updated in db", zap.Int64("id", id), zap.String("status", status))
	return r.GetByID(ctx, id)
}

// Delete removes a payment row by ID.
func (r *PaymentRepoPG) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&PaymentSchema{}, id)
	if res.Error != nil {
		r.log.Error("failed to delete payment in db", zap.Error(res.Error), zap.Int64("id", id))
		return fmt.Errorf("failed to delete payment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		r.log.Warn("payment not found on delete", zap.Int64("id", id))
		return pkgerrors.NewNotFoundError("payment", "payment not found")
	}

	r.log.Info("payment deleted in db", zap.Int64("id", id))
	return nil
}

// List retrieves payments ordered by creation time descending, optionally
// filtered by user id, with limit/offset pagination.
func (r *PaymentRepoPG) List(ctx context.Context, userID *int64, limit, offset int) ([]payment.Payment, error) {
	q := r.db.WithContext(ctx).Model(&PaymentSchema{})
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}

	var models []PaymentSchema
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&models).Error
	if err != nil {
		r.log.Error("failed to list payments from db", zap.Error(err), zap.Int("limit", limit), zap.Int("offset", offset))
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	payments := make([]payment.Payment, len(models))
	for i, model := range models {
		payments[i] = *model.toDomain()
	}

	return payments, nil
}
