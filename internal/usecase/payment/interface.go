package payment

import (
	"context"

	domain "crm-services/internal/domain/payment"
)

// Usecase defines the interface for payment business logic operations.
type Usecase interface {
	CreatePayment(ctx context.Context, in CreatePaymentRequest) (*domain.Payment, error)
	GetPayment(ctx context.Context, id int64) (*domain.Payment, error)
	UpdateStatus(ctx context.Context, in UpdateStatusRequest) (*domain.Payment, error)
	DeletePayment(ctx context.Context, id int64) error
	ListPayments(ctx context.Context, in ListPaymentsRequest) ([]domain.Payment, error)
}
