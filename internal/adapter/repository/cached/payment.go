package cached

import (
	"context"

	"golang.org/x/sync/singleflight"

	"crm-services/internal/adapter/cache"
	"crm-services/internal/domain/payment"
	usecase "crm-services/internal/usecase/payment"
)

// PaymentRepository wraps a payment repository with cache-aside reads.
type PaymentRepository struct {
	next  usecase.Repository
	cache cache.Cache[payment.Payment]
	group singleflight.Group
}

// NewPaymentRepository creates a cached payment repository decorator.
func NewPaymentRepository(next usecase.Repository, c cache.Cache[payment.Payment]) *PaymentRepository {
	return &PaymentRepository{next: next, cache: c}
}

func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) (*payment.Payment, error) {
	created, err := r.next.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	_ = r.cache.Set(ctx, created.ID, created)
	return created, nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*payment.Payment, error) {
	return fetch(ctx, r.cache, &r.group, id, r.next.GetByID)
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, id int64, status string) (*payment.Payment, error) {
	updated, err := r.next.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	_ = r.cache.Delete(ctx, id)
	return updated, nil
}

func (r *PaymentRepository) Delete(ctx context.Context, id int64) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	_ = r.cache.Delete(ctx, id)
	return nil
}

// List bypasses the cache; only single-record reads are cached.
func (r *PaymentRepository) List(ctx context.Context, userID *int64, limit, offset int) ([]payment.Payment, error) {
	return r.next.List(ctx, userID, limit, offset)
}
