package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	FindByReference(ctx context.Context, reference string) (model.Order, error)
	Create(ctx context.Context, order model.Order) (int64, error)

	// MarkPaymentCompleted flips payment_status to completed and status to
	// confirmed in one conditional update. Returns the order and whether
	// this call performed the transition; false with a nil error means the
	// order was already completed (duplicate delivery).
	MarkPaymentCompleted(ctx context.Context, reference string) (model.Order, bool, error)

	// MarkPaymentFailed cancels a still-pending order. Completed orders
	// are never demoted.
	MarkPaymentFailed(ctx context.Context, reference string) (model.Order, bool, error)

	// Same key returns the same order on replayed checkouts.
	FindByIdempotencyKey(ctx context.Context, buyerID int64, key string) (model.Order, bool, error)
}
