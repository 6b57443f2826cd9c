package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderItemRepository interface {
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)
	CreateBatch(ctx context.Context, items []model.OrderItem) error
}
