package repository

import (
	"context"
	"errors"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).Where("id = ?", orderID).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) FindByReference(ctx context.Context, reference string) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).Where("payment_reference = ?", reference).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&order).Error; err != nil {
		return 0, err
	}
	return order.ID, nil
}

// MarkPaymentCompleted performs the pending→completed transition as one
// conditional update, so two concurrent deliveries of the same event
// cannot both transition. RowsAffected tells us who won.
func (r *OrderGormRepository) MarkPaymentCompleted(ctx context.Context, reference string) (model.Order, bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("payment_reference = ? AND payment_status <> ?", reference, model.PaymentStatusCompleted).
		Updates(map[string]interface{}{
			"payment_status": model.PaymentStatusCompleted,
			"status":         model.OrderStatusConfirmed,
			"updated_at":     time.Now(),
		})

	if res.Error != nil {
		return model.Order{}, false, res.Error
	}

	transitioned := res.RowsAffected > 0

	o, err := r.FindByReference(ctx, reference)
	if err != nil {
		return model.Order{}, false, err
	}
	return o, transitioned, nil
}

func (r *OrderGormRepository) MarkPaymentFailed(ctx context.Context, reference string) (model.Order, bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("payment_reference = ? AND payment_status = ?", reference, model.PaymentStatusPending).
		Updates(map[string]interface{}{
			"payment_status": model.PaymentStatusFailed,
			"status":         model.OrderStatusCancelled,
			"updated_at":     time.Now(),
		})

	if res.Error != nil {
		return model.Order{}, false, res.Error
	}

	transitioned := res.RowsAffected > 0

	o, err := r.FindByReference(ctx, reference)
	if err != nil {
		return model.Order{}, false, err
	}
	return o, transitioned, nil
}

func (r *OrderGormRepository) FindByIdempotencyKey(ctx context.Context, buyerID int64, key string) (model.Order, bool, error) {
	var o model.Order
	err := r.db.WithContext(ctx).
		Where("buyer_id = ? AND idempotency_key = ?", buyerID, key).
		First(&o).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, false, nil
	}
	if err != nil {
		return model.Order{}, false, err
	}
	return o, true, nil
}
