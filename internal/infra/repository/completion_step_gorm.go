package repository

import (
	"context"

	"app/internal/domain/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CompletionStepGormRepository struct {
	db *gorm.DB
}

func NewCompletionStepGormRepository(db *gorm.DB) *CompletionStepGormRepository {
	return &CompletionStepGormRepository{db: db}
}

// TryInsert claims a completion step. ON CONFLICT DO NOTHING plus
// RowsAffected turns the unique (order_id, step_key) index into the
// idempotency gate: false means the step already ran.
func (r *CompletionStepGormRepository) TryInsert(ctx context.Context, orderID int64, stepKey string) (bool, error) {
	step := model.CompletionStep{
		OrderID: orderID,
		StepKey: stepKey,
	}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&step)

	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
