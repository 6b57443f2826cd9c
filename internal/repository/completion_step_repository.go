package repository

import "context"

type CompletionStepRepository interface {
	// TryInsert records that a completion step is about to run. Returns
	// false when the (order, step) pair already exists, which tells the
	// caller the step ran before and must be skipped.
	TryInsert(ctx context.Context, orderID int64, stepKey string) (bool, error)
}
