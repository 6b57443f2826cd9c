package repository

import (
	"context"

	"app/internal/domain/model"
)

type NotificationRepository interface {
	Create(ctx context.Context, n model.Notification) (model.Notification, error)
	ListByUserID(ctx context.Context, userID int64) ([]model.Notification, error)
	MarkRead(ctx context.Context, notificationID int64, userID int64) error
}
