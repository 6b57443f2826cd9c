package repository

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type NotificationGormRepository struct {
	db *gorm.DB
}

func NewNotificationGormRepository(db *gorm.DB) *NotificationGormRepository {
	return &NotificationGormRepository{db: db}
}

func (r *NotificationGormRepository) Create(ctx context.Context, n model.Notification) (model.Notification, error) {
	if err := r.db.WithContext(ctx).Create(&n).Error; err != nil {
		return model.Notification{}, err
	}
	return n, nil
}

func (r *NotificationGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Notification, error) {
	var items []model.Notification

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id desc").
		Find(&items).Error; err != nil {
		return []model.Notification{}, err
	}

	return items, nil
}

// MarkRead is scoped to the owner so one user cannot read-flag another's.
func (r *NotificationGormRepository) MarkRead(ctx context.Context, notificationID int64, userID int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("read", true)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
