package usecase

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"app/internal/domain/model"
	"app/internal/observability"
	repo "app/internal/repository"

	"gorm.io/datatypes"
)

// NotificationPublisher fans a written notification out to whatever is
// listening (redis pub/sub in production).
type NotificationPublisher interface {
	Publish(ctx context.Context, n model.Notification) error
}

type NotificationUsecase struct {
	notificationRepo repo.NotificationRepository
	publisher        NotificationPublisher
	metrics          *observability.AppMetrics
}

func NewNotificationUsecase(
	notificationRepo repo.NotificationRepository,
	publisher NotificationPublisher,
	metrics *observability.AppMetrics,
) *NotificationUsecase {
	return &NotificationUsecase{
		notificationRepo: notificationRepo,
		publisher:        publisher,
		metrics:          metrics,
	}
}

type NotifyInput struct {
	UserID  int64
	Type    model.NotificationType
	Title   string
	Message string
	Payload []byte // JSON, optional
}

// Notify writes the row, then publishes best-effort. A publish failure
// only logs; the row is the source of truth.
func (u *NotificationUsecase) Notify(ctx context.Context, in NotifyInput) error {
	n := model.Notification{
		UserID:  in.UserID,
		Type:    in.Type,
		Title:   in.Title,
		Message: in.Message,
	}
	if len(in.Payload) > 0 {
		n.Payload = datatypes.JSON(in.Payload)
	}

	created, err := u.notificationRepo.Create(ctx, n)
	if err != nil {
		return err
	}

	if u.metrics != nil {
		u.metrics.NotificationsCreated.Add(ctx, 1)
	}

	if u.publisher != nil {
		if err := u.publisher.Publish(ctx, created); err != nil {
			slog.Warn("notification publish failed",
				"user_id", in.UserID, "type", string(in.Type), "err", err)
		}
	}

	return nil
}

func (u *NotificationUsecase) List(ctx context.Context, userID int64) ([]model.Notification, error) {
	if userID <= 0 {
		return nil, NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}

	items, err := u.notificationRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *NotificationUsecase) MarkRead(ctx context.Context, userID int64, notificationID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}
	if notificationID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.notificationRepo.MarkRead(ctx, notificationID, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
