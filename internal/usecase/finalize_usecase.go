package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"app/internal/domain/model"
	"app/internal/observability"
	repo "app/internal/repository"
)

// OrderFinalizer turns gateway webhook events into order state. Every
// failure on this path is logged, never returned: the webhook handler
// acks the provider regardless, so nothing here may surface.
type OrderFinalizer struct {
	orderRepo     repo.OrderRepository
	orderItemRepo repo.OrderItemRepository
	completion    *CompletionUsecase
	notifier      *NotificationUsecase
	supportPhone  string
	metrics       *observability.AppMetrics
}

func NewOrderFinalizer(
	orderRepo repo.OrderRepository,
	orderItemRepo repo.OrderItemRepository,
	completion *CompletionUsecase,
	notifier *NotificationUsecase,
	supportPhone string,
	metrics *observability.AppMetrics,
) *OrderFinalizer {
	return &OrderFinalizer{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		completion:    completion,
		notifier:      notifier,
		supportPhone:  supportPhone,
		metrics:       metrics,
	}
}

// HandleChargeSuccess flips the order to completed/confirmed and hands
// it to the completion processor. The transition is a single conditional
// update, so a redelivered event finds zero affected rows and stops.
func (u *OrderFinalizer) HandleChargeSuccess(ctx context.Context, reference string, cartID *int64) {
	order, transitioned, err := u.orderRepo.MarkPaymentCompleted(ctx, reference)
	if errors.Is(err, repo.ErrNotFound) {
		slog.Warn("charge.success for unknown reference", "reference", reference)
		u.countFinalized(ctx, "unknown_reference")
		return
	}
	if err != nil {
		slog.Error("order completion update failed", "reference", reference, "err", err)
		u.countFinalized(ctx, "error")
		return
	}
	if !transitioned {
		// duplicate delivery; first one already did the work
		slog.Info("duplicate charge.success ignored", "reference", reference, "order_id", order.ID)
		u.countFinalized(ctx, "duplicate")
		return
	}

	items, err := u.orderItemRepo.ListByOrderID(ctx, order.ID)
	if err != nil {
		slog.Error("order items load failed", "reference", reference, "order_id", order.ID, "err", err)
		u.countFinalized(ctx, "error")
		return
	}

	if cartID == nil {
		cartID = order.CartID
	}

	u.completion.Process(ctx, order, items, cartID)
	u.countFinalized(ctx, "completed")
}

// HandleChargeFailed cancels a still-pending order and tells the buyer.
func (u *OrderFinalizer) HandleChargeFailed(ctx context.Context, reference string) {
	order, transitioned, err := u.orderRepo.MarkPaymentFailed(ctx, reference)
	if errors.Is(err, repo.ErrNotFound) {
		slog.Warn("charge.failed for unknown reference", "reference", reference)
		u.countFinalized(ctx, "unknown_reference")
		return
	}
	if err != nil {
		slog.Error("order failure update failed", "reference", reference, "err", err)
		u.countFinalized(ctx, "error")
		return
	}
	if !transitioned {
		slog.Info("charge.failed ignored, order not pending", "reference", reference, "order_id", order.ID)
		u.countFinalized(ctx, "duplicate")
		return
	}

	message := fmt.Sprintf("Your payment for order #%d did not go through.", order.ID)
	if u.supportPhone != "" {
		message += fmt.Sprintf(" Contact support on %s.", u.supportPhone)
	}

	err = u.notifier.Notify(ctx, NotifyInput{
		UserID:  order.BuyerID,
		Type:    model.NotificationTypePaymentFailed,
		Title:   "Payment failed",
		Message: message,
	})
	if err != nil {
		slog.Error("payment-failed notification failed", "order_id", order.ID, "err", err)
	}

	u.countFinalized(ctx, "failed")
}

func (u *OrderFinalizer) countFinalized(ctx context.Context, result string) {
	if u.metrics != nil {
		u.metrics.OrdersFinalized.Add(ctx, 1,
			observability.WithResult(result))
	}
}
