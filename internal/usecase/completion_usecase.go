package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"app/internal/domain/model"
	"app/internal/observability"
	repo "app/internal/repository"
)

// CompletionUsecase applies the post-payment side effects: seller wallet
// credits, buyer/seller notifications, cart clear. Each step claims a
// journal row first, so a redelivered webhook skips what already ran,
// and each step fails independently — a notification error must not
// block a wallet credit.
type CompletionUsecase struct {
	walletRepo repo.WalletRepository
	stepRepo   repo.CompletionStepRepository
	cartRepo   repo.CartRepository
	notifier   *NotificationUsecase
	metrics    *observability.AppMetrics
}

func NewCompletionUsecase(
	walletRepo repo.WalletRepository,
	stepRepo repo.CompletionStepRepository,
	cartRepo repo.CartRepository,
	notifier *NotificationUsecase,
	metrics *observability.AppMetrics,
) *CompletionUsecase {
	return &CompletionUsecase{
		walletRepo: walletRepo,
		stepRepo:   stepRepo,
		cartRepo:   cartRepo,
		notifier:   notifier,
		metrics:    metrics,
	}
}

// Process runs the full fan-out for a confirmed order. Errors are logged
// and swallowed; the caller (the webhook path) always acks the provider.
func (u *CompletionUsecase) Process(ctx context.Context, order model.Order, items []model.OrderItem, cartID *int64) {
	u.creditSellers(ctx, order, items)
	u.notifyBuyer(ctx, order)
	u.notifySellers(ctx, order, items)

	if cartID != nil {
		u.clearCart(ctx, order, *cartID)
	}
}

func (u *CompletionUsecase) creditSellers(ctx context.Context, order model.Order, items []model.OrderItem) {
	for _, it := range items {
		stepKey := fmt.Sprintf("credit:%d", it.ID)

		fresh, err := u.stepRepo.TryInsert(ctx, order.ID, stepKey)
		if err != nil {
			slog.Error("completion journal write failed",
				"order_id", order.ID, "step", stepKey, "err", err)
			continue
		}
		if !fresh {
			continue
		}

		metadata, _ := json.Marshal(map[string]int64{
			"order_id":   order.ID,
			"artwork_id": it.ArtworkID,
		})

		_, err = u.walletRepo.Create(ctx, model.WalletTransaction{
			UserID:      it.CreatorID,
			Amount:      it.UnitPrice * it.Quantity,
			Type:        model.TransactionTypeCredit,
			Status:      model.TransactionStatusCompleted,
			Description: fmt.Sprintf("Sale of %s (order #%d)", it.TitleSnapshot, order.ID),
			Reference:   fmt.Sprintf("ORD-%d-ITEM-%d", order.ID, it.ID),
			Metadata:    metadata,
		})
		if err != nil {
			slog.Error("wallet credit failed",
				"order_id", order.ID, "order_item_id", it.ID, "creator_id", it.CreatorID, "err", err)
			continue
		}

		if u.metrics != nil {
			u.metrics.WalletCredits.Add(ctx, 1)
		}
	}
}

func (u *CompletionUsecase) notifyBuyer(ctx context.Context, order model.Order) {
	stepKey := fmt.Sprintf("notify_buyer:%d", order.ID)

	fresh, err := u.stepRepo.TryInsert(ctx, order.ID, stepKey)
	if err != nil {
		slog.Error("completion journal write failed",
			"order_id", order.ID, "step", stepKey, "err", err)
		return
	}
	if !fresh {
		return
	}

	payload, _ := json.Marshal(map[string]interface{}{
		"order_id":  order.ID,
		"reference": order.PaymentReference,
	})

	err = u.notifier.Notify(ctx, NotifyInput{
		UserID:  order.BuyerID,
		Type:    model.NotificationTypeOrderConfirmed,
		Title:   "Order confirmed",
		Message: fmt.Sprintf("Your payment for order #%d was received.", order.ID),
		Payload: payload,
	})
	if err != nil {
		slog.Error("buyer notification failed", "order_id", order.ID, "err", err)
	}
}

func (u *CompletionUsecase) notifySellers(ctx context.Context, order model.Order, items []model.OrderItem) {
	seen := map[int64]bool{}

	for _, it := range items {
		if seen[it.CreatorID] {
			continue
		}
		seen[it.CreatorID] = true

		stepKey := fmt.Sprintf("notify_seller:%d", it.CreatorID)

		fresh, err := u.stepRepo.TryInsert(ctx, order.ID, stepKey)
		if err != nil {
			slog.Error("completion journal write failed",
				"order_id", order.ID, "step", stepKey, "err", err)
			continue
		}
		if !fresh {
			continue
		}

		payload, _ := json.Marshal(map[string]interface{}{
			"order_id": order.ID,
		})

		err = u.notifier.Notify(ctx, NotifyInput{
			UserID:  it.CreatorID,
			Type:    model.NotificationTypeNewSale,
			Title:   "New sale",
			Message: fmt.Sprintf("You made a sale on order #%d.", order.ID),
			Payload: payload,
		})
		if err != nil {
			slog.Error("seller notification failed",
				"order_id", order.ID, "creator_id", it.CreatorID, "err", err)
		}
	}
}

func (u *CompletionUsecase) clearCart(ctx context.Context, order model.Order, cartID int64) {
	stepKey := fmt.Sprintf("clear_cart:%d", cartID)

	fresh, err := u.stepRepo.TryInsert(ctx, order.ID, stepKey)
	if err != nil {
		slog.Error("completion journal write failed",
			"order_id", order.ID, "step", stepKey, "err", err)
		return
	}
	if !fresh {
		return
	}

	if err := u.cartRepo.Clear(ctx, cartID); err != nil {
		slog.Error("cart clear failed", "order_id", order.ID, "cart_id", cartID, "err", err)
		return
	}

	if err := u.cartRepo.UpdateStatus(ctx, cartID, model.CartStatusCheckedOut); err != nil {
		slog.Error("cart status update failed", "order_id", order.ID, "cart_id", cartID, "err", err)
	}
}
