package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"app/internal/domain/model"
	"app/internal/paystack"
	repo "app/internal/repository"
)

// PaymentGateway is the outbound edge to the hosted checkout.
type PaymentGateway interface {
	InitializeTransaction(ctx context.Context, in paystack.InitializeTransactionInput) (paystack.InitializeTransactionOutput, error)
}

// CheckoutUsecase snapshots the active cart into a pending order and
// opens a gateway checkout session for it. The order stays pending until
// the webhook flow finalizes it.
type CheckoutUsecase struct {
	tx       repo.TransactionManager
	userRepo repo.UserRepository
	gateway  PaymentGateway
	idGen    IDGenerator
}

func NewCheckoutUsecase(
	tx repo.TransactionManager,
	userRepo repo.UserRepository,
	gateway PaymentGateway,
	idGen IDGenerator,
) *CheckoutUsecase {
	return &CheckoutUsecase{tx: tx, userRepo: userRepo, gateway: gateway, idGen: idGen}
}

type CheckoutInput struct {
	IdempotencyKey string
}

type CheckoutOutput struct {
	OrderID          int64  `json:"order_id"`
	Reference        string `json:"reference"`
	AuthorizationURL string `json:"authorization_url"`
	Total            int64  `json:"total"`
}

func (u *CheckoutUsecase) Checkout(ctx context.Context, userID int64, in CheckoutInput) (CheckoutOutput, error) {
	if userID <= 0 {
		return CheckoutOutput{}, NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}
	key := strings.TrimSpace(in.IdempotencyKey)
	if key == "" || len(key) > 255 {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "invalid idempotencyKey")
	}

	buyer, err := u.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return CheckoutOutput{}, NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}
	if err != nil {
		return CheckoutOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	var order model.Order
	var replay bool

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		// same key returns the same order
		existing, found, err := r.Orders().FindByIdempotencyKey(ctx, userID, key)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if found {
			order = existing
			replay = true
			return nil
		}

		cart, err := r.Carts().FindActiveByUserID(ctx, userID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusBadRequest, "cart empty")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		cartItems, err := r.CartItems().ListByCartID(ctx, cart.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if len(cartItems) == 0 {
			return NewHTTPError(http.StatusBadRequest, "cart empty")
		}

		orderItems := make([]model.OrderItem, 0, len(cartItems))
		var total int64 = 0

		for _, ci := range cartItems {
			a, err := r.Artworks().FindByID(ctx, ci.ArtworkID)
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusBadRequest, "artwork not available")
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if !a.IsAvailable {
				return NewHTTPError(http.StatusBadRequest, "artwork not available")
			}

			orderItems = append(orderItems, model.OrderItem{
				ArtworkID:     a.ID,
				CreatorID:     a.CreatorID,
				TitleSnapshot: a.Title,
				UnitPrice:     ci.UnitPrice,
				Quantity:      ci.Quantity,
			})

			total += ci.UnitPrice * ci.Quantity
		}

		cartID := cart.ID
		newOrder := model.Order{
			BuyerID:          userID,
			CartID:           &cartID,
			PaymentReference: u.idGen.NewID(),
			PaymentStatus:    model.PaymentStatusPending,
			Status:           model.OrderStatusPending,
			Total:            total,
			IdempotencyKey:   key,
		}

		orderID, err := r.Orders().Create(ctx, newOrder)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		newOrder.ID = orderID

		for i := range orderItems {
			orderItems[i].OrderID = orderID
		}
		if err := r.OrderItems().CreateBatch(ctx, orderItems); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		order = newOrder
		return nil
	})
	if err != nil {
		if _, ok := AsHTTPError(err); ok {
			return CheckoutOutput{}, err
		}
		return CheckoutOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// A replayed checkout for an already-finalized order has no session
	// to open again.
	if replay && order.PaymentStatus != model.PaymentStatusPending {
		return CheckoutOutput{}, NewHTTPError(http.StatusConflict, "order already processed")
	}

	session, err := u.gateway.InitializeTransaction(ctx, paystack.InitializeTransactionInput{
		Email:     buyer.Email,
		Amount:    order.Total * 100, // naira → kobo
		Reference: order.PaymentReference,
		Metadata:  paystack.EventMetadata{CartID: order.CartID, OrderID: &order.ID},
	})
	if err != nil {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadGateway, "payment initialization failed")
	}

	return CheckoutOutput{
		OrderID:          order.ID,
		Reference:        order.PaymentReference,
		AuthorizationURL: session.AuthorizationURL,
		Total:            order.Total,
	}, nil
}
