package usecase

import (
	"context"
	"errors"
	"net/http"

	repo "app/internal/repository"
)

// CartUsecase is the shopper-facing cart logic. The completion flow
// reuses the repositories directly; only request handlers come here.
type CartUsecase struct {
	cartRepo     repo.CartRepository
	cartItemRepo repo.CartItemRepository
	artworkRepo  repo.ArtworkRepository
}

func NewCartUsecase(
	cartRepo repo.CartRepository,
	cartItemRepo repo.CartItemRepository,
	artworkRepo repo.ArtworkRepository,
) *CartUsecase {
	return &CartUsecase{
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		artworkRepo:  artworkRepo,
	}
}

type CartItemResponse struct {
	ID           int64  `json:"id"`
	ArtworkID    int64  `json:"artwork_id"`
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumbnail_url"`
	UnitPrice    int64  `json:"unit_price"`
	Quantity     int64  `json:"quantity"`
	CreatorID    int64  `json:"creator_id"`
}

// CartResponse always carries items/subtotal/count; ID is null when the
// user has no active cart yet.
type CartResponse struct {
	ID       *int64             `json:"id"`
	Items    []CartItemResponse `json:"items"`
	Subtotal int64              `json:"subtotal"`
	Count    int64              `json:"count"`
}

type AddCartInput struct {
	ArtworkID int64
	Quantity  int64
}

type UpdateCartItemInput struct {
	Quantity int64
}

func emptyCartResponse() CartResponse {
	return CartResponse{ID: nil, Items: []CartItemResponse{}, Subtotal: 0, Count: 0}
}

// GetCart returns the empty shape instead of creating a cart; carts are
// only created lazily on the first add.
func (u *CartUsecase) GetCart(ctx context.Context, userID int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}

	cart, err := u.cartRepo.FindActiveByUserID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return emptyCartResponse(), nil
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, cart.ID)
}

// AddToCart validates availability, gets-or-creates the active cart and
// upserts the item (same artwork adds quantity).
func (u *CartUsecase) AddToCart(ctx context.Context, userID int64, in AddCartInput) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}
	if in.ArtworkID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid artworkId")
	}
	if in.Quantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	a, err := u.artworkRepo.FindByID(ctx, in.ArtworkID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "artwork not available")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !a.IsAvailable {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "artwork not available")
	}

	cart, err := u.cartRepo.GetOrCreateActiveByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// unit price captured at add time; later price changes don't follow
	if err := u.cartItemRepo.UpsertByCartAndArtwork(ctx, cart.ID, a.ID, in.Quantity, a.Price); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, cart.ID)
}

func (u *CartUsecase) UpdateCartItem(ctx context.Context, userID int64, cartItemID int64, in UpdateCartItemInput) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}
	if cartItemID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid itemId")
	}
	if in.Quantity < 1 {
		return NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	owned, err := u.cartItemRepo.IsOwnedByUser(ctx, cartItemID, userID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !owned {
		return NewHTTPError(http.StatusNotFound, "not found")
	}

	if err := u.cartItemRepo.UpdateQuantity(ctx, cartItemID, in.Quantity); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return nil
}

func (u *CartUsecase) DeleteCartItem(ctx context.Context, userID int64, cartItemID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}
	if cartItemID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid itemId")
	}

	owned, err := u.cartItemRepo.IsOwnedByUser(ctx, cartItemID, userID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !owned {
		return NewHTTPError(http.StatusNotFound, "not found")
	}

	if err := u.cartItemRepo.DeleteByID(ctx, cartItemID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return nil
}

// buildCartResponse joins each item to its artwork for title/thumbnail
// and totals subtotal/count from the snapshot prices.
func (u *CartUsecase) buildCartResponse(ctx context.Context, cartID int64) (CartResponse, error) {
	items, err := u.cartItemRepo.ListByCartID(ctx, cartID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	respItems := make([]CartItemResponse, 0, len(items))
	var subtotal int64 = 0
	var count int64 = 0

	for _, it := range items {
		a, err := u.artworkRepo.FindByID(ctx, it.ArtworkID)
		if errors.Is(err, repo.ErrNotFound) {
			// artwork removed since it was added; hide the item
			continue
		}
		if err != nil {
			return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}

		respItems = append(respItems, CartItemResponse{
			ID:           it.ID,
			ArtworkID:    it.ArtworkID,
			Title:        a.Title,
			ThumbnailURL: a.ThumbnailURL,
			UnitPrice:    it.UnitPrice,
			Quantity:     it.Quantity,
			CreatorID:    a.CreatorID,
		})

		subtotal += it.UnitPrice * it.Quantity
		count += it.Quantity
	}

	id := cartID
	return CartResponse{ID: &id, Items: respItems, Subtotal: subtotal, Count: count}, nil
}
