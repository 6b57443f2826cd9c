package repository

import "context"

// Repositories rebuilt over a single transaction handle.
type TxRepos interface {
	Orders() OrderRepository
	OrderItems() OrderItemRepository
	Carts() CartRepository
	CartItems() CartItemRepository
	Artworks() ArtworkRepository
}

// TransactionManager hides begin/commit/rollback from usecases.
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
