package usecase_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	"app/internal/paystack"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByID(ctx context.Context, userID int64) (model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) UpdateLastLogin(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type GatewayMock struct{ mock.Mock }

func (m *GatewayMock) InitializeTransaction(ctx context.Context, in paystack.InitializeTransactionInput) (paystack.InitializeTransactionOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(paystack.InitializeTransactionOutput)
	return out, args.Error(1)
}

// txManagerStub runs the callback inline over the repo mocks, standing
// in for a real database transaction.
type txManagerStub struct {
	orders     *OrderRepoMock
	orderItems *OrderItemRepoMock
	carts      *CartRepoMock
	cartItems  *CartItemRepoMock
	artworks   *ArtworkRepoMock
}

func (s *txManagerStub) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(s)
}

func (s *txManagerStub) Orders() repo.OrderRepository         { return s.orders }
func (s *txManagerStub) OrderItems() repo.OrderItemRepository { return s.orderItems }
func (s *txManagerStub) Carts() repo.CartRepository           { return s.carts }
func (s *txManagerStub) CartItems() repo.CartItemRepository   { return s.cartItems }
func (s *txManagerStub) Artworks() repo.ArtworkRepository     { return s.artworks }

type checkoutFixture struct {
	tx      *txManagerStub
	users   *UserRepoMock
	gateway *GatewayMock
	idGen   *IDGenMock
	uc      *usecase.CheckoutUsecase
}

func newCheckoutFixture() *checkoutFixture {
	f := &checkoutFixture{
		tx: &txManagerStub{
			orders:     new(OrderRepoMock),
			orderItems: new(OrderItemRepoMock),
			carts:      new(CartRepoMock),
			cartItems:  new(CartItemRepoMock),
			artworks:   new(ArtworkRepoMock),
		},
		users:   new(UserRepoMock),
		gateway: new(GatewayMock),
		idGen:   new(IDGenMock),
	}
	f.uc = usecase.NewCheckoutUsecase(f.tx, f.users, f.gateway, f.idGen)
	return f
}

func TestCheckout_SnapshotsCartIntoPendingOrder(t *testing.T) {
	f := newCheckoutFixture()

	f.users.On("FindByID", mock.Anything, int64(7)).Return(model.User{ID: 7, Email: "buyer@example.com"}, nil)
	f.tx.orders.On("FindByIdempotencyKey", mock.Anything, int64(7), "key-1").Return(model.Order{}, false, nil)
	f.tx.carts.On("FindActiveByUserID", mock.Anything, int64(7)).Return(model.Cart{ID: 3, UserID: 7, Status: model.CartStatusActive}, nil)
	f.tx.cartItems.On("ListByCartID", mock.Anything, int64(3)).Return([]model.CartItem{
		{ID: 11, CartID: 3, ArtworkID: 100, Quantity: 2, UnitPrice: 50000},
	}, nil)
	f.tx.artworks.On("FindByID", mock.Anything, int64(100)).Return(model.Artwork{
		ID: 100, CreatorID: 5, Title: "Bronze Head", Price: 50000, IsAvailable: true,
	}, nil)
	f.idGen.On("NewID").Return("pay-ref-1")
	f.tx.orders.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.BuyerID == 7 &&
			o.Total == 100000 &&
			o.PaymentStatus == model.PaymentStatusPending &&
			o.IdempotencyKey == "key-1"
	})).Return(int64(55), nil)
	f.tx.orderItems.On("CreateBatch", mock.Anything, mock.MatchedBy(func(items []model.OrderItem) bool {
		return len(items) == 1 && items[0].OrderID == 55 && items[0].CreatorID == 5 && items[0].UnitPrice == 50000
	})).Return(nil)
	f.gateway.On("InitializeTransaction", mock.Anything, mock.MatchedBy(func(in paystack.InitializeTransactionInput) bool {
		// gateway takes kobo
		return in.Email == "buyer@example.com" && in.Amount == 10000000 && in.Reference == "pay-ref-1"
	})).Return(paystack.InitializeTransactionOutput{AuthorizationURL: "https://checkout.paystack.com/abc"}, nil)

	out, err := f.uc.Checkout(context.Background(), 7, usecase.CheckoutInput{IdempotencyKey: "key-1"})

	assert.NoError(t, err)
	assert.Equal(t, int64(55), out.OrderID)
	assert.Equal(t, "pay-ref-1", out.Reference)
	assert.Equal(t, int64(100000), out.Total)
	assert.Equal(t, "https://checkout.paystack.com/abc", out.AuthorizationURL)
	f.tx.orders.AssertExpectations(t)
	f.gateway.AssertExpectations(t)
}

func TestCheckout_ReplayReturnsExistingPendingOrder(t *testing.T) {
	f := newCheckoutFixture()

	f.users.On("FindByID", mock.Anything, int64(7)).Return(model.User{ID: 7, Email: "buyer@example.com"}, nil)
	f.tx.orders.On("FindByIdempotencyKey", mock.Anything, int64(7), "key-1").Return(model.Order{
		ID: 55, BuyerID: 7, PaymentReference: "pay-ref-1", PaymentStatus: model.PaymentStatusPending, Total: 100000,
	}, true, nil)
	f.gateway.On("InitializeTransaction", mock.Anything, mock.Anything).
		Return(paystack.InitializeTransactionOutput{AuthorizationURL: "https://checkout.paystack.com/abc"}, nil)

	out, err := f.uc.Checkout(context.Background(), 7, usecase.CheckoutInput{IdempotencyKey: "key-1"})

	assert.NoError(t, err)
	assert.Equal(t, int64(55), out.OrderID)
	f.tx.carts.AssertNotCalled(t, "FindActiveByUserID", mock.Anything, mock.Anything)
	f.tx.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckout_ReplayOfProcessedOrderConflicts(t *testing.T) {
	f := newCheckoutFixture()

	f.users.On("FindByID", mock.Anything, int64(7)).Return(model.User{ID: 7, Email: "buyer@example.com"}, nil)
	f.tx.orders.On("FindByIdempotencyKey", mock.Anything, int64(7), "key-1").Return(model.Order{
		ID: 55, PaymentStatus: model.PaymentStatusCompleted,
	}, true, nil)

	_, err := f.uc.Checkout(context.Background(), 7, usecase.CheckoutInput{IdempotencyKey: "key-1"})

	assertHTTPStatus(t, err, 409)
	f.gateway.AssertNotCalled(t, "InitializeTransaction", mock.Anything, mock.Anything)
}

func TestCheckout_EmptyCartRejected(t *testing.T) {
	f := newCheckoutFixture()

	f.users.On("FindByID", mock.Anything, int64(7)).Return(model.User{ID: 7}, nil)
	f.tx.orders.On("FindByIdempotencyKey", mock.Anything, int64(7), "key-1").Return(model.Order{}, false, nil)
	f.tx.carts.On("FindActiveByUserID", mock.Anything, int64(7)).Return(model.Cart{}, repo.ErrNotFound)

	_, err := f.uc.Checkout(context.Background(), 7, usecase.CheckoutInput{IdempotencyKey: "key-1"})

	assertHTTPStatus(t, err, 400)
}

func TestCheckout_UnavailableArtworkRejected(t *testing.T) {
	f := newCheckoutFixture()

	f.users.On("FindByID", mock.Anything, int64(7)).Return(model.User{ID: 7}, nil)
	f.tx.orders.On("FindByIdempotencyKey", mock.Anything, int64(7), "key-1").Return(model.Order{}, false, nil)
	f.tx.carts.On("FindActiveByUserID", mock.Anything, int64(7)).Return(model.Cart{ID: 3, UserID: 7}, nil)
	f.tx.cartItems.On("ListByCartID", mock.Anything, int64(3)).Return([]model.CartItem{
		{ID: 11, CartID: 3, ArtworkID: 100, Quantity: 1, UnitPrice: 50000},
	}, nil)
	f.tx.artworks.On("FindByID", mock.Anything, int64(100)).Return(model.Artwork{ID: 100, IsAvailable: false}, nil)

	_, err := f.uc.Checkout(context.Background(), 7, usecase.CheckoutInput{IdempotencyKey: "key-1"})

	assertHTTPStatus(t, err, 400)
	f.tx.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckout_MissingIdempotencyKeyRejected(t *testing.T) {
	f := newCheckoutFixture()

	_, err := f.uc.Checkout(context.Background(), 7, usecase.CheckoutInput{IdempotencyKey: "  "})

	assertHTTPStatus(t, err, 400)
	f.users.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}
