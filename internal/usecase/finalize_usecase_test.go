package usecase_test

import (
	"context"
	"strings"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/mock"
)

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) FindByReference(ctx context.Context, reference string) (model.Order, error) {
	args := m.Called(ctx, reference)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) MarkPaymentCompleted(ctx context.Context, reference string) (model.Order, bool, error) {
	args := m.Called(ctx, reference)
	o, _ := args.Get(0).(model.Order)
	return o, args.Bool(1), args.Error(2)
}

func (m *OrderRepoMock) MarkPaymentFailed(ctx context.Context, reference string) (model.Order, bool, error) {
	args := m.Called(ctx, reference)
	o, _ := args.Get(0).(model.Order)
	return o, args.Bool(1), args.Error(2)
}

func (m *OrderRepoMock) FindByIdempotencyKey(ctx context.Context, buyerID int64, key string) (model.Order, bool, error) {
	args := m.Called(ctx, buyerID, key)
	o, _ := args.Get(0).(model.Order)
	return o, args.Bool(1), args.Error(2)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

func (m *OrderItemRepoMock) CreateBatch(ctx context.Context, items []model.OrderItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

type finalizerFixture struct {
	orders     *OrderRepoMock
	orderItems *OrderItemRepoMock
	wallet     *WalletRepoMock
	steps      *StepRepoMock
	carts      *CartRepoMock
	notifs     *NotificationRepoMock
	uc         *usecase.OrderFinalizer
}

func newFinalizerFixture() *finalizerFixture {
	f := &finalizerFixture{
		orders:     new(OrderRepoMock),
		orderItems: new(OrderItemRepoMock),
		wallet:     new(WalletRepoMock),
		steps:      new(StepRepoMock),
		carts:      new(CartRepoMock),
		notifs:     new(NotificationRepoMock),
	}

	notifier := usecase.NewNotificationUsecase(f.notifs, nil, nil)
	completion := usecase.NewCompletionUsecase(f.wallet, f.steps, f.carts, notifier, nil)
	f.uc = usecase.NewOrderFinalizer(f.orders, f.orderItems, completion, notifier, "+254 700 000000", nil)
	return f
}

func TestFinalizer_ChargeSuccess_RunsCompletion(t *testing.T) {
	f := newFinalizerFixture()

	cartID := int64(3)
	order := model.Order{
		ID: 55, BuyerID: 7, CartID: &cartID,
		PaymentReference: "ref-55",
		PaymentStatus:    model.PaymentStatusCompleted,
		Status:           model.OrderStatusConfirmed,
	}

	f.orders.On("MarkPaymentCompleted", mock.Anything, "ref-55").Return(order, true, nil)
	f.orderItems.On("ListByOrderID", mock.Anything, int64(55)).Return([]model.OrderItem{
		{ID: 501, OrderID: 55, ArtworkID: 100, CreatorID: 5, UnitPrice: 150000, Quantity: 1},
	}, nil)

	f.steps.On("TryInsert", mock.Anything, int64(55), mock.Anything).Return(true, nil)
	f.wallet.On("Create", mock.Anything, mock.Anything).Return(model.WalletTransaction{ID: 1}, nil)
	f.notifs.On("Create", mock.Anything, mock.Anything).Return(model.Notification{ID: 1}, nil)
	f.carts.On("Clear", mock.Anything, int64(3)).Return(nil)
	f.carts.On("UpdateStatus", mock.Anything, int64(3), model.CartStatusCheckedOut).Return(nil)

	f.uc.HandleChargeSuccess(context.Background(), "ref-55", nil)

	f.wallet.AssertNumberOfCalls(t, "Create", 1)
	f.carts.AssertExpectations(t)
}

func TestFinalizer_DuplicateDeliveryIsNoOp(t *testing.T) {
	f := newFinalizerFixture()

	order := model.Order{ID: 55, PaymentReference: "ref-55", PaymentStatus: model.PaymentStatusCompleted}
	f.orders.On("MarkPaymentCompleted", mock.Anything, "ref-55").Return(order, false, nil)

	f.uc.HandleChargeSuccess(context.Background(), "ref-55", nil)

	f.orderItems.AssertNotCalled(t, "ListByOrderID", mock.Anything, mock.Anything)
	f.wallet.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.notifs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFinalizer_RedeliveredChargeSuccessCreditsOnce(t *testing.T) {
	f := newFinalizerFixture()

	cartID := int64(3)
	order := model.Order{
		ID: 55, BuyerID: 7, CartID: &cartID,
		PaymentReference: "ref-55",
		PaymentStatus:    model.PaymentStatusCompleted,
		Status:           model.OrderStatusConfirmed,
	}

	// first delivery wins the transition, the second finds it done
	f.orders.On("MarkPaymentCompleted", mock.Anything, "ref-55").Return(order, true, nil).Once()
	f.orders.On("MarkPaymentCompleted", mock.Anything, "ref-55").Return(order, false, nil)

	f.orderItems.On("ListByOrderID", mock.Anything, int64(55)).Return([]model.OrderItem{
		{ID: 501, OrderID: 55, ArtworkID: 100, CreatorID: 5, UnitPrice: 150000, Quantity: 1},
	}, nil)
	f.steps.On("TryInsert", mock.Anything, int64(55), mock.Anything).Return(true, nil)
	f.wallet.On("Create", mock.Anything, mock.Anything).Return(model.WalletTransaction{ID: 1}, nil)
	f.notifs.On("Create", mock.Anything, mock.Anything).Return(model.Notification{ID: 1}, nil)
	f.carts.On("Clear", mock.Anything, int64(3)).Return(nil)
	f.carts.On("UpdateStatus", mock.Anything, int64(3), model.CartStatusCheckedOut).Return(nil)

	f.uc.HandleChargeSuccess(context.Background(), "ref-55", nil)
	f.uc.HandleChargeSuccess(context.Background(), "ref-55", nil)

	f.wallet.AssertNumberOfCalls(t, "Create", 1)
	f.carts.AssertNumberOfCalls(t, "Clear", 1)
	f.orderItems.AssertNumberOfCalls(t, "ListByOrderID", 1)
}

func TestFinalizer_UnknownReferenceIsSwallowed(t *testing.T) {
	f := newFinalizerFixture()

	f.orders.On("MarkPaymentCompleted", mock.Anything, "ref-??").Return(model.Order{}, false, repo.ErrNotFound)

	// must not panic or surface anything
	f.uc.HandleChargeSuccess(context.Background(), "ref-??", nil)

	f.orderItems.AssertNotCalled(t, "ListByOrderID", mock.Anything, mock.Anything)
}

func TestFinalizer_ChargeFailed_CancelsAndNotifiesBuyer(t *testing.T) {
	f := newFinalizerFixture()

	order := model.Order{
		ID: 55, BuyerID: 7,
		PaymentReference: "ref-55",
		PaymentStatus:    model.PaymentStatusFailed,
		Status:           model.OrderStatusCancelled,
	}
	f.orders.On("MarkPaymentFailed", mock.Anything, "ref-55").Return(order, true, nil)
	f.notifs.On("Create", mock.Anything, mock.MatchedBy(func(n model.Notification) bool {
		return n.UserID == 7 &&
			n.Type == model.NotificationTypePaymentFailed &&
			strings.Contains(n.Message, "+254 700 000000")
	})).Return(model.Notification{ID: 1}, nil)

	f.uc.HandleChargeFailed(context.Background(), "ref-55")

	f.notifs.AssertExpectations(t)
}

func TestFinalizer_ChargeFailed_CompletedOrderNotDemoted(t *testing.T) {
	f := newFinalizerFixture()

	order := model.Order{ID: 55, BuyerID: 7, PaymentStatus: model.PaymentStatusCompleted}
	f.orders.On("MarkPaymentFailed", mock.Anything, "ref-55").Return(order, false, nil)

	f.uc.HandleChargeFailed(context.Background(), "ref-55")

	f.notifs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
