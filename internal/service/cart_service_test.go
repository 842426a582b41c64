package service

import (
	"context"
	"testing"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cartMocks struct {
	carts    *MockCartRepository
	listings *MockListingRepository
	orders   *MockOrderRepository
	pub      *MockPublisher
}

const testCartTTL = 48 * time.Hour

func newCartServiceForTest() (CartService, cartMocks) {
	m := cartMocks{
		carts:    new(MockCartRepository),
		listings: new(MockListingRepository),
		orders:   new(MockOrderRepository),
		pub:      new(MockPublisher),
	}
	return NewCartService(m.carts, m.listings, m.orders, m.pub, logger.NewNop(), testCartTTL), m
}

func TestCartService_Create(t *testing.T) {
	svc, m := newCartServiceForTest()
	ctx := context.Background()
	m.carts.On("Save", ctx, mock.AnythingOfType("*entity.Cart"), testCartTTL).Return(nil).Once()

	view, err := svc.Create(ctx)
	require.NoError(t, err)
	_, err = uuid.Parse(view.ID)
	assert.NoError(t, err)
	assert.Empty(t, view.Items)
	m.carts.AssertExpectations(t)
}

func TestCartService_AddItem(t *testing.T) {
	svc, m := newCartServiceForTest()
	ctx := context.Background()
	id := uuid.NewString()

	m.carts.On("Get", ctx, id).Return(entity.NewCart(id), nil).Once()
	m.listings.On("GetByID", ctx, "d1").Return(&entity.Listing{ID: "d1", Name: "ai.com", Price: 100, Status: entity.ListingStatusAvailable}, nil).Once()
	m.carts.On("Save", ctx, mock.MatchedBy(func(c *entity.Cart) bool { return len(c.Items) == 1 }), testCartTTL).Return(nil).Once()

	view, err := svc.AddItem(ctx, id, "d1")
	require.NoError(t, err)
	assert.Equal(t, 100.0, view.Total)
	m.carts.AssertExpectations(t)
}

func TestCartService_AddItem_Rejections(t *testing.T) {
	svc, m := newCartServiceForTest()
	ctx := context.Background()
	id := uuid.NewString()

	sold := &entity.Listing{ID: "d2", Name: "sold.com", Status: entity.ListingStatusSold}
	m.carts.On("Get", ctx, id).Return(entity.NewCart(id), nil).Once()
	m.listings.On("GetByID", ctx, "d2").Return(sold, nil).Once()
	_, err := svc.AddItem(ctx, id, "d2")
	assert.ErrorIs(t, err, entity.ErrNotAvailable)

	withItem := entity.NewCart(id)
	avail := entity.Listing{ID: "d1", Name: "ai.com", Status: entity.ListingStatusAvailable}
	require.NoError(t, withItem.Add(avail))
	m.carts.On("Get", ctx, id).Return(withItem, nil).Once()
	m.listings.On("GetByID", ctx, "d1").Return(&avail, nil).Once()
	_, err = svc.AddItem(ctx, id, "d1")
	assert.ErrorIs(t, err, entity.ErrItemAlreadyAdded)

	_, err = svc.AddItem(ctx, "not-a-uuid", "d1")
	assert.ErrorIs(t, err, entity.ErrValidation)
	m.carts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestCartService_RemoveItem_NotInCart(t *testing.T) {
	svc, m := newCartServiceForTest()
	ctx := context.Background()
	id := uuid.NewString()
	m.carts.On("Get", ctx, id).Return(entity.NewCart(id), nil).Once()

	_, err := svc.RemoveItem(ctx, id, "d1")
	assert.ErrorIs(t, err, entity.ErrItemNotInCart)
}

func TestCartService_Checkout(t *testing.T) {
	svc, m := newCartServiceForTest()
	ctx := context.Background()
	id := uuid.NewString()

	cart := entity.NewCart(id)
	a := entity.Listing{ID: "d1", Name: "ai.com", Price: 100, Status: entity.ListingStatusAvailable}
	b := entity.Listing{ID: "d2", Name: "shop.io", Price: 250, Status: entity.ListingStatusAvailable}
	require.NoError(t, cart.Add(a))
	require.NoError(t, cart.Add(b))

	m.carts.On("Get", ctx, id).Return(cart, nil).Once()
	m.listings.On("GetByID", ctx, "d1").Return(&a, nil).Once()
	bNow := b
	bNow.Price = 300
	m.listings.On("GetByID", ctx, "d2").Return(&bNow, nil).Once()
	m.orders.On("Create", ctx, mock.MatchedBy(func(o *entity.Order) bool { return o.DomainID == "d1" })).Return("o1", nil).Once()
	m.orders.On("Create", ctx, mock.MatchedBy(func(o *entity.Order) bool { return o.DomainID == "d2" && o.Price == 300 })).Return("o2", nil).Once()
	m.pub.On("Publish", ctx, SubjectOrderCreated, mock.MatchedBy(func(ev OrderCreatedEvent) bool {
		return ev.Source == OrderSourceCheckout
	})).Return(nil).Twice()
	m.carts.On("Delete", ctx, id).Return(nil).Once()

	res, err := svc.Checkout(ctx, id, CheckoutInput{BuyerName: "Jane", BuyerEmail: "jane@example.com"})
	require.NoError(t, err)
	require.Len(t, res.Orders, 2)
	assert.Equal(t, 400.0, res.Total)
	assert.Equal(t, entity.OrderStatusPending, res.Orders[0].Status)
	m.orders.AssertExpectations(t)
	m.carts.AssertExpectations(t)
	m.pub.AssertExpectations(t)
}

func TestCartService_Checkout_EmptyOrSoldOut(t *testing.T) {
	svc, m := newCartServiceForTest()
	ctx := context.Background()
	id := uuid.NewString()

	m.carts.On("Get", ctx, id).Return(entity.NewCart(id), nil).Once()
	_, err := svc.Checkout(ctx, id, CheckoutInput{BuyerName: "Jane", BuyerEmail: "jane@example.com"})
	assert.ErrorIs(t, err, ErrEmptyCart)

	cart := entity.NewCart(id)
	a := entity.Listing{ID: "d1", Name: "ai.com", Status: entity.ListingStatusAvailable}
	require.NoError(t, cart.Add(a))
	m.carts.On("Get", ctx, id).Return(cart, nil).Once()
	a.Status = entity.ListingStatusSold
	m.listings.On("GetByID", ctx, "d1").Return(&a, nil).Once()

	_, err = svc.Checkout(ctx, id, CheckoutInput{BuyerName: "Jane", BuyerEmail: "jane@example.com"})
	assert.ErrorIs(t, err, entity.ErrNotAvailable)
	m.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.carts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
