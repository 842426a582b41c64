package service

import (
	"context"
	"testing"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderService_Create(t *testing.T) {
	orders := new(MockOrderRepository)
	listings := new(MockListingRepository)
	pub := new(MockPublisher)
	svc := NewOrderService(orders, listings, pub, logger.NewNop())
	ctx := context.Background()

	listings.On("GetByID", ctx, "d1").Return(&entity.Listing{ID: "d1", Name: "ai.com"}, nil).Once()
	orders.On("Create", ctx, mock.MatchedBy(func(o *entity.Order) bool {
		return o.DomainName == "ai.com" && o.Status == entity.OrderStatusProcessing && o.Version == 1
	})).Return("o1", nil).Once()
	pub.On("Publish", ctx, SubjectOrderCreated, mock.MatchedBy(func(ev OrderCreatedEvent) bool {
		return ev.Source == OrderSourceAdmin
	})).Return(nil).Once()

	o, err := svc.Create(ctx, OrderInput{DomainID: "d1", BuyerName: "Bob", BuyerEmail: "bob@example.com", Price: 500, Status: "processing"})
	require.NoError(t, err)
	assert.Equal(t, "o1", o.ID)
	orders.AssertExpectations(t)
	pub.AssertExpectations(t)
}

func TestOrderService_Create_InvalidStatus(t *testing.T) {
	listings := new(MockListingRepository)
	svc := NewOrderService(new(MockOrderRepository), listings, nil, logger.NewNop())
	ctx := context.Background()
	listings.On("GetByID", ctx, "d1").Return(&entity.Listing{ID: "d1", Name: "ai.com"}, nil).Once()

	_, err := svc.Create(ctx, OrderInput{DomainID: "d1", BuyerName: "Bob", BuyerEmail: "bob@example.com", Status: "shipped"})
	assert.ErrorIs(t, err, entity.ErrInvalidStatus)
}

func TestOrderService_Update_StatusChangePublishes(t *testing.T) {
	orders := new(MockOrderRepository)
	pub := new(MockPublisher)
	svc := NewOrderService(orders, new(MockListingRepository), pub, logger.NewNop())
	ctx := context.Background()

	existing := &entity.Order{ID: "o1", BuyerName: "Bob", BuyerEmail: "bob@example.com", Price: 500, Status: entity.OrderStatusPending, Version: 3}
	orders.On("GetByID", ctx, "o1").Return(existing, nil).Once()
	orders.On("Update", ctx, repository.UpdateOrderParams{
		OrderID:    "o1",
		Version:    3,
		BuyerName:  "Bob",
		BuyerEmail: "bob@example.com",
		Price:      500,
		Status:     entity.OrderStatusCompleted,
		Notes:      "paid",
	}).Return(nil).Once()
	pub.On("Publish", ctx, SubjectOrderStatusUpdated, mock.MatchedBy(func(ev OrderStatusUpdatedEvent) bool {
		return ev.OldStatus == "pending" && ev.NewStatus == "completed"
	})).Return(nil).Once()

	o, err := svc.Update(ctx, "o1", OrderInput{Status: "completed", Notes: " paid "})
	require.NoError(t, err)
	assert.Equal(t, int64(4), o.Version)
	orders.AssertExpectations(t)
	pub.AssertExpectations(t)
}

func TestOrderService_Update_OptimisticLock(t *testing.T) {
	orders := new(MockOrderRepository)
	svc := NewOrderService(orders, new(MockListingRepository), nil, logger.NewNop())
	ctx := context.Background()

	orders.On("GetByID", ctx, "o1").Return(&entity.Order{ID: "o1", BuyerEmail: "bob@example.com", Status: entity.OrderStatusPending, Version: 5}, nil).Once()
	orders.On("Update", ctx, mock.MatchedBy(func(p repository.UpdateOrderParams) bool { return p.Version == 4 })).
		Return(repository.ErrOptimisticLock).Once()

	_, err := svc.Update(ctx, "o1", OrderInput{Version: 4})
	assert.ErrorIs(t, err, repository.ErrOptimisticLock)
}

func TestOrderService_Sales(t *testing.T) {
	orders := new(MockOrderRepository)
	svc := NewOrderService(orders, new(MockListingRepository), nil, logger.NewNop())
	ctx := context.Background()

	orders.On("List", ctx, repository.ListOrdersParams{Status: entity.OrderStatusCompleted}).Return(&repository.ListOrdersResult{
		Orders: []entity.Order{{ID: "a", Price: 1000}, {ID: "b", Price: 2500.5}},
	}, nil).Once()

	report, err := svc.Sales(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Count)
	assert.InDelta(t, 3500.5, report.TotalRevenue, 1e-9)
}

func TestOrderService_List_RejectsUnknownStatus(t *testing.T) {
	svc := NewOrderService(new(MockOrderRepository), new(MockListingRepository), nil, logger.NewNop())
	_, err := svc.List(context.Background(), repository.ListOrdersParams{Status: "lost"})
	assert.ErrorIs(t, err, entity.ErrInvalidStatus)
}
