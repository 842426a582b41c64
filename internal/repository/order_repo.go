package repository

import (
	"context"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
)

type ListOrdersParams struct {
	Status   entity.OrderStatus
	Page     int
	PageSize int
	// SortBy defaults to created_at; sorting is always descending.
	SortBy string
}

type ListOrdersResult struct {
	Orders      []entity.Order
	TotalCount  int64
	CurrentPage int
	PageSize    int
	TotalPages  int
}

type UpdateOrderParams struct {
	OrderID    string
	Version    int64
	BuyerName  string
	BuyerEmail string
	Price      float64
	Status     entity.OrderStatus
	Notes      string
}

type OrderRepository interface {
	Create(ctx context.Context, o *entity.Order) (string, error)
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	Update(ctx context.Context, params UpdateOrderParams) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, params ListOrdersParams) (*ListOrdersResult, error)
	Count(ctx context.Context, status entity.OrderStatus) (int64, error)
}
