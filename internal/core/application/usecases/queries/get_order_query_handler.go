package queries

import (
	"context"

	"flowerorder/internal/core/domain/model/order"
	"flowerorder/internal/core/ports"
)

// GetOrderQueryHandler returns the full aggregate, children included.
// Soft-deleted orders are reported as not found.
type GetOrderQueryHandler struct {
	orders ports.OrderRepository
}

func NewGetOrderQueryHandler(orders ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if query.number != nil {
		return h.orders.GetByNumber(ctx, *query.number)
	}
	return h.orders.Get(ctx, *query.id)
}
