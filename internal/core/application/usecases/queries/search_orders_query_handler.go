package queries

import (
	"context"

	"flowerorder/internal/core/ports"
	"flowerorder/internal/pkg/paging"
)

// SearchOrdersQueryHandler serves both the member order list and the admin
// search; the caller decides which member ids go into the filter.
type SearchOrdersQueryHandler struct {
	orders ports.OrderRepository
}

func NewSearchOrdersQueryHandler(orders ports.OrderRepository) SearchOrdersQueryHandler {
	return SearchOrdersQueryHandler{orders: orders}
}

func (h SearchOrdersQueryHandler) Handle(
	ctx context.Context,
	query SearchOrdersQuery,
) (paging.Page[OrderListItem], error) {
	if err := query.Validate(); err != nil {
		return paging.Page[OrderListItem]{}, err
	}

	found, err := h.orders.FindFiltered(ctx, query.Filter(), query.Page())
	if err != nil {
		return paging.Page[OrderListItem]{}, err
	}

	return paging.Map(found, NewOrderListItem), nil
}
