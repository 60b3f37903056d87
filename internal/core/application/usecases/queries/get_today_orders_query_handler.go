package queries

import (
	"context"

	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/core/domain/model/order"
	"flowerorder/internal/core/ports"
)

// GetTodayOrdersQueryHandler lists the orders placed today or delivering
// today, by the clock's calendar day.
type GetTodayOrdersQueryHandler struct {
	orders ports.OrderRepository
	clock  kernel.Clock
}

func NewGetTodayOrdersQueryHandler(orders ports.OrderRepository, clock kernel.Clock) GetTodayOrdersQueryHandler {
	return GetTodayOrdersQueryHandler{orders: orders, clock: clock}
}

func (h GetTodayOrdersQueryHandler) Handle(ctx context.Context, query GetTodayOrdersQuery) ([]OrderListItem, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		found []*order.Order
		err   error
	)
	now := h.clock.Now()
	switch query.Kind() {
	case TodayDelivery:
		found, err = h.orders.FindByDeliveryDate(ctx, kernel.DateOf(now))
	default:
		from, to := kernel.DayRange(now)
		found, err = h.orders.FindCreatedBetween(ctx, from, to)
	}
	if err != nil {
		return nil, err
	}

	return toListItems(found), nil
}
