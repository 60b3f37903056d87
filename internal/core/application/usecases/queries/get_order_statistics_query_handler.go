package queries

import (
	"context"

	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/core/domain/model/order"
	"flowerorder/internal/core/ports"
)

type GetOrderStatisticsQueryHandler struct {
	orders ports.OrderRepository
	clock  kernel.Clock
}

func NewGetOrderStatisticsQueryHandler(orders ports.OrderRepository, clock kernel.Clock) GetOrderStatisticsQueryHandler {
	return GetOrderStatisticsQueryHandler{orders: orders, clock: clock}
}

func (h GetOrderStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatisticsQuery,
) (OrderStatistics, error) {
	if err := query.Validate(); err != nil {
		return OrderStatistics{}, err
	}

	var stats OrderStatistics
	counters := map[order.Status]*int64{
		order.StatusPending:   &stats.Pending,
		order.StatusConfirmed: &stats.Confirmed,
		order.StatusPreparing: &stats.Preparing,
		order.StatusDelivered: &stats.Delivered,
		order.StatusCancelled: &stats.Cancelled,
	}
	for _, status := range order.AllStatuses() {
		n, err := h.orders.CountByStatus(ctx, status)
		if err != nil {
			return OrderStatistics{}, err
		}
		*counters[status] = n
	}

	today, err := h.orders.FindByDeliveryDate(ctx, kernel.DateOf(h.clock.Now()))
	if err != nil {
		return OrderStatistics{}, err
	}
	stats.TodayDelivery = int64(len(today))

	return stats, nil
}
