package queries

import (
	"context"

	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/core/domain/model/order"
	"flowerorder/internal/core/ports"
)

// GetOrderSummaryQueryHandler computes the member dashboard: all orders,
// orders created this calendar month, delivered orders and orders in progress.
type GetOrderSummaryQueryHandler struct {
	orders ports.OrderRepository
	clock  kernel.Clock
}

func NewGetOrderSummaryQueryHandler(orders ports.OrderRepository, clock kernel.Clock) GetOrderSummaryQueryHandler {
	return GetOrderSummaryQueryHandler{orders: orders, clock: clock}
}

func (h GetOrderSummaryQueryHandler) Handle(ctx context.Context, query GetOrderSummaryQuery) (OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return OrderSummary{}, err
	}

	memberID := query.MemberID()
	var (
		summary OrderSummary
		err     error
	)

	if summary.TotalCount, err = h.orders.CountByMember(ctx, memberID); err != nil {
		return OrderSummary{}, err
	}

	from, to := kernel.MonthRange(h.clock.Now())
	if summary.MonthCount, err = h.orders.CountByMemberCreatedBetween(ctx, memberID, from, to); err != nil {
		return OrderSummary{}, err
	}

	if summary.DeliveredCount, err = h.orders.CountByMemberAndStatuses(
		ctx, memberID, order.StatusDelivered,
	); err != nil {
		return OrderSummary{}, err
	}

	if summary.InProgressCount, err = h.orders.CountByMemberAndStatuses(
		ctx, memberID, order.InProgressStatuses()...,
	); err != nil {
		return OrderSummary{}, err
	}

	return summary, nil
}
