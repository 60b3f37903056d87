package queries

import (
	"errors"

	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/pkg/guard"
)

var ErrGetOrderSummaryQueryIsNotConstructed = errors.New(
	"GetOrderSummaryQuery must be created via NewGetOrderSummaryQuery constructor",
)

// GetOrderSummaryQuery asks for the dashboard counters of one member.
type GetOrderSummaryQuery struct {
	memberID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderSummaryQuery(memberID kernel.UUID) (GetOrderSummaryQuery, error) {
	if err := memberID.Validate(); err != nil {
		return GetOrderSummaryQuery{}, err
	}
	return GetOrderSummaryQuery{memberID: memberID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSummaryQueryIsNotConstructed)
}

func (q GetOrderSummaryQuery) MemberID() kernel.UUID { return q.memberID }

// OrderSummary counts a member's non-deleted orders.
type OrderSummary struct {
	TotalCount      int64
	MonthCount      int64
	DeliveredCount  int64
	InProgressCount int64
}
