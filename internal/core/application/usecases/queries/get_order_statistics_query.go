package queries

import (
	"errors"

	"flowerorder/internal/pkg/guard"
)

var ErrGetOrderStatisticsQueryIsNotConstructed = errors.New(
	"GetOrderStatisticsQuery must be created via NewGetOrderStatisticsQuery constructor",
)

type GetOrderStatisticsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrderStatisticsQuery() GetOrderStatisticsQuery {
	return GetOrderStatisticsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOrderStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatisticsQueryIsNotConstructed)
}

// OrderStatistics counts every non-deleted order per status, plus the
// orders whose delivery date is today.
type OrderStatistics struct {
	Pending       int64
	Confirmed     int64
	Preparing     int64
	Delivered     int64
	Cancelled     int64
	TodayDelivery int64
}

// AsMap keys the counters the way the admin dashboard expects them.
func (s OrderStatistics) AsMap() map[string]int64 {
	return map[string]int64{
		"pending":       s.Pending,
		"confirmed":     s.Confirmed,
		"preparing":     s.Preparing,
		"delivered":     s.Delivered,
		"cancelled":     s.Cancelled,
		"todayDelivery": s.TodayDelivery,
	}
}
