// Package ports defines the contracts between the application core and its
// adapters: repositories, file storage and event publishing.
package ports

import (
	"context"
	"time"

	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/core/domain/model/order"
	"flowerorder/internal/pkg/paging"
)

// OrderRepository persists order aggregates with their options, messages and senders.
// Every read excludes soft-deleted orders.
type OrderRepository interface {
	// Add inserts a new aggregate and its children.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the aggregate when its stored version matches Version().
	// A mismatch returns *errs.VersionIsInvalidError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns *errs.ObjectNotFoundError when the order is absent or soft-deleted.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	GetByNumber(ctx context.Context, number order.Number) (*order.Order, error)

	// ExistsByOrderNumber checks every order, soft-deleted ones included,
	// since numbers are never reused.
	ExistsByOrderNumber(ctx context.Context, number order.Number) (bool, error)

	// FindFiltered applies every non-empty part of filter and returns one page.
	FindFiltered(ctx context.Context, filter order.Filter, page paging.PageRequest) (paging.Page[*order.Order], error)

	CountByStatus(ctx context.Context, status order.Status) (int64, error)
	CountByMember(ctx context.Context, memberID kernel.UUID) (int64, error)
	CountByMemberCreatedBetween(ctx context.Context, memberID kernel.UUID, from, to time.Time) (int64, error)
	CountByMemberAndStatuses(ctx context.Context, memberID kernel.UUID, statuses ...order.Status) (int64, error)

	// FindCreatedBetween lists orders created in [from, to), newest first.
	FindCreatedBetween(ctx context.Context, from, to time.Time) ([]*order.Order, error)

	// FindByDeliveryDate lists orders delivering on the calendar day of date.
	FindByDeliveryDate(ctx context.Context, date time.Time) ([]*order.Order, error)
}
