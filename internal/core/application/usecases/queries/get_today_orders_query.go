package queries

import (
	"errors"
	"fmt"

	"flowerorder/internal/pkg/errs"
	"flowerorder/internal/pkg/guard"
)

var ErrGetTodayOrdersQueryIsNotConstructed = errors.New(
	"GetTodayOrdersQuery must be created via NewGetTodayOrdersQuery constructor",
)

// TodayOrdersKind selects which date "today" is matched against.
type TodayOrdersKind string

const (
	TodayCreated  TodayOrdersKind = "created"
	TodayDelivery TodayOrdersKind = "delivery"
)

type GetTodayOrdersQuery struct {
	kind TodayOrdersKind

	guard guard.ConstructorGuard
}

func NewGetTodayOrdersQuery(kind TodayOrdersKind) (GetTodayOrdersQuery, error) {
	switch kind {
	case TodayCreated, TodayDelivery:
	default:
		return GetTodayOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"today orders kind", fmt.Errorf("%q is not created or delivery", string(kind)))
	}
	return GetTodayOrdersQuery{kind: kind, guard: guard.NewConstructorGuard()}, nil
}

func (q GetTodayOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetTodayOrdersQueryIsNotConstructed)
}

func (q GetTodayOrdersQuery) Kind() TodayOrdersKind { return q.kind }
