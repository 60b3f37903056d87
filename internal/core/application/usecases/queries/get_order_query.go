package queries

import (
	"errors"

	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/core/domain/model/order"
	"flowerorder/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery or NewGetOrderByNumberQuery",
)

// GetOrderQuery looks an order up either by id or by its six-digit number.
type GetOrderQuery struct {
	id     *kernel.UUID
	number *order.Number

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(id kernel.UUID) (GetOrderQuery, error) {
	if err := id.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{id: &id, guard: guard.NewConstructorGuard()}, nil
}

func NewGetOrderByNumberQuery(number string) (GetOrderQuery, error) {
	n, err := order.NewNumber(number)
	if err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{number: &n, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}
