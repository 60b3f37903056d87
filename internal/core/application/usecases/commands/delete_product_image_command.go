package commands

import (
	"errors"

	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/pkg/guard"
)

var ErrDeleteProductImageCommandIsNotConstructed = errors.New(
	"DeleteProductImageCommand must be created via NewDeleteProductImageCommand constructor",
)

type DeleteProductImageCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteProductImageCommand(orderID kernel.UUID) (DeleteProductImageCommand, error) {
	if err := orderID.Validate(); err != nil {
		return DeleteProductImageCommand{}, err
	}

	return DeleteProductImageCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteProductImageCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductImageCommandIsNotConstructed)
}

func (c DeleteProductImageCommand) OrderID() kernel.UUID { return c.orderID }
