package commands

import (
	"context"
	"log/slog"

	"flowerorder/internal/core/domain/model/kernel"
)

// DeleteOrderCommandHandler soft-deletes orders that can still be cancelled.
// Delivered or cancelled orders are rejected with a validation error
// wrapping order.ErrOrderCannotBeDeleted.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
	logger     *slog.Logger
}

func NewDeleteOrderCommandHandler(
	uowFactory OrderUoWFactory,
	clock kernel.Clock,
	logger *slog.Logger,
) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		logger:     logger.With("component", "delete_order_handler"),
	}
}

func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Deleting order", "order_id", cmd.OrderID().String(), "deleted_by", cmd.Actor())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.SoftDelete(cmd.Actor(), h.clock.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Order deleted", "order_id", o.ID().String())
	return nil
}
