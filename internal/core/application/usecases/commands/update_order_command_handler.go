package commands

import (
	"context"
	"log/slog"

	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler applies a partial update to an order's details.
// The update is not gated on status; payment and quantity rules still apply.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
	logger     *slog.Logger
}

func NewUpdateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	clock kernel.Clock,
	logger *slog.Logger,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		logger:     logger.With("component", "update_order_handler"),
	}
}

func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "Updating order", "order_id", cmd.OrderID().String())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.ApplyPatch(cmd.Patch(), h.clock.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "Order updated", "order_id", o.ID().String())
	return o, nil
}
