package commands

import (
	"context"
	"log/slog"

	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler applies a state machine transition.
// Rejected transitions surface as validation errors wrapping
// order.ErrInvalidStatusTransition and nothing is written.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
	logger     *slog.Logger
}

func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	clock kernel.Clock,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		logger:     logger.With("component", "update_order_status_handler"),
	}
}

func (h UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "Updating order status",
		"order_id", cmd.OrderID().String(), "status", cmd.Status().String())

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

	previous := o.Status()
	if err = o.ChangeStatus(cmd.Status(), h.clock.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "Order status updated",
		"order_id", o.ID().String(), "from", previous.String(), "to", o.Status().String())
	return o, nil
}
