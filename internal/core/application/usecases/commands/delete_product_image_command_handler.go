package commands

import (
	"context"
	"errors"
	"log/slog"

	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/core/domain/model/order"
	"flowerorder/internal/core/ports"
	"flowerorder/internal/pkg/errs"
)

// DeleteProductImageCommandHandler removes the stored photo and its metadata.
// Orders without a photo are returned unchanged.
type DeleteProductImageCommandHandler struct {
	uowFactory OrderUoWFactory
	storage    ports.FileStorage
	clock      kernel.Clock
	logger     *slog.Logger
}

func NewDeleteProductImageCommandHandler(
	uowFactory OrderUoWFactory,
	storage ports.FileStorage,
	clock kernel.Clock,
	logger *slog.Logger,
) DeleteProductImageCommandHandler {
	return DeleteProductImageCommandHandler{
		uowFactory: uowFactory,
		storage:    storage,
		clock:      clock,
		logger:     logger.With("component", "delete_product_image_handler"),
	}
}

func (h DeleteProductImageCommandHandler) Handle(
	ctx context.Context,
	cmd DeleteProductImageCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

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

	if !o.HasProductImage() {
		h.logger.WarnContext(ctx, "No product image to delete", "order_id", o.ID().String())
		return o, nil
	}

	path := o.ProductImage().Path
	if err = h.storage.Delete(ctx, path); err != nil {
		if !errors.Is(err, errs.ErrStorage) {
			err = errs.NewStorageError("delete", path, err)
		}
		return nil, err
	}

	o.RemoveProductImage(h.clock.Now())
	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "Product image deleted", "order_id", o.ID().String(), "path", path)
	return o, nil
}
