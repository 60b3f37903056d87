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

// UploadProductImageCommandHandler stores a new product photo and attaches it
// to the order. An existing photo is deleted first; if that delete fails the
// failure is logged and the replacement goes ahead. Failing to store the new
// file returns *errs.StorageError and leaves the order unchanged.
type UploadProductImageCommandHandler struct {
	uowFactory OrderUoWFactory
	storage    ports.FileStorage
	clock      kernel.Clock
	logger     *slog.Logger
}

func NewUploadProductImageCommandHandler(
	uowFactory OrderUoWFactory,
	storage ports.FileStorage,
	clock kernel.Clock,
	logger *slog.Logger,
) UploadProductImageCommandHandler {
	return UploadProductImageCommandHandler{
		uowFactory: uowFactory,
		storage:    storage,
		clock:      clock,
		logger:     logger.With("component", "upload_product_image_handler"),
	}
}

func (h UploadProductImageCommandHandler) Handle(
	ctx context.Context,
	cmd UploadProductImageCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "Uploading product image", "order_id", cmd.OrderID().String())

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

	if o.HasProductImage() {
		oldPath := o.ProductImage().Path
		if delErr := h.storage.Delete(ctx, oldPath); delErr != nil {
			h.logger.WarnContext(ctx, "Failed to delete previous product image",
				"order_id", o.ID().String(), "path", oldPath, "error", delErr)
		}
	}

	upload := cmd.Upload()
	path, err := h.storage.Save(ctx, upload, order.ProductImageFolder)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to store product image", "order_id", o.ID().String(), "error", err)
		if !errors.Is(err, errs.ErrStorage) {
			err = errs.NewStorageError("save", order.ProductImageFolder, err)
		}
		return nil, err
	}

	committed := false
	defer func() {
		if !committed {
			if delErr := h.storage.Delete(context.WithoutCancel(ctx), path); delErr != nil {
				h.logger.WarnContext(ctx, "Failed to remove orphaned product image", "path", path, "error", delErr)
			}
		}
	}()

	if _, err = o.AttachProductImage(order.ProductImage{
		Path:         path,
		OriginalName: upload.Name,
		ContentType:  upload.ContentType,
		Size:         upload.Size,
	}, h.clock.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	committed = true

	h.logger.InfoContext(ctx, "Product image uploaded", "order_id", o.ID().String(), "path", path)
	return o, nil
}
