package commands

import (
	"context"
	"log/slog"
	"time"

	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/core/domain/model/order"
	"flowerorder/internal/core/domain/services"
	"flowerorder/internal/core/ports"
)

// CreateOrderCommandHandler places orders. It resolves the owner and any
// referenced region or product, validates the draft, draws a unique order
// number and persists the aggregate with its children in one transaction.
//
// A product photo attached to the command is stored before the insert. Any
// failure to store it is logged and the order is created without an image.
//
//	handler := NewCreateOrderCommandHandler(uowFactory, generator, storage, kernel.SystemClock, logger)
//	created, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown member, region or product
//	case errors.Is(err, services.ErrOrderNumberGenerationExhausted):
//	    // retry later
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	numbers    services.OrderNumberGenerator
	storage    ports.FileStorage
	clock      kernel.Clock
	logger     *slog.Logger
}

func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	numbers services.OrderNumberGenerator,
	storage ports.FileStorage,
	clock kernel.Clock,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		numbers:    numbers,
		storage:    storage,
		clock:      clock,
		logger:     logger.With("component", "create_order_handler"),
	}
}

// Handle returns the persisted order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	h.logger.InfoContext(ctx, "Creating order", "member_id", cmd.MemberID().String())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.MemberRepository().Get(ctx, cmd.MemberID()); err != nil {
		return nil, err
	}

	draft := cmd.Draft()
	if draft.RegionID != nil {
		if _, err := uow.RegionRepository().Get(ctx, *draft.RegionID); err != nil {
			return nil, err
		}
	}
	if draft.ProductID != nil {
		if _, err := uow.ProductRepository().Get(ctx, *draft.ProductID); err != nil {
			return nil, err
		}
	}

	if err := draft.Validate(now); err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	number, err := h.numbers.Generate(ctx, orderRepo)
	if err != nil {
		return nil, err
	}

	created, err := order.NewOrder(cmd.OrderID(), number, cmd.MemberID(), draft, now)
	if err != nil {
		return nil, err
	}

	storedPath := h.attachImage(ctx, created, cmd.Image(), now)
	committed := false
	defer func() {
		if !committed && storedPath != "" {
			h.discardFile(ctx, storedPath)
		}
	}()

	if err = orderRepo.Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	committed = true

	h.logger.InfoContext(ctx, "Order created",
		"order_id", created.ID().String(), "order_number", created.Number().String())
	return created, nil
}

// attachImage stores the upload and attaches it to o, returning the stored
// path or "" when there was nothing to store or storing failed.
func (h CreateOrderCommandHandler) attachImage(
	ctx context.Context,
	o *order.Order,
	upload *ports.Upload,
	now time.Time,
) string {
	if upload == nil {
		return ""
	}

	if err := order.ValidateImageUpload(upload.ContentType, upload.Size); err != nil {
		h.logger.WarnContext(ctx, "Skipping product image", "order_id", o.ID().String(), "error", err)
		return ""
	}

	path, err := h.storage.Save(ctx, *upload, order.ProductImageFolder)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to store product image during order creation",
			"order_id", o.ID().String(), "error", err)
		return ""
	}

	if _, err = o.AttachProductImage(order.ProductImage{
		Path:         path,
		OriginalName: upload.Name,
		ContentType:  upload.ContentType,
		Size:         upload.Size,
	}, now); err != nil {
		h.logger.ErrorContext(ctx, "Failed to attach product image", "order_id", o.ID().String(), "error", err)
		h.discardFile(ctx, path)
		return ""
	}
	return path
}

func (h CreateOrderCommandHandler) discardFile(ctx context.Context, path string) {
	if err := h.storage.Delete(context.WithoutCancel(ctx), path); err != nil {
		h.logger.WarnContext(ctx, "Failed to remove orphaned product image", "path", path, "error", err)
	}
}
