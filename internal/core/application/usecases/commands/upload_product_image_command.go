package commands

import (
	"errors"

	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/core/domain/model/order"
	"flowerorder/internal/core/ports"
	"flowerorder/internal/pkg/errs"
	"flowerorder/internal/pkg/guard"
)

var ErrUploadProductImageCommandIsNotConstructed = errors.New(
	"UploadProductImageCommand must be created via NewUploadProductImageCommand constructor",
)

// UploadProductImageCommand replaces the product photo of an order.
// The upload must be a jpeg, png or gif of at most order.MaxImageSize bytes.
type UploadProductImageCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	upload  ports.Upload

	guard guard.ConstructorGuard
}

func NewUploadProductImageCommand(orderID kernel.UUID, upload ports.Upload) (UploadProductImageCommand, error) {
	cmd := UploadProductImageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUpload(upload),
	); err != nil {
		return UploadProductImageCommand{}, err
	}

	return cmd, nil
}

func (c UploadProductImageCommand) Validate() error {
	return c.guard.Validate(ErrUploadProductImageCommandIsNotConstructed)
}

func (c UploadProductImageCommand) OrderID() kernel.UUID { return c.orderID }
func (c UploadProductImageCommand) Upload() ports.Upload { return c.upload }

func (c *UploadProductImageCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UploadProductImageCommand) setUpload(upload ports.Upload) error {
	if upload.Content == nil {
		return errs.NewValueIsRequiredError("image file")
	}
	if err := order.ValidateImageUpload(upload.ContentType, upload.Size); err != nil {
		return err
	}

	c.upload = upload
	return nil
}
