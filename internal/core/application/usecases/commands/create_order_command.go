package commands

import (
	"errors"

	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/core/domain/model/order"
	"flowerorder/internal/core/ports"
	"flowerorder/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand places a new order for a member shop, optionally with a
// product photo. The draft itself is validated by the handler against today's date.
//
//	cmd, err := NewCreateOrderCommand(memberID, draft, nil)
//	if err != nil {
//	    return err
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	memberID kernel.UUID
	draft    order.Draft
	image    *ports.Upload

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand assigns a fresh order id. image may be nil.
func NewCreateOrderCommand(memberID kernel.UUID, draft order.Draft, image *ports.Upload) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		orderID: kernel.NewUUID(),
		draft:   draft,
		guard:   guard.NewConstructorGuard(),
	}

	if err := cmd.setMemberID(memberID); err != nil {
		return CreateOrderCommand{}, err
	}
	if image != nil && image.Content != nil {
		img := *image
		cmd.image = &img
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID  { return c.orderID }
func (c CreateOrderCommand) MemberID() kernel.UUID { return c.memberID }
func (c CreateOrderCommand) Draft() order.Draft    { return c.draft }

// Image returns the attached upload, or nil.
func (c CreateOrderCommand) Image() *ports.Upload {
	return c.image
}

func (c *CreateOrderCommand) setMemberID(memberID kernel.UUID) error {
	if err := memberID.Validate(); err != nil {
		return err
	}

	c.memberID = memberID
	return nil
}
