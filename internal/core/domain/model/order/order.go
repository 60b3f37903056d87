package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/pkg/errs"
)

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
	ErrOrderCannotBeDeleted  = errors.New("delivered or cancelled orders cannot be deleted")
)

// Order is the aggregate root of the order lifecycle. It owns its options,
// messages and senders, which are created and deleted together with it.
//
// Invariants:
//   - payment is positive and quantity is at least 1
//   - the order number never changes once assigned
//   - status changes go through Status.CanTransitionTo
//   - a soft-deleted order is never returned by default reads
type Order struct {
	id        kernel.UUID
	number    Number
	memberID  kernel.UUID
	regionID  *kernel.UUID
	productID *kernel.UUID
	kind      Type
	details   Details
	status    Status

	options  []Option
	messages []Message
	senders  []Sender

	image   *ProductImage
	audit   kernel.Audit
	version int
	events  []Event

	isConstructed bool
}

// Snapshot carries the full persisted state of an order for RestoreOrder.
type Snapshot struct {
	ID           kernel.UUID
	Number       Number
	MemberID     kernel.UUID
	RegionID     *kernel.UUID
	ProductID    *kernel.UUID
	Type         Type
	Details      Details
	Status       Status
	Options      []Option
	Messages     []Message
	Senders      []Sender
	ProductImage *ProductImage
	Audit        kernel.Audit
	Version      int
}

// RestoreOrder rebuilds an aggregate read from storage. Field rules are not
// re-applied so rows written under older rules still load.
func RestoreOrder(s Snapshot) (*Order, error) {
	var numberErr error
	if s.Number.IsZero() {
		numberErr = errs.NewValueIsRequiredError("order number")
	}
	if err := errors.Join(s.ID.Validate(), s.MemberID.Validate(), numberErr, s.Status.Validate()); err != nil {
		return nil, err
	}

	kind := s.Type
	if kind == "" {
		kind = TypeDirect
	}
	return &Order{
		id:            s.ID,
		number:        s.Number,
		memberID:      s.MemberID,
		regionID:      s.RegionID,
		productID:     s.ProductID,
		kind:          kind,
		details:       s.Details,
		status:        s.Status,
		options:       slices.Clone(s.Options),
		messages:      slices.Clone(s.Messages),
		senders:       slices.Clone(s.Senders),
		image:         s.ProductImage,
		audit:         s.Audit,
		version:       s.Version,
		isConstructed: true,
	}, nil
}

// Validate checks that the order was created via NewOrder or RestoreOrder.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed for a nil or zero-value order
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
//
// Parameters:
//   - other: The order to compare with
//
// Returns:
//   - true if both orders have the same ID
//   - false if other is nil or IDs differ
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the internal identifier of the order.
func (o *Order) ID() kernel.UUID { return o.id }

// Number returns the six-digit public order number. It never changes.
func (o *Order) Number() Number { return o.number }

// MemberID returns the member who owns the order.
func (o *Order) MemberID() kernel.UUID { return o.memberID }

// RegionID returns the delivery region, or nil when none was chosen.
func (o *Order) RegionID() *kernel.UUID { return o.regionID }

// ProductID returns the catalogue product, or nil for a free-form product.
func (o *Order) ProductID() *kernel.UUID { return o.productID }

// Type returns whether the order is direct or placed through a branch.
func (o *Order) Type() Type { return o.kind }

// Details returns a copy of the descriptive fields.
func (o *Order) Details() Details { return o.details }

// Status returns the current lifecycle state.
func (o *Order) Status() Status { return o.status }

// Audit returns the creation, update and soft-delete stamps.
func (o *Order) Audit() kernel.Audit { return o.audit }

// Version returns the persisted version used for optimistic locking.
// It is 0 for an order that was never stored.
func (o *Order) Version() int { return o.version }

// IsDeleted reports whether the order was soft-deleted.
func (o *Order) IsDeleted() bool { return o.audit.IsDeleted() }

// DeliveryYear returns the year of the delivery date.
func (o *Order) DeliveryYear() int { return o.details.DeliveryDate.Year() }

// Options returns a copy of the add-ons in their original order.
func (o *Order) Options() []Option { return slices.Clone(o.options) }

// Messages returns a copy of the card and ribbon messages.
func (o *Order) Messages() []Message { return slices.Clone(o.messages) }

// Senders returns a copy of the senders.
func (o *Order) Senders() []Sender { return slices.Clone(o.senders) }

// HasProductImage reports whether a stored image is attached.
func (o *Order) HasProductImage() bool { return o.image != nil && o.image.Path != "" }

// DeliveryTimeString formats the delivery hour and minute as "HH:mm".
func (o *Order) DeliveryTimeString() string { return o.details.DeliveryTimeString() }

// EventTimeString formats the event hour and minute as "HH:mm".
func (o *Order) EventTimeString() string { return o.details.EventTimeString() }

// ProductImage returns a copy of the image metadata, or nil.
func (o *Order) ProductImage() *ProductImage {
	if o.image == nil {
		return nil
	}
	img := *o.image
	return &img
}

// MainSender returns the sender flagged as main, falling back to the first sender.
func (o *Order) MainSender() (Sender, bool) {
	for _, s := range o.senders {
		if s.isMain {
			return s, true
		}
	}
	if len(o.senders) > 0 {
		return o.senders[0], true
	}
	return Sender{}, false
}

// TotalAmount is the payment plus the price of every checked option.
func (o *Order) TotalAmount() kernel.Money {
	total := o.details.Payment
	for _, opt := range o.options {
		if opt.checked {
			total = total.Add(opt.price)
		}
	}
	return total
}

// Status predicates, see Status.

func (o *Order) CanBeCancelled() bool { return o.status.CanBeCancelled() }
func (o *Order) CanBeModified() bool  { return o.status.CanBeModified() }
func (o *Order) IsCompleted() bool    { return o.status.IsCompleted() }
func (o *Order) IsInProgress() bool   { return o.status.IsInProgress() }

// ChangeStatus moves the order to next when the state machine allows it.
func (o *Order) ChangeStatus(next Status, now time.Time) error {
	if err := o.status.CanTransitionTo(next); err != nil {
		return err
	}
	previous := o.status
	o.status = next
	o.audit = o.audit.Touch(now)
	o.raise(EventStatusChanged, previous, "", now)
	return nil
}

// ApplyPatch overwrites the fields present in p. The payment and quantity
// rules still hold afterwards; on failure the order is left untouched.
func (o *Order) ApplyPatch(p Patch, now time.Time) error {
	updated := p.applyTo(o.details)
	if err := updated.Validate(); err != nil {
		return err
	}
	o.details = updated
	o.audit = o.audit.Touch(now)
	return nil
}

// AttachProductImage replaces the image metadata and returns the previous one.
func (o *Order) AttachProductImage(img ProductImage, now time.Time) (*ProductImage, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}
	previous := o.image
	o.image = &img
	o.audit = o.audit.Touch(now)
	return previous, nil
}

// RemoveProductImage clears the image metadata and returns what was removed.
func (o *Order) RemoveProductImage(now time.Time) *ProductImage {
	previous := o.image
	if previous == nil {
		return nil
	}
	o.image = nil
	o.audit = o.audit.Touch(now)
	return previous
}

// SoftDelete marks the order deleted by actor. Only cancellable orders qualify.
func (o *Order) SoftDelete(actor string, now time.Time) error {
	if !o.CanBeCancelled() {
		return errs.NewValueIsInvalidErrorWithCause(
			"order", fmt.Errorf("%w: status is %s", ErrOrderCannotBeDeleted, o.status),
		)
	}
	o.audit = o.audit.MarkDeleted(actor, now)
	o.raise(EventDeleted, o.status, actor, now)
	return nil
}

// MarkPersisted records the version written by the repository.
func (o *Order) MarkPersisted(version int) {
	o.version = version
}
