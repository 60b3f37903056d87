package order

import (
	"errors"
	"fmt"
	"time"

	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/pkg/errs"
)

// ErrMultipleMainSenders is returned when more than one sender is flagged as main.
var ErrMultipleMainSenders = errors.New("at most one sender can be the main sender")

// Draft is everything needed to place an order apart from the identifiers
// assigned by the system (id, number, owner).
type Draft struct {
	Type      Type
	Details   Details
	RegionID  *kernel.UUID
	ProductID *kernel.UUID
	Options   []OptionSpec
	Messages  []MessageSpec
	Senders   []SenderSpec
}

// Validate applies the creation rules against today's date: field rules,
// delivery date not in the past, child rules and the single main sender rule.
func (d Draft) Validate(today time.Time) error {
	var typeErr error
	if d.Type != "" {
		_, typeErr = ParseType(string(d.Type))
	}

	validations := []error{
		typeErr,
		d.Details.Validate(),
		validateDeliveryDateNotPast(d.Details.DeliveryDate, today),
	}
	for i, o := range d.Options {
		validations = append(validations, wrapChild("options", i, o.Validate()))
	}
	for i, m := range d.Messages {
		validations = append(validations, wrapChild("messages", i, m.Validate()))
	}
	mainSenders := 0
	for i, s := range d.Senders {
		validations = append(validations, wrapChild("senders", i, s.Validate()))
		if s.IsMain {
			mainSenders++
		}
	}
	if mainSenders > 1 {
		validations = append(validations, errs.NewValueIsInvalidErrorWithCause("senders", ErrMultipleMainSenders))
	}
	return errors.Join(validations...)
}

func wrapChild(collection string, index int, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s[%d]: %w", collection, index, err)
}

// NewOrder assembles a PENDING order and its children from a validated draft.
// Every child references the new order through OrderID.
func NewOrder(id kernel.UUID, number Number, memberID kernel.UUID, draft Draft, now time.Time) (*Order, error) {
	var numberErr error
	if number.IsZero() {
		numberErr = errs.NewValueIsRequiredError("order number")
	}
	if err := errors.Join(
		id.Validate(),
		memberID.Validate(),
		numberErr,
		draft.Validate(now),
	); err != nil {
		return nil, err
	}

	kind := draft.Type
	if kind == "" {
		kind = TypeDirect
	}

	o := &Order{
		id:            id,
		number:        number,
		memberID:      memberID,
		regionID:      draft.RegionID,
		productID:     draft.ProductID,
		kind:          kind,
		details:       draft.Details,
		status:        StatusPending,
		audit:         kernel.NewAudit(now),
		isConstructed: true,
	}
	for _, spec := range draft.Options {
		o.options = append(o.options, newOption(id, spec))
	}
	for _, spec := range draft.Messages {
		o.messages = append(o.messages, newMessage(id, spec))
	}
	for _, spec := range draft.Senders {
		o.senders = append(o.senders, newSender(id, spec))
	}

	o.raise(EventCreated, "", "", now)
	return o, nil
}
