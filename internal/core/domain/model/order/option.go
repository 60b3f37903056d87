package order

import (
	"errors"
	"fmt"

	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/pkg/errs"
)

// OptionSpec is the requested add-on, e.g. a card or an extra ribbon.
type OptionSpec struct {
	Name        string
	Checked     bool
	Price       kernel.Money
	Description string
}

// Validate requires a name and a non-negative price.
func (s OptionSpec) Validate() error {
	var priceErr error
	if s.Price.IsNegative() {
		priceErr = errs.NewValueIsInvalidErrorWithCause("option price", fmt.Errorf("%s is negative", s.Price))
	}
	return errors.Join(
		checkText("option name", s.Name, true, 100),
		checkText("option description", s.Description, false, 200),
		priceErr,
	)
}

// Option is a selectable add-on owned by one order. Only checked options count
// toward the order total.
type Option struct {
	id          kernel.UUID
	orderID     kernel.UUID
	name        string
	checked     bool
	price       kernel.Money
	description string
}

func newOption(orderID kernel.UUID, spec OptionSpec) Option {
	return Option{
		id:          kernel.NewUUID(),
		orderID:     orderID,
		name:        spec.Name,
		checked:     spec.Checked,
		price:       spec.Price,
		description: spec.Description,
	}
}

// RestoreOption rebuilds an option read from storage.
func RestoreOption(id, orderID kernel.UUID, spec OptionSpec) Option {
	return Option{
		id:          id,
		orderID:     orderID,
		name:        spec.Name,
		checked:     spec.Checked,
		price:       spec.Price,
		description: spec.Description,
	}
}

func (o Option) ID() kernel.UUID      { return o.id }
func (o Option) OrderID() kernel.UUID { return o.orderID }
func (o Option) Name() string         { return o.name }
func (o Option) Checked() bool        { return o.checked }
func (o Option) Price() kernel.Money  { return o.price }
func (o Option) Description() string  { return o.description }
