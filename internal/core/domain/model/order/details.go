package order

import (
	"errors"
	"fmt"
	"time"

	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/pkg/errs"
)

// DefaultDeliveryTime is shown when no delivery hour/minute was chosen.
const DefaultDeliveryTime = "default time"

// Details holds the scalar order attributes: shop, product, pricing, the
// orderer and receiver contacts, delivery and event timing and notification flags.
type Details struct {
	ShopName      string
	ShopPhone     string
	ProductName   string
	ProductDetail string
	Quantity      int
	OriginPrice   kernel.Money
	Price         kernel.Money
	Payment       kernel.Money

	OrdererName   string
	OrdererPhone  string
	OrdererMobile string

	ReceiverName   string
	ReceiverPhone  string
	ReceiverMobile string
	Consignee      string

	DeliveryDate    time.Time
	DeliveryHours   string
	DeliveryMinutes string
	DeliveryType    string
	EventHours      string
	EventMinutes    string
	DeliveryPlace   string

	Card              string
	Request           string
	HideDeliveryPhoto bool
	IsDelivery        bool
	OnSite            bool
	SMS               NotificationStatus
	Fax               NotificationStatus
}

// Validate checks every field rule except the "not in the past" delivery date
// rule, which only applies when an order is created.
func (d Details) Validate() error {
	return errors.Join(
		checkText("shop name", d.ShopName, true, 100),
		checkText("shop phone", d.ShopPhone, true, 20),
		checkText("product name", d.ProductName, true, 200),
		checkText("product detail", d.ProductDetail, false, 500),
		validateQuantity(d.Quantity),
		validateNonNegative("origin price", d.OriginPrice),
		validateNonNegative("price", d.Price),
		validatePayment(d.Payment),
		checkText("orderer name", d.OrdererName, true, 50),
		checkText("orderer phone", d.OrdererPhone, false, 20),
		checkText("orderer mobile", d.OrdererMobile, true, 20),
		checkText("receiver name", d.ReceiverName, true, 50),
		checkText("receiver phone", d.ReceiverPhone, false, 20),
		checkText("receiver mobile", d.ReceiverMobile, false, 20),
		checkText("consignee", d.Consignee, false, 50),
		validateDeliveryDateSet(d.DeliveryDate),
		checkText("delivery hours", d.DeliveryHours, false, 10),
		checkText("delivery minutes", d.DeliveryMinutes, false, 10),
		checkText("delivery type", d.DeliveryType, false, 20),
		checkText("event hours", d.EventHours, false, 10),
		checkText("event minutes", d.EventMinutes, false, 10),
		checkText("delivery place", d.DeliveryPlace, true, 200),
		checkText("card", d.Card, false, 50),
		checkText("request", d.Request, false, 500),
		d.SMS.Validate(),
		d.Fax.Validate(),
	)
}

// DeliveryTimeString returns "HH:MM" or DefaultDeliveryTime.
func (d Details) DeliveryTimeString() string {
	if d.DeliveryHours != "" && d.DeliveryMinutes != "" {
		return d.DeliveryHours + ":" + d.DeliveryMinutes
	}
	return DefaultDeliveryTime
}

// EventTimeString returns "HH:MM" or an empty string.
func (d Details) EventTimeString() string {
	if d.EventHours != "" && d.EventMinutes != "" {
		return d.EventHours + ":" + d.EventMinutes
	}
	return ""
}

func validateQuantity(q int) error {
	if q < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", q))
	}
	return nil
}

func validatePayment(p kernel.Money) error {
	if !p.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("payment", fmt.Errorf("%s is not greater than 0", p))
	}
	return nil
}

func validateNonNegative(param string, m kernel.Money) error {
	if m.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%s is negative", m))
	}
	return nil
}

func validateDeliveryDateSet(d time.Time) error {
	if d.IsZero() {
		return errs.NewValueIsRequiredError("delivery date")
	}
	return nil
}

func validateDeliveryDateNotPast(d, today time.Time) error {
	if !d.IsZero() && kernel.DateBefore(d, today) {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery date",
			fmt.Errorf("%s is before %s", d.Format(time.DateOnly), today.Format(time.DateOnly)),
		)
	}
	return nil
}
