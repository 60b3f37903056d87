package order

import (
	"fmt"

	"flowerorder/internal/pkg/errs"
)

// Type tells whether the order was placed directly by a shop or through the head office.
type Type string

const (
	TypeDirect Type = "direct"
	TypeBranch Type = "branch"
)

// ParseType defaults an empty value to TypeDirect.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case "", TypeDirect:
		return TypeDirect, nil
	case TypeBranch:
		return TypeBranch, nil
	}
	return "", errs.NewValueIsInvalidErrorWithCause("order type", fmt.Errorf("%q is not a valid order type", s))
}

// String returns the wire name.
func (t Type) String() string {
	return string(t)
}

// NotificationStatus is the sms/fax delivery outcome recorded on an order.
type NotificationStatus string

const (
	NotificationNone     NotificationStatus = ""
	NotificationSuccess  NotificationStatus = "success"
	NotificationFailed   NotificationStatus = "failed"
	NotificationRejected NotificationStatus = "rejected"
)

// Validate accepts an empty status or one of the known outcomes.
func (n NotificationStatus) Validate() error {
	switch n {
	case NotificationNone, NotificationSuccess, NotificationFailed, NotificationRejected:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("notification status", fmt.Errorf("%q is not recognised", string(n)))
}
