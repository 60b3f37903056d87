package order

import (
	"errors"
	"fmt"

	"flowerorder/internal/pkg/errs"
)

// ErrInvalidStatusTransition marks a rejected status change. It is always
// returned wrapped in a *errs.ValueIsInvalidError.
var ErrInvalidStatusTransition = errors.New("invalid status transition")

// Status is the order lifecycle state.
//
//	PENDING ──> CONFIRMED ──> PREPARING ──> DELIVERED
//	   │            │             │
//	   └────────────┴─────────────┴──────> CANCELLED
//
// DELIVERED and CANCELLED are terminal for cancellation purposes. Moves between
// the other states, backward ones included, are accepted.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusPreparing Status = "PREPARING"
	StatusDelivered Status = "DELIVERED"
	StatusCancelled Status = "CANCELLED"
)

var statusDescriptions = map[Status]string{
	StatusPending:   "order received",
	StatusConfirmed: "order confirmed",
	StatusPreparing: "preparing delivery",
	StatusDelivered: "delivered",
	StatusCancelled: "cancelled",
}

// AllStatuses lists every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusPreparing, StatusDelivered, StatusCancelled}
}

// InProgressStatuses is the set counted as "in progress" by the summaries.
func InProgressStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusPreparing}
}

// ParseStatus accepts the upper-case wire names.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate rejects any value outside the five known statuses.
//
// Returns:
//   - nil for a known status
//   - *errs.ValueIsInvalidError otherwise, including the empty status
func (s Status) Validate() error {
	if _, ok := statusDescriptions[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the upper-case wire name.
func (s Status) String() string {
	return string(s)
}

// Description is the human-readable label shown in order listings.
func (s Status) Description() string {
	if d, ok := statusDescriptions[s]; ok {
		return d
	}
	return "unknown"
}

// CanTransitionTo checks a move from s to next.
//
// Parameters:
//   - next: The requested status
//
// Returns:
//   - nil if the move is allowed
//   - an error wrapping ErrInvalidStatusTransition when s is CANCELLED, when
//     a DELIVERED order would be cancelled, or when next equals s
//   - a validation error if either status is unknown
func (s Status) CanTransitionTo(next Status) error {
	if err := errors.Join(s.Validate(), next.Validate()); err != nil {
		return err
	}

	switch {
	case s == StatusCancelled:
		return transitionError(s, next, "cancelled orders cannot change status")
	case s == StatusDelivered && next == StatusCancelled:
		return transitionError(s, next, "delivered orders cannot be cancelled")
	case s == next:
		return transitionError(s, next, "order is already "+s.Description())
	}
	return nil
}

// CanBeCancelled is false for DELIVERED and CANCELLED orders. Soft deletion
// uses the same rule.
func (s Status) CanBeCancelled() bool {
	return s != StatusCancelled && s != StatusDelivered
}

// CanBeModified is true while the order is PENDING or CONFIRMED.
func (s Status) CanBeModified() bool {
	return s == StatusPending || s == StatusConfirmed
}

// IsCompleted is true only for DELIVERED.
func (s Status) IsCompleted() bool {
	return s == StatusDelivered
}

// IsInProgress matches InProgressStatuses.
func (s Status) IsInProgress() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusPreparing
}

func transitionError(from, to Status, reason string) error {
	return errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%w: %s -> %s: %s", ErrInvalidStatusTransition, from, to, reason),
	)
}
