package member

import (
	"fmt"

	"flowerorder/internal/pkg/errs"
)

// Status is the account state of a member shop.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusActive    Status = "ACTIVE"
	StatusSuspended Status = "SUSPENDED"
)

func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusActive, StatusSuspended:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("member status", fmt.Errorf("%q is not a valid status", string(s)))
}

func (s Status) Description() string {
	switch s {
	case StatusPending:
		return "approval pending"
	case StatusActive:
		return "active"
	case StatusSuspended:
		return "suspended"
	}
	return "unknown"
}

// Approval is the review outcome of the member's business profile.
type Approval string

const (
	ApprovalPending  Approval = "PENDING"
	ApprovalApproved Approval = "APPROVED"
	ApprovalRejected Approval = "REJECTED"
)

func (a Approval) Validate() error {
	switch a {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("approval status", fmt.Errorf("%q is not a valid approval status", string(a)))
}
