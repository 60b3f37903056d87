package commands

import (
	"errors"
	"strings"

	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/pkg/errs"
	"flowerorder/internal/pkg/guard"
)

var (
	ErrApproveMemberCommandIsNotConstructed = errors.New(
		"ApproveMemberCommand must be created via NewApproveMemberCommand constructor",
	)
	ErrRejectMemberCommandIsNotConstructed = errors.New(
		"RejectMemberCommand must be created via NewRejectMemberCommand constructor",
	)
)

type ApproveMemberCommand struct { //nolint:recvcheck //using for validation
	memberID kernel.UUID

	guard guard.ConstructorGuard
}

func NewApproveMemberCommand(memberID kernel.UUID) (ApproveMemberCommand, error) {
	if err := memberID.Validate(); err != nil {
		return ApproveMemberCommand{}, err
	}

	return ApproveMemberCommand{memberID: memberID, guard: guard.NewConstructorGuard()}, nil
}

func (c ApproveMemberCommand) Validate() error {
	return c.guard.Validate(ErrApproveMemberCommandIsNotConstructed)
}

func (c ApproveMemberCommand) MemberID() kernel.UUID { return c.memberID }

// RejectMemberCommand turns down a member application with a reason shown to the shop.
type RejectMemberCommand struct { //nolint:recvcheck //using for validation
	memberID kernel.UUID
	reason   string

	guard guard.ConstructorGuard
}

func NewRejectMemberCommand(memberID kernel.UUID, reason string) (RejectMemberCommand, error) {
	var reasonErr error
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reasonErr = errs.NewValueIsRequiredError("rejection reason")
	}
	if err := errors.Join(memberID.Validate(), reasonErr); err != nil {
		return RejectMemberCommand{}, err
	}

	return RejectMemberCommand{memberID: memberID, reason: reason, guard: guard.NewConstructorGuard()}, nil
}

func (c RejectMemberCommand) Validate() error {
	return c.guard.Validate(ErrRejectMemberCommandIsNotConstructed)
}

func (c RejectMemberCommand) MemberID() kernel.UUID { return c.memberID }
func (c RejectMemberCommand) Reason() string        { return c.reason }
