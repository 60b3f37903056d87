package commands

import (
	"errors"

	"flowerorder/internal/core/domain/model/member"
	"flowerorder/internal/pkg/guard"
)

var ErrSignUpMemberCommandIsNotConstructed = errors.New(
	"SignUpMemberCommand must be created via NewSignUpMemberCommand constructor",
)

// SignUpMemberCommand registers a partner shop awaiting administrator review.
type SignUpMemberCommand struct { //nolint:recvcheck //using for validation
	registration member.Registration

	guard guard.ConstructorGuard
}

func NewSignUpMemberCommand(registration member.Registration) (SignUpMemberCommand, error) {
	if err := registration.Validate(); err != nil {
		return SignUpMemberCommand{}, err
	}

	return SignUpMemberCommand{
		registration: registration,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c SignUpMemberCommand) Validate() error {
	return c.guard.Validate(ErrSignUpMemberCommandIsNotConstructed)
}

func (c SignUpMemberCommand) Registration() member.Registration { return c.registration }
