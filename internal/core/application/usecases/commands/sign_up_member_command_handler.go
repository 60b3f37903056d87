package commands

import (
	"context"
	"errors"
	"log/slog"

	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/core/domain/model/member"
	"flowerorder/internal/pkg/errs"
)

var (
	ErrLoginIDTaken        = errors.New("login id is already registered")
	ErrBusinessNumberTaken = errors.New("business number is already registered")
)

// SignUpMemberCommandHandler creates a PENDING member. Login ids and business
// numbers are unique; duplicates are validation errors.
type SignUpMemberCommandHandler struct {
	uowFactory MemberUoWFactory
	clock      kernel.Clock
	logger     *slog.Logger
}

func NewSignUpMemberCommandHandler(
	uowFactory MemberUoWFactory,
	clock kernel.Clock,
	logger *slog.Logger,
) SignUpMemberCommandHandler {
	return SignUpMemberCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		logger:     logger.With("component", "sign_up_member_handler"),
	}
}

func (h SignUpMemberCommandHandler) Handle(ctx context.Context, cmd SignUpMemberCommand) (*member.Member, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reg := cmd.Registration()
	memberRepo := uow.MemberRepository()

	taken, err := memberRepo.ExistsByLoginID(ctx, reg.LoginID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.NewValueIsInvalidErrorWithCause("login id", ErrLoginIDTaken)
	}

	taken, err = memberRepo.ExistsByBusinessNumber(ctx, reg.Profile.BusinessNumber)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.NewValueIsInvalidErrorWithCause("business number", ErrBusinessNumberTaken)
	}

	m, err := member.SignUp(kernel.NewUUID(), reg, h.clock.Now())
	if err != nil {
		return nil, err
	}

	if err = memberRepo.Add(ctx, m); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "Member signed up", "member_id", m.ID().String(), "login_id", m.LoginID())
	return m, nil
}
