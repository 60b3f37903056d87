package commands

import (
	"context"
	"log/slog"
	"time"

	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/core/domain/model/member"
)

// ApproveMemberCommandHandler activates a member application.
type ApproveMemberCommandHandler struct {
	reviewer memberReviewer
}

func NewApproveMemberCommandHandler(
	uowFactory MemberUoWFactory,
	clock kernel.Clock,
	logger *slog.Logger,
) ApproveMemberCommandHandler {
	return ApproveMemberCommandHandler{
		reviewer: memberReviewer{
			uowFactory: uowFactory,
			clock:      clock,
			logger:     logger.With("component", "approve_member_handler"),
		},
	}
}

func (h ApproveMemberCommandHandler) Handle(ctx context.Context, cmd ApproveMemberCommand) (*member.Member, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.reviewer.review(ctx, cmd.MemberID(), "Member approved", func(m *member.Member, now time.Time) error {
		return m.Approve(now)
	})
}

// RejectMemberCommandHandler records a rejection; the member stays PENDING.
type RejectMemberCommandHandler struct {
	reviewer memberReviewer
}

func NewRejectMemberCommandHandler(
	uowFactory MemberUoWFactory,
	clock kernel.Clock,
	logger *slog.Logger,
) RejectMemberCommandHandler {
	return RejectMemberCommandHandler{
		reviewer: memberReviewer{
			uowFactory: uowFactory,
			clock:      clock,
			logger:     logger.With("component", "reject_member_handler"),
		},
	}
}

func (h RejectMemberCommandHandler) Handle(ctx context.Context, cmd RejectMemberCommand) (*member.Member, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.reviewer.review(ctx, cmd.MemberID(), "Member rejected", func(m *member.Member, now time.Time) error {
		return m.Reject(cmd.Reason(), now)
	})
}

// memberReviewer loads a member, applies a change and persists it in one transaction.
type memberReviewer struct {
	uowFactory MemberUoWFactory
	clock      kernel.Clock
	logger     *slog.Logger
}

func (r memberReviewer) review(
	ctx context.Context,
	memberID kernel.UUID,
	done string,
	change func(m *member.Member, now time.Time) error,
) (*member.Member, error) {
	uow := r.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	memberRepo := uow.MemberRepository()
	m, err := memberRepo.Get(ctx, memberID)
	if err != nil {
		return nil, err
	}

	if err = change(m, r.clock.Now()); err != nil {
		return nil, err
	}

	if err = memberRepo.Update(ctx, m); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	r.logger.InfoContext(ctx, done, "member_id", m.ID().String())
	return m, nil
}
