package commands

import (
	"context"
	"log/slog"

	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/core/domain/model/member"
)

// SaveRegionPricesCommandHandler deactivates every district and price of the
// member, then upserts the submitted ones.
type SaveRegionPricesCommandHandler struct {
	uowFactory MemberUoWFactory
	clock      kernel.Clock
	logger     *slog.Logger
}

func NewSaveRegionPricesCommandHandler(
	uowFactory MemberUoWFactory,
	clock kernel.Clock,
	logger *slog.Logger,
) SaveRegionPricesCommandHandler {
	return SaveRegionPricesCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		logger:     logger.With("component", "save_region_prices_handler"),
	}
}

func (h SaveRegionPricesCommandHandler) Handle(
	ctx context.Context,
	cmd SaveRegionPricesCommand,
) (*member.Member, error) {
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

	memberRepo := uow.MemberRepository()
	m, err := memberRepo.Get(ctx, cmd.MemberID())
	if err != nil {
		return nil, err
	}

	if err = m.ReplaceRegionPrices(cmd.Regions(), h.clock.Now()); err != nil {
		return nil, err
	}

	if err = memberRepo.Update(ctx, m); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "Region prices saved", "member_id", m.ID().String(), "regions", len(cmd.Regions()))
	return m, nil
}
