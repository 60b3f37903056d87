package ports

import (
	"context"

	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/core/domain/model/member"
)

type MemberRepository interface {
	Add(ctx context.Context, aggregate *member.Member) error
	Update(ctx context.Context, aggregate *member.Member) error

	// Get returns *errs.ObjectNotFoundError for unknown members.
	Get(ctx context.Context, id kernel.UUID) (*member.Member, error)

	ExistsByLoginID(ctx context.Context, loginID string) (bool, error)
	ExistsByBusinessNumber(ctx context.Context, businessNumber string) (bool, error)
}
