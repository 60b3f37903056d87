package memberrepo

import (
	"context"
	"errors"

	"flowerorder/internal/adapters/out/postgres/columns"
	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/core/domain/model/member"
	"flowerorder/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormMemberRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormMemberRepository(db *gorm.DB, tracker aggregateTracker) *GormMemberRepository {
	return &GormMemberRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormMemberRepository) Add(ctx context.Context, aggregate *member.Member) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the member row and upserts its regions and prices by their
// natural keys. Rows are never removed, only deactivated.
func (r *GormMemberRepository) Update(ctx context.Context, aggregate *member.Member) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormMemberRepository) Get(ctx context.Context, id kernel.UUID) (*member.Member, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MemberDTO
	err := r.db.WithContext(ctx).
		Preload("ActivityRegions", func(db *gorm.DB) *gorm.DB { return db.Order("sido, sigungu") }).
		Preload("ProductPrices", func(db *gorm.DB) *gorm.DB { return db.Order("sido, sigungu, category_name") }).
		First(&dto, "id = ?", columns.FromKernel(id)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("member", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormMemberRepository) ExistsByLoginID(ctx context.Context, loginID string) (bool, error) {
	return r.exists(ctx, "login_id = ?", loginID)
}

func (r *GormMemberRepository) ExistsByBusinessNumber(ctx context.Context, businessNumber string) (bool, error) {
	return r.exists(ctx, "business_number = ?", businessNumber)
}

func (r *GormMemberRepository) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&MemberDTO{}).Where(query, args...).Count(&count).Error
	return count > 0, err
}
