package orderrepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"flowerorder/internal/adapters/out/postgres/columns"
	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/core/domain/model/order"
	"flowerorder/internal/pkg/errs"
	"flowerorder/internal/pkg/paging"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var sortColumns = map[string]string{
	"id":           "id",
	"createdAt":    "created_at",
	"updatedAt":    "updated_at",
	"deliveryDate": "delivery_date",
	"orderStatus":  "status",
	"payment":      "payment",
	"shopName":     "shop_name",
	"productName":  "product_name",
}

var keywordColumns = map[order.SearchField]string{
	order.SearchPurchaseShopName: "shop_name",
	order.SearchSalesShopName:    "shop_name",
	order.SearchProductName:      "product_name",
	order.SearchOrderNumber:      "order_number",
	order.SearchConsignee:        "consignee",
	order.SearchReceiver:         "receiver_name",
	order.SearchDeliveryAddress:  "delivery_place",
}

type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order row together with its options, messages and senders.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update rewrites the order row when the stored version still equals
// aggregate.Version() and bumps the version on success.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	expected := dto.Version
	dto.Version = expected + 1

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, expected).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return errs.NewVersionIsInvalidErrorWithCause("order",
			errors.New("order was modified by another request"))
	}

	aggregate.MarkPersisted(dto.Version)
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.withChildren(ctx).Scopes(notDeleted).First(&dto, "id = ?", columns.FromKernel(id)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) GetByNumber(ctx context.Context, number order.Number) (*order.Order, error) {
	if number.IsZero() {
		return nil, errs.NewValueIsRequiredError("order number")
	}

	var dto OrderDTO
	err := r.withChildren(ctx).Scopes(notDeleted).First(&dto, "order_number = ?", number.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order number", number.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) ExistsByOrderNumber(ctx context.Context, number order.Number) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("order_number = ?", number.String()).Count(&count).Error
	return count > 0, err
}

func (r *GormOrderRepository) FindFiltered(
	ctx context.Context,
	filter order.Filter,
	page paging.PageRequest,
) (paging.Page[*order.Order], error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Scopes(notDeleted, filterScope(filter)).
		Count(&total).Error; err != nil {
		return paging.Page[*order.Order]{}, err
	}

	if total == 0 || int64(page.Offset()) >= total {
		return paging.NewPage[*order.Order](nil, page, total), nil
	}

	var dtos []OrderDTO
	if err := r.withChildren(ctx).
		Scopes(notDeleted, filterScope(filter), sortScope(page)).
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&dtos).Error; err != nil {
		return paging.Page[*order.Order]{}, err
	}

	items, err := toDomainList(dtos)
	if err != nil {
		return paging.Page[*order.Order]{}, err
	}
	return paging.NewPage(items, page, total), nil
}

func (r *GormOrderRepository) CountByStatus(ctx context.Context, status order.Status) (int64, error) {
	return r.count(ctx, "status = ?", status.String())
}

func (r *GormOrderRepository) CountByMember(ctx context.Context, memberID kernel.UUID) (int64, error) {
	return r.count(ctx, "member_id = ?", columns.FromKernel(memberID))
}

func (r *GormOrderRepository) CountByMemberCreatedBetween(
	ctx context.Context,
	memberID kernel.UUID,
	from, to time.Time,
) (int64, error) {
	return r.count(ctx, "member_id = ? AND created_at >= ? AND created_at < ?", columns.FromKernel(memberID), from, to)
}

func (r *GormOrderRepository) CountByMemberAndStatuses(
	ctx context.Context,
	memberID kernel.UUID,
	statuses ...order.Status,
) (int64, error) {
	if len(statuses) == 0 {
		return 0, nil
	}
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}
	return r.count(ctx, "member_id = ? AND status IN ?", columns.FromKernel(memberID), names)
}

func (r *GormOrderRepository) FindCreatedBetween(ctx context.Context, from, to time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.withChildren(ctx).
		Scopes(notDeleted).
		Where("created_at >= ? AND created_at < ?", from, to).
		Order("created_at DESC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

func (r *GormOrderRepository) FindByDeliveryDate(ctx context.Context, date time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.withChildren(ctx).
		Scopes(notDeleted).
		Where("delivery_date = ?", date.Format(time.DateOnly)).
		Order("created_at DESC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

func (r *GormOrderRepository) count(ctx context.Context, query string, args ...any) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).Scopes(notDeleted).Where(query, args...).Count(&count).Error
	return count, err
}

// withChildren preloads the child rows in their original order.
func (r *GormOrderRepository) withChildren(ctx context.Context) *gorm.DB {
	byPosition := func(db *gorm.DB) *gorm.DB { return db.Order("position") }
	return r.db.WithContext(ctx).
		Preload("Options", byPosition).
		Preload("Messages", byPosition).
		Preload("Senders", byPosition)
}

func notDeleted(db *gorm.DB) *gorm.DB {
	return db.Where("orders.is_deleted = ?", false)
}

// filterScope applies each non-empty part of f. Calendar-day bounds are inclusive.
func filterScope(f order.Filter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(f.MemberIDs) > 0 {
			db = db.Where("member_id IN ?", columns.UUIDs(f.MemberIDs))
		}
		if len(f.RegionIDs) > 0 {
			db = db.Where("region_id IN ?", columns.UUIDs(f.RegionIDs))
		}
		if f.Status != nil {
			db = db.Where("status = ?", f.Status.String())
		}
		db = dateScope(db, f)
		if f.HasKeyword() {
			db = keywordScope(db, f.SearchField, f.Keyword)
		}
		return db
	}
}

func dateScope(db *gorm.DB, f order.Filter) *gorm.DB {
	if f.DateField == order.DateFieldDelivery || f.DateField == "" {
		if f.Start != nil {
			db = db.Where("delivery_date >= ?", f.Start.Format(time.DateOnly))
		}
		if f.End != nil {
			db = db.Where("delivery_date <= ?", f.End.Format(time.DateOnly))
		}
		return db
	}

	if f.Start != nil {
		db = db.Where("created_at >= ?", kernel.DateOf(*f.Start))
	}
	if f.End != nil {
		db = db.Where("created_at < ?", kernel.DateOf(*f.End).AddDate(0, 0, 1))
	}
	return db
}

// likeEscaper escapes the LIKE wildcards of a keyword. "!" works as the escape
// character on both PostgreSQL and MySQL.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func keywordScope(db *gorm.DB, field order.SearchField, keyword string) *gorm.DB {
	pattern := "%" + likeEscaper.Replace(keyword) + "%"
	if field == order.SearchCorpName {
		return db.Where("member_id IN (SELECT id FROM members WHERE corp_name LIKE ? ESCAPE '!')", pattern)
	}
	column, ok := keywordColumns[field]
	if !ok {
		return db
	}
	return db.Where(clause.Expr{SQL: "? LIKE ? ESCAPE '!'", Vars: []any{clause.Column{Name: column}, pattern}})
}

func sortScope(page paging.PageRequest) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		column, ok := sortColumns[page.Sort]
		if !ok {
			column = "created_at"
		}
		db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: page.Descending()})
		if column != "id" {
			db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}})
		}
		return db
	}
}

func toDomainList(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
