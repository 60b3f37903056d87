package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"flowerorder/internal/core/application/usecases/commands"
	"flowerorder/internal/core/domain/model/catalog"
	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/core/domain/model/member"
	"flowerorder/internal/core/domain/model/order"
	"flowerorder/internal/core/ports"
	"flowerorder/internal/pkg/paging"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

var fixedClock = kernel.ClockFunc(func() time.Time { return now })

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func validDraft() order.Draft {
	return order.Draft{
		Type: order.TypeDirect,
		Details: order.Details{
			ShopName:      "Rose Garden",
			ShopPhone:     "02-123-4567",
			ProductName:   "Congratulation wreath",
			Quantity:      1,
			Price:         kernel.NewMoney(180000),
			Payment:       kernel.NewMoney(200000),
			OrdererName:   "Kim",
			OrdererMobile: "010-1111-2222",
			ReceiverName:  "Lee",
			DeliveryDate:  now.AddDate(0, 0, 1),
			DeliveryPlace: "Seoul Grand Hall 3F",
			IsDelivery:    true,
		},
		Senders: []order.SenderSpec{{Name: "Park", IsMain: true}},
	}
}

func newOrderInStatus(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	number, err := order.NewNumber("123456")
	require.NoError(t, err)
	o, err := order.RestoreOrder(order.Snapshot{
		ID:       kernel.NewUUID(),
		Number:   number,
		MemberID: kernel.NewUUID(),
		Type:     order.TypeDirect,
		Details:  validDraft().Details,
		Status:   status,
		Audit:    kernel.NewAudit(now.Add(-time.Hour)),
		Version:  1,
	})
	require.NoError(t, err)
	return o
}

func newPendingMember(t *testing.T) *member.Member {
	t.Helper()
	m, err := member.SignUp(kernel.NewUUID(), member.Registration{
		LoginID: "rosegarden",
		Name:    "Kim",
		Mobile:  "010-1111-2222",
		Profile: member.BusinessProfile{BusinessNumber: "123-45-67890", CorpName: "Rose Garden"},
	}, now)
	require.NoError(t, err)
	return m
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByNumber(ctx context.Context, number order.Number) (*order.Order, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ExistsByOrderNumber(ctx context.Context, number order.Number) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) FindFiltered(
	ctx context.Context,
	filter order.Filter,
	page paging.PageRequest,
) (paging.Page[*order.Order], error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).(paging.Page[*order.Order]), args.Error(1)
}

func (m *MockOrderRepository) CountByStatus(ctx context.Context, status order.Status) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) CountByMember(ctx context.Context, memberID kernel.UUID) (int64, error) {
	args := m.Called(ctx, memberID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) CountByMemberCreatedBetween(
	ctx context.Context,
	memberID kernel.UUID,
	from, to time.Time,
) (int64, error) {
	args := m.Called(ctx, memberID, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) CountByMemberAndStatuses(
	ctx context.Context,
	memberID kernel.UUID,
	statuses ...order.Status,
) (int64, error) {
	args := m.Called(ctx, memberID, statuses)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) FindCreatedBetween(ctx context.Context, from, to time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByDeliveryDate(ctx context.Context, date time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, date)
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockMemberRepository struct{ mock.Mock }

func (m *MockMemberRepository) Add(ctx context.Context, mb *member.Member) error {
	args := m.Called(ctx, mb)
	return args.Error(0)
}

func (m *MockMemberRepository) Update(ctx context.Context, mb *member.Member) error {
	args := m.Called(ctx, mb)
	return args.Error(0)
}

func (m *MockMemberRepository) Get(ctx context.Context, id kernel.UUID) (*member.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*member.Member), args.Error(1)
}

func (m *MockMemberRepository) ExistsByLoginID(ctx context.Context, loginID string) (bool, error) {
	args := m.Called(ctx, loginID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMemberRepository) ExistsByBusinessNumber(ctx context.Context, businessNumber string) (bool, error) {
	args := m.Called(ctx, businessNumber)
	return args.Bool(0), args.Error(1)
}

type MockRegionRepository struct{ mock.Mock }

func (m *MockRegionRepository) Get(ctx context.Context, id kernel.UUID) (catalog.Region, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.Region), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (catalog.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.Product), args.Error(1)
}

type MockFileStorage struct{ mock.Mock }

func (m *MockFileStorage) Save(ctx context.Context, file ports.Upload, folder string) (string, error) {
	args := m.Called(ctx, file, folder)
	return args.String(0), args.Error(1)
}

func (m *MockFileStorage) Delete(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

// MockUoW satisfies every unit of work view used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) MemberRepository() ports.MemberRepository {
	args := m.Called()
	return args.Get(0).(ports.MemberRepository)
}

func (m *MockUoW) RegionRepository() ports.RegionRepository {
	args := m.Called()
	return args.Get(0).(ports.RegionRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockMemberUoWFactory struct{ mock.Mock }

func (m *MockMemberUoWFactory) Create() commands.MemberUoW {
	args := m.Called()
	return args.Get(0).(commands.MemberUoW)
}

// sequenceRandom replays draws in order.
type sequenceRandom struct {
	draws []int
	next  int
}

func (s *sequenceRandom) IntN(int) int {
	v := s.draws[s.next%len(s.draws)]
	s.next++
	return v
}
