package queries_test

import (
	"context"
	"testing"
	"time"

	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/core/domain/model/order"
	"flowerorder/internal/pkg/paging"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)

var fixedClock = kernel.ClockFunc(func() time.Time { return now })

func restoreOrder(t *testing.T, number string, status order.Status, createdAt time.Time) *order.Order {
	t.Helper()
	n, err := order.NewNumber(number)
	require.NoError(t, err)
	orderID := kernel.NewUUID()
	o, err := order.RestoreOrder(order.Snapshot{
		ID:       orderID,
		Number:   n,
		MemberID: kernel.NewUUID(),
		Type:     order.TypeBranch,
		Details: order.Details{
			ShopName:        "Rose Garden",
			ProductName:     "Condolence wreath",
			Quantity:        1,
			Payment:         kernel.NewMoney(200000),
			ReceiverName:    "Lee",
			DeliveryDate:    time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
			DeliveryHours:   "09",
			DeliveryMinutes: "30",
			DeliveryPlace:   "Seoul Grand Hall 3F",
			IsDelivery:      true,
			SMS:             order.NotificationSuccess,
		},
		Status: status,
		Options: []order.Option{
			order.RestoreOption(kernel.NewUUID(), orderID, order.OptionSpec{Name: "Ribbon", Checked: true, Price: kernel.NewMoney(10000)}),
		},
		Senders: []order.Sender{
			order.RestoreSender(kernel.NewUUID(), orderID, order.SenderSpec{Name: "Park"}),
			order.RestoreSender(kernel.NewUUID(), orderID, order.SenderSpec{Name: "Kim"}),
		},
		Audit:   kernel.NewAudit(createdAt),
		Version: 1,
	})
	require.NoError(t, err)
	return o
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
