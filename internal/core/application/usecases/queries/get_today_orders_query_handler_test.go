package queries_test

import (
	"testing"
	"time"

	"flowerorder/internal/core/application/usecases/queries"
	"flowerorder/internal/core/domain/model/order"
	"flowerorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTodayOrdersQueryHandler_Created(t *testing.T) {
	ctx := t.Context()
	from := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)

	repo := new(MockOrderRepository)
	repo.On("FindCreatedBetween", ctx, from, to).
		Return([]*order.Order{restoreOrder(t, "123456", order.StatusPending, now)}, nil).Once()

	q, err := queries.NewGetTodayOrdersQuery(queries.TodayCreated)
	require.NoError(t, err)

	items, err := queries.NewGetTodayOrdersQueryHandler(repo, fixedClock).Handle(ctx, q)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "14:30", items[0].OrderTime)
	repo.AssertExpectations(t)
}

func TestGetTodayOrdersQueryHandler_Delivery(t *testing.T) {
	ctx := t.Context()
	repo := new(MockOrderRepository)
	repo.On("FindByDeliveryDate", ctx, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)).
		Return([]*order.Order{}, nil).Once()

	q, err := queries.NewGetTodayOrdersQuery(queries.TodayDelivery)
	require.NoError(t, err)

	items, err := queries.NewGetTodayOrdersQueryHandler(repo, fixedClock).Handle(ctx, q)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotNil(t, items)
}

func TestNewGetTodayOrdersQuery_UnknownKind(t *testing.T) {
	_, err := queries.NewGetTodayOrdersQuery("yesterday")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
