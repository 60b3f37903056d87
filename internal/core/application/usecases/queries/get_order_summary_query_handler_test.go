package queries_test

import (
	"errors"
	"testing"
	"time"

	"flowerorder/internal/core/application/usecases/queries"
	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetOrderSummaryQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	memberID := kernel.NewUUID()
	monthStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	repo := new(MockOrderRepository)
	repo.On("CountByMember", ctx, memberID).Return(int64(12), nil).Once()
	repo.On("CountByMemberCreatedBetween", ctx, memberID, monthStart, monthEnd).Return(int64(4), nil).Once()
	repo.On("CountByMemberAndStatuses", ctx, memberID, []order.Status{order.StatusDelivered}).
		Return(int64(7), nil).Once()
	repo.On("CountByMemberAndStatuses", ctx, memberID, order.InProgressStatuses()).
		Return(int64(3), nil).Once()

	q, err := queries.NewGetOrderSummaryQuery(memberID)
	require.NoError(t, err)

	summary, err := queries.NewGetOrderSummaryQueryHandler(repo, fixedClock).Handle(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, queries.OrderSummary{TotalCount: 12, MonthCount: 4, DeliveredCount: 7, InProgressCount: 3}, summary)
	repo.AssertExpectations(t)
}

func TestGetOrderSummaryQueryHandler_Handle_StoreError(t *testing.T) {
	ctx := t.Context()
	memberID := kernel.NewUUID()

	repo := new(MockOrderRepository)
	repo.On("CountByMember", ctx, memberID).Return(int64(0), errors.New("timeout")).Once()

	q, err := queries.NewGetOrderSummaryQuery(memberID)
	require.NoError(t, err)

	_, err = queries.NewGetOrderSummaryQueryHandler(repo, fixedClock).Handle(ctx, q)
	require.Error(t, err)
	repo.AssertNotCalled(t, "CountByMemberCreatedBetween", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
