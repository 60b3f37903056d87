package jobs_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"flowerorder/internal/core/application/usecases/queries"
	"flowerorder/internal/core/domain/model/order"
	"flowerorder/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type todayOrdersHandlerMock struct {
	mock.Mock
}

func (m *todayOrdersHandlerMock) Handle(ctx context.Context, query queries.GetTodayOrdersQuery) ([]queries.OrderListItem, error) {
	args := m.Called(ctx, query)
	items, _ := args.Get(0).([]queries.OrderListItem)
	return items, args.Error(1)
}

type statisticsHandlerMock struct {
	mock.Mock
}

func (m *statisticsHandlerMock) Handle(ctx context.Context, query queries.GetOrderStatisticsQuery) (queries.OrderStatistics, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderStatistics), args.Error(1)
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestDeliveryDigestJob_Run_LogsTodaysDeliveries(t *testing.T) {
	handler := new(todayOrdersHandlerMock)
	handler.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetTodayOrdersQuery) bool {
		return q.Kind() == queries.TodayDelivery
	})).Return([]queries.OrderListItem{
		{OrderNumber: "123456", DeliveryAddress: "Seoul Grand Hall 3F", Status: order.StatusConfirmed},
		{OrderNumber: "654321", DeliveryAddress: "Busan Station", Status: order.StatusPreparing},
	}, nil).Once()
	logger, buf := bufferLogger()

	err := jobs.NewDeliveryDigestJob(handler, "0 0 7 * * *", logger).Run(t.Context())

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "order_number=123456")
	assert.Contains(t, buf.String(), "order_number=654321")
	assert.Contains(t, buf.String(), "deliveries=2")
	handler.AssertExpectations(t)
}

func TestDeliveryDigestJob_Run_ReturnsHandlerError(t *testing.T) {
	handler := new(todayOrdersHandlerMock)
	handler.On("Handle", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()
	logger, _ := bufferLogger()

	err := jobs.NewDeliveryDigestJob(handler, "0 0 7 * * *", logger).Run(t.Context())

	require.EqualError(t, err, "db down")
}

func TestStatisticsJob_Run_LogsCounters(t *testing.T) {
	handler := new(statisticsHandlerMock)
	handler.On("Handle", mock.Anything, mock.Anything).
		Return(queries.OrderStatistics{Pending: 4, Delivered: 9, TodayDelivery: 2}, nil).Once()
	logger, buf := bufferLogger()

	err := jobs.NewStatisticsJob(handler, "0 0 * * * *", logger).Run(t.Context())

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "pending=4")
	assert.Contains(t, buf.String(), "delivered=9")
	assert.Contains(t, buf.String(), "today_delivery=2")
}

func TestJobManager_StartAll_RejectsInvalidSchedule(t *testing.T) {
	logger, _ := bufferLogger()
	manager := jobs.NewJobManager(new(todayOrdersHandlerMock), new(statisticsHandlerMock), jobs.Schedules{
		DeliveryDigest: "0 0 7 * * *",
		Statistics:     "every hour",
	}, logger)

	err := manager.StartAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "statistics job")
}

func TestJobManager_StartAndStop(t *testing.T) {
	logger, buf := bufferLogger()
	manager := jobs.NewJobManager(new(todayOrdersHandlerMock), new(statisticsHandlerMock), jobs.Schedules{
		DeliveryDigest: "0 0 7 * * *",
		Statistics:     "0 0 * * * *",
	}, logger)

	require.NoError(t, manager.StartAll())
	manager.StopAll()

	assert.Contains(t, buf.String(), "Delivery digest job started")
	assert.Contains(t, buf.String(), "Statistics job stopped")
}
