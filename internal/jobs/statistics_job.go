package jobs

import (
	"context"
	"log/slog"

	"flowerorder/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

type StatisticsHandler interface {
	Handle(ctx context.Context, query queries.GetOrderStatisticsQuery) (queries.OrderStatistics, error)
}

// StatisticsJob periodically logs the order count per status.
type StatisticsJob struct {
	handler  StatisticsHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewStatisticsJob(handler StatisticsHandler, schedule string, logger *slog.Logger) *StatisticsJob {
	return &StatisticsJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "statistics_job"),
	}
}

func (j *StatisticsJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Statistics job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Statistics job started", "schedule", j.schedule)
	return nil
}

func (j *StatisticsJob) Run(ctx context.Context) error {
	stats, err := j.handler.Handle(ctx, queries.NewGetOrderStatisticsQuery())
	if err != nil {
		return err
	}

	j.logger.InfoContext(ctx, "Order statistics",
		"pending", stats.Pending,
		"confirmed", stats.Confirmed,
		"preparing", stats.Preparing,
		"delivered", stats.Delivered,
		"cancelled", stats.Cancelled,
		"today_delivery", stats.TodayDelivery,
	)
	return nil
}

func (j *StatisticsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Statistics job stopped")
}
