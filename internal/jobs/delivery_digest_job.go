package jobs

import (
	"context"
	"log/slog"

	"flowerorder/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// TodayOrdersHandler lists the orders created or delivering today.
type TodayOrdersHandler interface {
	Handle(ctx context.Context, query queries.GetTodayOrdersQuery) ([]queries.OrderListItem, error)
}

// DeliveryDigestJob logs the deliveries due today so the dispatch desk can
// check them before the first run goes out.
type DeliveryDigestJob struct {
	handler  TodayOrdersHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewDeliveryDigestJob(handler TodayOrdersHandler, schedule string, logger *slog.Logger) *DeliveryDigestJob {
	return &DeliveryDigestJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "delivery_digest_job"),
	}
}

func (j *DeliveryDigestJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Delivery digest job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery digest job started", "schedule", j.schedule)
	return nil
}

// Run logs one line per delivery due today followed by a total.
func (j *DeliveryDigestJob) Run(ctx context.Context) error {
	query, err := queries.NewGetTodayOrdersQuery(queries.TodayDelivery)
	if err != nil {
		return err
	}
	items, err := j.handler.Handle(ctx, query)
	if err != nil {
		return err
	}

	for _, item := range items {
		j.logger.InfoContext(ctx, "Delivery due today",
			"order_number", item.OrderNumber,
			"delivery_time", item.DeliveryTime,
			"delivery_address", item.DeliveryAddress,
			"status", item.Status.String(),
		)
	}
	j.logger.InfoContext(ctx, "Delivery digest ready", "deliveries", len(items))
	return nil
}

func (j *DeliveryDigestJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery digest job stopped")
}
