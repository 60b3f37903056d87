package jobs

import (
	"fmt"
	"log/slog"
)

// Schedules are six-field cron expressions (seconds first).
type Schedules struct {
	DeliveryDigest string
	Statistics     string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	deliveryDigestJob *DeliveryDigestJob
	statisticsJob     *StatisticsJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	todayOrdersHandler TodayOrdersHandler,
	statisticsHandler StatisticsHandler,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		deliveryDigestJob: NewDeliveryDigestJob(todayOrdersHandler, schedules.DeliveryDigest, logger),
		statisticsJob:     NewStatisticsJob(statisticsHandler, schedules.Statistics, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.deliveryDigestJob.Start(); err != nil {
		return fmt.Errorf("failed to start delivery digest job: %w", err)
	}

	if err := jm.statisticsJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.deliveryDigestJob.Stop()
		return fmt.Errorf("failed to start statistics job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.statisticsJob.Stop()
	jm.deliveryDigestJob.Stop()
}
