// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. DeliveryDigestJob - logs every order whose delivery date is today (default 07:00 daily)
// 2. StatisticsJob - logs the order count per status (default hourly)
//
// # Usage
//
//	jobManager := jobs.NewJobManager(todayOrdersHandler, statisticsHandler, jobs.Schedules{
//		DeliveryDigest: "0 0 7 * * *",
//		Statistics:     "0 0 * * * *",
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Job failures are logged and the next tick runs as scheduled.
// A failed start stops any already running jobs.
package jobs
