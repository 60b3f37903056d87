// Command orderstats prints the order dashboard counters straight from the
// database, without going through the HTTP server.
//
//	orderstats                   # status counters
//	orderstats -member <uuid>    # plus one member's summary
//	orderstats -today            # plus today's deliveries
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"flowerorder/cmd"
	"flowerorder/internal/core/application/usecases/queries"
	"flowerorder/internal/core/domain/model/kernel"

	"github.com/labstack/gommon/log"
	"github.com/olekukonko/tablewriter"
)

func main() {
	envFile := flag.String("env", ".env", "path to the env file")
	memberFlag := flag.String("member", "", "member id to summarise")
	today := flag.Bool("today", false, "list orders delivered today")
	flag.Parse()

	configs, err := cmd.LoadConfig(*envFile)
	if err != nil {
		log.Fatalf("Error loading .env file: %v", err)
	}
	gormDB, err := cmd.OpenDatabase(configs)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	app := cmd.NewCompositionRoot(configs, gormDB, nil, nil, logger)
	defer func() { _ = app.Close() }()

	ctx := context.Background()
	if err = printStatistics(ctx, os.Stdout, app.CreateGetOrderStatisticsQueryHandler()); err != nil {
		log.Fatalf("Error reading statistics: %v", err)
	}

	if *memberFlag != "" {
		memberID, parseErr := kernel.UUIDFromString(*memberFlag)
		if parseErr != nil {
			log.Fatalf("Invalid member id: %v", parseErr)
		}
		if err = printSummary(ctx, os.Stdout, app.CreateGetOrderSummaryQueryHandler(), memberID); err != nil {
			log.Fatalf("Error reading member summary: %v", err)
		}
	}

	if *today {
		if err = printTodayDeliveries(ctx, os.Stdout, app.CreateGetTodayOrdersQueryHandler()); err != nil {
			log.Fatalf("Error reading today's deliveries: %v", err)
		}
	}
}

type statisticsHandler interface {
	Handle(ctx context.Context, query queries.GetOrderStatisticsQuery) (queries.OrderStatistics, error)
}

type summaryHandler interface {
	Handle(ctx context.Context, query queries.GetOrderSummaryQuery) (queries.OrderSummary, error)
}

type todayOrdersHandler interface {
	Handle(ctx context.Context, query queries.GetTodayOrdersQuery) ([]queries.OrderListItem, error)
}

func printStatistics(ctx context.Context, w io.Writer, handler statisticsHandler) error {
	stats, err := handler.Handle(ctx, queries.NewGetOrderStatisticsQuery())
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header("Status", "Orders")
	rows := [][]any{
		{"PENDING", stats.Pending},
		{"CONFIRMED", stats.Confirmed},
		{"PREPARING", stats.Preparing},
		{"DELIVERED", stats.Delivered},
		{"CANCELLED", stats.Cancelled},
		{"DELIVERY TODAY", stats.TodayDelivery},
	}
	for _, row := range rows {
		if err = table.Append(row...); err != nil {
			return err
		}
	}
	return table.Render()
}

func printSummary(ctx context.Context, w io.Writer, handler summaryHandler, memberID kernel.UUID) error {
	query, err := queries.NewGetOrderSummaryQuery(memberID)
	if err != nil {
		return err
	}
	summary, err := handler.Handle(ctx, query)
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintf(w, "Member %s\n", memberID); err != nil {
		return err
	}
	table := tablewriter.NewWriter(w)
	table.Header("Total", "This month", "Delivered", "In progress")
	if err = table.Append(summary.TotalCount, summary.MonthCount, summary.DeliveredCount, summary.InProgressCount); err != nil {
		return err
	}
	return table.Render()
}

func printTodayDeliveries(ctx context.Context, w io.Writer, handler todayOrdersHandler) error {
	query, err := queries.NewGetTodayOrdersQuery(queries.TodayDelivery)
	if err != nil {
		return err
	}
	items, err := handler.Handle(ctx, query)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header("Number", "Time", "Receiver", "Address", "Status")
	for _, item := range items {
		if err = table.Append(item.OrderNumber, item.DeliveryTime, item.Receiver, item.DeliveryAddress, item.Status.String()); err != nil {
			return err
		}
	}
	return table.Render()
}
