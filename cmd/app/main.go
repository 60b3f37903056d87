package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flowerorder/api"
	"flowerorder/cmd"
	httpin "flowerorder/internal/adapters/in/http"
	"flowerorder/internal/adapters/out/filestorage"
	"flowerorder/internal/adapters/out/postgres"
	"flowerorder/internal/adapters/out/rabbitmq"
	"flowerorder/internal/core/ports"

	"github.com/labstack/gommon/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := cmd.OpenDatabase(configs)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.Migrate(ctx, gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	storage, err := filestorage.NewLocalStorage(configs.UploadDir)
	if err != nil {
		log.Fatalf("Error preparing upload directory: %v", err)
	}

	var publisher ports.EventPublisher
	if configs.RabbitMQURL != "" {
		rabbit, dialErr := rabbitmq.Dial(configs.RabbitMQURL, configs.RabbitMQExchange, logger)
		if dialErr != nil {
			log.Fatalf("Error connecting to RabbitMQ: %v", dialErr)
		}
		defer func() { _ = rabbit.Close() }()
		publisher = rabbit
	} else {
		logger.Warn("RABBITMQ_URL is empty, order events will not be published")
	}

	app := cmd.NewCompositionRoot(configs, gormDB, publisher, storage, logger)
	defer func() { _ = app.Close() }()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading .env file: %v", err)
	}
	return configs
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string, logger *slog.Logger) {
	doc, err := api.Load()
	if err != nil {
		log.Fatalf("Error loading OpenAPI document: %v", err)
	}
	e, err := httpin.NewRouter(app.CreateHTTPServer(), doc, logger)
	if err != nil {
		log.Fatalf("Error building router: %v", err)
	}

	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			e.Logger.Fatal(startErr)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shut down web server", "error", err)
	}
}
