package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chris/in-memory-ledger/pkg/clock"
	"github.com/chris/in-memory-ledger/pkg/config"
	"github.com/chris/in-memory-ledger/pkg/events"
	"github.com/chris/in-memory-ledger/pkg/handlers"
	wshandler "github.com/chris/in-memory-ledger/pkg/handlers/websockets"
	"github.com/chris/in-memory-ledger/pkg/idgen"
	"github.com/chris/in-memory-ledger/pkg/middleware"
	"github.com/chris/in-memory-ledger/pkg/server"
	"github.com/chris/in-memory-ledger/pkg/storage/memory"
	"github.com/chris/in-memory-ledger/pkg/websockets"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Create our storage implementation
	store := memory.New(clock.UTC{}, idgen.Random{})

	// Balance update sinks
	publishers := events.MultiPublisher{}

	if cfg.SQSQueueURL != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			log.Fatalf("unable to load SDK config, %v", err)
		}
		publishers = append(publishers, events.NewSQSPublisher(sqs.NewFromConfig(awsCfg), cfg.SQSQueueURL))
		logger.Info("publishing balance updates to SQS", "queueUrl", cfg.SQSQueueURL)
	}

	if len(cfg.KafkaBrokers) > 0 {
		publishers = append(publishers, events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic))
		logger.Info("publishing balance updates to Kafka", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	if cfg.NATSURL != "" {
		natsPublisher, err := events.NewNATSPublisher(cfg.NATSURL, cfg.NATSSubject)
		if err != nil {
			log.Fatalf("unable to connect to NATS, %v", err)
		}
		publishers = append(publishers, natsPublisher)
		logger.Info("publishing balance updates to NATS", "url", cfg.NATSURL, "subject", cfg.NATSSubject)
	}

	opts := server.Options{Logger: logger}

	if cfg.WebsocketsEnabled {
		hub := websockets.NewHub()
		publishers = append(publishers, hub)
		opts.Websockets = wshandler.NewHandler(hub)
	}

	telemetry, err := middleware.NewTelemetry(nil, nil)
	if err != nil {
		log.Fatalf("unable to create telemetry instruments, %v", err)
	}
	opts.Telemetry = telemetry

	// Create our handler
	handler := handlers.NewApiHandler(store, publishers)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: server.NewRouter(handler, opts),
	}

	go func() {
		logger.Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", "error", err)
	}
	if err := publishers.Close(); err != nil {
		logger.Error("failed to close publishers", "error", err)
	}
}
