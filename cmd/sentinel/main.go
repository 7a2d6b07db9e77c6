package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"trend_sentinel/internal/claims"
	"trend_sentinel/internal/classifier"
	"trend_sentinel/internal/config"
	"trend_sentinel/internal/gemini"
	"trend_sentinel/internal/publisher"
	"trend_sentinel/internal/scheduler"
	"trend_sentinel/internal/scraper"
	"trend_sentinel/internal/search"
	"trend_sentinel/internal/service"
	"trend_sentinel/internal/source/reddit"
	"trend_sentinel/internal/storage/postgres"
	"trend_sentinel/internal/velocity"
	"trend_sentinel/internal/verifier"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Initialize RabbitMQ publisher
	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize stores
	fingerprintStore := postgres.NewFingerprintStore(db)
	reportStore := postgres.NewReportStore(db)
	txManager := postgres.NewTransactionManager(db)

	// Gemini backs classification, extraction, and evidence analysis.
	// Without an API key the classifier degrades to velocity heuristics;
	// claim verification cannot degrade, so there it is fatal.
	var geminiClient *gemini.Client
	if cfg.Gemini.APIKey != "" {
		geminiClient, err = gemini.NewClient(ctx, cfg.Gemini, logger)
		if err != nil {
			logger.Error("failed to initialize gemini client", "error", err)
			os.Exit(1)
		}
	} else if cfg.Scan.VerificationEnabled {
		logger.Error("verification enabled but gemini api key is not set")
		os.Exit(1)
	} else {
		logger.Warn("gemini api key not set, running heuristic-only classification")
	}

	var batchClient classifier.BatchClient
	if geminiClient != nil {
		batchClient = geminiClient
	}

	deps := service.Deps{
		Source:     reddit.New(cfg.Reddit, logger),
		Dedup:      fingerprintStore,
		Tracker:    velocity.NewTracker(cfg.Scan.CommentWeight, cfg.Scan.RetentionWindow),
		Classifier: classifier.New(batchClient, cfg.Scan.VelocityHigh, cfg.Scan.VelocityMedium, logger),
		Fetcher:    scraper.New(cfg.Scraper, cfg.Reddit.UserAgent, logger),
		Reports:    reportStore,
		TxManager:  txManager,
		Publisher:  rabbitMQ,
	}

	if cfg.Scan.VerificationEnabled {
		searchClient, err := search.NewClient(cfg.Search, logger)
		if err != nil {
			logger.Error("failed to initialize search client", "error", err)
			os.Exit(1)
		}
		deps.Extractor = claims.NewExtractor(geminiClient, logger)
		deps.Verifier = verifier.New(searchClient, geminiClient, logger)
	}

	scanService := service.NewScanService(deps, cfg.Reddit.Communities, cfg.Scan, logger)

	sched := scheduler.NewScheduler(scanService, cfg.Scan.Interval, cfg.Scan.CycleTimeout, logger)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting trend sentinel",
		"communities", cfg.Reddit.Communities,
		"interval", cfg.Scan.Interval,
		"verification_enabled", cfg.Scan.VerificationEnabled,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
