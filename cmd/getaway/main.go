package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"getaway/internal/analytics"
	"getaway/internal/config"
	"getaway/internal/fares"
	"getaway/internal/forecast"
	"getaway/internal/gismeteo"
	"getaway/internal/logger"
	"getaway/internal/models"
	"getaway/internal/report"
)

var configPath = flag.String("config", "configs/config.yaml", "Path to configuration file")

func main() {
	flag.Parse()

	// Load environment variables from .env file, if present
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: error loading .env file: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	logger.Info("Configuration loaded from %s", *configPath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	line, err := run(ctx, cfg)
	if err != nil {
		logger.Fatal("Run failed: %v", err)
	}

	fmt.Println(line)

	if cfg.Telegram.Enabled {
		notifier, err := report.NewNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			logger.Error("Failed to initialize Telegram notifier: %v", err)
			return
		}
		if err := notifier.Send(line); err != nil {
			logger.Error("Failed to deliver report via Telegram: %v", err)
		} else {
			logger.Info("Report delivered via Telegram")
		}
	}
}

// run executes one collection-analysis-selection-fare cycle and returns the
// report line.
func run(ctx context.Context, cfg *config.Config) (string, error) {
	runID := uuid.New().String()
	startTime := time.Now()
	logger.Info("Starting run %s", runID)

	site := gismeteo.NewClient(
		cfg.Source.BaseURL,
		cfg.Source.Timeout,
		cfg.Source.RequestsPerSecond,
		cfg.Source.Burst,
	)
	collector := forecast.NewCollector(site, cfg.Source.MaxCities)

	table, err := collector.Collect(ctx, startTime)
	if err != nil {
		return "", fmt.Errorf("forecast collection failed: %w", err)
	}
	logger.Info("Collected %d forecast rows for %d cities", len(table), len(table)/models.DaysPerCity)

	analytics.Enrich(table)

	city, err := analytics.SelectCity(table)
	if err != nil {
		return "", fmt.Errorf("city selection failed: %w", err)
	}
	logger.Info("Best weekend city: %s", city)

	faresClient := fares.NewClient(
		cfg.Fares.SuggestURL,
		cfg.Fares.CalendarURL,
		cfg.Fares.Origin,
		cfg.Fares.QueryPrefix,
		cfg.Fares.Timeout,
	)

	ticket, err := faresClient.FindTicket(ctx, city, startTime)
	if err != nil && !errors.Is(err, fares.ErrNoFares) {
		return "", fmt.Errorf("fare lookup failed: %w", err)
	}
	if ticket != nil {
		logger.Info("Found fare %.0f RUB to %s on %s", ticket.Price, ticket.IATA, ticket.DepartDate.Format("2006-01-02"))
	} else {
		logger.Info("No fares found for %s", city)
	}

	logger.Info("Run %s completed in %v", runID, time.Since(startTime))
	return report.Line(city, ticket), nil
}
