package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/JCaesar45/Stock-Market-Analysis-Dashboard/internal/analyzer"
	"github.com/JCaesar45/Stock-Market-Analysis-Dashboard/internal/config"
	"github.com/JCaesar45/Stock-Market-Analysis-Dashboard/internal/models"
	"github.com/JCaesar45/Stock-Market-Analysis-Dashboard/internal/report"
	"github.com/JCaesar45/Stock-Market-Analysis-Dashboard/internal/signal"
	"github.com/JCaesar45/Stock-Market-Analysis-Dashboard/pkg/logger"
)

func main() {
	pricesFlag := flag.String("prices", "", "comma-separated close prices; defaults to the built-in sample series")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.LogLevel, cfg.Environment); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	series := models.SampleSeries
	if *pricesFlag != "" {
		series, err = parseSeries(*pricesFlag)
		if err != nil {
			logger.Fatal("Failed to parse price series",
				logger.ErrorField(err),
			)
		}
	}

	engine := analyzer.New(
		cfg.Analysis,
		signal.NewDefaultSentimentScorer(),
		signal.NewDefaultPatternDetector(),
	)

	result := engine.Analyze(series)
	fmt.Print(report.Format(result))
}

func parseSeries(raw string) (models.PriceSeries, error) {
	parts := strings.Split(raw, ",")
	series := make(models.PriceSeries, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		price, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid price %q: %w", trimmed, err)
		}
		series = append(series, price)
	}
	if err := series.Validate(); err != nil {
		return nil, err
	}
	return series, nil
}
