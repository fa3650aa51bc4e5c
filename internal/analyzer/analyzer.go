// Package analyzer runs the full indicator pipeline over one price series
// and assembles the structured report.
package analyzer

import (
	"fmt"
	"time"

	"github.com/JCaesar45/Stock-Market-Analysis-Dashboard/internal/config"
	"github.com/JCaesar45/Stock-Market-Analysis-Dashboard/internal/models"
	"github.com/JCaesar45/Stock-Market-Analysis-Dashboard/internal/signal"
	"github.com/JCaesar45/Stock-Market-Analysis-Dashboard/pkg/indicator"
	"github.com/JCaesar45/Stock-Market-Analysis-Dashboard/pkg/logger"
)

// Analyzer computes every indicator for a price series. It holds no state
// between calls other than the injected signal sources, so a single instance
// is safe to share across requests.
type Analyzer struct {
	params    config.AnalysisConfig
	sentiment *signal.SentimentScorer
	patterns  *signal.PatternDetector
}

// New creates an Analyzer with the given parameters and signal sources.
func New(params config.AnalysisConfig, sentiment *signal.SentimentScorer, patterns *signal.PatternDetector) *Analyzer {
	return &Analyzer{
		params:    params,
		sentiment: sentiment,
		patterns:  patterns,
	}
}

// Analyze runs every indicator over the series and returns the report.
// Indicators that cannot be computed on a short series come back absent;
// nothing here fails or panics on any input, including an empty series.
func (a *Analyzer) Analyze(prices models.PriceSeries) *models.Report {
	start := time.Now()
	p := a.params

	report := &models.Report{
		GeneratedAt: time.Now().UTC(),
		Samples:     len(prices),
	}

	report.SMAShort = a.windowed("sma", prices, p.SMAShortPeriod, indicator.SMA)
	report.SMALong = a.windowed("sma", prices, p.SMALongPeriod, indicator.SMA)
	report.RSI = a.windowed("rsi", prices, p.RSIPeriod, indicator.RSI)

	macd, ok := indicator.MACD(prices, p.MACDFastPeriod, p.MACDSlowPeriod)
	if !ok {
		logger.InsufficientDataTotal.WithLabelValues("macd").Inc()
	}
	report.MACD = models.NewMetric(macd, ok)

	bands, ok := indicator.Bollinger(prices, p.BollingerPeriod, p.BollingerMultiplier)
	if !ok {
		logger.InsufficientDataTotal.WithLabelValues("bollinger").Inc()
	}
	report.Bollinger = models.NewBandsMetric(bands, ok)

	report.Support = models.NewMetric(indicator.Support(prices))
	report.Resistance = models.NewMetric(indicator.Resistance(prices))

	report.Sentiment = a.sentiment.Score()
	report.Pattern = a.patterns.Detect()

	logger.AnalysesTotal.Inc()
	logger.AnalysisDuration.Observe(time.Since(start).Seconds())
	logger.Debug("Analysis completed",
		logger.Int("samples", len(prices)),
		logger.Duration("duration", time.Since(start)),
	)

	return report
}

func (a *Analyzer) windowed(name string, prices []float64, period int, fn func([]float64, int) (float64, bool)) models.WindowedMetric {
	value, ok := fn(prices, period)
	if !ok {
		logger.InsufficientDataTotal.WithLabelValues(fmt.Sprintf("%s_%d", name, period)).Inc()
	}
	return models.WindowedMetric{
		Period: period,
		Value:  models.NewMetric(value, ok),
	}
}
