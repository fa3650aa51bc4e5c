package analyzer

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JCaesar45/Stock-Market-Analysis-Dashboard/internal/config"
	"github.com/JCaesar45/Stock-Market-Analysis-Dashboard/internal/models"
	"github.com/JCaesar45/Stock-Market-Analysis-Dashboard/internal/signal"
)

func testParams() config.AnalysisConfig {
	return config.AnalysisConfig{
		SMAShortPeriod:      3,
		SMALongPeriod:       5,
		RSIPeriod:           14,
		MACDFastPeriod:      12,
		MACDSlowPeriod:      26,
		BollingerPeriod:     20,
		BollingerMultiplier: 2,
	}
}

func newTestAnalyzer(seed int64) *Analyzer {
	return New(
		testParams(),
		signal.NewSentimentScorer(rand.NewSource(seed)),
		signal.NewPatternDetector(rand.NewSource(seed)),
	)
}

func TestAnalyze_SampleSeries(t *testing.T) {
	a := newTestAnalyzer(1)
	report := a.Analyze(models.SampleSeries)
	require.NotNil(t, report)

	assert.Equal(t, len(models.SampleSeries), report.Samples)

	// SMA(3) = (115+117+120)/3, SMA(5) = (110+108+112+115+117)/5
	require.True(t, report.SMAShort.Value.Valid)
	assert.Equal(t, 3, report.SMAShort.Period)
	assert.InDelta(t, 352.0/3.0, report.SMAShort.Value.Value, 1e-9)

	require.True(t, report.SMALong.Value.Valid)
	assert.Equal(t, 5, report.SMALong.Period)
	assert.InDelta(t, 112.40, report.SMALong.Value.Value, 1e-9)

	// 11 samples cannot satisfy RSI(14), MACD(12,26) or Bollinger(20).
	assert.False(t, report.RSI.Value.Valid)
	assert.False(t, report.MACD.Valid)
	assert.False(t, report.Bollinger.Valid)

	require.True(t, report.Support.Valid)
	assert.Equal(t, 100.0, report.Support.Value)
	require.True(t, report.Resistance.Valid)
	assert.Equal(t, 120.0, report.Resistance.Value)

	assert.GreaterOrEqual(t, report.Sentiment, -1.0)
	assert.LessOrEqual(t, report.Sentiment, 1.0)
	assert.Contains(t, signal.Patterns, report.Pattern)
}

func TestAnalyze_LongSeries(t *testing.T) {
	prices := make(models.PriceSeries, 40)
	for i := range prices {
		prices[i] = 100 + float64(i%7)
	}

	report := newTestAnalyzer(2).Analyze(prices)

	assert.True(t, report.RSI.Value.Valid)
	assert.True(t, report.MACD.Valid)
	assert.True(t, report.Bollinger.Valid)
	assert.GreaterOrEqual(t, report.Bollinger.Upper, report.Bollinger.Middle)
	assert.LessOrEqual(t, report.Bollinger.Lower, report.Bollinger.Middle)
}

func TestAnalyze_EmptySeries(t *testing.T) {
	report := newTestAnalyzer(3).Analyze(nil)
	require.NotNil(t, report)

	assert.Equal(t, 0, report.Samples)
	assert.False(t, report.SMAShort.Value.Valid)
	assert.False(t, report.SMALong.Value.Valid)
	assert.False(t, report.RSI.Value.Valid)
	assert.False(t, report.MACD.Valid)
	assert.False(t, report.Bollinger.Valid)
	assert.False(t, report.Support.Valid)
	assert.False(t, report.Resistance.Valid)
	// Mocked signals are always produced.
	assert.Contains(t, signal.Patterns, report.Pattern)
}

func TestAnalyze_DeterministicIndicators(t *testing.T) {
	a := newTestAnalyzer(4)

	first := a.Analyze(models.SampleSeries)
	second := a.Analyze(models.SampleSeries)

	// Everything except the two randomized signals must be identical.
	assert.Equal(t, first.SMAShort, second.SMAShort)
	assert.Equal(t, first.SMALong, second.SMALong)
	assert.Equal(t, first.RSI, second.RSI)
	assert.Equal(t, first.MACD, second.MACD)
	assert.Equal(t, first.Bollinger, second.Bollinger)
	assert.Equal(t, first.Support, second.Support)
	assert.Equal(t, first.Resistance, second.Resistance)
}

func TestAnalyze_DoesNotMutateSeries(t *testing.T) {
	prices := models.PriceSeries{3, 1, 2}
	snapshot := append(models.PriceSeries(nil), prices...)

	newTestAnalyzer(5).Analyze(prices)

	assert.Equal(t, snapshot, prices)
}
