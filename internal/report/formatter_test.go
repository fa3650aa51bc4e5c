package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JCaesar45/Stock-Market-Analysis-Dashboard/internal/models"
)

func TestFormat_SampleSeriesReport(t *testing.T) {
	// The report the sample series produces: short windows available,
	// everything with a long window absent.
	r := &models.Report{
		Samples:    11,
		SMAShort:   models.WindowedMetric{Period: 3, Value: models.SomeMetric(352.0 / 3.0)},
		SMALong:    models.WindowedMetric{Period: 5, Value: models.SomeMetric(112.4)},
		RSI:        models.WindowedMetric{Period: 14},
		Sentiment:  0.42,
		Pattern:    "Doji",
		Support:    models.SomeMetric(100),
		Resistance: models.SomeMetric(120),
	}

	text := Format(r)
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	require.Equal(t, []string{
		"SMA(3): 117.33",
		"SMA(5): 112.40",
		"RSI(14): N/A",
		"MACD: N/A",
		"Bollinger Bands: N/A",
		"Sentiment Score: 0.42",
		"Candlestick Pattern: Doji",
		"Support Level: 100",
		"Resistance Level: 120",
	}, lines)
}

func TestFormat_AllPresent(t *testing.T) {
	r := &models.Report{
		SMAShort: models.WindowedMetric{Period: 3, Value: models.SomeMetric(103.5)},
		SMALong:  models.WindowedMetric{Period: 5, Value: models.SomeMetric(102.25)},
		RSI:      models.WindowedMetric{Period: 14, Value: models.SomeMetric(83.33)},
		MACD:     models.SomeMetric(1.2345),
		Bollinger: models.NewBandsMetric(models.Bands{
			Upper:  110.123,
			Middle: 105.5,
			Lower:  103.001,
		}, true),
		Sentiment:  -0.5,
		Pattern:    "Hammer",
		Support:    models.SomeMetric(99.5),
		Resistance: models.SomeMetric(110.25),
	}

	text := Format(r)
	assert.Contains(t, text, "MACD: 1.23\n")
	assert.Contains(t, text, "Bollinger Upper: 110.12\n")
	assert.Contains(t, text, "Bollinger Middle: 105.50\n")
	assert.Contains(t, text, "Bollinger Lower: 103.00\n")
	assert.Contains(t, text, "Sentiment Score: -0.50\n")
	// Raw formatting, no padding.
	assert.Contains(t, text, "Support Level: 99.5\n")
	assert.Contains(t, text, "Resistance Level: 110.25\n")
}

func TestFormat_EmptySeriesReportNeverFails(t *testing.T) {
	r := &models.Report{
		SMAShort: models.WindowedMetric{Period: 3},
		SMALong:  models.WindowedMetric{Period: 5},
		RSI:      models.WindowedMetric{Period: 14},
		Pattern:  "None",
	}

	text := Format(r)
	assert.Contains(t, text, "SMA(3): N/A\n")
	assert.Contains(t, text, "SMA(5): N/A\n")
	assert.Contains(t, text, "Support Level: N/A\n")
	assert.Contains(t, text, "Resistance Level: N/A\n")
}

func TestFormat_LineOrder(t *testing.T) {
	r := &models.Report{
		SMAShort: models.WindowedMetric{Period: 3},
		SMALong:  models.WindowedMetric{Period: 5},
		RSI:      models.WindowedMetric{Period: 14},
		Pattern:  "None",
	}
	text := Format(r)

	order := []string{"SMA(3)", "SMA(5)", "RSI(14)", "MACD", "Bollinger", "Sentiment Score", "Candlestick Pattern", "Support Level", "Resistance Level"}
	last := -1
	for _, label := range order {
		idx := strings.Index(text, label)
		require.GreaterOrEqual(t, idx, 0, "missing label %q", label)
		assert.Greater(t, idx, last, "label %q out of order", label)
		last = idx
	}
}
