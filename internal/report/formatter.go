// Package report renders an analysis report as a plain-text summary.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/JCaesar45/Stock-Market-Analysis-Dashboard/internal/models"
)

// Format renders the report as a multi-line text summary, one labeled line
// per indicator, in a fixed order. Every value that can be absent renders as
// "N/A"; the report never fails to render.
func Format(r *models.Report) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("SMA(%d): %s\n", r.SMAShort.Period, formatMetric(r.SMAShort.Value)))
	b.WriteString(fmt.Sprintf("SMA(%d): %s\n", r.SMALong.Period, formatMetric(r.SMALong.Value)))
	b.WriteString(fmt.Sprintf("RSI(%d): %s\n", r.RSI.Period, formatMetric(r.RSI.Value)))
	b.WriteString(fmt.Sprintf("MACD: %s\n", formatMetric(r.MACD)))

	if r.Bollinger.Valid {
		b.WriteString(fmt.Sprintf("Bollinger Upper: %.2f\n", r.Bollinger.Upper))
		b.WriteString(fmt.Sprintf("Bollinger Middle: %.2f\n", r.Bollinger.Middle))
		b.WriteString(fmt.Sprintf("Bollinger Lower: %.2f\n", r.Bollinger.Lower))
	} else {
		b.WriteString("Bollinger Bands: N/A\n")
	}

	b.WriteString(fmt.Sprintf("Sentiment Score: %.2f\n", r.Sentiment))
	b.WriteString(fmt.Sprintf("Candlestick Pattern: %s\n", r.Pattern))

	// Support and resistance print raw, without decimal padding.
	b.WriteString(fmt.Sprintf("Support Level: %s\n", formatRaw(r.Support)))
	b.WriteString(fmt.Sprintf("Resistance Level: %s\n", formatRaw(r.Resistance)))

	return b.String()
}

func formatMetric(m models.Metric) string {
	if !m.Valid {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", m.Value)
}

func formatRaw(m models.Metric) string {
	if !m.Valid {
		return "N/A"
	}
	return strconv.FormatFloat(m.Value, 'f', -1, 64)
}
