package models

import (
	"encoding/json"
	"time"
)

// PriceSeries is an ordered sequence of close-like price samples. Order is
// chronological and significant. The analysis layer only reads it.
type PriceSeries []float64

// Validate validates a PriceSeries
func (p PriceSeries) Validate() error {
	if len(p) == 0 {
		return ErrEmptySeries
	}
	return nil
}

// SampleSeries is the built-in demonstration price series used by the CLI
// and the /analyze/sample endpoint when the caller supplies no data.
var SampleSeries = PriceSeries{100, 102, 105, 103, 107, 110, 108, 112, 115, 117, 120}

// Metric is a scalar indicator value that may be absent when the input
// series is too short. Absence is a defined result, not an error, and every
// consumer must check Valid before using Value.
type Metric struct {
	Value float64
	Valid bool
}

// SomeMetric wraps a present value.
func SomeMetric(v float64) Metric {
	return Metric{Value: v, Valid: true}
}

// NewMetric builds a Metric from a (value, ok) indicator result.
func NewMetric(v float64, ok bool) Metric {
	return Metric{Value: v, Valid: ok}
}

// MarshalJSON encodes an absent metric as null.
func (m Metric) MarshalJSON() ([]byte, error) {
	if !m.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(m.Value)
}

// UnmarshalJSON decodes null as an absent metric.
func (m *Metric) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = Metric{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*m = Metric{Value: v, Valid: true}
	return nil
}

// WindowedMetric pairs a metric with the window length it was computed over.
type WindowedMetric struct {
	Period int    `json:"period"`
	Value  Metric `json:"value"`
}

// Bands holds a Bollinger band triple.
type Bands struct {
	Upper  float64 `json:"upper"`
	Middle float64 `json:"middle"`
	Lower  float64 `json:"lower"`
}

// BandsMetric is a Bands value that may be absent as a whole. There is no
// per-field absence: either the full triple is available or none of it is.
type BandsMetric struct {
	Bands
	Valid bool
}

// NewBandsMetric builds a BandsMetric from a (bands, ok) indicator result.
func NewBandsMetric(b Bands, ok bool) BandsMetric {
	return BandsMetric{Bands: b, Valid: ok}
}

// MarshalJSON encodes an absent band triple as null.
func (b BandsMetric) MarshalJSON() ([]byte, error) {
	if !b.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(b.Bands)
}

// UnmarshalJSON decodes null as an absent band triple.
func (b *BandsMetric) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*b = BandsMetric{}
		return nil
	}
	if err := json.Unmarshal(data, &b.Bands); err != nil {
		return err
	}
	b.Valid = true
	return nil
}

// Report is the structured result of one analysis pass. Rendering is left to
// the callers so text and JSON output stay decoupled from the calculation
// layer. Nothing in a Report is persisted; it lives for one request.
type Report struct {
	RequestID   string    `json:"request_id,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
	Samples     int       `json:"samples"`

	SMAShort  WindowedMetric `json:"sma_short"`
	SMALong   WindowedMetric `json:"sma_long"`
	RSI       WindowedMetric `json:"rsi"`
	MACD      Metric         `json:"macd"`
	Bollinger BandsMetric    `json:"bollinger"`

	// Sentiment and Pattern are mocked signals, generated independently of
	// the price series.
	Sentiment float64 `json:"sentiment"`
	Pattern   string  `json:"pattern"`

	Support    Metric `json:"support"`
	Resistance Metric `json:"resistance"`
}
