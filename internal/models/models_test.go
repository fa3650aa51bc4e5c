package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceSeries_Validate(t *testing.T) {
	assert.ErrorIs(t, PriceSeries{}.Validate(), ErrEmptySeries)
	assert.NoError(t, PriceSeries{100}.Validate())
	assert.NoError(t, SampleSeries.Validate())
}

func TestMetric_JSON(t *testing.T) {
	present, err := json.Marshal(SomeMetric(117.33))
	require.NoError(t, err)
	assert.Equal(t, "117.33", string(present))

	absent, err := json.Marshal(Metric{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(absent))

	var m Metric
	require.NoError(t, json.Unmarshal([]byte("null"), &m))
	assert.False(t, m.Valid)

	require.NoError(t, json.Unmarshal([]byte("42.5"), &m))
	assert.True(t, m.Valid)
	assert.Equal(t, 42.5, m.Value)
}

func TestBandsMetric_JSON(t *testing.T) {
	b := NewBandsMetric(Bands{Upper: 3, Middle: 2, Lower: 1}, true)
	data, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, `{"upper":3,"middle":2,"lower":1}`, string(data))

	absent, err := json.Marshal(BandsMetric{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(absent))

	var decoded BandsMetric
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Valid)
	assert.Equal(t, b.Bands, decoded.Bands)

	require.NoError(t, json.Unmarshal([]byte("null"), &decoded))
	assert.False(t, decoded.Valid)
}

func TestReport_JSONAbsentFields(t *testing.T) {
	r := Report{
		Samples: 11,
		SMAShort: WindowedMetric{Period: 3, Value: SomeMetric(117.33)},
		RSI:      WindowedMetric{Period: 14},
	}
	data, err := json.Marshal(&r)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "null", string(raw["macd"]))
	assert.Equal(t, "null", string(raw["bollinger"]))
}
