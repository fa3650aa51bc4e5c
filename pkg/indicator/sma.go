package indicator

// SMA calculates the Simple Moving Average over the most recent window.
// SMA = Sum of the last `period` prices / period
// Returns ok=false when the series is shorter than the period; there is no
// partial-window averaging.
func SMA(prices []float64, period int) (float64, bool) {
	if period < 1 || len(prices) < period {
		return 0, false
	}

	var sum float64
	for _, price := range prices[len(prices)-period:] {
		sum += price
	}

	return sum / float64(period), true
}
