package indicator

// EMA calculates the Exponential Moving Average.
// The seed is the simple mean of the first `period` prices, and the
// recurrence then walks forward over the remainder in index order:
//
//	ema = price*k + ema*(1-k), k = 2 / (period + 1)
//
// Seeding from the head of the series (not the most recent window) is
// intentional: it pins the exact values MACD and its tests depend on.
// Returns ok=false when the series is shorter than the period.
func EMA(prices []float64, period int) (float64, bool) {
	if period < 1 || len(prices) < period {
		return 0, false
	}

	var seed float64
	for _, price := range prices[:period] {
		seed += price
	}
	ema := seed / float64(period)

	k := 2.0 / float64(period+1)
	for _, price := range prices[period:] {
		ema = price*k + ema*(1-k)
	}

	return ema, true
}
