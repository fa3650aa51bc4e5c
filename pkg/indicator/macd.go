package indicator

// Default MACD periods.
const (
	DefaultMACDFastPeriod = 12
	DefaultMACDSlowPeriod = 26
)

// MACD calculates the moving average convergence divergence:
// MACD = EMA(fast) - EMA(slow)
// No signal line or histogram is computed; this is the simplified form.
// Returns ok=false when either EMA is unavailable, which with the default
// periods means any series shorter than 26 samples.
func MACD(prices []float64, fast, slow int) (float64, bool) {
	fastEMA, ok := EMA(prices, fast)
	if !ok {
		return 0, false
	}
	slowEMA, ok := EMA(prices, slow)
	if !ok {
		return 0, false
	}
	return fastEMA - slowEMA, true
}
