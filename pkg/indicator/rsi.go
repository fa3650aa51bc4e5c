package indicator

// DefaultRSIPeriod is the conventional RSI window.
const DefaultRSIPeriod = 14

// RSI calculates the Relative Strength Index over the last `period`
// consecutive price changes.
// RSI = 100 - (100 / (1 + RS)) where RS = total gain / total loss
// The result is rounded to 2 decimal places.
//
// When the window has no losses the divisor is substituted with 1 instead of
// capping RSI at 100. That approximation is part of the calculation this
// package reproduces; do not "correct" it.
//
// Returns ok=false when the series is shorter than period+1 (the first
// change needs a predecessor).
func RSI(prices []float64, period int) (float64, bool) {
	if period < 1 || len(prices) < period+1 {
		return 0, false
	}

	var gains, losses float64
	for i := len(prices) - period; i < len(prices); i++ {
		change := prices[i] - prices[i-1]
		if change > 0 {
			gains += change
		} else {
			losses -= change // loss is positive
		}
	}

	divisor := losses
	if divisor == 0 {
		divisor = 1
	}
	rs := gains / divisor

	return round2(100 - 100/(1+rs)), true
}
