package indicator

// Support returns the lowest price in the entire series.
// Returns ok=false only for an empty series.
func Support(prices []float64) (float64, bool) {
	if len(prices) == 0 {
		return 0, false
	}
	low := prices[0]
	for _, price := range prices[1:] {
		if price < low {
			low = price
		}
	}
	return low, true
}

// Resistance returns the highest price in the entire series.
// Returns ok=false only for an empty series.
func Resistance(prices []float64) (float64, bool) {
	if len(prices) == 0 {
		return 0, false
	}
	high := prices[0]
	for _, price := range prices[1:] {
		if price > high {
			high = price
		}
	}
	return high, true
}
