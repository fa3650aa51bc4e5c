// Package indicator implements the technical-indicator calculations over an
// ordered series of close prices. Every function is pure: it never mutates
// the input series and reports insufficient data through its ok return
// instead of an error, so callers always get a defined absent-value signal
// rather than a failure.
package indicator

import "math"

// round2 rounds to 2 decimal places, the display precision used for RSI.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
