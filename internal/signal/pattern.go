package signal

import (
	"math/rand"
	"sync"
	"time"
)

// Patterns is the fixed, ordered set of candlestick labels the detector
// draws from. "None" is a first-class label, not an absence marker.
var Patterns = []string{"Hammer", "Shooting Star", "Doji", "Engulfing", "None"}

// PatternDetector produces a mocked candlestick-pattern label. Despite the
// name it never inspects price data; every call is a uniform draw from
// Patterns. It stands in for a real pattern classifier.
type PatternDetector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPatternDetector creates a detector backed by the given source.
func NewPatternDetector(src rand.Source) *PatternDetector {
	return &PatternDetector{rng: rand.New(src)}
}

// NewDefaultPatternDetector creates a detector seeded from the current time.
func NewDefaultPatternDetector() *PatternDetector {
	return NewPatternDetector(rand.NewSource(time.Now().UnixNano()))
}

// Detect returns the next pattern label. Safe for concurrent use.
func (d *PatternDetector) Detect() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return Patterns[d.rng.Intn(len(Patterns))]
}
