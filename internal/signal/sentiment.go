// Package signal provides the mocked market signals: a sentiment score and a
// candlestick-pattern label. Both are random stand-ins for real feeds and are
// generated independently of any price data. The random source is injected so
// tests can seed it and assert exact behavior.
package signal

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// SentimentScorer produces a mocked market-sentiment score: a uniform draw
// from [-1, 1], rounded to 2 decimal places. It is a placeholder for a real
// sentiment feed, not derived from any signal.
type SentimentScorer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSentimentScorer creates a scorer backed by the given source.
func NewSentimentScorer(src rand.Source) *SentimentScorer {
	return &SentimentScorer{rng: rand.New(src)}
}

// NewDefaultSentimentScorer creates a scorer seeded from the current time.
func NewDefaultSentimentScorer() *SentimentScorer {
	return NewSentimentScorer(rand.NewSource(time.Now().UnixNano()))
}

// Score returns the next sentiment value. Safe for concurrent use; the lock
// covers the shared generator, which is the only mutable state.
func (s *SentimentScorer) Score() float64 {
	s.mu.Lock()
	v := s.rng.Float64()
	s.mu.Unlock()

	return math.Round((v*2-1)*100) / 100
}
