// Package ratelimit provides an in-memory sliding-window request limiter.
//
// The limiter counts accepted requests per key inside a rolling time window.
// Keys are fully independent: exhausting one key's quota never affects another.
// SlidingWindow implements echo's middleware.RateLimiterStore contract so it
// can be plugged into middleware.RateLimiterWithConfig, but it is an ordinary
// injectable component with its own lifecycle rather than process-wide state.
package ratelimit

import (
	"sync"
	"time"

	"orderintake/internal/pkg/errs"
)

// Clock returns the current time. Injectable for deterministic tests.
type Clock func() time.Time

// SlidingWindow allows at most limit requests per key within a rolling window.
type SlidingWindow struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	now    Clock

	// hits holds the accept timestamps still inside the window, per key.
	hits map[string][]time.Time
}

// Option configures a SlidingWindow.
type Option func(*SlidingWindow)

// WithClock replaces the wall clock, letting tests advance time manually.
func WithClock(clock Clock) Option {
	return func(s *SlidingWindow) {
		s.now = clock
	}
}

// NewSlidingWindow creates a limiter accepting limit requests per window per key.
// Returns an error if limit is not positive or window is not a positive duration.
func NewSlidingWindow(limit int, window time.Duration, opts ...Option) (*SlidingWindow, error) {
	if limit <= 0 {
		return nil, errs.NewValueIsInvalidError("limit")
	}
	if window <= 0 {
		return nil, errs.NewValueIsInvalidError("window")
	}

	s := &SlidingWindow{
		limit:  limit,
		window: window,
		now:    time.Now,
		hits:   make(map[string][]time.Time),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Allow reports whether a request for the given identifier fits inside the
// window. Accepted requests are recorded; rejected ones are not, so a denied
// request does not extend the caller's penalty.
func (s *SlidingWindow) Allow(identifier string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	cutoff := now.Add(-s.window)

	recent := s.hits[identifier][:0]
	for _, hit := range s.hits[identifier] {
		if hit.After(cutoff) {
			recent = append(recent, hit)
		}
	}

	if len(recent) >= s.limit {
		s.hits[identifier] = recent
		return false, nil
	}

	s.hits[identifier] = append(recent, now)
	return true, nil
}
