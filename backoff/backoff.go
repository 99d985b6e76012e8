// Package backoff provides pluggable inter-retry delay strategies.
// All strategies are safe for concurrent use (they are stateless).
package backoff

import (
	"math"
	"math/rand/v2"
	"time"
)

// Strategy computes the delay before a retry attempt.
type Strategy interface {
	// Delay returns how long to wait before retry attempt n (1-indexed).
	// Attempt 1 is the first retry after the initial failure.
	Delay(attempt int) time.Duration
}

// ──────────────────────────────────────────────────
// Constant
// ──────────────────────────────────────────────────

// Constant always returns the same delay regardless of attempt number.
type Constant struct {
	Interval time.Duration
}

// NewConstant creates a constant backoff strategy.
func NewConstant(interval time.Duration) *Constant {
	return &Constant{Interval: interval}
}

// Delay returns the fixed interval.
func (c *Constant) Delay(_ int) time.Duration {
	return c.Interval
}

// ──────────────────────────────────────────────────
// Factor
// ──────────────────────────────────────────────────

// Factor grows the delay geometrically by a configurable growth factor.
// Delay = min(Initial * Factor^(attempt-1), Max). A growth factor below
// 1.0 is clamped to 1.0, degenerating to a constant delay.
type Factor struct {
	Initial time.Duration
	Factor  float64
	Max     time.Duration
}

// NewFactor creates a factor-growth backoff strategy. A zero Max means
// the delay is uncapped.
func NewFactor(initial time.Duration, factor float64, maxDelay time.Duration) *Factor {
	return &Factor{Initial: initial, Factor: factor, Max: maxDelay}
}

// Delay returns Initial * Factor^(attempt-1), capped at Max.
func (f *Factor) Delay(attempt int) time.Duration {
	factor := f.Factor
	if factor < 1.0 {
		factor = 1.0
	}
	d := time.Duration(float64(f.Initial) * math.Pow(factor, float64(attempt-1)))
	if f.Max > 0 && d > f.Max {
		return f.Max
	}
	return d
}

// ──────────────────────────────────────────────────
// Exponential
// ──────────────────────────────────────────────────

// NewExponential creates a doubling backoff strategy, a Factor with a
// growth factor of 2.
func NewExponential(initial, maxDelay time.Duration) *Factor {
	return &Factor{Initial: initial, Factor: 2, Max: maxDelay}
}

// ──────────────────────────────────────────────────
// Jitter (full jitter)
// ──────────────────────────────────────────────────

// Jitter wraps a base strategy and applies full jitter:
// Delay = random value in [0, base.Delay(attempt)].
// This prevents thundering herd when many retries happen simultaneously.
type Jitter struct {
	Base Strategy
}

// NewJitter wraps base with full jitter.
func NewJitter(base Strategy) *Jitter {
	return &Jitter{Base: base}
}

// Delay returns a random duration in [0, Base.Delay(attempt)].
func (j *Jitter) Delay(attempt int) time.Duration {
	base := float64(j.Base.Delay(attempt))
	if base <= 0 {
		return 0
	}
	return time.Duration(rand.Float64() * base) //nolint:gosec // jitter intentionally uses non-crypto rand
}

// ──────────────────────────────────────────────────
// Default
// ──────────────────────────────────────────────────

// DefaultStrategy returns the default inter-retry delay used by the
// engine: a constant one second.
func DefaultStrategy() Strategy {
	return NewConstant(time.Second)
}
