// Package retry provides bounded re-execution of failing operations.
//
// A Policy couples a retry mode (which failure classes are retried) with
// an attempt bound and an inter-retry delay strategy. The generic Do
// function runs an operation under a policy, classifying each failure as
// a timeout or a generic error and consulting the mode before retrying.
package retry

import (
	"context"
	"errors"
	"time"

	"github.com/turbodsl/turbo/backoff"
)

// Mode selects which failure classes trigger a retry.
type Mode string

const (
	// ModeNever disables retrying entirely.
	ModeNever Mode = "never"
	// ModeOnTimeoutOnly retries only timeout-classed failures.
	ModeOnTimeoutOnly Mode = "on_timeout"
	// ModeOnErrorOnly retries only non-timeout failures.
	ModeOnErrorOnly Mode = "on_error"
	// ModeAlways retries every failure class.
	ModeAlways Mode = "always"
)

// Class is the failure classification consulted by the retry mode.
type Class string

const (
	// ClassTimeout marks failures caused by an expired deadline.
	ClassTimeout Class = "timeout"
	// ClassError marks every other failure.
	ClassError Class = "error"
)

// Classify reports the failure class of err. A failure whose cause chain
// contains context.DeadlineExceeded is a timeout; everything else is a
// generic error.
func Classify(err error) Class {
	if errors.Is(err, context.DeadlineExceeded) {
		return ClassTimeout
	}
	return ClassError
}

// OnRetryFunc is called before each inter-retry wait.
type OnRetryFunc func(ctx context.Context, attempt int, err error, delay time.Duration)

// Policy defines retry behavior. Safe for concurrent use.
type Policy struct {
	mode       Mode
	maxRetries int
	strategy   backoff.Strategy
	clock      Clock
	onRetry    OnRetryFunc
}

// config holds retry configuration during option application.
type config struct {
	mode       Mode
	maxRetries int
	delay      time.Duration
	factor     float64
	maxDelay   time.Duration
	strategy   backoff.Strategy
	clock      Clock
	onRetry    OnRetryFunc
}

// Option configures a Policy.
type Option func(*config)

// WithMode sets the retry mode.
func WithMode(m Mode) Option {
	return func(c *config) { c.mode = m }
}

// WithRetries sets the maximum number of retries. The operation runs at
// most n+1 times (the initial attempt plus n retries).
func WithRetries(n int) Option {
	return func(c *config) { c.maxRetries = n }
}

// WithDelay sets the base inter-retry delay.
func WithDelay(d time.Duration) Option {
	return func(c *config) { c.delay = d }
}

// WithFactor sets the growth factor applied to the delay between
// successive retries: wait n is delay * factor^(n-1).
func WithFactor(f float64) Option {
	return func(c *config) { c.factor = f }
}

// WithMaxDelay caps the grown inter-retry delay. Zero means uncapped.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) { c.maxDelay = d }
}

// WithStrategy sets an explicit backoff strategy, overriding the
// delay/factor/max options.
func WithStrategy(s backoff.Strategy) Option {
	return func(c *config) { c.strategy = s }
}

// WithClock sets the clock for time operations. Useful for testing.
func WithClock(clock Clock) Option {
	return func(c *config) { c.clock = clock }
}

// OnRetry sets a hook that is called before each inter-retry wait.
func OnRetry(fn OnRetryFunc) Option {
	return func(c *config) { c.onRetry = fn }
}

// NewPolicy creates a Policy with the given options. The defaults are
// ModeAlways, one retry, and a constant one second delay.
func NewPolicy(opts ...Option) *Policy {
	cfg := config{
		mode:       ModeAlways,
		maxRetries: 1,
		delay:      time.Second,
		factor:     1.0,
		clock:      realClock{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	strategy := cfg.strategy
	if strategy == nil {
		strategy = backoff.NewFactor(cfg.delay, cfg.factor, cfg.maxDelay)
	}

	return &Policy{
		mode:       cfg.mode,
		maxRetries: cfg.maxRetries,
		strategy:   strategy,
		clock:      cfg.clock,
		onRetry:    cfg.onRetry,
	}
}

// Never returns a policy that does not retry.
func Never() *Policy {
	return NewPolicy(WithMode(ModeNever), WithRetries(0))
}

// Mode returns the policy's retry mode.
func (p *Policy) Mode() Mode { return p.mode }

// MaxRetries returns the policy's retry bound.
func (p *Policy) MaxRetries() int { return p.maxRetries }

// ShouldRetry reports whether err's failure class matches the policy's
// mode. It does not consider the attempt bound.
func (p *Policy) ShouldRetry(err error) bool {
	switch p.mode {
	case ModeNever:
		return false
	case ModeAlways:
		return true
	case ModeOnTimeoutOnly:
		return Classify(err) == ClassTimeout
	case ModeOnErrorOnly:
		return Classify(err) == ClassError
	}
	return false
}

// Do executes fn under the policy. The operation runs at most
// MaxRetries+1 times; between attempts Do waits the strategy's delay for
// that retry, aborting the wait if ctx is cancelled. On exhaustion, on a
// non-matching failure class, or on a cancelled context the last failure
// is returned as-is so callers can classify it.
func Do[T any](ctx context.Context, p *Policy, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if p == nil {
		p = Never()
	}

	attempts := p.maxRetries + 1
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		lastErr = err

		if attempt == attempts || !p.ShouldRetry(err) {
			break
		}
		// No budget left to retry into.
		if ctx.Err() != nil {
			break
		}

		delay := p.strategy.Delay(attempt)
		if p.onRetry != nil {
			p.onRetry(ctx, attempt, err, delay)
		}
		if sleepErr := p.clock.Sleep(ctx, delay); sleepErr != nil {
			break
		}
	}

	return zero, lastErr
}
