package turbo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/turbodsl/turbo/id"
	"github.com/turbodsl/turbo/middleware"
	"github.com/turbodsl/turbo/retry"
)

// jobConfig holds per-job settings applied via JobOption.
type jobConfig struct {
	delay   time.Duration
	timeout time.Duration
	policy  *retry.Policy
}

// JobOption configures a Job at construction time.
type JobOption func(*jobConfig)

// WithDelay suspends the job for d before it starts. The delay counts
// against any enclosing timeout budget.
func WithDelay(d time.Duration) JobOption {
	return func(c *jobConfig) { c.delay = d }
}

// WithJobTimeout races each attempt of the job against a timer. On
// expiry the computation is cancelled cooperatively and the attempt
// fails with a timeout-classed error. The attempt deadline is clipped
// by any outer remaining budget.
func WithJobTimeout(d time.Duration) JobOption {
	return func(c *jobConfig) { c.timeout = d }
}

// WithRetry re-executes the job under the given policy when an attempt
// fails with a class the policy's mode matches.
func WithRetry(p *retry.Policy) JobOption {
	return func(c *jobConfig) { c.policy = p }
}

// Job is the atomic unit of work: a named, optionally delayed,
// optionally timed-out, optionally retried computation producing an R.
// The input is bound at declaration; each Run executes the computation
// against a child of the given scope.
type Job[R any] struct {
	name    string
	id      id.ID
	delay   time.Duration
	timeout time.Duration
	policy  *retry.Policy
	def     Default[R]
	fn      func(*Scope) (R, error)
}

// NewJob declares a job named name computing fn over input.
func NewJob[I, R any](name string, input I, fn func(s *Scope, input I) (R, error), opts ...JobOption) *Job[R] {
	return NewJobFunc(name, func(s *Scope) (R, error) {
		return fn(s, input)
	}, opts...)
}

// NewJobFunc declares a job that takes no input.
func NewJobFunc[R any](name string, fn func(s *Scope) (R, error), opts ...JobOption) *Job[R] {
	cfg := jobConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Job[R]{
		name:    name,
		id:      id.NewJobID(),
		delay:   cfg.delay,
		timeout: cfg.timeout,
		policy:  cfg.policy,
		fn:      fn,
	}
}

// Name returns the job's declared name.
func (j *Job[R]) Name() string { return j.name }

// ID returns the job's identity. All attempts share it.
func (j *Job[R]) ID() id.ID { return j.id }

// Default configures an eager fallback value resolved when the job
// ultimately fails.
func (j *Job[R]) Default(v R) *Job[R] {
	j.def = NewDefault(v)
	return j
}

// DefaultFunc configures a lazy fallback computed only at failure time,
// inside the failing scope.
func (j *Job[R]) DefaultFunc(fn func(*Scope) (R, error)) *Job[R] {
	j.def = NewDefaultFunc(fn)
	return j
}

// Run executes the job under s and returns its outcome. Failures are
// resolved to the configured default if one is set; cancellation is not
// a failure and is never defaulted.
func (j *Job[R]) Run(s *Scope) Outcome[R] {
	child, cancel := s.child(j.name, 0)
	defer cancel()

	out := j.execute(child)

	if out.IsFailure() && j.def.IsSet() {
		v, err := j.def.Resolve(child)
		if err != nil {
			return Fail[R](err)
		}
		child.logger.Debug("job default resolved",
			slog.String("job_name", j.name),
			slog.String("job_id", j.id.String()),
		)
		return Succeed(v)
	}
	return out
}

// execute runs delay, retry loop, and classification.
func (j *Job[R]) execute(s *Scope) Outcome[R] {
	if j.delay > 0 {
		s.logger.Debug("job delayed",
			slog.String("job_name", j.name),
			slog.Duration("delay", j.delay),
		)
		if err := s.sleep(j.delay); err != nil {
			return classifyErr[R](err)
		}
	}

	attempt := 0
	v, err := retry.Do(s.ctx, j.policy, func(ctx context.Context) (R, error) {
		attempt++
		return j.runAttempt(s.withContext(ctx), attempt)
	})
	if err != nil {
		if attempt > 1 {
			s.logger.Debug("job retries exhausted",
				slog.String("job_name", j.name),
				slog.Int("attempts", attempt),
				slog.String("error", err.Error()),
			)
		}
		return classifyErr[R](err)
	}
	return Succeed(v)
}

// runAttempt executes one attempt through the middleware chain, racing
// it against the per-attempt timeout.
func (j *Job[R]) runAttempt(s *Scope, attempt int) (R, error) {
	var zero R

	actx := s.ctx
	cancel := context.CancelFunc(func() {})
	if j.timeout > 0 {
		actx, cancel = context.WithTimeout(s.ctx, j.timeout)
	}
	defer cancel()

	// A job whose context is already dead must not begin computing.
	if err := actx.Err(); err != nil {
		return zero, err
	}

	type result struct {
		value R
		err   error
	}
	done := make(chan result, 1)

	go func() {
		var res result
		handler := func(hctx context.Context) error {
			v, err := j.fn(s.withContext(hctx))
			if err != nil {
				return err
			}
			res.value = v
			return nil
		}
		if s.mw != nil {
			info := &middleware.Info{ID: j.id, Name: j.name, Path: s.name, Attempt: attempt}
			res.err = s.mw(actx, info, handler)
		} else {
			res.err = handler(actx)
		}
		done <- res
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return zero, res.err
		}
		return res.value, nil
	case <-actx.Done():
		// Cooperative cancellation: the computation unwinds on its own
		// once it observes the context. The attempt's fate is decided
		// here regardless.
		return zero, actx.Err()
	}
}

// classifyErr maps a raw execution error onto the outcome taxonomy:
// deadline expiry is a timeout-classed Failure, plain cancellation is
// Cancelled, everything else is a Failure as-is.
func classifyErr[R any](err error) Outcome[R] {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		if errors.Is(err, ErrTimeoutExceeded) {
			return Fail[R](err)
		}
		return Fail[R](fmt.Errorf("%w: %w", ErrTimeoutExceeded, err))
	case errors.Is(err, context.Canceled):
		return Cancel[R]()
	default:
		return Fail[R](err)
	}
}
