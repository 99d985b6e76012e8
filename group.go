package turbo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/turbodsl/turbo/id"
)

// CancelMode governs how a group reacts to a member's failure.
type CancelMode string

const (
	// CancelNone lets every job run to its own completion or failure.
	// No job is ever cancelled because of a sibling's outcome.
	CancelNone CancelMode = "cancel_none"
	// CancelFirst cancels still-running siblings on the first Failure.
	// Already-completed siblings keep their outcome; cancelled siblings
	// report Cancelled.
	CancelFirst CancelMode = "cancel_first"
	// CancelAll behaves like CancelFirst: siblings are cancelled on the
	// first Failure and the aggregate ok flag follows from the
	// positional outcomes, so it is necessarily false once any member
	// fails. The mode exists as a distinct name for call-site intent.
	CancelAll CancelMode = "cancel_all"
)

// groupConfig holds group settings applied via GroupOption.
type groupConfig struct {
	name       string
	mode       CancelMode
	timeout    time.Duration
	maxJobs    int
	throw      bool
	startRate  float64
	startBurst int
}

// GroupOption configures an async group.
type GroupOption func(*groupConfig)

// WithMode sets the group's cancellation mode. The default is
// CancelNone.
func WithMode(m CancelMode) GroupOption {
	return func(c *groupConfig) { c.mode = m }
}

// WithGroupName names the group in the scope path. The default is
// "group".
func WithGroupName(name string) GroupOption {
	return func(c *groupConfig) { c.name = name }
}

// WithGroupTimeout sets a collective upper bound across all member
// jobs. On expiry, unfinished jobs are cancelled and report a
// timeout-classed Failure.
func WithGroupTimeout(d time.Duration) GroupOption {
	return func(c *groupConfig) { c.timeout = d }
}

// WithMaxJobs bounds how many member jobs run concurrently. Zero (the
// default) derives the bound from the declared job count; a negative
// value n caps dynamically registered jobs at |n|.
func WithMaxJobs(n int) GroupOption {
	return func(c *groupConfig) { c.maxJobs = n }
}

// WithThrowOnFailure makes a member Failure propagate out of the group
// as an error instead of being delivered in the outcome list.
func WithThrowOnFailure(throw bool) GroupOption {
	return func(c *groupConfig) { c.throw = throw }
}

// WithStartLimit admits job starts through a rate limiter: at most
// perSecond starts per second with the given burst. Zero disables.
func WithStartLimit(perSecond float64, burst int) GroupOption {
	return func(c *groupConfig) {
		c.startRate = perSecond
		c.startBurst = burst
	}
}

func newGroupConfig(opts []GroupOption) groupConfig {
	cfg := groupConfig{name: "group", mode: CancelNone}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// rawOutcome is a type-erased outcome used by the shared group runner.
// The fixed-arity wrappers restore the typed view afterwards.
type rawOutcome struct {
	state State
	value any
	err   error
}

// memberRunner executes one member job and reports its erased outcome.
type memberRunner func(*Scope) rawOutcome

// erase adapts a typed job into a memberRunner.
func erase[T any](j *Job[T]) memberRunner {
	return func(s *Scope) rawOutcome {
		o := j.Run(s)
		return rawOutcome{state: o.state, value: o.value, err: o.err}
	}
}

// restore rebuilds the typed outcome from an erased one. The value's
// dynamic type is guaranteed by erase.
func restore[T any](r rawOutcome) Outcome[T] {
	switch r.state {
	case StateSuccess:
		return Succeed(r.value.(T))
	case StateFailure:
		return Fail[T](r.err)
	default:
		return Cancel[T]()
	}
}

// concurrencyBound resolves the maxJobs conventions against the
// declared job count.
func concurrencyBound(maxJobs, declared int) int {
	bound := maxJobs
	switch {
	case bound == 0:
		bound = declared
	case bound < 0:
		bound = -bound
	}
	if bound > declared {
		bound = declared
	}
	if bound < 1 {
		bound = 1
	}
	return bound
}

// runGroup starts every member concurrently under the group's
// cancellation mode and returns the erased outcomes in declaration
// order, the aggregate ok flag, and the group error (first failure
// when throwOnFailure is set).
func runGroup(s *Scope, cfg groupConfig, members []memberRunner) ([]rawOutcome, bool, error) {
	gs, cancelScope := s.child(cfg.name, cfg.timeout)
	defer cancelScope()

	runCtx := gs.ctx
	cancelSiblings := context.CancelFunc(func() {})
	if cfg.mode != CancelNone {
		runCtx, cancelSiblings = context.WithCancel(gs.ctx)
	}
	defer cancelSiblings()

	var limiter *rate.Limiter
	if cfg.startRate > 0 {
		burst := cfg.startBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.startRate), burst)
	}

	groupID := id.NewGroupID()
	gs.logger.Debug("async group started",
		slog.String("group_id", groupID.String()),
		slog.String("path", gs.name),
		slog.String("mode", string(cfg.mode)),
		slog.Int("jobs", len(members)),
	)

	outcomes := make([]rawOutcome, len(members))

	var mu sync.Mutex
	var firstErr error

	var eg errgroup.Group
	eg.SetLimit(concurrencyBound(cfg.maxJobs, len(members)))

	for i, run := range members {
		eg.Go(func() error {
			if limiter != nil {
				if err := limiter.Wait(runCtx); err != nil {
					outcomes[i] = rawFromErr(err)
					return nil
				}
			}

			out := run(gs.withContext(runCtx))
			outcomes[i] = out

			if out.state == StateFailure {
				mu.Lock()
				if firstErr == nil {
					firstErr = out.err
					if cfg.mode != CancelNone {
						cancelSiblings()
					}
				}
				mu.Unlock()
			}
			return nil
		})
	}
	// Member runners never return errors; outcomes carry the results.
	_ = eg.Wait()

	ok := true
	allCancelled := len(members) > 0
	for _, out := range outcomes {
		if out.state != StateSuccess {
			ok = false
		}
		if out.state != StateCancelled {
			allCancelled = false
		}
	}

	gs.logger.Debug("async group finished",
		slog.String("group_id", groupID.String()),
		slog.Bool("ok", ok),
	)

	if cfg.throw {
		if firstErr != nil {
			return outcomes, ok, firstErr
		}
		if allCancelled {
			return outcomes, ok, ErrNoFailureButAllCancelled
		}
	}
	return outcomes, ok, nil
}

// rawFromErr classifies an error that prevented a member from starting.
func rawFromErr(err error) rawOutcome {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return rawOutcome{state: StateFailure, err: fmt.Errorf("%w: %w", ErrTimeoutExceeded, err)}
	case errors.Is(err, context.Canceled):
		return rawOutcome{state: StateCancelled}
	default:
		return rawOutcome{state: StateFailure, err: err}
	}
}

// Group is the dynamic group builder: jobs of a single result type are
// registered imperatively and awaited together, yielding an ordered
// outcome list.
type Group[T any] struct {
	s    *Scope
	cfg  groupConfig
	jobs []*Job[T]
}

// NewGroup creates a dynamic group under s.
func NewGroup[T any](s *Scope, opts ...GroupOption) *Group[T] {
	return &Group[T]{s: s, cfg: newGroupConfig(opts)}
}

// Go registers a job. Jobs start when Wait is called; outcome positions
// match registration order.
func (g *Group[T]) Go(j *Job[T]) *Group[T] {
	g.jobs = append(g.jobs, j)
	return g
}

// Len returns the number of registered jobs.
func (g *Group[T]) Len() int { return len(g.jobs) }

// Wait runs all registered jobs concurrently and returns their
// outcomes in registration order, the aggregate ok flag, and the group
// error when throwOnFailure applies.
func (g *Group[T]) Wait() ([]Outcome[T], bool, error) {
	members := make([]memberRunner, len(g.jobs))
	for i, j := range g.jobs {
		members[i] = erase(j)
	}

	raws, ok, err := runGroup(g.s, g.cfg, members)

	outs := make([]Outcome[T], len(raws))
	for i, r := range raws {
		outs[i] = restore[T](r)
	}
	return outs, ok, err
}
