package turbo

import (
	"context"
	"log/slog"
	"time"

	"github.com/turbodsl/turbo/id"
	"github.com/turbodsl/turbo/middleware"
)

// Scope is the execution context threaded through every nested
// construct. It carries the remaining timeout budget (via its
// context.Context deadline), the accumulated name path, the run
// identity, the structured logger, the composed middleware chain, and
// an optional free-form tag value.
//
// A child scope never outlives its parent: children derive their
// context from the parent's, so cancelling or timing out the parent
// cancels the whole subtree. An inner timeout is clipped by the outer
// remaining budget for the same reason.
type Scope struct {
	ctx    context.Context
	name   string
	runID  id.ID
	logger *slog.Logger
	mw     middleware.Middleware
	tag    any
}

// Context returns the scope's context. Its deadline, if any, is the
// remaining timeout budget.
func (s *Scope) Context() context.Context { return s.ctx }

// Name returns the accumulated name path, e.g. "main/fetch".
func (s *Scope) Name() string { return s.name }

// RunID returns the identity of the top-level execution this scope
// belongs to.
func (s *Scope) RunID() id.ID { return s.runID }

// Logger returns the scope's structured logger.
func (s *Scope) Logger() *slog.Logger { return s.logger }

// Value returns the free-form tag value installed with WithValue, or
// nil.
func (s *Scope) Value() any { return s.tag }

// Remaining reports the timeout budget left in this scope. ok is false
// when no deadline applies.
func (s *Scope) Remaining() (d time.Duration, ok bool) {
	deadline, ok := s.ctx.Deadline()
	if !ok {
		return 0, false
	}
	return time.Until(deadline), true
}

// child derives a scope one level down the name chain. A non-zero
// timeout installs a deadline, automatically clipped by any outer
// deadline per context semantics.
func (s *Scope) child(name string, timeout time.Duration) (*Scope, context.CancelFunc) {
	ctx := s.ctx
	cancel := context.CancelFunc(func() {})
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(s.ctx, timeout)
	}
	c := *s
	c.ctx = ctx
	c.name = joinPath(s.name, name)
	return &c, cancel
}

// withContext returns a copy of the scope bound to ctx.
func (s *Scope) withContext(ctx context.Context) *Scope {
	c := *s
	c.ctx = ctx
	return &c
}

// sleep suspends for d, waking early if the scope is cancelled or its
// budget expires.
func (s *Scope) sleep(d time.Duration) error {
	if d <= 0 {
		return s.ctx.Err()
	}
	timer := time.NewTimer(d)
	select {
	case <-timer.C:
		return nil
	case <-s.ctx.Done():
		if !timer.Stop() {
			<-timer.C
		}
		return s.ctx.Err()
	}
}

func joinPath(parent, name string) string {
	if name == "" {
		return parent
	}
	if parent == "" {
		return name
	}
	return parent + "/" + name
}
