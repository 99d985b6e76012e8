package turbo

import (
	"log/slog"
	"time"

	"github.com/turbodsl/turbo/middleware"
)

// execConfig holds top-level runner settings applied via Option.
type execConfig struct {
	name    string
	timeout time.Duration
	logger  *slog.Logger
	mws     []middleware.Middleware
	tag     any

	defValue any
	defFn    func(*Scope) (any, error)
	defSet   bool
}

// Option configures a top-level Execute call.
type Option func(*execConfig)

// WithName names the root scope. The default is "main".
func WithName(name string) Option {
	return func(c *execConfig) { c.name = name }
}

// WithTimeout bounds the whole execution. Every nested timeout is
// clipped by the remaining overall budget.
func WithTimeout(d time.Duration) Option {
	return func(c *execConfig) { c.timeout = d }
}

// WithLogger sets the structured logger threaded through every scope.
func WithLogger(l *slog.Logger) Option {
	return func(c *execConfig) { c.logger = l }
}

// WithMiddleware installs middleware applied around every job attempt
// in the execution tree, outermost first.
func WithMiddleware(mws ...middleware.Middleware) Option {
	return func(c *execConfig) { c.mws = append(c.mws, mws...) }
}

// WithValue installs a free-form tag value readable from any scope in
// the tree via Scope.Value.
func WithValue(v any) Option {
	return func(c *execConfig) { c.tag = v }
}

// WithDefault configures an eager overall default returned when the
// root ultimately fails. The value's type must match Execute's result
// type; a mismatch surfaces as ErrDefaultResolution.
func WithDefault[T any](v T) Option {
	return func(c *execConfig) {
		c.defValue = v
		c.defFn = nil
		c.defSet = true
	}
}

// WithDefaultFunc configures a lazy overall default computed only when
// the root fails, inside the root scope.
func WithDefaultFunc[T any](fn func(*Scope) (T, error)) Option {
	return func(c *execConfig) {
		c.defValue = nil
		c.defFn = func(s *Scope) (any, error) { return fn(s) }
		c.defSet = true
	}
}
