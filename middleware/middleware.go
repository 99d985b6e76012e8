// Package middleware provides composable middleware for job attempts.
// Middleware wraps attempt execution synchronously and can modify it
// (recover from panics, log, record metrics, add tracing, etc.).
package middleware

import (
	"context"

	"github.com/turbodsl/turbo/id"
)

// Info describes the job attempt flowing through the chain.
type Info struct {
	// ID identifies the job. All attempts of one job share it.
	ID id.ID

	// Name is the job's declared name.
	Name string

	// Path is the accumulated scope name chain, e.g. "main/fetch".
	Path string

	// Attempt is the 1-indexed attempt number. Attempt 1 is the
	// initial try; higher numbers are retries.
	Attempt int
}

// Handler is the terminal function that executes the attempt.
type Handler func(ctx context.Context) error

// Middleware wraps a Handler with cross-cutting logic.
// It receives the current context, the attempt being executed, and the
// next handler to call. Middleware MUST call next to continue the chain
// (unless short-circuiting on error).
type Middleware func(ctx context.Context, info *Info, next Handler) error

// Chain composes multiple middleware into a single Middleware.
// Middleware are applied right-to-left: the first middleware in the
// list is the outermost wrapper.
//
// Example: Chain(logging, recover, tracing) executes as:
//
//	logging → recover → tracing → handler
func Chain(mws ...Middleware) Middleware {
	return func(ctx context.Context, info *Info, next Handler) error {
		// Build the chain from the end backwards.
		h := next
		for i := len(mws) - 1; i >= 0; i-- {
			mw := mws[i]
			prev := h
			h = func(ctx context.Context) error {
				return mw(ctx, info, prev)
			}
		}
		return h(ctx)
	}
}
