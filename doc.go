// Package turbo is a structured concurrency engine for orchestrating
// trees of jobs with delays, timeouts, retries, fallback defaults, and
// concurrent groups under explicit cancellation policies.
//
// Turbo is designed as a library, not a service. Import it, declare
// jobs as ordinary Go functions, and compose them under a top-level
// Execute call.
//
// # Quick Start
//
//	total, err := turbo.Execute(ctx, 21,
//	    func(s *turbo.Scope, n int) (int, error) {
//	        return n * 2, nil
//	    },
//	    turbo.WithTimeout(5*time.Second),
//	)
//
// # Architecture
//
// Every nested construct receives an explicit *Scope carrying the
// remaining timeout budget, the accumulated name path, the logger, and
// the middleware chain. Jobs produce tagged Outcomes (Success, Failure,
// Cancelled); async groups run jobs concurrently under one of three
// cancellation modes and deliver outcomes in declaration order. Retry
// policies live in the retry package, delay strategies in backoff, and
// cross-cutting instrumentation (logging, panic recovery, OpenTelemetry
// metrics and traces) in middleware.
//
// All execution IDs use TypeID — type-prefixed, K-sortable, UUIDv7-based
// identifiers.
package turbo
