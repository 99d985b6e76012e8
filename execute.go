package turbo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/turbodsl/turbo/id"
	"github.com/turbodsl/turbo/middleware"
)

// Execute binds an initial input, an overall timeout, and an overall
// default around a root function that may nest jobs and groups to
// arbitrary depth. It returns the computed value, or the resolved
// overall default if the root ultimately fails and one was configured,
// else the failure with its full cause chain.
func Execute[I, R any](ctx context.Context, input I, fn func(s *Scope, input I) (R, error), opts ...Option) (R, error) {
	var zero R

	cfg := execConfig{name: "main", logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	var mw middleware.Middleware
	if len(cfg.mws) > 0 {
		mw = middleware.Chain(cfg.mws...)
	}

	s := &Scope{
		ctx:    ctx,
		name:   cfg.name,
		runID:  id.NewRunID(),
		logger: cfg.logger,
		mw:     mw,
		tag:    cfg.tag,
	}

	s.logger.Debug("execution started",
		slog.String("run_id", s.runID.String()),
		slog.String("name", cfg.name),
	)

	v, err := fn(s, input)
	if err == nil {
		s.logger.Debug("execution completed", slog.String("run_id", s.runID.String()))
		return v, nil
	}

	// An overall timeout surfaces as a timeout-classed failure.
	if errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, ErrTimeoutExceeded) {
		err = fmt.Errorf("%w: %w", ErrTimeoutExceeded, err)
	}

	// A caller-cancelled run propagates unresolved. Cancellation is not
	// a failure, so no default applies.
	if errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		s.logger.Debug("execution cancelled", slog.String("run_id", s.runID.String()))
		return zero, err
	}

	if cfg.defSet {
		return resolveOverallDefault[R](s, cfg, err)
	}

	s.logger.Debug("execution failed",
		slog.String("run_id", s.runID.String()),
		slog.String("error", err.Error()),
	)
	return zero, err
}

// resolveOverallDefault substitutes the configured overall default for
// the root failure. A lazy default runs inside the root scope; its own
// failure, or a value of the wrong type, is terminal.
func resolveOverallDefault[R any](s *Scope, cfg execConfig, cause error) (R, error) {
	var zero R

	value := cfg.defValue
	if cfg.defFn != nil {
		v, err := cfg.defFn(s)
		if err != nil {
			return zero, fmt.Errorf("%w: %w", ErrDefaultResolution, err)
		}
		value = v
	}

	typed, ok := value.(R)
	if !ok {
		return zero, fmt.Errorf("%w: default value %T does not match result type", ErrDefaultResolution, value)
	}

	s.logger.Debug("overall default resolved",
		slog.String("run_id", s.runID.String()),
		slog.String("cause", cause.Error()),
	)
	return typed, nil
}
