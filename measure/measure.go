// Package measure provides small timing helpers used by examples and
// benchmark-style harnesses: run a block, or a block N times, and log
// the elapsed milliseconds. Pure I/O wrappers, deliberately outside the
// engine core.
package measure

import (
	"log/slog"
	"time"
)

// Elapsed runs fn once and returns how long it took.
func Elapsed(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}

// Iterate runs fn n times, logging the elapsed milliseconds of each
// iteration and of the whole run under the given name.
func Iterate(logger *slog.Logger, name string, n int, fn func(i int)) {
	if logger == nil {
		logger = slog.Default()
	}

	total := Elapsed(func() {
		for i := 0; i < n; i++ {
			d := Elapsed(func() { fn(i) })
			logger.Info("iteration finished",
				slog.String("name", name),
				slog.Int("iteration", i+1),
				slog.Int64("elapsed_ms", d.Milliseconds()),
			)
		}
	})

	logger.Info("all iterations finished",
		slog.String("name", name),
		slog.Int("iterations", n),
		slog.Int64("elapsed_ms", total.Milliseconds()),
	)
}
