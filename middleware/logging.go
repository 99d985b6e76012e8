package middleware

import (
	"context"
	"log/slog"
	"time"
)

// Logging returns middleware that logs attempt start and completion.
func Logging(logger *slog.Logger) Middleware {
	return func(ctx context.Context, info *Info, next Handler) error {
		logger.Info("job attempt started",
			slog.String("job_name", info.Name),
			slog.String("job_id", info.ID.String()),
			slog.String("path", info.Path),
			slog.Int("attempt", info.Attempt),
		)

		start := time.Now()
		err := next(ctx)
		elapsed := time.Since(start)

		if err != nil {
			logger.Error("job attempt failed",
				slog.String("job_name", info.Name),
				slog.String("job_id", info.ID.String()),
				slog.Int("attempt", info.Attempt),
				slog.Duration("elapsed", elapsed),
				slog.String("error", err.Error()),
			)
		} else {
			logger.Info("job attempt completed",
				slog.String("job_name", info.Name),
				slog.String("job_id", info.ID.String()),
				slog.Int("attempt", info.Attempt),
				slog.Duration("elapsed", elapsed),
			)
		}

		return err
	}
}
