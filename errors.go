package turbo

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrTimeoutExceeded marks a failure caused by an expired timeout
	// budget, either the job's own or one inherited from an enclosing
	// scope. It wraps context.DeadlineExceeded so errors.Is matches
	// both sentinels anywhere in a cause chain.
	ErrTimeoutExceeded = fmt.Errorf("turbo: timeout exceeded: %w", context.DeadlineExceeded)

	// ErrNotSuccess is returned by Outcome.Success when the outcome is
	// not a Success. This surfaces a programmer error early instead of
	// silently handing back a zero value.
	ErrNotSuccess = errors.New("turbo: outcome is not a success")

	// ErrDefaultResolution marks a lazy default computation that itself
	// failed. It is terminal for the owning scope and never retried.
	ErrDefaultResolution = errors.New("turbo: default resolution failed")

	// ErrNoFailureButAllCancelled is returned by a group configured with
	// throwOnFailure when every member reports Cancelled yet no member
	// produced a classified Failure to propagate.
	ErrNoFailureButAllCancelled = errors.New("turbo: all jobs cancelled without a classified failure")
)
