package turbo

import "fmt"

// State is the tag of an Outcome. Exactly one state is active.
type State string

const (
	// StateSuccess means the job produced a value.
	StateSuccess State = "success"
	// StateFailure means the job failed with an error.
	StateFailure State = "failure"
	// StateCancelled means the job was cancelled before producing a
	// value or a failure of its own. Cancelled carries no payload.
	StateCancelled State = "cancelled"
)

// Outcome is the tagged result of a job: Success carrying a value,
// Failure carrying an error, or Cancelled carrying nothing.
type Outcome[T any] struct {
	state State
	value T
	err   error
}

// Succeed creates a Success outcome carrying v.
func Succeed[T any](v T) Outcome[T] {
	return Outcome[T]{state: StateSuccess, value: v}
}

// Fail creates a Failure outcome carrying err.
func Fail[T any](err error) Outcome[T] {
	return Outcome[T]{state: StateFailure, err: err}
}

// Cancel creates a Cancelled outcome.
func Cancel[T any]() Outcome[T] {
	return Outcome[T]{state: StateCancelled}
}

// State returns the active tag.
func (o Outcome[T]) State() State { return o.state }

// IsSuccess reports whether the outcome is a Success.
func (o Outcome[T]) IsSuccess() bool { return o.state == StateSuccess }

// IsFailure reports whether the outcome is a Failure.
func (o Outcome[T]) IsFailure() bool { return o.state == StateFailure }

// IsCancelled reports whether the outcome is Cancelled.
func (o Outcome[T]) IsCancelled() bool { return o.state == StateCancelled }

// Success returns the carried value. Calling it on a non-Success
// outcome returns ErrNotSuccess naming the actual state.
func (o Outcome[T]) Success() (T, error) {
	if o.state != StateSuccess {
		var zero T
		return zero, fmt.Errorf("%w (state %q)", ErrNotSuccess, o.state)
	}
	return o.value, nil
}

// Failure returns the carried error, or nil if the outcome is not a
// Failure.
func (o Outcome[T]) Failure() error {
	if o.state != StateFailure {
		return nil
	}
	return o.err
}

// String renders the outcome for logs.
func (o Outcome[T]) String() string {
	switch o.state {
	case StateSuccess:
		return fmt.Sprintf("Success(%v)", o.value)
	case StateFailure:
		return fmt.Sprintf("Failure(%v)", o.err)
	case StateCancelled:
		return "Cancelled"
	}
	return "Unknown"
}
