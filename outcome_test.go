package turbo_test

import (
	"errors"
	"testing"

	"github.com/turbodsl/turbo"
)

func TestOutcome_SuccessCarriesValue(t *testing.T) {
	o := turbo.Succeed(42)

	if o.State() != turbo.StateSuccess {
		t.Errorf("state = %v, want %v", o.State(), turbo.StateSuccess)
	}
	if !o.IsSuccess() || o.IsFailure() || o.IsCancelled() {
		t.Error("tag predicates inconsistent for Success")
	}

	v, err := o.Success()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 42 {
		t.Errorf("value = %d, want 42", v)
	}
	if o.Failure() != nil {
		t.Errorf("Failure() = %v, want nil", o.Failure())
	}
}

func TestOutcome_FailureCarriesError(t *testing.T) {
	boom := errors.New("boom")
	o := turbo.Fail[string](boom)

	if !o.IsFailure() {
		t.Error("expected failure outcome")
	}
	if !errors.Is(o.Failure(), boom) {
		t.Errorf("Failure() = %v, want %v", o.Failure(), boom)
	}
}

func TestOutcome_SuccessAccessorFailsLoudly(t *testing.T) {
	tests := []struct {
		name string
		o    turbo.Outcome[int]
	}{
		{"on failure", turbo.Fail[int](errors.New("boom"))},
		{"on cancelled", turbo.Cancel[int]()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.o.Success()
			if !errors.Is(err, turbo.ErrNotSuccess) {
				t.Errorf("Success() error = %v, want ErrNotSuccess", err)
			}
		})
	}
}

func TestOutcome_CancelledHasNoPayload(t *testing.T) {
	o := turbo.Cancel[int]()

	if !o.IsCancelled() {
		t.Error("expected cancelled outcome")
	}
	if o.Failure() != nil {
		t.Errorf("Failure() = %v, want nil", o.Failure())
	}
	if got := o.String(); got != "Cancelled" {
		t.Errorf("String() = %q, want %q", got, "Cancelled")
	}
}
