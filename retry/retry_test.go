package retry_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/turbodsl/turbo/retry"
)

// fakeClock records sleeps instead of performing them.
type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(0, 0)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
	return nil
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want retry.Class
	}{
		{"deadline exceeded", context.DeadlineExceeded, retry.ClassTimeout},
		{"wrapped deadline", fmt.Errorf("job: %w", context.DeadlineExceeded), retry.ClassTimeout},
		{"generic error", errors.New("boom"), retry.ClassError},
		{"cancelled context", context.Canceled, retry.ClassError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := retry.Classify(tt.err); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestDo_SucceedsFirstAttempt(t *testing.T) {
	clock := newFakeClock()
	p := retry.NewPolicy(retry.WithRetries(3), retry.WithClock(clock))

	calls := 0
	v, err := retry.Do(context.Background(), p, func(_ context.Context) (int, error) {
		calls++
		return 42, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 42 {
		t.Errorf("value = %d, want 42", v)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if len(clock.sleeps) != 0 {
		t.Errorf("sleeps = %v, want none", clock.sleeps)
	}
}

func TestDo_RetriesUpToBound(t *testing.T) {
	clock := newFakeClock()
	p := retry.NewPolicy(
		retry.WithMode(retry.ModeAlways),
		retry.WithRetries(3),
		retry.WithClock(clock),
	)

	boom := errors.New("boom")
	calls := 0
	_, err := retry.Do(context.Background(), p, func(_ context.Context) (int, error) {
		calls++
		return 0, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want %v", err, boom)
	}
	// Initial attempt plus three retries.
	if calls != 4 {
		t.Errorf("calls = %d, want 4", calls)
	}
}

func TestDo_OnTimeoutOnly_SkipsGenericErrors(t *testing.T) {
	clock := newFakeClock()
	p := retry.NewPolicy(
		retry.WithMode(retry.ModeOnTimeoutOnly),
		retry.WithRetries(5),
		retry.WithClock(clock),
	)

	calls := 0
	_, err := retry.Do(context.Background(), p, func(_ context.Context) (string, error) {
		calls++
		return "", errors.New("not a timeout")
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (non-timeout failure must not retry)", calls)
	}
}

func TestDo_OnTimeoutOnly_RetriesTimeouts(t *testing.T) {
	clock := newFakeClock()
	p := retry.NewPolicy(
		retry.WithMode(retry.ModeOnTimeoutOnly),
		retry.WithRetries(2),
		retry.WithClock(clock),
	)

	calls := 0
	_, err := retry.Do(context.Background(), p, func(_ context.Context) (string, error) {
		calls++
		return "", fmt.Errorf("slow: %w", context.DeadlineExceeded)
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("error = %v, want deadline exceeded", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestDo_OnErrorOnly_SkipsTimeouts(t *testing.T) {
	clock := newFakeClock()
	p := retry.NewPolicy(
		retry.WithMode(retry.ModeOnErrorOnly),
		retry.WithRetries(5),
		retry.WithClock(clock),
	)

	calls := 0
	_, _ = retry.Do(context.Background(), p, func(_ context.Context) (string, error) {
		calls++
		return "", context.DeadlineExceeded
	})
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (timeout failure must not retry)", calls)
	}
}

func TestDo_ModeNever_SingleAttempt(t *testing.T) {
	clock := newFakeClock()
	p := retry.NewPolicy(
		retry.WithMode(retry.ModeNever),
		retry.WithRetries(10),
		retry.WithClock(clock),
	)

	calls := 0
	_, _ = retry.Do(context.Background(), p, func(_ context.Context) (int, error) {
		calls++
		return 0, errors.New("boom")
	})
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestDo_DelayGrowthSequence(t *testing.T) {
	clock := newFakeClock()
	p := retry.NewPolicy(
		retry.WithMode(retry.ModeAlways),
		retry.WithRetries(5),
		retry.WithDelay(1000*time.Millisecond),
		retry.WithFactor(2.0),
		retry.WithClock(clock),
	)

	_, _ = retry.Do(context.Background(), p, func(_ context.Context) (int, error) {
		return 0, errors.New("boom")
	})

	want := []time.Duration{
		1000 * time.Millisecond,
		2000 * time.Millisecond,
		4000 * time.Millisecond,
		8000 * time.Millisecond,
		16000 * time.Millisecond,
	}
	if len(clock.sleeps) != len(want) {
		t.Fatalf("sleeps = %v, want %d entries", clock.sleeps, len(want))
	}
	for i, w := range want {
		if clock.sleeps[i] != w {
			t.Errorf("sleep %d = %v, want %v", i, clock.sleeps[i], w)
		}
	}
}

func TestDo_CancelledContextStopsRetrying(t *testing.T) {
	clock := newFakeClock()
	p := retry.NewPolicy(
		retry.WithMode(retry.ModeAlways),
		retry.WithRetries(10),
		retry.WithClock(clock),
	)

	ctx, cancel := context.WithCancel(context.Background())
	boom := errors.New("boom")
	calls := 0
	_, err := retry.Do(ctx, p, func(_ context.Context) (int, error) {
		calls++
		cancel()
		return 0, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want %v", err, boom)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (cancelled context must stop the loop)", calls)
	}
}

func TestDo_NilPolicyDoesNotRetry(t *testing.T) {
	calls := 0
	_, _ = retry.Do(context.Background(), nil, func(_ context.Context) (int, error) {
		calls++
		return 0, errors.New("boom")
	})
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestDo_OnRetryHookSeesAttemptAndDelay(t *testing.T) {
	clock := newFakeClock()

	type observed struct {
		attempt int
		delay   time.Duration
	}
	var hooks []observed

	p := retry.NewPolicy(
		retry.WithMode(retry.ModeAlways),
		retry.WithRetries(2),
		retry.WithDelay(10*time.Millisecond),
		retry.WithClock(clock),
		retry.OnRetry(func(_ context.Context, attempt int, _ error, delay time.Duration) {
			hooks = append(hooks, observed{attempt, delay})
		}),
	)

	_, _ = retry.Do(context.Background(), p, func(_ context.Context) (int, error) {
		return 0, errors.New("boom")
	})

	if len(hooks) != 2 {
		t.Fatalf("hooks = %d, want 2", len(hooks))
	}
	for i, h := range hooks {
		if h.attempt != i+1 {
			t.Errorf("hook %d attempt = %d, want %d", i, h.attempt, i+1)
		}
		if h.delay != 10*time.Millisecond {
			t.Errorf("hook %d delay = %v, want %v", i, h.delay, 10*time.Millisecond)
		}
	}
}

func TestPolicy_ShouldRetry(t *testing.T) {
	timeoutErr := fmt.Errorf("t: %w", context.DeadlineExceeded)
	genericErr := errors.New("boom")

	tests := []struct {
		mode retry.Mode
		err  error
		want bool
	}{
		{retry.ModeNever, timeoutErr, false},
		{retry.ModeNever, genericErr, false},
		{retry.ModeAlways, timeoutErr, true},
		{retry.ModeAlways, genericErr, true},
		{retry.ModeOnTimeoutOnly, timeoutErr, true},
		{retry.ModeOnTimeoutOnly, genericErr, false},
		{retry.ModeOnErrorOnly, timeoutErr, false},
		{retry.ModeOnErrorOnly, genericErr, true},
	}
	for _, tt := range tests {
		p := retry.NewPolicy(retry.WithMode(tt.mode))
		if got := p.ShouldRetry(tt.err); got != tt.want {
			t.Errorf("mode %s, err %v: ShouldRetry = %v, want %v", tt.mode, tt.err, got, tt.want)
		}
	}
}
