package backoff_test

import (
	"testing"
	"time"

	"github.com/turbodsl/turbo/backoff"
)

func TestConstant_ReturnsFixedDelay(t *testing.T) {
	c := backoff.NewConstant(5 * time.Second)
	for attempt := 1; attempt <= 10; attempt++ {
		if got := c.Delay(attempt); got != 5*time.Second {
			t.Errorf("Delay(%d) = %v, want %v", attempt, got, 5*time.Second)
		}
	}
}

func TestFactor_GrowsGeometrically(t *testing.T) {
	f := backoff.NewFactor(time.Second, 2.0, 0)

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{1, 1 * time.Second},
		{2, 2 * time.Second},
		{3, 4 * time.Second},
		{4, 8 * time.Second},
		{5, 16 * time.Second},
	}
	for _, tt := range tests {
		if got := f.Delay(tt.attempt); got != tt.want {
			t.Errorf("Delay(%d) = %v, want %v", tt.attempt, got, tt.want)
		}
	}
}

func TestFactor_FractionalGrowth(t *testing.T) {
	f := backoff.NewFactor(1000*time.Millisecond, 1.5, 0)

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{1, 1000 * time.Millisecond},
		{2, 1500 * time.Millisecond},
		{3, 2250 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := f.Delay(tt.attempt); got != tt.want {
			t.Errorf("Delay(%d) = %v, want %v", tt.attempt, got, tt.want)
		}
	}
}

func TestFactor_ClampsGrowthBelowOne(t *testing.T) {
	f := backoff.NewFactor(time.Second, 0.5, 0)

	for attempt := 1; attempt <= 5; attempt++ {
		if got := f.Delay(attempt); got != time.Second {
			t.Errorf("Delay(%d) = %v, want %v (factor < 1 clamps to constant)", attempt, got, time.Second)
		}
	}
}

func TestFactor_CapsAtMax(t *testing.T) {
	f := backoff.NewFactor(time.Second, 2.0, 10*time.Second)

	if got := f.Delay(5); got != 10*time.Second {
		t.Errorf("Delay(5) = %v, want %v (capped at Max)", got, 10*time.Second)
	}
	if got := f.Delay(20); got != 10*time.Second {
		t.Errorf("Delay(20) = %v, want %v (capped at Max)", got, 10*time.Second)
	}
}

func TestExponential_IsFactorOfTwo(t *testing.T) {
	e := backoff.NewExponential(time.Second, time.Hour)

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{1, 1 * time.Second},
		{2, 2 * time.Second},
		{3, 4 * time.Second},
		{4, 8 * time.Second},
	}
	for _, tt := range tests {
		if got := e.Delay(tt.attempt); got != tt.want {
			t.Errorf("Delay(%d) = %v, want %v", tt.attempt, got, tt.want)
		}
	}
}

func TestJitter_StaysWithinBase(t *testing.T) {
	j := backoff.NewJitter(backoff.NewConstant(10 * time.Second))

	for i := 0; i < 100; i++ {
		d := j.Delay(1)
		if d < 0 || d > 10*time.Second {
			t.Fatalf("Delay(1) = %v, want in [0, %v]", d, 10*time.Second)
		}
	}
}

func TestJitter_ZeroBaseReturnsZero(t *testing.T) {
	j := backoff.NewJitter(backoff.NewConstant(0))
	if got := j.Delay(1); got != 0 {
		t.Errorf("Delay(1) = %v, want 0", got)
	}
}

func TestDefaultStrategy_IsOneSecondConstant(t *testing.T) {
	s := backoff.DefaultStrategy()
	for attempt := 1; attempt <= 3; attempt++ {
		if got := s.Delay(attempt); got != time.Second {
			t.Errorf("Delay(%d) = %v, want %v", attempt, got, time.Second)
		}
	}
}
