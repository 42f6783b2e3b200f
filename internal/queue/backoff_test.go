package queue

import (
	"testing"
	"time"
)

func TestNextDelayExponentialGrowth(t *testing.T) {
	p := BackoffPolicy{Type: BackoffExponential, Base: time.Second, Max: time.Hour}

	// jitter draws from [d/2, d], so bound-check instead of exact-match
	cases := []struct {
		attempt int
		full    time.Duration
	}{
		{1, time.Second},
		{2, 2 * time.Second},
		{3, 4 * time.Second},
		{4, 8 * time.Second},
	}
	for _, tc := range cases {
		for i := 0; i < 50; i++ {
			d := NextDelay(p, tc.attempt)
			if d < tc.full/2 || d > tc.full {
				t.Fatalf("attempt %d: delay %s outside [%s, %s]", tc.attempt, d, tc.full/2, tc.full)
			}
		}
	}
}

func TestNextDelayCapsAtMax(t *testing.T) {
	p := BackoffPolicy{Type: BackoffExponential, Base: time.Second, Max: 10 * time.Second}
	for i := 0; i < 50; i++ {
		d := NextDelay(p, 20)
		if d > 10*time.Second {
			t.Fatalf("delay %s above max %s", d, 10*time.Second)
		}
		if d < 5*time.Second {
			t.Fatalf("delay %s below half of max", d)
		}
	}
}

func TestNextDelayFixed(t *testing.T) {
	p := BackoffPolicy{Type: BackoffFixed, Base: 4 * time.Second, Max: time.Minute}
	for _, attempt := range []int{1, 3, 7} {
		d := NextDelay(p, attempt)
		if d < 2*time.Second || d > 4*time.Second {
			t.Fatalf("attempt %d: delay %s outside [2s, 4s]", attempt, d)
		}
	}
}

func TestNextDelayDefaultsZeroPolicy(t *testing.T) {
	d := NextDelay(BackoffPolicy{}, 0)
	if d <= 0 {
		t.Fatalf("delay = %s, want positive", d)
	}
	if d > time.Second {
		t.Fatalf("delay = %s, want at most default base", d)
	}
}
