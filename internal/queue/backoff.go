package queue

import (
	"math/rand"
	"time"
)

// Backoff policy types.
const (
	BackoffExponential = "exponential"
	BackoffFixed       = "fixed"
)

// BackoffPolicy controls the delay between retry attempts of a stage job.
type BackoffPolicy struct {
	Type string        `json:"type"`
	Base time.Duration `json:"base"`
	Max  time.Duration `json:"max"`
}

// NextDelay computes the delay before the given attempt (1-based count of
// attempts already made). Exponential backoff doubles per attempt, capped at
// Max, with jitter drawn from the upper half of the window so delays never
// shrink between consecutive attempts.
func NextDelay(p BackoffPolicy, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	base := p.Base
	if base <= 0 {
		base = time.Second
	}

	var d time.Duration
	switch p.Type {
	case BackoffFixed:
		d = base
	default:
		d = base << (attempt - 1)
		// guard shift overflow on absurd attempt counts
		if d < base {
			d = p.Max
		}
	}
	if p.Max > 0 && d > p.Max {
		d = p.Max
	}
	if d <= 0 {
		d = base
	}

	// full delay minus up to half of it in jitter: [d/2, d]
	half := d / 2
	return half + time.Duration(rand.Int63n(int64(half)+1))
}
