package domain

import (
	"math"
	"time"
)

// Ease remaps linear progress t in [0,1] with an exponential ease-out curve.
// The endpoints are pinned so Ease(0) == 0 and Ease(1) == 1 exactly.
func Ease(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

// Progress returns elapsed/duration clamped to [0,1].
// A non-positive duration is complete immediately.
func Progress(elapsed, duration time.Duration) float64 {
	if duration <= 0 {
		return 1
	}
	p := float64(elapsed) / float64(duration)
	return math.Max(0, math.Min(1, p))
}
