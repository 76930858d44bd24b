package domain

import (
	"math"
	"testing"
	"time"
)

func TestEase_MatchesExponentialCurve(t *testing.T) {
	for i := 0; i < 100; i++ {
		x := float64(i) / 100
		want := 1 - math.Pow(2, -10*x)
		if got := Ease(x); got != want {
			t.Errorf("Ease(%v) = %v, expected %v", x, got, want)
		}
	}
}

func TestEase_Endpoints(t *testing.T) {
	if got := Ease(0); got != 0 {
		t.Errorf("Ease(0) = %v, expected 0", got)
	}
	if got := Ease(1); got != 1 {
		t.Errorf("Ease(1) = %v, expected exactly 1", got)
	}
	if got := Ease(1.5); got != 1 {
		t.Errorf("Ease(1.5) = %v, expected 1", got)
	}
	if got := Ease(-0.5); got != 0 {
		t.Errorf("Ease(-0.5) = %v, expected 0", got)
	}
}

func TestEase_StrictlyIncreasing(t *testing.T) {
	prev := Ease(0)
	for i := 1; i <= 1000; i++ {
		cur := Ease(float64(i) / 1000)
		if cur <= prev {
			t.Fatalf("Ease not strictly increasing at t=%v: %v <= %v", float64(i)/1000, cur, prev)
		}
		prev = cur
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name     string
		elapsed  time.Duration
		duration time.Duration
		want     float64
	}{
		{"start", 0, time.Second, 0},
		{"half", 500 * time.Millisecond, time.Second, 0.5},
		{"past end clamps", 3 * time.Second, time.Second, 1},
		{"negative clamps", -time.Second, time.Second, 0},
		{"zero duration is done", 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Progress(tt.elapsed, tt.duration); got != tt.want {
				t.Errorf("Progress() = %v, expected %v", got, tt.want)
			}
		})
	}
}
