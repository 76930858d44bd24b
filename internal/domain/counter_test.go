package domain

import (
	"strconv"
	"testing"
	"time"
)

func TestCounterJob_WaitsForDelay(t *testing.T) {
	start := time.Unix(1000, 0)
	job := NewCounterJob(CounterSpec{Target: "contador", Value: 195000, DurationMs: 2500, DelayMs: 800}, nil)
	job.Start(start)

	show, done := job.Step(start.Add(799 * time.Millisecond))
	if show || done {
		t.Errorf("expected no display before delay, got show=%v done=%v", show, done)
	}
	if job.Current != 0 {
		t.Errorf("expected current 0 before delay, got %d", job.Current)
	}

	show, done = job.Step(start.Add(800 * time.Millisecond))
	if !show || done {
		t.Errorf("expected display at effective start, got show=%v done=%v", show, done)
	}
}

func TestCounterJob_FreezesAtTarget(t *testing.T) {
	start := time.Unix(1000, 0)
	job := NewCounterJob(CounterSpec{Target: "contador", Value: 195000, DurationMs: 2500}, func(v int) string {
		return strconv.Itoa(v) + "+"
	})
	job.Start(start)

	show, done := job.Step(start.Add(2500 * time.Millisecond))
	if !show || !done {
		t.Fatalf("expected final frame, got show=%v done=%v", show, done)
	}
	if job.Current != 195000 {
		t.Errorf("expected 195000, got %d", job.Current)
	}
	if got := job.Display(); got != "195000+" {
		t.Errorf("expected 195000+, got %s", got)
	}

	job.Step(start.Add(10 * time.Second))
	if job.Current != 195000 {
		t.Errorf("expected value frozen at 195000, got %d", job.Current)
	}
}

func TestCounterJob_MonotonicProgress(t *testing.T) {
	start := time.Unix(1000, 0)
	job := NewCounterJob(CounterSpec{Target: "co2Counter", Value: 78000, DurationMs: 2200, DelayMs: 1000}, nil)
	job.Start(start)

	prev := 0
	for ms := 0; ms <= 3400; ms += 16 {
		job.Step(start.Add(time.Duration(ms) * time.Millisecond))
		if job.Current < prev {
			t.Fatalf("value went backwards at %dms: %d < %d", ms, job.Current, prev)
		}
		prev = job.Current
	}
	if prev != 78000 {
		t.Errorf("expected 78000 at end, got %d", prev)
	}
}

func TestCounterJob_StepStartsUnstartedJob(t *testing.T) {
	now := time.Unix(42, 0)
	job := NewCounterJob(CounterSpec{Target: "x", Value: 10, DurationMs: 100}, nil)
	job.Step(now)
	if !job.StartedAt.Equal(now) {
		t.Errorf("expected StartedAt %v, got %v", now, job.StartedAt)
	}
}
