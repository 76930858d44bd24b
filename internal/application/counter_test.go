package application

import (
	"testing"
	"time"

	"golang.org/x/text/language"

	"relato/internal/domain"
)

const frame = 16 * time.Millisecond

func TestCounterAnimator_ReachesTarget(t *testing.T) {
	sched := newManualScheduler()
	store := NewStore(1)
	store.RegisterDisplay("contador", "")
	anim := NewCounterAnimator(sched, store, NewFormatter(language.English))

	anim.StartAll([]domain.CounterSpec{{Target: "contador", Value: 195000, DurationMs: 2500, Grouping: true, Suffix: "+"}})
	sched.Advance(2600*time.Millisecond, frame)

	got, _ := store.Display("contador")
	if got != "195,000+" {
		t.Errorf("expected 195,000+, got %q", got)
	}
	if len(sched.frames) != 0 {
		t.Errorf("expected no frames scheduled after completion, got %d", len(sched.frames))
	}
}

func TestCounterAnimator_StaggeredStart(t *testing.T) {
	sched := newManualScheduler()
	store := NewStore(1)
	store.RegisterDisplay("contador", "initial")
	store.RegisterDisplay("ciscoPercentage", "initial")
	anim := NewCounterAnimator(sched, store, NewFormatter(language.English))

	anim.StartAll([]domain.CounterSpec{
		{Target: "ciscoPercentage", Value: 22, DurationMs: 1500},
		{Target: "contador", Value: 195000, DurationMs: 2500, DelayMs: 800},
	})
	sched.Advance(500*time.Millisecond, frame)

	if got, _ := store.Display("contador"); got != "initial" {
		t.Errorf("delayed counter should not display yet, got %q", got)
	}
	if got, _ := store.Display("ciscoPercentage"); got == "initial" {
		t.Error("undelayed counter should be running")
	}

	sched.Advance(3*time.Second, frame)
	if got, _ := store.Display("ciscoPercentage"); got != "22" {
		t.Errorf("expected 22, got %q", got)
	}
	if got, _ := store.Display("contador"); got != "195000" {
		t.Errorf("expected 195000, got %q", got)
	}
}

func TestCounterAnimator_MissingTargetStopsSilently(t *testing.T) {
	sched := newManualScheduler()
	store := NewStore(1)
	anim := NewCounterAnimator(sched, store, NewFormatter(language.English))

	anim.StartAll([]domain.CounterSpec{{Target: "absent", Value: 100, DurationMs: 1000}})
	sched.Advance(frame, frame)

	if len(sched.frames) != 0 {
		t.Errorf("expected job to stop on missing target, %d frames pending", len(sched.frames))
	}
	if _, ok := store.Display("absent"); ok {
		t.Error("missing target must not be created")
	}
}

func TestCounterAnimator_TargetRemovedMidFlight(t *testing.T) {
	sched := newManualScheduler()
	store := NewStore(1)
	store.RegisterDisplay("co2Counter", "")
	anim := NewCounterAnimator(sched, store, NewFormatter(language.English))

	anim.StartAll([]domain.CounterSpec{{Target: "co2Counter", Value: 78000, DurationMs: 2200}})
	sched.Advance(500*time.Millisecond, frame)
	if len(sched.frames) != 1 {
		t.Fatalf("expected running job, got %d frames", len(sched.frames))
	}

	store.ClearDisplays()
	sched.Advance(frame, frame)
	if len(sched.frames) != 0 {
		t.Errorf("expected job to stop after target removal, got %d frames", len(sched.frames))
	}
}
