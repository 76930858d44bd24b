package application

import (
	"time"

	"relato/internal/domain"
)

// Scheduler is the host's cooperative timing primitive. Callbacks run on the
// host's event loop, never concurrently with each other.
type Scheduler interface {
	// Now returns the host clock
	Now() time.Time

	// EveryFrame calls step once per frame until it returns true
	EveryFrame(step func(now time.Time) (done bool))

	// After calls fn once, delay from now
	After(delay time.Duration, fn func(now time.Time))
}

// RunStagger applies each step of plan after its delay. Zero-delay steps are
// applied immediately so they are visible in the same frame.
func RunStagger(s Scheduler, plan []domain.StaggerStep, apply func(ref string)) {
	for _, step := range plan {
		ref := step.Ref
		if step.Delay <= 0 {
			apply(ref)
			continue
		}
		s.After(step.Delay, func(time.Time) { apply(ref) })
	}
}
