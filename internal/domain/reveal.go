package domain

import "time"

// RevealFlag is the declarative visibility of an animatable element.
// Presentation decides what a revealed element looks like.
type RevealFlag int

const (
	Pending RevealFlag = iota
	Revealed
)

// String returns the string representation of the flag
func (f RevealFlag) String() string {
	if f == Revealed {
		return "revealed"
	}
	return "pending"
}

// StaggerStep schedules one element reveal
type StaggerStep struct {
	Ref   string
	Delay time.Duration
}

// LinearStagger assigns delay base + i*step to refs in order
func LinearStagger(refs []string, base, step time.Duration) []StaggerStep {
	plan := make([]StaggerStep, len(refs))
	for i, ref := range refs {
		plan[i] = StaggerStep{Ref: ref, Delay: base + time.Duration(i)*step}
	}
	return plan
}
