package domain

import (
	"math"
	"strconv"
	"time"
)

// CounterSpec declares one animated counter of a section
type CounterSpec struct {
	Target     string `yaml:"target"`      // display sink the value is written to
	Value      int    `yaml:"value"`       // final value
	DurationMs int    `yaml:"duration_ms"` // time from effective start to Value
	DelayMs    int    `yaml:"delay_ms"`    // stagger relative to activation
	Grouping   bool   `yaml:"grouping"`    // locale thousands separators
	Suffix     string `yaml:"suffix,omitempty"`
}

// Duration returns the declared animation duration
func (s CounterSpec) Duration() time.Duration {
	return time.Duration(s.DurationMs) * time.Millisecond
}

// Delay returns the declared start delay
func (s CounterSpec) Delay() time.Duration {
	return time.Duration(s.DelayMs) * time.Millisecond
}

// CounterJob drives one displayed value from 0 to TargetValue
type CounterJob struct {
	Target      string
	TargetValue int
	Duration    time.Duration
	StartDelay  time.Duration
	StartedAt   time.Time
	Current     int
	Format      func(int) string
}

// NewCounterJob builds a job from its declaration. A nil format prints the
// bare integer.
func NewCounterJob(spec CounterSpec, format func(int) string) *CounterJob {
	return &CounterJob{
		Target:      spec.Target,
		TargetValue: spec.Value,
		Duration:    spec.Duration(),
		StartDelay:  spec.Delay(),
		Format:      format,
	}
}

// Start stamps the job's start timestamp
func (j *CounterJob) Start(now time.Time) {
	j.StartedAt = now
}

// Started reports whether Start has been called
func (j *CounterJob) Started() bool {
	return !j.StartedAt.IsZero()
}

// Step evaluates the job at now. show is false while the start delay has not
// elapsed; done is true once progress reached 1 and the value is frozen at
// TargetValue.
func (j *CounterJob) Step(now time.Time) (show, done bool) {
	if !j.Started() {
		j.Start(now)
	}
	effective := j.StartedAt.Add(j.StartDelay)
	if now.Before(effective) {
		return false, false
	}
	p := Progress(now.Sub(effective), j.Duration)
	j.Current = int(math.Floor(float64(j.TargetValue) * Ease(p)))
	return true, p >= 1
}

// Display returns the formatted current value
func (j *CounterJob) Display() string {
	if j.Format == nil {
		return strconv.Itoa(j.Current)
	}
	return j.Format(j.Current)
}
