package application

import (
	"time"

	"relato/internal/domain"
)

// CounterAnimator runs counter jobs on the scheduler's frames. Jobs are
// independent; each only writes its own display target.
type CounterAnimator struct {
	sched  Scheduler
	sink   DisplaySink
	format *Formatter
}

// NewCounterAnimator creates an animator writing to sink
func NewCounterAnimator(sched Scheduler, sink DisplaySink, format *Formatter) *CounterAnimator {
	return &CounterAnimator{sched: sched, sink: sink, format: format}
}

// Start stamps job with the current time and steps it every frame until it
// reaches its target. A missing display target stops the job silently.
func (a *CounterAnimator) Start(job *domain.CounterJob) {
	job.Start(a.sched.Now())
	a.sched.EveryFrame(func(now time.Time) bool {
		show, done := job.Step(now)
		if !show {
			return false
		}
		if !a.sink.WriteDisplay(job.Target, job.Display()) {
			return true
		}
		return done
	})
}

// StartAll starts one job per declared counter, in order
func (a *CounterAnimator) StartAll(specs []domain.CounterSpec) []*domain.CounterJob {
	jobs := make([]*domain.CounterJob, 0, len(specs))
	for _, spec := range specs {
		job := domain.NewCounterJob(spec, a.format.CounterFunc(spec))
		a.Start(job)
		jobs = append(jobs, job)
	}
	return jobs
}
