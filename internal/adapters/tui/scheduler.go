package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"relato/internal/application"
)

// frameMsg drives every registered frame step
type frameMsg time.Time

// timerMsg fires one delayed callback
type timerMsg struct {
	id int
	at time.Time
}

// Scheduler implements application.Scheduler on bubbletea ticks. Work is
// queued as commands and released by Flush after each Update, so every
// callback runs on the program's event loop.
type Scheduler struct {
	frame   time.Duration
	clock   func() time.Time
	steps   []func(time.Time) bool
	ticking bool
	timers  map[int]func(time.Time)
	nextID  int
	pending []tea.Cmd
	stopped bool
}

var _ application.Scheduler = (*Scheduler)(nil)

// NewScheduler creates a scheduler ticking every frame
func NewScheduler(frame time.Duration) *Scheduler {
	return &Scheduler{
		frame:  frame,
		clock:  time.Now,
		timers: make(map[int]func(time.Time)),
	}
}

// Now returns the current time
func (s *Scheduler) Now() time.Time {
	return s.clock()
}

// EveryFrame runs step on each frame until it returns true
func (s *Scheduler) EveryFrame(step func(now time.Time) bool) {
	if s.stopped {
		return
	}
	s.steps = append(s.steps, step)
	if !s.ticking {
		s.ticking = true
		s.pending = append(s.pending, s.tick())
	}
}

// After runs fn once delay has elapsed
func (s *Scheduler) After(delay time.Duration, fn func(now time.Time)) {
	if s.stopped {
		return
	}
	s.nextID++
	id := s.nextID
	s.timers[id] = fn
	s.pending = append(s.pending, tea.Tick(delay, func(t time.Time) tea.Msg {
		return timerMsg{id: id, at: t}
	}))
}

func (s *Scheduler) tick() tea.Cmd {
	return tea.Tick(s.frame, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Handle consumes scheduler messages and reports whether msg was one
func (s *Scheduler) Handle(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case frameMsg:
		s.runFrame(time.Time(msg))
		return true
	case timerMsg:
		if fn, ok := s.timers[msg.id]; ok && !s.stopped {
			delete(s.timers, msg.id)
			fn(msg.at)
		}
		return true
	}
	return false
}

func (s *Scheduler) runFrame(now time.Time) {
	if s.stopped {
		s.ticking = false
		return
	}
	// this frame owns the tick chain; steps registered while it runs must
	// not start another one
	s.ticking = true
	current := s.steps
	s.steps = nil
	var kept []func(time.Time) bool
	for _, step := range current {
		if !step(now) {
			kept = append(kept, step)
		}
	}
	// steps registered during this frame run from the next one
	s.steps = append(kept, s.steps...)
	if s.stopped || len(s.steps) == 0 {
		s.ticking = false
		return
	}
	s.pending = append(s.pending, s.tick())
}

// Flush returns the queued ticks as one command
func (s *Scheduler) Flush() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// Stop drops all pending work. Later ticks are ignored.
func (s *Scheduler) Stop() {
	s.stopped = true
	s.steps = nil
	s.pending = nil
	clear(s.timers)
}

// Active reports how many frame steps and timers are outstanding
func (s *Scheduler) Active() (frames, timers int) {
	return len(s.steps), len(s.timers)
}
