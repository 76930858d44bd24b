package application

import (
	"sort"
	"time"

	"relato/internal/domain"
)

// manualScheduler drives frames and timers from a fake clock
type manualScheduler struct {
	now    time.Time
	frames []func(time.Time) bool
	timers []manualTimer
	seq    int
}

type manualTimer struct {
	at  time.Time
	seq int
	fn  func(time.Time)
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{now: time.Unix(1_700_000_000, 0)}
}

func (s *manualScheduler) Now() time.Time { return s.now }

func (s *manualScheduler) EveryFrame(step func(time.Time) bool) {
	s.frames = append(s.frames, step)
}

func (s *manualScheduler) After(delay time.Duration, fn func(time.Time)) {
	s.seq++
	s.timers = append(s.timers, manualTimer{at: s.now.Add(delay), seq: s.seq, fn: fn})
}

// Advance moves the clock by total in frame-sized steps, firing due timers
// and then running one frame per step.
func (s *manualScheduler) Advance(total, frame time.Duration) {
	end := s.now.Add(total)
	for s.now.Before(end) {
		s.now = s.now.Add(frame)
		if s.now.After(end) {
			s.now = end
		}
		s.fireTimers()
		s.runFrame()
	}
}

func (s *manualScheduler) fireTimers() {
	for {
		sort.Slice(s.timers, func(i, j int) bool {
			if s.timers[i].at.Equal(s.timers[j].at) {
				return s.timers[i].seq < s.timers[j].seq
			}
			return s.timers[i].at.Before(s.timers[j].at)
		})
		if len(s.timers) == 0 || s.timers[0].at.After(s.now) {
			return
		}
		t := s.timers[0]
		s.timers = s.timers[1:]
		t.fn(s.now)
	}
}

func (s *manualScheduler) runFrame() {
	current := s.frames
	s.frames = nil
	for _, step := range current {
		if !step(s.now) {
			s.frames = append(s.frames, step)
		}
	}
}

type countingActivator struct {
	calls []string
}

func (a *countingActivator) Activate(section domain.Section) {
	a.calls = append(a.calls, section.ID)
}

type recordingScroller struct {
	targets []string
}

func (r *recordingScroller) ScrollTo(id string) {
	r.targets = append(r.targets, id)
}

func testPage() *domain.Page {
	return &domain.Page{
		Title: "Cisco",
		Sections: []domain.SectionDecl{
			{ID: "hero", Kind: "generic", Blocks: []domain.Block{
				{Ref: "lead", Text: "Cada grano cuenta una historia"},
				{Ref: "question", Text: "¿Qué pasa con lo que queda atrás?"},
				{Ref: "contact", Text: "contacto", Static: true},
			}},
			{ID: "problema", Kind: "counters", Counters: []domain.CounterSpec{
				{Target: "ciscoPercentage", Value: 22, DurationMs: 1500},
				{Target: "productionCounter", Value: 14, DurationMs: 2000, DelayMs: 600},
				{Target: "contador", Value: 195000, DurationMs: 2500, DelayMs: 800, Grouping: true, Suffix: "+"},
			}},
			{ID: "transformacion", Kind: "transform", Connector: &domain.Connector{Ref: "transformLine", From: "cisco", To: "WPC"}},
			{ID: "galeria", Kind: "gallery", Title: "Galería del Proceso", Subtitle: "Descubre"},
			{ID: "impacto", Kind: "impact", Counters: []domain.CounterSpec{
				{Target: "familiesCounter", Value: 540000, DurationMs: 2000, Grouping: true},
				{Target: "costReductionCounter", Value: 35, DurationMs: 1800, DelayMs: 500, Suffix: "%"},
			}},
			{ID: "economia-circular", Kind: "mystery", Blocks: []domain.Block{{Ref: "rsc", Text: "RSC"}}},
		},
		Gallery: []domain.GalleryImage{
			{ID: "galeria_1.jpg"},
			{ID: "galeria_2.jpg"},
			{ID: "galeria_3.jpg"},
		},
	}
}
