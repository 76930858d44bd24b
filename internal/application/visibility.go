package application

import (
	"log/slog"
	"math"

	"relato/internal/domain"
)

// Span is the vertical extent of a section on the scroll surface, in rows
type Span struct {
	Top    int
	Height int
}

// Bottom returns the first row after the span
func (s Span) Bottom() int {
	return s.Top + s.Height
}

// VisibleRatio measures how much of span lies inside the viewport band inset
// by margin (a fraction of the viewport height) at top and bottom. The overlap
// is relative to the smaller of the section and the band, so sections taller
// than the band can still become fully active.
func VisibleRatio(span Span, viewTop, viewHeight int, margin float64) float64 {
	inset := margin * float64(viewHeight)
	bandTop := float64(viewTop) + inset
	bandBottom := float64(viewTop+viewHeight) - inset
	band := bandBottom - bandTop
	if span.Height <= 0 || band <= 0 {
		return 0
	}
	overlap := math.Min(float64(span.Bottom()), bandBottom) - math.Max(float64(span.Top), bandTop)
	if overlap <= 0 {
		return 0
	}
	return overlap / math.Min(float64(span.Height), band)
}

// Intersection is one observation of a section handle
type Intersection struct {
	Handle string
	Ratio  float64
}

// Activator runs a section's entry routine
type Activator interface {
	Activate(section domain.Section)
}

type visibility int

const (
	unobserved visibility = iota
	inactive
	active
)

// Tracker turns intersection observations into section activations.
// Each section's entry routine runs at most once per session; the current
// section follows every transition into active.
type Tracker struct {
	registry  *domain.Registry
	store     *Store
	activator Activator
	threshold float64
	log       *slog.Logger

	states    map[string]visibility
	activated map[string]bool
	connected bool
}

// NewTracker creates a disconnected tracker
func NewTracker(registry *domain.Registry, store *Store, activator Activator, threshold float64, log *slog.Logger) *Tracker {
	return &Tracker{
		registry:  registry,
		store:     store,
		activator: activator,
		threshold: threshold,
		log:       log,
		states:    make(map[string]visibility),
		activated: make(map[string]bool),
	}
}

// Connect starts observing every registered section
func (t *Tracker) Connect() {
	for _, s := range t.registry.Sections() {
		if t.states[s.ID] == unobserved {
			t.states[s.ID] = inactive
		}
	}
	t.connected = true
}

// Disconnect releases all observations. Later observations are ignored.
func (t *Tracker) Disconnect() {
	t.states = make(map[string]visibility)
	t.connected = false
}

// Connected reports whether the tracker is observing
func (t *Tracker) Connected() bool {
	return t.connected
}

// Observe applies a batch of intersection observations in order
func (t *Tracker) Observe(entries []Intersection) {
	if !t.connected {
		return
	}
	for _, e := range entries {
		state, observed := t.states[e.Handle]
		if !observed || state == unobserved {
			continue
		}

		isActive := e.Ratio >= t.threshold
		switch {
		case isActive && state == inactive:
			t.states[e.Handle] = active
			t.enter(e.Handle)
		case !isActive && state == active:
			t.states[e.Handle] = inactive
		}
	}
}

func (t *Tracker) enter(handle string) {
	idx := t.registry.ResolveIndex(handle)
	if idx == -1 {
		return
	}
	t.store.SetCurrentSection(idx)

	if t.activated[handle] {
		return
	}
	t.activated[handle] = true
	section, _ := t.registry.Section(idx)
	t.log.Debug("section activated", "section", section.ID, "kind", section.Kind.String())
	t.activator.Activate(section)
}

// Active reports whether handle is currently in the active state
func (t *Tracker) Active(handle string) bool {
	return t.states[handle] == active
}

// Activated reports whether handle's entry routine has run this session
func (t *Tracker) Activated(handle string) bool {
	return t.activated[handle]
}
