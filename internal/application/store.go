package application

import (
	"math/rand"
	"time"

	"relato/internal/domain"
)

// Event identifies what changed in the Store
type Event int

const (
	EventNavigation Event = iota
	EventOverlay
	EventReveal
	EventDisplay
	EventFlag
	EventParticles
)

// DisplaySink receives formatted counter values. Writes to an absent target
// report false and change nothing.
type DisplaySink interface {
	WriteDisplay(target, value string) bool
}

// Store owns the page's mutable state. Navigation and overlay are value types
// replaced whole, so readers never see a partial update.
type Store struct {
	nav       domain.NavigationState
	overlay   domain.GalleryOverlayState
	reveals   map[string]domain.RevealFlag
	flags     map[string]bool
	displays  map[string]string
	particles domain.ParticleField

	// notified in subscription order; cancelled entries keep their slot
	// until the outermost notify compacts them
	subscribers []*subscriber
	notifying   int
}

type subscriber struct {
	fn func(Event)
}

var _ DisplaySink = (*Store)(nil)

// NewStore creates a store for a page of total sections
func NewStore(total int) *Store {
	return &Store{
		nav:      domain.NewNavigationState(total),
		reveals:  make(map[string]domain.RevealFlag),
		flags:    make(map[string]bool),
		displays: make(map[string]string),
	}
}

// Subscribe registers fn for change notifications and returns its cancel func
func (s *Store) Subscribe(fn func(Event)) func() {
	sub := &subscriber{fn: fn}
	s.subscribers = append(s.subscribers, sub)
	return func() { sub.fn = nil }
}

func (s *Store) notify(e Event) {
	s.notifying++
	// subscribers added by a callback wait for the next event
	for _, sub := range s.subscribers {
		if fn := sub.fn; fn != nil {
			fn(e)
		}
	}
	s.notifying--
	if s.notifying > 0 {
		return
	}
	live := s.subscribers[:0]
	for _, sub := range s.subscribers {
		if sub.fn != nil {
			live = append(live, sub)
		}
	}
	clear(s.subscribers[len(live):])
	s.subscribers = live
}

// Navigation returns the current navigation state
func (s *Store) Navigation() domain.NavigationState {
	return s.nav
}

// SetCurrentSection moves the current section, clamped to the page
func (s *Store) SetCurrentSection(i int) {
	next := s.nav.WithCurrent(i)
	if next == s.nav {
		return
	}
	s.nav = next
	s.notify(EventNavigation)
}

// Overlay returns the gallery overlay state
func (s *Store) Overlay() domain.GalleryOverlayState {
	return s.overlay
}

// SetOverlay replaces the gallery overlay state
func (s *Store) SetOverlay(o domain.GalleryOverlayState) {
	if o == s.overlay {
		return
	}
	s.overlay = o
	s.notify(EventOverlay)
}

// TrackReveal registers refs as pending unless already known
func (s *Store) TrackReveal(refs ...string) {
	for _, ref := range refs {
		if _, ok := s.reveals[ref]; !ok {
			s.reveals[ref] = domain.Pending
		}
	}
}

// Reveal returns the flag of ref. Untracked refs are always revealed.
func (s *Store) Reveal(ref string) domain.RevealFlag {
	if f, ok := s.reveals[ref]; ok {
		return f
	}
	return domain.Revealed
}

// MarkRevealed flags ref as revealed. Repeating it is harmless.
func (s *Store) MarkRevealed(ref string) {
	if s.reveals[ref] == domain.Revealed {
		return
	}
	s.reveals[ref] = domain.Revealed
	s.notify(EventReveal)
}

// AnyRevealed reports whether at least one tracked ref is revealed
func (s *Store) AnyRevealed(refs []string) bool {
	for _, ref := range refs {
		if f, ok := s.reveals[ref]; ok && f == domain.Revealed {
			return true
		}
	}
	return false
}

// Flag returns a named boolean flag (e.g. an active connector)
func (s *Store) Flag(name string) bool {
	return s.flags[name]
}

// SetFlag turns a named flag on
func (s *Store) SetFlag(name string) {
	if s.flags[name] {
		return
	}
	s.flags[name] = true
	s.notify(EventFlag)
}

// RegisterDisplay makes target writable with an initial value
func (s *Store) RegisterDisplay(target, initial string) {
	s.displays[target] = initial
}

// Display returns the value of target
func (s *Store) Display(target string) (string, bool) {
	v, ok := s.displays[target]
	return v, ok
}

// Displays returns a copy of every registered target value
func (s *Store) Displays() map[string]string {
	out := make(map[string]string, len(s.displays))
	for k, v := range s.displays {
		out[k] = v
	}
	return out
}

// WriteDisplay updates a registered target
func (s *Store) WriteDisplay(target, value string) bool {
	old, ok := s.displays[target]
	if !ok {
		return false
	}
	if old != value {
		s.displays[target] = value
		s.notify(EventDisplay)
	}
	return true
}

// ClearDisplays unregisters every display target
func (s *Store) ClearDisplays() {
	s.displays = make(map[string]string)
}

// SpawnParticles adds n ambient particles born at now
func (s *Store) SpawnParticles(now time.Time, n int, rng *rand.Rand) {
	s.particles.Spawn(now, n, rng)
	s.notify(EventParticles)
}

// PruneParticles drops expired particles
func (s *Store) PruneParticles(now time.Time) {
	if s.particles.Prune(now) > 0 {
		s.notify(EventParticles)
	}
}

// Particles returns the particles showing at now
func (s *Store) Particles(now time.Time) []domain.Particle {
	return s.particles.Visible(now)
}

// ParticleCount returns how many particles are alive, shown or not
func (s *Store) ParticleCount() int {
	return s.particles.Len()
}
