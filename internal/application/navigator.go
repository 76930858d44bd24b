package application

import "relato/internal/domain"

// Key is a directional input understood by the Navigator
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
)

// Scroller brings a section into view
type Scroller interface {
	ScrollTo(sectionID string)
}

// Navigator interprets directional keys. With the overlay open it pages the
// gallery; otherwise it pages sections and asks the Scroller to follow.
type Navigator struct {
	registry *domain.Registry
	store    *Store
	gallery  *Gallery
	scroller Scroller
	attached bool
}

// NewNavigator creates a detached navigator
func NewNavigator(registry *domain.Registry, store *Store, gallery *Gallery, scroller Scroller) *Navigator {
	return &Navigator{
		registry: registry,
		store:    store,
		gallery:  gallery,
		scroller: scroller,
	}
}

// Attach starts handling keys
func (n *Navigator) Attach() {
	n.attached = true
}

// Detach stops handling keys
func (n *Navigator) Detach() {
	n.attached = false
}

// HandleKey applies k. It returns true when the key was consumed and its
// default action must be suppressed.
func (n *Navigator) HandleKey(k Key) bool {
	if !n.attached {
		return false
	}

	if n.gallery.IsOpen() {
		switch k {
		case KeyRight:
			n.gallery.Next()
		case KeyLeft:
			n.gallery.Prev()
		case KeyEscape:
			n.gallery.Close()
		default:
			return false
		}
		return true
	}

	var next domain.NavigationState
	switch k {
	case KeyDown, KeyRight:
		next = n.store.Navigation().Next()
	case KeyUp, KeyLeft:
		next = n.store.Navigation().Prev()
	default:
		return false
	}
	n.store.SetCurrentSection(next.Current)
	if id := n.registry.ID(next.Current); id != "" && n.scroller != nil {
		n.scroller.ScrollTo(id)
	}
	return true
}
