package application

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"

	"relato/internal/domain"
)

// DefaultActiveThreshold is the visible fraction that activates a section
const DefaultActiveThreshold = 0.3

// Options configures a Page
type Options struct {
	Scheduler Scheduler
	Scroller  Scroller
	Formatter *Formatter
	Threshold float64
	Logger    *slog.Logger
	Rand      *rand.Rand
	SessionID string
}

// Page composes the navigation and animation core of one viewing session
type Page struct {
	Decl       *domain.Page
	Registry   *domain.Registry
	Store      *Store
	Gallery    *Gallery
	Counters   *CounterAnimator
	Dispatcher *Dispatcher
	Tracker    *Tracker
	Navigator  *Navigator
	SessionID  string

	format  *Formatter
	log     *slog.Logger
	mounted bool
}

// NewPage validates decl and wires the core around it
func NewPage(decl *domain.Page, opts Options) (*Page, error) {
	if decl == nil {
		return nil, fmt.Errorf("page declaration: %w", domain.ErrInvalidPage)
	}
	if err := decl.Validate(); err != nil {
		return nil, fmt.Errorf("page declaration: %w", err)
	}
	if opts.Scheduler == nil {
		return nil, fmt.Errorf("page requires a scheduler")
	}
	if opts.Threshold <= 0 {
		opts.Threshold = DefaultActiveThreshold
	}
	if opts.Formatter == nil {
		opts.Formatter = NewFormatter(DefaultLocale)
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(opts.Scheduler.Now().UnixNano()))
	}
	if opts.SessionID == "" {
		opts.SessionID = uuid.NewString()
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	log = log.With("session", opts.SessionID)

	registry := decl.Registry()
	store := NewStore(registry.Len())
	gallery := NewGallery(decl.GallerySequence(), store)
	counters := NewCounterAnimator(opts.Scheduler, store, opts.Formatter)
	dispatcher := NewDispatcher(decl, store, opts.Scheduler, counters, opts.Rand, log)

	return &Page{
		Decl:       decl,
		Registry:   registry,
		Store:      store,
		Gallery:    gallery,
		Counters:   counters,
		Dispatcher: dispatcher,
		Tracker:    NewTracker(registry, store, dispatcher, opts.Threshold, log),
		Navigator:  NewNavigator(registry, store, gallery, opts.Scroller),
		SessionID:  opts.SessionID,
		format:     opts.Formatter,
		log:        log,
	}, nil
}

// Formatter returns the page's number formatter
func (p *Page) Formatter() *Formatter {
	return p.format
}

// Mount registers display targets and pending reveals, starts observing
// sections and keys, and arms the gallery fallback.
func (p *Page) Mount() {
	if p.mounted {
		return
	}
	for _, c := range p.Decl.Counters() {
		p.Store.RegisterDisplay(c.Target, p.format.Count(c.Value, c.Grouping, c.Suffix))
	}
	p.Store.TrackReveal(p.Decl.RevealRefs()...)
	p.Tracker.Connect()
	p.Navigator.Attach()
	p.Dispatcher.ScheduleGalleryFallback()
	p.mounted = true
	p.log.Info("page mounted", "sections", p.Registry.Len(), "gallery", p.Gallery.Sequence().Len())
}

// Unmount detaches observers and key handling and unregisters display
// targets, so frames still in flight find no target and stop.
func (p *Page) Unmount() {
	if !p.mounted {
		return
	}
	p.Tracker.Disconnect()
	p.Navigator.Detach()
	p.Store.ClearDisplays()
	p.mounted = false
	p.log.Info("page unmounted")
}

// Mounted reports whether the page is mounted
func (p *Page) Mounted() bool {
	return p.mounted
}
