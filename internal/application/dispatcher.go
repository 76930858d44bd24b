package application

import (
	"log/slog"
	"math/rand"
	"time"

	"relato/internal/domain"
)

// Entry routine timings
const (
	RevealStep       = 100 * time.Millisecond
	ParticleDelay    = 1200 * time.Millisecond
	ConnectorDelay   = 1000 * time.Millisecond
	SubtitleDelay    = 200 * time.Millisecond
	TileBaseDelay    = 400 * time.Millisecond
	TileStep         = 150 * time.Millisecond
	GalleryFallback  = 3000 * time.Millisecond
	FallbackTileStep = 100 * time.Millisecond
)

// Routine is a section entry animation
type Routine func(decl domain.SectionDecl)

// Dispatcher maps an activated section to its entry routine. Routines are
// fire-and-forget: they only schedule work and never wait on each other.
type Dispatcher struct {
	page     *domain.Page
	store    *Store
	sched    Scheduler
	counters *CounterAnimator
	rng      *rand.Rand
	log      *slog.Logger

	routines map[domain.SectionKind]Routine
}

var _ Activator = (*Dispatcher)(nil)

// NewDispatcher wires the built-in routines
func NewDispatcher(page *domain.Page, store *Store, sched Scheduler, counters *CounterAnimator, rng *rand.Rand, log *slog.Logger) *Dispatcher {
	d := &Dispatcher{
		page:     page,
		store:    store,
		sched:    sched,
		counters: counters,
		rng:      rng,
		log:      log,
	}
	d.routines = map[domain.SectionKind]Routine{
		domain.KindGeneric:   d.generic,
		domain.KindCounters:  d.countersWithParticles,
		domain.KindImpact:    d.impact,
		domain.KindGallery:   d.gallery,
		domain.KindTransform: d.transform,
	}
	return d
}

// RoutineKind returns the routine a section id dispatches to.
// Unknown ids use the generic routine.
func (d *Dispatcher) RoutineKind(id string) domain.SectionKind {
	decl, ok := d.page.Section(id)
	if !ok {
		return domain.KindGeneric
	}
	kind := decl.SectionKind()
	if _, ok := d.routines[kind]; !ok {
		return domain.KindGeneric
	}
	return kind
}

// Activate runs the entry routine of section
func (d *Dispatcher) Activate(section domain.Section) {
	decl, ok := d.page.Section(section.ID)
	if !ok {
		decl = domain.SectionDecl{ID: section.ID}
	}
	kind := d.RoutineKind(section.ID)
	d.log.Debug("triggering section animations", "section", section.ID, "routine", kind.String())
	d.routines[kind](decl)
	if kind != domain.KindGeneric {
		// only the generic routine owns body blocks; reveal any the
		// declaration left pending so they never stay hidden
		d.generic(decl)
	}
}

func (d *Dispatcher) generic(decl domain.SectionDecl) {
	plan := domain.LinearStagger(decl.AnimatableRefs(), 0, RevealStep)
	RunStagger(d.sched, plan, d.store.MarkRevealed)
}

func (d *Dispatcher) countersWithParticles(decl domain.SectionDecl) {
	d.counters.StartAll(decl.Counters)
	d.sched.After(ParticleDelay, func(now time.Time) {
		d.store.SpawnParticles(now, domain.ParticleCount, d.rng)
		d.sched.After(domain.ParticleLifetime, d.store.PruneParticles)
	})
}

func (d *Dispatcher) impact(decl domain.SectionDecl) {
	d.counters.StartAll(decl.Counters)
}

func (d *Dispatcher) gallery(decl domain.SectionDecl) {
	plan := []domain.StaggerStep{
		{Ref: decl.TitleRef()},
		{Ref: decl.SubtitleRef(), Delay: SubtitleDelay},
	}
	plan = append(plan, domain.LinearStagger(d.page.TileRefs(), TileBaseDelay, TileStep)...)
	RunStagger(d.sched, plan, d.store.MarkRevealed)
}

func (d *Dispatcher) transform(decl domain.SectionDecl) {
	if decl.Connector == nil {
		return
	}
	ref := decl.Connector.Ref
	d.sched.After(ConnectorDelay, func(time.Time) {
		d.store.SetFlag(ref)
	})
}

// ScheduleGalleryFallback forces the gallery visible if no tile revealed
// itself within GalleryFallback of mount. Double-applying is harmless.
func (d *Dispatcher) ScheduleGalleryFallback() {
	decl, ok := d.page.GallerySection()
	tiles := d.page.TileRefs()
	if !ok || len(tiles) == 0 {
		return
	}
	d.sched.After(GalleryFallback, func(time.Time) {
		if d.store.AnyRevealed(tiles) {
			return
		}
		d.log.Warn("gallery tiles not visible, forcing visibility", "section", decl.ID, "tiles", len(tiles))
		d.store.MarkRevealed(decl.TitleRef())
		d.store.MarkRevealed(decl.SubtitleRef())
		RunStagger(d.sched, domain.LinearStagger(tiles, 0, FallbackTileStep), d.store.MarkRevealed)
	})
}
