package views

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"

	"relato/internal/application"
	"relato/internal/domain"
)

// stubScheduler queues work until the test runs it explicitly
type stubScheduler struct {
	now    time.Time
	steps  []func(time.Time) bool
	timers []func(time.Time)
}

func newStubScheduler() *stubScheduler {
	return &stubScheduler{now: time.Unix(1_700_000_000, 0)}
}

func (s *stubScheduler) Now() time.Time { return s.now }

func (s *stubScheduler) EveryFrame(step func(time.Time) bool) {
	s.steps = append(s.steps, step)
}

func (s *stubScheduler) After(_ time.Duration, fn func(time.Time)) {
	s.timers = append(s.timers, fn)
}

// frame advances the clock by d and runs every frame step once
func (s *stubScheduler) frame(d time.Duration) {
	s.now = s.now.Add(d)
	current := s.steps
	s.steps = nil
	for _, step := range current {
		if !step(s.now) {
			s.steps = append(s.steps, step)
		}
	}
}

type copyRecorder struct {
	copied []string
}

func (c *copyRecorder) copy(s string) error {
	c.copied = append(c.copied, s)
	return nil
}

func viewPage() *domain.Page {
	return &domain.Page{
		Title: "Cisco",
		Sections: []domain.SectionDecl{
			{ID: "hero", Nav: "Inicio", Kind: "generic", Title: "Cada grano cuenta", Blocks: []domain.Block{
				{Ref: "lead", Text: "Primera línea visible"},
				{Ref: "hint", Text: "Segunda línea escalonada"},
			}},
			{ID: "problema", Nav: "Problema", Kind: "counters", Title: "El Desafío", Blocks: []domain.Block{
				{Ref: "weight", Text: "{ciscoPercentage}% del peso", Static: true},
			}, Counters: []domain.CounterSpec{
				{Target: "ciscoPercentage", Value: 22, DurationMs: 1500},
			}},
			{ID: "galeria", Nav: "Galería", Kind: "gallery", Title: "Galería del Proceso", Subtitle: "Descubre"},
			{ID: "costos", Nav: "Costos", Kind: "generic", Title: "Costos", Calculator: true},
		},
		Gallery: []domain.GalleryImage{
			{ID: "galeria_1.jpg", URL: "/images/galeria_1.jpg"},
			{ID: "galeria_2.jpg", URL: "/images/galeria_2.jpg"},
			{ID: "galeria_3.jpg", FallbackURL: "https://example.com/3.jpeg"},
		},
	}
}

func newTestView(t *testing.T, scroll time.Duration) (*PageModel, *application.Page, *stubScheduler, *copyRecorder) {
	t.Helper()
	sched := newStubScheduler()
	rec := &copyRecorder{}
	view := NewPageModel(sched, PageOptions{Margin: 0.1, ScrollDuration: scroll, Copy: rec.copy})

	page, err := application.NewPage(viewPage(), application.Options{
		Scheduler: sched,
		Scroller:  view,
		Formatter: application.NewFormatter(language.English),
	})
	if err != nil {
		t.Fatalf("NewPage: %v", err)
	}
	view.Bind(page)
	page.Mount()
	view.SetSize(80, 24)
	view.Refresh()
	return view, page, sched, rec
}

func keyPress(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends msg and refreshes the view the way the app does
func press(view *PageModel, msg tea.KeyMsg) tea.Cmd {
	_, cmd := view.Update(msg)
	view.Refresh()
	return cmd
}
