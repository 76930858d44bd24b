package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"

	"relato/internal/adapters/tui/views"
	"relato/internal/application"
	"relato/internal/domain"
)

func appPage() *domain.Page {
	return &domain.Page{
		Title: "Cisco",
		Sections: []domain.SectionDecl{
			{ID: "hero", Nav: "Inicio", Kind: "generic", Title: "Historia", Blocks: []domain.Block{
				{Ref: "lead", Text: "Cada grano cuenta"},
			}},
			{ID: "problema", Nav: "Problema", Kind: "counters", Title: "Desafío", Blocks: []domain.Block{
				{Ref: "tons", Text: "{contador} toneladas", Static: true},
			}, Counters: []domain.CounterSpec{
				{Target: "ciscoPercentage", Value: 22, DurationMs: 1500},
				{Target: "contador", Value: 195000, DurationMs: 2500, DelayMs: 800, Grouping: true, Suffix: "+"},
			}},
			{ID: "impacto", Nav: "Impacto", Kind: "impact", Title: "Impacto"},
		},
	}
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := NewApp(appPage(), Options{
		FrameInterval: 16 * time.Millisecond,
		Formatter:     application.NewFormatter(language.English),
	})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	app.Init()
	app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return app
}

func TestNewApp_InvalidPage(t *testing.T) {
	if _, err := NewApp(&domain.Page{}, Options{}); err == nil {
		t.Error("expected error for a page without sections")
	}
}

func TestApp_InitMountsPage(t *testing.T) {
	app := newTestApp(t)

	if !app.Page().Mounted() {
		t.Fatal("Init mounts the page")
	}
	if !app.Page().Tracker.Activated("hero") {
		t.Error("the first section activates after layout")
	}
	if !strings.Contains(app.View(), "Cada grano cuenta") {
		t.Error("hero content is visible")
	}
}

func TestApp_KeyboardDrivesCounters(t *testing.T) {
	app := newTestApp(t)

	app.Update(tea.KeyMsg{Type: tea.KeyDown})
	page := app.Page()
	if page.Store.Navigation().Current != 1 {
		t.Fatalf("expected section 1, got %d", page.Store.Navigation().Current)
	}
	if !page.Tracker.Activated("problema") {
		t.Fatal("problema activates")
	}

	app.Update(frameMsg(time.Now().Add(200 * time.Millisecond)))
	if got, _ := page.Store.Display("ciscoPercentage"); got == "22" || got == "0" {
		t.Errorf("expected a mid-flight value, got %q", got)
	}

	app.Update(frameMsg(time.Now().Add(10 * time.Second)))
	if got, _ := page.Store.Display("contador"); got != "195,000+" {
		t.Errorf("expected 195,000+, got %q", got)
	}
	if !strings.Contains(app.View(), "195,000+") {
		t.Error("counter value is rendered in place of its placeholder")
	}
}

func TestApp_HelpToggle(t *testing.T) {
	app := newTestApp(t)

	app.Update(views.SwitchToHelpMsg{})
	if !strings.Contains(app.View(), "Atajos de teclado") {
		t.Error("help view is shown")
	}

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc in help returns a command")
	}
	app.Update(views.SwitchToPageMsg{})
	if app.state != ViewPage {
		t.Error("returns to the page view")
	}
}

func TestApp_QuitUnmounts(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(views.QuitRequestMsg{})
	if cmd == nil {
		t.Fatal("quit returns a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.Quit")
	}
	if app.Page().Mounted() {
		t.Error("quitting unmounts the page")
	}
	if frames, timers := app.sched.Active(); frames != 0 || timers != 0 {
		t.Errorf("pending work is dropped, %d frames %d timers", frames, timers)
	}

	app.Close()
}
