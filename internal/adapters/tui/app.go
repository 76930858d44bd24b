package tui

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"relato/internal/adapters/tui/views"
	"relato/internal/application"
	"relato/internal/domain"
)

// ViewState represents the current view
type ViewState int

const (
	ViewPage ViewState = iota
	ViewHelp
)

// Options configures the TUI application
type Options struct {
	FrameInterval  time.Duration
	ScrollDuration time.Duration
	Threshold      float64
	Margin         float64
	Formatter      *application.Formatter
	Logger         *slog.Logger
	Copy           func(string) error
	Open           func(domain.GalleryImage) error
}

// App is the main TUI application model
type App struct {
	page  *application.Page
	sched *Scheduler
	log   *slog.Logger

	state ViewState
	view  *views.PageModel
	help  *views.HelpModel

	width  int
	height int
}

// NewApp wires the page core to a bubbletea scheduler and the page view
func NewApp(decl *domain.Page, opts Options) (*App, error) {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = 33 * time.Millisecond
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	sched := NewScheduler(opts.FrameInterval)
	view := views.NewPageModel(sched, views.PageOptions{
		Margin:         opts.Margin,
		ScrollDuration: opts.ScrollDuration,
		Copy:           opts.Copy,
		Open:           opts.Open,
	})

	page, err := application.NewPage(decl, application.Options{
		Scheduler: sched,
		Scroller:  view,
		Formatter: opts.Formatter,
		Threshold: opts.Threshold,
		Logger:    log,
	})
	if err != nil {
		return nil, err
	}
	view.Bind(page)

	return &App{
		page:  page,
		sched: sched,
		log:   log,
		state: ViewPage,
		view:  view,
		help:  views.NewHelpModel(decl.Title),
	}, nil
}

// Page returns the page core driven by the app
func (a *App) Page() *application.Page {
	return a.page
}

// Init mounts the page
func (a *App) Init() tea.Cmd {
	a.page.Mount()
	a.view.Refresh()
	return tea.Batch(a.view.Init(), a.sched.Flush())
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.sched.Handle(msg) {
		a.view.Refresh()
		return a, a.sched.Flush()
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.view.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		a.view.Refresh()
		return a, a.sched.Flush()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToPageMsg:
		a.state = ViewPage
		return a, nil

	case views.QuitRequestMsg:
		a.Close()
		return a, tea.Quit
	}

	var cmd tea.Cmd
	switch a.state {
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	default:
		_, cmd = a.view.Update(msg)
	}

	a.view.Refresh()
	return a, tea.Batch(cmd, a.sched.Flush())
}

// Close unmounts the page and drops scheduled work. It is safe to call more
// than once.
func (a *App) Close() {
	if !a.page.Mounted() {
		return
	}
	a.page.Unmount()
	a.view.Unbind()
	a.sched.Stop()
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewHelp:
		return a.help.View()
	default:
		return a.view.View()
	}
}
