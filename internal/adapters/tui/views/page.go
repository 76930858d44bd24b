package views

import (
	"math"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"relato/internal/adapters/tui/styles"
	"relato/internal/application"
	"relato/internal/domain"
)

// PageKeyMap defines key bindings for the page view
type PageKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Escape key.Binding
	Open   key.Binding
	Calc   key.Binding
	Copy   key.Binding
	Browse key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var PageKeys = PageKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "anterior"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "siguiente"),
	),
	Left: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "anterior"),
	),
	Right: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "siguiente"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cerrar"),
	),
	Open: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "ver imagen"),
	),
	Calc: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "calcular"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copiar URL"),
	),
	Browse: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "abrir en navegador"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "ayuda"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "salir"),
	),
}

// chrome is the number of rows around the viewport: progress bar, nav strip
// and status line.
const chrome = 3

// PageOptions configures a PageModel
type PageOptions struct {
	Margin         float64
	ScrollDuration time.Duration
	Copy           func(string) error
	// Open shows an image outside the terminal. Nil disables the key.
	Open           func(domain.GalleryImage) error
}

// PageModel renders the page on a scrolling viewport and reports section
// visibility to the tracker whenever the offset or layout changes.
type PageModel struct {
	ViewState

	sched    application.Scheduler
	page     *application.Page
	viewport viewport.Model
	calc     *Calculator

	margin         float64
	scrollDuration time.Duration
	copy           func(string) error
	open           func(domain.GalleryImage) error

	spans       map[string]application.Span
	scrollGen   int
	dirty       bool
	animating   bool
	unsubscribe func()
}

var _ application.Scroller = (*PageModel)(nil)

// NewPageModel creates an unbound page view
func NewPageModel(sched application.Scheduler, opts PageOptions) *PageModel {
	if opts.Copy == nil {
		opts.Copy = clipboard.WriteAll
	}
	return &PageModel{
		sched:          sched,
		viewport:       viewport.New(0, 0),
		calc:           NewCalculator(),
		margin:         opts.Margin,
		scrollDuration: opts.ScrollDuration,
		copy:           opts.Copy,
		open:           opts.Open,
		spans:          make(map[string]application.Span),
		dirty:          true,
	}
}

// Bind attaches the view to page and listens for its state changes
func (m *PageModel) Bind(page *application.Page) {
	m.Unbind()
	m.page = page
	m.unsubscribe = page.Store.Subscribe(m.onEvent)
	m.dirty = true
}

// Unbind stops listening to the page's store
func (m *PageModel) Unbind() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

func (m *PageModel) onEvent(e application.Event) {
	m.dirty = true
	if e != application.EventParticles || m.animating || m.page.Store.ParticleCount() == 0 {
		return
	}
	// particles fade in on their own delays, so redraw every frame while any live
	m.animating = true
	m.sched.EveryFrame(func(time.Time) bool {
		m.dirty = true
		if m.page.Store.ParticleCount() == 0 {
			m.animating = false
			return true
		}
		return false
	})
}

// SetSize updates the view dimensions
func (m *PageModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.viewport.Width = width
	m.viewport.Height = max(height-chrome, 1)
	m.dirty = true
}

// Calculator returns the cost section calculator
func (m *PageModel) Calculator() *Calculator {
	return m.calc
}

// YOffset returns the first visible row of the scroll surface
func (m *PageModel) YOffset() int {
	return m.viewport.YOffset
}

// Span returns the extent of a section after the last refresh
func (m *PageModel) Span(id string) (application.Span, bool) {
	s, ok := m.spans[id]
	return s, ok
}

// Init initializes the page view
func (m *PageModel) Init() tea.Cmd {
	return nil
}

// Refresh re-renders the scroll surface if state changed and reports the
// resulting section visibility. Activations can change state again, so it
// settles for a few rounds.
func (m *PageModel) Refresh() {
	if m.page == nil {
		return
	}
	for round := 0; m.dirty && round < 3; round++ {
		m.dirty = false
		content, spans := m.renderSections()
		m.spans = spans
		m.viewport.SetContent(content)
		m.observe()
	}
}

// observe reports every section's visible ratio to the tracker
func (m *PageModel) observe() {
	sections := m.page.Registry.Sections()
	entries := make([]application.Intersection, 0, len(sections))
	for _, s := range sections {
		span, ok := m.spans[s.ID]
		if !ok {
			continue
		}
		entries = append(entries, application.Intersection{
			Handle: s.ID,
			Ratio:  application.VisibleRatio(span, m.viewport.YOffset, m.viewport.Height, m.margin),
		})
	}
	m.page.Tracker.Observe(entries)
}

// ScrollTo eases the viewport to the top of a section. A newer scroll, by
// key or by hand, cancels one still in flight.
func (m *PageModel) ScrollTo(sectionID string) {
	span, ok := m.spans[sectionID]
	if !ok {
		return
	}
	m.scrollGen++
	gen := m.scrollGen
	from, target := m.viewport.YOffset, span.Top

	if m.scrollDuration <= 0 || from == target {
		m.viewport.SetYOffset(target)
		m.observe()
		return
	}

	start := m.sched.Now()
	m.sched.EveryFrame(func(now time.Time) bool {
		if gen != m.scrollGen {
			return true
		}
		p := domain.Progress(now.Sub(start), m.scrollDuration)
		m.viewport.SetYOffset(from + int(math.Round(float64(target-from)*domain.Ease(p))))
		m.observe()
		return p >= 1
	})
}

// Update handles messages for the page view
func (m *PageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.page == nil {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		if m.page.Gallery.IsOpen() {
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.scrolled()
		return m, cmd
	}

	if m.calc.Active() {
		m.dirty = true
		return m, m.calc.Update(msg)
	}
	return m, nil
}

func (m *PageModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.calc.Active() {
		m.dirty = true
		return m.calc.Update(msg)
	}

	switch {
	case key.Matches(msg, PageKeys.Quit):
		return func() tea.Msg { return QuitRequestMsg{} }
	case key.Matches(msg, PageKeys.Help):
		return func() tea.Msg { return SwitchToHelpMsg{} }
	}

	if m.page.Navigator.HandleKey(navKey(msg)) {
		m.ClearMessage()
		return nil
	}

	if m.page.Gallery.IsOpen() {
		switch {
		case key.Matches(msg, PageKeys.Copy):
			m.copyCurrent()
		case key.Matches(msg, PageKeys.Browse) && m.open != nil:
			m.openCurrent()
		}
		return nil
	}

	decl := m.currentDecl()
	switch {
	case key.Matches(msg, PageKeys.Open) && decl.SectionKind() == domain.KindGallery:
		m.page.Gallery.OpenAt(int(msg.String()[0] - '1'))
		return nil
	case key.Matches(msg, PageKeys.Calc) && decl.Calculator:
		m.dirty = true
		return m.calc.Focus()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	m.scrolled()
	return cmd
}

// scrolled cancels any eased scroll and re-observes after a manual move
func (m *PageModel) scrolled() {
	m.scrollGen++
	m.observe()
}

func navKey(msg tea.KeyMsg) application.Key {
	switch {
	case key.Matches(msg, PageKeys.Up):
		return application.KeyUp
	case key.Matches(msg, PageKeys.Down):
		return application.KeyDown
	case key.Matches(msg, PageKeys.Left):
		return application.KeyLeft
	case key.Matches(msg, PageKeys.Right):
		return application.KeyRight
	case key.Matches(msg, PageKeys.Escape):
		return application.KeyEscape
	default:
		return application.KeyNone
	}
}

func (m *PageModel) currentDecl() domain.SectionDecl {
	id := m.page.Registry.ID(m.page.Store.Navigation().Current)
	decl, _ := m.page.Decl.Section(id)
	return decl
}

func (m *PageModel) copyCurrent() {
	img, _, ok := m.page.Gallery.Current()
	if !ok {
		return
	}
	url := img.URL
	if url == "" {
		url = img.FallbackURL
	}
	if err := m.copy(url); err != nil {
		m.SetMessage("no se pudo copiar: "+err.Error(), true)
		return
	}
	m.SetMessage("URL copiada: "+url, false)
}

func (m *PageModel) openCurrent() {
	img, _, ok := m.page.Gallery.Current()
	if !ok {
		return
	}
	if err := m.open(img); err != nil {
		m.SetMessage("no se pudo abrir: "+err.Error(), true)
		return
	}
	m.SetMessage("abriendo "+img.ID, false)
}

// View renders the page view
func (m *PageModel) View() string {
	if m.page == nil {
		return ""
	}
	if m.page.Gallery.IsOpen() {
		return m.renderOverlay()
	}

	nav := m.page.Store.Navigation()
	labels := make([]string, len(m.page.Decl.Sections))
	for i, s := range m.page.Decl.Sections {
		labels[i] = s.Nav
		if labels[i] == "" {
			labels[i] = s.ID
		}
	}

	status := RenderMessage(m.Message, m.MessageErr)
	if status == "" {
		status = RenderHelpLine(PageKeys.Down, PageKeys.Up, PageKeys.Help, PageKeys.Quit)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		RenderProgress(nav, m.Width),
		m.viewport.View(),
		RenderNavStrip(labels, nav.Current, m.Width),
		status,
	)
}

// renderSections lays out every section, each at least one viewport tall,
// and returns the content with each section's extent.
func (m *PageModel) renderSections() (string, map[string]application.Span) {
	width := max(m.Width-4, 20)
	now := m.sched.Now()
	displays := m.displayReplacer()

	spans := make(map[string]application.Span, len(m.page.Decl.Sections))
	var lines []string
	for _, decl := range m.page.Decl.Sections {
		body := lipgloss.NewStyle().Padding(1, 2).Render(m.renderSection(decl, width, now, displays))
		if h := lipgloss.Height(body); h < m.viewport.Height {
			body += strings.Repeat("\n", m.viewport.Height-h)
		}
		rows := strings.Split(body, "\n")
		spans[decl.ID] = application.Span{Top: len(lines), Height: len(rows)}
		lines = append(lines, rows...)
	}
	return strings.Join(lines, "\n"), spans
}

func (m *PageModel) renderSection(decl domain.SectionDecl, width int, now time.Time, displays *strings.Replacer) string {
	store := m.page.Store
	kind := decl.SectionKind()
	var b strings.Builder

	title := styles.Title.Foreground(styles.KindColor(decl.Kind)).Render(decl.Title)
	subtitle := styles.Subtitle.Width(width).Render(decl.Subtitle)
	if kind == domain.KindGallery {
		title = m.gate(decl.TitleRef(), title)
		subtitle = m.gate(decl.SubtitleRef(), subtitle)
	}
	b.WriteString(title)
	b.WriteString("\n")
	if decl.Subtitle != "" {
		b.WriteString(subtitle)
		b.WriteString("\n\n")
	}

	for _, blk := range decl.Blocks {
		text := styles.Body.Width(width).Render(displays.Replace(blk.Text))
		if !blk.Static {
			text = m.gate(decl.BlockRef(blk.Ref), text)
		}
		b.WriteString(text)
		b.WriteString("\n\n")
	}

	if decl.Connector != nil {
		b.WriteString(RenderConnector(*decl.Connector, store.Flag(decl.Connector.Ref), width))
		b.WriteString("\n\n")
	}
	if kind == domain.KindCounters {
		b.WriteString(RenderParticles(store.Particles(now), width))
		b.WriteString("\n\n")
	}
	if kind == domain.KindGallery {
		b.WriteString(m.renderTiles(width))
		b.WriteString("\n\n")
	}
	if decl.Calculator {
		b.WriteString(m.calc.View(m.page.Formatter()))
	}

	return strings.TrimRight(b.String(), "\n")
}

// gate hides s behind blank space of the same size while ref is pending
func (m *PageModel) gate(ref, s string) string {
	if m.page.Store.Reveal(ref) == domain.Pending {
		return blank(s)
	}
	return s
}

func (m *PageModel) renderTiles(width int) string {
	const perRow = 3
	images := m.page.Gallery.Sequence().Images()
	tileWidth := max(width/perRow-3, 12)

	var rows []string
	var row []string
	for i, img := range images {
		visible := m.page.Store.Reveal(domain.TileRef(img.ID)) == domain.Revealed
		row = append(row, RenderTile(i+1, img, visible, tileWidth), " ")
		if len(row) == perRow*2 || i == len(images)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	return strings.Join(rows, "\n")
}

// displayReplacer substitutes {target} placeholders with current display values
func (m *PageModel) displayReplacer() *strings.Replacer {
	var pairs []string
	for target, value := range m.page.Store.Displays() {
		pairs = append(pairs, "{"+target+"}", styles.Counter.Render(value))
	}
	return strings.NewReplacer(pairs...)
}

func (m *PageModel) renderOverlay() string {
	img, i, ok := m.page.Gallery.Current()
	if !ok {
		return ""
	}
	caption := m.page.Gallery.Caption()

	var b strings.Builder
	b.WriteString(styles.OverlayCounter.Render(
		m.page.Formatter().Count(i+1, false, "") + " / " + m.page.Formatter().Count(m.page.Gallery.Sequence().Len(), false, "")))
	b.WriteString("\n\n")
	b.WriteString(styles.Title.Render(img.ID))
	b.WriteString("\n")
	b.WriteString(RenderLabelValue("url", img.URL))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(img.FallbackURL))
	b.WriteString("\n\n")
	b.WriteString(styles.InputLabel.Render(caption.Title))
	b.WriteString("\n")
	b.WriteString(caption.Description)
	b.WriteString("\n\n")
	if m.Message != "" {
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n")
	}
	help := []key.Binding{PageKeys.Left, PageKeys.Right, PageKeys.Copy}
	if m.open != nil {
		help = append(help, PageKeys.Browse)
	}
	b.WriteString(RenderHelpLine(append(help, PageKeys.Escape)...))

	box := styles.Overlay.MaxWidth(max(m.Width-2, 20)).Render(b.String())
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, box)
}
