package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"relato/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "cerrar"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
	title string
}

// NewHelpModel creates a new help view model for the page titled title
func NewHelpModel(title string) *HelpModel {
	return &HelpModel{title: title}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToPageMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(m.title))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Atajos de teclado"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Navegación"))
	b.WriteString("\n")
	b.WriteString(helpLine("↓ / →", "Sección siguiente"))
	b.WriteString(helpLine("↑ / ←", "Sección anterior"))
	b.WriteString(helpLine("pgup / pgdn", "Desplazar libremente"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Galería"))
	b.WriteString("\n")
	b.WriteString(helpLine("1-9", "Abrir imagen"))
	b.WriteString(helpLine("← / →", "Imagen anterior / siguiente"))
	b.WriteString(helpLine("c", "Copiar URL de la imagen"))
	b.WriteString(helpLine("o", "Abrir la imagen en el navegador"))
	b.WriteString(helpLine("esc", "Cerrar imagen"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Calculadora"))
	b.WriteString("\n")
	b.WriteString(helpLine("i", "Editar toneladas"))
	b.WriteString(helpLine("tab", "Siguiente campo"))
	b.WriteString(helpLine("enter / esc", "Terminar edición"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Mostrar/ocultar ayuda"))
	b.WriteString(helpLine("q / Ctrl+C", "Salir"))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Pulsa "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" o "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" para cerrar"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
