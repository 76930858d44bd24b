package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Coffee    = lipgloss.Color("#8B5A2B") // Roast brown
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")
	Track     = lipgloss.Color("#374151")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Coffee).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Section body
	Body = lipgloss.NewStyle()

	Counter = lipgloss.NewStyle().
		Foreground(Warning).
		Bold(true)

	// Connector between the two ends of a transformation
	ConnectorIdle = lipgloss.NewStyle().
			Foreground(Track)

	ConnectorActive = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	Particle = lipgloss.NewStyle().
			Foreground(Coffee)

	// Gallery tiles
	Tile = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Coffee).
		Padding(0, 1)

	// Overlay box
	Overlay = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(Coffee).
		Padding(1, 3)

	OverlayCounter = lipgloss.NewStyle().
			Foreground(Muted)

	// Progress and navigation strip
	ProgressFill = lipgloss.NewStyle().
			Foreground(Coffee)

	ProgressTrack = lipgloss.NewStyle().
			Foreground(Track)

	NavItem = lipgloss.NewStyle().
		Foreground(Muted).
		Padding(0, 1)

	NavCurrent = lipgloss.NewStyle().
			Background(Coffee).
			Foreground(White).
			Bold(true).
			Padding(0, 1)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Coffee).
			Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Coffee).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// KindColor returns the accent color of a section kind
func KindColor(kind string) lipgloss.Color {
	switch kind {
	case "counters", "impact":
		return Warning
	case "transform":
		return Secondary
	case "gallery":
		return lipgloss.Color("#60A5FA") // Blue
	default:
		return Coffee
	}
}
