package views

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"relato/internal/adapters/tui/styles"
	"relato/internal/domain"
)

// RenderKeyHelp formats a key binding as help text (key + description)
func RenderKeyHelp(b key.Binding) string {
	help := b.Help()
	return fmt.Sprintf("%s %s",
		styles.HelpKey.Render(help.Key),
		styles.HelpDesc.Render(help.Desc),
	)
}

// RenderHelpLine renders multiple key bindings as a help line separated by bullets
func RenderHelpLine(bindings ...key.Binding) string {
	var parts []string
	for _, b := range bindings {
		parts = append(parts, RenderKeyHelp(b))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

// RenderMessage renders a message with appropriate styling based on isError
func RenderMessage(message string, isError bool) string {
	if message == "" {
		return ""
	}
	if isError {
		return styles.ErrorMsg.Render(message)
	}
	return styles.Success.Render(message)
}

// RenderLabelValue renders a label: value pair
func RenderLabelValue(label, value string) string {
	return fmt.Sprintf("%s %s",
		styles.InputLabel.Render(label+":"),
		value,
	)
}

// RenderProgress draws a bar filled to nav's progress across width cells
func RenderProgress(nav domain.NavigationState, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(math.Round(nav.Progress() * float64(width)))
	filled = min(max(filled, 0), width)
	return styles.ProgressFill.Render(strings.Repeat("━", filled)) +
		styles.ProgressTrack.Render(strings.Repeat("━", width-filled))
}

// RenderNavStrip lists section labels, highlighting the current one
func RenderNavStrip(labels []string, current, width int) string {
	parts := make([]string, len(labels))
	for i, label := range labels {
		if i == current {
			parts[i] = styles.NavCurrent.Render(label)
		} else {
			parts[i] = styles.NavItem.Render(label)
		}
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
}

// RenderConnector draws the link between the two ends of a transformation.
// An inactive connector shows only its track.
func RenderConnector(c domain.Connector, active bool, width int) string {
	span := max(width-lipgloss.Width(c.From)-lipgloss.Width(c.To)-4, 3)
	if !active {
		return c.From + "  " + styles.ConnectorIdle.Render(strings.Repeat("┈", span)) + "  " + c.To
	}
	return c.From + "  " + styles.ConnectorActive.Render(strings.Repeat("━", span-1)+"▶") + "  " + c.To
}

// RenderParticles places one dot per particle on a single row of width cells
func RenderParticles(particles []domain.Particle, width int) string {
	if width <= 0 {
		return ""
	}
	row := []rune(strings.Repeat(" ", width))
	for _, p := range particles {
		x := min(int(p.X*float64(width)), width-1)
		row[x] = '•'
	}
	return styles.Particle.Render(string(row))
}

// RenderTile draws gallery tile n (1-based) or a blank placeholder of the
// same size while it is still pending.
func RenderTile(n int, img domain.GalleryImage, visible bool, width int) string {
	label := fmt.Sprintf("%d  %s", n, img.ID)
	tile := styles.Tile.Width(width).Render(label)
	if visible {
		return tile
	}
	return blank(tile)
}

// blank replaces s with whitespace of identical dimensions
func blank(s string) string {
	w, h := lipgloss.Width(s), lipgloss.Height(s)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = strings.Repeat(" ", w)
	}
	return strings.Join(lines, "\n")
}
