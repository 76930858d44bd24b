package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"relato/internal/adapters/tui/styles"
	"relato/internal/application"
	"relato/internal/domain"
)

// Calculator field positions
const (
	FieldCisco = iota
	FieldUrban
)

// CalculatorKeyMap defines key bindings while a calculator field is focused
type CalculatorKeyMap struct {
	Next key.Binding
	Done key.Binding
}

var CalculatorKeys = CalculatorKeyMap{
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "siguiente campo"),
	),
	Done: key.NewBinding(
		key.WithKeys("enter", "esc"),
		key.WithHelp("enter/esc", "terminar"),
	),
}

// CalculatorField is one labelled tonnage input
type CalculatorField struct {
	Label string
	Input textinput.Model
}

// Calculator holds the two tonnage inputs of the cost section. Results are
// recomputed from the raw text on every render, so an unparsable entry shows
// zeros instead of an error.
type Calculator struct {
	Fields  []CalculatorField
	Focused int
	active  bool
}

// NewCalculator creates the calculator with its initial inputs
func NewCalculator() *Calculator {
	return &Calculator{
		Fields: []CalculatorField{
			newCalculatorField("Toneladas de cisco", domain.DefaultCiscoInput),
			newCalculatorField("Toneladas de residuo urbano", domain.DefaultUrbanInput),
		},
	}
}

func newCalculatorField(label, initial string) CalculatorField {
	input := textinput.New()
	input.Placeholder = "0"
	input.CharLimit = 12
	input.Width = 14
	input.Prompt = ""
	input.SetValue(initial)
	return CalculatorField{Label: label, Input: input}
}

// Active reports whether a field has keyboard focus
func (c *Calculator) Active() bool {
	return c.active
}

// Focus gives keyboard focus to the current field
func (c *Calculator) Focus() tea.Cmd {
	c.active = true
	c.Fields[c.Focused].Input.Focus()
	return textinput.Blink
}

// Blur releases keyboard focus
func (c *Calculator) Blur() {
	c.active = false
	for i := range c.Fields {
		c.Fields[i].Input.Blur()
	}
}

// NextField moves focus to the next field
func (c *Calculator) NextField() {
	c.Fields[c.Focused].Input.Blur()
	c.Focused = (c.Focused + 1) % len(c.Fields)
	c.Fields[c.Focused].Input.Focus()
}

// Update handles messages while focused
func (c *Calculator) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, CalculatorKeys.Next):
			c.NextField()
			return nil
		case key.Matches(msg, CalculatorKeys.Done):
			c.Blur()
			return nil
		}
	}

	var cmd tea.Cmd
	c.Fields[c.Focused].Input, cmd = c.Fields[c.Focused].Input.Update(msg)
	return cmd
}

// Value returns the raw text of a field
func (c *Calculator) Value(field int) string {
	if field < 0 || field >= len(c.Fields) {
		return ""
	}
	return c.Fields[field].Input.Value()
}

// SetValue replaces the text of a field
func (c *Calculator) SetValue(field int, value string) {
	if field < 0 || field >= len(c.Fields) {
		return
	}
	c.Fields[field].Input.SetValue(value)
}

// Area returns the square meters the cisco input yields
func (c *Calculator) Area() domain.AreaMetrics {
	return domain.CalculateArea(c.Value(FieldCisco))
}

// Urban returns the furniture the urban input yields
func (c *Calculator) Urban() domain.UrbanMetrics {
	return domain.CalculateUrban(c.Value(FieldUrban))
}

// View renders both fields with their results
func (c *Calculator) View(f *application.Formatter) string {
	var b strings.Builder

	area := c.Area()
	b.WriteString(c.renderField(FieldCisco))
	b.WriteString("\n")
	b.WriteString(RenderLabelValue("m² de WPC", f.Decimal(area.SqMetersExact, 2)))
	b.WriteString(styles.MutedText.Render("  ≈ " + f.Count(int(area.SqMetersRounded), true, " m²")))
	b.WriteString("\n\n")

	urban := c.Urban()
	b.WriteString(c.renderField(FieldUrban))
	b.WriteString("\n")
	b.WriteString(RenderLabelValue("Bancas", f.Count(urban.Benches, true, "")))
	b.WriteString(styles.HelpSeparator.String())
	b.WriteString(RenderLabelValue("Paraderos", f.Count(urban.Shelters, true, "")))
	b.WriteString(styles.HelpSeparator.String())
	b.WriteString(RenderLabelValue("Metros de deck", f.Count(urban.DeckMeters, true, "")))
	b.WriteString("\n")

	if c.active {
		b.WriteString(RenderHelpLine(CalculatorKeys.Next, CalculatorKeys.Done))
	} else {
		b.WriteString(styles.MutedText.Render("pulsa i para editar"))
	}
	return b.String()
}

func (c *Calculator) renderField(i int) string {
	field := c.Fields[i]
	style := styles.InputField
	if c.active && i == c.Focused {
		style = styles.InputFocused
	}
	return styles.InputLabel.Render(field.Label) + "\n" + style.Render(field.Input.View())
}
