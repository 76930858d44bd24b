package application

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"relato/internal/domain"
)

// DefaultLocale groups numbers the way the page's audience reads them
var DefaultLocale = language.MustParse("es-CO")

// Formatter renders counter and calculator values for a locale
type Formatter struct {
	printer *message.Printer
}

// NewFormatter creates a formatter printing numbers the way tag groups them
func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{printer: message.NewPrinter(tag)}
}

// Count formats an integer, grouped when asked, followed by suffix
func (f *Formatter) Count(v int, grouping bool, suffix string) string {
	if grouping {
		return f.printer.Sprintf("%d", v) + suffix
	}
	return strconv.Itoa(v) + suffix
}

// Decimal formats v with locale grouping and the given fraction digits
func (f *Formatter) Decimal(v float64, digits int) string {
	return f.printer.Sprintf("%."+strconv.Itoa(digits)+"f", v)
}

// maxFraction caps the fraction digits Number prints
const maxFraction = 6

// Number formats v with locale grouping and as many fraction digits as its
// shortest representation needs, so input echoes back unrounded.
func (f *Formatter) Number(v float64) string {
	digits := 0
	if s := strconv.FormatFloat(v, 'f', -1, 64); strings.Contains(s, ".") {
		digits = min(len(s)-strings.IndexByte(s, '.')-1, maxFraction)
	}
	return f.Decimal(v, digits)
}

// CounterFunc returns the formatter of a declared counter
func (f *Formatter) CounterFunc(spec domain.CounterSpec) func(int) string {
	return func(v int) string {
		return f.Count(v, spec.Grouping, spec.Suffix)
	}
}
