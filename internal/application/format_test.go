package application

import (
	"testing"

	"golang.org/x/text/language"

	"relato/internal/domain"
)

func TestFormatter_Count(t *testing.T) {
	f := NewFormatter(language.English)

	tests := []struct {
		name     string
		value    int
		grouping bool
		suffix   string
		want     string
	}{
		{"grouped with plus", 195000, true, "+", "195,000+"},
		{"grouped", 540000, true, "", "540,000"},
		{"percentage", 35, false, "%", "35%"},
		{"plain", 22, false, "", "22"},
		{"small grouped", 14, true, "", "14"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Count(tt.value, tt.grouping, tt.suffix); got != tt.want {
				t.Errorf("Count() = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestFormatter_CounterFunc(t *testing.T) {
	f := NewFormatter(language.English)
	fn := f.CounterFunc(domain.CounterSpec{Grouping: true, Suffix: "+"})
	if got := fn(195000); got != "195,000+" {
		t.Errorf("expected 195,000+, got %q", got)
	}
}

func TestFormatter_Decimal(t *testing.T) {
	f := NewFormatter(language.English)
	if got := f.Decimal(21777.777, 2); got != "21,777.78" {
		t.Errorf("expected 21,777.78, got %q", got)
	}
}

func TestFormatter_Number(t *testing.T) {
	f := NewFormatter(language.English)

	tests := []struct {
		value float64
		want  string
	}{
		{196, "196"},
		{12.5, "12.5"},
		{0.25, "0.25"},
		{1234.75, "1,234.75"},
		{-3, "-3"},
		{1.0 / 3, "0.333333"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := f.Number(tt.value); got != tt.want {
				t.Errorf("Number(%v) = %q, expected %q", tt.value, got, tt.want)
			}
		})
	}
}
