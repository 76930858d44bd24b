package domain

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Conversion constants for the cisco calculators
const (
	KgPerTon          = 1000
	KgPerSquareMeter  = 9   // cisco needed per m² of WPC board
	KgPerBench        = 85  // urban bench
	KgPerShelter      = 450 // bus shelter
	KgPerDeckMeter    = 17  // linear meter of decking
	AreaRoundingStep  = 1000
	DefaultCiscoInput = "196"
	DefaultUrbanInput = "50"
)

// AreaMetrics is the board area produced from a cisco tonnage
type AreaMetrics struct {
	InputTons       float64
	SqMetersExact   float64
	SqMetersRounded float64
}

// UrbanMetrics is the urban furniture equivalent of a tonnage
type UrbanMetrics struct {
	InputTons  float64
	Benches    int
	Shelters   int
	DeckMeters int
}

var leadingNumber = regexp.MustCompile(`^[+-]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?`)

// ParseTons reads the leading decimal number of input, ignoring surrounding
// whitespace and any trailing text. Anything unparseable is 0.
func ParseTons(input string) float64 {
	m := leadingNumber.FindString(strings.TrimSpace(input))
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// AreaFromTons applies m² = tons*1000/9, rounded to the nearest thousand
func AreaFromTons(tons float64) AreaMetrics {
	exact := tons * KgPerTon / KgPerSquareMeter
	return AreaMetrics{
		InputTons:       tons,
		SqMetersExact:   exact,
		SqMetersRounded: math.Round(exact/AreaRoundingStep) * AreaRoundingStep,
	}
}

// UrbanFromTons converts tons into whole benches, shelters and deck meters
func UrbanFromTons(tons float64) UrbanMetrics {
	kg := tons * KgPerTon
	return UrbanMetrics{
		InputTons:  tons,
		Benches:    floorInt(kg / KgPerBench),
		Shelters:   floorInt(kg / KgPerShelter),
		DeckMeters: floorInt(kg / KgPerDeckMeter),
	}
}

// floorInt floors v, saturating at the int range
func floorInt(v float64) int {
	v = math.Floor(v)
	switch {
	case v >= math.MaxInt:
		return math.MaxInt
	case v <= math.MinInt:
		return math.MinInt
	}
	return int(v)
}

// CalculateArea parses input and returns its area metrics
func CalculateArea(input string) AreaMetrics {
	return AreaFromTons(ParseTons(input))
}

// CalculateUrban parses input and returns its urban metrics
func CalculateUrban(input string) UrbanMetrics {
	return UrbanFromTons(ParseTons(input))
}

