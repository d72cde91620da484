package output

import (
	"math"
)

// RoundFloat rounds a float to max 6 decimal places for deterministic output
func RoundFloat(f float64) float64 {
	multiplier := math.Pow(10, 6)
	return math.Round(f*multiplier) / multiplier
}

// Round2 rounds a float to 2 decimal places. Relevance scores are reported
// at this precision.
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}
