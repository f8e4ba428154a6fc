// Package numfmt serializes computed numbers back into script source text.
//
// Script literals are type-sensitive: a float must always carry a decimal
// point, so integral results are written as "3.0" rather than "3".
package numfmt

import (
	"math"
	"strconv"
	"strings"
)

// Tolerance is the threshold below which two values are treated as equal.
const Tolerance = 1e-9

// Precision classes used across the patch library.
const (
	Multiplier = 3 // gameplay multipliers, costs, colours
	Health     = 4 // health multipliers
	Physics    = 6 // small quantities such as XP loss fractions
)

// Format renders x with the given number of decimals, strips trailing zeros
// and re-appends ".0" when nothing is left after the point.
func Format(x float64, decimals int) string {
	s := strconv.FormatFloat(x, 'f', decimals, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "" || s == "-" {
		s = "0"
	}
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Format3 formats with multiplier precision.
func Format3(x float64) string { return Format(x, Multiplier) }

// Format4 formats with health precision.
func Format4(x float64) string { return Format(x, Health) }

// Format6 formats with physics precision.
func Format6(x float64) string { return Format(x, Physics) }

// FormatFixed renders x with exactly the given number of decimals.
func FormatFixed(x float64, decimals int) string {
	return strconv.FormatFloat(x, 'f', decimals, 64)
}

// Equal reports whether a and b differ by less than Tolerance.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Round rounds the exact binary value of x to the given number of decimals
// the way FormatFloat does. Exact ties go to even (0.125 -> 0.12), so
// Round(x, d) always formats back to the digits Format(x, d) would produce.
func Round(x float64, decimals int) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', decimals, 64), 64)
	if err != nil {
		return x
	}
	return v
}

// RoundInt rounds half to even, the rule used by the integer scalers.
func RoundInt(x float64) int {
	return int(math.RoundToEven(x))
}

// Parse reads a numeric literal as written in a script.
func Parse(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
