package vecmath

import (
	"math"
	"strconv"
	"strings"
)

// Decimal notation is used for magnitudes in [sciLow, sciHigh).
const (
	sciLow  = 1e-3
	sciHigh = 1e7
)

// FormatFloat renders v with the shortest digits that parse back to v.
// Integral values keep a ".0" suffix, magnitudes outside [1e-3, 1e7) use
// "1.5E-4" style exponents, and non-finite values render as NaN, Infinity
// or -Infinity.
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	abs := math.Abs(v)
	if abs == 0 || (abs >= sciLow && abs < sciHigh) {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	s := strconv.FormatFloat(v, 'E', -1, 64)
	mant, exp, _ := strings.Cut(s, "E")
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	neg := strings.HasPrefix(exp, "-")
	exp = strings.TrimLeft(exp, "+-")
	exp = strings.TrimLeft(exp, "0")
	if neg {
		exp = "-" + exp
	}
	return mant + "E" + exp
}
