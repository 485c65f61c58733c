package encoding

import (
	"math"
	"strconv"
	"strings"
)

// ZeroExpField is the fixed literal emitted for a value of exactly zero.
const ZeroExpField = ".00000E+0"

// ParseNumeric converts a raw tabular field into a float64.
//
// The conversion is total: blank, unparseable, and non-finite inputs all
// yield 0. Value-level noise never aborts a record.
func ParseNumeric(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}

	return v
}

// FormatExpField renders a numeric value into a token of exactly width bytes
// using the PRV condensed scientific notation.
//
// The value is normalized to mantissa-and-exponent form by repeated division
// (or multiplication) by 10, the mantissa is formatted with 5 digits after
// the decimal point, and a leading zero digit before the decimal point is
// dropped, producing tokens like ".50000E-1" or "-1.23457E+4". This condensed
// form is one character narrower than standard scientific notation and is
// what downstream PRV consumers expect; do not "fix" it.
//
// Width handling:
//   - Tokens wider than width keep only their last width characters. The
//     most significant characters are discarded; this low-fidelity policy is
//     inherited from the legacy format.
//   - Narrower tokens are right-justified with leading spaces.
//
// Zero and non-finite values render as the ZeroExpField literal. The result
// always has exactly width bytes for any width >= 1; formatting never fails.
//
// Parameters:
//   - val: Numeric value to render
//   - width: Target token width in bytes
//
// Returns:
//   - string: Token of exactly width bytes
func FormatExpField(val float64, width int) string {
	var rep string
	if val == 0 || math.IsNaN(val) || math.IsInf(val, 0) {
		rep = ZeroExpField
	} else {
		sign := ""
		if val < 0 {
			sign = "-"
		}

		a := math.Abs(val)
		exp := 0
		for a >= 10.0 {
			a /= 10.0
			exp++
		}
		for a < 0.1 && a != 0.0 {
			a *= 10.0
			exp--
		}

		mantissa := strconv.FormatFloat(a, 'f', 5, 64)
		mantissa = strings.TrimPrefix(mantissa, "0")

		expSign := "+"
		if exp < 0 {
			expSign = "-"
			exp = -exp
		}

		rep = sign + mantissa + "E" + expSign + strconv.Itoa(exp)
	}

	if len(rep) > width {
		rep = rep[len(rep)-width:]
	}
	if len(rep) < width {
		rep = strings.Repeat(" ", width-len(rep)) + rep
	}

	return rep
}
