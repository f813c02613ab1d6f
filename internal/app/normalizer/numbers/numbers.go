// Package numbers coerces spreadsheet text such as "$1,234.50", " 2,000 " or "45%" into
// numbers.
package numbers

import (
	"math"
	"strconv"
	"strings"
)

// Normalize strips separators, currency and percent signs, quotes and whitespace, then
// parses the longest leading run of the form -?digits[.digits]. It fails when no digit
// survives.
func Normalize(s string) (float64, bool) {
	var b strings.Builder
	b.Grow(len(s))

	seenDigit, seenDot, seenMinus := false, false, false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			seenDigit = true
		case r == '.':
			if seenDot {
				return parse(b.String(), seenDigit)
			}
			b.WriteRune(r)
			seenDot = true
		case r == '-':
			if seenDigit || seenDot || seenMinus {
				return parse(b.String(), seenDigit)
			}
			b.WriteRune(r)
			seenMinus = true
		default:
			// separators, sigils, letters
		}
	}
	return parse(b.String(), seenDigit)
}

func parse(s string, hasDigit bool) (float64, bool) {
	if !hasDigit {
		return 0, false
	}
	s = strings.TrimSuffix(s, ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseCount reads a case count: truncated to an integer, never negative, 0 when
// unparseable.
func ParseCount(s string) int {
	v, ok := Normalize(s)
	if !ok || v <= 0 || math.IsInf(v, 0) {
		return 0
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(v)
}

// ParseCost reads a money amount, never negative, 0 when unparseable.
func ParseCost(s string) float64 {
	v, ok := Normalize(s)
	if !ok || v < 0 || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParseGoal returns NaN when s holds no number.
func ParseGoal(s string) float64 {
	v, ok := Normalize(s)
	if !ok {
		return math.NaN()
	}
	return v
}
