package header_mapping_service

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize folds compatibility characters (full-width letters, non-breaking spaces),
// lowercases and collapses whitespace runs to one space.
func Normalize(s string) string {
	s = norm.NFKC.String(s)
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Stripped is the lowercase text with every whitespace character removed.
func Stripped(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, Normalize(s))
}

// Alnum keeps only ASCII letters and digits, lowercased.
func Alnum(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return -1
		}
	}, Normalize(s))
}

// Cell is one header cell in every form the rules match against.
type Cell struct {
	Raw      string
	Norm     string
	Stripped string
	Alnum    string
}

func NewCell(raw string) Cell {
	n := Normalize(raw)
	return Cell{
		Raw:      raw,
		Norm:     n,
		Stripped: strings.ReplaceAll(n, " ", ""),
		Alnum:    Alnum(raw),
	}
}

// IsGoal reports whether the header names a goal or target column.
func (c Cell) IsGoal() bool {
	return strings.Contains(c.Norm, "goal") || strings.Contains(c.Norm, "target")
}

func (c Cell) HasCurrency() bool {
	return strings.ContainsAny(c.Raw, "$€£")
}
