package life

import (
	"fmt"
	"strings"
	"unicode"
)

// Rule holds a life-like rule as two lookup tables indexed by live
// neighbour count. Birth applies to dead cells, Survive to live ones.
// Entries are 0 or 1 so the stepping kernels can use them arithmetically.
type Rule struct {
	Birth   [9]uint8
	Survive [9]uint8
}

// DefaultRule returns Conway's Game of Life, B3/S23.
func DefaultRule() Rule {
	var r Rule
	r.Birth[3] = 1
	r.Survive[2] = 1
	r.Survive[3] = 1
	return r
}

// String renders the rule in canonical B<digits>/S<digits> form.
func (r Rule) String() string {
	var sb strings.Builder
	sb.WriteByte('B')
	for n := 0; n <= 8; n++ {
		if r.Birth[n] != 0 {
			sb.WriteByte(byte('0' + n))
		}
	}
	sb.WriteString("/S")
	for n := 0; n <= 8; n++ {
		if r.Survive[n] != 0 {
			sb.WriteByte(byte('0' + n))
		}
	}
	return sb.String()
}

// RuleWarning reports digit characters in a rulestring that name an
// impossible neighbour count. It is advisory: the rule returned alongside
// it is valid and every recognised digit has been applied.
type RuleWarning struct {
	Invalid []rune // distinct offending characters, first-seen order
}

func (w *RuleWarning) Error() string {
	var sb strings.Builder
	sb.WriteString("rulestring: ignored digits outside 0-8: ")
	for i, c := range w.Invalid {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(c)
	}
	return sb.String()
}

// ParseRule parses a rulestring such as "B3/S23" into rule tables.
//
// Spaces and commas are stripped first. The B and S markers are matched
// case-insensitively; if neither is present the default Game of Life rule
// is returned. Each section is scanned up to the next marker character.
// Digits 0-8 set table entries; any other digit is collected into a
// *RuleWarning returned as the error. ParseRule never fails: the returned
// Rule is always usable, and the error, when non-nil, is advisory only.
func ParseRule(s string) (Rule, error) {
	cleaned := strings.Map(func(c rune) rune {
		if c == ' ' || c == ',' {
			return -1
		}
		return c
	}, s)

	posB := strings.IndexAny(cleaned, "Bb")
	posS := strings.IndexAny(cleaned, "Ss")
	if posB < 0 && posS < 0 {
		return DefaultRule(), nil
	}

	var r Rule
	var invalid []rune
	scan := func(from int, table *[9]uint8) {
		for _, c := range cleaned[from:] {
			switch {
			case c == '/' || c == 'B' || c == 'b' || c == 'S' || c == 's':
				return
			case c >= '0' && c <= '8':
				table[c-'0'] = 1
			case c == '9' || unicode.IsDigit(c):
				if !containsRune(invalid, c) {
					invalid = append(invalid, c)
				}
			}
		}
	}
	if posB >= 0 {
		scan(posB+1, &r.Birth)
	}
	if posS >= 0 {
		scan(posS+1, &r.Survive)
	}

	if len(invalid) > 0 {
		return r, &RuleWarning{Invalid: invalid}
	}
	return r, nil
}

// MustParseRule is ParseRule for known-good literals; it panics only on a
// rule that produces a warning.
func MustParseRule(s string) Rule {
	r, err := ParseRule(s)
	if err != nil {
		panic(fmt.Sprintf("bad rulestring %q: %v", s, err))
	}
	return r
}

func containsRune(rs []rune, c rune) bool {
	for _, r := range rs {
		if r == c {
			return true
		}
	}
	return false
}
