// Package scoring compares learner input against reference answers.
package scoring

import (
	"fmt"
	"strings"
	"unicode"
)

// Normalize lowercases s, keeps only ASCII letters, digits and whitespace,
// collapses whitespace runs into single spaces and trims the result.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			r += 'a' - 'A'
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case unicode.IsSpace(r):
			pendingSpace = true
			continue
		default:
			continue
		}
		if pendingSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		pendingSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeValue normalizes the string form of v. A nil value yields "".
func NormalizeValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return Normalize(val)
	case fmt.Stringer:
		return Normalize(val.String())
	default:
		return Normalize(fmt.Sprint(val))
	}
}

// Tokens splits the normalized form of s into words.
func Tokens(s string) []string {
	n := Normalize(s)
	if n == "" {
		return nil
	}
	return strings.Split(n, " ")
}

func percentOf(matches, total int) int {
	if total <= 0 {
		return 0
	}
	return (matches*200 + total) / (2 * total)
}
