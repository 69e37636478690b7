package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/lingocheck/internal/scoring"
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
}

// buildDiffRunes styles the normalized target by positional agreement with
// the normalized transcript. Positions past the end of the transcript are
// shown as missing.
func buildDiffRunes(target, heard string) []styledRune {
	ref := scoring.Normalize(target)
	matches := scoring.CharMatches(target, heard)
	heardLen := len(scoring.Normalize(heard))

	out := make([]styledRune, 0, len(ref))
	for i, r := range ref {
		displayed := r
		style := incorrectStyle
		switch {
		case matches[i]:
			style = correctStyle
		case i >= heardLen:
			style = pendingStyle
		case r == ' ':
			displayed = '•'
		}
		out = append(out, styledRune{
			s:       style.Render(string(displayed)),
			width:   runewidth.RuneWidth(displayed),
			isSpace: r == ' ',
		})
	}
	return out
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapStyledRunes breaks runes into lines no wider than width, preferring
// breaks at spaces. Words longer than width are split.
func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var lines []string
	var line []styledRune
	lineWidth := 0
	flush := func() {
		lines = append(lines, renderStyledRunes(line))
		line = nil
		lineWidth = 0
	}
	for _, word := range splitWords(runes) {
		var lead []styledRune
		if word[0].isSpace {
			lead, word = word[:1], word[1:]
		}
		if lineWidth > 0 && lineWidth+widthOf(lead)+widthOf(word) > width {
			flush()
		}
		if lineWidth > 0 {
			line = append(line, lead...)
			lineWidth += widthOf(lead)
		}
		for _, item := range word {
			if lineWidth+item.width > width && lineWidth > 0 {
				flush()
			}
			line = append(line, item)
			lineWidth += item.width
		}
	}
	if len(line) > 0 || len(lines) == 0 {
		flush()
	}
	return strings.Join(lines, "\n")
}

// splitWords groups runes into words; every word after the first starts
// with the space that preceded it.
func splitWords(runes []styledRune) [][]styledRune {
	var words [][]styledRune
	start := 0
	for i := 1; i <= len(runes); i++ {
		if i == len(runes) || runes[i].isSpace {
			if i > start {
				words = append(words, runes[start:i])
			}
			start = i
		}
	}
	return words
}

func widthOf(runes []styledRune) int {
	total := 0
	for _, item := range runes {
		total += item.width
	}
	return total
}
