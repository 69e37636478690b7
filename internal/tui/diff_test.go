package tui

import (
	"strings"
	"testing"
)

func TestBuildDiffRunesMarksPositions(t *testing.T) {
	runes := buildDiffRunes("I have a cat.", "i have a bat")
	if len(runes) != len("i have a cat") {
		t.Fatalf("expected %d runes, got %d", len("i have a cat"), len(runes))
	}
	if runes[0].s != correctStyle.Render("i") {
		t.Fatalf("expected correct style for first rune")
	}
	if runes[9].s != incorrectStyle.Render("c") {
		t.Fatalf("expected incorrect style for mismatched rune")
	}
	if runes[10].s != correctStyle.Render("a") {
		t.Fatalf("expected correct style after mismatch")
	}
}

func TestBuildDiffRunesMissingTail(t *testing.T) {
	runes := buildDiffRunes("a b", "a")
	if runes[1].s != pendingStyle.Render(" ") {
		t.Fatalf("expected pending style for missing space")
	}
	if runes[2].s != pendingStyle.Render("b") {
		t.Fatalf("expected pending style for missing rune")
	}
}

func TestBuildDiffRunesWrongSpaceDot(t *testing.T) {
	runes := buildDiffRunes("a b", "abb")
	if runes[1].s != incorrectStyle.Render("•") {
		t.Fatalf("expected red dot for wrong space")
	}
}

func TestWrapStyledRunesBreaksAtSpaces(t *testing.T) {
	runes := plainRunes("one two three")
	got := wrapStyledRunes(runes, 7)
	if got != "one two\nthree" {
		t.Fatalf("unexpected wrap: %q", got)
	}
}

func TestWrapStyledRunesSplitsLongWords(t *testing.T) {
	got := wrapStyledRunes(plainRunes("abcdefgh ij"), 3)
	if got != "abc\ndef\ngh\nij" {
		t.Fatalf("unexpected wrap: %q", got)
	}
}

func TestWrapStyledRunesNoWidth(t *testing.T) {
	if got := wrapStyledRunes(plainRunes("a b"), 0); got != "a b" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func plainRunes(s string) []styledRune {
	out := make([]styledRune, 0, len(s))
	for _, r := range s {
		out = append(out, styledRune{s: string(r), width: 1, isSpace: r == ' '})
	}
	return out
}

func TestChoiceSetCycleAndAnswers(t *testing.T) {
	c := newChoiceSet(nil)
	c.cycle(1)
	c.moveFocus(1)
	if len(c.answers()) != 0 {
		t.Fatalf("empty set should have no answers")
	}

	m, _ := newTestModel(t, nil)
	set := newChoiceSet(m.svc.Table()["A1"].Reading.Questions)
	set.cycle(1)
	set.moveFocus(-1)
	set.cycle(-1)
	answers := set.answers()
	if answers[0] != "At 6 o’clock" || answers[2] != "Because breakfast is big" || answers[1] != "" {
		t.Fatalf("unexpected answers: %v", answers)
	}
	if !strings.Contains(set.render(nil), "(•) 1) At 6 o’clock") {
		t.Fatalf("expected selected marker:\n%s", set.render(nil))
	}
}
