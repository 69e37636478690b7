package scoring

import (
	"testing"

	"github.com/verte-zerg/lingocheck/internal/model"
)

func TestCompareCharsIdentity(t *testing.T) {
	for _, s := range []string{"I have a little kitten.", "Remote work improves productivity and work-life balance.", "x"} {
		if got := CompareChars(s, s); got.Percent != 100 {
			t.Fatalf("CompareChars(%q, itself) = %+v, want 100%%", s, got)
		}
	}
}

func TestCompareCharsBothEmpty(t *testing.T) {
	got := CompareChars("", "  ?! ")
	want := model.ScoreResult{Percent: 100, Matches: 0, Total: 0}
	if got != want {
		t.Fatalf("CompareChars = %+v, want %+v", got, want)
	}
}

func TestCompareCharsEmptyReference(t *testing.T) {
	got := CompareChars("", "Hello")
	want := model.ScoreResult{Percent: 0, Matches: 0, Total: 5}
	if got != want {
		t.Fatalf("CompareChars = %+v, want %+v", got, want)
	}
}

func TestCompareCharsPositional(t *testing.T) {
	// "i have a little kitten" is 22 characters long.
	got := CompareChars("I have a little kitten.", "i have a little kitten")
	if got.Total != 22 || got.Matches != 22 {
		t.Fatalf("unexpected result: %+v", got)
	}
	got = CompareChars("abcd", "xbcd")
	if got.Matches != 3 || got.Total != 4 || got.Percent != 75 {
		t.Fatalf("unexpected result: %+v", got)
	}
	// A leading insertion shifts every position.
	got = CompareChars("abcd", "xabcd")
	if got.Matches != 0 || got.Total != 5 || got.Percent != 0 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestCompareCharsEmptyCandidate(t *testing.T) {
	got := CompareChars("I have a little kitten.", "")
	if got.Matches != 0 || got.Total != 22 || got.Percent != 0 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestCharMatches(t *testing.T) {
	got := CharMatches("ab cd", "ab xd!")
	want := []bool{true, true, true, false, true}
	if len(got) != len(want) {
		t.Fatalf("expected %d positions, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: got %v, want %v", i, got[i], want[i])
		}
	}
}
