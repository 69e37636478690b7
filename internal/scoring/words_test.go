package scoring

import (
	"testing"

	"github.com/verte-zerg/lingocheck/internal/model"
)

func TestCompareWordsExample(t *testing.T) {
	got := CompareWords("A black cat is sitting in a box", "a black cat sitting box")
	want := model.ScoreResult{Percent: 63, Matches: 5, Total: 8}
	if got != want {
		t.Fatalf("CompareWords = %+v, want %+v", got, want)
	}
}

func TestCompareWordsEmptyCandidate(t *testing.T) {
	got := CompareWords("I have a little kitten.", "")
	want := model.ScoreResult{Percent: 0, Matches: 0, Total: 5}
	if got != want {
		t.Fatalf("CompareWords = %+v, want %+v", got, want)
	}
}

func TestCompareWordsEmptyReference(t *testing.T) {
	got := CompareWords(" ... ", "anything at all")
	if got != (model.ScoreResult{}) {
		t.Fatalf("expected zero result, got %+v", got)
	}
}

func TestCompareWordsCapsRepeats(t *testing.T) {
	got := CompareWords("a a", "a a a")
	if got.Matches != 2 || got.Total != 2 || got.Percent != 100 {
		t.Fatalf("expected repeats to be capped, got %+v", got)
	}
	got = CompareWords("a b", "a a a")
	if got.Matches != 1 || got.Percent != 50 {
		t.Fatalf("expected single match, got %+v", got)
	}
}

func TestCompareWordsOrderInvariant(t *testing.T) {
	ref := "Two children are walking near the mountains"
	perms := []string{
		"children two walking are near mountains the",
		"the mountains near walking are children two",
		"near two the children mountains walking are",
	}
	want := CompareWords(ref, "two children are walking near the mountains")
	for _, p := range perms {
		if got := CompareWords(ref, p); got != want {
			t.Fatalf("CompareWords(%q) = %+v, want %+v", p, got, want)
		}
	}
}

func TestCompareWordsBounds(t *testing.T) {
	refs := []string{"", "a", "a a b", "People are working remotely using laptops and video calls"}
	cands := []string{"", "a", "a a a a a", "laptops laptops video calls people", "zzz"}
	for _, r := range refs {
		for _, c := range cands {
			got := CompareWords(r, c)
			if got.Matches > got.Total {
				t.Fatalf("matches > total for %q/%q: %+v", r, c, got)
			}
			if got.Percent < 0 || got.Percent > 100 {
				t.Fatalf("percent out of range for %q/%q: %+v", r, c, got)
			}
		}
	}
}
