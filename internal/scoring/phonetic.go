package scoring

import (
	"github.com/antzucaro/matchr"

	"github.com/verte-zerg/lingocheck/internal/model"
)

// PhoneticHints pairs every reference word with the closest transcript word.
//
// Closeness is Jaro-Winkler similarity; SoundsLike is set when both words
// share a Double Metaphone code. Hints never change a score.
func PhoneticHints(reference, transcript string) []model.WordHint {
	refTokens := Tokens(reference)
	heardTokens := Tokens(transcript)
	hints := make([]model.WordHint, 0, len(refTokens))
	for _, word := range refTokens {
		hint := model.WordHint{Word: word}
		for _, heard := range heardTokens {
			score := matchr.JaroWinkler(word, heard, false)
			if score > hint.Similarity {
				hint.Heard = heard
				hint.Similarity = score
			}
		}
		if hint.Heard != "" {
			hint.SoundsLike = hint.Heard == word || codesOverlap(word, hint.Heard)
		}
		hints = append(hints, hint)
	}
	return hints
}

func codesOverlap(a, b string) bool {
	ap, as := matchr.DoubleMetaphone(a)
	bp, bs := matchr.DoubleMetaphone(b)
	for _, x := range []string{ap, as} {
		if x == "" {
			continue
		}
		if x == bp || x == bs {
			return true
		}
	}
	return false
}
