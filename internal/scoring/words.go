package scoring

import "github.com/verte-zerg/lingocheck/internal/model"

// CompareWords scores candidate against reference by word overlap.
//
// Each reference word can be matched as many times as it occurs in the
// reference; candidate order and extra candidate words do not matter.
// Total is the number of reference words.
func CompareWords(reference, candidate string) model.ScoreResult {
	refTokens := Tokens(reference)
	if len(refTokens) == 0 {
		return model.ScoreResult{}
	}
	remaining := make(map[string]int, len(refTokens))
	for _, tok := range refTokens {
		remaining[tok]++
	}
	matches := 0
	for _, tok := range Tokens(candidate) {
		if remaining[tok] > 0 {
			remaining[tok]--
			matches++
		}
	}
	return model.ScoreResult{
		Percent: percentOf(matches, len(refTokens)),
		Matches: matches,
		Total:   len(refTokens),
	}
}
