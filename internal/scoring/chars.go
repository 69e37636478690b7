package scoring

import "github.com/verte-zerg/lingocheck/internal/model"

// CompareChars scores positional character agreement of the normalized strings.
//
// Characters are compared at equal offsets only, so a single insertion or
// deletion shifts every following position. Two empty strings count as a
// perfect match.
func CompareChars(reference, candidate string) model.ScoreResult {
	a := Normalize(reference)
	b := Normalize(candidate)
	if a == "" && b == "" {
		return model.ScoreResult{Percent: 100}
	}
	if a == "" {
		return model.ScoreResult{Total: len(b)}
	}
	matches := 0
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] == b[i] {
			matches++
		}
	}
	total := max(len(a), len(b))
	return model.ScoreResult{
		Percent: percentOf(matches, total),
		Matches: matches,
		Total:   total,
	}
}

// CharMatches reports, for each position of the normalized reference, whether
// the normalized candidate has the same character there.
func CharMatches(reference, candidate string) []bool {
	a := Normalize(reference)
	b := Normalize(candidate)
	out := make([]bool, len(a))
	for i := 0; i < len(a) && i < len(b); i++ {
		out[i] = a[i] == b[i]
	}
	return out
}
