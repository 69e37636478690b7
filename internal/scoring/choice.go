package scoring

import "github.com/verte-zerg/lingocheck/internal/model"

// ScoreChoices awards one point per question whose selected option equals
// the expected answer exactly. Unanswered questions count as wrong.
func ScoreChoices(expected, selected []string) model.ScoreResult {
	correct := 0
	for i, want := range expected {
		if i < len(selected) && selected[i] != "" && selected[i] == want {
			correct++
		}
	}
	return model.ScoreResult{
		Percent: percentOf(correct, len(expected)),
		Matches: correct,
		Total:   len(expected),
	}
}
