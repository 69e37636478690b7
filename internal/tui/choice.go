package tui

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/lingocheck/internal/content"
)

// choiceSet tracks the selections for a block of multiple-choice questions.
type choiceSet struct {
	questions []content.Question
	selected  []int
	focus     int
}

func newChoiceSet(questions []content.Question) choiceSet {
	selected := make([]int, len(questions))
	for i := range selected {
		selected[i] = -1
	}
	return choiceSet{questions: questions, selected: selected}
}

func (c *choiceSet) moveFocus(delta int) {
	if len(c.questions) == 0 {
		return
	}
	c.focus = (c.focus + delta + len(c.questions)) % len(c.questions)
}

// cycle moves the selection of the focused question by delta options.
func (c *choiceSet) cycle(delta int) {
	if len(c.questions) == 0 {
		return
	}
	n := len(c.questions[c.focus].Options)
	if n == 0 {
		return
	}
	cur := c.selected[c.focus]
	if cur < 0 {
		if delta > 0 {
			cur = -1
		} else {
			cur = 0
		}
	}
	c.selected[c.focus] = (cur + delta + n) % n
}

// pick selects option i (zero-based) of the focused question.
func (c *choiceSet) pick(i int) bool {
	if len(c.questions) == 0 || i < 0 || i >= len(c.questions[c.focus].Options) {
		return false
	}
	c.selected[c.focus] = i
	return true
}

// answers returns the selected option text per question, "" when unanswered.
func (c choiceSet) answers() []string {
	out := make([]string, len(c.questions))
	for i, q := range c.questions {
		if idx := c.selected[i]; idx >= 0 {
			out[i] = q.Options[idx]
		}
	}
	return out
}

// render draws every question. Correct answers are revealed only when
// expected is non-nil.
func (c choiceSet) render(expected []string) string {
	var b strings.Builder
	for qi, q := range c.questions {
		marker := "  "
		if qi == c.focus {
			marker = focusStyle.Render("> ")
		}
		fmt.Fprintf(&b, "%s%d. %s\n", marker, qi+1, q.Prompt)
		for oi, opt := range q.Options {
			box := "( )"
			style := pendingStyle
			if c.selected[qi] == oi {
				box = "(•)"
				style = correctStyle
			}
			if expected != nil && qi < len(expected) {
				switch {
				case opt == expected[qi]:
					style = goodStyle
				case c.selected[qi] == oi:
					style = incorrectStyle
				}
			}
			fmt.Fprintf(&b, "     %s\n", style.Render(fmt.Sprintf("%s %d) %s", box, oi+1, opt)))
		}
		if expected != nil && qi < len(expected) {
			got := ""
			if idx := c.selected[qi]; idx >= 0 {
				got = q.Options[idx]
			}
			if got == expected[qi] {
				fmt.Fprintf(&b, "     %s\n", goodStyle.Render("correct"))
			} else {
				fmt.Fprintf(&b, "     %s\n", incorrectStyle.Render("answer: "+expected[qi]))
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
