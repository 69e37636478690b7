// Package content provides the per-level exercise table.
package content

import (
	"fmt"

	"github.com/verte-zerg/lingocheck/internal/model"
)

// Question is a multiple-choice question with exactly one expected answer.
type Question struct {
	Prompt  string   `toml:"prompt"`
	Options []string `toml:"options"`
	Answer  string   `toml:"answer"`
}

// Reading is a passage followed by comprehension questions.
type Reading struct {
	Passage   string     `toml:"passage"`
	Questions []Question `toml:"questions"`
}

// Listening is a script read aloud followed by comprehension questions.
type Listening struct {
	Script    string     `toml:"script"`
	Questions []Question `toml:"questions"`
}

// Speaking asks the learner to describe a scene; Reference is the expected sentence.
type Speaking struct {
	Prompt    string `toml:"prompt"`
	Reference string `toml:"reference"`
}

// Exercise bundles every task of one level.
type Exercise struct {
	Reading       Reading   `toml:"reading"`
	Speaking      Speaking  `toml:"speaking"`
	Listening     Listening `toml:"listening"`
	Pronunciation string    `toml:"pronunciation"`
}

// Table maps levels to exercises. It is treated as read-only once built.
type Table map[model.Level]Exercise

// Exercise returns the exercise for level.
func (t Table) Exercise(level model.Level) (Exercise, error) {
	ex, ok := t[level]
	if !ok {
		return Exercise{}, fmt.Errorf("no exercise for level %s", level)
	}
	return ex, nil
}

// Answers returns the expected answers of questions in order.
func Answers(questions []Question) []string {
	out := make([]string, len(questions))
	for i, q := range questions {
		out[i] = q.Answer
	}
	return out
}

// Validate checks that every level is present and every question is answerable.
func (t Table) Validate() error {
	for _, level := range model.Levels() {
		ex, ok := t[level]
		if !ok {
			return fmt.Errorf("level %s: missing exercise", level)
		}
		if err := validateQuestions(ex.Reading.Questions); err != nil {
			return fmt.Errorf("level %s reading: %w", level, err)
		}
		if err := validateQuestions(ex.Listening.Questions); err != nil {
			return fmt.Errorf("level %s listening: %w", level, err)
		}
		if ex.Speaking.Reference == "" {
			return fmt.Errorf("level %s: speaking reference is empty", level)
		}
		if ex.Pronunciation == "" {
			return fmt.Errorf("level %s: pronunciation phrase is empty", level)
		}
	}
	return nil
}

func validateQuestions(questions []Question) error {
	if len(questions) == 0 {
		return fmt.Errorf("no questions")
	}
	for i, q := range questions {
		if len(q.Options) < 2 {
			return fmt.Errorf("question %d: needs at least 2 options", i+1)
		}
		found := false
		for _, opt := range q.Options {
			if opt == q.Answer {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("question %d: answer %q is not one of the options", i+1, q.Answer)
		}
	}
	return nil
}
