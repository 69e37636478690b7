// Package assessment scores learner input against the exercise table and
// records the outcome.
package assessment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/verte-zerg/lingocheck/internal/content"
	"github.com/verte-zerg/lingocheck/internal/model"
	"github.com/verte-zerg/lingocheck/internal/scoring"
)

// ErrNoInput reports that there was nothing to score. Blank input records
// nothing instead of saving 0%.
var ErrNoInput = errors.New("nothing to check")

// ScoreStore persists scores and attempts. *store.Store satisfies it.
type ScoreStore interface {
	GetScore(ctx context.Context, key model.ScoreKey) (int, bool, error)
	SetScore(ctx context.Context, key model.ScoreKey, percent int) error
	RemoveScore(ctx context.Context, key model.ScoreKey) error
	ListScores(ctx context.Context) ([]model.ScoreRecord, error)
	ClearScores(ctx context.Context) error
	InsertAttempt(ctx context.Context, attempt model.Attempt) (int64, error)
	ListAttempts(ctx context.Context, key model.ScoreKey, limit int) ([]model.Attempt, error)
}

// Outcome is the scored result of one check.
type Outcome struct {
	Key    model.ScoreKey
	Result model.ScoreResult
	// Expected holds the revealed answers: one per question for choices,
	// the reference sentence otherwise.
	Expected []string
	// Input is the text that was scored.
	Input string
	Hints []model.WordHint
}

// Service runs checks for every level and skill.
type Service struct {
	store ScoreStore
	table content.Table
	now   func() time.Time
}

// New returns a Service. A nil table uses the built-in content.
func New(store ScoreStore, table content.Table) *Service {
	if table == nil {
		table = content.Default()
	}
	return &Service{store: store, table: table, now: time.Now}
}

// Table returns the exercise table in use.
func (s *Service) Table() content.Table {
	return s.table
}

// CheckReading scores the selected reading answers and stores the percent.
// Unanswered questions count as wrong; at least one answer is required.
func (s *Service) CheckReading(ctx context.Context, level model.Level, selected []string) (Outcome, error) {
	ex, err := s.table.Exercise(level)
	if err != nil {
		return Outcome{}, err
	}
	return s.checkChoices(ctx, model.ScoreKey{Level: level, Skill: model.SkillReading}, ex.Reading.Questions, selected)
}

// CheckListening scores the selected listening answers and stores the percent.
func (s *Service) CheckListening(ctx context.Context, level model.Level, selected []string) (Outcome, error) {
	ex, err := s.table.Exercise(level)
	if err != nil {
		return Outcome{}, err
	}
	return s.checkChoices(ctx, model.ScoreKey{Level: level, Skill: model.SkillListening}, ex.Listening.Questions, selected)
}

// CheckSpeaking compares text with the speaking reference word by word.
func (s *Service) CheckSpeaking(ctx context.Context, level model.Level, text string) (Outcome, error) {
	ex, err := s.table.Exercise(level)
	if err != nil {
		return Outcome{}, err
	}
	if strings.TrimSpace(text) == "" {
		return Outcome{}, ErrNoInput
	}
	out := Outcome{
		Key:      model.ScoreKey{Level: level, Skill: model.SkillSpeaking},
		Result:   scoring.CompareWords(ex.Speaking.Reference, text),
		Expected: []string{ex.Speaking.Reference},
		Input:    text,
	}
	return out, s.record(ctx, out)
}

// CheckPronunciation compares a transcript with the pronunciation phrase
// character by character. The score is stored under the Writing skill.
func (s *Service) CheckPronunciation(ctx context.Context, level model.Level, transcript string) (Outcome, error) {
	ex, err := s.table.Exercise(level)
	if err != nil {
		return Outcome{}, err
	}
	if strings.TrimSpace(transcript) == "" {
		return Outcome{}, ErrNoInput
	}
	out := Outcome{
		Key:      model.ScoreKey{Level: level, Skill: model.SkillWriting},
		Result:   scoring.CompareChars(ex.Pronunciation, transcript),
		Expected: []string{ex.Pronunciation},
		Input:    transcript,
		Hints:    scoring.PhoneticHints(ex.Pronunciation, transcript),
	}
	return out, s.record(ctx, out)
}

// Results returns the latest percent per level and skill.
func (s *Service) Results(ctx context.Context) (model.ResultSheet, error) {
	records, err := s.store.ListScores(ctx)
	if err != nil {
		return model.ResultSheet{}, fmt.Errorf("failed to load scores: %w", err)
	}
	sheet := model.ResultSheet{Scores: make(map[model.ScoreKey]int, len(records))}
	for _, rec := range records {
		sheet.Scores[rec.Key] = rec.Percent
	}
	return sheet, nil
}

// Clear removes every stored score.
func (s *Service) Clear(ctx context.Context) error {
	if err := s.store.ClearScores(ctx); err != nil {
		return fmt.Errorf("failed to clear scores: %w", err)
	}
	return nil
}

// Remove deletes the score for key and reports whether one was stored.
func (s *Service) Remove(ctx context.Context, key model.ScoreKey) (bool, error) {
	if _, ok, err := s.store.GetScore(ctx, key); err != nil {
		return false, fmt.Errorf("failed to load score: %w", err)
	} else if !ok {
		return false, nil
	}
	if err := s.store.RemoveScore(ctx, key); err != nil {
		return false, fmt.Errorf("failed to remove score: %w", err)
	}
	return true, nil
}

// History returns up to n recent attempts for key, oldest first.
func (s *Service) History(ctx context.Context, key model.ScoreKey, n int) ([]model.Attempt, error) {
	attempts, err := s.store.ListAttempts(ctx, key, n)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return attempts, nil
}

func (s *Service) checkChoices(ctx context.Context, key model.ScoreKey, questions []content.Question, selected []string) (Outcome, error) {
	answered := false
	for _, sel := range selected {
		if sel != "" {
			answered = true
			break
		}
	}
	if !answered {
		return Outcome{}, ErrNoInput
	}
	expected := content.Answers(questions)
	out := Outcome{
		Key:      key,
		Result:   scoring.ScoreChoices(expected, selected),
		Expected: expected,
		Input:    strings.Join(selected, " | "),
	}
	return out, s.record(ctx, out)
}

func (s *Service) record(ctx context.Context, out Outcome) error {
	if err := s.store.SetScore(ctx, out.Key, out.Result.Percent); err != nil {
		return fmt.Errorf("failed to save score: %w", err)
	}
	if _, err := s.store.InsertAttempt(ctx, model.Attempt{
		Key:    out.Key,
		Result: out.Result,
		Input:  out.Input,
		At:     s.now(),
	}); err != nil {
		return fmt.Errorf("failed to save attempt: %w", err)
	}
	return nil
}
