package assessment

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/lingocheck/internal/model"
	"github.com/verte-zerg/lingocheck/internal/store"
)

func newService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "lingocheck.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := st.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return New(st, nil), st
}

func TestCheckReadingStoresPercent(t *testing.T) {
	svc, st := newService(t)
	ctx := context.Background()

	out, err := svc.CheckReading(ctx, model.LevelA1, []string{"At 7 o’clock", "Coffee and eggs", "Because mornings are quiet"})
	if err != nil {
		t.Fatalf("check reading: %v", err)
	}
	if out.Result != (model.ScoreResult{Percent: 67, Matches: 2, Total: 3}) {
		t.Fatalf("unexpected result: %+v", out.Result)
	}
	if len(out.Expected) != 3 || out.Expected[1] != "Tea and toast" {
		t.Fatalf("unexpected expected answers: %v", out.Expected)
	}
	got, ok, err := st.GetScore(ctx, model.ScoreKey{Level: model.LevelA1, Skill: model.SkillReading})
	if err != nil || !ok || got != 67 {
		t.Fatalf("expected stored 67, got %d ok=%v err=%v", got, ok, err)
	}
}

func TestCheckListeningPartialAnswers(t *testing.T) {
	svc, _ := newService(t)
	out, err := svc.CheckListening(context.Background(), model.LevelA2, []string{"Zoo"})
	if err != nil {
		t.Fatalf("check listening: %v", err)
	}
	if out.Result.Matches != 1 || out.Result.Total != 3 || out.Result.Percent != 33 {
		t.Fatalf("unexpected result: %+v", out.Result)
	}
}

func TestCheckChoicesRequiresAnswer(t *testing.T) {
	svc, st := newService(t)
	ctx := context.Background()
	_, err := svc.CheckReading(ctx, model.LevelB1, []string{"", "", ""})
	if !errors.Is(err, ErrNoInput) {
		t.Fatalf("expected ErrNoInput, got %v", err)
	}
	records, err := st.ListScores(ctx)
	if err != nil {
		t.Fatalf("list scores: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no scores, got %v", records)
	}
}

func TestCheckSpeaking(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	out, err := svc.CheckSpeaking(ctx, model.LevelA1, "black cat in a box")
	if err != nil {
		t.Fatalf("check speaking: %v", err)
	}
	if out.Result != (model.ScoreResult{Percent: 63, Matches: 5, Total: 8}) {
		t.Fatalf("unexpected result: %+v", out.Result)
	}
	if _, err := svc.CheckSpeaking(ctx, model.LevelA1, "   "); !errors.Is(err, ErrNoInput) {
		t.Fatalf("expected ErrNoInput, got %v", err)
	}
}

func TestCheckPronunciationStoresWriting(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	out, err := svc.CheckPronunciation(ctx, model.LevelA1, "I have a little kitten")
	if err != nil {
		t.Fatalf("check pronunciation: %v", err)
	}
	if out.Result.Percent != 100 || out.Result.Total != 22 {
		t.Fatalf("unexpected result: %+v", out.Result)
	}
	if out.Key.Skill != model.SkillWriting {
		t.Fatalf("expected Writing skill, got %s", out.Key.Skill)
	}
	if len(out.Hints) != 5 {
		t.Fatalf("expected 5 hints, got %d", len(out.Hints))
	}
	sheet, err := svc.Results(ctx)
	if err != nil {
		t.Fatalf("results: %v", err)
	}
	if p, ok := sheet.Percent(model.LevelA1, model.SkillWriting); !ok || p != 100 {
		t.Fatalf("expected 100 in sheet, got %d ok=%v", p, ok)
	}
	if _, ok := sheet.Percent(model.LevelA1, model.SkillReading); ok {
		t.Fatalf("reading should not be attempted")
	}
}

func TestRecheckOverwritesAndHistoryGrows(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	for _, text := range []string{"cat", "a black cat is sitting in a box"} {
		if _, err := svc.CheckSpeaking(ctx, model.LevelA1, text); err != nil {
			t.Fatalf("check speaking: %v", err)
		}
	}
	sheet, err := svc.Results(ctx)
	if err != nil {
		t.Fatalf("results: %v", err)
	}
	if p, _ := sheet.Percent(model.LevelA1, model.SkillSpeaking); p != 100 {
		t.Fatalf("expected latest score 100, got %d", p)
	}
	history, err := svc.History(ctx, model.ScoreKey{Level: model.LevelA1, Skill: model.SkillSpeaking}, 10)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 || history[0].Result.Percent != 13 || history[1].Result.Percent != 100 {
		t.Fatalf("unexpected history: %+v", history)
	}
}

func TestClear(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	if _, err := svc.CheckSpeaking(ctx, model.LevelB2, "people"); err != nil {
		t.Fatalf("check speaking: %v", err)
	}
	if err := svc.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	sheet, err := svc.Results(ctx)
	if err != nil {
		t.Fatalf("results: %v", err)
	}
	if len(sheet.Scores) != 0 {
		t.Fatalf("expected empty sheet, got %v", sheet.Scores)
	}
}

func TestRemoveSingleScore(t *testing.T) {
	svc, st := newService(t)
	ctx := context.Background()
	if _, err := svc.CheckSpeaking(ctx, model.LevelB2, "people"); err != nil {
		t.Fatalf("check speaking: %v", err)
	}
	if _, err := svc.CheckPronunciation(ctx, model.LevelA1, "i have a little kitten"); err != nil {
		t.Fatalf("check pronunciation: %v", err)
	}

	speaking := model.ScoreKey{Level: model.LevelB2, Skill: model.SkillSpeaking}
	removed, err := svc.Remove(ctx, speaking)
	if err != nil || !removed {
		t.Fatalf("expected removal, got removed=%v err=%v", removed, err)
	}
	if _, ok, err := st.GetScore(ctx, speaking); err != nil || ok {
		t.Fatalf("score should be gone, ok=%v err=%v", ok, err)
	}
	if _, ok, _ := st.GetScore(ctx, model.ScoreKey{Level: model.LevelA1, Skill: model.SkillWriting}); !ok {
		t.Fatalf("other scores must be kept")
	}

	removed, err = svc.Remove(ctx, speaking)
	if err != nil || removed {
		t.Fatalf("second removal should report nothing removed, got removed=%v err=%v", removed, err)
	}
}

type failingStore struct {
	ScoreStore
}

func (failingStore) SetScore(context.Context, model.ScoreKey, int) error {
	return errors.New("disk full")
}

func TestStoreErrorIsWrapped(t *testing.T) {
	svc := New(failingStore{}, nil)
	_, err := svc.CheckSpeaking(context.Background(), model.LevelA1, "cat")
	if err == nil || err.Error() != "failed to save score: disk full" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUnknownLevel(t *testing.T) {
	svc := New(failingStore{}, nil)
	if _, err := svc.CheckSpeaking(context.Background(), model.Level("C1"), "hello"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
