package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/lingocheck/internal/model"
)

func TestDefaultValidates(t *testing.T) {
	table := Default()
	if err := table.Validate(); err != nil {
		t.Fatalf("default table invalid: %v", err)
	}
	for _, level := range model.Levels() {
		ex, err := table.Exercise(level)
		if err != nil {
			t.Fatalf("exercise %s: %v", level, err)
		}
		if len(ex.Reading.Questions) != 3 || len(ex.Listening.Questions) != 3 {
			t.Fatalf("level %s: expected three questions per task", level)
		}
	}
}

func TestDefaultExpectedAnswers(t *testing.T) {
	ex, err := Default().Exercise(model.LevelA1)
	if err != nil {
		t.Fatalf("exercise: %v", err)
	}
	got := Answers(ex.Reading.Questions)
	want := []string{"At 7 o’clock", "Tea and toast", "Because mornings are quiet"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("unexpected answers: %v", got)
	}
	if ex.Speaking.Reference != "A black cat is sitting in a box" {
		t.Fatalf("unexpected speaking reference: %q", ex.Speaking.Reference)
	}
	if ex.Pronunciation != "I have a little kitten." {
		t.Fatalf("unexpected pronunciation phrase: %q", ex.Pronunciation)
	}
}

func TestExerciseUnknownLevel(t *testing.T) {
	if _, err := Default().Exercise(model.Level("C1")); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestLoadFileMissing(t *testing.T) {
	table, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(table) != 4 {
		t.Fatalf("expected default table, got %d levels", len(table))
	}
}

func TestLoadFileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.toml")
	data := `
[a2]
pronunciation = "Hello there."

[a2.speaking]
prompt = "Say hello."
reference = "Hello there"

[a2.reading]
passage = "Ann has a dog."

[[a2.reading.questions]]
prompt = "What does Ann have?"
options = ["A cat", "A dog"]
answer = "A dog"

[a2.listening]
script = "Bob likes tea."

[[a2.listening.questions]]
prompt = "What does Bob like?"
options = ["Tea", "Coffee"]
answer = "Tea"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	table, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	a2, _ := table.Exercise(model.LevelA2)
	if a2.Pronunciation != "Hello there." || a2.Reading.Questions[0].Answer != "A dog" {
		t.Fatalf("override not applied: %+v", a2)
	}
	a1, _ := table.Exercise(model.LevelA1)
	if a1.Pronunciation != "I have a little kitten." {
		t.Fatalf("expected A1 default to be kept")
	}
}

func TestLoadFileRejectsBadAnswer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.toml")
	data := `
[B1]
pronunciation = "x"
[B1.speaking]
reference = "x"
[[B1.reading.questions]]
prompt = "?"
options = ["a", "b"]
answer = "c"
[[B1.listening.questions]]
prompt = "?"
options = ["a", "b"]
answer = "a"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestShufflerKeepsOptions(t *testing.T) {
	ex, _ := Default().Exercise(model.LevelB2)
	shuffled := NewSeededShuffler(7).Questions(ex.Reading.Questions)
	for i, q := range shuffled {
		orig := ex.Reading.Questions[i]
		if q.Answer != orig.Answer || len(q.Options) != len(orig.Options) {
			t.Fatalf("question %d changed: %+v", i, q)
		}
		seen := map[string]bool{}
		for _, opt := range q.Options {
			seen[opt] = true
		}
		for _, opt := range orig.Options {
			if !seen[opt] {
				t.Fatalf("question %d lost option %q", i, opt)
			}
		}
	}
	var nilShuffler *Shuffler
	same := nilShuffler.Questions(ex.Reading.Questions)
	if same[0].Options[0] != ex.Reading.Questions[0].Options[0] {
		t.Fatalf("nil shuffler must keep order")
	}
}
