package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/lingocheck/internal/config"
	"github.com/verte-zerg/lingocheck/internal/model"
	"github.com/verte-zerg/lingocheck/internal/store"
)

func TestCheckCommand(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{args: []string{"check", "words", "--ref", "A black cat is sitting in a box", "--input", "black cat in a box"}, want: "5/8 → 63%\n"},
		{args: []string{"check", "chars", "--ref", "abc", "--input", "abd"}, want: "2/3 → 67%\n"},
		{args: []string{"check", "chars", "--ref", "", "--input", ""}, want: "0/0 → 100%\n"},
	}
	for _, tc := range cases {
		cmd := newRootCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs(tc.args)
		if err := cmd.Execute(); err != nil {
			t.Fatalf("%v: %v", tc.args, err)
		}
		if out.String() != tc.want {
			t.Fatalf("%v: expected %q, got %q", tc.args, tc.want, out.String())
		}
	}
}

func TestConfigTemplateDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("template should decode: %v", err)
	}
	if cfg.Assessment.Level != nil {
		t.Fatalf("template values must be commented out")
	}
}

func TestResultsFlatAndClear(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	run := func(args ...string) string {
		t.Helper()
		cmd := newRootCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetIn(strings.NewReader(""))
		cmd.SetArgs(args)
		if err := cmd.Execute(); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
		return out.String()
	}

	if got := run("results", "--flat"); got != "" {
		t.Fatalf("expected no scores, got %q", got)
	}
	if got := run("results"); !strings.Contains(got, "No results yet.") {
		t.Fatalf("unexpected results output:\n%s", got)
	}
	run("clear", "--yes")
	if got := run("history", "--level", "b2", "--skill", "pronunciation"); !strings.Contains(got, "History B2 Pronunciation") {
		t.Fatalf("unexpected history output:\n%s", got)
	}
}

func TestClearSelectedKeys(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	ctx := context.Background()
	for key, percent := range map[model.ScoreKey]int{
		{Level: model.LevelA1, Skill: model.SkillReading}:  67,
		{Level: model.LevelA1, Skill: model.SkillWriting}:  83,
		{Level: model.LevelA2, Skill: model.SkillSpeaking}: 50,
	} {
		if err := st.SetScore(ctx, key, percent); err != nil {
			t.Fatalf("set score: %v", err)
		}
	}
	if err := st.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	execute := func(args ...string) (string, error) {
		cmd := newRootCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetIn(strings.NewReader("n\n"))
		cmd.SetArgs(args)
		err := cmd.Execute()
		return out.String(), err
	}

	if _, err := execute("clear", "a1_reading"); err != nil {
		t.Fatalf("clear without confirmation: %v", err)
	}
	if _, err := execute("clear", "--yes", "a1_reading", "A1_pronunciation", "B2_Reading"); err != nil {
		t.Fatalf("clear keys: %v", err)
	}
	got, err := execute("results", "--flat")
	if err != nil {
		t.Fatalf("results: %v", err)
	}
	if got != "A2_Speaking=50\n" {
		t.Fatalf("unexpected remaining scores: %q", got)
	}
	if _, err := execute("clear", "--yes", "C1_Reading"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
