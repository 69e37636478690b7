// Package model defines shared data structures.
package model

import (
	"fmt"
	"strings"
	"time"
)

// Level is a CEFR proficiency tier.
type Level string

// Supported levels, lowest first.
const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
)

// Levels returns all supported levels in ascending order.
func Levels() []Level {
	return []Level{LevelA1, LevelA2, LevelB1, LevelB2}
}

// ParseLevel parses a level code case-insensitively.
func ParseLevel(s string) (Level, error) {
	candidate := Level(strings.ToUpper(strings.TrimSpace(s)))
	for _, l := range Levels() {
		if l == candidate {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown level %q (available: A1, A2, B1, B2)", s)
}

// Skill names the scored part of a level.
type Skill string

// Persisted skills. Pronunciation scores are filed under SkillWriting.
const (
	SkillReading   Skill = "Reading"
	SkillSpeaking  Skill = "Speaking"
	SkillListening Skill = "Listening"
	SkillWriting   Skill = "Writing"
)

// Skills returns the persisted skills in display order.
func Skills() []Skill {
	return []Skill{SkillReading, SkillSpeaking, SkillListening, SkillWriting}
}

// ParseSkill parses a skill name case-insensitively. "pronunciation" maps to SkillWriting.
func ParseSkill(s string) (Skill, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "pronunciation" {
		return SkillWriting, nil
	}
	for _, sk := range Skills() {
		if strings.ToLower(string(sk)) == v {
			return sk, nil
		}
	}
	return "", fmt.Errorf("unknown skill %q (available: reading, speaking, listening, writing)", s)
}

// ScoreKey identifies a persisted score.
type ScoreKey struct {
	Level Level
	Skill Skill
}

// String returns the flat key form, e.g. "A1_Reading".
func (k ScoreKey) String() string {
	return string(k.Level) + "_" + string(k.Skill)
}

// ParseScoreKey parses the flat key form produced by ScoreKey.String.
func ParseScoreKey(s string) (ScoreKey, error) {
	levelPart, skillPart, ok := strings.Cut(s, "_")
	if !ok {
		return ScoreKey{}, fmt.Errorf("invalid score key %q", s)
	}
	level, err := ParseLevel(levelPart)
	if err != nil {
		return ScoreKey{}, err
	}
	skill, err := ParseSkill(skillPart)
	if err != nil {
		return ScoreKey{}, err
	}
	return ScoreKey{Level: level, Skill: skill}, nil
}

// ScoreResult is the outcome of one comparison. Matches never exceeds Total.
type ScoreResult struct {
	Percent int
	Matches int
	Total   int
}

// WordHint describes how close the transcript came to one reference word.
type WordHint struct {
	Word       string
	Heard      string
	Similarity float64
	SoundsLike bool
}

// ScoreRecord is the latest persisted percent for a key.
type ScoreRecord struct {
	Key       ScoreKey
	Percent   int
	UpdatedAt time.Time
}

// Attempt is one scored submission.
type Attempt struct {
	ID     int64
	Key    ScoreKey
	Result ScoreResult
	Input  string
	At     time.Time
}

// ResultSheet holds the latest percent per level and skill. Missing entries were not attempted.
type ResultSheet struct {
	Scores map[ScoreKey]int
}

// Percent returns the percent for a key and whether it was attempted.
func (r ResultSheet) Percent(level Level, skill Skill) (int, bool) {
	p, ok := r.Scores[ScoreKey{Level: level, Skill: skill}]
	return p, ok
}

// Config defines assessment settings.
type Config struct {
	Level       Level
	ContentPath string
	Shuffle     bool
	Speech      SpeechConfig
}

// SpeechConfig selects and tunes the speech adapters.
type SpeechConfig struct {
	Output      string
	Input       string
	Voice       string
	Lang        string
	OpenAIKey   string
	OpenAIModel string
	OpenAIVoice string
	OpenAISTT   string
	Recorder    string
	Player      string
	AudioCache  string
	ESpeakSpeed int
}
