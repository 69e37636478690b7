// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Assessment AssessmentConfig `toml:"assessment"`
	Speech     SpeechConfig     `toml:"speech"`
}

// AssessmentConfig maps exercise-related settings.
type AssessmentConfig struct {
	Level   *string `toml:"level"`
	Content *string `toml:"content"`
	Shuffle *bool   `toml:"shuffle"`
}

// SpeechConfig maps speech backend settings. The OpenAI key is read from
// OPENAI_API_KEY only and never from the file.
type SpeechConfig struct {
	Output         *string `toml:"output"`
	Input          *string `toml:"input"`
	Voice          *string `toml:"voice"`
	Lang           *string `toml:"lang"`
	ESpeakSpeed    *int    `toml:"espeak-speed"`
	OpenAIModel    *string `toml:"openai-model"`
	OpenAIVoice    *string `toml:"openai-voice"`
	OpenAISTTModel *string `toml:"openai-stt-model"`
	Recorder       *string `toml:"recorder"`
	Player         *string `toml:"player"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
