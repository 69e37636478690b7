package speech

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/lingocheck/internal/model"
)

// NewOutput builds the speech output selected by cfg.Output:
// "auto" (OpenAI with espeak-ng fallback when a key is set, else espeak-ng),
// "espeak", "openai" or "none".
func NewOutput(cfg model.SpeechConfig) (Output, error) {
	espeak := NewESpeak(cfg.Voice, cfg.ESpeakSpeed)
	switch strings.ToLower(strings.TrimSpace(cfg.Output)) {
	case "", "auto":
		if cfg.OpenAIKey == "" {
			return espeak, nil
		}
		oa, err := NewOpenAISpeaker(openAIConfig(cfg), NewPlayer(cfg.Player))
		if err != nil {
			return espeak, nil
		}
		return NewFallback(oa, espeak), nil
	case "espeak", "espeak-ng":
		return espeak, nil
	case "openai":
		oa, err := NewOpenAISpeaker(openAIConfig(cfg), NewPlayer(cfg.Player))
		if err != nil {
			return nil, fmt.Errorf("failed to create OpenAI speech output: %w", err)
		}
		return oa, nil
	case "none":
		return NoOutput{Reason: "speech output disabled"}, nil
	default:
		return nil, fmt.Errorf("unknown speech output %q (available: auto, espeak, openai, none)", cfg.Output)
	}
}

// NewInput builds the speech input selected by cfg.Input: "auto" or "openai"
// (recorder plus OpenAI transcription) or "none".
func NewInput(cfg model.SpeechConfig) (Input, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Input)) {
	case "", "auto":
		tr, err := NewOpenAITranscriber(openAIConfig(cfg))
		if err != nil {
			return NoInput{Reason: "speech recognition needs OPENAI_API_KEY"}, nil
		}
		return NewRecorder(cfg.Recorder, "", tr), nil
	case "openai":
		tr, err := NewOpenAITranscriber(openAIConfig(cfg))
		if err != nil {
			return nil, fmt.Errorf("failed to create OpenAI speech input: %w", err)
		}
		return NewRecorder(cfg.Recorder, "", tr), nil
	case "none":
		return NoInput{Reason: "speech recognition disabled"}, nil
	default:
		return nil, fmt.Errorf("unknown speech input %q (available: auto, openai, none)", cfg.Input)
	}
}

func openAIConfig(cfg model.SpeechConfig) OpenAIConfig {
	return OpenAIConfig{
		APIKey:   cfg.OpenAIKey,
		Model:    cfg.OpenAIModel,
		Voice:    cfg.OpenAIVoice,
		STTModel: cfg.OpenAISTT,
		Lang:     cfg.Lang,
		CacheDir: cfg.AudioCache,
	}
}
