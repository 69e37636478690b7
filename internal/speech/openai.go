package speech

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sashabaranov/go-openai"
)

// OpenAIConfig configures the OpenAI audio backends.
type OpenAIConfig struct {
	APIKey   string
	BaseURL  string
	Model    string // TTS model, e.g. "tts-1"
	Voice    string
	STTModel string // transcription model, e.g. "whisper-1"
	Lang     string // BCP-47 tag; only the language part is sent
	CacheDir string
}

func (c OpenAIConfig) client() (*openai.Client, error) {
	if c.APIKey == "" {
		return nil, unavailable("OPENAI_API_KEY is not set")
	}
	cfg := openai.DefaultConfig(c.APIKey)
	if c.BaseURL != "" {
		cfg.BaseURL = c.BaseURL
	}
	return openai.NewClientWithConfig(cfg), nil
}

// OpenAISpeaker synthesizes speech with the OpenAI TTS API and plays the
// resulting MP3 through a Player. Audio is cached by content hash.
type OpenAISpeaker struct {
	client *openai.Client
	cfg    OpenAIConfig
	player *Player

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewOpenAISpeaker returns an OpenAI TTS backend.
func NewOpenAISpeaker(cfg OpenAIConfig, player *Player) (*OpenAISpeaker, error) {
	client, err := cfg.client()
	if err != nil {
		return nil, err
	}
	if cfg.Model == "" {
		cfg.Model = string(openai.TTSModel1)
	}
	if cfg.Voice == "" {
		cfg.Voice = string(openai.VoiceAlloy)
	}
	if player == nil {
		player = NewPlayer("")
	}
	return &OpenAISpeaker{client: client, cfg: cfg, player: player}, nil
}

// Name implements Output.
func (o *OpenAISpeaker) Name() string { return "openai" }

// Available implements Output.
func (o *OpenAISpeaker) Available() error {
	return o.player.Available()
}

// Speak implements Output.
func (o *OpenAISpeaker) Speak(ctx context.Context, text string) error {
	if err := o.Available(); err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(ctx)
	o.mu.Lock()
	if o.cancel != nil {
		o.cancel()
	}
	o.cancel = cancel
	o.mu.Unlock()
	o.player.Stop()

	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	path, err := o.synthesize(ctx, text)
	if err != nil {
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return o.player.Play(path)
}

// Stop implements Output.
func (o *OpenAISpeaker) Stop() error {
	o.mu.Lock()
	if o.cancel != nil {
		o.cancel()
		o.cancel = nil
	}
	o.mu.Unlock()
	o.player.Stop()
	return nil
}

func (o *OpenAISpeaker) synthesize(ctx context.Context, text string) (string, error) {
	path := o.cachePath(text)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	resp, err := o.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(o.cfg.Model),
		Input:          text,
		Voice:          openai.SpeechVoice(o.cfg.Voice),
		ResponseFormat: openai.SpeechResponseFormatMp3,
		Speed:          1.0,
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI TTS API error: %w", err)
	}
	defer func() {
		if cerr := resp.Close(); cerr != nil {
			// Best-effort body close.
			_ = cerr
		}
	}()
	if err := writeFileAtomic(path, resp); err != nil {
		return "", err
	}
	return path, nil
}

func (o *OpenAISpeaker) cachePath(text string) string {
	h := sha256.New()
	for _, part := range []string{o.cfg.Model, o.cfg.Voice, text} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	dir := o.cfg.CacheDir
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, hex.EncodeToString(h.Sum(nil))+".mp3")
}

func writeFileAtomic(path string, r io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create audio cache dir: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "speech-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create audio file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}()
	written, err := io.Copy(tmp, r)
	if err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}
	if written == 0 {
		return fmt.Errorf("no audio data received from OpenAI")
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close audio file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}
	return nil
}

// OpenAITranscriber recognizes recorded audio with the OpenAI transcription API.
type OpenAITranscriber struct {
	client *openai.Client
	model  string
	lang   string
}

// NewOpenAITranscriber returns a Transcriber backed by OpenAI.
func NewOpenAITranscriber(cfg OpenAIConfig) (*OpenAITranscriber, error) {
	client, err := cfg.client()
	if err != nil {
		return nil, err
	}
	model := cfg.STTModel
	if model == "" {
		model = openai.Whisper1
	}
	return &OpenAITranscriber{client: client, model: model, lang: languagePart(cfg.Lang)}, nil
}

// Transcribe implements Transcriber.
func (t *OpenAITranscriber) Transcribe(ctx context.Context, path string) (string, error) {
	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    t.model,
		FilePath: path,
		Language: t.lang,
		Format:   openai.AudioResponseFormatJSON,
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI transcription error: %w", err)
	}
	return strings.TrimSpace(resp.Text), nil
}

// languagePart turns "en-US" into "en".
func languagePart(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return "en"
	}
	lang, _, _ := strings.Cut(tag, "-")
	lang, _, _ = strings.Cut(lang, "_")
	return strings.ToLower(lang)
}
