// Package main provides the CLI entrypoint for lingocheck.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/lingocheck/internal/assessment"
	"github.com/verte-zerg/lingocheck/internal/config"
	"github.com/verte-zerg/lingocheck/internal/content"
	"github.com/verte-zerg/lingocheck/internal/model"
	"github.com/verte-zerg/lingocheck/internal/report"
	"github.com/verte-zerg/lingocheck/internal/scoring"
	"github.com/verte-zerg/lingocheck/internal/speech"
	"github.com/verte-zerg/lingocheck/internal/store"
	"github.com/verte-zerg/lingocheck/internal/tui"
)

const (
	defaultLevel        = "A1"
	defaultSpeechOutput = "auto"
	defaultSpeechInput  = "auto"
	defaultVoice        = "en-us"
	defaultLang         = "en-US"
	defaultESpeakSpeed  = 150
	defaultHistoryLast  = 20
	defaultHistoryAvg   = 3
)

var (
	assessLevel        string
	assessContent      string
	assessShuffle      bool
	assessSpeechOutput string
	assessSpeechInput  string
	assessVoice        string

	resultsFlat bool
	clearYes    bool

	historyLevel  string
	historySkill  string
	historyLast   int
	historyWindow int

	checkRef   string
	checkInput string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "lingocheck",
		Short:         "CEFR A1-B2 language self-assessment",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runAssessCmd,
	}

	addAssessFlags(rootCmd)

	rootCmd.AddCommand(newResultsCmd())
	rootCmd.AddCommand(newClearCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newSayCmd())
	rootCmd.AddCommand(newLevelsCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func addAssessFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&assessLevel, "level", defaultLevel, "starting level (A1, A2, B1, B2)")
	cmd.Flags().StringVar(&assessContent, "content", "", "exercise override file (TOML)")
	cmd.Flags().BoolVar(&assessShuffle, "shuffle", false, "shuffle answer options")
	cmd.Flags().StringVar(&assessSpeechOutput, "speech-output", defaultSpeechOutput, "speech output: auto, espeak, openai, none")
	cmd.Flags().StringVar(&assessSpeechInput, "speech-input", defaultSpeechInput, "speech input: auto, openai, none")
	cmd.Flags().StringVar(&assessVoice, "voice", defaultVoice, "espeak-ng voice")
}

func runAssessCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	table, err := content.LoadFile(cfg.ContentPath)
	if err != nil {
		return err
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	out, err := speech.NewOutput(cfg.Speech)
	if err != nil {
		return err
	}
	in, err := speech.NewInput(cfg.Speech)
	if err != nil {
		return err
	}
	var shuffler *content.Shuffler
	if cfg.Shuffle {
		shuffler = content.NewShuffler()
	}

	svc := assessment.New(st, table)
	ui := tui.NewModel(svc, out, in, shuffler, cfg.Level)
	program := tea.NewProgram(ui, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func loadConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "level", &assessLevel, fileCfg.Assessment.Level)
	applyStringConfig(cmd, "content", &assessContent, fileCfg.Assessment.Content)
	applyBoolConfig(cmd, "shuffle", &assessShuffle, fileCfg.Assessment.Shuffle)
	applyStringConfig(cmd, "speech-output", &assessSpeechOutput, fileCfg.Speech.Output)
	applyStringConfig(cmd, "speech-input", &assessSpeechInput, fileCfg.Speech.Input)
	applyStringConfig(cmd, "voice", &assessVoice, fileCfg.Speech.Voice)

	level, err := model.ParseLevel(assessLevel)
	if err != nil {
		return model.Config{}, fmt.Errorf("--level: %w", err)
	}
	contentPath := assessContent
	if contentPath == "" {
		contentPath = config.DefaultContentPath()
	}

	sc := model.SpeechConfig{
		Output:      assessSpeechOutput,
		Input:       assessSpeechInput,
		Voice:       assessVoice,
		Lang:        defaultLang,
		OpenAIKey:   strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		AudioCache:  config.DefaultAudioCacheDir(),
		ESpeakSpeed: defaultESpeakSpeed,
	}
	setString(&sc.Lang, fileCfg.Speech.Lang)
	setString(&sc.OpenAIModel, fileCfg.Speech.OpenAIModel)
	setString(&sc.OpenAIVoice, fileCfg.Speech.OpenAIVoice)
	setString(&sc.OpenAISTT, fileCfg.Speech.OpenAISTTModel)
	setString(&sc.Recorder, fileCfg.Speech.Recorder)
	setString(&sc.Player, fileCfg.Speech.Player)
	if fileCfg.Speech.ESpeakSpeed != nil {
		sc.ESpeakSpeed = *fileCfg.Speech.ESpeakSpeed
	}

	cfg := model.Config{
		Level:       level,
		ContentPath: contentPath,
		Shuffle:     assessShuffle,
		Speech:      sc,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func validateConfig(cfg model.Config) error {
	switch strings.ToLower(cfg.Speech.Output) {
	case "auto", "espeak", "espeak-ng", "openai", "none":
	default:
		return fmt.Errorf("--speech-output must be one of auto, espeak, openai, none")
	}
	switch strings.ToLower(cfg.Speech.Input) {
	case "auto", "openai", "none":
	default:
		return fmt.Errorf("--speech-input must be one of auto, openai, none")
	}
	if cfg.Speech.ESpeakSpeed < 0 {
		return fmt.Errorf("espeak-speed must be >= 0")
	}
	return nil
}

func newResultsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "results",
		Short: "Show stored scores",
		Args:  cobra.NoArgs,
		RunE:  runResultsCmd,
	}
	cmd.Flags().BoolVar(&resultsFlat, "flat", false, "print LEVEL_Skill=percent lines")
	return cmd
}

func runResultsCmd(cmd *cobra.Command, _ []string) error {
	return withStore(func(st *store.Store) error {
		ctx := context.Background()
		w := cmd.OutOrStdout()
		if resultsFlat {
			records, err := st.ListScores(ctx)
			if err != nil {
				return fmt.Errorf("failed to load scores: %w", err)
			}
			return report.RenderFlat(w, records)
		}
		sheet, err := assessment.New(st, nil).Results(ctx)
		if err != nil {
			return err
		}
		return report.RenderResults(w, sheet, report.OptionsFor(w))
	})
}

func newClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear [LEVEL_SKILL...]",
		Short: "Delete stored scores",
		Long:  "Delete every stored score, or only the given keys (e.g. A1_Reading, b2_pronunciation).",
		RunE:  runClearCmd,
	}
	cmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func runClearCmd(cmd *cobra.Command, args []string) error {
	keys := make([]model.ScoreKey, 0, len(args))
	for _, arg := range args {
		key, err := model.ParseScoreKey(arg)
		if err != nil {
			return err
		}
		keys = append(keys, key)
	}
	if !clearYes {
		prompt := "Clear all results? [y/N] "
		if len(keys) > 0 {
			prompt = fmt.Sprintf("Clear %d result(s)? [y/N] ", len(keys))
		}
		if _, err := fmt.Fprint(cmd.OutOrStdout(), prompt); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && answer == "" {
			return fmt.Errorf("failed to read answer: %w", err)
		}
		if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
			logErrln("Canceled.")
			return nil
		}
	}
	return withStore(func(st *store.Store) error {
		svc := assessment.New(st, nil)
		ctx := context.Background()
		if len(keys) == 0 {
			if err := svc.Clear(ctx); err != nil {
				return err
			}
			logErrln("Results cleared.")
			return nil
		}
		for _, key := range keys {
			removed, err := svc.Remove(ctx, key)
			if err != nil {
				return err
			}
			if removed {
				logErrf("Removed %s.\n", key)
			} else {
				logErrf("No score stored for %s.\n", key)
			}
		}
		return nil
	})
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show attempt history for one level and skill",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().StringVar(&historyLevel, "level", defaultLevel, "level (A1, A2, B1, B2)")
	cmd.Flags().StringVar(&historySkill, "skill", "reading", "skill (reading, speaking, listening, pronunciation)")
	cmd.Flags().IntVar(&historyLast, "last", defaultHistoryLast, "limit to last N attempts (0 = all)")
	cmd.Flags().IntVar(&historyWindow, "window", defaultHistoryAvg, "moving average window")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	level, err := model.ParseLevel(historyLevel)
	if err != nil {
		return fmt.Errorf("--level: %w", err)
	}
	skill, err := model.ParseSkill(historySkill)
	if err != nil {
		return fmt.Errorf("--skill: %w", err)
	}
	if historyLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}
	key := model.ScoreKey{Level: level, Skill: skill}
	return withStore(func(st *store.Store) error {
		attempts, err := assessment.New(st, nil).History(context.Background(), key, historyLast)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		return report.RenderHistory(w, key, attempts, historyWindow, report.OptionsFor(w))
	})
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "check {words|chars}",
		Short:     "Compare an input with a reference without saving",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"words", "chars"},
		RunE:      runCheckCmd,
	}
	cmd.Flags().StringVar(&checkRef, "ref", "", "reference text")
	cmd.Flags().StringVar(&checkInput, "input", "", "text to score")
	if err := cmd.MarkFlagRequired("ref"); err != nil {
		logErrf("failed to mark --ref required: %v\n", err)
	}
	return cmd
}

func runCheckCmd(cmd *cobra.Command, args []string) error {
	var result model.ScoreResult
	switch args[0] {
	case "words":
		result = scoring.CompareWords(checkRef, checkInput)
	case "chars":
		result = scoring.CompareChars(checkRef, checkInput)
	default:
		return fmt.Errorf("unknown comparator %q (available: words, chars)", args[0])
	}
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%d/%d → %d%%\n", result.Matches, result.Total, result.Percent); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newSayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "say <text>",
		Short: "Speak text with the configured speech output",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSayCmd,
	}
	cmd.Flags().StringVar(&assessSpeechOutput, "speech-output", defaultSpeechOutput, "speech output: auto, espeak, openai, none")
	cmd.Flags().StringVar(&assessVoice, "voice", defaultVoice, "espeak-ng voice")
	return cmd
}

func runSayCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	out, err := speech.NewOutput(cfg.Speech)
	if err != nil {
		return err
	}
	if err := out.Speak(context.Background(), strings.Join(args, " ")); err != nil {
		return fmt.Errorf("failed to speak: %w", err)
	}
	return nil
}

func newLevelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "levels",
		Short: "List levels and their pronunciation phrases",
		Args:  cobra.NoArgs,
		RunE:  runLevelsCmd,
	}
	cmd.Flags().StringVar(&assessContent, "content", "", "exercise override file (TOML)")
	return cmd
}

func runLevelsCmd(cmd *cobra.Command, _ []string) error {
	path := assessContent
	if path == "" {
		path = config.DefaultContentPath()
	}
	table, err := content.LoadFile(path)
	if err != nil {
		return err
	}
	for _, level := range model.Levels() {
		ex, err := table.Exercise(level)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", level, ex.Pronunciation); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func withStore(fn func(st *store.Store) error) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	return fn(st)
}

func setString(target, value *string) {
	if value != nil {
		*target = *value
	}
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if flag := cmd.Flags().Lookup(name); flag != nil && flag.Changed {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if flag := cmd.Flags().Lookup(name); flag != nil && flag.Changed {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# lingocheck configuration
# Uncomment a value to enable it. CLI flags override config values.
# The OpenAI key is read from OPENAI_API_KEY.

[assessment]
# level = %q              # Starting level: A1, A2, B1, B2
# content = ""            # Exercise override file (default %s)
# shuffle = false         # Shuffle answer options

[speech]
# output = %q           # auto, espeak, openai, none
# input = %q            # auto, openai, none
# voice = %q           # espeak-ng voice
# lang = %q            # Recognition language
# espeak-speed = %d        # Words per minute (80-450)
# openai-model = "tts-1"
# openai-voice = "alloy"
# openai-stt-model = "whisper-1"
# recorder = ""           # e.g. "arecord -q -f S16_LE -r 16000 -c 1 {file}"
# player = ""             # e.g. "mpg123 -q {file}"
`,
		defaultLevel,
		config.DefaultContentPath(),
		defaultSpeechOutput,
		defaultSpeechInput,
		defaultVoice,
		defaultLang,
		defaultESpeakSpeed,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
