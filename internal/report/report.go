// Package report renders stored scores and attempt history as text.
package report

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/verte-zerg/lingocheck/internal/model"
)

const (
	sparkChars          = " .:-=+*#%@"
	notAttempted        = "-"
	terminalWidthBackup = 80
	colorReset          = "\x1b[0m"
	colorGood           = "\x1b[32m"
	colorFair           = "\x1b[33m"
	colorPoor           = "\x1b[31m"
)

// Options controls terminal-dependent rendering.
type Options struct {
	Color bool
	Width int
}

// OptionsFor detects color support and width for w.
func OptionsFor(w io.Writer) Options {
	return Options{Color: shouldUseColor(w), Width: terminalWidth(w)}
}

// SkillAverage returns the mean percent of the attempted skills of level.
func SkillAverage(sheet model.ResultSheet, level model.Level) (float64, bool) {
	var sum, count int
	for _, skill := range model.Skills() {
		if p, ok := sheet.Percent(level, skill); ok {
			sum += p
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return float64(sum) / float64(count), true
}

// WeakestSkills returns up to top attempted keys with the lowest percent.
func WeakestSkills(sheet model.ResultSheet, top int) []model.ScoreKey {
	keys := make([]model.ScoreKey, 0, len(sheet.Scores))
	for k := range sheet.Scores {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		pi, pj := sheet.Scores[keys[i]], sheet.Scores[keys[j]]
		if pi == pj {
			return keys[i].String() < keys[j].String()
		}
		return pi < pj
	})
	if top > 0 && top < len(keys) {
		keys = keys[:top]
	}
	return keys
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	if window <= 1 {
		copy(out, values)
		return out
	}
	var sum float64
	for i, v := range values {
		sum += v
		den := float64(i + 1)
		if i >= window {
			sum -= values[i-window]
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders percents (0-100) as a single-line ASCII sparkline.
func Sparkline(values []float64) string {
	var b strings.Builder
	for _, v := range values {
		v = math.Max(0, math.Min(100, v))
		idx := int(math.Round(v / 100 * float64(len(sparkChars)-1)))
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderResults prints the level by skill results table.
func RenderResults(w io.Writer, sheet model.ResultSheet, opts Options) error {
	headers := []string{"Level"}
	for _, skill := range model.Skills() {
		headers = append(headers, skillLabel(skill))
	}
	headers = append(headers, "Average")

	rows := make([][]string, 0, len(model.Levels()))
	for _, level := range model.Levels() {
		row := []string{string(level)}
		for _, skill := range model.Skills() {
			if p, ok := sheet.Percent(level, skill); ok {
				row = append(row, colorize(fmt.Sprintf("%d%%", p), float64(p), opts.Color))
			} else {
				row = append(row, notAttempted)
			}
		}
		if avg, ok := SkillAverage(sheet, level); ok {
			row = append(row, colorize(fmt.Sprintf("%.0f%%", avg), avg, opts.Color))
		} else {
			row = append(row, notAttempted)
		}
		rows = append(rows, row)
	}

	if _, err := fmt.Fprintln(w, "Results"); err != nil {
		return err
	}
	rightAlign := map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if len(sheet.Scores) == 0 {
		_, err := fmt.Fprintln(w, "\nNo results yet.")
		return err
	}
	weak := WeakestSkills(sheet, 1)
	_, err := fmt.Fprintf(w, "\nWeakest: %s %s (%d%%)\n", weak[0].Level, skillLabel(weak[0].Skill), sheet.Scores[weak[0]])
	return err
}

// RenderFlat prints one {LEVEL}_{Skill}=percent line per record.
func RenderFlat(w io.Writer, records []model.ScoreRecord) error {
	for _, rec := range records {
		if _, err := fmt.Fprintf(w, "%s=%d\n", rec.Key, rec.Percent); err != nil {
			return err
		}
	}
	return nil
}

// RenderHistory prints the attempts for key with a moving average and sparkline.
func RenderHistory(w io.Writer, key model.ScoreKey, attempts []model.Attempt, window int, opts Options) error {
	title := fmt.Sprintf("History %s %s", key.Level, skillLabel(key.Skill))
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}
	if len(attempts) == 0 {
		_, err := fmt.Fprintln(w, "No attempts found.")
		return err
	}

	percents := make([]float64, len(attempts))
	for i, a := range attempts {
		percents[i] = float64(a.Result.Percent)
	}
	avg := MovingAverage(percents, window)

	width := opts.Width
	if width <= 0 {
		width = terminalWidthBackup
	}
	// Date, score, match and average columns take roughly 45 cells.
	inputWidth := width - 45
	if inputWidth < 10 {
		inputWidth = 10
	}

	headers := []string{"When", "Score", "Matched", "Avg", "Input"}
	rows := make([][]string, 0, len(attempts))
	for i, a := range attempts {
		rows = append(rows, []string{
			a.At.Local().Format("2006-01-02 15:04"),
			colorize(fmt.Sprintf("%d%%", a.Result.Percent), percents[i], opts.Color),
			fmt.Sprintf("%d/%d", a.Result.Matches, a.Result.Total),
			fmt.Sprintf("%.1f%%", avg[i]),
			runewidth.Truncate(a.Input, inputWidth, "…"),
		})
	}
	rightAlign := map[int]bool{1: true, 2: true, 3: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\nTrend: [%s]\n", Sparkline(percents))
	return err
}

func skillLabel(skill model.Skill) string {
	if skill == model.SkillWriting {
		return "Pronunciation"
	}
	return string(skill)
}

func colorize(value string, percent float64, useColor bool) string {
	if !useColor {
		return value
	}
	color := colorPoor
	switch {
	case percent >= 80:
		color = colorGood
	case percent >= 50:
		color = colorFair
	}
	return color + value + colorReset
}

func terminalWidth(w io.Writer) int {
	file, ok := w.(*os.File)
	if !ok {
		return terminalWidthBackup
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

func shouldUseColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
