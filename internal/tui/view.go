package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/lingocheck/internal/model"
)

func (m *Model) viewLevels() string {
	lines := []string{titleStyle.Render("Choose your level"), ""}
	for i, level := range model.Levels() {
		lines = append(lines, menuLine(i == m.levelCursor, string(level)))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) viewSkills() string {
	lines := []string{titleStyle.Render(fmt.Sprintf("Level %s", m.level)), ""}
	for i, t := range tasks {
		lines = append(lines, menuLine(i == m.taskCursor, t.label))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) viewChoices() string {
	var b strings.Builder
	if m.screen == screenReading {
		b.WriteString(titleStyle.Render(fmt.Sprintf("%s Reading", m.level)))
		b.WriteString("\n")
		b.WriteString(cardStyle.Render(m.passage.View()))
	} else {
		b.WriteString(titleStyle.Render(fmt.Sprintf("%s Listening", m.level)))
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render("Press p to play the recording, s to stop."))
	}
	b.WriteString("\n\n")
	var expected []string
	if m.outcome != nil {
		expected = m.outcome.Expected
	}
	b.WriteString(m.choices.render(expected))
	if m.outcome != nil && m.screen == screenListening {
		b.WriteString("\n\n")
		b.WriteString(noticeStyle.Render("Script: " + m.exercise.Listening.Script))
	}
	return b.String()
}

func (m *Model) viewSpeaking() string {
	lines := []string{
		titleStyle.Render(fmt.Sprintf("%s Speaking", m.level)),
		"",
		m.exercise.Speaking.Prompt,
		"",
		m.answer.View(),
	}
	if m.session.Recording() {
		lines = append(lines, incorrectStyle.Render("● recording"))
	}
	if m.outcome != nil {
		lines = append(lines, "", noticeStyle.Render("Reference: ")+m.outcome.Expected[0])
	}
	return strings.Join(lines, "\n")
}

func (m *Model) viewPronunciation() string {
	lines := []string{
		titleStyle.Render(fmt.Sprintf("%s Pronunciation", m.level)),
		"",
		"Say this phrase:",
		cardStyle.Render(m.exercise.Pronunciation),
		"",
	}
	switch {
	case m.session.Recording():
		lines = append(lines, incorrectStyle.Render("● recording"))
	case m.session.Pending():
		lines = append(lines, pendingStyle.Render("… recognizing"))
	case m.heard != "":
		lines = append(lines, "Heard: "+m.heard)
	}
	if m.outcome != nil {
		w := 0
		if m.width > 0 {
			w = contentWidth(m.width)
		}
		lines = append(lines, "", wrapStyledRunes(buildDiffRunes(m.exercise.Pronunciation, m.heard), w))
		if hints := renderHints(m.outcome.Hints); hints != "" {
			lines = append(lines, "", hints)
		}
	}
	return strings.Join(lines, "\n")
}

func renderHints(hints []model.WordHint) string {
	var parts []string
	for _, h := range hints {
		switch {
		case h.Heard == h.Word:
			continue
		case h.Heard == "":
			parts = append(parts, incorrectStyle.Render(h.Word+": not heard"))
		case h.SoundsLike:
			parts = append(parts, pendingStyle.Render(fmt.Sprintf("%s: heard %q (sounds alike)", h.Word, h.Heard)))
		default:
			parts = append(parts, incorrectStyle.Render(fmt.Sprintf("%s: heard %q", h.Word, h.Heard)))
		}
	}
	return strings.Join(parts, "\n")
}

func (m *Model) viewResults() string {
	return titleStyle.Render("Results") + "\n\n" + m.results.View()
}

func (m *Model) renderFooter() string {
	var help string
	switch m.screen {
	case screenLevels:
		help = "up/down: choose  enter: select  r: results  q: quit"
	case screenSkills:
		help = "up/down: choose  enter: open  esc: back  q: quit"
	case screenReading:
		help = "up/down: question  1-3 or left/right: answer  pgup/pgdn: scroll  enter: check  esc: back"
	case screenListening:
		help = "p: play  s: stop  up/down: question  1-3 or left/right: answer  enter: check  esc: back"
	case screenSpeaking:
		help = "enter: check  ctrl+r: dictate  esc: back"
	case screenPronunciation:
		help = "p: listen  s: stop  r/space: record  enter: check  esc: back"
	case screenResults:
		help = "c: clear results  esc: back  q: quit"
	}
	footer := footerStyle.Render(help)
	if m.notice == "" {
		return footer
	}
	if m.noticeErr {
		return errorStyle.Render(m.notice) + "\n" + footer
	}
	return noticeStyle.Render(m.notice) + "\n" + footer
}

func menuLine(active bool, label string) string {
	if active {
		return focusStyle.Render("> " + label)
	}
	return "  " + label
}

func newResultsTable() table.Model {
	columns := []table.Column{{Title: "Level", Width: 6}}
	for _, skill := range model.Skills() {
		columns = append(columns, table.Column{Title: skillTitle(skill), Width: 13})
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(len(model.Levels())+1),
		table.WithWidth(6+13*len(model.Skills())),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true)
	styles.Selected = styles.Cell
	t.SetStyles(styles)
	return t
}

func resultRows(sheet model.ResultSheet) []table.Row {
	rows := make([]table.Row, 0, len(model.Levels()))
	for _, level := range model.Levels() {
		row := table.Row{string(level)}
		for _, skill := range model.Skills() {
			if p, ok := sheet.Percent(level, skill); ok {
				row = append(row, fmt.Sprintf("%d%%", p))
			} else {
				row = append(row, "-")
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func skillTitle(skill model.Skill) string {
	if skill == model.SkillWriting {
		return "Pronunciation"
	}
	return string(skill)
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}
