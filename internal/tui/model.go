// Package tui provides the Bubble Tea assessment interface.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/lingocheck/internal/assessment"
	"github.com/verte-zerg/lingocheck/internal/content"
	"github.com/verte-zerg/lingocheck/internal/model"
	"github.com/verte-zerg/lingocheck/internal/speech"
)

type screen int

const (
	screenLevels screen = iota
	screenSkills
	screenReading
	screenListening
	screenSpeaking
	screenPronunciation
	screenResults
)

type task struct {
	label  string
	screen screen
}

var tasks = []task{
	{label: "Reading", screen: screenReading},
	{label: "Speaking", screen: screenSpeaking},
	{label: "Listening", screen: screenListening},
	{label: "Pronunciation", screen: screenPronunciation},
	{label: "Results", screen: screenResults},
}

var (
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	goodStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	focusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	noticeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	cardStyle      = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
)

type speakDoneMsg struct {
	err error
}

type transcriptMsg struct {
	id   uint64
	text string
	err  error
}

// Model implements the Bubble Tea assessment UI.
type Model struct {
	svc      *assessment.Service
	out      speech.Output
	in       speech.Input
	shuffler *content.Shuffler
	ctx      context.Context

	width  int
	height int

	screen      screen
	levelCursor int
	taskCursor  int
	level       model.Level
	exercise    content.Exercise

	choices choiceSet
	passage viewport.Model
	answer  textinput.Model
	session *speech.Session
	heard   string
	outcome *assessment.Outcome

	results      table.Model
	confirmClear bool

	notice    string
	noticeErr bool
}

// NewModel constructs the assessment UI. A nil shuffler keeps option order.
func NewModel(svc *assessment.Service, out speech.Output, in speech.Input, shuffler *content.Shuffler, level model.Level) *Model {
	if out == nil {
		out = speech.NoOutput{Reason: "speech output disabled"}
	}
	if in == nil {
		in = speech.NoInput{Reason: "speech input disabled"}
	}
	m := &Model{
		svc:      svc,
		out:      out,
		in:       in,
		shuffler: shuffler,
		ctx:      context.Background(),
		session:  speech.NewSession(),
		passage:  viewport.New(60, 6),
		answer:   newAnswerInput(),
		results:  newResultsTable(),
	}
	for i, l := range model.Levels() {
		if l == level {
			m.levelCursor = i
		}
	}
	m.speechStartupNotice()
	return m
}

// speechStartupNotice reports missing speech capabilities on the first screen.
func (m *Model) speechStartupNotice() {
	var missing []string
	if err := m.out.Available(); err != nil {
		missing = append(missing, "output: "+speechReason(err))
	}
	if err := m.in.Available(); err != nil {
		missing = append(missing, "input: "+speechReason(err))
	}
	if len(missing) > 0 {
		m.setError("Speech " + strings.Join(missing, "; "))
	}
}

func newAnswerInput() textinput.Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "Type your sentence or press ctrl+r to dictate"
	input.CharLimit = 300
	return input
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case speakDoneMsg:
		if msg.err != nil && !errors.Is(msg.err, context.Canceled) {
			m.setError(speechNotice(msg.err))
		}
		return m, nil
	case transcriptMsg:
		return m.handleTranscript(msg)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.shutdown()
			return m, tea.Quit
		}
		switch m.screen {
		case screenLevels:
			return m.updateLevels(msg)
		case screenSkills:
			return m.updateSkills(msg)
		case screenReading, screenListening:
			return m.updateChoices(msg)
		case screenSpeaking:
			return m.updateSpeaking(msg)
		case screenPronunciation:
			return m.updatePronunciation(msg)
		case screenResults:
			return m.updateResults(msg)
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	var body string
	switch m.screen {
	case screenLevels:
		body = m.viewLevels()
	case screenSkills:
		body = m.viewSkills()
	case screenReading, screenListening:
		body = m.viewChoices()
	case screenSpeaking:
		body = m.viewSpeaking()
	case screenPronunciation:
		body = m.viewPronunciation()
	case screenResults:
		body = m.viewResults()
	}
	footer := m.renderFooter()
	if m.width == 0 || m.height == 0 {
		return body + "\n\n" + footer
	}
	footerHeight := lipgloss.Height(footer)
	bodyHeight := m.height - footerHeight - 1
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return fitLines(body, m.width, bodyHeight) + "\n\n" + footer
}

func (m *Model) updateLevels(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	levels := model.Levels()
	switch msg.String() {
	case "q", "esc":
		m.shutdown()
		return m, tea.Quit
	case "up", "k":
		m.levelCursor = (m.levelCursor - 1 + len(levels)) % len(levels)
	case "down", "j":
		m.levelCursor = (m.levelCursor + 1) % len(levels)
	case "r":
		m.openResults()
	case "enter", " ":
		if err := m.selectLevel(levels[m.levelCursor]); err != nil {
			m.setError(err.Error())
			return m, nil
		}
		m.screen = screenSkills
		m.clearNotice()
	}
	return m, nil
}

func (m *Model) updateSkills(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.shutdown()
		return m, tea.Quit
	case "esc", "backspace":
		m.screen = screenLevels
		m.clearNotice()
	case "up", "k":
		m.taskCursor = (m.taskCursor - 1 + len(tasks)) % len(tasks)
	case "down", "j":
		m.taskCursor = (m.taskCursor + 1) % len(tasks)
	case "enter", " ":
		return m, m.openTask(tasks[m.taskCursor].screen)
	}
	return m, nil
}

func (m *Model) updateChoices(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "esc":
		m.leaveExercise()
		return m, nil
	case "up", "k", "shift+tab":
		m.choices.moveFocus(-1)
	case "down", "j", "tab":
		m.choices.moveFocus(1)
	case "left", "h":
		m.choices.cycle(-1)
	case "right", "l":
		m.choices.cycle(1)
	case "enter":
		m.checkChoices()
	case "p":
		if m.screen == screenListening {
			return m, m.speak(m.exercise.Listening.Script, "Playing the recording.")
		}
	case "s":
		if m.screen == screenListening {
			m.stopSpeech()
		}
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.passage, cmd = m.passage.Update(msg)
		return m, cmd
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			m.choices.pick(int(key[0] - '1'))
		}
	}
	return m, nil
}

func (m *Model) updateSpeaking(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.leaveExercise()
		return m, nil
	case tea.KeyEnter:
		m.checkSpeaking()
		return m, nil
	case tea.KeyCtrlR:
		return m, m.toggleRecording()
	}
	var cmd tea.Cmd
	m.answer, cmd = m.answer.Update(msg)
	return m, cmd
}

func (m *Model) updatePronunciation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.leaveExercise()
	case "p":
		return m, m.speak(m.exercise.Pronunciation, "Listen to the phrase.")
	case "s":
		m.stopSpeech()
	case "r", " ":
		return m, m.toggleRecording()
	case "enter":
		m.checkPronunciation()
	}
	return m, nil
}

func (m *Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmClear {
		m.confirmClear = false
		if msg.String() == "y" {
			if err := m.svc.Clear(m.ctx); err != nil {
				m.setError(err.Error())
				return m, nil
			}
			m.refreshResults()
			m.setNotice("Results cleared.")
			return m, nil
		}
		m.setNotice("Clear canceled.")
		return m, nil
	}
	switch msg.String() {
	case "q":
		m.shutdown()
		return m, tea.Quit
	case "esc", "backspace":
		if m.level == "" {
			m.screen = screenLevels
		} else {
			m.screen = screenSkills
		}
		m.clearNotice()
	case "c":
		m.confirmClear = true
		m.setNotice("Clear all results? (y/n)")
	}
	return m, nil
}

func (m *Model) selectLevel(level model.Level) error {
	ex, err := m.svc.Table().Exercise(level)
	if err != nil {
		return err
	}
	m.level = level
	m.exercise = ex
	m.taskCursor = 0
	return nil
}

func (m *Model) openTask(s screen) tea.Cmd {
	m.clearNotice()
	m.outcome = nil
	m.heard = ""
	m.session.Reset()
	switch s {
	case screenReading:
		m.choices = newChoiceSet(m.shuffler.Questions(m.exercise.Reading.Questions))
		m.passage.SetContent(m.exercise.Reading.Passage)
		m.passage.GotoTop()
	case screenListening:
		m.choices = newChoiceSet(m.shuffler.Questions(m.exercise.Listening.Questions))
	case screenSpeaking:
		m.answer.SetValue("")
		m.screen = s
		m.updateLayout()
		return m.answer.Focus()
	case screenResults:
		m.openResults()
		return nil
	}
	m.screen = s
	m.updateLayout()
	return nil
}

func (m *Model) openResults() {
	m.screen = screenResults
	m.confirmClear = false
	m.clearNotice()
	m.refreshResults()
}

func (m *Model) leaveExercise() {
	m.stopSpeech()
	m.session.Reset()
	m.answer.Blur()
	m.screen = screenSkills
	m.clearNotice()
}

func (m *Model) checkChoices() {
	var (
		out assessment.Outcome
		err error
	)
	if m.screen == screenReading {
		out, err = m.svc.CheckReading(m.ctx, m.level, m.choices.answers())
	} else {
		out, err = m.svc.CheckListening(m.ctx, m.level, m.choices.answers())
	}
	if err != nil {
		m.setError(checkNotice(err, "Select at least one answer first."))
		return
	}
	m.outcome = &out
	m.setNotice(fmt.Sprintf("Score: %d%% (%d/%d)", out.Result.Percent, out.Result.Matches, out.Result.Total))
}

func (m *Model) checkSpeaking() {
	if m.session.Recording() || m.session.Pending() {
		m.setError("Wait for the dictation to finish.")
		return
	}
	out, err := m.svc.CheckSpeaking(m.ctx, m.level, m.answer.Value())
	if err != nil {
		m.setError(checkNotice(err, "Type or dictate a sentence first."))
		return
	}
	m.outcome = &out
	m.setNotice(fmt.Sprintf("Matched words: %d/%d → %d%%", out.Result.Matches, out.Result.Total, out.Result.Percent))
}

func (m *Model) checkPronunciation() {
	if m.session.Recording() || m.session.Pending() {
		m.setError("Finish the recording first.")
		return
	}
	out, err := m.svc.CheckPronunciation(m.ctx, m.level, m.heard)
	if err != nil {
		m.setError(checkNotice(err, "Record yourself first (press r)."))
		return
	}
	m.outcome = &out
	m.setNotice(fmt.Sprintf("Pronunciation: %d%% (heard %q)", out.Result.Percent, out.Input))
}

func (m *Model) speak(text, notice string) tea.Cmd {
	if err := m.out.Available(); err != nil {
		m.setError(speechNotice(err))
		return nil
	}
	m.setNotice(notice)
	out := m.out
	ctx := m.ctx
	return func() tea.Msg {
		return speakDoneMsg{err: out.Speak(ctx, text)}
	}
}

func (m *Model) stopSpeech() {
	if err := m.out.Stop(); err != nil {
		m.setError("Failed to stop speech: " + err.Error())
	}
}

func (m *Model) toggleRecording() tea.Cmd {
	if m.session.Recording() {
		if err := m.session.Stop(); err != nil {
			m.setError(err.Error())
			return nil
		}
		m.setNotice("Recognizing…")
		return nil
	}
	if m.session.Pending() {
		m.setNotice("Still recognizing the last recording…")
		return nil
	}
	if err := m.in.Available(); err != nil {
		m.setError(speechNotice(err))
		return nil
	}
	m.stopSpeech()
	capture, err := m.in.Start(m.ctx)
	if err != nil {
		m.setError(speechNotice(err))
		return nil
	}
	id := m.session.Begin(capture)
	m.heard = ""
	m.outcome = nil
	m.setNotice("Recording… press again to stop.")
	ctx := m.ctx
	return func() tea.Msg {
		text, err := capture.Wait(ctx)
		return transcriptMsg{id: id, text: text, err: err}
	}
}

func (m *Model) handleTranscript(msg transcriptMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if m.session.Fail(msg.id, msg.err) {
			m.setError("Speech recognition failed: " + m.session.Err().Error())
		}
		return m, nil
	}
	if !m.session.Complete(msg.id, msg.text) {
		return m, nil
	}
	transcript, _ := m.session.Transcript()
	switch m.screen {
	case screenSpeaking:
		m.answer.SetValue(transcript)
		m.answer.CursorEnd()
		m.setNotice("Dictation added. Press enter to check.")
	case screenPronunciation:
		m.heard = transcript
		if strings.TrimSpace(transcript) == "" {
			m.setError("Nothing was recognized. Try again.")
		} else {
			m.setNotice("Recorded. Press enter to check.")
		}
	}
	return m, nil
}

func (m *Model) refreshResults() {
	sheet, err := m.svc.Results(m.ctx)
	if err != nil {
		m.setError(err.Error())
		return
	}
	m.results.SetRows(resultRows(sheet))
}

func (m *Model) shutdown() {
	m.session.Reset()
	m.stopSpeech()
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	w := contentWidth(m.width)
	m.passage.Width = w
	m.passage.Height = maxInt(3, minInt(8, m.height/3))
	m.answer.Width = maxInt(10, w-4)
	m.results.SetWidth(minInt(m.width, 80))
}

func (m *Model) setNotice(s string) {
	m.notice = s
	m.noticeErr = false
}

func (m *Model) setError(s string) {
	m.notice = s
	m.noticeErr = true
}

func (m *Model) clearNotice() {
	m.notice = ""
	m.noticeErr = false
}

func checkNotice(err error, noInput string) string {
	if errors.Is(err, assessment.ErrNoInput) {
		return noInput
	}
	return err.Error()
}

func speechNotice(err error) string {
	if errors.Is(err, speech.ErrUnavailable) {
		return "Speech is not available: " + speechReason(err)
	}
	return err.Error()
}

func speechReason(err error) string {
	return strings.TrimPrefix(err.Error(), speech.ErrUnavailable.Error()+": ")
}

func contentWidth(width int) int {
	w := int(float64(width) * 0.70)
	if w < 20 {
		w = minInt(width, 20)
	}
	return maxInt(1, w)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
