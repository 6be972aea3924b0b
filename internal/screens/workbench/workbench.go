// Package workbench is the exercise screen: a code editor over an
// attempt, with test runs, the hint ladder, and submission.
package workbench

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/skillforge/internal/evaluator"
	"github.com/abhisek/skillforge/internal/exercise"
	"github.com/abhisek/skillforge/internal/router"
	"github.com/abhisek/skillforge/internal/screen"
	"github.com/abhisek/skillforge/internal/ui/components"
	"github.com/abhisek/skillforge/internal/ui/layout"
)

type phase int

const (
	phaseEditing phase = iota
	phaseBusy
	phaseConfirmLeave
	phaseResult
)

// panel is what the strip under the editor currently shows.
type panel int

const (
	panelNone panel = iota
	panelHint
	panelTests
	panelError
)

// WorkbenchScreen drives one exercise attempt.
type WorkbenchScreen struct {
	attempt *exercise.Attempt
	editor  components.CodeEditor

	phase     phase
	busyLabel string

	panel     panel
	hint      string
	hintLevel int
	testRun   *evaluator.TestRun
	errMsg    string

	width  int
	height int
}

var _ screen.Screen = (*WorkbenchScreen)(nil)
var _ screen.KeyHintProvider = (*WorkbenchScreen)(nil)
var _ screen.BackGuard = (*WorkbenchScreen)(nil)

// New starts an attempt over the exercise and returns its screen.
func New(ex *exercise.Exercise, cfg exercise.Config) *WorkbenchScreen {
	attempt := exercise.NewAttempt(ex, cfg)
	return &WorkbenchScreen{
		attempt: attempt,
		editor:  components.NewCodeEditor(attempt.Code(), 72, 12),
	}
}

func (s *WorkbenchScreen) Init() tea.Cmd {
	return s.editor.Init()
}

func (s *WorkbenchScreen) Title() string {
	return s.attempt.Exercise().Title
}

// AllowBack keeps the global Esc handler out; Esc is a normal editing
// key here and leaving goes through a confirmation.
func (s *WorkbenchScreen) AllowBack() bool {
	return false
}

func (s *WorkbenchScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseConfirmLeave:
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave"},
			{Key: "N", Description: "Stay"},
		}
	case phaseBusy:
		return nil
	case phaseResult:
		return []layout.KeyHint{
			{Key: "R", Description: "Try again"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Ctrl+T", Description: "Run tests"},
		{Key: "Ctrl+H", Description: "Hint"},
		{Key: "Ctrl+S", Description: "Submit"},
		{Key: "Esc", Description: "Leave"},
	}
}

func (s *WorkbenchScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.editor.SetSize(max(msg.Width-8, 40), editorHeight(msg.Height))
		return s, nil
	case hintMsg:
		return s.handleHint(msg)
	case testsMsg:
		return s.handleTests(msg)
	case evalMsg:
		return s.handleEval(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *WorkbenchScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.phase {
	case phaseBusy:
		return s, nil

	case phaseConfirmLeave:
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.phase = phaseEditing
		}
		return s, nil

	case phaseResult:
		switch key {
		case "r", "R":
			if err := s.attempt.Reopen(); err == nil {
				s.phase = phaseEditing
				s.panel = panelNone
				return s, s.editor.Focus()
			}
			return s, nil
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	// Editing.
	switch key {
	case "esc":
		s.phase = phaseConfirmLeave
		return s, nil
	case "ctrl+h":
		return s.startHint()
	case "ctrl+t":
		return s.startTests()
	case "ctrl+s":
		return s.startSubmit()
	}

	var cmd tea.Cmd
	s.editor, cmd = s.editor.Update(msg)
	if err := s.attempt.SetCode(s.editor.Value()); err != nil &&
		!errors.Is(err, exercise.ErrAttemptBusy) {
		s.showError(err)
	}
	return s, cmd
}

func (s *WorkbenchScreen) startHint() (screen.Screen, tea.Cmd) {
	s.phase = phaseBusy
	s.busyLabel = "Fetching hint..."
	attempt := s.attempt
	return s, func() tea.Msg {
		hint, err := attempt.RequestHint(context.Background())
		return hintMsg{Hint: hint, Err: err}
	}
}

func (s *WorkbenchScreen) startTests() (screen.Screen, tea.Cmd) {
	s.phase = phaseBusy
	s.busyLabel = "Running tests..."
	attempt := s.attempt
	return s, func() tea.Msg {
		run, err := attempt.RunTests(context.Background())
		return testsMsg{Run: run, Err: err}
	}
}

func (s *WorkbenchScreen) startSubmit() (screen.Screen, tea.Cmd) {
	s.phase = phaseBusy
	s.busyLabel = "Submitting for evaluation..."
	attempt := s.attempt
	return s, func() tea.Msg {
		result, err := attempt.Submit(context.Background())
		return evalMsg{Result: result, Err: err}
	}
}

func (s *WorkbenchScreen) handleHint(msg hintMsg) (screen.Screen, tea.Cmd) {
	s.phase = phaseEditing
	if msg.Err != nil {
		s.showError(msg.Err)
		return s, nil
	}
	s.panel = panelHint
	s.hint = msg.Hint
	s.hintLevel = s.attempt.HintLevel()
	return s, nil
}

func (s *WorkbenchScreen) handleTests(msg testsMsg) (screen.Screen, tea.Cmd) {
	s.phase = phaseEditing
	if msg.Err != nil {
		s.showError(msg.Err)
		return s, nil
	}
	s.panel = panelTests
	s.testRun = msg.Run
	return s, nil
}

func (s *WorkbenchScreen) handleEval(msg evalMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		// Evaluation failures leave the attempt in Draft with the code
		// intact; the learner just sees the error and keeps working.
		s.phase = phaseEditing
		s.showError(msg.Err)
		return s, nil
	}
	s.phase = phaseResult
	return s, nil
}

func (s *WorkbenchScreen) showError(err error) {
	s.panel = panelError
	switch {
	case errors.Is(err, exercise.ErrEmptySubmission):
		s.errMsg = "Your solution is empty. Write some code first."
	case errors.Is(err, exercise.ErrEvaluationUnavailable):
		s.errMsg = "The evaluator is unavailable right now. Your code is safe; try again shortly."
	default:
		s.errMsg = err.Error()
	}
}

func editorHeight(total int) int {
	h := total - 14
	if h < 6 {
		h = 6
	}
	if h > 20 {
		h = 20
	}
	return h
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
