package quizrun

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/skillforge/internal/quiz"
	"github.com/abhisek/skillforge/internal/router"
	"github.com/abhisek/skillforge/internal/screen"
	"github.com/abhisek/skillforge/internal/ui/components"
	"github.com/abhisek/skillforge/internal/ui/layout"
)

// phase is the screen's display state. The session itself holds the
// authoritative lifecycle; phases only shape what is rendered.
type phase int

const (
	phaseAnswering phase = iota
	phaseConfirmSubmit
	phaseConfirmExit
	phaseSubmitting
	phaseResults
)

// QuizScreen drives one quiz session from first question to results.
type QuizScreen struct {
	session *quiz.Session
	phase   phase

	choice    components.Choice
	remaining int

	errMsg string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.BackGuard = (*QuizScreen)(nil)

// New starts a session over the quiz and returns its screen. The
// countdown starts immediately.
func New(q *quiz.Quiz, cfg quiz.Config) *QuizScreen {
	s := &QuizScreen{
		session:   quiz.NewSession(q, cfg),
		remaining: q.TimeLimitSeconds(),
	}
	s.loadChoice()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return tickCmd()
}

func (s *QuizScreen) Title() string {
	return s.session.Quiz().Title
}

// AllowBack keeps the global Esc handler out: leaving a live quiz goes
// through the exit confirmation.
func (s *QuizScreen) AllowBack() bool {
	return false
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseConfirmSubmit, phaseConfirmExit:
		return []layout.KeyHint{
			{Key: "Y", Description: "Confirm"},
			{Key: "N", Description: "Cancel"},
		}
	case phaseSubmitting:
		return nil
	case phaseResults:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}

	hints := []layout.KeyHint{
		{Key: "←/→", Description: "Question"},
		{Key: "↑↓", Description: "Option"},
	}
	if s.currentQuestion().Kind == quiz.KindMultipleSelect {
		hints = append(hints, layout.KeyHint{Key: "Space", Description: "Toggle"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Choose"})
	}
	hints = append(hints,
		layout.KeyHint{Key: "S", Description: "Submit"},
		layout.KeyHint{Key: "Esc", Description: "Leave"},
	)
	return hints
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return s.handleTick()
	case submittedMsg:
		return s.handleSubmitted(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleTick() (screen.Screen, tea.Cmd) {
	s.remaining = s.session.Remaining()

	// The countdown may have expired and auto-submitted between ticks.
	if s.session.Status() == quiz.StatusCompleted && s.phase != phaseResults {
		s.phase = phaseResults
	}

	// Keep ticking through results so the advisory remote verdict can
	// appear when it arrives.
	return s, tickCmd()
}

func (s *QuizScreen) handleSubmitted(msg submittedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		if errors.Is(msg.Err, quiz.ErrSessionExited) {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		s.errMsg = msg.Err.Error()
		s.phase = phaseAnswering
		return s, nil
	}
	s.phase = phaseResults
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.phase {
	case phaseConfirmSubmit:
		switch key {
		case "y", "Y":
			return s.startSubmit()
		case "n", "N", "esc":
			s.phase = phaseAnswering
		}
		return s, nil

	case phaseConfirmExit:
		switch key {
		case "y", "Y":
			if err := s.session.Exit(); err != nil {
				// A submission won the race; show its result instead.
				s.phase = phaseResults
				return s, nil
			}
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.phase = phaseAnswering
		}
		return s, nil

	case phaseSubmitting:
		return s, nil

	case phaseResults:
		if key == "esc" || key == "enter" || key == "q" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	// Answering.
	switch key {
	case "esc":
		s.phase = phaseConfirmExit
		return s, nil
	case "s", "S":
		if s.session.AnsweredCount() < len(s.session.Quiz().Questions) {
			s.phase = phaseConfirmSubmit
			return s, nil
		}
		return s.startSubmit()
	case "left", "h":
		s.session.Prev()
		s.loadChoice()
		return s, nil
	case "right", "l", "tab":
		s.session.Next()
		s.loadChoice()
		return s, nil
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		s.session.Goto(int(key[0] - '1'))
		s.loadChoice()
		return s, nil
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	s.recordChoice()
	return s, cmd
}

// startSubmit runs the submission off the UI goroutine.
func (s *QuizScreen) startSubmit() (screen.Screen, tea.Cmd) {
	s.phase = phaseSubmitting
	s.errMsg = ""
	session := s.session
	return s, func() tea.Msg {
		result, err := session.Submit(context.Background())
		return submittedMsg{Result: result, Err: err}
	}
}

func (s *QuizScreen) currentQuestion() *quiz.Question {
	q := s.session.Quiz()
	idx := s.session.CurrentIndex()
	return &q.Questions[idx]
}

// loadChoice rebuilds the option selector for the current question,
// restoring any recorded answer.
func (s *QuizScreen) loadChoice() {
	q := s.currentQuestion()

	options := q.Options
	if q.Kind == quiz.KindTrueFalse {
		options = []string{"True", "False"}
	}
	multi := q.Kind == quiz.KindMultipleSelect

	recorded, ok := s.session.Answer(q.ID)
	if !ok {
		s.choice = components.NewChoice(options, multi)
		return
	}

	var picked []int
	switch recorded.Kind {
	case quiz.KindMultipleChoice:
		picked = []int{recorded.Option}
	case quiz.KindMultipleSelect:
		picked = recorded.Options
	case quiz.KindTrueFalse:
		if recorded.Bool {
			picked = []int{0}
		} else {
			picked = []int{1}
		}
	}
	s.choice = components.NewChoiceWithPicked(options, multi, picked)
}

// recordChoice captures the selector state into the session.
func (s *QuizScreen) recordChoice() {
	if !s.choice.HasChoice() {
		return
	}
	q := s.currentQuestion()
	switch q.Kind {
	case quiz.KindMultipleChoice:
		s.session.RecordAnswer(q.ID, quiz.OptionAnswer(s.choice.Chosen()))
	case quiz.KindMultipleSelect:
		s.session.RecordAnswer(q.ID, quiz.OptionsAnswer(s.choice.Picked()...))
	case quiz.KindTrueFalse:
		s.session.RecordAnswer(q.ID, quiz.BoolAnswer(s.choice.Chosen() == 0))
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
