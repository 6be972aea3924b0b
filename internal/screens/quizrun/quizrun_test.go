package quizrun

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/skillforge/internal/quiz"
	"github.com/abhisek/skillforge/internal/router"
	"github.com/abhisek/skillforge/internal/screen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// testQuiz has no time limit so no countdown goroutine runs.
func testQuiz() *quiz.Quiz {
	return &quiz.Quiz{
		ID:           "quiz-test",
		Title:        "Test Quiz",
		PassingScore: 70,
		Questions: []quiz.Question{
			{
				ID:            "q1",
				Text:          "Pick the first option",
				Kind:          quiz.KindMultipleChoice,
				Options:       []string{"first", "second"},
				Points:        10,
				CorrectOption: 0,
			},
			{
				ID:          "q2",
				Text:        "True is true",
				Kind:        quiz.KindTrueFalse,
				Points:      10,
				CorrectBool: true,
			},
		},
	}
}

func testQuizScreen() *QuizScreen {
	return New(testQuiz(), quiz.Config{})
}

func TestQuizScreen_Title(t *testing.T) {
	s := testQuizScreen()
	if s.Title() != "Test Quiz" {
		t.Errorf("Title = %q, want %q", s.Title(), "Test Quiz")
	}
}

func TestQuizScreen_AllowBack(t *testing.T) {
	s := testQuizScreen()
	if s.AllowBack() {
		t.Error("expected AllowBack to be false during a live quiz")
	}
}

func TestQuizScreen_View(t *testing.T) {
	s := testQuizScreen()
	if s.View(80, 24) == "" {
		t.Error("expected non-empty view while answering")
	}
}

func TestQuizScreen_ExitConfirm(t *testing.T) {
	s := testQuizScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	qs := scr.(*QuizScreen)
	if qs.phase != phaseConfirmExit {
		t.Error("expected exit confirmation after Esc")
	}

	scr, _ = qs.Update(keyPress('n'))
	qs = scr.(*QuizScreen)
	if qs.phase != phaseAnswering {
		t.Error("expected exit confirmation to be dismissed")
	}
}

func TestQuizScreen_ExitConfirm_Yes(t *testing.T) {
	s := testQuizScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after confirming exit")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected exit to pop the screen")
	}
	if s.session.Status() != quiz.StatusExited {
		t.Errorf("session status = %q, want %q", s.session.Status(), quiz.StatusExited)
	}
}

func TestQuizScreen_AnswerRecording(t *testing.T) {
	s := testQuizScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	qs := scr.(*QuizScreen)

	a, ok := qs.session.Answer("q1")
	if !ok {
		t.Fatal("expected an answer recorded for q1")
	}
	if a.Kind != quiz.KindMultipleChoice || a.Option != 0 {
		t.Errorf("answer = %+v, want option 0", a)
	}
}

func TestQuizScreen_AnswerRestoredOnNavigation(t *testing.T) {
	s := testQuizScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter)) // answer q1
	scr, _ = scr.Update(keyPress('l'))            // to q2
	scr, _ = scr.Update(keyPress('h'))            // back to q1
	qs := scr.(*QuizScreen)

	if !qs.choice.HasChoice() {
		t.Error("expected the recorded answer to be restored")
	}
}

func TestQuizScreen_SubmitWarnsWhenUnanswered(t *testing.T) {
	s := testQuizScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('s'))
	qs := scr.(*QuizScreen)
	if qs.phase != phaseConfirmSubmit {
		t.Error("expected submit confirmation with unanswered questions")
	}
}

func TestQuizScreen_SubmitFlow(t *testing.T) {
	s := testQuizScreen()

	// Answer both questions.
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(keyPress('l'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter)) // picks "True"

	// All answered: submit goes straight to the async command.
	scr, cmd := scr.Update(keyPress('s'))
	qs := scr.(*QuizScreen)
	if qs.phase != phaseSubmitting {
		t.Fatalf("phase = %v, want submitting", qs.phase)
	}
	if cmd == nil {
		t.Fatal("expected a submit command")
	}

	msg, ok := cmd().(submittedMsg)
	if !ok {
		t.Fatal("expected a submittedMsg from the submit command")
	}
	if msg.Err != nil {
		t.Fatalf("submit error: %v", msg.Err)
	}
	if !msg.Result.Passed || msg.Result.Percentage != 100 {
		t.Errorf("result = %+v, want a 100%% pass", msg.Result)
	}

	scr, _ = qs.Update(msg)
	qs = scr.(*QuizScreen)
	if qs.phase != phaseResults {
		t.Error("expected results after submission")
	}
	if qs.View(80, 24) == "" {
		t.Error("expected non-empty results view")
	}
}

func TestQuizScreen_ExitAfterSubmitShowsResults(t *testing.T) {
	s := testQuizScreen()

	if _, err := s.session.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}

	// The exit confirmation loses the race to the finished submission.
	s.phase = phaseConfirmExit
	scr, _ := s.Update(keyPress('y'))
	qs := scr.(*QuizScreen)
	if qs.phase != phaseResults {
		t.Error("expected results when exit loses to a submission")
	}
}
