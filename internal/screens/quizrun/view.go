package quizrun

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillforge/internal/quiz"
	"github.com/abhisek/skillforge/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	switch s.phase {
	case phaseConfirmSubmit:
		return s.renderConfirmSubmit(width)
	case phaseConfirmExit:
		return renderConfirmExit(width)
	case phaseSubmitting:
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Scoring...")
	case phaseResults:
		return s.renderResults(width)
	}
	return s.renderQuestion(width)
}

func (s *QuizScreen) renderQuestion(width int) string {
	qz := s.session.Quiz()
	idx := s.session.CurrentIndex()
	q := &qz.Questions[idx]

	var b strings.Builder

	// Status line: position, answered count, countdown.
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", idx+1, len(qz.Questions)))

	timerStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if s.remaining > 0 && s.remaining <= 60 {
		timerStyle = lipgloss.NewStyle().Foreground(theme.Warning).Bold(true)
	}
	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("answered %d/%d  ", s.session.AnsweredCount(), len(qz.Questions))) +
		timerStyle.Render(formatClock(s.remaining))

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if gap < 1 {
		gap = 1
	}
	b.WriteString(left + strings.Repeat(" ", gap) + right)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Question text.
	b.WriteString(lipgloss.NewStyle().
		Width(width - 4).
		Foreground(theme.Text).
		Bold(true).
		Render("  " + q.Text))
	b.WriteString("\n")

	if q.Code != "" {
		code := theme.CodeBlock.Render(q.Code)
		b.WriteString("\n" + lipgloss.NewStyle().MarginLeft(4).Render(code) + "\n")
	}

	if q.Kind == quiz.KindMultipleSelect {
		b.WriteString("\n" + theme.Hint.Render("  Select all that apply") + "\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().MarginLeft(2).Render(s.choice.View()))

	if s.errMsg != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Error).Render("  "+s.errMsg))
	}

	return b.String()
}

func (s *QuizScreen) renderConfirmSubmit(width int) string {
	unanswered := len(s.session.Quiz().Questions) - s.session.AnsweredCount()

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Submit now?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Warning).
		Render(fmt.Sprintf("%d question(s) still unanswered; they will score as incorrect.", unanswered)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Submit anyway"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] Keep answering"))

	return b.String()
}

func renderConfirmExit(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Leave this quiz?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Nothing will be recorded. Your answers are discarded."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Leave without submitting"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] Keep going"))

	return b.String()
}

func (s *QuizScreen) renderResults(width int) string {
	result := s.session.Result()
	if result == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Scoring...")
	}

	qz := s.session.Quiz()
	var b strings.Builder
	b.WriteString("\n")

	verdict := theme.Correct.Render("PASSED")
	if !result.Passed {
		verdict = theme.Incorrect.Render("NOT PASSED")
	}
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(verdict))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("Score: %d%%  (passing: %d%%)", result.Percentage, qz.PassingScore)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d of %d correct · %d points earned", result.CorrectCount, result.TotalQuestions, result.PointsEarned)))
	b.WriteString("\n\n")

	// Per-question verdicts with explanations for misses.
	for i := range qz.Questions {
		q := &qz.Questions[i]
		mark := theme.Correct.Render("✓")
		if !result.Correct[q.ID] {
			mark = theme.Incorrect.Render("✗")
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", mark, theme.Body.Render(truncate(q.Text, width-8))))
		if !result.Correct[q.ID] && q.Explanation != "" {
			b.WriteString(theme.Hint.Render("     "+truncate(q.Explanation, width-10)) + "\n")
		}
	}

	if remote := s.session.RemoteResult(); remote != nil && remote.Score != result.Percentage {
		b.WriteString("\n" + lipgloss.NewStyle().
			Foreground(theme.Warning).
			Render(fmt.Sprintf("  Evaluator scored this %d%%; your local score stands.", remote.Score)))
	}

	b.WriteString("\n\n" + lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press Esc to go back"))

	return b.String()
}

func formatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func truncate(s string, width int) string {
	if width < 4 || len(s) <= width {
		return s
	}
	return s[:width-3] + "..."
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
