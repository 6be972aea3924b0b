package workbench

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillforge/internal/exercise"
	"github.com/abhisek/skillforge/internal/ui/theme"
)

func (s *WorkbenchScreen) View(width, height int) string {
	switch s.phase {
	case phaseConfirmLeave:
		return renderConfirmLeave(width)
	case phaseResult:
		return s.renderResult(width)
	}
	return s.renderEditor(width)
}

func (s *WorkbenchScreen) renderEditor(width int) string {
	ex := s.attempt.Exercise()

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + ex.Title))
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  ·  %s · %d pts", ex.Difficulty, ex.Points)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n")

	for i, inst := range ex.Instructions {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  %d. %s", i+1, inst)) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().MarginLeft(2).Render(s.editor.View()))
	b.WriteString("\n")

	if s.phase == phaseBusy {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render("  "+s.busyLabel) + "\n")
		return b.String()
	}

	switch s.panel {
	case panelHint:
		label := fmt.Sprintf("  Hint %d/%d", s.hintLevel, exercise.MaxHintLevel)
		if s.hintLevel == exercise.MaxHintLevel {
			label += " (last one)"
		}
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(label) + "\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(max(width-6, 20)).
			MarginLeft(2).
			Render(s.hint) + "\n")

	case panelTests:
		b.WriteString("\n" + s.renderTestRun(width))

	case panelError:
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Error).Render("  "+s.errMsg) + "\n")
	}

	return b.String()
}

func (s *WorkbenchScreen) renderTestRun(width int) string {
	run := s.testRun
	if run == nil {
		return ""
	}

	var b strings.Builder
	verdict := theme.Correct.Render(fmt.Sprintf("  Tests: %d/%d passed", run.PassedCount, run.TotalCount))
	if !run.AllPassed {
		verdict = theme.Incorrect.Render(fmt.Sprintf("  Tests: %d/%d passed", run.PassedCount, run.TotalCount))
	}
	b.WriteString(verdict + "\n")

	for _, r := range run.Results {
		mark := theme.Correct.Render("✓")
		if !r.Passed {
			mark = theme.Incorrect.Render("✗")
		}
		b.WriteString(fmt.Sprintf("    %s %s", mark, theme.Body.Render(r.Name)))
		if !r.Passed && r.Error != "" {
			b.WriteString(theme.Hint.Render("  " + truncate(r.Error, max(width-20, 20))))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (s *WorkbenchScreen) renderResult(width int) string {
	result := s.attempt.Result()
	if result == nil {
		return ""
	}
	ex := s.attempt.Exercise()

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
		Render(fmt.Sprintf("Score: %d/100", result.Score)))
	b.WriteString("\n")

	if result.Passed {
		points := result.PointsEarned
		if points == 0 {
			points = ex.Points
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(fmt.Sprintf("+%d points", points)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if result.Feedback != "" {
		feedback := lipgloss.NewStyle().
			Width(min(width-8, 72)).
			Foreground(theme.Text).
			Render(result.Feedback)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, feedback))
		b.WriteString("\n\n")
	}

	for _, r := range result.TestResults {
		mark := theme.Correct.Render("✓")
		if !r.Passed {
			mark = theme.Incorrect.Render("✗")
		}
		line := fmt.Sprintf("%s %s", mark, r.Name)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	hint := "Press Esc to go back"
	if !result.Passed {
		hint = "Press R to try again · Esc to go back"
	}
	b.WriteString("\n" + lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(hint))

	return b.String()
}

func renderConfirmLeave(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Leave this exercise?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Unsubmitted work is discarded."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Leave"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] Keep working"))
	return b.String()
}

func truncate(s string, width int) string {
	if width < 4 || len(s) <= width {
		return s
	}
	return s[:width-3] + "..."
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
