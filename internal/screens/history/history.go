// Package history shows the learner's recent quiz submissions and
// exercise evaluations from the event log.
package history

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillforge/internal/router"
	"github.com/abhisek/skillforge/internal/screen"
	"github.com/abhisek/skillforge/internal/store"
	"github.com/abhisek/skillforge/internal/ui/layout"
	"github.com/abhisek/skillforge/internal/ui/theme"
)

const loadLimit = 50

// entry is one row of the merged activity feed.
type entry struct {
	sequence  int64
	timestamp time.Time
	kind      string // "quiz" or "exercise"
	title     string
	score     int
	passed    bool
	points    int
	auto      bool
	hints     int
}

type historyLoadedMsg struct {
	Entries []entry
	Err     error
}

// HistoryScreen displays past quiz and exercise outcomes.
type HistoryScreen struct {
	eventRepo store.EventRepo
	entries   []entry
	selected  int
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{eventRepo: eventRepo}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		quizzes, err := s.eventRepo.QuizSubmissions(ctx, store.QueryOpts{Limit: loadLimit})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		evals, err := s.eventRepo.ExerciseEvaluations(ctx, store.QueryOpts{Limit: loadLimit})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		entries := make([]entry, 0, len(quizzes)+len(evals))
		for _, q := range quizzes {
			entries = append(entries, entry{
				sequence:  q.Sequence,
				timestamp: q.Timestamp,
				kind:      "quiz",
				title:     q.QuizID,
				score:     q.Score,
				passed:    q.Passed,
				points:    q.PointsEarned,
				auto:      q.AutoSubmitted,
			})
		}
		for _, e := range evals {
			entries = append(entries, entry{
				sequence:  e.Sequence,
				timestamp: e.Timestamp,
				kind:      "exercise",
				title:     e.ExerciseID,
				score:     e.Score,
				passed:    e.Passed,
				hints:     e.HintsUsed,
			})
		}

		// Merge the two feeds into one timeline, newest first.
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].sequence > entries[j].sequence
		})
		if len(entries) > loadLimit {
			entries = entries[:loadLimit]
		}

		return historyLoadedMsg{Entries: entries}
	}
}

func (s *HistoryScreen) Title() string {
	return "Activity"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.entries = msg.Entries
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.entries)-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading activity...")
	}
	if len(s.entries) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Nothing here yet. Finish a quiz or an exercise first.")
	}

	var b strings.Builder
	b.WriteString("\n")

	visible := layout.ContentHeight(height) - 2
	if visible < 1 {
		visible = 1
	}
	start := 0
	if s.selected >= visible {
		start = s.selected - visible + 1
	}

	for i := start; i < len(s.entries) && i-start < visible; i++ {
		e := s.entries[i]

		verdict := theme.Correct.Render("pass")
		if !e.passed {
			verdict = theme.Incorrect.Render("fail")
		}

		detail := fmt.Sprintf("%d%%", e.score)
		switch {
		case e.kind == "quiz" && e.auto:
			detail += " · time expired"
		case e.kind == "quiz" && e.points > 0:
			detail += fmt.Sprintf(" · +%d pts", e.points)
		case e.kind == "exercise" && e.hints > 0:
			detail += fmt.Sprintf(" · %d hint(s)", e.hints)
		}

		line := fmt.Sprintf("%-9s %-28s %s  %s",
			e.kind, truncate(e.title, 28), verdict,
			theme.Hint.Render(detail+" · "+e.timestamp.Local().Format("Jan 2 15:04")))

		if i == s.selected {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  ▸ " + line))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("    " + line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func truncate(s string, width int) string {
	if width < 4 || len(s) <= width {
		return s
	}
	return s[:width-3] + "..."
}
