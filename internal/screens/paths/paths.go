// Package paths is the learning-path browser: nodes in order, their
// completion state, and entry points into quizzes and exercises.
package paths

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillforge/internal/content"
	"github.com/abhisek/skillforge/internal/evaluator"
	"github.com/abhisek/skillforge/internal/exercise"
	"github.com/abhisek/skillforge/internal/progress"
	"github.com/abhisek/skillforge/internal/quiz"
	"github.com/abhisek/skillforge/internal/router"
	"github.com/abhisek/skillforge/internal/screen"
	"github.com/abhisek/skillforge/internal/screens/quizrun"
	"github.com/abhisek/skillforge/internal/screens/workbench"
	"github.com/abhisek/skillforge/internal/store"
	"github.com/abhisek/skillforge/internal/ui/components"
	"github.com/abhisek/skillforge/internal/ui/layout"
	"github.com/abhisek/skillforge/internal/ui/theme"
)

// activity is one selectable row: a quiz or an exercise within a node.
type activity struct {
	node     *content.Node
	quiz     *quiz.Quiz
	exercise *exercise.Exercise
}

// PathScreen lists a path's nodes and launches their activities.
type PathScreen struct {
	catalog   *content.Catalog
	path      *content.Path
	ledger    *progress.Store
	events    store.EventRepo
	evaluator evaluator.Client

	activities []activity
	cursor     int
	record     *progress.Record
}

var _ screen.Screen = (*PathScreen)(nil)
var _ screen.KeyHintProvider = (*PathScreen)(nil)

// New creates the browser for one learning path.
func New(catalog *content.Catalog, path *content.Path, ledger *progress.Store, events store.EventRepo, eval evaluator.Client) *PathScreen {
	s := &PathScreen{
		catalog:   catalog,
		path:      path,
		ledger:    ledger,
		events:    events,
		evaluator: eval,
	}
	for i := range path.Nodes {
		n := &path.Nodes[i]
		if n.Quiz != nil {
			s.activities = append(s.activities, activity{node: n, quiz: n.Quiz})
		}
		for j := range n.Exercises {
			s.activities = append(s.activities, activity{node: n, exercise: &n.Exercises[j]})
		}
	}
	s.reload()
	return s
}

// reload refreshes the ledger snapshot; called on entry and whenever a
// finished activity pops back to this screen.
func (s *PathScreen) reload() {
	if s.ledger == nil {
		return
	}
	rec, err := s.ledger.Get(context.Background(), s.path.ID)
	if err == nil {
		s.record = rec
	}
}

func (s *PathScreen) Init() tea.Cmd {
	s.reload()
	return nil
}

func (s *PathScreen) Title() string {
	return s.path.Title
}

func (s *PathScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *PathScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.activities)-1 {
			s.cursor++
		}
	case "enter":
		return s.launch()
	}
	return s, nil
}

// launch opens the selected activity. The node is marked current so a
// resumed session lands back where the learner left off.
func (s *PathScreen) launch() (screen.Screen, tea.Cmd) {
	if s.cursor < 0 || s.cursor >= len(s.activities) {
		return s, nil
	}
	act := s.activities[s.cursor]

	if s.ledger != nil {
		// Ledger failures never block starting an activity.
		if err := s.ledger.SetCurrentNode(context.Background(), s.path.ID, act.node.ID); err != nil {
			fmt.Fprintf(os.Stderr, "warning: set current node: %v\n", err)
		}
	}

	if act.quiz != nil {
		cfg := quiz.Config{
			PathID:     s.path.ID,
			NodeID:     act.node.ID,
			TotalNodes: s.catalog.TotalNodes(s.path.ID),
			Ledger:     s.ledger,
			Events:     s.events,
		}
		if s.evaluator != nil {
			cfg.Reconciler = evalReconciler{client: s.evaluator}
		}
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: quizrun.New(act.quiz, cfg)}
		}
	}

	cfg := exercise.Config{
		PathID:     s.path.ID,
		NodeID:     act.node.ID,
		TotalNodes: s.catalog.TotalNodes(s.path.ID),
		Evaluator:  s.evaluator,
		Ledger:     s.ledger,
		Events:     s.events,
	}
	ex := act.exercise
	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: workbench.New(ex, cfg)}
	}
}

func (s *PathScreen) View(width, height int) string {
	var b strings.Builder

	// Path summary with overall progress.
	var percent float64
	var points int
	if s.record != nil {
		percent = float64(s.record.OverallProgress) / 100
		points = s.record.TotalPointsEarned
	}
	bar := components.NewProgressBar("  Progress", percent, true, min(width-4, 60))
	b.WriteString("\n" + bar.View())
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("   ◆ %d pts", points)))
	b.WriteString("\n\n")

	var lastNode string
	row := 0
	for _, act := range s.activities {
		if act.node.ID != lastNode {
			lastNode = act.node.ID
			marker := theme.Pending.Render("○")
			if s.record != nil && s.record.IsCompleted(act.node.ID) {
				marker = theme.Done.Render("●")
			}
			b.WriteString(fmt.Sprintf("  %s %s\n", marker,
				lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(act.node.Title)))
		}

		label, detail := describe(act)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		prefix := "      "
		if row == s.cursor {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
			prefix = "    ▸ "
		}
		b.WriteString(style.Render(prefix+label) + theme.Hint.Render("  "+detail) + "\n")
		row++
	}

	if len(s.activities) == 0 {
		b.WriteString(theme.Hint.Render("  This path has no activities yet."))
	}

	return b.String()
}

func describe(act activity) (label, detail string) {
	if act.quiz != nil {
		return "Quiz: " + act.quiz.Title,
			fmt.Sprintf("%d questions · %d min", len(act.quiz.Questions), act.quiz.TimeLimitMinutes)
	}
	return "Exercise: " + act.exercise.Title,
		fmt.Sprintf("%s · %d pts", act.exercise.Difficulty, act.exercise.Points)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
