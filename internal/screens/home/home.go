// Package home is the entry screen: learning paths with their
// progress, plus the activity log.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillforge/internal/content"
	"github.com/abhisek/skillforge/internal/evaluator"
	"github.com/abhisek/skillforge/internal/progress"
	"github.com/abhisek/skillforge/internal/router"
	"github.com/abhisek/skillforge/internal/screen"
	"github.com/abhisek/skillforge/internal/screens/history"
	"github.com/abhisek/skillforge/internal/screens/paths"
	"github.com/abhisek/skillforge/internal/store"
	"github.com/abhisek/skillforge/internal/ui/components"
	"github.com/abhisek/skillforge/internal/ui/theme"
)

// HomeScreen is the main entry screen of the application.
type HomeScreen struct {
	menu components.Menu

	totalPoints int
	totalBadges int
	evalMode    evaluator.Mode
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. Each path's menu entry carries its
// current completion so the learner sees where they stand at a glance.
func New(catalog *content.Catalog, ledger *progress.Store, events store.EventRepo, eval evaluator.Client, evalMode evaluator.Mode) *HomeScreen {
	s := &HomeScreen{evalMode: evalMode}

	ctx := context.Background()
	var items []components.MenuItem

	for i := range catalog.Paths() {
		p := &catalog.Paths()[i]

		detail := p.Description
		if ledger != nil {
			if rec, err := ledger.Get(ctx, p.ID); err == nil && rec != nil {
				s.totalPoints += rec.TotalPointsEarned
				s.totalBadges += len(rec.BadgesEarned)
				detail = fmt.Sprintf("%d%% complete · %d/%d modules · %d pts",
					rec.OverallProgress, len(rec.CompletedNodes), len(p.Nodes), rec.TotalPointsEarned)
			}
		}

		path := p
		items = append(items, components.MenuItem{
			Label:  strings.ToUpper(p.Title),
			Detail: detail,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: paths.New(catalog, path, ledger, events, eval),
					}
				}
			},
		})
	}

	items = append(items,
		components.MenuItem{
			Label: "ACTIVITY LOG",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: history.New(events)}
				}
			},
		},
		components.MenuItem{
			Label: "QUIT",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	)

	s.menu = components.NewMenu(items)
	return s
}

// TotalPoints returns the points summed across all paths, for the header.
func (s *HomeScreen) TotalPoints() int { return s.totalPoints }

// TotalBadges returns the badge count summed across all paths.
func (s *HomeScreen) TotalBadges() int { return s.totalBadges }

func (s *HomeScreen) Init() tea.Cmd {
	return nil
}

func (s *HomeScreen) Title() string {
	return "Home"
}

func (s *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("SkillForge"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Learn by doing: quizzes, exercises, honest feedback"))
	b.WriteString("\n\n")

	menu := s.menu.View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("evaluator: %s", s.evalMode)))

	return b.String()
}
