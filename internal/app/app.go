// Package app assembles the TUI: the root Bubble Tea model, the screen
// router, and the frame around every screen.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillforge/internal/content"
	"github.com/abhisek/skillforge/internal/evaluator"
	"github.com/abhisek/skillforge/internal/progress"
	"github.com/abhisek/skillforge/internal/router"
	"github.com/abhisek/skillforge/internal/screen"
	"github.com/abhisek/skillforge/internal/screens/home"
	"github.com/abhisek/skillforge/internal/store"
	"github.com/abhisek/skillforge/internal/ui/layout"
)

// Options carries the application's wired dependencies.
type Options struct {
	Catalog       *content.Catalog
	Ledger        *progress.Store
	Events        store.EventRepo
	Evaluator     evaluator.Client
	EvaluatorMode evaluator.Mode
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int

	points int
	badges int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Catalog, opts.Ledger, opts.Events, opts.Evaluator, opts.EvaluatorMode)
	m := AppModel{
		opts:   opts,
		router: router.New(homeScreen),
	}
	m.refreshTotals()
	return m
}

// refreshTotals recomputes the header's points and badge counters from
// the ledger. Called on navigation, not per frame.
func (m *AppModel) refreshTotals() {
	if m.opts.Ledger == nil || m.opts.Catalog == nil {
		return
	}
	ctx := context.Background()
	points, badges := 0, 0
	for _, p := range m.opts.Catalog.Paths() {
		rec, err := m.opts.Ledger.Get(ctx, p.ID)
		if err != nil || rec == nil {
			continue
		}
		points += rec.TotalPointsEarned
		badges += len(rec.BadgesEarned)
	}
	m.points = points
	m.badges = badges
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Screens that size themselves (the code editor) see it too.
		cmd := m.router.Update(msg)
		return m, cmd

	case router.PopScreenMsg, router.ReplaceScreenMsg:
		m.refreshTotals()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 && allowsBack(m.router.Active()) {
				m.refreshTotals()
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// allowsBack asks the active screen whether the global Esc handler may
// pop it. Screens mid-activity intercept Esc themselves.
func allowsBack(s screen.Screen) bool {
	if s == nil {
		return true
	}
	if g, ok := s.(screen.BackGuard); ok {
		return g.AllowBack()
	}
	return true
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.points, m.badges, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if footerHints == nil {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
