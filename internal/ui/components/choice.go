package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillforge/internal/ui/theme"
)

// Choice is an option selector for quiz questions. In single mode the
// cursor position is the selection; in multi mode space toggles options
// in and out of the picked set. Answer keys are never shown here; the
// caller reveals correctness only after the whole quiz is scored.
type Choice struct {
	Options []string
	Multi   bool

	Cursor int
	picked map[int]bool
	chosen int // single mode; -1 until a choice is made
}

// NewChoice creates a selector over the options.
func NewChoice(options []string, multi bool) Choice {
	return Choice{
		Options: options,
		Multi:   multi,
		picked:  make(map[int]bool),
		chosen:  -1,
	}
}

// NewChoiceWithPicked restores a selector to a previously made choice,
// so navigating back to an answered question shows the recorded answer.
func NewChoiceWithPicked(options []string, multi bool, picked []int) Choice {
	c := NewChoice(options, multi)
	for _, i := range picked {
		if i >= 0 && i < len(options) {
			c.picked[i] = true
			c.chosen = i
		}
	}
	return c
}

// Update handles keyboard navigation and selection.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "space", " ":
		if c.Multi {
			c.picked[c.Cursor] = !c.picked[c.Cursor]
		} else {
			c.chosen = c.Cursor
		}
	case "enter":
		if !c.Multi {
			c.chosen = c.Cursor
		}
	}

	return c, nil
}

// HasChoice reports whether a selection has been made.
func (c Choice) HasChoice() bool {
	if c.Multi {
		return len(c.Picked()) > 0
	}
	return c.chosen >= 0
}

// Chosen returns the single-mode selection, or -1.
func (c Choice) Chosen() int { return c.chosen }

// Picked returns the multi-mode selection in option order.
func (c Choice) Picked() []int {
	var out []int
	for i := range c.Options {
		if c.picked[i] {
			out = append(out, i)
		}
	}
	return out
}

// View renders the options with the cursor and selection marks.
func (c Choice) View() string {
	var s string
	for i, opt := range c.Options {
		cursor := "  "
		if i == c.Cursor {
			cursor = "▸ "
		}

		mark := "( )"
		selected := false
		if c.Multi {
			mark = "[ ]"
			if c.picked[i] {
				mark = "[x]"
				selected = true
			}
		} else if i == c.chosen {
			mark = "(•)"
			selected = true
		}

		line := fmt.Sprintf("%s%s %s", cursor, mark, opt)
		switch {
		case i == c.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line)
		case selected:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line)
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line)
		}
		s += "\n"
	}
	return s
}
