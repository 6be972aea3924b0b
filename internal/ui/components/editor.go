package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// CodeEditor wraps bubbles/textarea for exercise solutions.
type CodeEditor struct {
	Model textarea.Model
}

// NewCodeEditor creates an editor sized to the given box, seeded with
// the starter code.
func NewCodeEditor(initial string, width, height int) CodeEditor {
	ta := textarea.New()
	ta.Placeholder = "Write your solution here..."
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.SetWidth(width)
	ta.SetHeight(height)
	ta.SetValue(initial)
	ta.Focus()

	return CodeEditor{Model: ta}
}

// Init returns the initial command.
func (e CodeEditor) Init() tea.Cmd {
	return e.Model.Focus()
}

// Update forwards messages to the textarea.
func (e CodeEditor) Update(msg tea.Msg) (CodeEditor, tea.Cmd) {
	var cmd tea.Cmd
	e.Model, cmd = e.Model.Update(msg)
	return e, cmd
}

// View renders the editor.
func (e CodeEditor) View() string {
	return e.Model.View()
}

// Value returns the current solution text.
func (e CodeEditor) Value() string {
	return e.Model.Value()
}

// SetValue replaces the solution text.
func (e *CodeEditor) SetValue(code string) {
	e.Model.SetValue(code)
}

// SetSize resizes the editor.
func (e *CodeEditor) SetSize(width, height int) {
	e.Model.SetWidth(width)
	e.Model.SetHeight(height)
}

// Focused reports whether the editor has keyboard focus.
func (e CodeEditor) Focused() bool {
	return e.Model.Focused()
}

// Focus gives the editor keyboard focus.
func (e *CodeEditor) Focus() tea.Cmd {
	return e.Model.Focus()
}

// Blur removes keyboard focus.
func (e *CodeEditor) Blur() {
	e.Model.Blur()
}
