package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/promptascent/internal/ui/theme"
)

// PromptEditor wraps bubbles/textarea for authoring multi-line prompts.
// Enter inserts a newline inside the editor; submission is a separate key
// handled by the owning screen so learners can write real prompts.
type PromptEditor struct {
	Model textarea.Model
}

// NewPromptEditor creates a new prompt editor sized for the content area.
func NewPromptEditor(placeholder string, width, height int) PromptEditor {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.CharLimit = 2000
	ta.SetWidth(width)
	ta.SetHeight(height)
	ta.Focus()
	return PromptEditor{Model: ta}
}

// Init returns the initial command.
func (e PromptEditor) Init() tea.Cmd {
	return e.Model.Focus()
}

// Update handles messages.
func (e PromptEditor) Update(msg tea.Msg) (PromptEditor, tea.Cmd) {
	var cmd tea.Cmd
	e.Model, cmd = e.Model.Update(msg)
	return e, cmd
}

// View renders the editor.
func (e PromptEditor) View() string {
	return theme.Card.Render(e.Model.View())
}

// Value returns the authored prompt text.
func (e PromptEditor) Value() string {
	return e.Model.Value()
}

// Resize adjusts the editor to a new content area.
func (e *PromptEditor) Resize(width, height int) {
	e.Model.SetWidth(width)
	e.Model.SetHeight(height)
}
