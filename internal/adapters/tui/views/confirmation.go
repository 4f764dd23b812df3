package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"taskquest/internal/adapters/tui/styles"
	"taskquest/internal/domain"
)

// ConfirmKeyMap defines key bindings for confirmation views
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeys returns the default confirmation key bindings
var DefaultConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// ConfirmationModel provides a base for confirmation-style views
type ConfirmationModel struct {
	ViewState
	Target *domain.Task
	Keys   ConfirmKeyMap
}

// NewConfirmationModel creates a new confirmation model with default keys
func NewConfirmationModel() ConfirmationModel {
	return ConfirmationModel{
		Keys: DefaultConfirmKeys,
	}
}

// SetTarget sets the task the confirmation is about
func (m *ConfirmationModel) SetTarget(task *domain.Task) {
	m.Target = task
}

// HandleKeyMsg processes key messages for confirmation views. The chosen
// callback runs immediately, inside Update, and its message is returned as
// the command result. Returns (handled, cmd) where handled is true if the
// key was processed.
func (m *ConfirmationModel) HandleKeyMsg(msg tea.KeyMsg, onConfirm, onCancel func() tea.Msg) (bool, tea.Cmd) {
	var result tea.Msg
	switch {
	case key.Matches(msg, m.Keys.Cancel):
		result = onCancel()
	case key.Matches(msg, m.Keys.Confirm):
		result = onConfirm()
	default:
		return false, nil
	}
	return true, func() tea.Msg { return result }
}

// RenderConfirmPrompt renders the standard confirmation prompt
func RenderConfirmPrompt(question string) string {
	var b strings.Builder
	b.WriteString(question)
	b.WriteString(" ")
	b.WriteString(styles.HelpKey.Render("y"))
	b.WriteString(styles.HelpDesc.Render(" to confirm, "))
	b.WriteString(styles.HelpKey.Render("n"))
	b.WriteString(styles.HelpDesc.Render(" to cancel"))
	return b.String()
}

// RenderTargetInfo renders the task a confirmation is about
func RenderTargetInfo(task *domain.Task, action string) string {
	if task == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.InputLabel.Render(action + " task:"))
	b.WriteString("\n  ")
	b.WriteString(task.Description)
	for _, field := range [][2]string{
		{"Deadline", task.Deadline},
		{"Urgency", styles.Rating(task.Urgency)},
		{"Importance", styles.Rating(task.Importance)},
	} {
		b.WriteString("\n  ")
		b.WriteString(RenderLabelValue(field[0], field[1]))
	}
	return b.String()
}
