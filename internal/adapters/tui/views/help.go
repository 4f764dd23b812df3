package views

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskquest/internal/adapters/tui/styles"
	"taskquest/internal/domain"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
	pointsPerTask int
}

// NewHelpModel creates a new help view model
func NewHelpModel(pointsPerTask int) *HelpModel {
	return &HelpModel{pointsPerTask: pointsPerTask}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToBoardMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("TaskQuest Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Navigation"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move up/down"))
	b.WriteString(helpLine("h / l / ← / →", "Previous/next page"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Tasks"))
	b.WriteString("\n")
	b.WriteString(helpLine("n", "New task"))
	b.WriteString(helpLine("e", "Edit task (takes it off the board and opens the form)"))
	b.WriteString(helpLine("d", "Delete task"))
	b.WriteString(helpLine("c", "Complete task"))
	b.WriteString(helpLine("y", "Copy task ID"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Scoring"))
	b.WriteString("\n")
	b.WriteString(RenderMuted("  Each completed task earns " + strconv.Itoa(m.pointsPerTask) + " points."))
	b.WriteString("\n")
	b.WriteString(RenderMuted("  Every " + strconv.Itoa(domain.PointsPerLevel) + " points is a new level."))
	b.WriteString("\n")
	b.WriteString(RenderMuted("  Completing on consecutive days grows the streak; a missed day resets it."))
	b.WriteString("\n")
	b.WriteString(RenderMuted("  Timers start when the board opens and stop on completion. They are not saved."))
	b.WriteString("\n\n")

	// Close hint
	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	w := lipgloss.Width(s)
	if w >= length {
		return s
	}
	return s + strings.Repeat(" ", length-w)
}
