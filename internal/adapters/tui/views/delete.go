package views

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"taskquest/internal/application/commands"
	"taskquest/internal/ports"
)

// DeleteModel is the model for the delete confirmation view
type DeleteModel struct {
	ConfirmationModel
	repo   ports.TaskRepository
	timers ports.TimerControl
}

// NewDeleteModel creates a new delete view model
func NewDeleteModel(repo ports.TaskRepository, timers ports.TimerControl) *DeleteModel {
	return &DeleteModel{
		ConfirmationModel: NewConfirmationModel(),
		repo:              repo,
		timers:            timers,
	}
}

// Init initializes the delete view
func (m *DeleteModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the delete view
func (m *DeleteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg,
			func() tea.Msg { return m.doDelete() },
			func() tea.Msg { return SwitchToBoardMsg{} },
		)
		if handled {
			return m, cmd
		}
	}

	return m, nil
}

func (m *DeleteModel) doDelete() tea.Msg {
	if m.Target == nil {
		return DeleteErrMsg{Err: fmt.Errorf("no task selected")}
	}

	result, err := commands.NewDeleteCommand(m.repo, m.timers, m.Target.ID).Execute(context.Background())
	if err != nil {
		return DeleteErrMsg{Err: err}
	}

	return DeleteSuccessMsg{Message: result.Message}
}

// DeleteSuccessMsg indicates successful deletion
type DeleteSuccessMsg struct {
	Message string
}

// DeleteErrMsg indicates an error during deletion
type DeleteErrMsg struct {
	Err error
}

// View renders the delete confirmation view
func (m *DeleteModel) View() string {
	return NewViewBuilder().
		Title("Delete Confirmation").
		Line(RenderMessage("This action cannot be undone!", true)).
		BlankLine().
		Line(RenderTargetInfo(m.Target, "Delete")).
		BlankLine().
		Raw(RenderConfirmPrompt("Are you sure?")).
		String()
}
