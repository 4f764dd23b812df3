package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"taskquest/internal/adapters/tui/views"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBoard ViewState = iota
	ViewForm
	ViewDelete
	ViewHelp
)

// Deps are the services the TUI works with
type Deps = views.BoardDeps

// App is the main TUI application model
type App struct {
	deps Deps

	state ViewState
	board *views.BoardModel
	form  *views.FormModel
	del   *views.DeleteModel
	help  *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(deps Deps) *App {
	return &App{
		deps:  deps,
		state: ViewBoard,
		board: views.NewBoardModel(deps),
		form:  views.NewFormModel(deps.Tasks),
		del:   views.NewDeleteModel(deps.Tasks, deps.Timers),
		help:  views.NewHelpModel(deps.PointsPerTask),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.board.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.board.SetSize(msg.Width, msg.Height)
		a.form.SetSize(msg.Width, msg.Height)
		a.del.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToFormMsg:
		a.state = ViewForm
		a.form.Open(msg.Task)
		return a, a.form.Init()

	case views.SwitchToDeleteMsg:
		a.state = ViewDelete
		a.del.SetTarget(msg.Task)
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToBoardMsg:
		a.state = ViewBoard
		return a, a.board.Reload()

	// Form messages
	case views.FormSuccessMsg:
		a.form.Submitted()
		a.state = ViewBoard
		a.board.SetMessage(msg.Message, false)
		return a, a.board.ReloadSelectLast()

	// Delete messages
	case views.DeleteSuccessMsg:
		a.state = ViewBoard
		a.board.SetMessage(msg.Message, false)
		return a, a.board.Reload()

	case views.DeleteErrMsg:
		// Vanished tasks are handled like any other board error
		a.state = ViewBoard
		_, cmd := a.board.Update(views.BoardErr(msg.Err))
		return a, cmd
	}

	// Timer ticks must reach the board whatever view is showing
	if views.IsBoardMsg(msg) {
		_, cmd := a.board.Update(msg)
		return a, cmd
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBoard:
		_, cmd = a.board.Update(msg)
	case ViewForm:
		_, cmd = a.form.Update(msg)
	case ViewDelete:
		_, cmd = a.del.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewForm:
		return a.form.View()
	case ViewDelete:
		return a.del.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.board.View()
	}
}
