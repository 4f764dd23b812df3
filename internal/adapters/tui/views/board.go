package views

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskquest/internal/adapters/tui/styles"
	"taskquest/internal/application"
	"taskquest/internal/application/commands"
	"taskquest/internal/domain"
	"taskquest/internal/ports"
	"taskquest/internal/timer"
)

// BoardKeyMap defines key bindings for the board view
type BoardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	New      key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Complete key.Binding
	Copy     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var BoardKeys = BoardKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("h", "left", "pgup"),
		key.WithHelp("h/←", "prev page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("l", "right", "pgdown"),
		key.WithHelp("l/→", "next page"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Complete: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "complete"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy id"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Rows outside the task list: title, stats box, column header, help
const boardChrome = 12

// BoardDeps holds what the board reads and mutates
type BoardDeps struct {
	Tasks         ports.TaskRepository
	Stats         ports.StatsRepository
	Timers        *timer.Service
	PointsPerTask int
	Logger        *slog.Logger
}

// BoardModel lists every task with its live timer under a stats header
type BoardModel struct {
	ViewState
	deps   BoardDeps
	rows   []domain.Task
	stats  domain.Stats
	pager  *Paginator
	loaded bool

	now       func() time.Time
	copyToClp func(string) error
}

// NewBoardModel creates a new board model
func NewBoardModel(deps BoardDeps) *BoardModel {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &BoardModel{
		deps:      deps,
		pager:     NewPaginator(10),
		now:       time.Now,
		copyToClp: clipboard.WriteAll,
	}
}

type boardLoadedMsg struct {
	tasks      []domain.Task
	stats      domain.Stats
	selectLast bool
}

type timerTickMsg struct {
	id string
}

type errMsg struct {
	err error
}

type successMsg struct {
	message string
}

// BoardErr wraps an error so the board reports it, or reloads when the
// task it concerns has vanished
func BoardErr(err error) tea.Msg {
	return errMsg{err}
}

// IsBoardMsg reports whether msg is addressed to the board whichever view
// is active. Timer ticks keep running behind the form and dialogs.
func IsBoardMsg(msg tea.Msg) bool {
	switch msg.(type) {
	case boardLoadedMsg, timerTickMsg, errMsg, successMsg:
		return true
	}
	return false
}

// Init initializes the board
func (m *BoardModel) Init() tea.Cmd {
	return m.load
}

func (m *BoardModel) load() tea.Msg {
	tasks, err := m.deps.Tasks.List()
	if err != nil {
		return errMsg{err}
	}
	stats, err := m.deps.Stats.Current()
	if err != nil {
		return errMsg{err}
	}
	return boardLoadedMsg{tasks: tasks, stats: stats}
}

// Reload re-reads tasks and stats from the store
func (m *BoardModel) Reload() tea.Cmd {
	return m.load
}

// ReloadSelectLast reloads and moves the cursor to the newest task
func (m *BoardModel) ReloadSelectLast() tea.Cmd {
	return func() tea.Msg {
		msg := m.load()
		if loaded, ok := msg.(boardLoadedMsg); ok {
			loaded.selectLast = true
			return loaded
		}
		return msg
	}
}

func tickTimer(id string) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{id: id}
	})
}

// startTimers starts the timer of every incomplete task that has none yet.
// Each started timer gets its own tick chain.
func (m *BoardModel) startTimers() tea.Cmd {
	var cmds []tea.Cmd
	for _, t := range m.rows {
		if t.Completed {
			continue
		}
		if m.deps.Timers.Start(t.ID) {
			cmds = append(cmds, tickTimer(t.ID))
		}
	}
	return tea.Batch(cmds...)
}

// Update handles messages for the board
func (m *BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case boardLoadedMsg:
		m.rows = msg.tasks
		m.stats = msg.stats
		m.loaded = true
		m.pager.SetTotal(len(m.rows))
		if msg.selectLast {
			m.pager.SetCursor(len(m.rows) - 1)
		}
		return m, m.startTimers()

	case timerTickMsg:
		// A stopped or forgotten timer ends its tick chain here
		if _, ok := m.deps.Timers.Tick(msg.id); ok {
			return m, tickTimer(msg.id)
		}
		return m, nil

	case errMsg:
		if errors.Is(msg.err, application.ErrNotFound) {
			m.deps.Logger.Debug("task vanished, reloading board", "error", msg.err)
			return m, m.Reload()
		}
		m.SetError(msg.err)
		return m, nil

	case successMsg:
		m.SetMessage(msg.message, false)
		return m, m.Reload()

	case tea.KeyMsg:
		if m.Blocked() {
			if msg.Type == tea.KeyEnter || msg.Type == tea.KeyEsc {
				m.DismissNotice()
			}
			return m, nil
		}
		m.ClearMessage()
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *BoardModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, BoardKeys.Quit):
		return tea.Quit

	case key.Matches(msg, BoardKeys.Up):
		m.pager.CursorUp()

	case key.Matches(msg, BoardKeys.Down):
		m.pager.CursorDown()

	case key.Matches(msg, BoardKeys.PrevPage):
		m.pager.PrevPage()

	case key.Matches(msg, BoardKeys.NextPage):
		m.pager.NextPage()

	case key.Matches(msg, BoardKeys.New):
		return func() tea.Msg { return SwitchToFormMsg{} }

	case key.Matches(msg, BoardKeys.Help):
		return func() tea.Msg { return SwitchToHelpMsg{} }

	case key.Matches(msg, BoardKeys.Edit):
		return m.edit()

	case key.Matches(msg, BoardKeys.Delete):
		if task := m.selected(); task != nil {
			return func() tea.Msg { return SwitchToDeleteMsg{Task: task} }
		}

	case key.Matches(msg, BoardKeys.Complete):
		return m.complete()

	case key.Matches(msg, BoardKeys.Copy):
		if task := m.selected(); task != nil {
			if err := m.copyToClp(task.ID); err != nil {
				m.SetMessage("Clipboard unavailable: "+err.Error(), true)
			} else {
				m.SetMessage("Copied "+task.ID, false)
			}
		}
	}
	return nil
}

// edit takes the task off the board and hands its values to the form
func (m *BoardModel) edit() tea.Cmd {
	task := m.selected()
	if task == nil {
		return nil
	}
	if task.Completed {
		m.SetMessage("Completed tasks cannot be edited", true)
		return nil
	}

	_, err := commands.NewDeleteCommand(m.deps.Tasks, m.deps.Timers, task.ID).Execute(context.Background())
	if err != nil {
		return func() tea.Msg { return errMsg{err} }
	}
	m.deps.Logger.Debug("task taken off the board for editing", "id", task.ID)
	return func() tea.Msg { return SwitchToFormMsg{Task: task} }
}

func (m *BoardModel) complete() tea.Cmd {
	task := m.selected()
	if task == nil || task.Completed {
		return nil
	}

	cmd := commands.NewCompleteTaskCommand(m.deps.Tasks, m.deps.Stats, m.deps.Timers, task.ID, m.deps.PointsPerTask)
	result, err := cmd.Execute(context.Background())
	if err != nil {
		return func() tea.Msg { return errMsg{err} }
	}

	message := result.Message
	if result.LeveledUp {
		message = fmt.Sprintf("%s. Level up! You reached level %d", message, result.Stats.Level)
	}
	return func() tea.Msg { return successMsg{message} }
}

func (m *BoardModel) selected() *domain.Task {
	i := m.pager.Cursor()
	if i >= 0 && i < len(m.rows) {
		task := m.rows[i]
		return &task
	}
	return nil
}

// View renders the board
func (m *BoardModel) View() string {
	if !m.loaded {
		return "Loading..."
	}

	v := NewViewBuilder()
	v.Raw(RenderTitle("TaskQuest"))
	v.Raw("\n")
	v.Line(RenderStats(m.stats))
	v.BlankLine()

	if len(m.rows) == 0 {
		v.Muted("No tasks yet. Press n to add one.")
	} else {
		width := m.descriptionWidth()
		v.Line(RenderMuted(m.header(width)))
		start, end := m.pager.VisibleRange()
		today := m.now()
		for i := start; i < end; i++ {
			v.Line(m.renderRow(m.rows[i], width, i == m.pager.Cursor(), today))
		}
		if pages := m.pager.TotalPages(); pages > 1 {
			v.Muted(fmt.Sprintf("page %d/%d", m.pager.CurrentPage(), pages))
		}
	}

	v.BlankLine()
	v.Notice(m.Notice)
	v.Message(m.Message, m.MessageErr)
	v.Help(BoardKeys.New, BoardKeys.Edit, BoardKeys.Delete, BoardKeys.Complete,
		BoardKeys.Copy, BoardKeys.Help, BoardKeys.Quit)

	return v.String()
}

func (m *BoardModel) descriptionWidth() int {
	// checkbox, deadline, two ratings, timer and gaps
	const fixed = 4 + 2 + 10 + 2 + 6 + 1 + 6 + 2 + 8 + 4
	return max(20, m.Width-fixed)
}

func (m *BoardModel) header(width int) string {
	return fmt.Sprintf("    %-*s  %-10s  %-6s %-6s  %8s", width, "Task", "Deadline", "Urg.", "Imp.", "Timer")
}

func (m *BoardModel) timerText(t domain.Task) string {
	if m.deps.Timers.State(t.ID) == timer.NotStarted {
		if t.Completed {
			return "done"
		}
		return "-"
	}
	return m.deps.Timers.Compact(t.ID)
}

func (m *BoardModel) renderRow(t domain.Task, width int, selected bool, today time.Time) string {
	box := styles.Checkbox
	if t.Completed {
		box = styles.CheckboxDone
	}
	desc := truncate(t.Description, width)
	timerText := m.timerText(t)

	if selected || t.Completed {
		plain := fmt.Sprintf("%s%-*s  %-10s  %-6s %-6s  %8s",
			box, width, desc, t.Deadline, t.Urgency, t.Importance, timerText)
		if selected {
			return styles.TaskSelected.Render(plain)
		}
		return styles.TaskDone.Render(plain)
	}

	deadline := styles.Deadline
	if t.Overdue(today) {
		deadline = styles.TaskOverdue
	}
	return box +
		styles.TaskRow.Render(padRight(desc, width)) + "  " +
		deadline.Render(padRight(t.Deadline, 10)) + "  " +
		styles.Rating(t.Urgency) + strings.Repeat(" ", 7-lipgloss.Width(string(t.Urgency))) +
		styles.Rating(t.Importance) + strings.Repeat(" ", 6-lipgloss.Width(string(t.Importance))) + "  " +
		styles.Timer.Render(fmt.Sprintf("%8s", timerText))
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "…"
}

// SetSize updates the view dimensions and the page size
func (m *BoardModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.pager.SetPageSize(max(5, height-boardChrome))
}

// Messages for view switching
type SwitchToFormMsg struct {
	// Task prefills the form when set
	Task *domain.Task
}

type SwitchToDeleteMsg struct {
	Task *domain.Task
}

type SwitchToHelpMsg struct{}

type SwitchToBoardMsg struct{}
