package views

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"taskquest/internal/application/commands"
	"taskquest/internal/domain"
	"taskquest/internal/ports"
)

// Form field positions
const (
	fieldDescription = iota
	fieldDeadline
	fieldUrgency
	fieldImportance
)

// FormModel is the add-task form. Editing reuses it: the board removes the
// task and opens the form prefilled with its values.
type FormModel struct {
	ViewState
	repo    ports.TaskRepository
	form    *InputForm
	editing *domain.Task
}

// NewFormModel creates a new form view model
func NewFormModel(repo ports.TaskRepository) *FormModel {
	ratings := make([]string, len(domain.Ratings))
	for i, r := range domain.Ratings {
		ratings[i] = string(r)
	}

	return &FormModel{
		repo: repo,
		form: NewInputForm(
			NewInputField("Description", "What needs doing?", 200),
			NewInputField("Deadline", "YYYY-MM-DD", len(domain.DateLayout)),
			NewChoiceField("Urgency", ratings...),
			NewChoiceField("Importance", ratings...),
		),
	}
}

// Open prepares the form. A nil task opens an empty form; otherwise the
// fields are prefilled from the task being edited.
func (m *FormModel) Open(task *domain.Task) {
	m.ClearMessage()
	m.DismissNotice()
	m.form.Reset()
	m.editing = task
	if task == nil {
		return
	}
	m.form.SetValue(fieldDescription, task.Description)
	m.form.SetValue(fieldDeadline, task.Deadline)
	m.form.SetValue(fieldUrgency, string(task.Urgency))
	m.form.SetValue(fieldImportance, string(task.Importance))
}

// Init initializes the form view
func (m *FormModel) Init() tea.Cmd {
	return m.form.Init()
}

// FormSuccessMsg indicates a task was added
type FormSuccessMsg struct {
	Task    *domain.Task
	Message string
}

// FormErrMsg indicates the form could not be submitted
type FormErrMsg struct {
	Err error
}

// Update handles messages for the form view
func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case FormErrMsg:
		m.SetError(msg.Err)
		return m, nil

	case tea.KeyMsg:
		if m.Blocked() {
			if key.Matches(msg, m.form.Keys.Submit) || key.Matches(msg, m.form.Keys.Cancel) {
				m.DismissNotice()
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			m.form.Reset()
			m.editing = nil
			return m, func() tea.Msg { return SwitchToBoardMsg{} }

		case key.Matches(msg, m.form.Keys.Submit):
			return m, m.submit()
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

func (m *FormModel) submit() tea.Cmd {
	cmd := commands.NewAddTaskCommand(m.repo,
		m.form.Value(fieldDescription),
		m.form.Value(fieldDeadline),
		m.form.Value(fieldUrgency),
		m.form.Value(fieldImportance),
	)
	result, err := cmd.Execute(context.Background())
	if err != nil {
		return func() tea.Msg { return FormErrMsg{Err: err} }
	}
	return func() tea.Msg {
		return FormSuccessMsg{Task: result.Task, Message: result.Message}
	}
}

// Submitted resets the form after a successful add
func (m *FormModel) Submitted() {
	m.form.Reset()
	m.editing = nil
	m.ClearMessage()
}

// Editing returns the task whose values prefilled the form, if any
func (m *FormModel) Editing() *domain.Task {
	return m.editing
}

// View renders the form view
func (m *FormModel) View() string {
	v := NewViewBuilder()

	if m.editing != nil {
		v.Title("Edit Task")
		v.Subtitle("The task was taken off the board. Enter saves it again, esc discards it.")
	} else {
		v.Title("New Task")
	}

	for i := range m.form.Fields {
		v.Line(m.form.RenderField(i))
		v.BlankLine()
	}

	v.Notice(m.Notice)
	v.Message(m.Message, m.MessageErr)
	v.Raw(m.form.RenderHelp("save"))

	return v.String()
}
