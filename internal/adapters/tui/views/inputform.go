package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskquest/internal/adapters/tui/styles"
)

// InputFormKeyMap defines key bindings for input forms
type InputFormKeyMap struct {
	Submit   key.Binding
	Cancel   key.Binding
	Tab      key.Binding
	ShiftTab key.Binding
	Left     key.Binding
	Right    key.Binding
}

// DefaultInputFormKeys returns the default input form key bindings
var DefaultInputFormKeys = InputFormKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	ShiftTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous field"),
	),
	Left: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "previous option"),
	),
	Right: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "next option"),
	),
}

// InputField is a single form field: free text, or a fixed set of
// choices cycled with left/right when Choices is set.
type InputField struct {
	Label   string
	Input   textinput.Model
	Choices []string
	choice  int
}

// IsChoice reports whether the field picks from a fixed set of options
func (f *InputField) IsChoice() bool {
	return len(f.Choices) > 0
}

// InputForm manages multiple input fields with focus handling
type InputForm struct {
	Fields       []InputField
	FocusedField int
	Keys         InputFormKeyMap
}

// NewInputForm creates a new input form with the given fields
func NewInputForm(fields ...InputField) *InputForm {
	form := &InputForm{
		Fields:       fields,
		FocusedField: 0,
		Keys:         DefaultInputFormKeys,
	}
	// Focus the first field
	if len(fields) > 0 {
		form.Fields[0].Input.Focus()
	}
	return form
}

// NewInputField creates a new text field with the given label and placeholder
func NewInputField(label, placeholder string, charLimit int) InputField {
	input := textinput.New()
	input.Placeholder = placeholder
	if charLimit > 0 {
		input.CharLimit = charLimit
	}
	return InputField{
		Label: label,
		Input: input,
	}
}

// NewChoiceField creates a field cycling through choices, starting at the first
func NewChoiceField(label string, choices ...string) InputField {
	return InputField{
		Label:   label,
		Input:   textinput.New(),
		Choices: choices,
	}
}

// Init returns the blink command for the focused input
func (f *InputForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the input form.
// Returns (handled, cmd) where handled is true if the key was processed.
func (f *InputForm) Update(msg tea.Msg) (bool, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, f.Keys.Tab):
			f.NextField()
			return true, nil
		case key.Matches(keyMsg, f.Keys.ShiftTab):
			f.PrevField()
			return true, nil
		}

		if field := f.focused(); field != nil && field.IsChoice() {
			switch {
			case key.Matches(keyMsg, f.Keys.Left):
				field.choice = (field.choice + len(field.Choices) - 1) % len(field.Choices)
				return true, nil
			case key.Matches(keyMsg, f.Keys.Right):
				field.choice = (field.choice + 1) % len(field.Choices)
				return true, nil
			}
			// Choice fields swallow typing
			return false, nil
		}
	}

	// Update the focused input
	var cmd tea.Cmd
	if field := f.focused(); field != nil && !field.IsChoice() {
		field.Input, cmd = field.Input.Update(msg)
	}
	return false, cmd
}

func (f *InputForm) focused() *InputField {
	if f.FocusedField >= 0 && f.FocusedField < len(f.Fields) {
		return &f.Fields[f.FocusedField]
	}
	return nil
}

// NextField moves focus to the next field
func (f *InputForm) NextField() {
	if len(f.Fields) <= 1 {
		return
	}
	f.SetFocus((f.FocusedField + 1) % len(f.Fields))
}

// PrevField moves focus to the previous field
func (f *InputForm) PrevField() {
	if len(f.Fields) <= 1 {
		return
	}
	f.SetFocus((f.FocusedField + len(f.Fields) - 1) % len(f.Fields))
}

// SetFocus sets focus to a specific field
func (f *InputForm) SetFocus(index int) {
	if index < 0 || index >= len(f.Fields) {
		return
	}

	// Blur current field
	if field := f.focused(); field != nil {
		field.Input.Blur()
	}

	// Focus new field
	f.FocusedField = index
	f.Fields[f.FocusedField].Input.Focus()
}

// Value returns the value of a field by index
func (f *InputForm) Value(index int) string {
	if index < 0 || index >= len(f.Fields) {
		return ""
	}
	field := f.Fields[index]
	if field.IsChoice() {
		return field.Choices[field.choice]
	}
	return strings.TrimSpace(field.Input.Value())
}

// SetValue sets the value of a field by index. A choice field selects the
// matching option, ignoring case, and is left alone if none matches.
func (f *InputForm) SetValue(index int, value string) {
	if index < 0 || index >= len(f.Fields) {
		return
	}
	field := &f.Fields[index]
	if !field.IsChoice() {
		field.Input.SetValue(value)
		return
	}
	for i, c := range field.Choices {
		if strings.EqualFold(c, value) {
			field.choice = i
			return
		}
	}
}

// Reset clears text values, selects the first option of choice fields
// and resets focus to the first field
func (f *InputForm) Reset() {
	for i := range f.Fields {
		f.Fields[i].Input.SetValue("")
		f.Fields[i].Input.Blur()
		f.Fields[i].choice = 0
	}
	f.FocusedField = 0
	if len(f.Fields) > 0 {
		f.Fields[0].Input.Focus()
	}
}

// RenderField renders a single field with appropriate styling
func (f *InputForm) RenderField(index int) string {
	if index < 0 || index >= len(f.Fields) {
		return ""
	}

	field := f.Fields[index]
	var b strings.Builder

	b.WriteString(styles.InputLabel.Render(field.Label))
	b.WriteString("\n")

	content := field.Input.View()
	if field.IsChoice() {
		content = styles.ChoiceArrow.Render("◀ ") + field.Choices[field.choice] + styles.ChoiceArrow.Render(" ▶")
	}

	if index == f.FocusedField {
		b.WriteString(styles.InputFocused.Render(content))
	} else {
		b.WriteString(styles.InputField.Render(content))
	}

	return b.String()
}

// RenderHelp renders the help text for the form
func (f *InputForm) RenderHelp(submitText string) string {
	var parts []string

	if len(f.Fields) > 1 {
		parts = append(parts, styles.HelpKey.Render("tab")+" "+styles.HelpDesc.Render("next field"))
	}
	if field := f.focused(); field != nil && field.IsChoice() {
		parts = append(parts, styles.HelpKey.Render("←/→")+" "+styles.HelpDesc.Render("change"))
	}
	parts = append(parts, styles.HelpKey.Render("enter")+" "+styles.HelpDesc.Render(submitText))
	parts = append(parts, styles.HelpKey.Render("esc")+" "+styles.HelpDesc.Render("cancel"))

	return strings.Join(parts, "  ")
}
