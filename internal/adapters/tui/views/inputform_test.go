package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestForm() *InputForm {
	return NewInputForm(
		NewInputField("Description", "", 0),
		NewChoiceField("Urgency", "Low", "Medium", "High"),
	)
}

func TestInputForm_ChoiceCycles(t *testing.T) {
	form := newTestForm()
	form.SetFocus(1)

	tests := []struct {
		key  tea.KeyType
		want string
	}{
		{tea.KeyRight, "Medium"},
		{tea.KeyRight, "High"},
		{tea.KeyRight, "Low"},
		{tea.KeyLeft, "High"},
	}

	for _, tt := range tests {
		handled, _ := form.Update(tea.KeyMsg{Type: tt.key})
		if !handled {
			t.Fatalf("expected %v to be handled", tt.key)
		}
		if got := form.Value(1); got != tt.want {
			t.Errorf("after %v: got %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestInputForm_ChoiceIgnoresTyping(t *testing.T) {
	form := newTestForm()
	form.SetFocus(1)

	form.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if got := form.Value(1); got != "Low" {
		t.Errorf("expected Low, got %q", got)
	}
}

func TestInputForm_SetValueChoice(t *testing.T) {
	form := newTestForm()

	form.SetValue(1, "high")
	if got := form.Value(1); got != "High" {
		t.Errorf("expected High, got %q", got)
	}

	form.SetValue(1, "urgent")
	if got := form.Value(1); got != "High" {
		t.Errorf("unknown option must not change the choice, got %q", got)
	}
}

func TestInputForm_ResetRestoresDefaults(t *testing.T) {
	form := newTestForm()
	form.SetValue(0, "  Write Report  ")
	form.SetValue(1, "Medium")
	form.SetFocus(1)

	if got := form.Value(0); got != "Write Report" {
		t.Errorf("expected trimmed value, got %q", got)
	}

	form.Reset()

	if form.Value(0) != "" {
		t.Errorf("expected empty description, got %q", form.Value(0))
	}
	if form.Value(1) != "Low" {
		t.Errorf("expected Low, got %q", form.Value(1))
	}
	if form.FocusedField != 0 {
		t.Errorf("expected focus on first field, got %d", form.FocusedField)
	}
}

func TestInputForm_TabWraps(t *testing.T) {
	form := newTestForm()

	form.Update(tea.KeyMsg{Type: tea.KeyTab})
	if form.FocusedField != 1 {
		t.Fatalf("expected focus 1, got %d", form.FocusedField)
	}
	form.Update(tea.KeyMsg{Type: tea.KeyTab})
	if form.FocusedField != 0 {
		t.Errorf("expected focus to wrap to 0, got %d", form.FocusedField)
	}
	form.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if form.FocusedField != 1 {
		t.Errorf("expected shift+tab to wrap to 1, got %d", form.FocusedField)
	}
}
