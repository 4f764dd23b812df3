package views

import (
	"errors"

	"taskquest/internal/application"
)

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
	// Notice is a blocking error that must be dismissed before input resumes
	Notice string
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// SetError shows err: validation failures become a blocking notice,
// anything else an inline error message.
func (s *ViewState) SetError(err error) {
	var valErr *application.ValidationError
	if errors.As(err, &valErr) {
		s.Notice = valErr.Message
		return
	}
	s.SetMessage(err.Error(), true)
}

// DismissNotice clears the blocking notice
func (s *ViewState) DismissNotice() {
	s.Notice = ""
}

// Blocked reports whether a notice is waiting to be dismissed
func (s *ViewState) Blocked() bool {
	return s.Notice != ""
}
