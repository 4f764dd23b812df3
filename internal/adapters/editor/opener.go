package editor

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"

	"gopkg.in/yaml.v3"

	"taskquest/internal/domain"
	"taskquest/internal/ports"
)

// Opener implements ports.TaskEditor
type Opener struct{}

// Ensure Opener implements TaskEditor
var _ ports.TaskEditor = (*Opener)(nil)

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{}
}

// taskFile is the document the user edits
type taskFile struct {
	Description string `yaml:"description"`
	Deadline    string `yaml:"deadline"`
	Urgency     string `yaml:"urgency"`
	Importance  string `yaml:"importance"`
}

const fileHeader = "# Edit the task, save and quit. Ratings are Low, Medium or High.\n"

// EditTask writes the fields to a temporary YAML file, opens it in the
// user's editor and returns the fields as saved. The values are not
// validated here.
func (o *Opener) EditTask(current domain.NewTask) (domain.NewTask, error) {
	f, err := os.CreateTemp("", "taskquest-*.yaml")
	if err != nil {
		return current, fmt.Errorf("failed to create temp file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	body, err := yaml.Marshal(taskFile{
		Description: current.Description,
		Deadline:    current.Deadline,
		Urgency:     string(current.Urgency),
		Importance:  string(current.Importance),
	})
	if err != nil {
		f.Close()
		return current, fmt.Errorf("failed to encode task: %w", err)
	}
	if _, err := f.WriteString(fileHeader + string(body)); err != nil {
		f.Close()
		return current, fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return current, err
	}

	if err := o.OpenFile(path); err != nil {
		return current, fmt.Errorf("editor failed: %w", err)
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return current, fmt.Errorf("failed to read edited task: %w", err)
	}
	var out taskFile
	if err := yaml.NewDecoder(bytes.NewReader(edited)).Decode(&out); err != nil {
		return current, fmt.Errorf("edited task is not valid YAML: %w", err)
	}

	return domain.NewTask{
		Description: out.Description,
		Deadline:    out.Deadline,
		Urgency:     domain.Rating(out.Urgency),
		Importance:  domain.Rating(out.Importance),
	}, nil
}

// OpenFile opens a file in the user's preferred editor
func (o *Opener) OpenFile(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns an exec.Cmd for opening a file in the editor
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	editor := o.findEditor()
	if editor == "" {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

// findEditor returns the editor to use
func (o *Opener) findEditor() string {
	// Check $EDITOR first
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}

	// Check $VISUAL
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}

	// Try common editors
	editors := []string{"nvim", "vim", "vi", "nano"}
	for _, editor := range editors {
		if path, err := exec.LookPath(editor); err == nil {
			return path
		}
	}

	return ""
}
