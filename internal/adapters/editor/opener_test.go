package editor

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskquest/internal/domain"
)

// fakeEditor installs a shell script as $EDITOR
func fakeEditor(t *testing.T, script string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell editor script needs a unix shell")
	}
	path := filepath.Join(t.TempDir(), "editor.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0755))
	t.Setenv("EDITOR", path)
}

var writeReport = domain.NewTask{
	Description: "Write Report",
	Deadline:    "2025-01-10",
	Urgency:     domain.RatingHigh,
	Importance:  domain.RatingMedium,
}

func TestEditTask_Unchanged(t *testing.T) {
	fakeEditor(t, "exit 0")

	got, err := NewOpener().EditTask(writeReport)
	require.NoError(t, err)
	assert.Equal(t, writeReport, got)
}

func TestEditTask_ReadsBackChanges(t *testing.T) {
	fakeEditor(t, `cat > "$1" <<'YAML'
description: Write Final Report
deadline: "2025-02-01"
urgency: Low
importance: High
YAML`)

	got, err := NewOpener().EditTask(writeReport)
	require.NoError(t, err)
	assert.Equal(t, domain.NewTask{
		Description: "Write Final Report",
		Deadline:    "2025-02-01",
		Urgency:     domain.RatingLow,
		Importance:  domain.RatingHigh,
	}, got)
}

func TestEditTask_EditorFails(t *testing.T) {
	fakeEditor(t, "exit 3")

	got, err := NewOpener().EditTask(writeReport)
	assert.ErrorContains(t, err, "editor failed")
	assert.Equal(t, writeReport, got)
}

func TestEditTask_InvalidYAML(t *testing.T) {
	fakeEditor(t, `echo "description: [unclosed" > "$1"`)

	_, err := NewOpener().EditTask(writeReport)
	assert.ErrorContains(t, err, "not valid YAML")
}
