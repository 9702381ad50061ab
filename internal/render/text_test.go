package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/bethropolis/chrono/internal/state"
)

func TestState(t *testing.T) {
	var buf bytes.Buffer
	if err := State(&buf, "Initial state", state.New("const a = 1;", 2, false)); err != nil {
		t.Fatalf("State() error = %v", err)
	}
	want := "Initial state:\n" +
		"    Content: const a = 1;\n" +
		"    Cursor Position: 2\n" +
		"    Unsaved Changes: false\n\n"
	if buf.String() != want {
		t.Errorf("State() wrote %q, want %q", buf.String(), want)
	}
}

func TestStateWithoutHeading(t *testing.T) {
	var buf bytes.Buffer
	_ = State(&buf, "", state.New("x", 0, true))
	want := "    Content: x\n    Cursor Position: 0\n    Unsaved Changes: true\n\n"
	if buf.String() != want {
		t.Errorf("State() wrote %q, want %q", buf.String(), want)
	}
}

func TestAbsent(t *testing.T) {
	var buf bytes.Buffer
	_ = Absent(&buf, "After undo")
	if buf.String() != "After undo:\n    (no current state)\n\n" {
		t.Errorf("Absent() wrote %q", buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("closed") }

func TestWriteErrors(t *testing.T) {
	if err := State(failingWriter{}, "h", state.New("", 0, false)); err == nil {
		t.Error("State() expected write error")
	}
	if err := Absent(failingWriter{}, ""); err == nil {
		t.Error("Absent() expected write error")
	}
}
