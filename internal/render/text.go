// Package render formats snapshots as plain text for the non-interactive modes.
package render

import (
	"fmt"
	"io"

	"github.com/bethropolis/chrono/internal/state"
)

const indent = "    "

func writeHeading(w io.Writer, heading string) error {
	if heading == "" {
		return nil
	}
	_, err := fmt.Fprintf(w, "%s:\n", heading)
	return err
}

// State writes the three snapshot fields under an optional heading, followed by a blank line.
func State(w io.Writer, heading string, s state.Snapshot) error {
	if err := writeHeading(w, heading); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%sContent: %s\n%sCursor Position: %d\n%sUnsaved Changes: %t\n\n",
		indent, s.Content(),
		indent, s.CursorPosition(),
		indent, s.UnsavedChanges())
	return err
}

// Absent writes the line shown when the history has no current state.
func Absent(w io.Writer, heading string) error {
	if err := writeHeading(w, heading); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s(no current state)\n\n", indent)
	return err
}
