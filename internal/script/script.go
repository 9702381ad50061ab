// Package script replays YAML edit scripts against an editor and prints each state.
package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bethropolis/chrono/internal/editor"
	"github.com/bethropolis/chrono/internal/logger"
	"github.com/bethropolis/chrono/internal/render"
	"github.com/bethropolis/chrono/internal/state"
	"gopkg.in/yaml.v3"
)

// ErrUnknownOp is returned when a step names an operation that does not exist.
var ErrUnknownOp = errors.New("unknown operation")

// Op names a script step.
type Op string

const (
	OpSet       Op = "set"
	OpInsert    Op = "insert"
	OpBackspace Op = "backspace"
	OpDelete    Op = "delete"
	OpLeft      Op = "left"
	OpRight     Op = "right"
	OpHome      Op = "home"
	OpEnd       Op = "end"
	OpSave      Op = "save"
	OpUndo      Op = "undo"
	OpRedo      Op = "redo"
	OpCopy      Op = "copy"
	OpPaste     Op = "paste"
)

var knownOps = map[Op]bool{
	OpSet: true, OpInsert: true, OpBackspace: true, OpDelete: true,
	OpLeft: true, OpRight: true, OpHome: true, OpEnd: true,
	OpSave: true, OpUndo: true, OpRedo: true, OpCopy: true, OpPaste: true,
}

// Initial is the first snapshot of a script.
type Initial struct {
	Content string `yaml:"content"`
	Cursor  int    `yaml:"cursor"`
	Unsaved bool   `yaml:"unsaved"`
}

// Step is one operation. Pointer fields of a set step are only applied when present.
type Step struct {
	Op      Op      `yaml:"op"`
	Title   string  `yaml:"title,omitempty"`
	Text    string  `yaml:"text,omitempty"`
	Content *string `yaml:"content,omitempty"`
	Cursor  *int    `yaml:"cursor,omitempty"`
	Unsaved *bool   `yaml:"unsaved,omitempty"`
	Quiet   bool    `yaml:"quiet,omitempty"` // run without printing the resulting state
}

// Script is a parsed replay file.
type Script struct {
	Title   string  `yaml:"title,omitempty"` // heading for the initial state
	Initial Initial `yaml:"initial"`
	Steps   []Step  `yaml:"steps"`
}

// Parse decodes and validates a script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script '%s': %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func (s *Script) validate() error {
	for i, step := range s.Steps {
		if !knownOps[step.Op] {
			return fmt.Errorf("step %d: %w %q", i+1, ErrUnknownOp, step.Op)
		}
	}
	return nil
}

// overrides converts the optional fields of a set step.
func (st Step) overrides() []state.Override {
	var out []state.Override
	if st.Content != nil {
		out = append(out, state.Content(*st.Content))
	}
	if st.Cursor != nil {
		out = append(out, state.Cursor(*st.Cursor))
	}
	if st.Unsaved != nil {
		out = append(out, state.Unsaved(*st.Unsaved))
	}
	return out
}

// heading returns the step title or a generated one.
func (st Step) heading(index int) string {
	if st.Title != "" {
		return st.Title
	}
	return fmt.Sprintf("Step %d (%s)", index+1, st.Op)
}

// apply runs one step. present is false when undo or redo reported no current state.
func apply(ed *editor.Editor, st Step) (present bool) {
	switch st.Op {
	case OpSet:
		ed.Set(st.overrides()...)
	case OpInsert:
		ed.Insert(st.Text)
	case OpBackspace:
		ed.DeleteBackward()
	case OpDelete:
		ed.DeleteForward()
	case OpLeft:
		ed.MoveLeft()
	case OpRight:
		ed.MoveRight()
	case OpHome:
		ed.MoveHome()
	case OpEnd:
		ed.MoveEnd()
	case OpSave:
		ed.MarkSaved()
	case OpUndo:
		_, present = ed.Undo()
		return present
	case OpRedo:
		_, present = ed.Redo()
		return present
	case OpCopy:
		ed.Copy()
	case OpPaste:
		ed.Paste()
	}
	return true
}

// Run executes the script on a fresh editor, writing each state to w.
// It stops between steps when ctx is cancelled. The editor is returned for inspection.
func (s *Script) Run(ctx context.Context, w io.Writer, opts editor.Options) (*editor.Editor, error) {
	initial := state.New(s.Initial.Content, s.Initial.Cursor, s.Initial.Unsaved)
	ed := editor.New(initial, opts)

	title := s.Title
	if title == "" {
		title = "Initial state"
	}
	if err := render.State(w, title, initial); err != nil {
		return ed, err
	}

	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return ed, err
		}
		present := apply(ed, st)
		logger.DebugTagf("script", "Script: step %d %s -> %v (present=%t)", i+1, st.Op, ed.Current(), present)
		if st.Quiet {
			continue
		}

		var err error
		if present {
			err = render.State(w, st.heading(i), ed.Current())
		} else {
			err = render.Absent(w, st.heading(i))
		}
		if err != nil {
			return ed, err
		}
	}
	return ed, nil
}
