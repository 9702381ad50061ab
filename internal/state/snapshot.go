// Package state defines the immutable editor snapshot stored by the history.
package state

import "fmt"

// Snapshot is the editor state at one point in time.
// Fields are unexported and there are no setters; derive a new value with WithOverrides.
type Snapshot struct {
	content        string
	cursorPosition int
	unsavedChanges bool
}

// New creates a snapshot. A negative cursor is clamped to 0.
func New(content string, cursorPosition int, unsavedChanges bool) Snapshot {
	if cursorPosition < 0 {
		cursorPosition = 0
	}
	return Snapshot{
		content:        content,
		cursorPosition: cursorPosition,
		unsavedChanges: unsavedChanges,
	}
}

// Content returns the document text.
func (s Snapshot) Content() string { return s.content }

// CursorPosition returns the cursor offset in grapheme clusters.
func (s Snapshot) CursorPosition() int { return s.cursorPosition }

// UnsavedChanges reports whether the document differs from its last save.
func (s Snapshot) UnsavedChanges() bool { return s.unsavedChanges }

// Override replaces a single field while a snapshot is being copied.
type Override func(*Snapshot)

// Content overrides the document text.
func Content(content string) Override {
	return func(s *Snapshot) { s.content = content }
}

// Cursor overrides the cursor offset. Negative values are clamped to 0.
func Cursor(pos int) Override {
	return func(s *Snapshot) {
		if pos < 0 {
			pos = 0
		}
		s.cursorPosition = pos
	}
}

// Unsaved overrides the unsaved-changes flag.
func Unsaved(unsaved bool) Override {
	return func(s *Snapshot) { s.unsavedChanges = unsaved }
}

// WithOverrides returns a copy of s with the given fields replaced.
// The receiver is a value, so it is never modified.
func (s Snapshot) WithOverrides(overrides ...Override) Snapshot {
	next := s
	for _, o := range overrides {
		if o != nil {
			o(&next)
		}
	}
	return next
}

// Equal reports whether both snapshots hold the same three fields.
func (s Snapshot) Equal(other Snapshot) bool {
	return s == other
}

// String formats the snapshot on one line, for logs.
func (s Snapshot) String() string {
	return fmt.Sprintf("{content=%q cursor=%d unsaved=%t}", s.content, s.cursorPosition, s.unsavedChanges)
}
