// Package editor produces snapshots from edits and records them in the history.
package editor

import (
	"sync"

	"github.com/bethropolis/chrono/internal/clipboard"
	"github.com/bethropolis/chrono/internal/event"
	"github.com/bethropolis/chrono/internal/history"
	"github.com/bethropolis/chrono/internal/logger"
	"github.com/bethropolis/chrono/internal/state"
	"github.com/bethropolis/chrono/internal/utils"
)

// Options configures an Editor. Zero values are valid.
type Options struct {
	Clipboard *clipboard.Manager // nil creates an internal clipboard
	Events    event.Dispatcher   // nil disables events
}

// Editor holds the displayed snapshot and the history behind it.
// Cursor offsets are counted in grapheme clusters.
type Editor struct {
	mu        sync.RWMutex
	current   state.Snapshot
	history   *history.Manager
	clipboard *clipboard.Manager
	events    event.Dispatcher
}

// New creates an editor showing initial and saves it as the first history entry.
func New(initial state.Snapshot, opts Options) *Editor {
	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.NewManager(nil)
	}
	e := &Editor{
		current:   initial,
		history:   history.NewManager(opts.Events),
		clipboard: clip,
		events:    opts.Events,
	}
	e.history.Save(initial)
	return e
}

// Current returns the displayed snapshot.
func (e *Editor) Current() state.Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.current
}

// History exposes the history manager for read-only queries.
func (e *Editor) History() *history.Manager {
	return e.history
}

// commit makes next current and saves it, unless it equals the displayed snapshot.
// The history is updated after releasing the lock so event handlers can call Current.
func (e *Editor) commit(next state.Snapshot) bool {
	e.mu.Lock()
	if next.Equal(e.current) {
		e.mu.Unlock()
		return false
	}
	e.current = next
	e.mu.Unlock()

	e.history.Save(next)
	return true
}

// edit derives a snapshot from the displayed one. fn receives the content and a cursor clamped to it.
func (e *Editor) edit(fn func(content string, cursor int) []state.Override) bool {
	cur := e.Current()
	content := cur.Content()
	overrides := fn(content, utils.Clamp(content, cur.CursorPosition()))
	if len(overrides) == 0 {
		return false
	}
	return e.commit(cur.WithOverrides(overrides...))
}

// Set applies arbitrary overrides to the displayed snapshot and saves the result.
func (e *Editor) Set(overrides ...state.Override) bool {
	cur := e.Current()
	return e.commit(cur.WithOverrides(overrides...))
}

// Insert inserts text at the cursor and moves the cursor past it.
func (e *Editor) Insert(text string) bool {
	if text == "" {
		return false
	}
	return e.edit(func(content string, cursor int) []state.Override {
		at := utils.GraphemeToByteOffset(content, cursor)
		before := content[:at] + text
		return []state.Override{
			state.Content(before + content[at:]),
			state.Cursor(utils.GraphemeCount(before)),
			state.Unsaved(true),
		}
	})
}

// DeleteBackward removes the grapheme before the cursor.
func (e *Editor) DeleteBackward() bool {
	return e.edit(func(content string, cursor int) []state.Override {
		if cursor == 0 {
			return nil
		}
		from := utils.GraphemeToByteOffset(content, cursor-1)
		to := utils.GraphemeToByteOffset(content, cursor)
		return []state.Override{
			state.Content(content[:from] + content[to:]),
			state.Cursor(cursor - 1),
			state.Unsaved(true),
		}
	})
}

// DeleteForward removes the grapheme at the cursor.
func (e *Editor) DeleteForward() bool {
	return e.edit(func(content string, cursor int) []state.Override {
		if cursor >= utils.GraphemeCount(content) {
			return nil
		}
		from := utils.GraphemeToByteOffset(content, cursor)
		to := utils.GraphemeToByteOffset(content, cursor+1)
		return []state.Override{
			state.Content(content[:from] + content[to:]),
			state.Cursor(cursor),
			state.Unsaved(true),
		}
	})
}

// MoveLeft moves the cursor one grapheme back.
func (e *Editor) MoveLeft() bool {
	return e.edit(func(content string, cursor int) []state.Override {
		if cursor == 0 {
			return nil
		}
		return []state.Override{state.Cursor(cursor - 1)}
	})
}

// MoveRight moves the cursor one grapheme forward.
func (e *Editor) MoveRight() bool {
	return e.edit(func(content string, cursor int) []state.Override {
		if cursor >= utils.GraphemeCount(content) {
			return nil
		}
		return []state.Override{state.Cursor(cursor + 1)}
	})
}

// MoveHome moves the cursor to the start of its line.
func (e *Editor) MoveHome() bool {
	return e.edit(func(content string, cursor int) []state.Override {
		start, _ := utils.LineBounds(content, cursor)
		return []state.Override{state.Cursor(start)}
	})
}

// MoveEnd moves the cursor to the end of its line.
func (e *Editor) MoveEnd() bool {
	return e.edit(func(content string, cursor int) []state.Override {
		_, end := utils.LineBounds(content, cursor)
		return []state.Override{state.Cursor(end)}
	})
}

// MarkSaved clears the unsaved flag.
func (e *Editor) MarkSaved() bool {
	cur := e.Current()
	if !e.commit(cur.WithOverrides(state.Unsaved(false))) {
		return false
	}
	logger.InfoTagf("editor", "Editor: Document marked saved")
	if e.events != nil {
		e.events.Dispatch(event.TypeDocumentSaved, event.DocumentSavedData{Snapshot: e.Current()})
	}
	return true
}

// Undo steps the history back. When the history has no current state the
// displayed snapshot is kept and false is returned.
func (e *Editor) Undo() (state.Snapshot, bool) {
	snap, ok := e.history.Undo()
	if ok {
		e.show(snap)
	}
	return snap, ok
}

// Redo steps the history forward; see Undo.
func (e *Editor) Redo() (state.Snapshot, bool) {
	snap, ok := e.history.Redo()
	if ok {
		e.show(snap)
	}
	return snap, ok
}

func (e *Editor) show(snap state.Snapshot) {
	e.mu.Lock()
	e.current = snap
	e.mu.Unlock()
}

// Copy puts the whole document in the clipboard.
func (e *Editor) Copy() {
	content := e.Current().Content()
	e.clipboard.Copy(content)
	if e.events != nil {
		e.events.Dispatch(event.TypeClipboardCopied, event.ClipboardCopiedData{Bytes: len(content)})
	}
}

// Paste inserts the clipboard text at the cursor. An empty clipboard is a no-op.
func (e *Editor) Paste() bool {
	text, err := e.clipboard.Paste()
	if err != nil {
		logger.DebugTagf("editor", "Editor: Nothing to paste: %v", err)
		return false
	}
	return e.Insert(text)
}
