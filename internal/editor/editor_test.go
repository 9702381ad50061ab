package editor

import (
	"testing"

	"github.com/bethropolis/chrono/internal/clipboard"
	"github.com/bethropolis/chrono/internal/event"
	"github.com/bethropolis/chrono/internal/state"
)

func assertState(t *testing.T, e *Editor, content string, cursor int, unsaved bool) {
	t.Helper()
	want := state.New(content, cursor, unsaved)
	if got := e.Current(); !got.Equal(want) {
		t.Errorf("Current() = %v, want %v", got, want)
	}
}

func TestNewSavesInitial(t *testing.T) {
	initial := state.New("const a = 1;", 2, false)
	e := New(initial, Options{})

	assertState(t, e, "const a = 1;", 2, false)
	if e.History().Len() != 1 || e.History().Cursor() != 0 {
		t.Errorf("history len = %d, cursor = %d", e.History().Len(), e.History().Cursor())
	}
}

func TestInsert(t *testing.T) {
	e := New(state.New("ac", 1, false), Options{})

	if !e.Insert("b") {
		t.Fatal("Insert() returned false")
	}
	assertState(t, e, "abc", 2, true)

	if e.Insert("") {
		t.Error("Insert(\"\") should not record a snapshot")
	}
	if e.History().Len() != 2 {
		t.Errorf("history len = %d, want 2", e.History().Len())
	}
}

func TestInsertClampsCursorBeyondContent(t *testing.T) {
	e := New(state.New("abc", 10, false), Options{})
	e.Insert("!")
	assertState(t, e, "abc!", 4, true)
}

func TestInsertWithCombiningMarks(t *testing.T) {
	// "e" + combining acute is one grapheme.
	e := New(state.New("e\u0301x", 1, false), Options{})
	e.Insert("-")
	assertState(t, e, "e\u0301-x", 2, true)
}

func TestDeleteBackward(t *testing.T) {
	e := New(state.New("ae\u0301b", 2, false), Options{})

	if !e.DeleteBackward() {
		t.Fatal("DeleteBackward() returned false")
	}
	assertState(t, e, "ab", 1, true)

	e.MoveHome()
	if e.DeleteBackward() {
		t.Error("DeleteBackward() at start should be a no-op")
	}
}

func TestDeleteForward(t *testing.T) {
	e := New(state.New("abc", 1, false), Options{})

	e.DeleteForward()
	assertState(t, e, "ac", 1, true)

	e.MoveEnd()
	if e.DeleteForward() {
		t.Error("DeleteForward() at end should be a no-op")
	}
}

func TestMovement(t *testing.T) {
	e := New(state.New("ab\ncd", 4, false), Options{})

	e.MoveHome()
	assertState(t, e, "ab\ncd", 3, false)
	e.MoveLeft()
	assertState(t, e, "ab\ncd", 2, false)
	e.MoveHome()
	assertState(t, e, "ab\ncd", 0, false)
	if e.MoveLeft() {
		t.Error("MoveLeft() at start should be a no-op")
	}
	e.MoveEnd()
	assertState(t, e, "ab\ncd", 2, false)
	e.MoveRight()
	e.MoveEnd()
	assertState(t, e, "ab\ncd", 5, false)
	if e.MoveRight() {
		t.Error("MoveRight() at end should be a no-op")
	}
}

func TestMovementIsRecorded(t *testing.T) {
	e := New(state.New("abc", 0, false), Options{})
	e.MoveRight()
	e.MoveRight()

	if e.History().Len() != 3 {
		t.Fatalf("history len = %d, want 3", e.History().Len())
	}
	snap, ok := e.Undo()
	if !ok || snap.CursorPosition() != 1 {
		t.Errorf("Undo() = %v, %v", snap, ok)
	}
}

func TestSetMatchesCopyWith(t *testing.T) {
	e := New(state.New("const a = 1;", 2, false), Options{})

	e.Set(state.Content("const a = 1; const b = 2;"), state.Cursor(3), state.Unsaved(true))
	assertState(t, e, "const a = 1; const b = 2;", 3, true)

	e.Set(state.Cursor(2))
	assertState(t, e, "const a = 1; const b = 2;", 2, true)

	if e.Set() {
		t.Error("Set() without overrides should not record a snapshot")
	}
}

func TestMarkSaved(t *testing.T) {
	bus := event.NewManager()
	var saved []state.Snapshot
	bus.Subscribe(event.TypeDocumentSaved, func(ev event.Event) bool {
		saved = append(saved, ev.Data.(event.DocumentSavedData).Snapshot)
		return false
	})
	e := New(state.New("x", 0, true), Options{Events: bus})

	if !e.MarkSaved() {
		t.Fatal("MarkSaved() returned false")
	}
	assertState(t, e, "x", 0, false)
	if e.MarkSaved() {
		t.Error("MarkSaved() on a clean document should be a no-op")
	}
	if len(saved) != 1 || saved[0].UnsavedChanges() {
		t.Errorf("saved events = %v", saved)
	}
}

func TestUndoRedo(t *testing.T) {
	e := New(state.New("a", 1, false), Options{})
	e.Insert("b")
	e.Insert("c")

	if _, ok := e.Undo(); !ok {
		t.Fatal("Undo() returned false")
	}
	assertState(t, e, "ab", 2, true)

	e.Undo()
	assertState(t, e, "a", 1, false)

	if _, ok := e.Undo(); ok {
		t.Error("Undo() past the first entry should report no current state")
	}
	assertState(t, e, "a", 1, false) // display kept

	if snap, ok := e.Redo(); !ok || snap.Content() != "a" {
		t.Errorf("Redo() from before start = %v, %v", snap, ok)
	}
	e.Redo()
	assertState(t, e, "ab", 2, true)
}

func TestEditAfterUndoDiscardsRedo(t *testing.T) {
	e := New(state.New("", 0, false), Options{})
	e.Insert("a")
	e.Insert("b")
	e.Undo()
	e.Insert("c")

	assertState(t, e, "ac", 2, true)
	if _, ok := e.Redo(); ok {
		t.Error("Redo() after a new edit should report no current state")
	}
	if e.History().Len() != 3 {
		t.Errorf("history len = %d, want 3", e.History().Len())
	}
}

func TestCopyPaste(t *testing.T) {
	bus := event.NewManager()
	copied := 0
	bus.Subscribe(event.TypeClipboardCopied, func(ev event.Event) bool {
		copied = ev.Data.(event.ClipboardCopiedData).Bytes
		return false
	})
	clip := clipboard.NewManager(nil)
	e := New(state.New("ab", 2, false), Options{Clipboard: clip, Events: bus})

	if e.Paste() {
		t.Error("Paste() with an empty clipboard should be a no-op")
	}
	e.Copy()
	if copied != 2 {
		t.Errorf("copied bytes = %d, want 2", copied)
	}
	if !e.Paste() {
		t.Fatal("Paste() returned false")
	}
	assertState(t, e, "abab", 4, true)
}

func TestHistoryEventsSeeSnapshot(t *testing.T) {
	bus := event.NewManager()
	var lengths []int
	bus.Subscribe(event.TypeHistorySaved, func(ev event.Event) bool {
		lengths = append(lengths, ev.Data.(event.HistoryChangedData).Length)
		return false
	})
	e := New(state.New("", 0, false), Options{Events: bus})
	e.Insert("x")

	if len(lengths) != 2 || lengths[0] != 1 || lengths[1] != 2 {
		t.Errorf("lengths = %v, want [1 2]", lengths)
	}
}
