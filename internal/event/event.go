// internal/event/event.go
package event

import (
	"github.com/bethropolis/chrono/internal/state"
	"github.com/gdamore/tcell/v2"
)

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// History events
	TypeHistorySaved  // A snapshot was appended to the history
	TypeHistoryUndone // The history cursor moved back
	TypeHistoryRedone // The history cursor moved forward

	// Editor events
	TypeDocumentSaved   // The document was marked saved
	TypeClipboardCopied // Content was copied to the clipboard

	// Input events
	TypeKeyPressed

	// Application lifecycle
	TypeAppReady
	TypeAppQuit
)

var typeNames = map[Type]string{
	TypeUnknown:         "Unknown",
	TypeHistorySaved:    "HistorySaved",
	TypeHistoryUndone:   "HistoryUndone",
	TypeHistoryRedone:   "HistoryRedone",
	TypeDocumentSaved:   "DocumentSaved",
	TypeClipboardCopied: "ClipboardCopied",
	TypeKeyPressed:      "KeyPressed",
	TypeAppReady:        "AppReady",
	TypeAppQuit:         "AppQuit",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// HistoryChangedData describes the history after a save, undo or redo.
type HistoryChangedData struct {
	Snapshot state.Snapshot // Snapshot at the cursor, zero when Present is false
	Present  bool           // False when the cursor moved to before the first entry
	Cursor   int
	Length   int
}

// DocumentSavedData carries the snapshot that was marked saved.
type DocumentSavedData struct {
	Snapshot state.Snapshot
}

// ClipboardCopiedData carries the number of bytes copied.
type ClipboardCopiedData struct {
	Bytes int
}

// KeyPressedData contains the raw tcell key event.
type KeyPressedData struct {
	KeyEvent *tcell.EventKey
}

// AppQuitData is sent just before the interactive frontend exits.
type AppQuitData struct {
	Unsaved bool
}

// AppReadyData is sent once the interactive frontend has drawn its first frame.
type AppReadyData struct{}
