package app

import (
	"github.com/bethropolis/chrono/internal/event"
	"github.com/bethropolis/chrono/internal/logger"
)

func (a *App) subscribe() {
	a.eventManager.Subscribe(event.TypeHistorySaved, a.handleHistoryChangedForStatus)
	a.eventManager.Subscribe(event.TypeHistoryUndone, a.handleHistoryChangedForStatus)
	a.eventManager.Subscribe(event.TypeHistoryRedone, a.handleHistoryChangedForStatus)
	a.eventManager.Subscribe(event.TypeDocumentSaved, a.handleDocumentSavedForStatus)
	a.eventManager.Subscribe(event.TypeClipboardCopied, a.handleClipboardCopiedForStatus)
}

// handleHistoryChangedForStatus mirrors the history position in the status bar.
// The editor shows the new snapshot after dispatch, so the event data is used instead of Current.
func (a *App) handleHistoryChangedForStatus(e event.Event) bool {
	data, ok := e.Data.(event.HistoryChangedData)
	if !ok {
		logger.Warnf("App: Received %s event with unexpected data type: %T", e.Type, e.Data)
		return false
	}
	a.statusBar.SetHistoryInfo(data.Cursor, data.Length)
	if data.Present {
		a.statusBar.SetDocumentInfo(data.Snapshot.CursorPosition(), data.Snapshot.UnsavedChanges())
	}
	return false
}

func (a *App) handleDocumentSavedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.DocumentSavedData); ok {
		a.statusBar.SetDocumentInfo(data.Snapshot.CursorPosition(), data.Snapshot.UnsavedChanges())
	}
	return false
}

func (a *App) handleClipboardCopiedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.ClipboardCopiedData); ok {
		a.statusBar.SetTemporaryMessage("Copied %d bytes", data.Bytes)
	}
	return false
}
