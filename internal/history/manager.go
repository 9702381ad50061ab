// Package history provides linear undo/redo over immutable editor snapshots.
package history

import (
	"sync"

	"github.com/bethropolis/chrono/internal/event"
	"github.com/bethropolis/chrono/internal/logger"
	"github.com/bethropolis/chrono/internal/state"
)

// Manager stores the snapshot sequence and the cursor marking the current entry.
// A cursor of -1 means there is no current entry.
type Manager struct {
	entries    []state.Snapshot
	cursor     int
	dispatcher event.Dispatcher
	mutex      sync.Mutex
}

// NewManager creates an empty history. dispatcher may be nil.
func NewManager(dispatcher event.Dispatcher) *Manager {
	return &Manager{
		cursor:     -1,
		dispatcher: dispatcher,
	}
}

// Save appends a snapshot and makes it current.
// Entries after the cursor are discarded first, so a save mid-history drops the redo branch.
func (m *Manager) Save(snapshot state.Snapshot) {
	m.mutex.Lock()
	if m.cursor < len(m.entries)-1 {
		logger.DebugTagf("history", "History: Discarding %d redo entries", len(m.entries)-1-m.cursor)
		m.entries = m.entries[:m.cursor+1]
	}
	m.entries = append(m.entries, snapshot)
	m.cursor++
	data := m.changedLocked()
	m.mutex.Unlock()

	logger.DebugTagf("history", "History: Saved %v. Cursor: %d, Count: %d", snapshot, data.Cursor, data.Length)
	m.dispatch(event.TypeHistorySaved, data)
}

// Undo moves the cursor back one entry and returns the snapshot now current.
// It returns false when there is no current state: the history is empty or the
// cursor has just moved to before the first entry. Undo never removes entries.
func (m *Manager) Undo() (state.Snapshot, bool) {
	m.mutex.Lock()
	if m.cursor < 0 {
		m.mutex.Unlock()
		logger.DebugTagf("history", "History: Nothing to undo.")
		return state.Snapshot{}, false
	}
	m.cursor--
	data := m.changedLocked()
	m.mutex.Unlock()

	logger.DebugTagf("history", "History: Undo. Cursor: %d, Count: %d", data.Cursor, data.Length)
	m.dispatch(event.TypeHistoryUndone, data)
	return data.Snapshot, data.Present
}

// Redo moves the cursor forward one entry and returns the snapshot now current.
// At the last entry, or on an empty history, it returns false and changes nothing.
func (m *Manager) Redo() (state.Snapshot, bool) {
	m.mutex.Lock()
	if m.cursor >= len(m.entries)-1 {
		m.mutex.Unlock()
		logger.DebugTagf("history", "History: Nothing to redo.")
		return state.Snapshot{}, false
	}
	m.cursor++
	data := m.changedLocked()
	m.mutex.Unlock()

	logger.DebugTagf("history", "History: Redo. Cursor: %d, Count: %d", data.Cursor, data.Length)
	m.dispatch(event.TypeHistoryRedone, data)
	return data.Snapshot, true
}

// Current returns the snapshot at the cursor, or false if there is none.
func (m *Manager) Current() (state.Snapshot, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.cursor < 0 {
		return state.Snapshot{}, false
	}
	return m.entries[m.cursor], true
}

// Cursor returns the index of the current entry, -1 when there is none.
func (m *Manager) Cursor() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.cursor
}

// Len returns the number of stored entries, including any redo branch.
func (m *Manager) Len() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.entries)
}

// Entries returns a copy of the stored snapshots in order.
func (m *Manager) Entries() []state.Snapshot {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	out := make([]state.Snapshot, len(m.entries))
	copy(out, m.entries)
	return out
}

// CanUndo returns true if Undo would move the cursor.
func (m *Manager) CanUndo() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.cursor >= 0
}

// CanRedo returns true if Redo would return a snapshot.
func (m *Manager) CanRedo() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.cursor < len(m.entries)-1
}

// changedLocked builds the event payload. Caller must hold the mutex.
func (m *Manager) changedLocked() event.HistoryChangedData {
	data := event.HistoryChangedData{
		Cursor: m.cursor,
		Length: len(m.entries),
	}
	if m.cursor >= 0 {
		data.Snapshot = m.entries[m.cursor]
		data.Present = true
	}
	return data
}

// dispatch runs outside the mutex so handlers may query the manager.
func (m *Manager) dispatch(t event.Type, data event.HistoryChangedData) {
	if m.dispatcher != nil {
		m.dispatcher.Dispatch(t, data)
	}
}
