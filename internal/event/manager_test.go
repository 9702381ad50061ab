package event

import (
	"testing"

	"github.com/bethropolis/chrono/internal/state"
)

func TestDispatchOrder(t *testing.T) {
	m := NewManager()
	var calls []int
	m.Subscribe(TypeHistorySaved, func(e Event) bool { calls = append(calls, 1); return false })
	m.Subscribe(TypeHistorySaved, func(e Event) bool { calls = append(calls, 2); return false })

	m.Dispatch(TypeHistorySaved, nil)

	if len(calls) != 2 || calls[0] != 1 || calls[1] != 2 {
		t.Errorf("calls = %v, want [1 2]", calls)
	}
}

func TestDispatchConsumedStopsPropagation(t *testing.T) {
	m := NewManager()
	second := false
	m.Subscribe(TypeAppQuit, func(e Event) bool { return true })
	m.Subscribe(TypeAppQuit, func(e Event) bool { second = true; return false })

	m.Dispatch(TypeAppQuit, AppQuitData{})

	if second {
		t.Error("handler after a consuming handler should not run")
	}
}

func TestDispatchCarriesData(t *testing.T) {
	m := NewManager()
	snap := state.New("x", 1, true)
	var got HistoryChangedData
	m.Subscribe(TypeHistoryRedone, func(e Event) bool {
		if e.Type != TypeHistoryRedone {
			t.Errorf("Type = %v", e.Type)
		}
		got = e.Data.(HistoryChangedData)
		return false
	})

	m.Dispatch(TypeHistoryRedone, HistoryChangedData{Snapshot: snap, Present: true, Cursor: 1, Length: 2})

	if !got.Snapshot.Equal(snap) || got.Cursor != 1 || got.Length != 2 || !got.Present {
		t.Errorf("data = %+v", got)
	}
}

func TestDispatchWithoutHandlers(t *testing.T) {
	m := NewManager()
	m.Dispatch(TypeAppReady, AppReadyData{}) // must not panic
}

func TestSubscribeDuringDispatch(t *testing.T) {
	m := NewManager()
	late := 0
	m.Subscribe(TypeAppReady, func(e Event) bool {
		m.Subscribe(TypeAppReady, func(e Event) bool { late++; return false })
		return false
	})

	m.Dispatch(TypeAppReady, nil)
	if late != 0 {
		t.Errorf("handler added during dispatch ran %d times in the same dispatch", late)
	}
	m.Dispatch(TypeAppReady, nil)
	if late != 1 {
		t.Errorf("late handler ran %d times, want 1", late)
	}
}

func TestTypeString(t *testing.T) {
	if TypeHistoryUndone.String() != "HistoryUndone" {
		t.Errorf("String() = %q", TypeHistoryUndone.String())
	}
	if Type(999).String() != "Unknown" {
		t.Errorf("String() = %q", Type(999).String())
	}
}
