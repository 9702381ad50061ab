package app

import (
	"github.com/bethropolis/chrono/internal/event"
	"github.com/bethropolis/chrono/internal/input"
	"github.com/bethropolis/chrono/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// HandleKey processes a key event and reports whether the screen needs a redraw.
func (a *App) HandleKey(ev *tcell.EventKey) bool {
	a.eventManager.Dispatch(event.TypeKeyPressed, event.KeyPressedData{KeyEvent: ev})

	actionEvent := a.inputProcessor.ProcessEvent(ev)
	action := actionEvent.Action

	if action != input.ActionQuit {
		a.forceQuitPending = false
	}

	switch action {
	case input.ActionQuit:
		if a.editor.Current().UnsavedChanges() && !a.forceQuitPending {
			a.statusBar.SetTemporaryMessage("Unsaved changes! Press ESC again to quit.")
			a.forceQuitPending = true
			return true
		}
		a.requestQuit()
		return false

	case input.ActionSave:
		if a.editor.MarkSaved() {
			a.statusBar.SetTemporaryMessage("Saved")
		} else {
			a.statusBar.SetTemporaryMessage("No changes to save")
		}

	case input.ActionInsertRune:
		a.editor.Insert(string(actionEvent.Rune))
	case input.ActionInsertNewLine:
		a.editor.Insert("\n")
	case input.ActionDeleteCharBackward:
		a.editor.DeleteBackward()
	case input.ActionDeleteCharForward:
		a.editor.DeleteForward()

	case input.ActionMoveLeft:
		a.editor.MoveLeft()
	case input.ActionMoveRight:
		a.editor.MoveRight()
	case input.ActionMoveHome:
		a.editor.MoveHome()
	case input.ActionMoveEnd:
		a.editor.MoveEnd()

	case input.ActionUndo:
		if !a.editor.History().CanUndo() {
			a.statusBar.SetTemporaryMessage("Nothing to undo")
		} else if _, ok := a.editor.Undo(); !ok {
			a.statusBar.SetTemporaryMessage("No current state")
		}
	case input.ActionRedo:
		if !a.editor.History().CanRedo() {
			a.statusBar.SetTemporaryMessage("Nothing to redo")
		} else {
			a.editor.Redo()
		}

	case input.ActionCopy:
		a.editor.Copy()
	case input.ActionPaste:
		if !a.editor.Paste() {
			a.statusBar.SetTemporaryMessage("Clipboard is empty")
		}

	default:
		logger.DebugTagf("input", "App: Unhandled key %s", ev.Name())
		return false
	}

	a.updateStatusBarContent()
	return true
}
