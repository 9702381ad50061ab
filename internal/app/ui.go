package app

import (
	"github.com/bethropolis/chrono/internal/logger"
	"github.com/bethropolis/chrono/internal/tui"
)

// drawEditor clears screen and redraws all components.
func (a *App) drawEditor() {
	a.updateStatusBarContent()

	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()
	logger.DebugTagf("draw", "drawEditor: Screen Size (%d x %d)", width, height)

	a.tuiManager.Clear()
	tui.DrawDocument(a.tuiManager, a.editor.Current())
	a.statusBar.Draw(screen, width, height)
	a.tuiManager.Show()
}

// updateStatusBarContent pushes the displayed snapshot and history position to the status bar.
func (a *App) updateStatusBarContent() {
	cur := a.editor.Current()
	a.statusBar.SetDocumentInfo(cur.CursorPosition(), cur.UnsavedChanges())
	h := a.editor.History()
	a.statusBar.SetHistoryInfo(h.Cursor(), h.Len())
}
