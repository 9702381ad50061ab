// internal/tui/drawing.go
package tui

import (
	"strings"

	"github.com/bethropolis/chrono/internal/state"
	"github.com/bethropolis/chrono/internal/utils"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// statusBarHeight rows at the bottom are left for the status bar.
const statusBarHeight = 1

// splitLines splits on "\n", dropping a trailing "\r" so CRLF content draws cleanly.
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// calculateVisualColumn returns the screen width of the first col graphemes of line.
func calculateVisualColumn(line string, col int) int {
	if col <= 0 {
		return 0
	}
	visualWidth := 0
	current := 0
	gr := uniseg.NewGraphemes(line)
	for gr.Next() && current < col {
		visualWidth += gr.Width()
		current++
	}
	return visualWidth
}

// drawLine draws one line of text at row y, clipped to width.
func drawLine(screen tcell.Screen, y, width int, text string, style tcell.Style) {
	gr := uniseg.NewGraphemes(text)
	x := 0
	for gr.Next() {
		w := gr.Width()
		if x+w > width {
			break
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			screen.SetContent(x, y, runes[0], runes[1:], style)
		}
		x += w
	}
}

// scrollOffset returns the first visible line so that cursorLine stays in view.
func scrollOffset(cursorLine, viewHeight int) int {
	if viewHeight <= 0 || cursorLine < viewHeight {
		return 0
	}
	return cursorLine - viewHeight + 1
}

// DrawDocument draws the snapshot content above the status bar and places the terminal cursor.
func DrawDocument(t *TUI, snap state.Snapshot) {
	screen := t.GetScreen()
	width, height := t.Size()
	viewHeight := height - statusBarHeight
	if viewHeight <= 0 || width <= 0 {
		screen.HideCursor()
		return
	}

	content := snap.Content()
	cursorLine, cursorCol := utils.LineCol(content, snap.CursorPosition())
	lines := splitLines(content)
	top := scrollOffset(cursorLine, viewHeight)

	for row := 0; row < viewHeight; row++ {
		idx := top + row
		if idx >= len(lines) {
			break
		}
		drawLine(screen, row, width, lines[idx], t.style)
	}

	x := calculateVisualColumn(lines[cursorLine], cursorCol)
	if x >= width {
		x = width - 1
	}
	screen.ShowCursor(x, cursorLine-top)
}
