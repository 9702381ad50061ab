// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style
	StyleModified  tcell.Style // Used while the document has unsaved changes
	StyleMessage   tcell.Style // Style for temporary messages
	MessageTimeout time.Duration
	ShowHistory    bool
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		StyleDefault:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlue),
		StyleModified:  tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlue).Bold(true),
		StyleMessage:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true),
		MessageTimeout: 4 * time.Second,
		ShowHistory:    true,
	}
}

// StatusBar represents the UI component for the status line.
type StatusBar struct {
	config Config
	mu     sync.RWMutex
	now    func() time.Time

	cursorPos     int
	isModified    bool
	historyCursor int
	historyLength int

	tempMessage     string
	tempMessageTime time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{
		config:        config,
		now:           time.Now,
		historyCursor: -1,
	}
}

// SetDocumentInfo updates the cursor offset and modified flag.
func (sb *StatusBar) SetDocumentInfo(cursorPos int, modified bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.cursorPos = cursorPos
	sb.isModified = modified
}

// SetHistoryInfo updates the history position. cursor is -1 when there is no current entry.
func (sb *StatusBar) SetHistoryInfo(cursor, length int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.historyCursor = cursor
	sb.historyLength = length
}

// SetTemporaryMessage displays a message for the configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = sb.now()
}

// ResetTemporaryMessage clears any temporary message being displayed
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// getDefaultDisplayText builds the default status line text. Caller holds the lock.
func (sb *StatusBar) getDefaultDisplayText() string {
	modifiedIndicator := ""
	if sb.isModified {
		modifiedIndicator = " [Modified]"
	}
	historyIndicator := ""
	if sb.config.ShowHistory {
		historyIndicator = fmt.Sprintf(" -- History: %d/%d", sb.historyCursor+1, sb.historyLength)
	}
	return fmt.Sprintf("chrono%s -- Cursor: %d%s", modifiedIndicator, sb.cursorPos, historyIndicator)
}

// Text returns the line the status bar would draw now, with its style.
func (sb *StatusBar) Text() (string, tcell.Style) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	active := !sb.tempMessageTime.IsZero() && sb.now().Sub(sb.tempMessageTime) <= sb.config.MessageTimeout
	if !sb.tempMessageTime.IsZero() && !active {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}

	switch {
	case active:
		return sb.tempMessage, sb.config.StyleMessage
	case sb.isModified:
		return sb.getDefaultDisplayText(), sb.config.StyleModified
	default:
		return sb.getDefaultDisplayText(), sb.config.StyleDefault
	}
}

// Draw renders the status bar on the last row of the screen using visual widths.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1
	text, style := sb.Text()

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	gr := uniseg.NewGraphemes(text)
	currentX := 0
	for gr.Next() {
		clusterWidth := gr.Width()
		if currentX+clusterWidth > width {
			break
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			screen.SetContent(currentX, y, runes[0], runes[1:], style)
		}
		currentX += clusterWidth
	}
}
