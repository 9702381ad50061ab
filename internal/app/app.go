// internal/app/app.go
package app

import (
	"fmt"
	"sync"

	"github.com/bethropolis/chrono/internal/clipboard"
	"github.com/bethropolis/chrono/internal/config"
	"github.com/bethropolis/chrono/internal/editor"
	"github.com/bethropolis/chrono/internal/event"
	"github.com/bethropolis/chrono/internal/input"
	"github.com/bethropolis/chrono/internal/logger"
	"github.com/bethropolis/chrono/internal/state"
	"github.com/bethropolis/chrono/internal/statusbar"
	"github.com/bethropolis/chrono/internal/theme"
	"github.com/bethropolis/chrono/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// App encapsulates the core components and main loop of the interactive editor.
type App struct {
	tuiManager     *tui.TUI
	editor         *editor.Editor
	statusBar      *statusbar.StatusBar
	eventManager   *event.Manager
	inputProcessor *input.InputProcessor
	activeTheme    *theme.Theme

	forceQuitPending bool

	// Channels managed by the App
	quit          chan struct{}
	quitOnce      sync.Once
	redrawRequest chan struct{}
}

// NewApp creates the terminal screen and an application instance on it.
func NewApp(cfg *config.Config, clip *clipboard.Manager) (*App, error) {
	tuiManager, err := tui.New()
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}
	return newApp(tuiManager, cfg, clip), nil
}

func newApp(tuiManager *tui.TUI, cfg *config.Config, clip *clipboard.Manager) *App {
	eventManager := event.NewManager()

	activeTheme := loadTheme(cfg.UI.ThemeFile)
	tuiManager.SetStyle(activeTheme.GetStyle(theme.StyleDefault))

	sbCfg := statusbar.DefaultConfig()
	sbCfg.StyleDefault = activeTheme.GetStyle(theme.StyleStatusBar)
	sbCfg.StyleModified = activeTheme.GetStyle(theme.StyleStatusBarModified)
	sbCfg.StyleMessage = activeTheme.GetStyle(theme.StyleStatusBarMessage)
	sbCfg.MessageTimeout = cfg.UI.MessageTimeout.Duration
	sbCfg.ShowHistory = cfg.UI.ShowHistory

	a := &App{
		tuiManager:     tuiManager,
		statusBar:      statusbar.New(sbCfg),
		eventManager:   eventManager,
		inputProcessor: input.NewInputProcessor(),
		activeTheme:    activeTheme,
		quit:           make(chan struct{}),
		redrawRequest:  make(chan struct{}, 1),
	}

	// Subscribe before the editor saves its initial snapshot so the status bar sees it.
	a.subscribe()

	initial := state.New(cfg.Editor.InitialContent, cfg.Editor.InitialCursor, false)
	a.editor = editor.New(initial, editor.Options{
		Clipboard: clip,
		Events:    eventManager,
	})
	a.updateStatusBarContent()
	return a
}

// loadTheme returns the theme at path, or the built-in theme when path is empty or unusable.
func loadTheme(path string) *theme.Theme {
	if path == "" {
		return theme.Default()
	}
	t, err := theme.LoadFile(path)
	if err != nil {
		logger.Warnf("App: %v, using built-in theme", err)
		return theme.Default()
	}
	logger.Infof("App: Using theme '%s'", t.Name)
	return t
}

// Theme returns the active theme.
func (a *App) Theme() *theme.Theme {
	return a.activeTheme
}

// Editor returns the editor driven by the app.
func (a *App) Editor() *editor.Editor {
	return a.editor
}

// Run starts the application's main event and drawing loops.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	go a.eventLoop()

	a.statusBar.SetTemporaryMessage("chrono - Ctrl+Z Undo | Ctrl+Y Redo | Ctrl+S Save | ESC Quit")
	a.drawEditor()
	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})

	for {
		select {
		case <-a.quit:
			unsaved := a.editor.Current().UnsavedChanges()
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{Unsaved: unsaved})
			if unsaved {
				logger.Warnf("App: Exited with unsaved changes")
			}
			logger.Infof("App: Exiting application")
			return nil
		case <-a.redrawRequest:
			a.drawEditor()
		}
	}
}

// eventLoop handles TUI events until the screen is finalized.
func (a *App) eventLoop() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}

		needsRedraw := false

		switch eventData := ev.(type) {
		case *tcell.EventResize:
			a.tuiManager.Sync()
			needsRedraw = true

		case *tcell.EventKey:
			needsRedraw = a.HandleKey(eventData)
		}

		if needsRedraw {
			a.requestRedraw()
		}
	}
}

// requestQuit signals the draw loop to exit. Safe to call more than once.
func (a *App) requestQuit() {
	a.quitOnce.Do(func() { close(a.quit) })
}

// requestRedraw sends a redraw signal non-blockingly.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default: // Don't block if a redraw is already pending
	}
}
