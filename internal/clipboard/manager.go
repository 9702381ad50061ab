// Package clipboard stores copied text, optionally in the system clipboard.
package clipboard

import (
	"errors"
	"sync"

	system "github.com/atotto/clipboard"
	"github.com/bethropolis/chrono/internal/logger"
)

// ErrEmpty is returned by Paste when nothing has been copied.
var ErrEmpty = errors.New("clipboard is empty")

// Backend is a text clipboard provided by the environment.
type Backend interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type systemBackend struct{}

func (systemBackend) ReadAll() (string, error)   { return system.ReadAll() }
func (systemBackend) WriteAll(text string) error { return system.WriteAll(text) }

// System returns the OS clipboard backend, or nil when the platform has none.
func System() Backend {
	if system.Unsupported {
		return nil
	}
	return systemBackend{}
}

// Manager holds copied text. With a backend it writes through to it and
// falls back to the internal buffer when the backend fails.
type Manager struct {
	mu       sync.Mutex
	backend  Backend
	internal []byte
}

// NewManager creates a clipboard. backend may be nil for an internal-only clipboard.
func NewManager(backend Backend) *Manager {
	return &Manager{backend: backend}
}

// Copy stores text in the clipboard.
func (m *Manager) Copy(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.internal = []byte(text)

	if m.backend != nil {
		if err := m.backend.WriteAll(text); err != nil {
			logger.WarnTagf("clipboard", "Clipboard: system write failed, keeping internal copy: %v", err)
		}
	}
	logger.DebugTagf("clipboard", "Clipboard: Copied %d bytes", len(text))
}

// Paste returns the clipboard text, or ErrEmpty if nothing is available.
func (m *Manager) Paste() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.backend != nil {
		text, err := m.backend.ReadAll()
		if err == nil && text != "" {
			return text, nil
		}
		if err != nil {
			logger.WarnTagf("clipboard", "Clipboard: system read failed, using internal copy: %v", err)
		}
	}
	if len(m.internal) == 0 {
		return "", ErrEmpty
	}
	return string(m.internal), nil
}
