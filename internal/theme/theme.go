// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/bethropolis/chrono/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Style names used by the terminal frontend.
const (
	StyleDefault           = "Default"
	StyleStatusBar         = "StatusBar"
	StyleStatusBarModified = "StatusBar.Modified"
	StyleStatusBarMessage  = "StatusBar.Message"
)

// Theme maps style names to tcell styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle looks up name, falling back to its base name (the part before the first dot) and then Default.
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		baseName := name[:dotIndex]
		if style, ok := t.Styles[baseName]; ok {
			logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, using base '%s'", t.Name, name, baseName)
			return style
		}
	}

	if defStyle, ok := t.Styles[StyleDefault]; ok {
		if name != StyleDefault {
			logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// Default returns the built-in dark theme.
func Default() *Theme {
	background := tcell.NewHexColor(0x2a2f38)
	foreground := tcell.NewHexColor(0xc5cdd9)
	yellow := tcell.NewHexColor(0xe5c07b)
	blue := tcell.NewHexColor(0x61afef)

	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(foreground)
	status := tcell.StyleDefault.Background(background).Foreground(foreground)

	return &Theme{
		Name:   "Chrono Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			StyleDefault:           base,
			StyleStatusBar:         status,
			StyleStatusBarModified: status.Foreground(yellow).Bold(true),
			StyleStatusBarMessage:  status.Foreground(blue).Bold(true),
		},
	}
}
