package statusbar

import (
	"testing"
	"time"
)

func newTestBar(cfg Config) (*StatusBar, *time.Time) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	sb := New(cfg)
	sb.now = func() time.Time { return now }
	return sb, &now
}

func TestDefaultText(t *testing.T) {
	sb, _ := newTestBar(DefaultConfig())
	sb.SetDocumentInfo(3, false)
	sb.SetHistoryInfo(1, 4)

	text, style := sb.Text()
	if want := "chrono -- Cursor: 3 -- History: 2/4"; text != want {
		t.Errorf("Text() = %q, want %q", text, want)
	}
	if style != sb.config.StyleDefault {
		t.Errorf("expected default style")
	}
}

func TestModifiedText(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ShowHistory = false
	sb, _ := newTestBar(cfg)
	sb.SetDocumentInfo(0, true)

	text, style := sb.Text()
	if want := "chrono [Modified] -- Cursor: 0"; text != want {
		t.Errorf("Text() = %q, want %q", text, want)
	}
	if style != cfg.StyleModified {
		t.Errorf("expected modified style")
	}
}

func TestNoCurrentHistoryEntry(t *testing.T) {
	sb, _ := newTestBar(DefaultConfig())
	sb.SetHistoryInfo(-1, 2)
	if text, _ := sb.Text(); text != "chrono -- Cursor: 0 -- History: 0/2" {
		t.Errorf("Text() = %q", text)
	}
}

func TestTemporaryMessageExpires(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MessageTimeout = time.Second
	sb, now := newTestBar(cfg)

	sb.SetTemporaryMessage("Nothing to %s", "undo")
	if text, style := sb.Text(); text != "Nothing to undo" || style != cfg.StyleMessage {
		t.Errorf("Text() = %q, want temporary message", text)
	}

	*now = now.Add(2 * time.Second)
	if text, _ := sb.Text(); text != "chrono -- Cursor: 0 -- History: 0/0" {
		t.Errorf("Text() after timeout = %q", text)
	}
}

func TestResetTemporaryMessage(t *testing.T) {
	sb, _ := newTestBar(DefaultConfig())
	sb.SetTemporaryMessage("hello")
	sb.ResetTemporaryMessage()
	if text, _ := sb.Text(); text == "hello" {
		t.Errorf("message should have been cleared")
	}
}
