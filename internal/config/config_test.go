package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func newTestFlags(t *testing.T, args ...string) *Flags {
	t.Helper()
	fs := flag.NewFlagSet("chrono", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := NewFlags(fs)
	if _, err := f.Parse(args); err != nil {
		t.Fatalf("Parse(%v) error = %v", args, err)
	}
	return f
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, warnings, err := Load(filepath.Join(t.TempDir(), "absent.toml"), nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v", warnings)
	}
	if !reflect.DeepEqual(cfg, NewDefaultConfig()) {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
[logger]
log_level = "debug"
log_file = "/tmp/chrono.log"
disabled_tags = ["event"]

[editor]
initial_content = "const a = 1;"
initial_cursor = 2
system_clipboard = true

[ui]
message_timeout = "1500ms"
show_history = false
`)

	cfg, warnings, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v", warnings)
	}
	if cfg.Logger.LogLevel != "debug" || cfg.Logger.LogFilePath != "/tmp/chrono.log" {
		t.Errorf("logger = %+v", cfg.Logger)
	}
	if !reflect.DeepEqual(cfg.Logger.DisabledTags, []string{"event"}) {
		t.Errorf("DisabledTags = %v", cfg.Logger.DisabledTags)
	}
	if cfg.Editor.InitialContent != "const a = 1;" || cfg.Editor.InitialCursor != 2 || !cfg.Editor.SystemClipboard {
		t.Errorf("editor = %+v", cfg.Editor)
	}
	if cfg.UI.MessageTimeout.Duration != 1500*time.Millisecond || cfg.UI.ShowHistory {
		t.Errorf("ui = %+v", cfg.UI)
	}
}

func TestLoadWarnsOnUnknownKeys(t *testing.T) {
	path := writeConfig(t, "[editor]\ntab_width = 8\n")

	_, warnings, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "editor.tab_width") {
		t.Errorf("warnings = %v", warnings)
	}
}

func TestLoadParseError(t *testing.T) {
	path := writeConfig(t, "[editor\n")
	if _, _, err := Load(path, nil); err == nil {
		t.Fatal("Load() expected parse error")
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	path := writeConfig(t, "[ui]\nmessage_timeout = \"soon\"\n")
	if _, _, err := Load(path, nil); err == nil {
		t.Fatal("Load() expected duration error")
	}
}

func TestValidateResetsInvalidValues(t *testing.T) {
	path := writeConfig(t, `
[logger]
log_level = "chatty"
[editor]
initial_cursor = -4
[ui]
message_timeout = "-1s"
`)

	cfg, _, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	defaults := NewDefaultConfig()
	if cfg.Logger.LogLevel != defaults.Logger.LogLevel {
		t.Errorf("LogLevel = %q", cfg.Logger.LogLevel)
	}
	if cfg.Editor.InitialCursor != 0 {
		t.Errorf("InitialCursor = %d", cfg.Editor.InitialCursor)
	}
	if cfg.UI.MessageTimeout != defaults.UI.MessageTimeout {
		t.Errorf("MessageTimeout = %v", cfg.UI.MessageTimeout)
	}
}

func TestFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, `
[logger]
log_level = "debug"
log_file = "file.log"
[editor]
system_clipboard = true
`)
	flags := newTestFlags(t,
		"-loglevel", "error",
		"-logfile", "-",
		"-log-tags", "history, editor,",
		"-log-disable-packages", "event",
		"-system-clipboard=false",
		"-script", "steps.yaml",
		"-demo",
		"-theme", "paper.toml",
		"extra",
	)

	cfg, _, err := Load(path, flags)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Logger.LogLevel != "error" || cfg.Logger.LogFilePath != "-" {
		t.Errorf("logger = %+v", cfg.Logger)
	}
	if !reflect.DeepEqual(cfg.Logger.EnabledTags, []string{"history", "editor"}) {
		t.Errorf("EnabledTags = %v", cfg.Logger.EnabledTags)
	}
	if !reflect.DeepEqual(cfg.Logger.DisabledPackages, []string{"event"}) {
		t.Errorf("DisabledPackages = %v", cfg.Logger.DisabledPackages)
	}
	if cfg.Editor.SystemClipboard {
		t.Error("SystemClipboard should be overridden to false")
	}
	if cfg.ScriptPath != "steps.yaml" || !cfg.Demo {
		t.Errorf("mode = %q, %v", cfg.ScriptPath, cfg.Demo)
	}
	if cfg.UI.ThemeFile != "paper.toml" {
		t.Errorf("ThemeFile = %q", cfg.UI.ThemeFile)
	}
}

func TestUnsetFlagsDoNotOverride(t *testing.T) {
	path := writeConfig(t, "[editor]\nsystem_clipboard = true\n")
	cfg, _, err := Load(path, newTestFlags(t))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Editor.SystemClipboard {
		t.Error("unset flag overrode file value")
	}
}

func TestParseReturnsArgs(t *testing.T) {
	fs := flag.NewFlagSet("chrono", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := NewFlags(fs)
	args, err := f.Parse([]string{"-demo", "a", "b"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !reflect.DeepEqual(args, []string{"a", "b"}) {
		t.Errorf("args = %v", args)
	}
	if _, err := NewFlags(flag.NewFlagSet("x", flag.ContinueOnError)).Parse([]string{"-nope"}); err == nil {
		t.Error("Parse() expected error for unknown flag")
	}
}

func TestSplitCommaList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{" a , ,b ", []string{"a", "b"}},
		{",,", []string{}},
	}
	for _, tt := range tests {
		if got := splitCommaList(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitCommaList(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}
