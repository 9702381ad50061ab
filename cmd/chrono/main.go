// cmd/chrono/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	stlog "log" // Use standard log for FATAL errors before logger is ready
	"os"
	"os/signal"

	"github.com/bethropolis/chrono/internal/app"
	"github.com/bethropolis/chrono/internal/clipboard"
	"github.com/bethropolis/chrono/internal/config"
	"github.com/bethropolis/chrono/internal/editor"
	"github.com/bethropolis/chrono/internal/logger"
	"github.com/bethropolis/chrono/internal/script"
)

func main() {
	// --- Argument & Flag Parsing ---
	fs := flag.NewFlagSet(config.AppName, flag.ExitOnError)
	flags := config.NewFlags(fs)
	if _, err := flags.Parse(os.Args[1:]); err != nil {
		stlog.Fatalf("Failed to parse flags: %v", err)
	}

	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, config.Version)
		return
	}

	// --- Configuration ---
	cfg, warnings, err := config.Load(*flags.ConfigFilePath, flags)
	if err != nil {
		stlog.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Logger Initialization ---
	logger.SetFilterDebug(*flags.DebugLog)
	closer, err := logger.Setup(cfg.Logger)
	if err != nil {
		stlog.Fatalf("Failed to set up logging: %v", err)
	}
	defer closer.Close()

	for _, w := range warnings {
		logger.Warnf("%s", w)
	}
	logger.Infof("Starting %s %s...", config.AppName, config.Version)
	logger.Debugf("Log level set to: %s", cfg.Logger.LogLevel)

	if err := run(cfg); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		closer.Close()
		os.Exit(1)
	}
	logger.Infof("%s finished.", config.AppName)
}

func run(cfg *config.Config) error {
	var backend clipboard.Backend
	if cfg.Editor.SystemClipboard {
		if backend = clipboard.System(); backend == nil {
			logger.Warnf("System clipboard is not supported here, using the internal clipboard")
		}
	}
	clip := clipboard.NewManager(backend)

	if cfg.Demo || cfg.ScriptPath != "" {
		return replay(cfg, clip)
	}

	chronoApp, err := app.NewApp(cfg, clip)
	if err != nil {
		return fmt.Errorf("initializing application: %w", err)
	}
	return chronoApp.Run()
}

// replay prints every state of a script to stdout. An interrupt stops it between steps.
func replay(cfg *config.Config, clip *clipboard.Manager) error {
	var s *script.Script
	if cfg.Demo {
		s = script.Demo()
	} else {
		loaded, err := script.Load(cfg.ScriptPath)
		if err != nil {
			return err
		}
		s = loaded
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	_, err := s.Run(ctx, os.Stdout, editor.Options{Clipboard: clip})
	if errors.Is(err, context.Canceled) {
		logger.Infof("Replay interrupted")
		return nil
	}
	return err
}
