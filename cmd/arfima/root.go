package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/avitaltamir/arfima/internal/app"
	"github.com/avitaltamir/arfima/internal/config"
	"github.com/avitaltamir/arfima/internal/watch"
)

type rootOptions struct {
	configPath string
	logFile    string
	debug      bool
}

// runProgram is replaced in tests.
var runProgram = func(m tea.Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:           "arfima [directory]",
		Short:         "Modal tiling file manager",
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return run(dir, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "config file (default ~/.config/arfima/config.toml)")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "log file (default $XDG_STATE_HOME/arfima/arfima.log)")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "log at debug level")
	return cmd
}

func run(dir string, opts rootOptions) error {
	closeLog, err := setupLogging(opts.logFile, opts.debug)
	if err != nil {
		return err
	}
	defer closeLog()

	abs, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	cfgPath := opts.configPath
	if cfgPath == "" {
		if cfgPath, err = config.DefaultPath(); err != nil {
			slog.Warn("no config path", "error", err)
		}
	}

	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			slog.Error("load config", "path", cfgPath, "error", err)
		}
		cfg = loaded
	}

	w, err := watch.New()
	if err != nil {
		// Panes still work, they just won't refresh on their own
		slog.Warn("file watching disabled", "error", err)
		w = nil
	}

	m, err := app.New(app.Options{
		Dir:        abs,
		Config:     cfg,
		ConfigPath: cfgPath,
		Watcher:    w,
	})
	if err != nil {
		if w != nil {
			_ = w.Close()
		}
		return err
	}

	slog.Info("starting", "version", version, "dir", abs)
	return runProgram(m)
}

// setupLogging points the default slog logger at a file, since the
// terminal belongs to the UI.
func setupLogging(path string, debug bool) (func(), error) {
	if path == "" {
		path = defaultLogPath()
	}
	if path == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
	return func() { _ = f.Close() }, nil
}

func defaultLogPath() string {
	if state := os.Getenv("XDG_STATE_HOME"); state != "" {
		return filepath.Join(state, "arfima", "arfima.log")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "state", "arfima", "arfima.log")
}
