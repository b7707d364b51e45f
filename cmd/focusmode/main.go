package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/iw2rmb/focusmode"
	"github.com/iw2rmb/focusmode/editor"
	"github.com/iw2rmb/focusmode/focus"
	"github.com/iw2rmb/focusmode/internal/app"
	"github.com/iw2rmb/focusmode/internal/script"
	"github.com/iw2rmb/focusmode/internal/settings"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		color.New(color.FgRed).Fprintf(os.Stderr, "focusmode: %s\n", err)
		os.Exit(1)
	}
}

var errUsage = errors.New("usage")

func run(args []string) error {
	flags, err := parseFlags(args, os.Stderr)
	if err != nil {
		if errors.Is(err, errTooManyArgs) {
			return err
		}
		return errUsage
	}
	if flags.Version {
		fmt.Println(focusmode.Banner())
		return nil
	}
	if flags, err = flags.resolvePaths(); err != nil {
		return err
	}

	logger := logrus.New()
	closer, err := setupLogger(logger, flags.LogPath, flags.Debug)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closer.Close()
	log := logger.WithField("version", focusmode.Version())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := settings.NewFileStore(flags.SettingsPath, settings.WithLogger(log))
	st, err := store.Load(ctx)
	if err != nil {
		if !errors.Is(err, settings.ErrInvalidJSON) {
			return err
		}
		warn("%s; using default settings", err)
		log.WithError(err).Warn("using default settings")
	}

	st, err = runInitScript(ctx, flags.InitPath, st, store, log)
	if err != nil {
		warn("%s", err)
		log.WithError(err).Warn("init script failed")
	}

	text, err := loadDocument(flags.File)
	if err != nil {
		return err
	}

	var cb editor.Clipboard
	if app.ClipboardSupported() {
		cb = app.SystemClipboard{}
	}

	model := app.New(app.Options{
		Text:         text,
		Path:         flags.File,
		Settings:     st,
		Store:        store,
		Log:          log,
		Clipboard:    cb,
		ShowLineNums: flags.LineNumbers,
		WrapMode:     flags.Wrap,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if err := app.WatchSettings(ctx, store, p); err != nil {
		log.WithError(err).Warn("settings watcher disabled")
	}

	log.WithField("path", flags.File).Info("starting")
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// runInitScript applies the user's init.lua to s and persists the result
// when the script changed anything.
func runInitScript(ctx context.Context, path string, s focus.Settings, store settings.Store, log logrus.FieldLogger) (focus.Settings, error) {
	e, err := script.New(&s, script.WithLogger(log))
	if err != nil {
		return s, err
	}
	defer e.Close()

	if err := e.RunFile(ctx, path); err != nil {
		return s, err
	}
	if e.Changed() {
		if err := store.Save(ctx, s); err != nil {
			return s, err
		}
	}
	return s, nil
}

// loadDocument reads path. A missing file starts an empty document that
// ctrl+s will create.
func loadDocument(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

func warn(format string, args ...interface{}) {
	color.New(color.FgYellow).Fprintf(os.Stderr, "focusmode: "+format+"\n", args...)
}
