package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"

	"github.com/iw2rmb/focusmode/editor"
	"github.com/iw2rmb/focusmode/internal/settings"
)

// Flags represents the command-line flags passed to focusmode.
type Flags struct {
	File         string
	SettingsPath string
	InitPath     string
	LogPath      string
	Debug        bool
	Version      bool
	LineNumbers  bool
	Wrap         editor.WrapMode
}

var errTooManyArgs = errors.New("at most one file may be given")

// parseFlags parses args (without the program name).
func parseFlags(args []string, output io.Writer) (Flags, error) {
	fs := flag.NewFlagSet("focusmode", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: focusmode [flags] [file]\n\nFlags:\n")
		fs.PrintDefaults()
	}

	var f Flags
	var wrap string
	fs.StringVar(&f.SettingsPath, "settings", "", "Settings file (default $XDG_CONFIG_HOME/focusmode/data.json)")
	fs.StringVar(&f.InitPath, "init", "", "Lua init script (default init.lua next to the settings file)")
	fs.StringVar(&f.LogPath, "log", "", "Write logs to this file (default: no logs)")
	fs.BoolVar(&f.Debug, "debug", false, "Include debug messages in the log")
	fs.BoolVar(&f.Version, "version", false, "Print the version and exit")
	fs.BoolVar(&f.LineNumbers, "line-numbers", false, "Show line numbers")
	fs.StringVar(&wrap, "wrap", "word", "Line wrapping: word, rune or none")

	if err := fs.Parse(args); err != nil {
		return Flags{}, err
	}
	switch fs.NArg() {
	case 0:
	case 1:
		f.File = fs.Arg(0)
	default:
		return Flags{}, errTooManyArgs
	}

	switch wrap {
	case "word":
		f.Wrap = editor.WrapWord
	case "rune":
		f.Wrap = editor.WrapRune
	case "none":
		f.Wrap = editor.WrapNone
	default:
		return Flags{}, fmt.Errorf("unknown -wrap value %q", wrap)
	}
	return f, nil
}

// resolvePaths fills in the default settings and init script paths.
func (f Flags) resolvePaths() (Flags, error) {
	if f.SettingsPath == "" {
		p, err := settings.DefaultPath()
		if err != nil {
			return f, err
		}
		f.SettingsPath = p
	}
	if f.InitPath == "" {
		f.InitPath = filepath.Join(filepath.Dir(f.SettingsPath), "init.lua")
	}
	return f, nil
}
