package app

import (
	"context"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/focusmode/focus"
	"github.com/iw2rmb/focusmode/internal/settings"
)

const saveTimeout = 5 * time.Second

// saveSettingsCmd persists s off the update loop. The revision is taken
// here, on the update loop, so a slower earlier save cannot overwrite it.
func saveSettingsCmd(saver *settings.Sequencer, s focus.Settings) tea.Cmd {
	if saver == nil {
		return nil
	}
	rev := saver.Next()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		written, err := saver.Save(ctx, rev, s)
		return settingsSavedMsg{rev: rev, written: written, err: err}
	}
}

func saveFileCmd(path, text string, textVersion uint64) tea.Cmd {
	return func() tea.Msg {
		err := os.WriteFile(path, []byte(text), 0o644)
		return fileSavedMsg{path: path, textVersion: textVersion, err: err}
	}
}

// WatchSettings forwards external settings edits to p until ctx is done.
func WatchSettings(ctx context.Context, store *settings.FileStore, p *tea.Program) error {
	return store.Watch(ctx, func(s focus.Settings) {
		p.Send(SettingsReloadedMsg{Settings: s})
	})
}
