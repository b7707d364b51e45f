package app

import "github.com/iw2rmb/focusmode/focus"

// SettingsReloadedMsg carries settings changed on disk by another program.
type SettingsReloadedMsg struct {
	Settings focus.Settings
}

type settingsSavedMsg struct {
	rev     uint64
	written bool
	err     error
}

type fileSavedMsg struct {
	path        string
	textVersion uint64
	err         error
}

type statusTimeoutMsg struct{ id int }
