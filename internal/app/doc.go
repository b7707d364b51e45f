// Package app is the focusmode terminal application: an editor with focus
// mode, a status bar, a settings panel and a help line.
package app
