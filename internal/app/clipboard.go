package app

import "github.com/atotto/clipboard"

// SystemClipboard is the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }

func (SystemClipboard) WriteText(s string) error { return clipboard.WriteAll(s) }

// ClipboardSupported reports whether the OS clipboard can be used.
func ClipboardSupported() bool { return !clipboard.Unsupported }
