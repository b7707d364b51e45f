package editor

import (
	"github.com/iw2rmb/focusmode/buffer"
	"github.com/iw2rmb/focusmode/focus"
)

// ChangeEvent is passed to Config.OnChange.
type ChangeEvent struct {
	focus.Change

	Version   uint64
	Cursor    buffer.Pos
	Selection struct {
		Range  buffer.Range
		Active bool
	}

	// Full text; hosts can diff if needed.
	Text string
}

func buildChangeEvent(b *buffer.Buffer, ch focus.Change) ChangeEvent {
	ev := ChangeEvent{
		Change:  ch,
		Version: b.Version(),
		Cursor:  b.Cursor(),
		Text:    b.Text(),
	}
	if r, ok := b.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	return ev
}
