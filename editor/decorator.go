package editor

import (
	"github.com/iw2rmb/focusmode/buffer"
	"github.com/iw2rmb/focusmode/focus"
)

// Decorator supplies dim decorations for the visible text.
//
// ch says what moved since the previous call. changed reports whether the
// returned set differs from the previous one. focus.Controller implements it.
type Decorator interface {
	Recompute(ch focus.Change, doc focus.Document, cursor int, visible []focus.Range) (decs []focus.Decoration, changed bool)
}

// docView exposes a buffer as a focus.Document.
type docView struct{ b *buffer.Buffer }

func (d docView) Len() int { return d.b.Len() }

func (d docView) LineAt(off int) focus.Line {
	l := d.b.LineAt(off)
	return focus.Line{Number: l.Row + 1, From: l.From, To: l.To, Text: l.Text}
}

// DocumentOf adapts b to focus.Document.
func DocumentOf(b *buffer.Buffer) focus.Document { return docView{b: b} }
