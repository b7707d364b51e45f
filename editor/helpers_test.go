package editor

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/focusmode/buffer"
	"github.com/iw2rmb/focusmode/focus"
)

func posOf(row, col int) buffer.Pos { return buffer.Pos{Row: row, Col: col} }

func stripANSI(s string) string { return ansi.Strip(s) }

func trueColorRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)
	return r
}

func plainLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(stripANSI(lines[i]), " ")
	}
	return lines
}

// recordingDecorator records every call and returns a fixed set.
type recordingDecorator struct {
	changes []focus.Change
	cursors []int
	visible [][]focus.Range
	decs    []focus.Decoration
}

func (d *recordingDecorator) Recompute(ch focus.Change, doc focus.Document, cursor int, visible []focus.Range) ([]focus.Decoration, bool) {
	d.changes = append(d.changes, ch)
	d.cursors = append(d.cursors, cursor)
	d.visible = append(d.visible, visible)
	return d.decs, false
}

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) ReadText() (string, error) { return c.text, c.err }

func (c *fakeClipboard) WriteText(s string) error {
	c.text = s
	return nil
}

func colRange(from, to int) buffer.Range {
	return buffer.Range{Start: posOf(0, from), End: posOf(0, to)}
}
