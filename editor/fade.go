package editor

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/focusmode/focus"
)

// FadeFrameMsg advances a running dim transition. Hosts must route it to
// the editor that started the fade; other editors ignore it.
type FadeFrameMsg struct {
	ID   int
	Time time.Time
}

const fadeFrameInterval = time.Second / 60

var lastFadeID int64

func nextFadeID() int { return int(atomic.AddInt64(&lastFadeID, 1)) }

// fadeState tracks one transition between two decoration sets.
//
// Offsets in in are dimming and go from alpha 0 to their target. Decorations
// in out were dimmed and go from their alpha to 0. Everything else is drawn
// at its final look.
type fadeState struct {
	id       int
	start    time.Time
	duration time.Duration
	progress float64

	in  []focus.Range
	out []focus.Decoration
}

func (f fadeState) running() bool { return f.id != 0 && f.progress < 1 }

func fadeTick(id int) tea.Cmd {
	return tea.Tick(fadeFrameInterval, func(t time.Time) tea.Msg {
		return FadeFrameMsg{ID: id, Time: t}
	})
}

// Fading reports whether a dim transition is in progress.
func (m Model) Fading() bool { return m.fade.running() }

// startFade sets up a transition from prev to the current decorations.
// Edits snap to the new look, since offsets of the old set no longer line up.
func (m *Model) startFade(ch focus.Change, prev []focus.Decoration, prevVisible []focus.Range) tea.Cmd {
	m.fade = fadeState{}
	if ch.DocChanged || prevVisible == nil {
		return nil
	}
	d := transitionOf(m.decorations)
	if len(m.decorations) == 0 {
		d = transitionOf(prev)
	}
	if d <= 0 {
		return nil
	}

	cur := decorationRanges(m.decorations)
	old := decorationRanges(prev)

	// Text that was off screen before has no previous look to fade from.
	in := intersectRanges(subtractRanges(cur, old), prevVisible)

	var out []focus.Decoration
	for _, dec := range prev {
		for _, r := range intersectRanges(subtractRanges([]focus.Range{dec.Range}, cur), m.visibleRanges()) {
			out = append(out, focus.Decoration{Range: r, Style: dec.Style})
		}
	}
	if len(in) == 0 && len(out) == 0 {
		return nil
	}

	m.fade = fadeState{
		id:       nextFadeID(),
		start:    m.cfg.Clock(),
		duration: d,
		in:       in,
		out:      out,
	}
	return fadeTick(m.fade.id)
}

func (m Model) updateFade(msg FadeFrameMsg) (Model, tea.Cmd) {
	if msg.ID != m.fade.id || !m.fade.running() {
		return m, nil
	}
	now := msg.Time
	if now.IsZero() {
		now = m.cfg.Clock()
	}
	p := float64(now.Sub(m.fade.start)) / float64(m.fade.duration)
	if p >= 1 {
		m.fade = fadeState{}
		m.rebuildContent()
		return m, nil
	}
	m.fade.progress = clampFloat(p, 0, 1)
	m.rebuildContent()
	return m, fadeTick(m.fade.id)
}

// dimAt resolves the dim look of the rune at off, if any.
func (m *Model) dimAt(off int, decs []focus.Decoration) (focus.DimStyle, bool) {
	for _, d := range decs {
		if off < d.From {
			break
		}
		if off < d.To {
			if m.fade.running() && inRanges(m.fade.in, off) {
				return d.Style.Faded(m.fade.progress), true
			}
			return d.Style, true
		}
	}
	if m.fade.running() {
		for _, d := range m.fade.out {
			if off >= d.From && off < d.To {
				return d.Style.Faded(1 - m.fade.progress), true
			}
		}
	}
	return focus.DimStyle{}, false
}

func transitionOf(decs []focus.Decoration) time.Duration {
	for _, d := range decs {
		if d.Style.Transition > 0 {
			return d.Style.Transition
		}
	}
	return 0
}

func decorationRanges(decs []focus.Decoration) []focus.Range {
	out := make([]focus.Range, 0, len(decs))
	for _, d := range decs {
		out = append(out, d.Range)
	}
	return out
}

func inRanges(rs []focus.Range, off int) bool {
	for _, r := range rs {
		if off >= r.From && off < r.To {
			return true
		}
	}
	return false
}

// subtractRanges returns a minus b. Both must be sorted and non-overlapping.
func subtractRanges(a, b []focus.Range) []focus.Range {
	var out []focus.Range
	j := 0
	for _, r := range a {
		from := r.From
		for j < len(b) && b[j].To <= from {
			j++
		}
		for k := j; k < len(b) && b[k].From < r.To; k++ {
			if b[k].From > from {
				out = append(out, focus.Range{From: from, To: b[k].From})
			}
			from = maxInt(from, b[k].To)
		}
		if from < r.To {
			out = append(out, focus.Range{From: from, To: r.To})
		}
	}
	return out
}

// intersectRanges returns a and b overlapped. Both must be sorted and
// non-overlapping.
func intersectRanges(a, b []focus.Range) []focus.Range {
	var out []focus.Range
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		from := maxInt(a[i].From, b[j].From)
		to := minInt(a[i].To, b[j].To)
		if from < to {
			out = append(out, focus.Range{From: from, To: to})
		}
		if a[i].To < b[j].To {
			i++
		} else {
			j++
		}
	}
	return out
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
