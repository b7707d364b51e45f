package buffer

type snapshot struct {
	text   string
	cursor Pos
	sel    selectionState
}

type historyState struct {
	undo []snapshot
	redo []snapshot
}

func (b *Buffer) snapshot() snapshot {
	return snapshot{text: b.Text(), cursor: b.cursor, sel: b.sel}
}

func (b *Buffer) restore(s snapshot) {
	b.lines = splitLines(s.text)
	b.cursor = b.clampPos(s.cursor)
	b.sel = selectionState{}
	if s.sel.active {
		anchor, end := b.clampPos(s.sel.anchor), b.clampPos(s.sel.end)
		if anchor != end {
			b.sel = selectionState{active: true, anchor: anchor, end: end}
		}
	}
	b.textChanged()
}

func (b *Buffer) recordUndo(prev snapshot) {
	if b.opt.HistoryLimit <= 0 {
		return
	}
	b.hist.undo = pushBounded(b.hist.undo, prev, b.opt.HistoryLimit)
	b.hist.redo = nil
}

func pushBounded(stack []snapshot, s snapshot, limit int) []snapshot {
	stack = append(stack, s)
	if len(stack) > limit {
		stack = stack[len(stack)-limit:]
	}
	return stack
}

func (b *Buffer) CanUndo() bool { return len(b.hist.undo) > 0 }

func (b *Buffer) CanRedo() bool { return len(b.hist.redo) > 0 }

func (b *Buffer) Undo() bool {
	n := len(b.hist.undo)
	if n == 0 {
		return false
	}
	prev := b.hist.undo[n-1]
	b.hist.undo = b.hist.undo[:n-1]
	b.hist.redo = append(b.hist.redo, b.snapshot())
	b.restore(prev)
	return true
}

func (b *Buffer) Redo() bool {
	n := len(b.hist.redo)
	if n == 0 {
		return false
	}
	next := b.hist.redo[n-1]
	b.hist.redo = b.hist.redo[:n-1]
	if b.opt.HistoryLimit > 0 {
		b.hist.undo = pushBounded(b.hist.undo, b.snapshot(), b.opt.HistoryLimit)
	}
	b.restore(next)
	return true
}
