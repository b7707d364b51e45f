package editor

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/focusmode/buffer"
	"github.com/iw2rmb/focusmode/focus"
)

// Model is a Bubble Tea component that renders and edits a buffer and
// draws the decorations supplied by Config.Decorator.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool

	viewport viewport.Model
	top      int // first visible visual row
	xOffset  int // horizontal cell offset, WrapNone only

	layout layoutCache

	// State observed by the last refresh, for change detection.
	seen struct {
		ok          bool
		version     uint64
		textVersion uint64
		view        ViewportState
		visible     []focus.Range
	}

	decorations []focus.Decoration
	fade        fadeState

	mouseAnchor   buffer.Pos
	mouseDragging bool
}

func New(cfg Config) Model {
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = 4
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if isZeroKeyMap(cfg.KeyMap) {
		cfg.KeyMap = DefaultKeyMap()
	}

	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.refresh()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

// Decorations returns the decoration set currently drawn.
func (m Model) Decorations() []focus.Decoration { return m.decorations }

func (m Model) Init() tea.Cmd { return nil }

// SetSize resizes the editor. The returned command drives a fade when the
// new size changed the decoration set.
func (m Model) SetSize(width, height int) (Model, tea.Cmd) {
	m.viewport.Width = maxInt(width, 0)
	m.viewport.Height = maxInt(height, 0)
	m.followCursor()
	cmd := m.refresh()
	return m, cmd
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.followCursor()
		m.rebuildContent()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.mouseDragging = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// Refresh re-runs change detection after the host mutated the buffer or the
// decorator's inputs (for example its settings) outside of Update.
func (m Model) Refresh() (Model, tea.Cmd) {
	if m.buf != nil && m.buf.Version() != m.seen.version {
		m.followCursor()
	}
	cmd := m.refresh()
	return m, cmd
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height)
	case FadeFrameMsg:
		return m.updateFade(msg)
	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.updateKey(msg)
		return m, tea.Batch(cmd, m.afterUpdate(true))
	case tea.MouseMsg:
		var cmd tea.Cmd
		m, cmd = m.updateMouse(msg)
		return m, tea.Batch(cmd, m.afterUpdate(false))
	default:
		// Hosts may drive edits by mutating the buffer directly.
		return m.Refresh()
	}
}

func (m Model) View() string { return m.viewport.View() }

func (m *Model) afterUpdate(follow bool) tea.Cmd {
	if m.buf == nil {
		return nil
	}
	if follow && m.buf.Version() != m.seen.version {
		m.followCursor()
	}
	return m.refresh()
}

// refresh detects what changed since the previous call, asks the decorator
// for a new decoration set, re-renders and reports the change to the host.
func (m *Model) refresh() tea.Cmd {
	if m.buf == nil {
		return nil
	}
	m.clampTop()

	first := !m.seen.ok
	view := m.ViewportState()
	ch := focus.Change{
		DocChanged:       first || m.buf.TextVersion() != m.seen.textVersion,
		SelectionChanged: first || m.buf.Version() != m.seen.version,
		ViewportChanged:  first || view != m.seen.view,
	}

	var cmd tea.Cmd
	if m.cfg.Decorator != nil {
		prev := m.decorations
		decs, changed := m.cfg.Decorator.Recompute(ch, docView{b: m.buf}, m.buf.CursorOffset(), m.visibleRanges())
		m.decorations = decs
		if changed {
			cmd = m.startFade(ch, prev, m.seen.visible)
		}
	}

	m.seen.ok = true
	m.seen.version = m.buf.Version()
	m.seen.textVersion = m.buf.TextVersion()
	m.seen.view = view
	m.seen.visible = m.visibleRanges()

	m.rebuildContent()

	if !first && ch.Any() && m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf, ch))
	}
	return cmd
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
	m.viewport.SetYOffset(m.top)
}

func (m *Model) clampTop() {
	rows := len(m.ensureLayout().rows)
	m.top = clampInt(m.top, 0, maxInt(rows-m.visibleRowCount(), 0))
}

// followCursor scrolls the minimal amount that keeps the cursor visible.
func (m *Model) followCursor() {
	if m.buf == nil {
		return
	}
	h := m.visibleRowCount()
	if h <= 0 {
		return
	}
	layout := m.ensureLayout()
	cur := m.buf.Cursor()
	vr := layout.visualRowFor(cur)
	if vr < m.top {
		m.top = vr
	} else if vr >= m.top+h {
		m.top = vr - h + 1
	}

	if m.cfg.WrapMode != WrapNone {
		m.xOffset = 0
		return
	}
	w := m.contentWidth()
	if w <= 0 {
		return
	}
	x := m.cellsBefore(cur.Row, 0, cur.Col)
	if x < m.xOffset {
		m.xOffset = x
	} else if x >= m.xOffset+w {
		m.xOffset = x - w + 1
	}
}

// cellsBefore is the cell width of runes [from, col) of row, with tabs
// expanded relative to from.
func (m *Model) cellsBefore(row, from, col int) int {
	line := []rune(m.buf.LineText(row))
	col = clampInt(col, from, len(line))
	cells := 0
	for i := from; i < col; i++ {
		cells += runeCells(line[i], cells, m.tabWidth())
	}
	return cells
}

func (m Model) tabWidth() int {
	if m.cfg.TabWidth <= 0 {
		return 4
	}
	return m.cfg.TabWidth
}

func isZeroKeyMap(km KeyMap) bool {
	return len(km.Left.Keys()) == 0 && len(km.Right.Keys()) == 0 &&
		len(km.Up.Keys()) == 0 && len(km.Down.Keys()) == 0
}
