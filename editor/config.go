package editor

import "time"

// WrapMode controls how long logical lines are laid out.
type WrapMode int

const (
	// WrapWord breaks at whitespace when possible, else mid-word.
	WrapWord WrapMode = iota
	// WrapRune breaks at the last rune that fits.
	WrapRune
	// WrapNone keeps one visual row per line and scrolls horizontally.
	WrapNone
)

// Clipboard is the host clipboard used by copy/cut/paste.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	ShowLineNums bool
	Style        Style
	KeyMap       KeyMap
	WrapMode     WrapMode
	TabWidth     int // default: 4

	// Forwarded to buffer.Options.
	HistoryLimit int

	ReadOnly  bool
	Clipboard Clipboard

	// Decorator, if set, supplies dim decorations for the visible text.
	Decorator Decorator

	// OnChange is called after an update that changed the document, the
	// cursor/selection or the viewport.
	OnChange func(ChangeEvent)

	// Clock drives fade animations. Defaults to time.Now.
	Clock func() time.Time
}
