package focus

// State is the focus mode lifecycle state.
type State int

const (
	Disabled State = iota
	Enabled
)

func (s State) String() string {
	switch s {
	case Disabled:
		return "disabled"
	case Enabled:
		return "enabled"
	default:
		return "unknown"
	}
}

// Change describes what moved since the last recomputation.
type Change struct {
	DocChanged       bool
	SelectionChanged bool
	ViewportChanged  bool
}

// Any reports whether any flag is set.
func (c Change) Any() bool {
	return c.DocChanged || c.SelectionChanged || c.ViewportChanged
}

// Controller owns the enabled/disabled lifecycle on top of a Settings value
// held by the caller, and caches the last decoration set.
//
// The settings pointer is shared: the caller may mutate it directly, and the
// next Recompute picks the change up.
type Controller struct {
	settings *Settings

	built     bool
	builtWith Settings
	last      []Decoration
}

// NewController returns a Controller bound to s. A nil s gets a private copy
// of DefaultSettings.
func NewController(s *Settings) *Controller {
	if s == nil {
		def := DefaultSettings()
		s = &def
	}
	return &Controller{settings: s}
}

// Settings returns the bound settings.
func (c *Controller) Settings() *Settings { return c.settings }

func (c *Controller) State() State {
	if c.settings.Enabled {
		return Enabled
	}
	return Disabled
}

// Toggle flips the state and returns the new one.
func (c *Controller) Toggle() State {
	c.settings.Enabled = !c.settings.Enabled
	return c.State()
}

func (c *Controller) Enable() { c.settings.Enabled = true }

func (c *Controller) Disable() { c.settings.Enabled = false }

// Recompute returns the decorations for the current document state.
//
// The set is rebuilt when ch carries any change flag or when the settings
// differ from the ones used for the previous build; otherwise the cached set
// is returned. changed reports whether the returned set differs from the
// previous one.
func (c *Controller) Recompute(ch Change, doc Document, cursor int, visible []Range) (decs []Decoration, changed bool) {
	cur := *c.settings
	if c.built && !ch.Any() && cur == c.builtWith {
		return c.last, false
	}

	next := Build(doc, cursor, visible, cur)
	changed = !c.built || !sameDecorations(c.last, next)
	c.built = true
	c.builtWith = cur
	c.last = next
	return next, changed
}

// Decorations returns the last computed set.
func (c *Controller) Decorations() []Decoration { return c.last }

func sameDecorations(a, b []Decoration) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
