package app

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
	"github.com/sirupsen/logrus"

	"github.com/iw2rmb/focusmode/editor"
	"github.com/iw2rmb/focusmode/focus"
	"github.com/iw2rmb/focusmode/internal/settings"
)

// chromeHeight is the status bar plus the help line.
const chromeHeight = 2

var statusTimeout = 3 * time.Second

// Options configures the application.
type Options struct {
	// Text is the initial document; Path is where ctrl+s writes it.
	Text string
	Path string

	Settings focus.Settings
	// Store persists settings changes. Nil keeps them in memory only.
	Store settings.Store

	Log       logrus.FieldLogger
	Clipboard editor.Clipboard
	Style     *editor.Style
	KeyMap    *KeyMap

	ShowLineNums bool
	WrapMode     editor.WrapMode
}

// Model is the root Bubble Tea model.
type Model struct {
	opts Options
	log  logrus.FieldLogger
	keys KeyMap

	settings *focus.Settings
	focus    *focus.Controller
	saver    *settings.Sequencer

	editor editor.Model
	help   help.Model
	panel  panel
	status statusBar

	panelOpen bool

	width, height int

	savedTextVersion uint64
	nextStatusID     int
}

func New(opts Options) Model {
	log := opts.Log
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	log = log.WithField("component", "app")

	keys := DefaultKeyMap()
	if opts.KeyMap != nil {
		keys = *opts.KeyMap
	}

	s := opts.Settings.Normalize()
	ctrl := focus.NewController(&s)

	style := editor.DefaultStyle()
	if opts.Style != nil {
		style = *opts.Style
	}

	ed := editor.New(editor.Config{
		Text:         opts.Text,
		ShowLineNums: opts.ShowLineNums,
		Style:        style,
		WrapMode:     opts.WrapMode,
		Clipboard:    opts.Clipboard,
		Decorator:    ctrl,
	})

	var saver *settings.Sequencer
	if opts.Store != nil {
		saver = settings.NewSequencer(opts.Store)
	}

	return Model{
		opts:             opts,
		saver:            saver,
		log:              log,
		keys:             keys,
		settings:         &s,
		focus:            ctrl,
		editor:           ed,
		help:             help.New(),
		panel:            newPanel(s),
		status:           statusBar{styles: defaultStatusStyles()},
		savedTextVersion: ed.Buffer().TextVersion(),
	}
}

// Settings returns the current settings.
func (m Model) Settings() focus.Settings { return *m.settings }

// Editor returns the embedded editor.
func (m Model) Editor() editor.Model { return m.editor }

// PanelOpen reports whether the settings panel is shown.
func (m Model) PanelOpen() bool { return m.panelOpen }

// Modified reports whether the document has unsaved edits.
func (m Model) Modified() bool {
	return m.editor.Buffer().TextVersion() != m.savedTextVersion
}

func (m Model) Init() tea.Cmd { return m.editor.Init() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		var cmd tea.Cmd
		m.editor, cmd = m.editor.SetSize(msg.Width, maxInt(msg.Height-chromeHeight, 0))
		return m, cmd

	case SettingsReloadedMsg:
		next := msg.Settings.Normalize()
		if next == *m.settings {
			return m, nil
		}
		*m.settings = next
		m.panel = m.panel.sync(next)
		m.log.WithField("enabled", next.Enabled).Info("settings reloaded")
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Refresh()
		return m, tea.Batch(cmd, m.setStatus("Settings reloaded", false))

	case settingsSavedMsg:
		if !msg.written && msg.err == nil {
			m.log.WithField("revision", msg.rev).Debug("settings save superseded")
		}
		if msg.err != nil {
			m.log.WithError(msg.err).Error("save settings")
			return m, m.setStatus("Settings not saved: "+msg.err.Error(), true)
		}
		return m, nil

	case fileSavedMsg:
		if msg.err != nil {
			m.log.WithError(msg.err).WithField("path", msg.path).Error("save file")
			return m, m.setStatus("Save failed: "+msg.err.Error(), true)
		}
		m.savedTextVersion = msg.textVersion
		return m, m.setStatus("Saved "+msg.path, false)

	case statusTimeoutMsg:
		if msg.id == m.status.msg.id {
			m.status.msg = statusLine{}
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		if m.statusLabelHit(msg) {
			return m.toggleFocus()
		}
		if m.panelOpen {
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		return m.toggleFocus()
	case key.Matches(msg, m.keys.Settings):
		return m.setPanelOpen(!m.panelOpen), nil
	case key.Matches(msg, m.keys.Save):
		return m, m.saveFile()
	}

	if m.panelOpen {
		if key.Matches(msg, m.keys.Close) {
			return m.setPanelOpen(false), nil
		}
		var (
			changed bool
			cmd     tea.Cmd
		)
		m.panel, changed, cmd = m.panel.update(msg, m.settings)
		if changed {
			return m, tea.Batch(cmd, m.settingsChanged())
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m Model) setPanelOpen(open bool) Model {
	if open == m.panelOpen {
		return m
	}
	m.panelOpen = open
	if open {
		m.panel = m.panel.focusField(m.panel.field, *m.settings)
		m.editor = m.editor.Blur()
	} else {
		m.panel = m.panel.focusField(fieldEnabled, *m.settings)
		m.editor = m.editor.Focus()
	}
	return m
}

// toggleFocus flips focus mode, re-decorates and persists.
func (m Model) toggleFocus() (tea.Model, tea.Cmd) {
	st := m.focus.Toggle()
	m.log.WithField("enabled", st == focus.Enabled).Debug("focus mode toggled")
	return m, m.settingsChanged()
}

// settingsChanged re-runs decoration and saves the settings.
func (m *Model) settingsChanged() tea.Cmd {
	m.panel = m.panel.sync(*m.settings)
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Refresh()
	return tea.Batch(cmd, saveSettingsCmd(m.saver, *m.settings))
}

func (m *Model) saveFile() tea.Cmd {
	if m.opts.Path == "" {
		return m.setStatus("No file name; start with a path to save", true)
	}
	buf := m.editor.Buffer()
	return saveFileCmd(m.opts.Path, buf.Text(), buf.TextVersion())
}

func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.nextStatusID++
	id := m.nextStatusID
	m.status.msg = statusLine{id: id, text: text, isErr: isErr}
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return statusTimeoutMsg{id: id} })
}

// statusLabelHit reports a left click on the focus mode label.
func (m Model) statusLabelHit(msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return false
	}
	row := maxInt(m.height-chromeHeight, 0)
	return msg.Y == row && msg.X >= 0 && msg.X < m.status.labelWidth(m.focus.State())
}

func (m Model) View() string {
	buf := m.editor.Buffer()
	base := lipgloss.JoinVertical(lipgloss.Left,
		m.editor.View(),
		m.status.view(m.width, m.focus.State(), m.opts.Path, m.Modified(), buf.Cursor(), buf.LineText(buf.Cursor().Row)),
		m.helpView(),
	)
	if !m.panelOpen {
		return base
	}
	return overlay.Composite(m.panel.view(*m.settings), base, overlay.Center, overlay.Center, 0, 0)
}

func (m Model) helpView() string {
	if m.panelOpen {
		return m.help.View(m.panel.keys)
	}
	return m.help.View(m.keys)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
