package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	lua "github.com/yuin/gopher-lua"

	"github.com/iw2rmb/focusmode/focus"
)

// DefaultTimeout bounds a single script run.
const DefaultTimeout = 2 * time.Second

// Engine is a sandboxed Lua state bound to a settings value.
//
// Engine is not safe for concurrent use.
type Engine struct {
	L        *lua.LState
	settings *focus.Settings
	log      logrus.FieldLogger
	timeout  time.Duration

	changed bool
	closed  bool
}

// Option configures an Engine.
type Option func(*Engine)

func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithTimeout bounds each run; zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d >= 0 {
			e.timeout = d
		}
	}
}

// New returns an engine operating on s.
func New(s *focus.Settings, opts ...Option) (*Engine, error) {
	if s == nil {
		return nil, ErrNoSettings
	}
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	e := &Engine{
		settings: s,
		log:      discard,
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.WithField("component", "script")

	e.L = lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(e.L)
	e.installSandbox()
	e.installFocusModule()
	return e, nil
}

// openSafeLibraries opens only the libraries scripts need. io, os, debug
// and package stay closed.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

func (e *Engine) installSandbox() {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		e.L.SetGlobal(name, lua.LNil)
	}
	// print goes to the log; the terminal belongs to the UI.
	e.L.SetGlobal("print", e.L.NewFunction(func(L *lua.LState) int {
		parts := make([]string, 0, L.GetTop())
		for i := 1; i <= L.GetTop(); i++ {
			parts = append(parts, L.ToStringMeta(L.Get(i)).String())
		}
		e.log.Info(strings.Join(parts, "\t"))
		return 0
	}))
}

// Changed reports whether any script mutated the settings.
func (e *Engine) Changed() bool { return e.changed }

// DoString runs code.
func (e *Engine) DoString(ctx context.Context, code string) error {
	return e.run(ctx, "<string>", func() error { return e.L.DoString(code) })
}

// DoFile runs the script at path.
func (e *Engine) DoFile(ctx context.Context, path string) error {
	return e.run(ctx, path, func() error { return e.L.DoFile(path) })
}

// RunFile runs the script at path if it exists. A missing file is not an
// error.
func (e *Engine) RunFile(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		e.log.WithField("path", path).Debug("no init script")
		return nil
	}
	return e.DoFile(ctx, path)
}

func (e *Engine) run(ctx context.Context, name string, fn func() error) (err error) {
	if e.closed {
		return ErrClosed
	}
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}
	e.L.SetContext(ctx)
	defer e.L.RemoveContext()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("script: %s: panic: %v", name, r)
		}
	}()

	if err := fn(); err != nil {
		return fmt.Errorf("script: %s: %w", name, err)
	}
	e.log.WithField("path", name).Debug("script finished")
	return nil
}

func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.closed = true
	e.L.Close()
}
