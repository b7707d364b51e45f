package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/iw2rmb/focusmode/focus"
)

func (e *Engine) installFocusModule() {
	mod := e.L.SetFuncs(e.L.NewTable(), map[string]lua.LGFunction{
		"toggle":      e.luaToggle,
		"enable":      e.luaEnable,
		"disable":     e.luaDisable,
		"enabled":     e.luaEnabled,
		"set_opacity": e.luaSetOpacity,
		"set_speed":   e.luaSetSpeed,
		"set_color":   e.luaSetColor,
		"settings":    e.luaSettings,
		"presets":     e.luaPresets,
		"log":         e.luaLog,
	})
	e.L.SetGlobal("focus", mod)
}

func (e *Engine) mutate(fn func(s *focus.Settings)) {
	before := *e.settings
	fn(e.settings)
	if *e.settings != before {
		e.changed = true
	}
}

func (e *Engine) luaToggle(L *lua.LState) int {
	e.mutate(func(s *focus.Settings) { s.Enabled = !s.Enabled })
	L.Push(lua.LBool(e.settings.Enabled))
	return 1
}

func (e *Engine) luaEnable(L *lua.LState) int {
	e.mutate(func(s *focus.Settings) { s.Enabled = true })
	return 0
}

func (e *Engine) luaDisable(L *lua.LState) int {
	e.mutate(func(s *focus.Settings) { s.Enabled = false })
	return 0
}

func (e *Engine) luaEnabled(L *lua.LState) int {
	L.Push(lua.LBool(e.settings.Enabled))
	return 1
}

// set_opacity(n) stores n clamped to 0..100 and returns the stored value.
func (e *Engine) luaSetOpacity(L *lua.LState) int {
	n := L.CheckInt(1)
	e.mutate(func(s *focus.Settings) { s.SetDimOpacity(n) })
	L.Push(lua.LNumber(e.settings.DimOpacity))
	return 1
}

// set_speed(ms) stores ms clamped to 0..1000 and returns the stored value.
func (e *Engine) luaSetSpeed(L *lua.LState) int {
	n := L.CheckInt(1)
	e.mutate(func(s *focus.Settings) { s.SetFadeSpeed(n) })
	L.Push(lua.LNumber(e.settings.FadeSpeed))
	return 1
}

// set_color(hex) returns false and keeps the old color for invalid input.
func (e *Engine) luaSetColor(L *lua.LState) int {
	c := L.CheckString(1)
	ok := false
	e.mutate(func(s *focus.Settings) { ok = s.SetDimColor(c) })
	L.Push(lua.LBool(ok))
	return 1
}

func (e *Engine) luaSettings(L *lua.LState) int {
	s := *e.settings
	t := L.NewTable()
	t.RawSetString("enabled", lua.LBool(s.Enabled))
	t.RawSetString("dimOpacity", lua.LNumber(s.DimOpacity))
	t.RawSetString("fadeSpeed", lua.LNumber(s.FadeSpeed))
	t.RawSetString("dimColor", lua.LString(s.DimColor))
	L.Push(t)
	return 1
}

func (e *Engine) luaPresets(L *lua.LState) int {
	t := L.NewTable()
	for _, p := range focus.Presets() {
		item := L.NewTable()
		item.RawSetString("name", lua.LString(p.Name))
		item.RawSetString("color", lua.LString(p.Color))
		t.Append(item)
	}
	L.Push(t)
	return 1
}

func (e *Engine) luaLog(L *lua.LState) int {
	e.log.Info(L.CheckString(1))
	return 0
}
