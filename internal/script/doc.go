// Package script runs the user's init.lua against the focus mode settings.
//
// Scripts run in a sandboxed state with only the base, table, string and
// math libraries. A global table named focus exposes the settings:
//
//	focus.enable()
//	focus.set_opacity(35)
//	focus.set_speed(300)
//	if not focus.set_color("#333333") then focus.log("bad color") end
//
// All mutations go through the same validation as the settings panel.
package script
