// Package editor provides a Bubble Tea text editor component backed by the
// buffer package.
//
// The component owns input handling, soft wrapping, viewport scrolling and
// rendering. Hosts plug in a Decorator (focus.Controller in this module) that
// is asked for dim decorations whenever the document, the selection or the
// viewport changes.
package editor
