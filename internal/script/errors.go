package script

import "errors"

var (
	// ErrClosed indicates the engine was already closed.
	ErrClosed = errors.New("script engine closed")

	// ErrNoSettings indicates the engine has no settings to operate on.
	ErrNoSettings = errors.New("script engine has no settings")
)
