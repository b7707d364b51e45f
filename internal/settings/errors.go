package settings

import "errors"

// Errors returned by settings operations.
var (
	// ErrInvalidJSON indicates the settings file is not a JSON object.
	ErrInvalidJSON = errors.New("settings file is not a JSON object")

	// ErrNoPath indicates the store has no file path.
	ErrNoPath = errors.New("settings path is empty")
)
