// Package settings persists focus mode settings as a small JSON object and
// watches the file for external edits.
//
// Unknown keys already present in the file are preserved on save, so the
// file can be shared with other tools.
package settings
