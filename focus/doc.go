// Package focus computes paragraph focus decorations for a line-oriented
// document.
//
// Locate finds the blank-line-delimited paragraph around a cursor offset and
// Paint turns the text outside that paragraph into dim decorations, limited to
// the ranges a host currently renders. Both are pure; Controller wraps them
// with the enabled/disabled lifecycle and caches the last result.
//
// Offsets are 0-based rune offsets into the document text, with '\n' counted
// as a single rune.
package focus
