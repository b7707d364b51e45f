// Package buffer implements the pure document model behind the editor.
//
// Coordinates are 0-based (Row, Col) in runes. Offsets count runes from the
// start of the document, with each line break counted as one rune.
// Ranges are half-open selections in document coordinates: [Start, End).
package buffer
