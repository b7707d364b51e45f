// Package grapheme measures text in user-perceived characters.
package grapheme

import "github.com/rivo/uniseg"

// Column converts a rune column in line to a grapheme column: the number of
// clusters that start before runeCol. A rune column inside a cluster maps to
// the column just past that cluster's start.
func Column(line string, runeCol int) int {
	if runeCol <= 0 || line == "" {
		return 0
	}
	g := uniseg.NewGraphemes(line)
	col, runes := 0, 0
	for g.Next() {
		if runes >= runeCol {
			break
		}
		col++
		runes += len(g.Runes())
	}
	return col
}
