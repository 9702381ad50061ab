// Package utils converts between grapheme offsets, byte offsets and line positions.
package utils

import "github.com/rivo/uniseg"

// isLineBreak reports whether a grapheme cluster ends a line. uniseg keeps "\r\n" as one cluster.
func isLineBreak(cluster string) bool {
	return cluster == "\n" || cluster == "\r\n"
}

// GraphemeCount returns the number of user-perceived characters in s.
func GraphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// GraphemeToByteOffset converts a grapheme index to the byte offset where that cluster starts.
// Indices past the end map to len(s).
func GraphemeToByteOffset(s string, index int) int {
	if index <= 0 {
		return 0
	}
	gr := uniseg.NewGraphemes(s)
	current := 0
	for gr.Next() {
		if current == index {
			from, _ := gr.Positions()
			return from
		}
		current++
	}
	return len(s)
}

// Clamp limits a grapheme index to [0, GraphemeCount(s)].
func Clamp(s string, index int) int {
	if index < 0 {
		return 0
	}
	if n := GraphemeCount(s); index > n {
		return n
	}
	return index
}

// LineBounds returns the grapheme indices of the start and end of the line containing index.
// end points at the line break (or the end of s) and is exclusive.
func LineBounds(s string, index int) (start, end int) {
	gr := uniseg.NewGraphemes(s)
	current := 0
	end = -1
	for gr.Next() {
		if isLineBreak(gr.Str()) {
			if current < index {
				start = current + 1
			} else {
				end = current
				break
			}
		}
		current++
	}
	if end == -1 {
		end = current
	}
	return start, end
}

// LineCol returns the 0-based line and grapheme column of index within s.
func LineCol(s string, index int) (line, col int) {
	gr := uniseg.NewGraphemes(s)
	current := 0
	for gr.Next() && current < index {
		if isLineBreak(gr.Str()) {
			line++
			col = 0
		} else {
			col++
		}
		current++
	}
	return line, col
}
