// Package viewmodel holds the plain data the TUI components render from,
// together with the pure cursor and scrolling arithmetic behind them.
package viewmodel

// Position addresses a row inside a sectioned list.
type Position struct {
	Section int
	Row     int
}

// SectionedListView is everything needed to draw one sectioned list.
type SectionedListView struct {
	Title       string
	SearchQuery string
	Sections    []SectionView
	Cursor      Position
	Total       int
	Shown       int
	Searching   bool
	AddEnabled  bool
}

// SectionView is one titled group of rendered rows.
type SectionView struct {
	Label string
	Rows  []string
}

// IsEmpty reports whether no rows are shown.
func (v SectionedListView) IsEmpty() bool {
	return v.Shown == 0
}

// IsFiltered reports whether a search hides part of the items.
func (v SectionedListView) IsFiltered() bool {
	return v.Shown != v.Total
}

// ClampCursor moves pos onto the nearest existing row. counts holds the row
// count of every section. Empty sections are skipped.
func ClampCursor(counts []int, pos Position) Position {
	total := sum(counts)
	if total == 0 {
		return Position{}
	}
	index := Flatten(counts, pos)
	return Unflatten(counts, min(max(index, 0), total-1))
}

// MoveCursor moves pos by delta rows across section boundaries, stopping at
// the first and last rows.
func MoveCursor(counts []int, pos Position, delta int) Position {
	total := sum(counts)
	if total == 0 {
		return Position{}
	}
	index := Flatten(counts, ClampCursor(counts, pos)) + delta
	return Unflatten(counts, min(max(index, 0), total-1))
}

// Flatten converts pos into a zero-based index over all rows. Positions past
// the end map past the last row.
func Flatten(counts []int, pos Position) int {
	if pos.Section < 0 {
		return 0
	}
	index := 0
	for s := 0; s < len(counts) && s < pos.Section; s++ {
		index += counts[s]
	}
	if pos.Section >= len(counts) {
		return index
	}
	return index + min(max(pos.Row, 0), counts[pos.Section]-1)
}

// Unflatten converts a row index back into a position.
func Unflatten(counts []int, index int) Position {
	for s, n := range counts {
		if index < n {
			return Position{Section: s, Row: index}
		}
		index -= n
	}
	return Position{}
}

// LineOf returns the display line of pos when every section is drawn as one
// header line followed by its rows.
func LineOf(counts []int, pos Position) int {
	line := 0
	for s := 0; s < len(counts) && s < pos.Section; s++ {
		line += 1 + counts[s]
	}
	return line + 1 + pos.Row
}

// LineCount returns the number of display lines of all sections.
func LineCount(counts []int) int {
	return len(counts) + sum(counts)
}

// ScrollOffset returns the first visible line so that line stays within a
// window of height lines, moving offset as little as possible.
func ScrollOffset(offset, line, height, lines int) int {
	if height <= 0 {
		return 0
	}
	if line < offset {
		offset = line
	}
	if line >= offset+height {
		offset = line - height + 1
	}
	return min(max(offset, 0), max(lines-height, 0))
}

// ScrollTo returns the offset that shows the row at pos. The header of its
// section is kept visible when pos is the first row.
func ScrollTo(offset int, counts []int, pos Position, height int) int {
	line := LineOf(counts, pos)
	lines := LineCount(counts)
	if pos.Row == 0 && height > 1 {
		offset = ScrollOffset(offset, line-1, height, lines)
	}
	return ScrollOffset(offset, line, height, lines)
}

func sum(counts []int) int {
	total := 0
	for _, n := range counts {
		total += n
	}
	return total
}
