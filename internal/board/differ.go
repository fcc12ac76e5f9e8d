package board

// CellUpdate is a single-cell terminal write: put Ch at column X, row Y.
type CellUpdate struct {
	X  int
	Y  int
	Ch rune
}

// HasResized reports whether the two frames differ in dimensions. When they
// do, Diff must not be called; the caller clears the screen and writes the
// current frame whole instead.
func HasResized(prev, cur Frame) bool {
	return prev.width != cur.width || prev.height != cur.height
}

// Diff compares two frames of equal dimensions cell by cell in row-major
// order and returns one update per changed cell. Applying the updates to
// prev, in any order, yields exactly cur. Panics when the dimensions
// differ; callers gate on HasResized first.
func Diff(prev, cur Frame) []CellUpdate {
	if HasResized(prev, cur) {
		panic("board: diff across frames of different dimensions")
	}

	var updates []CellUpdate
	for i, ch := range cur.cells {
		if prev.cells[i] != ch {
			updates = append(updates, CellUpdate{X: i % cur.width, Y: i / cur.width, Ch: ch})
		}
	}
	return updates
}
