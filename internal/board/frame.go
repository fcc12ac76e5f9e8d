package board

import "strings"

// Frame is one fully rendered board: a fixed-size character grid in
// row-major order, always exactly width*height cells. Frames are immutable
// once constructed; the zero Frame is the empty 0x0 grid.
type Frame struct {
	width  int
	height int
	cells  []rune
}

// NewFrame lays content out into a width x height grid. Lines longer than
// width are clipped, shorter ones padded with spaces, missing rows left
// blank. Content must be plain text, one rune per cell: no ANSI sequences,
// no tabs.
func NewFrame(width, height int, content string) Frame {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	cells := make([]rune, 0, width*height)
	lines := strings.Split(content, "\n")
	for y := 0; y < height; y++ {
		var line []rune
		if y < len(lines) {
			line = []rune(strings.TrimSuffix(lines[y], "\r"))
		}
		for x := 0; x < width; x++ {
			if x < len(line) {
				cells = append(cells, line[x])
			} else {
				cells = append(cells, ' ')
			}
		}
	}

	return Frame{width: width, height: height, cells: cells}
}

// Width returns the grid width in cells.
func (f Frame) Width() int { return f.width }

// Height returns the grid height in cells.
func (f Frame) Height() int { return f.height }

// At returns the rune at column x, row y.
func (f Frame) At(x, y int) rune {
	return f.cells[y*f.width+x]
}

// String reassembles the grid, rows joined by newlines.
func (f Frame) String() string {
	var b strings.Builder
	b.Grow(len(f.cells) + f.height)
	for y := 0; y < f.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(f.cells[y*f.width : (y+1)*f.width]))
	}
	return b.String()
}
