package terminal

// Mark is an optional cell position on the canvas
// The zero value is NoMark: nothing was drawn, nothing to erase
type Mark struct {
	X, Y  int
	Valid bool
}

// NoMark marks the absence of a previously drawn glyph
var NoMark = Mark{}

// At returns a valid mark at (x, y); coordinates may still fall outside a canvas
func At(x, y int) Mark {
	return Mark{X: x, Y: y, Valid: true}
}

// Canvas is the fixed logical grid mapped onto the top-left of the terminal
type Canvas struct {
	Width  int
	Height int
}

// Contains reports whether m is a valid mark inside [0,Width) x [0,Height)
func (c Canvas) Contains(m Mark) bool {
	if !m.Valid {
		return false
	}
	return m.X >= 0 && m.X < c.Width && m.Y >= 0 && m.Y < c.Height
}

// ParkCell is the off-canvas spot the cursor rests at between renders
func (c Canvas) ParkCell() Mark {
	return At(0, c.Height+1)
}

// NoticeCell is where one-line status text is written, below the park cell
func (c Canvas) NoticeCell() Mark {
	return At(0, c.Height+2)
}

// Rows returns the terminal rows needed for the canvas plus park and notice lines
func (c Canvas) Rows() int {
	return c.Height + 3
}
