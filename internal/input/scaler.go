package input

import "github.com/vovakirdan/tui-shooter/internal/core"

// Scaler maps terminal cells to display pixels.
type Scaler struct {
	Cols, Rows    int
	Width, Height int
}

// Point returns the display pixel at the centre of cell (col, row).
// Cells outside the grid are clamped to the nearest edge.
func (s Scaler) Point(col, row int) core.Point {
	if s.Cols <= 0 || s.Rows <= 0 {
		return core.Point{}
	}
	col = core.Clamp(col, 0, s.Cols-1)
	row = core.Clamp(row, 0, s.Rows-1)
	return core.Pt(
		(2*col+1)*s.Width/(2*s.Cols),
		(2*row+1)*s.Height/(2*s.Rows),
	)
}

// Cell returns the terminal cell covering display pixel p.
func (s Scaler) Cell(p core.Point) (col, row int) {
	if s.Width <= 0 || s.Height <= 0 {
		return 0, 0
	}
	col = core.Clamp(p.X*s.Cols/s.Width, 0, s.Cols-1)
	row = core.Clamp(p.Y*s.Rows/s.Height, 0, s.Rows-1)
	return col, row
}
