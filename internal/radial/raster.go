package radial

// Grid is a layout sampled onto a character grid. Each cell holds the index
// of the slice under its center, or -1 outside the circle.
type Grid struct {
	Cols  int
	Rows  int
	cells []int
	geom  Geometry
}

// Rasterize samples slices onto a cols x rows grid spanning the square
// viewport [0, 2*Center]. Terminal cells are roughly twice as tall as they
// are wide, so callers usually pass cols = 2*rows to get a round menu.
func (g Geometry) Rasterize(slices []Slice, cols, rows int) Grid {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	grid := Grid{Cols: cols, Rows: rows, cells: make([]int, cols*rows), geom: g}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			idx, ok := g.HitTest(slices, grid.CellCenter(col, row))
			if !ok {
				idx = -1
			}
			grid.cells[row*cols+col] = idx
		}
	}
	return grid
}

// At returns the slice index for a cell, -1 when empty or out of range.
func (gr Grid) At(col, row int) int {
	if col < 0 || row < 0 || col >= gr.Cols || row >= gr.Rows {
		return -1
	}
	return gr.cells[row*gr.Cols+col]
}

// CellCenter maps a cell to the viewport point at its center.
func (gr Grid) CellCenter(col, row int) Point {
	size := 2 * gr.geom.Center
	return Point{
		X: (float64(col) + 0.5) * size / float64(gr.Cols),
		Y: (float64(row) + 0.5) * size / float64(gr.Rows),
	}
}

// Cell maps a viewport point to the cell containing it, clamped to the grid.
func (gr Grid) Cell(p Point) (col, row int) {
	if gr.Cols == 0 || gr.Rows == 0 {
		return 0, 0
	}
	size := 2 * gr.geom.Center
	col = clamp(int(p.X*float64(gr.Cols)/size), 0, gr.Cols-1)
	row = clamp(int(p.Y*float64(gr.Rows)/size), 0, gr.Rows-1)
	return col, row
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
