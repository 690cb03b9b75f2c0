// Package graph turns a window of samples into a grid of filled cells.
//
// It knows nothing about terminals: callers get a Grid of booleans plus the
// numeric labels for the panel edges and decide how to draw them.
package graph

import "math"

// Grid is a rows x cols matrix of filled cells. Row 0 is the bottom row.
type Grid struct {
	rows    int
	cols    int
	heights []int
}

// Rows returns the grid height.
func (g Grid) Rows() int { return g.rows }

// Cols returns the grid width.
func (g Grid) Cols() int { return g.cols }

// ColumnHeight returns how many rows of column c are filled.
func (g Grid) ColumnHeight(c int) int {
	if c < 0 || c >= g.cols {
		return 0
	}
	return g.heights[c]
}

// Filled reports whether row r (counted from the bottom) of column c is set.
func (g Grid) Filled(r, c int) bool {
	if r < 0 || r >= g.rows {
		return false
	}
	return r < g.ColumnHeight(c)
}

// Cells expands the grid into [row][col] booleans, row 0 at the bottom.
func (g Grid) Cells() [][]bool {
	cells := make([][]bool, g.rows)
	for r := range cells {
		cells[r] = make([]bool, g.cols)
		for c := range cells[r] {
			cells[r][c] = r < g.heights[c]
		}
	}
	return cells
}

// Height returns the number of filled rows for one sample.
// A zero max or a zero sample fills nothing. MinToMax with a flat window
// (max == min) falls back to scaling from zero.
func Height(sample, minVal, maxVal float64, rows int, mode ScaleMode) int {
	if rows <= 0 || maxVal == 0 || sample == 0 {
		return 0
	}

	var ratio float64
	if mode == MinToMax && maxVal != minVal {
		ratio = (sample - minVal) / (maxVal - minVal)
	} else {
		ratio = sample / maxVal
	}

	h := math.Floor(ratio * float64(rows))
	switch {
	case math.IsNaN(h) || h < 0:
		return 0
	case h > float64(rows):
		return rows
	}
	return int(h)
}

// Render maps values (oldest first) onto a rows x cols grid with the newest
// sample in the rightmost column. Surplus columns on the left stay empty and
// surplus samples on the left are not drawn.
func Render(values []float64, minVal, maxVal float64, rows, cols int, mode ScaleMode) Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}

	g := Grid{rows: rows, cols: cols, heights: make([]int, cols)}
	for c, i := cols-1, len(values)-1; c >= 0 && i >= 0; c, i = c-1, i-1 {
		g.heights[c] = Height(values[i], minVal, maxVal, rows, mode)
	}
	return g
}

// Scale carries the bounds used to draw one panel.
type Scale struct {
	Mode ScaleMode
	Min  float64
	Max  float64
}

// Panel is a rendered grid with the values for its edge labels.
type Panel struct {
	Grid Grid
	// Max labels the full-height edge of the panel.
	Max float64
	// Baseline labels the empty edge: the window minimum for MinToMax, else 0.
	Baseline float64
}

// Draw renders values into a Panel using sc.
func Draw(values []float64, sc Scale, rows, cols int) Panel {
	p := Panel{
		Grid: Render(values, sc.Min, sc.Max, rows, cols, sc.Mode),
		Max:  sc.Max,
	}
	if sc.Mode == MinToMax {
		p.Baseline = sc.Min
	}
	return p
}
