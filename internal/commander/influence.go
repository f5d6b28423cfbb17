package commander

import "math"

// InfluenceGrid is a fixed-resolution scalar grid over world space. Two
// instances back the engine: a threat grid and a coverage grid. Both are
// cleared and rewritten wholesale once per analysis pass — never patched
// incrementally, so values cannot drift across ticks.
type InfluenceGrid struct {
	cols, rows int
	cellSize   float64
	values     []float32
}

// NewInfluenceGrid allocates a grid covering a worldW x worldH area (px).
// The backing array is allocated once and reused for the life of the grid.
func NewInfluenceGrid(worldW, worldH int, cellSize float64) *InfluenceGrid {
	cols := int(float64(worldW) / cellSize)
	rows := int(float64(worldH) / cellSize)
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &InfluenceGrid{
		cols:     cols,
		rows:     rows,
		cellSize: cellSize,
		values:   make([]float32, cols*rows),
	}
}

// Cols returns the grid width in cells.
func (g *InfluenceGrid) Cols() int { return g.cols }

// Rows returns the grid height in cells.
func (g *InfluenceGrid) Rows() int { return g.rows }

// CellSize returns the edge length of one cell in world px.
func (g *InfluenceGrid) CellSize() float64 { return g.cellSize }

// Clear zeroes every cell. Called at the start of each recompute pass.
func (g *InfluenceGrid) Clear() {
	for i := range g.values {
		g.values[i] = 0
	}
}

// cellOf returns the cell containing a world point. May be out of bounds;
// callers check. Floor division, so slightly negative coordinates index
// negatively instead of aliasing into column/row 0.
func (g *InfluenceGrid) cellOf(wx, wy float64) (col, row int) {
	return int(math.Floor(wx / g.cellSize)), int(math.Floor(wy / g.cellSize))
}

// CellCenter returns the world position of a cell's center.
func (g *InfluenceGrid) CellCenter(col, row int) (wx, wy float64) {
	return (float64(col) + 0.5) * g.cellSize, (float64(row) + 0.5) * g.cellSize
}

// Splat adds amount to every cell within radius cells (Chebyshev distance)
// of the cell containing (wx, wy), with linear falloff
// amount * max(0, 1 - dist/(radius+1)). Out-of-bounds cells are skipped.
func (g *InfluenceGrid) Splat(wx, wy float64, radius int, amount float64) {
	cc, cr := g.cellOf(wx, wy)
	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			col := cc + dc
			row := cr + dr
			if col < 0 || row < 0 || col >= g.cols || row >= g.rows {
				continue
			}
			dist := dc
			if dist < 0 {
				dist = -dist
			}
			if dr > dist {
				dist = dr
			} else if -dr > dist {
				dist = -dr
			}
			fall := 1.0 - float64(dist)/float64(radius+1)
			if fall <= 0 {
				continue
			}
			g.values[row*g.cols+col] += float32(amount * fall)
		}
	}
}

// At returns the value at (col, row), or 0 if out of bounds.
func (g *InfluenceGrid) At(col, row int) float64 {
	if col < 0 || row < 0 || col >= g.cols || row >= g.rows {
		return 0
	}
	return float64(g.values[row*g.cols+col])
}

// Sample returns the value of the cell containing a world point, or 0 when
// the point lies outside the grid. Out-of-bounds is a neutral result, not an
// error.
func (g *InfluenceGrid) Sample(wx, wy float64) float64 {
	col, row := g.cellOf(wx, wy)
	return g.At(col, row)
}

// Decay multiplies every cell by mul, flooring tiny values to zero so a
// decayed grid eventually reads fully clear.
func (g *InfluenceGrid) Decay(mul float64) {
	for i, v := range g.values {
		nv := v * float32(mul)
		if nv < 1e-4 {
			nv = 0
		}
		g.values[i] = nv
	}
}

// copyGrid copies src's cell values into dst. Both grids must share the same
// dimensions; the viewer uses this to snapshot the live grids on a throttle.
func copyGrid(dst, src *InfluenceGrid) {
	copy(dst.values, src.values)
}

// Total returns the sum over all cells. Used for coarse percentage readings.
func (g *InfluenceGrid) Total() float64 {
	var sum float64
	for _, v := range g.values {
		sum += float64(v)
	}
	return sum
}

// Max returns the largest cell value, or 0 for an empty grid.
func (g *InfluenceGrid) Max() float64 {
	var best float32
	for _, v := range g.values {
		if v > best {
			best = v
		}
	}
	return float64(best)
}
