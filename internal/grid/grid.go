package grid

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGrid is returned by Validate for grids without rows or with a
// non-positive row height.
var ErrInvalidGrid = errors.New("grid: rows and row height must be positive")

// edgeEpsilon absorbs float noise when checking whether an edge lies on a row.
const edgeEpsilon = 1e-6

// Grid is a fixed stack of equally tall rows. Offsets are measured from the
// top of the first row.
type Grid struct {
	Rows      int
	RowHeight float64
}

// New returns a grid of rows rows, each rowHeight tall.
func New(rows int, rowHeight float64) Grid {
	return Grid{Rows: rows, RowHeight: rowHeight}
}

// Validate reports whether the grid can be used for snapping.
func (g Grid) Validate() error {
	if g.Rows <= 0 || g.RowHeight <= 0 || math.IsNaN(g.RowHeight) || math.IsInf(g.RowHeight, 0) {
		return fmt.Errorf("%w (rows=%d, row height=%v)", ErrInvalidGrid, g.Rows, g.RowHeight)
	}
	return nil
}

// Height is the total content height covered by the rows.
func (g Grid) Height() float64 {
	return float64(g.Rows) * g.RowHeight
}

// Boundaries returns the Rows+1 row edges 0, RowHeight, ..., Rows*RowHeight.
func (g Grid) Boundaries() []float64 {
	if g.Rows < 0 {
		return nil
	}
	out := make([]float64, g.Rows+1)
	for i := range out {
		out[i] = float64(i) * g.RowHeight
	}
	return out
}

// HalfRowPoints returns the 2*Rows+1 offsets spaced by half a row, from 0 to
// Height() inclusive. They are the candidate centres for a dragged block:
// a block whose height is an even number of half rows has its centre on a
// boundary, an odd one between two.
func (g Grid) HalfRowPoints() []float64 {
	if g.Rows < 0 {
		return nil
	}
	half := g.RowHeight / 2
	out := make([]float64, 2*g.Rows+1)
	for i := range out {
		out[i] = float64(i) * half
	}
	return out
}

// NearestBoundary returns the row edge closest to value. Ties go to the
// lower edge.
func (g Grid) NearestBoundary(value float64) float64 {
	b, ok := nearest(g.Boundaries(), value, nil)
	if !ok {
		return 0
	}
	return b
}

// NearestBoundaryWithinRange returns the row edge closest to value among the
// edges inside [lo, hi]. It reports false when no edge lies in the range.
func (g Grid) NearestBoundaryWithinRange(value, lo, hi float64) (float64, bool) {
	return nearest(g.Boundaries(), value, func(b float64) bool {
		return b >= lo && b <= hi
	})
}

// NearestHalfRow returns the half-row point closest to value, ties going to
// the lower point.
func (g Grid) NearestHalfRow(value float64) float64 {
	p, ok := nearest(g.HalfRowPoints(), value, nil)
	if !ok {
		return 0
	}
	return p
}

// NearestCenter picks the centre for a block of the given height closest to
// y such that the block's top edge sits on a row boundary and the whole block
// stays within [top, bottom]. Candidates are the half-row points. It reports
// false when no candidate fits, e.g. when the block is taller than the range.
func (g Grid) NearestCenter(y, height, top, bottom float64) (float64, bool) {
	half := height / 2
	return nearest(g.HalfRowPoints(), y, func(c float64) bool {
		return c >= top+half && c <= bottom-half && g.OnBoundary(c-half)
	})
}

// OnBoundary reports whether offset coincides with a row edge.
func (g Grid) OnBoundary(offset float64) bool {
	if g.RowHeight <= 0 {
		return false
	}
	r := math.Mod(offset, g.RowHeight)
	if r < 0 {
		r += g.RowHeight
	}
	return r < edgeEpsilon || g.RowHeight-r < edgeEpsilon
}

// RoundHeight rounds h to the nearest whole number of rows, ties rounding up.
func (g Grid) RoundHeight(h float64) float64 {
	if g.RowHeight <= 0 {
		return h
	}
	return g.RowHeight * math.Floor(h/g.RowHeight+0.5)
}

// CeilHeight rounds h up to a whole number of rows.
func (g Grid) CeilHeight(h float64) float64 {
	if g.RowHeight <= 0 {
		return h
	}
	return g.RowHeight * math.Ceil(h/g.RowHeight-edgeEpsilon)
}

// RowAt returns the index of the row containing offset, clamped to the grid.
func (g Grid) RowAt(offset float64) int {
	if g.RowHeight <= 0 || g.Rows <= 0 {
		return 0
	}
	row := int(math.Floor(offset / g.RowHeight))
	if row < 0 {
		return 0
	}
	if row >= g.Rows {
		return g.Rows - 1
	}
	return row
}

// nearest scans points in order and keeps the first one with the smallest
// distance to v, which is what a stable sort by |p-v| followed by taking the
// head would return.
func nearest(points []float64, v float64, keep func(float64) bool) (float64, bool) {
	best, bestDist, found := 0.0, math.Inf(1), false
	for _, p := range points {
		if keep != nil && !keep(p) {
			continue
		}
		if d := math.Abs(p - v); d < bestDist {
			best, bestDist, found = p, d, true
		}
	}
	return best, found
}
