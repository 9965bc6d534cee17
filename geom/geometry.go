// Package geom provides the rectangle model shared by layout and buffer.
//
// All edge arithmetic saturates at the 16-bit coordinate limit instead of
// wrapping, since buffer loops use the edges directly as bounds.
package geom

import (
	"fmt"
	"math"
)

// Margin is the space removed from each side of a Geometry by Inner
type Margin struct {
	Horizontal uint16
	Vertical   uint16
}

// NewMargin creates a margin with separate horizontal and vertical values
func NewMargin(horizontal, vertical uint16) Margin {
	return Margin{Horizontal: horizontal, Vertical: vertical}
}

// String renders the margin as HxV
func (m Margin) String() string {
	return fmt.Sprintf("%dx%d", m.Horizontal, m.Vertical)
}

// Geometry is an axis-aligned rectangle in cell coordinates
type Geometry struct {
	X    uint16
	Y    uint16
	Rows uint16
	Cols uint16
}

// New creates a Geometry anchored at the origin
func New(rows, cols uint16) Geometry {
	return Geometry{Rows: rows, Cols: cols}
}

// Fit returns an origin geometry of at most rows x cols whose Area does not
// saturate. Negative sizes become zero; rows are dropped first when the cell
// count would exceed math.MaxUint16.
func Fit(rows, cols int) Geometry {
	c := min(max(cols, 0), math.MaxUint16)
	r := min(max(rows, 0), math.MaxUint16)
	if c > 0 {
		r = min(r, math.MaxUint16/c)
	}
	return New(uint16(r), uint16(c))
}

// Area returns Rows*Cols, clamped to math.MaxUint16
func (g Geometry) Area() uint16 {
	return satMul(g.Rows, g.Cols)
}

// IsEmpty reports whether the rectangle covers no cells
func (g Geometry) IsEmpty() bool {
	return g.Rows == 0 || g.Cols == 0
}

// Left returns the first column inside the rectangle
func (g Geometry) Left() uint16 {
	return g.X
}

// Right returns the first column outside the rectangle
func (g Geometry) Right() uint16 {
	return satAdd(g.X, g.Cols)
}

// Top returns the first row inside the rectangle
func (g Geometry) Top() uint16 {
	return g.Y
}

// Bottom returns the first row outside the rectangle
func (g Geometry) Bottom() uint16 {
	return satAdd(g.Y, g.Rows)
}

// Inner shrinks the rectangle by margin on every side.
// A margin that does not fit on either axis yields the zero Geometry.
func (g Geometry) Inner(margin Margin) Geometry {
	dh := satMul(margin.Horizontal, 2)
	dv := satMul(margin.Vertical, 2)

	if g.Cols < dh || g.Rows < dv {
		return Geometry{}
	}
	return Geometry{
		X:    satAdd(g.X, margin.Horizontal),
		Y:    satAdd(g.Y, margin.Vertical),
		Cols: g.Cols - dh,
		Rows: g.Rows - dv,
	}
}

// Union returns the smallest rectangle containing both g and other
func (g Geometry) Union(other Geometry) Geometry {
	x1 := min(g.X, other.X)
	y1 := min(g.Y, other.Y)
	x2 := max(g.Right(), other.Right())
	y2 := max(g.Bottom(), other.Bottom())
	return Geometry{X: x1, Y: y1, Cols: x2 - x1, Rows: y2 - y1}
}

// Intersection returns the overlap of g and other.
// Disjoint rectangles produce an empty rectangle positioned at the overlap corner.
func (g Geometry) Intersection(other Geometry) Geometry {
	x1 := max(g.X, other.X)
	y1 := max(g.Y, other.Y)
	x2 := min(g.Right(), other.Right())
	y2 := min(g.Bottom(), other.Bottom())
	if x2 < x1 {
		x2 = x1
	}
	if y2 < y1 {
		y2 = y1
	}
	return Geometry{X: x1, Y: y1, Cols: x2 - x1, Rows: y2 - y1}
}

// Intersects reports whether the rectangles share at least one cell
func (g Geometry) Intersects(other Geometry) bool {
	return g.X < other.Right() && g.Right() > other.X &&
		g.Y < other.Bottom() && g.Bottom() > other.Y
}

// Contains reports whether the cell (x, y) lies inside the rectangle
func (g Geometry) Contains(x, y uint16) bool {
	return x >= g.Left() && x < g.Right() && y >= g.Top() && y < g.Bottom()
}

// String renders the geometry in a debug-friendly form
func (g Geometry) String() string {
	return fmt.Sprintf("Geometry{x: %d, y: %d, cols: %d, rows: %d}", g.X, g.Y, g.Cols, g.Rows)
}

func satAdd(a, b uint16) uint16 {
	if s := uint32(a) + uint32(b); s <= math.MaxUint16 {
		return uint16(s)
	}
	return math.MaxUint16
}

func satMul(a, b uint16) uint16 {
	if p := uint32(a) * uint32(b); p <= math.MaxUint16 {
		return uint16(p)
	}
	return math.MaxUint16
}
