// Package buffer provides the cell grid widgets draw into.
//
// Widgets never talk to the terminal. Each render pass fills a Buffer, and the
// screen adapter copies the difference from the previous frame to the host.
// Coordinates are global: a Buffer whose area starts at (5, 2) is indexed with
// x in [5, 5+cols) and y in [2, 2+rows).
package buffer

import (
	"fmt"
	"slices"

	"github.com/rivo/uniseg"

	"github.com/lixenwraith/tilekit/geom"
	"github.com/lixenwraith/tilekit/style"
	"github.com/lixenwraith/tilekit/text"
)

// Buffer is a row-major grid of cells covering Area.
// len(Content) always equals Area.Area().
type Buffer struct {
	Area    geom.Geometry
	Content []Cell
}

// NewBuffer creates a buffer of blank cells
func NewBuffer(area geom.Geometry) *Buffer {
	return Filled(area, NewCell())
}

// Filled creates a buffer with every cell set to cell
func Filled(area geom.Geometry, cell Cell) *Buffer {
	content := make([]Cell, area.Area())
	for i := range content {
		content[i] = cell
	}
	return &Buffer{Area: area, Content: content}
}

// WithLines creates a buffer sized to fit the given unstyled lines
func WithLines(lines ...string) *Buffer {
	styled := make([]text.Line, len(lines))
	for i, l := range lines {
		styled[i] = text.RawLine(l)
	}
	return WithStyledLines(styled...)
}

// WithStyledLines creates a buffer as wide as the widest line, one row per line
func WithStyledLines(lines ...text.Line) *Buffer {
	cols := 0
	for _, l := range lines {
		cols = max(cols, l.Width())
	}
	b := NewBuffer(geom.New(uint16(len(lines)), uint16(cols)))
	for y, l := range lines {
		b.SetLine(0, uint16(y), l, uint16(cols))
	}
	return b
}

// Clone returns a deep copy that shares no cells with b
func (b *Buffer) Clone() *Buffer {
	return &Buffer{Area: b.Area, Content: slices.Clone(b.Content)}
}

// IndexOf converts global coordinates to an index into Content.
// Panics when (x, y) lies outside the buffer area.
func (b *Buffer) IndexOf(x, y uint16) int {
	if !b.Area.Contains(x, y) {
		panic(fmt.Sprintf("position outside the buffer: x=%d, y=%d, area=%v", x, y, b.Area))
	}
	i := int(y-b.Area.Y)*int(b.Area.Cols) + int(x-b.Area.X)
	if i >= len(b.Content) {
		panic(fmt.Sprintf("position beyond saturated buffer content: x=%d, y=%d, area=%v, len=%d", x, y, b.Area, len(b.Content)))
	}
	return i
}

// PosOf converts an index into Content to global coordinates.
// Panics when i is not a valid index.
func (b *Buffer) PosOf(i int) (x, y uint16) {
	if i < 0 || i >= len(b.Content) {
		panic(fmt.Sprintf("index outside the buffer: i=%d, len=%d, area=%v", i, len(b.Content), b.Area))
	}
	cols := int(b.Area.Cols)
	return b.Area.X + uint16(i%cols), b.Area.Y + uint16(i/cols)
}

// Get returns the cell at global coordinates, panicking outside the area
func (b *Buffer) Get(x, y uint16) *Cell {
	return &b.Content[b.IndexOf(x, y)]
}

// SetString writes s starting at (x, y), clipped at the right edge of the buffer
func (b *Buffer) SetString(x, y uint16, s string, st style.Style) {
	b.SetStringN(x, y, s, int(^uint(0)>>1), st)
}

// SetStringN writes at most cols columns of s starting at (x, y).
// Writing stops at the first grapheme cluster that does not fit entirely,
// so wide clusters are never split. Zero-width clusters are dropped.
// Returns the position following the last written cluster.
func (b *Buffer) SetStringN(x, y uint16, s string, cols int, st style.Style) (uint16, uint16) {
	index := b.IndexOf(x, y)
	offset := int(x)
	maxOffset := int(b.Area.Right())
	if cols < maxOffset-offset {
		maxOffset = offset + max(cols, 0)
	}

	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if w == 0 {
			continue
		}
		if w > maxOffset-offset {
			break
		}

		b.Content[index].SetSymbol(g.Str()).SetStyle(st)
		// Cells covered by a wide cluster would be hidden behind it
		for i := index + 1; i < index+w; i++ {
			b.Content[i].Reset()
		}
		index += w
		offset += w
	}
	return uint16(offset), y
}

// SetSpan writes one span within cols columns
func (b *Buffer) SetSpan(x, y uint16, span text.Span, cols uint16) (uint16, uint16) {
	return b.SetStringN(x, y, span.Content, int(cols), span.Style)
}

// SetLine writes spans left to right while the column budget lasts
func (b *Buffer) SetLine(x, y uint16, line text.Line, cols uint16) (uint16, uint16) {
	remaining := cols
	for _, span := range line.Spans {
		if remaining == 0 {
			break
		}
		nx, _ := b.SetStringN(x, y, span.Content, int(remaining), span.Style)
		w := nx - x
		x = nx
		if w > remaining {
			w = remaining
		}
		remaining -= w
	}
	return x, y
}

// SetStyle patches every cell of area, which must lie inside the buffer
func (b *Buffer) SetStyle(area geom.Geometry, st style.Style) {
	for y := area.Top(); y < area.Bottom(); y++ {
		for x := area.Left(); x < area.Right(); x++ {
			b.Get(x, y).SetStyle(st)
		}
	}
}

// Resize truncates or pads Content to match area, then adopts area.
// Existing cells keep their linear index; content is not reflowed to the new width.
func (b *Buffer) Resize(area geom.Geometry) {
	size := int(area.Area())
	if len(b.Content) > size {
		b.Content = b.Content[:size]
	} else {
		for len(b.Content) < size {
			b.Content = append(b.Content, NewCell())
		}
	}
	b.Area = area
}

// Reset blanks every cell
func (b *Buffer) Reset() {
	for i := range b.Content {
		b.Content[i].Reset()
	}
}
