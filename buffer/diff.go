package buffer

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/tilekit/style"
)

// CellUpdate is one cell the host must redraw
type CellUpdate struct {
	X    uint16
	Y    uint16
	Cell Cell
}

// Diff returns the updates needed to turn b into next.
// Both buffers are expected to cover the same area.
//
// Cells marked Skip are never emitted. A wide grapheme hides the cells after it,
// so those are not emitted either, while cells previously hidden by a wide
// grapheme are re-emitted even when unchanged.
func (b *Buffer) Diff(next *Buffer) []CellUpdate {
	var updates []CellUpdate
	invalidated, toSkip := 0, 0

	n := min(len(b.Content), len(next.Content))
	for i := 0; i < n; i++ {
		cur, prev := &next.Content[i], &b.Content[i]
		if !cur.Skip && (*cur != *prev || invalidated > 0) && toSkip == 0 {
			x, y := b.PosOf(i)
			updates = append(updates, CellUpdate{X: x, Y: y, Cell: *cur})
		}

		curWidth := cur.width()
		toSkip = max(curWidth-1, 0)
		affected := max(curWidth, prev.width())
		invalidated = max(max(affected, invalidated)-1, 0)
	}
	return updates
}

// Merge grows b to the union of both areas and copies other into it.
// Where the areas overlap, other wins.
func (b *Buffer) Merge(other *Buffer) {
	area := b.Area.Union(other.Area)
	old := b.Area

	b.Resize(area)
	b.Area = old

	// Relocate from the end so no cell is overwritten before it moves
	for i := int(old.Area()) - 1; i >= 0; i-- {
		x, y := b.PosOf(i)
		k := int(y-area.Y)*int(area.Cols) + int(x-area.X)
		if i != k {
			b.Content[k] = b.Content[i]
			b.Content[i] = NewCell()
		}
	}

	for i := range other.Content {
		x, y := other.PosOf(i)
		k := int(y-area.Y)*int(area.Cols) + int(x-area.X)
		b.Content[k] = other.Content[i]
	}
	b.Area = area
}

type styleKey struct {
	fg, bg style.Color
	mod    style.Modifier
}

// String renders a debug dump: area, one quoted line per row, then each
// position where the style changes
func (b *Buffer) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Buffer {\n    area: %v,\n    content: [\n", b.Area)

	type change struct {
		x, y int
		key  styleKey
	}
	var changes []change
	var last *styleKey

	cols := int(b.Area.Cols)
	for y := 0; cols > 0 && y*cols < len(b.Content); y++ {
		row := b.Content[y*cols : min((y+1)*cols, len(b.Content))]
		var hidden []string
		skip := 0

		sb.WriteString("        \"")
		for x := range row {
			c := &row[x]
			if skip == 0 {
				sb.WriteString(c.Symbol)
			} else {
				hidden = append(hidden, fmt.Sprintf("(%d, %q)", x, c.Symbol))
			}
			skip = max(max(skip, c.width())-1, 0)

			key := styleKey{fg: c.Fg, bg: c.Bg, mod: c.Modifier}
			if last == nil || *last != key {
				last = &key
				changes = append(changes, change{x: x, y: y, key: key})
			}
		}
		sb.WriteString("\",")
		if len(hidden) > 0 {
			fmt.Fprintf(&sb, " // hidden by multi-cols symbols: [%s]", strings.Join(hidden, ", "))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("    ],\n    styles: [\n")
	for _, c := range changes {
		fmt.Fprintf(&sb, "        x: %d, y: %d, fg: %v, bg: %v, modifier: %v,\n", c.x, c.y, c.key.fg, c.key.bg, c.key.mod)
	}
	sb.WriteString("    ]\n}")
	return sb.String()
}
