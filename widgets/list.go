package widgets

import (
	"github.com/lixenwraith/tilekit/buffer"
	"github.com/lixenwraith/tilekit/geom"
	"github.com/lixenwraith/tilekit/style"
	"github.com/lixenwraith/tilekit/text"
	"github.com/lixenwraith/tilekit/widget"
)

var _ widget.StatefulWidget[*ListState] = List{}

// ListState tracks scroll position and selection between renders
type ListState struct {
	Offset   int // First visible item index
	Selected int // Selected item, -1 if none
}

// NewListState creates a state with nothing selected
func NewListState() *ListState {
	return &ListState{Selected: -1}
}

// Select sets the selection; negative clears it
func (s *ListState) Select(idx int) {
	s.Selected = max(idx, -1)
}

// Next moves the selection down, stopping at the last of total items
func (s *ListState) Next(total int) {
	if s.Selected < total-1 {
		s.Selected++
	}
}

// Prev moves the selection up, stopping at the first item
func (s *ListState) Prev() {
	if s.Selected > 0 {
		s.Selected--
	}
}

// ensureVisible clamps selection to total and scrolls so it fits in rows
func (s *ListState) ensureVisible(total, rows int) {
	if s.Selected >= total {
		s.Selected = total - 1
	}
	if s.Selected >= 0 {
		if s.Selected < s.Offset {
			s.Offset = s.Selected
		} else if s.Selected >= s.Offset+rows {
			s.Offset = s.Selected - rows + 1
		}
	}
	s.Offset = max(min(s.Offset, total-rows), 0)
}

// List renders one line per item with a highlighted selection
type List struct {
	items           []text.Line
	block           *Block
	style           style.Style
	highlightStyle  style.Style
	highlightSymbol string
}

// NewList builds a list from items
func NewList(items ...text.Line) List {
	return List{items: items}
}

// ListOf builds an unstyled list from strings
func ListOf(items ...string) List {
	lines := make([]text.Line, len(items))
	for i, s := range items {
		lines[i] = text.LineFrom(text.Raw(s))
	}
	return NewList(lines...)
}

func (l List) WithBlock(b Block) List {
	l.block = &b
	return l
}

func (l List) WithStyle(s style.Style) List {
	l.style = s
	return l
}

// WithHighlightStyle sets the style patched over the selected row
func (l List) WithHighlightStyle(s style.Style) List {
	l.highlightStyle = s
	return l
}

// WithHighlightSymbol sets the marker drawn before the selected item; other rows are indented by its width
func (l List) WithHighlightSymbol(sym string) List {
	l.highlightSymbol = sym
	return l
}

// Render draws visible items, scrolling state so the selection stays in view
func (l List) Render(area geom.Geometry, buf *buffer.Buffer, state *ListState) {
	area = area.Intersection(buf.Area)
	if area.IsEmpty() {
		return
	}
	buf.SetStyle(area, l.style)

	inner := area
	if l.block != nil {
		l.block.Render(area, buf)
		inner = l.block.Inner(area)
	}
	if inner.IsEmpty() {
		return
	}

	state.ensureVisible(len(l.items), int(inner.Rows))

	symW := uint16(min(displayWidth(l.highlightSymbol), int(inner.Cols)))
	for row := 0; row < int(inner.Rows); row++ {
		idx := state.Offset + row
		if idx >= len(l.items) {
			break
		}
		y := inner.Y + uint16(row)
		x := inner.X
		selected := idx == state.Selected

		if symW > 0 {
			if selected {
				buf.SetStringN(x, y, l.highlightSymbol, int(symW), style.New())
			}
			x += symW
		}
		buf.SetLine(x, y, l.items[idx], inner.Cols-symW)

		if selected {
			buf.SetStyle(geom.Geometry{X: inner.X, Y: y, Rows: 1, Cols: inner.Cols}, l.highlightStyle)
		}
	}
}
