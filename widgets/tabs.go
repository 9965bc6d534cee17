package widgets

import (
	"github.com/lixenwraith/tilekit/buffer"
	"github.com/lixenwraith/tilekit/geom"
	"github.com/lixenwraith/tilekit/style"
	"github.com/lixenwraith/tilekit/text"
	"github.com/lixenwraith/tilekit/widget"
)

var _ widget.Widget = Tabs{}

// Tabs renders a one-row strip of titles with the selected one highlighted
type Tabs struct {
	titles         []text.Line
	block          *Block
	selected       int
	style          style.Style
	highlightStyle style.Style
	divider        text.Span
	padLeft        text.Line
	padRight       text.Line
}

// NewTabs builds a tab strip from titles.
// Panics when titles is empty.
func NewTabs(titles ...text.Line) Tabs {
	if len(titles) == 0 {
		panic("tabs need at least one title")
	}
	return Tabs{
		titles:         titles,
		highlightStyle: style.New().Reversed(),
		divider:        text.Raw("│"),
		padLeft:        text.RawLine(" "),
		padRight:       text.RawLine(" "),
	}
}

// TabsOf builds an unstyled tab strip from strings
func TabsOf(titles ...string) Tabs {
	lines := make([]text.Line, len(titles))
	for i, s := range titles {
		lines[i] = text.LineFrom(text.Raw(s))
	}
	return NewTabs(lines...)
}

func (t Tabs) WithBlock(b Block) Tabs {
	t.block = &b
	return t
}

// WithSelected sets the highlighted tab; out of range highlights nothing
func (t Tabs) WithSelected(i int) Tabs {
	t.selected = i
	return t
}

func (t Tabs) WithStyle(s style.Style) Tabs {
	t.style = s
	return t
}

// WithHighlightStyle sets the style patched over the selected title
func (t Tabs) WithHighlightStyle(s style.Style) Tabs {
	t.highlightStyle = s
	return t
}

// WithDivider sets the span drawn between tabs
func (t Tabs) WithDivider(d text.Span) Tabs {
	t.divider = d
	return t
}

// WithPadding sets the text drawn on each side of every title
func (t Tabs) WithPadding(left, right string) Tabs {
	t.padLeft = text.RawLine(left)
	t.padRight = text.RawLine(right)
	return t
}

// Render draws titles left to right on the first row until the area runs out
func (t Tabs) Render(area geom.Geometry, buf *buffer.Buffer) {
	area = area.Intersection(buf.Area)
	if area.IsEmpty() {
		return
	}
	buf.SetStyle(area, t.style)

	inner := area
	if t.block != nil {
		t.block.Render(area, buf)
		inner = t.block.Inner(area)
	}
	if inner.IsEmpty() {
		return
	}

	x, y, right := inner.Left(), inner.Top(), inner.Right()
	for i, title := range t.titles {
		if x >= right {
			break
		}
		x, _ = buf.SetLine(x, y, t.padLeft, right-x)
		if x >= right {
			break
		}

		end, _ := buf.SetLine(x, y, title, right-x)
		if i == t.selected {
			buf.SetStyle(geom.Geometry{X: x, Y: y, Rows: 1, Cols: end - x}, t.highlightStyle)
		}
		x = end
		if x >= right {
			break
		}

		x, _ = buf.SetLine(x, y, t.padRight, right-x)
		if x >= right || i == len(t.titles)-1 {
			break
		}
		x, _ = buf.SetSpan(x, y, t.divider, right-x)
	}
}
