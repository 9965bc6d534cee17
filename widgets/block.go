package widgets

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/lixenwraith/tilekit/buffer"
	"github.com/lixenwraith/tilekit/geom"
	"github.com/lixenwraith/tilekit/style"
	"github.com/lixenwraith/tilekit/text"
)

// Borders is a set of block sides
type Borders uint8

const (
	BorderTop Borders = 1 << iota
	BorderRight
	BorderBottom
	BorderLeft

	BordersNone Borders = 0
	BordersAll          = BorderTop | BorderRight | BorderBottom | BorderLeft
)

// Has reports whether any side of other is set
func (b Borders) Has(other Borders) bool {
	return b&other != 0
}

// BorderType selects the box drawing character set
type BorderType uint8

const (
	BorderPlain   BorderType = iota // ┌─┐│└┘
	BorderDouble                    // ╔═╗║╚╝
	BorderRounded                   // ╭─╮│╰╯
	BorderThick                     // ┏━┓┃┗┛
	BorderBlank                     // spaces, reserves the border cells
)

// borderSets holds box drawing characters indexed by BorderType
var borderSets = [...][6]string{
	BorderPlain:   {"┌", "─", "┐", "│", "└", "┘"},
	BorderDouble:  {"╔", "═", "╗", "║", "╚", "╝"},
	BorderRounded: {"╭", "─", "╮", "│", "╰", "╯"},
	BorderThick:   {"┏", "━", "┓", "┃", "┗", "┛"},
	BorderBlank:   {" ", " ", " ", " ", " ", " "},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// ParseBorderType accepts plain, double, rounded, thick or blank
func ParseBorderType(s string) (BorderType, bool) {
	switch s {
	case "plain", "single":
		return BorderPlain, true
	case "double":
		return BorderDouble, true
	case "rounded":
		return BorderRounded, true
	case "thick", "heavy":
		return BorderThick, true
	case "blank", "none":
		return BorderBlank, true
	}
	return BorderPlain, false
}

// Padding is the space between the border and the inner area
type Padding struct {
	Left, Right, Top, Bottom uint16
}

// UniformPadding pads every side by v
func UniformPadding(v uint16) Padding {
	return Padding{Left: v, Right: v, Top: v, Bottom: v}
}

// TitlePosition places the title on the top or bottom edge
type TitlePosition uint8

const (
	TitleTop TitlePosition = iota
	TitleBottom
)

// Block draws borders and a title around an area
type Block struct {
	title          text.Line
	titleStyle     style.Style
	titleAlignment text.Alignment
	titlePosition  TitlePosition

	borders     Borders
	borderType  BorderType
	borderStyle style.Style

	style   style.Style
	padding Padding
}

// NewBlock returns a block with no borders and no title
func NewBlock() Block {
	return Block{}
}

// Bordered returns a block with all borders of the plain type
func Bordered() Block {
	return NewBlock().WithBorders(BordersAll)
}

// WithTitle sets an unstyled title
func (b Block) WithTitle(title string) Block {
	return b.WithTitleLine(text.RawLine(title))
}

// WithTitleLine sets a styled title
func (b Block) WithTitleLine(title text.Line) Block {
	b.title = title.PatchStyle(style.New())
	return b
}

func (b Block) WithTitleStyle(s style.Style) Block {
	b.titleStyle = s
	return b
}

func (b Block) WithTitleAlignment(a text.Alignment) Block {
	b.titleAlignment = a
	return b
}

func (b Block) WithTitlePosition(p TitlePosition) Block {
	b.titlePosition = p
	return b
}

func (b Block) WithBorders(borders Borders) Block {
	b.borders = borders
	return b
}

func (b Block) WithBorderType(t BorderType) Block {
	if int(t) >= len(borderSets) {
		t = BorderPlain
	}
	b.borderType = t
	return b
}

func (b Block) WithBorderStyle(s style.Style) Block {
	b.borderStyle = s
	return b
}

// WithStyle sets the style patched over the whole block area
func (b Block) WithStyle(s style.Style) Block {
	b.style = s
	return b
}

func (b Block) WithPadding(p Padding) Block {
	b.padding = p
	return b
}

func (b Block) hasTitle() bool {
	return b.title.Width() > 0
}

// Inner returns the area left for content once borders, title row and padding are removed
func (b Block) Inner(area geom.Geometry) geom.Geometry {
	inner := area
	if b.borders.Has(BorderLeft) {
		inner.X = min(inner.X+1, inner.Right())
		inner.Cols = subSat(inner.Cols, 1)
	}
	if b.borders.Has(BorderTop) || (b.hasTitle() && b.titlePosition == TitleTop) {
		inner.Y = min(inner.Y+1, inner.Bottom())
		inner.Rows = subSat(inner.Rows, 1)
	}
	if b.borders.Has(BorderRight) {
		inner.Cols = subSat(inner.Cols, 1)
	}
	if b.borders.Has(BorderBottom) || (b.hasTitle() && b.titlePosition == TitleBottom) {
		inner.Rows = subSat(inner.Rows, 1)
	}

	inner.X = min(inner.X+b.padding.Left, inner.Right())
	inner.Y = min(inner.Y+b.padding.Top, inner.Bottom())
	inner.Cols = subSat(inner.Cols, b.padding.Left+b.padding.Right)
	inner.Rows = subSat(inner.Rows, b.padding.Top+b.padding.Bottom)
	return inner
}

// Render draws the block into area
func (b Block) Render(area geom.Geometry, buf *buffer.Buffer) {
	area = area.Intersection(buf.Area)
	if area.IsEmpty() {
		return
	}
	buf.SetStyle(area, b.style)
	b.renderBorders(area, buf)
	b.renderTitle(area, buf)
}

func (b Block) renderBorders(area geom.Geometry, buf *buffer.Buffer) {
	chars := borderSets[b.borderType]
	left, right := area.Left(), area.Right()-1
	top, bottom := area.Top(), area.Bottom()-1

	set := func(x, y uint16, sym string) {
		buf.Get(x, y).SetSymbol(sym).SetStyle(b.borderStyle)
	}

	if b.borders.Has(BorderLeft) {
		for y := top; y <= bottom; y++ {
			set(left, y, chars[boxV])
		}
	}
	if b.borders.Has(BorderTop) {
		for x := left; x <= right; x++ {
			set(x, top, chars[boxH])
		}
	}
	if b.borders.Has(BorderRight) {
		for y := top; y <= bottom; y++ {
			set(right, y, chars[boxV])
		}
	}
	if b.borders.Has(BorderBottom) {
		for x := left; x <= right; x++ {
			set(x, bottom, chars[boxH])
		}
	}

	// Corners
	if b.borders&(BorderRight|BorderBottom) == BorderRight|BorderBottom {
		set(right, bottom, chars[boxBR])
	}
	if b.borders&(BorderRight|BorderTop) == BorderRight|BorderTop {
		set(right, top, chars[boxTR])
	}
	if b.borders&(BorderLeft|BorderBottom) == BorderLeft|BorderBottom {
		set(left, bottom, chars[boxBL])
	}
	if b.borders&(BorderLeft|BorderTop) == BorderLeft|BorderTop {
		set(left, top, chars[boxTL])
	}
}

func (b Block) renderTitle(area geom.Geometry, buf *buffer.Buffer) {
	if !b.hasTitle() {
		return
	}

	start := area.Left()
	end := area.Right()
	if b.borders.Has(BorderLeft) {
		start++
	}
	if b.borders.Has(BorderRight) && end > start {
		end--
	}
	if end <= start {
		return
	}
	avail := int(end - start)

	title := truncateLine(b.title, avail)
	for i, span := range title.Spans {
		title.Spans[i].Style = b.titleStyle.Patch(span.Style)
	}
	w := min(title.Width(), avail)

	x := start
	switch b.titleAlignment {
	case text.AlignCenter:
		x = start + uint16((avail-w)/2)
	case text.AlignRight:
		x = end - uint16(w)
	}

	y := area.Top()
	if b.titlePosition == TitleBottom {
		y = area.Bottom() - 1
	}
	buf.SetLine(x, y, title, end-x)
}

// truncateLine cuts spans to fit width columns, marking the cut with an ellipsis
func truncateLine(l text.Line, width int) text.Line {
	if l.Width() <= width || width < 1 {
		return l.PatchStyle(style.New())
	}
	out := text.Line{Alignment: l.Alignment, Aligned: l.Aligned}
	remaining := width
	for _, span := range l.Spans {
		if w := span.Width(); w < remaining {
			out.Spans = append(out.Spans, span)
			remaining -= w
			continue
		}
		// This span reaches the edge with more text behind it
		span.Content = truncateWidth(span.Content, remaining-1) + "…"
		out.Spans = append(out.Spans, span)
		break
	}
	return out
}

// truncateWidth keeps whole grapheme clusters of s while they fit in width columns
func truncateWidth(s string, width int) string {
	var sb strings.Builder
	w := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		gw := g.Width()
		if w+gw > width {
			break
		}
		sb.WriteString(g.Str())
		w += gw
	}
	return sb.String()
}

func subSat(a, b uint16) uint16 {
	if b > a {
		return 0
	}
	return a - b
}
