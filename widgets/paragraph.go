package widgets

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/lixenwraith/tilekit/buffer"
	"github.com/lixenwraith/tilekit/geom"
	"github.com/lixenwraith/tilekit/style"
	"github.com/lixenwraith/tilekit/text"
)

// Paragraph renders lines of styled text, optionally wrapped inside a block
type Paragraph struct {
	lines     []text.Line
	block     *Block
	style     style.Style
	alignment text.Alignment
	scroll    uint16
	wrap      bool
}

// NewParagraph builds a paragraph from lines
func NewParagraph(lines ...text.Line) Paragraph {
	return Paragraph{lines: lines}
}

// ParagraphText builds an unstyled paragraph, one line per newline-separated part of s
func ParagraphText(s string) Paragraph {
	parts := strings.Split(s, "\n")
	lines := make([]text.Line, len(parts))
	for i, p := range parts {
		lines[i] = text.LineFrom(text.Raw(p))
	}
	return NewParagraph(lines...)
}

// WithBlock wraps the paragraph in b; text renders inside b.Inner
func (p Paragraph) WithBlock(b Block) Paragraph {
	p.block = &b
	return p
}

// WithStyle sets the base style under every span
func (p Paragraph) WithStyle(s style.Style) Paragraph {
	p.style = s
	return p
}

// WithAlignment sets the alignment of lines that carry none of their own
func (p Paragraph) WithAlignment(a text.Alignment) Paragraph {
	p.alignment = a
	return p
}

// WithScroll skips the first rows of composed text
func (p Paragraph) WithScroll(rows uint16) Paragraph {
	p.scroll = rows
	return p
}

// WithWrap enables word wrapping at the inner width
func (p Paragraph) WithWrap(wrap bool) Paragraph {
	p.wrap = wrap
	return p
}

// composedLine is one output row before placement
type composedLine struct {
	graphemes []text.StyledGrapheme
	alignment text.Alignment
}

// Render draws the paragraph into area
func (p Paragraph) Render(area geom.Geometry, buf *buffer.Buffer) {
	area = area.Intersection(buf.Area)
	if area.IsEmpty() {
		return
	}
	buf.SetStyle(area, p.style)

	textArea := area
	if p.block != nil {
		p.block.Render(area, buf)
		textArea = p.block.Inner(area)
	}
	if textArea.IsEmpty() {
		return
	}

	cols := int(textArea.Cols)
	row := 0
	for _, cl := range p.compose(cols) {
		if row < int(p.scroll) {
			row++
			continue
		}
		y := row - int(p.scroll)
		if y >= int(textArea.Rows) {
			break
		}
		row++

		x := lineOffset(graphemesWidth(cl.graphemes), cols, cl.alignment)
		for _, g := range cl.graphemes {
			w := displayWidth(g.Symbol)
			if x+w > cols {
				break
			}
			buf.SetStringN(textArea.X+uint16(x), textArea.Y+uint16(y), g.Symbol, w, g.Style)
			x += w
		}
	}
}

// compose resolves styles and alignment and applies wrapping
func (p Paragraph) compose(cols int) []composedLine {
	var out []composedLine
	for _, l := range p.lines {
		align := p.alignment
		if l.Aligned {
			align = l.Alignment
		}
		gs := l.StyledGraphemes(p.style)
		if !p.wrap {
			out = append(out, composedLine{graphemes: gs, alignment: align})
			continue
		}
		for _, wrapped := range wrapGraphemes(gs, cols) {
			out = append(out, composedLine{graphemes: wrapped, alignment: align})
		}
	}
	return out
}

// lineOffset returns the column where a line of width w starts
func lineOffset(w, cols int, a text.Alignment) int {
	if w >= cols {
		return 0
	}
	switch a {
	case text.AlignCenter:
		return cols/2 - w/2
	case text.AlignRight:
		return cols - w
	}
	return 0
}

func graphemesWidth(gs []text.StyledGrapheme) int {
	w := 0
	for _, g := range gs {
		w += displayWidth(g.Symbol)
	}
	return w
}

func displayWidth(s string) int {
	return uniseg.StringWidth(s)
}

// wrapGraphemes breaks gs into rows of at most width columns, preferring the
// last space. The space a row breaks on is dropped. A grapheme wider than
// width gets a row of its own.
func wrapGraphemes(gs []text.StyledGrapheme, width int) [][]text.StyledGrapheme {
	if width <= 0 {
		return [][]text.StyledGrapheme{gs}
	}

	var rows [][]text.StyledGrapheme
	start, lastSpace, w := 0, -1, 0
	for i := 0; i < len(gs); i++ {
		gw := displayWidth(gs[i].Symbol)
		if w+gw > width && i > start {
			wrapAt := i
			if gs[i].Symbol != " " && lastSpace > start {
				wrapAt = lastSpace
			}
			rows = append(rows, gs[start:wrapAt])
			start = wrapAt
			if gs[start].Symbol == " " {
				start++
			}
			lastSpace = -1
			if start > i {
				w = 0
				continue
			}
			w = graphemesWidth(gs[start:i])
		}
		if gs[i].Symbol == " " {
			lastSpace = i
		}
		w += gw
	}
	if start < len(gs) || len(rows) == 0 {
		rows = append(rows, gs[start:])
	}
	return rows
}
