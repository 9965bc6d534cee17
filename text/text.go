// Package text holds styled spans and lines written into buffers.
package text

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/lixenwraith/tilekit/style"
)

// Alignment is the horizontal placement of a line within its area
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// String returns the alignment name
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	}
	return "Left"
}

// StyledGrapheme is one grapheme cluster with its resolved style
type StyledGrapheme struct {
	Symbol string
	Style  style.Style
}

// Span is a run of text sharing one style
type Span struct {
	Content string
	Style   style.Style
}

// Raw creates an unstyled span
func Raw(content string) Span {
	return Span{Content: content}
}

// Styled creates a span with style
func Styled(content string, s style.Style) Span {
	return Span{Content: content, Style: s}
}

// Width returns the display width of the span in columns
func (s Span) Width() int {
	return uniseg.StringWidth(s.Content)
}

// PatchStyle returns the span with its style patched by p
func (s Span) PatchStyle(p style.Style) Span {
	s.Style = s.Style.Patch(p)
	return s
}

// StyledGraphemes splits the span into grapheme clusters styled base.Patch(span style).
// Zero-width clusters are dropped.
func (s Span) StyledGraphemes(base style.Style) []StyledGrapheme {
	st := base.Patch(s.Style)
	var out []StyledGrapheme
	g := uniseg.NewGraphemes(s.Content)
	for g.Next() {
		if g.Width() == 0 {
			continue
		}
		out = append(out, StyledGrapheme{Symbol: g.Str(), Style: st})
	}
	return out
}

// Line is a sequence of spans rendered on one row
type Line struct {
	Spans     []Span
	Alignment Alignment
	// Aligned is false when the line defers alignment to its container
	Aligned bool
}

// LineFrom builds a line from spans
func LineFrom(spans ...Span) Line {
	return Line{Spans: spans}
}

// RawLine builds an unstyled line, one span per input line of content
func RawLine(content string) Line {
	var spans []Span
	for _, l := range strings.Split(content, "\n") {
		spans = append(spans, Raw(l))
	}
	return Line{Spans: spans}
}

// StyledLine builds a single-span line with style
func StyledLine(content string, s style.Style) Line {
	return LineFrom(Styled(content, s))
}

// WithAlignment returns the line with an explicit alignment
func (l Line) WithAlignment(a Alignment) Line {
	l.Alignment = a
	l.Aligned = true
	return l
}

// Width returns the display width of all spans
func (l Line) Width() int {
	w := 0
	for _, s := range l.Spans {
		w += s.Width()
	}
	return w
}

// PatchStyle returns a copy with every span patched by p
func (l Line) PatchStyle(p style.Style) Line {
	spans := make([]Span, len(l.Spans))
	for i, s := range l.Spans {
		spans[i] = s.PatchStyle(p)
	}
	l.Spans = spans
	return l
}

// ResetStyle returns a copy with every span reset
func (l Line) ResetStyle() Line {
	return l.PatchStyle(style.ResetStyle())
}

// StyledGraphemes flattens all spans into styled grapheme clusters
func (l Line) StyledGraphemes(base style.Style) []StyledGrapheme {
	var out []StyledGrapheme
	for _, s := range l.Spans {
		out = append(out, s.StyledGraphemes(base)...)
	}
	return out
}

// String returns the concatenated span content
func (l Line) String() string {
	var sb strings.Builder
	for _, s := range l.Spans {
		sb.WriteString(s.Content)
	}
	return sb.String()
}
