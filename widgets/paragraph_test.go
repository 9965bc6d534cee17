package widgets

import (
	"strings"
	"testing"

	"github.com/lixenwraith/tilekit/buffer"
	"github.com/lixenwraith/tilekit/geom"
	"github.com/lixenwraith/tilekit/style"
	"github.com/lixenwraith/tilekit/text"
)

func renderParagraph(p Paragraph, rows, cols uint16) *buffer.Buffer {
	area := geom.New(rows, cols)
	buf := buffer.NewBuffer(area)
	p.Render(area, buf)
	return buf
}

func TestParagraphLines(t *testing.T) {
	buf := renderParagraph(ParagraphText("ab\ncd"), 3, 4)
	assertRows(t, buf, "ab  ", "cd  ", "    ")
}

func TestParagraphWideOverwrite(t *testing.T) {
	buf := buffer.WithLines("xxxx")
	ParagraphText("称a").Render(buf.Area, buf)
	assertRows(t, buf, "称 ax")
}

func TestParagraphAlignment(t *testing.T) {
	tests := []struct {
		name string
		p    Paragraph
		want string
	}{
		{"left", ParagraphText("ab"), "ab    "},
		{"center", ParagraphText("ab").WithAlignment(text.AlignCenter), "  ab  "},
		{"right", ParagraphText("ab").WithAlignment(text.AlignRight), "    ab"},
		{
			"line overrides paragraph",
			NewParagraph(text.RawLine("ab").WithAlignment(text.AlignRight)).WithAlignment(text.AlignCenter),
			"    ab",
		},
		{"too wide is left aligned and cut", ParagraphText("abcdefgh").WithAlignment(text.AlignRight), "abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertRows(t, renderParagraph(tt.p, 1, 6), tt.want)
		})
	}
}

func TestParagraphScroll(t *testing.T) {
	p := ParagraphText("a\nb\nc\nd").WithScroll(1)
	assertRows(t, renderParagraph(p, 2, 1), "b", "c")

	past := ParagraphText("a\nb").WithScroll(5)
	assertRows(t, renderParagraph(past, 2, 1), " ", " ")
}

func TestParagraphWrap(t *testing.T) {
	p := ParagraphText("hello world foo").WithWrap(true)
	assertRows(t, renderParagraph(p, 3, 11), "hello world", "foo        ", "           ")

	unwrapped := ParagraphText("hello world foo")
	assertRows(t, renderParagraph(unwrapped, 2, 11), "hello world", "           ")
}

func TestParagraphInBlock(t *testing.T) {
	p := ParagraphText("hi").WithBlock(Bordered().WithTitle("T"))
	assertRows(t, renderParagraph(p, 3, 6), "┌T───┐", "│hi  │", "└────┘")
}

func TestParagraphStyle(t *testing.T) {
	line := text.LineFrom(text.Styled("x", style.New().Fg(style.Red)), text.Raw("y"))
	p := NewParagraph(line).WithStyle(style.New().Bg(style.Black).Bold())
	buf := renderParagraph(p, 1, 3)

	x, y, blank := buf.Get(0, 0), buf.Get(1, 0), buf.Get(2, 0)
	if x.Fg != style.Red || x.Bg != style.Black || !x.Modifier.Contains(style.Bold) {
		t.Errorf("Expected span style over paragraph style, got fg %v bg %v mod %v", x.Fg, x.Bg, x.Modifier)
	}
	if y.Fg != style.Reset || y.Bg != style.Black {
		t.Errorf("Expected paragraph style on raw span, got fg %v bg %v", y.Fg, y.Bg)
	}
	if blank.Bg != style.Black {
		t.Errorf("Expected paragraph style on the whole area, got bg %v", blank.Bg)
	}
}

func TestWrapGraphemes(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  []string
	}{
		{"one two three", 7, []string{"one two", "three"}},
		{"aaaa bbbb", 6, []string{"aaaa", "bbbb"}},
		{"abcdefgh", 3, []string{"abc", "def", "gh"}},
		{"short", 10, []string{"short"}},
		{"", 4, []string{""}},
		{"a 称号", 2, []string{"a", "称", "号"}},
	}

	for _, tt := range tests {
		gs := text.RawLine(tt.in).StyledGraphemes(style.New())
		var got []string
		for _, row := range wrapGraphemes(gs, tt.width) {
			var sb strings.Builder
			for _, g := range row {
				sb.WriteString(g.Symbol)
			}
			got = append(got, sb.String())
		}
		if strings.Join(got, "|") != strings.Join(tt.want, "|") {
			t.Errorf("wrap(%q, %d): expected %q, got %q", tt.in, tt.width, tt.want, got)
		}
	}
}
