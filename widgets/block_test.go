package widgets

import (
	"strings"
	"testing"

	"github.com/lixenwraith/tilekit/buffer"
	"github.com/lixenwraith/tilekit/geom"
	"github.com/lixenwraith/tilekit/style"
	"github.com/lixenwraith/tilekit/text"
)

// rows flattens buffer symbols into one string per row
func rows(buf *buffer.Buffer) []string {
	out := make([]string, 0, buf.Area.Rows)
	for y := buf.Area.Top(); y < buf.Area.Bottom(); y++ {
		var sb strings.Builder
		for x := buf.Area.Left(); x < buf.Area.Right(); x++ {
			sb.WriteString(buf.Get(x, y).Symbol)
		}
		out = append(out, sb.String())
	}
	return out
}

func assertRows(t *testing.T, buf *buffer.Buffer, want ...string) {
	t.Helper()
	got := rows(buf)
	if len(got) != len(want) {
		t.Fatalf("Expected %d rows, got %d: %q", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func renderBlock(b Block, rows, cols uint16) *buffer.Buffer {
	area := geom.New(rows, cols)
	buf := buffer.NewBuffer(area)
	b.Render(area, buf)
	return buf
}

func TestBlockInner(t *testing.T) {
	area := geom.Geometry{X: 0, Y: 0, Rows: 5, Cols: 10}

	tests := []struct {
		name  string
		block Block
		want  geom.Geometry
	}{
		{"no borders", NewBlock(), area},
		{"all borders", Bordered(), geom.Geometry{X: 1, Y: 1, Rows: 3, Cols: 8}},
		{"left only", NewBlock().WithBorders(BorderLeft), geom.Geometry{X: 1, Y: 0, Rows: 5, Cols: 9}},
		{"right and bottom", NewBlock().WithBorders(BorderRight | BorderBottom), geom.Geometry{X: 0, Y: 0, Rows: 4, Cols: 9}},
		{"title only", NewBlock().WithTitle("t"), geom.Geometry{X: 0, Y: 1, Rows: 4, Cols: 10}},
		{"bottom title", NewBlock().WithTitle("t").WithTitlePosition(TitleBottom), geom.Geometry{X: 0, Y: 0, Rows: 4, Cols: 10}},
		{"borders and padding", Bordered().WithPadding(UniformPadding(1)), geom.Geometry{X: 2, Y: 2, Rows: 1, Cols: 6}},
		{"padding wider than area", NewBlock().WithPadding(Padding{Left: 8, Right: 8}), geom.Geometry{X: 8, Y: 0, Rows: 5, Cols: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.block.Inner(area); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestBlockInnerTinyArea(t *testing.T) {
	got := Bordered().Inner(geom.New(1, 1))
	if got.Rows != 0 || got.Cols != 0 {
		t.Errorf("Expected empty inner area, got %v", got)
	}
	if got.X > 1 || got.Y > 1 {
		t.Errorf("Expected inner origin inside the outer edge, got %v", got)
	}
}

func TestBlockBorders(t *testing.T) {
	tests := []struct {
		name  string
		block Block
		want  []string
	}{
		{
			"plain",
			Bordered(),
			[]string{"┌────┐", "│    │", "└────┘"},
		},
		{
			"rounded",
			Bordered().WithBorderType(BorderRounded),
			[]string{"╭────╮", "│    │", "╰────╯"},
		},
		{
			"double",
			Bordered().WithBorderType(BorderDouble),
			[]string{"╔════╗", "║    ║", "╚════╝"},
		},
		{
			"thick",
			Bordered().WithBorderType(BorderThick),
			[]string{"┏━━━━┓", "┃    ┃", "┗━━━━┛"},
		},
		{
			"top and left without corners elsewhere",
			NewBlock().WithBorders(BorderTop | BorderLeft),
			[]string{"┌─────", "│     ", "│     "},
		},
		{
			"bottom only",
			NewBlock().WithBorders(BorderBottom),
			[]string{"      ", "      ", "──────"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertRows(t, renderBlock(tt.block, 3, 6), tt.want...)
		})
	}
}

func TestBlockTitleAlignment(t *testing.T) {
	tests := []struct {
		name  string
		align text.Alignment
		want  string
	}{
		{"left", text.AlignLeft, "┌ab────┐"},
		{"center", text.AlignCenter, "┌──ab──┐"},
		{"right", text.AlignRight, "┌────ab┐"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := renderBlock(Bordered().WithTitle("ab").WithTitleAlignment(tt.align), 2, 8)
			if got := rows(buf)[0]; got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestBlockTitleTruncated(t *testing.T) {
	buf := renderBlock(Bordered().WithTitle("abcdefgh"), 3, 6)
	assertRows(t, buf, "┌abc…┐", "│    │", "└────┘")
}

func TestBlockTitleTruncatedWide(t *testing.T) {
	buf := renderBlock(Bordered().WithTitle("🇯🇵🇯🇵x"), 3, 6)
	assertRows(t, buf, "┌🇯🇵 …─┐", "│    │", "└────┘")
}

func TestTruncateWidth(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"abc", 2, "ab"},
		{"abc", 5, "abc"},
		{"称号", 3, "称"},
		{"🇯🇵x", 1, ""},
		{"🇯🇵x", 2, "🇯🇵"},
		{"e\u0301x", 1, "e\u0301"},
		{"abc", 0, ""},
	}

	for _, tt := range tests {
		if got := truncateWidth(tt.in, tt.width); got != tt.want {
			t.Errorf("truncateWidth(%q, %d): expected %q, got %q", tt.in, tt.width, tt.want, got)
		}
	}
}

func TestBlockTitleBottom(t *testing.T) {
	buf := renderBlock(NewBlock().WithTitle("x").WithTitlePosition(TitleBottom), 2, 4)
	assertRows(t, buf, "    ", "x   ")
}

func TestBlockStyles(t *testing.T) {
	b := Bordered().
		WithStyle(style.New().Bg(style.Blue)).
		WithBorderStyle(style.New().Fg(style.Yellow)).
		WithTitleStyle(style.New().Fg(style.Green).Bold()).
		WithTitleLine(text.LineFrom(text.Styled("T", style.New().Fg(style.Red))))
	buf := renderBlock(b, 3, 5)

	corner := buf.Get(0, 0)
	if corner.Fg != style.Yellow || corner.Bg != style.Blue {
		t.Errorf("Expected border fg Yellow on Blue, got fg %v bg %v", corner.Fg, corner.Bg)
	}

	inside := buf.Get(2, 1)
	if inside.Bg != style.Blue || inside.Fg != style.Reset {
		t.Errorf("Expected block style on inner cells, got fg %v bg %v", inside.Fg, inside.Bg)
	}

	title := buf.Get(1, 0)
	if title.Symbol != "T" {
		t.Fatalf("Expected title at column 1, got %q", title.Symbol)
	}
	if title.Fg != style.Red {
		t.Errorf("Expected span color to win over title style, got %v", title.Fg)
	}
	if !title.Modifier.Contains(style.Bold) {
		t.Errorf("Expected title style modifiers applied, got %v", title.Modifier)
	}
}

func TestBlockRenderClipped(t *testing.T) {
	buf := buffer.NewBuffer(geom.New(2, 3))
	Bordered().Render(geom.Geometry{X: 1, Y: 0, Rows: 5, Cols: 5}, buf)
	assertRows(t, buf, " ┌┐", " └┘")
}

func TestParseBorderType(t *testing.T) {
	tests := []struct {
		in   string
		want BorderType
		ok   bool
	}{
		{"plain", BorderPlain, true},
		{"rounded", BorderRounded, true},
		{"double", BorderDouble, true},
		{"heavy", BorderThick, true},
		{"none", BorderBlank, true},
		{"dotted", BorderPlain, false},
	}
	for _, tt := range tests {
		got, ok := ParseBorderType(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseBorderType(%q): expected (%v, %v), got (%v, %v)", tt.in, tt.want, tt.ok, got, ok)
		}
	}
}
