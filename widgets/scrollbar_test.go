package widgets

import (
	"testing"

	"github.com/lixenwraith/tilekit/buffer"
	"github.com/lixenwraith/tilekit/geom"
	"github.com/lixenwraith/tilekit/style"
)

func renderScrollbar(sb Scrollbar, state *ScrollbarState, rows, cols uint16) *buffer.Buffer {
	area := geom.New(rows, cols)
	buf := buffer.NewBuffer(area)
	sb.Render(area, buf, state)
	return buf
}

func noArrows(o ScrollbarOrientation) Scrollbar {
	return NewScrollbar(o).WithBeginSymbol("").WithEndSymbol("")
}

func TestScrollbarNothingToRender(t *testing.T) {
	tests := []struct {
		name       string
		sb         Scrollbar
		state      *ScrollbarState
		rows, cols uint16
		want       []string
	}{
		{"zero content", noArrows(VerticalRight), NewScrollbarState(0), 2, 2, []string{"  ", "  "}},
		{"too short for arrows", NewScrollbar(VerticalRight), NewScrollbarState(1), 2, 4, []string{"    ", "    "}},
		{"zero area", NewScrollbar(VerticalRight), NewScrollbarState(1), 0, 3, []string{}},
		{"zero height horizontal", NewScrollbar(HorizontalBottom), NewScrollbarState(1), 0, 3, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertRows(t, renderScrollbar(tt.sb, tt.state, tt.rows, tt.cols), tt.want...)
		})
	}
}

func TestScrollbarFullThumb(t *testing.T) {
	tests := []struct {
		name       string
		content    int
		rows, cols uint16
		want       []string
	}{
		{"content shorter than track", 1, 2, 4, []string{"   █", "   █"}},
		{"single column", 1, 2, 1, []string{"█", "█"}},
		{"content equals track", 8, 8, 2, []string{" █", " █", " █", " █", " █", " █", " █", " █"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := renderScrollbar(noArrows(VerticalRight), NewScrollbarState(tt.content), tt.rows, tt.cols)
			assertRows(t, buf, tt.want...)
		})
	}
}

func TestScrollbarArrowsAroundThumb(t *testing.T) {
	buf := renderScrollbar(NewScrollbar(VerticalRight), NewScrollbarState(1), 3, 4)
	assertRows(t, buf, "   ▲", "   █", "   ▼")
}

func TestScrollbarVerticalThumbPosition(t *testing.T) {
	tests := []struct {
		position int
		want     []string
	}{
		{0, []string{" █", " ║", " ║", " ║"}},
		{2, []string{" █", " ║", " ║", " ║"}},
		{3, []string{" ║", " █", " ║", " ║"}},
		{7, []string{" ║", " █", " ║", " ║"}},
		{8, []string{" ║", " ║", " █", " ║"}},
		{13, []string{" ║", " ║", " █", " ║"}},
		{14, []string{" ║", " ║", " ║", " █"}},
		{17, []string{" ║", " ║", " ║", " █"}},
	}

	for _, tt := range tests {
		state := &ScrollbarState{ContentLength: 16, Position: tt.position}
		assertRows(t, renderScrollbar(noArrows(VerticalRight), state, 4, 2), tt.want...)
	}
}

func TestScrollbarHorizontalThumbPosition(t *testing.T) {
	tests := []struct {
		name    string
		sb      Scrollbar
		content int
		pos     int
		want    []string
	}{
		{"bottom start", noArrows(HorizontalBottom), 16, 0, []string{"    ", "█═══"}},
		{"bottom middle", noArrows(HorizontalBottom), 16, 8, []string{"    ", "══█═"}},
		{"large content start", noArrows(HorizontalBottom), 1600, 0, []string{"    ", "█═══"}},
		{"large content middle", noArrows(HorizontalBottom), 1600, 800, []string{"    ", "══█═"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := &ScrollbarState{ContentLength: tt.content, Position: tt.pos}
			assertRows(t, renderScrollbar(tt.sb, state, 2, 4), tt.want...)
		})
	}
}

func TestScrollbarTopWithArrows(t *testing.T) {
	tests := []struct {
		position int
		want     string
	}{
		{0, "◄██════►"},
		{1, "◄██════►"},
		{2, "◄═██═══►"},
		{6, "◄══██══►"},
		{10, "◄═══██═►"},
		{14, "◄════██►"},
		{16, "◄════██►"},
	}

	for _, tt := range tests {
		state := &ScrollbarState{ContentLength: 16, Position: tt.position}
		assertRows(t, renderScrollbar(NewScrollbar(HorizontalTop), state, 2, 8), tt.want, "        ")
	}
}

func TestScrollbarDoubleContentThumb(t *testing.T) {
	tests := []struct {
		position int
		want     []string
	}{
		{0, []string{" █", " █", " ║", " ║"}},
		{1, []string{" █", " █", " ║", " ║"}},
		{2, []string{" ║", " █", " █", " ║"}},
		{5, []string{" ║", " █", " █", " ║"}},
		{6, []string{" ║", " ║", " █", " █"}},
	}

	for _, tt := range tests {
		state := &ScrollbarState{ContentLength: 8, Position: tt.position}
		assertRows(t, renderScrollbar(noArrows(VerticalRight), state, 4, 2), tt.want...)
	}
}

func TestScrollbarSymbolsAndOrientation(t *testing.T) {
	tests := []struct {
		name     string
		sb       Scrollbar
		viewport int
		want     []string
	}{
		{"single line set", noArrows(VerticalRight).WithSymbols(ScrollbarVertical), 0, []string{" █", " █", " │", " │"}},
		{"left edge", noArrows(VerticalLeft), 0, []string{"█ ", "█ ", "║ ", "║ "}},
		{"no track", noArrows(VerticalRight).WithTrackSymbol(""), 0, []string{" █", " █", "  ", "  "}},
		{"custom thumb", noArrows(VerticalRight).WithThumbSymbol("#"), 0, []string{" #", " #", " ║", " ║"}},
		{"viewport sizes thumb", noArrows(VerticalRight), 2, []string{" █", " ║", " ║", " ║"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := &ScrollbarState{ContentLength: 8, ViewportContentLength: tt.viewport}
			assertRows(t, renderScrollbar(tt.sb, state, 4, 2), tt.want...)
		})
	}
}

func TestScrollbarStyles(t *testing.T) {
	sb := NewScrollbar(VerticalRight).
		WithStyle(style.New().Fg(style.Blue)).
		WithThumbStyle(style.New().Fg(style.Red))
	buf := renderScrollbar(sb, NewScrollbarState(8), 4, 1)

	wants := []style.Color{style.Blue, style.Red, style.Blue, style.Blue}
	for y, want := range wants {
		if got := buf.Get(0, uint16(y)).Fg; got != want {
			t.Errorf("Row %d: expected %v, got %v", y, want, got)
		}
	}
}

func TestScrollbarState(t *testing.T) {
	s := NewScrollbarState(3)
	s.Next()
	s.Next()
	s.Next()
	if s.Position != 2 {
		t.Errorf("Expected position capped at 2, got %d", s.Position)
	}
	s.Scroll(ScrollBackward)
	if s.Position != 1 {
		t.Errorf("Expected position 1, got %d", s.Position)
	}
	s.First()
	s.Prev()
	if s.Position != 0 {
		t.Errorf("Expected position 0, got %d", s.Position)
	}
	s.Scroll(ScrollForward)
	if s.Position != 1 {
		t.Errorf("Expected position 1, got %d", s.Position)
	}
	s.Last()
	if s.Position != 2 {
		t.Errorf("Expected position 2, got %d", s.Position)
	}

	empty := NewScrollbarState(0)
	empty.Next()
	empty.Last()
	if empty.Position != 0 {
		t.Errorf("Expected empty content to stay at 0, got %d", empty.Position)
	}
}

func TestScrollbarOrientationString(t *testing.T) {
	tests := []struct {
		o    ScrollbarOrientation
		want string
	}{
		{VerticalRight, "VerticalRight"},
		{VerticalLeft, "VerticalLeft"},
		{HorizontalBottom, "HorizontalBottom"},
		{HorizontalTop, "HorizontalTop"},
	}
	for _, tt := range tests {
		if got := tt.o.String(); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}
