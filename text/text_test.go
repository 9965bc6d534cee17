package text

import (
	"testing"

	"github.com/lixenwraith/tilekit/style"
)

func TestLineWidth(t *testing.T) {
	line := LineFrom(
		Styled("My", style.New().Fg(style.Yellow)),
		Raw(" text"),
	)
	if line.Width() != 7 {
		t.Errorf("Expected width 7, got %d", line.Width())
	}

	wide := RawLine("コンピュ")
	if wide.Width() != 8 {
		t.Errorf("Expected width 8 for double-width text, got %d", wide.Width())
	}
}

func TestRawLineSplitsNewlines(t *testing.T) {
	line := RawLine("a\nbc")
	if len(line.Spans) != 2 {
		t.Fatalf("Expected 2 spans, got %d", len(line.Spans))
	}
	if line.String() != "abc" {
		t.Errorf("Expected content abc, got %q", line.String())
	}
}

func TestLinePatchStyleCopies(t *testing.T) {
	s := style.New().Fg(style.Yellow).Italic()
	raw := LineFrom(Raw("My"), Raw(" text"))
	patched := raw.PatchStyle(s)

	for i, span := range patched.Spans {
		if span.Style != s {
			t.Errorf("Span %d: expected %v, got %v", i, s, span.Style)
		}
	}
	for i, span := range raw.Spans {
		if span.Style != style.New() {
			t.Errorf("Original span %d was modified: %v", i, span.Style)
		}
	}
}

func TestStyledGraphemes(t *testing.T) {
	line := StyledLine("Téx", style.New().Fg(style.Yellow))
	base := style.New().Fg(style.Green).Bg(style.Black)

	got := line.StyledGraphemes(base)
	if len(got) != 3 {
		t.Fatalf("Expected 3 graphemes, got %d", len(got))
	}
	if got[1].Symbol != "é" {
		t.Errorf("Expected combining cluster, got %q", got[1].Symbol)
	}

	want := style.New().Fg(style.Yellow).Bg(style.Black)
	for _, g := range got {
		if g.Style != want {
			t.Errorf("Expected %v, got %v", want, g.Style)
		}
	}
}

func TestLineAlignment(t *testing.T) {
	line := RawLine("x")
	if line.Aligned {
		t.Error("Expected unaligned line by default")
	}
	right := line.WithAlignment(AlignRight)
	if !right.Aligned || right.Alignment != AlignRight {
		t.Errorf("Expected right alignment, got %v (aligned=%v)", right.Alignment, right.Aligned)
	}
	if line.Aligned {
		t.Error("WithAlignment modified the original")
	}
}
