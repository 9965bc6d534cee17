package style

import (
	"errors"
	"testing"
)

func sampleStyles() []Style {
	return []Style{
		New(),
		New().Fg(Yellow),
		New().Bg(Yellow),
		New().Add(Bold),
		New().Remove(Bold),
		New().Add(Italic),
		New().Remove(Italic),
		New().Add(Italic | Bold),
		New().Remove(Italic | Bold),
		New().Fg(RGB(10, 20, 30)).Remove(Underlined),
		ResetStyle(),
	}
}

func TestPatchAssociative(t *testing.T) {
	styles := sampleStyles()
	for _, a := range styles {
		for _, b := range styles {
			for _, c := range styles {
				sequential := New().Patch(a).Patch(b).Patch(c)
				combined := New().Patch(a.Patch(b.Patch(c)))
				if sequential != combined {
					t.Fatalf("Patch not associative for %v, %v, %v: %v != %v", a, b, c, sequential, combined)
				}
			}
		}
	}
}

func TestPatchColors(t *testing.T) {
	base := New().Fg(Blue)
	patched := base.Patch(New().Fg(Red))
	if fg, ok := patched.FgColor(); !ok || fg != Red {
		t.Errorf("Expected fg Red, got %v (set=%v)", fg, ok)
	}

	kept := base.Patch(New().Bg(Green))
	if fg, ok := kept.FgColor(); !ok || fg != Blue {
		t.Errorf("Expected fg to remain Blue, got %v", fg)
	}
	if bg, ok := kept.BgColor(); !ok || bg != Green {
		t.Errorf("Expected bg Green, got %v", bg)
	}
}

func TestPatchModifiers(t *testing.T) {
	style := New().Add(Bold)
	patched := style.Patch(New().Add(Italic))
	if patched.AddModifier != Bold|Italic {
		t.Errorf("Expected add BOLD | ITALIC, got %v", patched.AddModifier)
	}
	if !patched.SubModifier.IsEmpty() {
		t.Errorf("Expected empty sub, got %v", patched.SubModifier)
	}

	removed := New().Add(Bold | Italic).Patch(New().Remove(Italic))
	if removed.AddModifier != Bold {
		t.Errorf("Expected add BOLD, got %v", removed.AddModifier)
	}
	if removed.SubModifier != Italic {
		t.Errorf("Expected sub ITALIC, got %v", removed.SubModifier)
	}
}

func TestBuildersDoNotAlias(t *testing.T) {
	base := New().Fg(Red)
	derived := base.Bg(Blue).Bold()

	if _, ok := base.BgColor(); ok {
		t.Error("Expected base style to keep unset bg")
	}
	if base.AddModifier != ModifierNone {
		t.Errorf("Expected base modifiers untouched, got %v", base.AddModifier)
	}
	if derived.AddModifier != Bold {
		t.Errorf("Expected derived BOLD, got %v", derived.AddModifier)
	}
}

func TestModifierString(t *testing.T) {
	tests := []struct {
		m    Modifier
		want string
	}{
		{ModifierNone, "NONE"},
		{Bold, "BOLD"},
		{Bold | Italic, "BOLD | ITALIC"},
		{CrossedOut | Dim, "DIM | CROSSED_OUT"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}

func TestModifierSetOps(t *testing.T) {
	m := Bold
	m.Insert(Italic)
	if !m.Contains(Bold | Italic) {
		t.Errorf("Expected BOLD | ITALIC, got %v", m)
	}
	m.Remove(Bold)
	if m != Italic {
		t.Errorf("Expected ITALIC, got %v", m)
	}
	if got := (Bold | Dim).Difference(Dim); got != Bold {
		t.Errorf("Expected BOLD, got %v", got)
	}
	if mod, ok := ParseModifier("slow_blink"); !ok || mod != SlowBlink {
		t.Errorf("Expected SLOW_BLINK, got %v (ok=%v)", mod, ok)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"grey", Gray},
		{"dark_grey", DarkGray},
		{"RED", Red},
		{"dark_red", DarkRed},
		{"green", Green},
		{"dark_green", DarkGreen},
		{"yellow", Yellow},
		{"dark_yellow", DarkYellow},
		{"blue", Blue},
		{"dark_blue", DarkBlue},
		{"magenta", Magenta},
		{"dark_magenta", DarkMagenta},
		{"cyan", Cyan},
		{"dark_cyan", DarkCyan},
		{"white", White},
		{"black", Black},
		{"reset", Reset},
		{"#ff8000", RGB(255, 128, 0)},
		{"5;0", Black},
		{"5;26", Indexed(26)},
		{"2;50;60;70", RGB(50, 60, 70)},
		{"200", Indexed(200)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"foo", "#zzzzzz", "5;", "2;1;2", "5;1;2", "7;1", "300"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrUnknownColor) {
			t.Errorf("Expected ErrUnknownColor for %q, got %v", in, err)
		}
	}
}

func TestColorString(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{Reset, "Reset"},
		{Gray, "Grey"},
		{DarkGray, "DarkGrey"},
		{RGB(1, 2, 255), "#0102FF"},
		{Indexed(42), "42"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}

func TestPalette256(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want uint8
	}{
		{"named passes through", Red, 9},
		{"indexed passes through", Indexed(100), 100},
		{"pure red", RGB(255, 0, 0), 196},
		{"pure black", RGB(0, 0, 0), 16},
		{"pure white", RGB(255, 255, 255), 231},
		{"mid gray uses ramp", RGB(128, 128, 128), 244},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.c.Palette256()
			if !ok {
				t.Fatal("Expected palette index")
			}
			if got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}

	if _, ok := Reset.Palette256(); ok {
		t.Error("Expected Reset to have no palette index")
	}
}
