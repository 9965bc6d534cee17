package screen

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tilekit/buffer"
	"github.com/lixenwraith/tilekit/style"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	Palette256 ColorMode = iota // xterm-256 palette
	TrueColor                   // 24-bit RGB
)

// String returns the config name of the mode
func (m ColorMode) String() string {
	if m == TrueColor {
		return "truecolor"
	}
	return "256"
}

// ParseColorMode accepts "truecolor", "24bit", "256" or "auto"; auto detects from the environment
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "truecolor", "24bit", "rgb":
		return TrueColor, nil
	case "256", "palette", "palette256":
		return Palette256, nil
	case "", "auto":
		return DetectColorMode(), nil
	}
	return Palette256, fmt.Errorf("unknown color mode %q", s)
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	return detectColorMode(os.Getenv)
}

func detectColorMode(getenv func(string) string) ColorMode {
	colorterm := getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return TrueColor
	}

	if getenv("KITTY_WINDOW_ID") != "" ||
		getenv("KONSOLE_VERSION") != "" ||
		getenv("ITERM_SESSION_ID") != "" ||
		getenv("ALACRITTY_WINDOW_ID") != "" ||
		getenv("WEZTERM_PANE") != "" {
		return TrueColor
	}

	term := getenv("TERM")
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return TrueColor
	}

	return Palette256
}

// ToTcellColor maps a color for the given mode
func ToTcellColor(c style.Color, mode ColorMode) tcell.Color {
	if c.IsReset() {
		return tcell.ColorReset
	}
	if r, g, b, ok := c.RGBValues(); ok && mode == TrueColor {
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	// Named and indexed colors carry their palette index, RGB falls back to the nearest one
	idx, _ := c.Palette256()
	return tcell.PaletteColor(int(idx))
}

// ToTcellStyle converts the absolute style of a cell
func ToTcellStyle(cell buffer.Cell, mode ColorMode) tcell.Style {
	fg := ToTcellColor(cell.Fg, mode)
	bg := ToTcellColor(cell.Bg, mode)
	mod := cell.Modifier
	if mod.Contains(style.Hidden) {
		fg = bg
	}

	st := tcell.StyleDefault.Foreground(fg).Background(bg)
	if mod.IsEmpty() {
		return st
	}
	return st.
		Bold(mod.Contains(style.Bold)).
		Dim(mod.Contains(style.Dim)).
		Italic(mod.Contains(style.Italic)).
		Underline(mod.Contains(style.Underlined)).
		Blink(mod.Contains(style.SlowBlink) || mod.Contains(style.RapidBlink)).
		Reverse(mod.Contains(style.Reversed)).
		StrikeThrough(mod.Contains(style.CrossedOut))
}
