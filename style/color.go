package style

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a terminal color: Reset, one of the 16 named ANSI colors,
// a 256-palette index, or a 24-bit RGB value.
// Zero value is Reset. Comparable, usable as map key.
type Color uint32

// Kind tag occupies the top byte, payload the low 24 bits
const (
	kindShift          = 24
	kindNamed   uint32 = 1 << kindShift
	kindIndexed uint32 = 2 << kindShift
	kindRGB     uint32 = 3 << kindShift
	kindMask    uint32 = 0xFF << kindShift
)

// Reset restores the terminal default color
const Reset Color = 0

// Named colors, payload is the ANSI palette index
const (
	Black       = Color(kindNamed | 0)
	DarkRed     = Color(kindNamed | 1)
	DarkGreen   = Color(kindNamed | 2)
	DarkYellow  = Color(kindNamed | 3)
	DarkBlue    = Color(kindNamed | 4)
	DarkMagenta = Color(kindNamed | 5)
	DarkCyan    = Color(kindNamed | 6)
	Gray        = Color(kindNamed | 7)
	DarkGray    = Color(kindNamed | 8)
	Red         = Color(kindNamed | 9)
	Green       = Color(kindNamed | 10)
	Yellow      = Color(kindNamed | 11)
	Blue        = Color(kindNamed | 12)
	Magenta     = Color(kindNamed | 13)
	Cyan        = Color(kindNamed | 14)
	White       = Color(kindNamed | 15)
)

// ErrUnknownColor is returned by ParseColor for unrecognized input
var ErrUnknownColor = errors.New("unknown color")

var namedColors = [16]string{
	"Black", "DarkRed", "DarkGreen", "DarkYellow",
	"DarkBlue", "DarkMagenta", "DarkCyan", "Grey",
	"DarkGrey", "Red", "Green", "Yellow",
	"Blue", "Magenta", "Cyan", "White",
}

// colorNames maps lowercase config names to colors
var colorNames = map[string]Color{
	"reset":        Reset,
	"black":        Black,
	"dark_red":     DarkRed,
	"dark_green":   DarkGreen,
	"dark_yellow":  DarkYellow,
	"dark_blue":    DarkBlue,
	"dark_magenta": DarkMagenta,
	"dark_cyan":    DarkCyan,
	"grey":         Gray,
	"gray":         Gray,
	"dark_grey":    DarkGray,
	"dark_gray":    DarkGray,
	"red":          Red,
	"green":        Green,
	"yellow":       Yellow,
	"blue":         Blue,
	"magenta":      Magenta,
	"cyan":         Cyan,
	"white":        White,
}

// Indexed returns the 256-palette color n
func Indexed(n uint8) Color {
	return Color(kindIndexed | uint32(n))
}

// RGB returns a 24-bit color
func RGB(r, g, b uint8) Color {
	return Color(kindRGB | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

func (c Color) kind() uint32 {
	return uint32(c) & kindMask
}

// IsReset reports whether c is the terminal default color
func (c Color) IsReset() bool {
	return c == Reset
}

// IsNamed reports whether c is one of the 16 named ANSI colors
func (c Color) IsNamed() bool {
	return c.kind() == kindNamed
}

// IsIndexed reports whether c is an explicit 256-palette color
func (c Color) IsIndexed() bool {
	return c.kind() == kindIndexed
}

// IsRGB reports whether c is a 24-bit color
func (c Color) IsRGB() bool {
	return c.kind() == kindRGB
}

// Index returns the palette index of a named or indexed color
func (c Color) Index() (uint8, bool) {
	switch c.kind() {
	case kindNamed, kindIndexed:
		return uint8(c), true
	}
	return 0, false
}

// RGBValues returns the channels of a 24-bit color
func (c Color) RGBValues() (r, g, b uint8, ok bool) {
	if c.kind() != kindRGB {
		return 0, 0, 0, false
	}
	return uint8(c >> 16), uint8(c >> 8), uint8(c), true
}

// Palette256 returns the nearest xterm-256 index for c.
// Reset has no palette index and reports false.
func (c Color) Palette256() (uint8, bool) {
	switch c.kind() {
	case kindNamed, kindIndexed:
		return uint8(c), true
	case kindRGB:
		r, g, b, _ := c.RGBValues()
		return rgbTo256(r, g, b), true
	}
	return 0, false
}

// String renders the color name, #RRGGBB, or the palette index
func (c Color) String() string {
	switch c.kind() {
	case kindNamed:
		return namedColors[uint8(c)&0x0F]
	case kindIndexed:
		return strconv.Itoa(int(uint8(c)))
	case kindRGB:
		r, g, b, _ := c.RGBValues()
		return fmt.Sprintf("#%02X%02X%02X", r, g, b)
	}
	return "Reset"
}

// ParseColor parses a color from config text.
// Accepted forms: names (black, dark_red, grey, ...), #rrggbb hex,
// ANSI sequences "5;<n>" and "2;<r>;<g>;<b>", and bare palette indices.
func ParseColor(s string) (Color, error) {
	src := strings.ToLower(strings.TrimSpace(s))
	if c, ok := colorNames[src]; ok {
		return c, nil
	}

	if strings.HasPrefix(src, "#") {
		hex, err := colorful.Hex(src)
		if err != nil {
			return Reset, fmt.Errorf("%w: %q: %v", ErrUnknownColor, s, err)
		}
		r, g, b := hex.RGB255()
		return RGB(r, g, b), nil
	}

	if strings.Contains(src, ";") {
		if c, ok := parseANSI(strings.Split(src, ";")); ok {
			return c, nil
		}
		return Reset, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}

	if n, err := strconv.ParseUint(src, 10, 8); err == nil {
		return Indexed(uint8(n)), nil
	}

	return Reset, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// parseANSI decodes SGR color parameters (without the leading 38/48)
func parseANSI(parts []string) (Color, bool) {
	next := func() (uint8, bool) {
		if len(parts) == 0 {
			return 0, false
		}
		n, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 8)
		parts = parts[1:]
		return uint8(n), err == nil
	}

	mode, ok := next()
	if !ok {
		return Reset, false
	}

	var c Color
	switch mode {
	case 5:
		n, ok := next()
		if !ok {
			return Reset, false
		}
		if n < 16 {
			c = Color(kindNamed | uint32(n))
		} else {
			c = Indexed(n)
		}
	case 2:
		r, ok1 := next()
		g, ok2 := next()
		b, ok3 := next()
		if !ok1 || !ok2 || !ok3 {
			return Reset, false
		}
		c = RGB(r, g, b)
	default:
		return Reset, false
	}

	// Trailing values are malformed
	if len(parts) != 0 {
		return Reset, false
	}
	return c, true
}

// Color cube levels for the 6x6x6 palette (indices 16-231)
var cubeValues = [6]int{0, 95, 135, 175, 215, 255}

func cubeIndex(v int) int {
	best := 0
	bestDist := absInt(v - cubeValues[0])
	for j := 1; j < len(cubeValues); j++ {
		if d := absInt(v - cubeValues[j]); d < bestDist {
			bestDist = d
			best = j
		}
	}
	return best
}

// rgbTo256 maps an RGB value onto the 6x6x6 cube or the grayscale ramp (232-255)
func rgbTo256(r8, g8, b8 uint8) uint8 {
	r, g, b := int(r8), int(g8), int(b8)
	cr, cg, cb := cubeIndex(r), cubeIndex(g), cubeIndex(b)
	cubeIdx := uint8(16 + 36*cr + 6*cg + cb)

	gray := (r + g + b) / 3
	maxDiff := max(absInt(r-gray), absInt(g-gray), absInt(b-gray))
	if maxDiff >= 10 {
		return cubeIdx
	}

	if gray < 4 {
		return 16
	}
	if gray > 243 {
		return 231
	}

	grayIdx := min(232+(gray-8)/10, 255)
	grayLevel := 8 + (grayIdx-232)*10
	grayDist := absInt(r-grayLevel) + absInt(g-grayLevel) + absInt(b-grayLevel)
	cubeDist := absInt(r-cubeValues[cr]) + absInt(g-cubeValues[cg]) + absInt(b-cubeValues[cb])

	if grayDist < cubeDist {
		return uint8(grayIdx)
	}
	return cubeIdx
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
