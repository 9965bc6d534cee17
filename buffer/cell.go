package buffer

import (
	"github.com/rivo/uniseg"

	"github.com/lixenwraith/tilekit/style"
)

// Cell is one grid position: a grapheme cluster with its resolved colors and attributes
type Cell struct {
	Symbol   string
	Fg       style.Color
	Bg       style.Color
	Modifier style.Modifier
	// Skip excludes the cell from Diff, leaving whatever the host drew there
	Skip bool
}

// NewCell returns a blank cell
func NewCell() Cell {
	return Cell{Symbol: " "}
}

// SetSymbol replaces the grapheme cluster
func (c *Cell) SetSymbol(symbol string) *Cell {
	c.Symbol = symbol
	return c
}

// SetChar replaces the symbol with a single rune
func (c *Cell) SetChar(r rune) *Cell {
	c.Symbol = string(r)
	return c
}

// SetFg sets the foreground color
func (c *Cell) SetFg(color style.Color) *Cell {
	c.Fg = color
	return c
}

// SetBg sets the background color
func (c *Cell) SetBg(color style.Color) *Cell {
	c.Bg = color
	return c
}

// SetStyle applies a style patch: set colors replace, modifiers are added then removed
func (c *Cell) SetStyle(s style.Style) *Cell {
	if fg, ok := s.FgColor(); ok {
		c.Fg = fg
	}
	if bg, ok := s.BgColor(); ok {
		c.Bg = bg
	}
	c.Modifier.Insert(s.AddModifier)
	c.Modifier.Remove(s.SubModifier)
	return c
}

// Style returns the absolute style of the cell as a patch
func (c *Cell) Style() style.Style {
	return style.New().Fg(c.Fg).Bg(c.Bg).Add(c.Modifier)
}

// SetSkip marks the cell to be ignored by Diff
func (c *Cell) SetSkip(skip bool) *Cell {
	c.Skip = skip
	return c
}

// Reset blanks the cell
func (c *Cell) Reset() {
	*c = NewCell()
}

// width returns the display width of the symbol
func (c *Cell) width() int {
	return uniseg.StringWidth(c.Symbol)
}
