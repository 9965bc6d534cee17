// Package style holds the color, modifier, and incremental style model.
//
// A Style is a patch, not an absolute style: applying S1, S2, S3 to a cell
// yields the merge of all three, and Patch composes patches associatively.
package style

import "fmt"

// Style is an incremental patch of colors and text attributes.
// Builders return a new value; the receiver is never modified.
type Style struct {
	fg    Color
	bg    Color
	hasFg bool
	hasBg bool

	AddModifier Modifier
	SubModifier Modifier
}

// New returns a style that changes nothing
func New() Style {
	return Style{}
}

// ResetStyle returns a style that resets colors and clears every modifier
func ResetStyle() Style {
	return Style{
		fg:          Reset,
		bg:          Reset,
		hasFg:       true,
		hasBg:       true,
		SubModifier: ModifierAll,
	}
}

// FgColor returns the foreground and whether the patch sets it
func (s Style) FgColor() (Color, bool) {
	return s.fg, s.hasFg
}

// BgColor returns the background and whether the patch sets it
func (s Style) BgColor() (Color, bool) {
	return s.bg, s.hasBg
}

// Fg sets the foreground color
func (s Style) Fg(c Color) Style {
	s.fg = c
	s.hasFg = true
	return s
}

// Bg sets the background color
func (s Style) Bg(c Color) Style {
	s.bg = c
	s.hasBg = true
	return s
}

// Add adds modifiers, cancelling any pending removal of the same bits
func (s Style) Add(m Modifier) Style {
	s.SubModifier = s.SubModifier.Difference(m)
	s.AddModifier = s.AddModifier.Union(m)
	return s
}

// Remove removes modifiers, cancelling any pending addition of the same bits
func (s Style) Remove(m Modifier) Style {
	s.AddModifier = s.AddModifier.Difference(m)
	s.SubModifier = s.SubModifier.Union(m)
	return s
}

// Patch returns the style equivalent to applying s then other
func (s Style) Patch(other Style) Style {
	if other.hasFg {
		s.fg = other.fg
		s.hasFg = true
	}
	if other.hasBg {
		s.bg = other.bg
		s.hasBg = true
	}

	s.AddModifier = s.AddModifier.Difference(other.SubModifier).Union(other.AddModifier)
	s.SubModifier = s.SubModifier.Difference(other.AddModifier).Union(other.SubModifier)
	return s
}

// Bold and friends are shorthands for Add with a single flag
func (s Style) Bold() Style       { return s.Add(Bold) }
func (s Style) Dim() Style        { return s.Add(Dim) }
func (s Style) Italic() Style     { return s.Add(Italic) }
func (s Style) Underlined() Style { return s.Add(Underlined) }
func (s Style) Reversed() Style   { return s.Add(Reversed) }
func (s Style) CrossedOut() Style { return s.Add(CrossedOut) }

// String renders the patch for debugging
func (s Style) String() string {
	fg, bg := "None", "None"
	if s.hasFg {
		fg = s.fg.String()
	}
	if s.hasBg {
		bg = s.bg.String()
	}
	return fmt.Sprintf("Style{fg: %s, bg: %s, add: %s, sub: %s}", fg, bg, s.AddModifier, s.SubModifier)
}
