package style

import "strings"

// Modifier is a bitmask of text attributes
type Modifier uint16

const (
	Bold       Modifier = 1 << 0
	Dim        Modifier = 1 << 1
	Italic     Modifier = 1 << 2
	Underlined Modifier = 1 << 3
	SlowBlink  Modifier = 1 << 4
	RapidBlink Modifier = 1 << 5
	Reversed   Modifier = 1 << 6
	Hidden     Modifier = 1 << 7
	CrossedOut Modifier = 1 << 8
)

// ModifierNone is the empty set
const ModifierNone Modifier = 0

// ModifierAll contains every defined attribute
const ModifierAll = Bold | Dim | Italic | Underlined | SlowBlink | RapidBlink | Reversed | Hidden | CrossedOut

var modifierNames = [...]struct {
	m    Modifier
	name string
}{
	{Bold, "BOLD"},
	{Dim, "DIM"},
	{Italic, "ITALIC"},
	{Underlined, "UNDERLINED"},
	{SlowBlink, "SLOW_BLINK"},
	{RapidBlink, "RAPID_BLINK"},
	{Reversed, "REVERSED"},
	{Hidden, "HIDDEN"},
	{CrossedOut, "CROSSED_OUT"},
}

// IsEmpty reports whether no attribute is set
func (m Modifier) IsEmpty() bool {
	return m == ModifierNone
}

// Contains reports whether every bit of other is set in m
func (m Modifier) Contains(other Modifier) bool {
	return m&other == other
}

// Union returns m | other
func (m Modifier) Union(other Modifier) Modifier {
	return m | other
}

// Difference returns m with the bits of other cleared
func (m Modifier) Difference(other Modifier) Modifier {
	return m &^ other
}

// Insert sets the bits of other in place
func (m *Modifier) Insert(other Modifier) {
	*m |= other
}

// Remove clears the bits of other in place
func (m *Modifier) Remove(other Modifier) {
	*m &^= other
}

// String renders NONE or the flag names joined by " | "
func (m Modifier) String() string {
	if m.IsEmpty() {
		return "NONE"
	}
	var parts []string
	for _, n := range modifierNames {
		if m&n.m != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, " | ")
}

// ParseModifier parses a single flag name, case-insensitive
func ParseModifier(s string) (Modifier, bool) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for _, n := range modifierNames {
		if n.name == upper {
			return n.m, true
		}
	}
	return ModifierNone, false
}
