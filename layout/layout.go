// Package layout splits rectangles into ordered segments from declarative constraints.
//
// A Layout is an immutable description (direction, margin, constraints).
// Splitting a rectangle solves a small linear system with the cassowary
// solver and memoizes the result in an Engine's LRU cache, since widgets
// derive the same sub-layouts on every render pass.
package layout

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/lixenwraith/tilekit/geom"
)

// Direction is the axis a layout splits along
type Direction uint8

const (
	Vertical Direction = iota
	Horizontal
)

func (d Direction) String() string {
	if d == Horizontal {
		return "Horizontal"
	}
	return "Vertical"
}

// ParseDirection accepts horizontal/h or vertical/v, case-insensitive
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "h":
		return Horizontal, nil
	case "vertical", "v":
		return Vertical, nil
	}
	return Vertical, fmt.Errorf("unknown direction %q", s)
}

// Layout describes a split. Builders return independent copies.
type Layout struct {
	direction   Direction
	margin      geom.Margin
	constraints []Constraint
}

// Default returns a vertical layout with no margin and no constraints
func Default() Layout {
	return Layout{direction: Vertical}
}

// New creates a layout with the given direction and constraints
func New(direction Direction, constraints ...Constraint) Layout {
	return Default().WithDirection(direction).WithConstraints(constraints...)
}

// Vertically is shorthand for New(Vertical, constraints...)
func Vertically(constraints ...Constraint) Layout {
	return New(Vertical, constraints...)
}

// Horizontally is shorthand for New(Horizontal, constraints...)
func Horizontally(constraints ...Constraint) Layout {
	return New(Horizontal, constraints...)
}

// WithConstraints replaces the constraint list
func (l Layout) WithConstraints(constraints ...Constraint) Layout {
	l.constraints = slices.Clone(constraints)
	return l
}

// WithMargin sets both margins to m
func (l Layout) WithMargin(m uint16) Layout {
	l.margin = geom.NewMargin(m, m)
	return l
}

// WithHorizontalMargin sets the margin on the left and right
func (l Layout) WithHorizontalMargin(m uint16) Layout {
	l.margin.Horizontal = m
	return l
}

// WithVerticalMargin sets the margin on the top and bottom
func (l Layout) WithVerticalMargin(m uint16) Layout {
	l.margin.Vertical = m
	return l
}

// WithDirection sets the split axis
func (l Layout) WithDirection(d Direction) Layout {
	l.direction = d
	return l
}

func (l Layout) Direction() Direction {
	return l.direction
}

func (l Layout) Margin() geom.Margin {
	return l.margin
}

// Constraints returns a copy of the constraint list
func (l Layout) Constraints() []Constraint {
	return slices.Clone(l.constraints)
}

// Equal reports structural equality
func (l Layout) Equal(other Layout) bool {
	return l.direction == other.direction &&
		l.margin == other.margin &&
		slices.Equal(l.constraints, other.constraints)
}

// Split divides area using the process default engine.
// The returned slice belongs to the caller.
func (l Layout) Split(area geom.Geometry) []geom.Geometry {
	return defaultSlot.get().Split(area, l)
}

func (l Layout) String() string {
	parts := make([]string, len(l.constraints))
	for i, c := range l.constraints {
		parts[i] = c.String()
	}
	return fmt.Sprintf("Layout{direction: %s, margin: %s, constraints: [%s]}",
		l.direction, l.margin, strings.Join(parts, ", "))
}

// cacheKey encodes area and layout; two keys are equal iff both inputs are structurally equal
func cacheKey(area geom.Geometry, l Layout) string {
	var sb strings.Builder
	for _, v := range []uint16{area.X, area.Y, area.Rows, area.Cols, l.margin.Horizontal, l.margin.Vertical} {
		sb.WriteString(strconv.FormatUint(uint64(v), 10))
		sb.WriteByte(',')
	}
	sb.WriteString(strconv.Itoa(int(l.direction)))
	for _, c := range l.constraints {
		sb.WriteByte('|')
		sb.WriteString(strconv.Itoa(int(c.Kind)))
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatUint(uint64(c.Value), 10))
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatUint(uint64(c.Den), 10))
	}
	return sb.String()
}
