package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// ConstraintKind tags the variant held by a Constraint
type ConstraintKind uint8

const (
	KindPercentage ConstraintKind = iota
	KindRatio
	KindLength
	KindMax
	KindMin
)

// Constraint is a sizing rule for one segment of a split.
// Comparable; build with Percentage, Ratio, Length, Max or Min.
type Constraint struct {
	Kind ConstraintKind
	// Value is the percentage, length, bound, or ratio numerator
	Value uint32
	// Den is the ratio denominator, unused by other kinds
	Den uint32
}

// Percentage sizes the segment to p percent of the available length
func Percentage(p uint16) Constraint {
	return Constraint{Kind: KindPercentage, Value: uint32(p)}
}

// Ratio sizes the segment to num/den of the available length; den 0 is treated as 1
func Ratio(num, den uint32) Constraint {
	return Constraint{Kind: KindRatio, Value: num, Den: den}
}

// Length sizes the segment to exactly l cells
func Length(l uint16) Constraint {
	return Constraint{Kind: KindLength, Value: uint32(l)}
}

// Max prefers m cells and never more
func Max(m uint16) Constraint {
	return Constraint{Kind: KindMax, Value: uint32(m)}
}

// Min prefers m cells and never less
func Min(m uint16) Constraint {
	return Constraint{Kind: KindMin, Value: uint32(m)}
}

// Apply estimates the segment size for an available length without solving.
// Percentage and Ratio floor the scaled value and never exceed length.
func (c Constraint) Apply(length uint16) uint16 {
	l := uint64(length)
	switch c.Kind {
	case KindPercentage:
		return uint16(min(l, uint64(c.Value)*l/100))
	case KindRatio:
		return uint16(min(l, uint64(c.Value)*l/uint64(max(c.Den, 1))))
	case KindLength, KindMax:
		return uint16(min(l, uint64(c.Value)))
	case KindMin:
		return uint16(max(l, uint64(c.Value)))
	}
	return length
}

func (c Constraint) String() string {
	switch c.Kind {
	case KindPercentage:
		return fmt.Sprintf("Percentage(%d)", c.Value)
	case KindRatio:
		return fmt.Sprintf("Ratio(%d, %d)", c.Value, c.Den)
	case KindLength:
		return fmt.Sprintf("Length(%d)", c.Value)
	case KindMax:
		return fmt.Sprintf("Max(%d)", c.Value)
	case KindMin:
		return fmt.Sprintf("Min(%d)", c.Value)
	}
	return fmt.Sprintf("Constraint(%d)", c.Kind)
}

// ParseConstraint reads the compact form used by flags and config:
// "50%" percentage, "1:3" ratio, "10" length, "max:5", "min:2"
func ParseConstraint(s string) (Constraint, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	switch {
	case strings.HasSuffix(s, "%"):
		p, err := strconv.ParseUint(strings.TrimSuffix(s, "%"), 10, 16)
		if err != nil {
			return Constraint{}, fmt.Errorf("invalid percentage %q: %w", s, err)
		}
		return Percentage(uint16(p)), nil
	case strings.HasPrefix(s, "max:"):
		m, err := strconv.ParseUint(strings.TrimPrefix(s, "max:"), 10, 16)
		if err != nil {
			return Constraint{}, fmt.Errorf("invalid max %q: %w", s, err)
		}
		return Max(uint16(m)), nil
	case strings.HasPrefix(s, "min:"):
		m, err := strconv.ParseUint(strings.TrimPrefix(s, "min:"), 10, 16)
		if err != nil {
			return Constraint{}, fmt.Errorf("invalid min %q: %w", s, err)
		}
		return Min(uint16(m)), nil
	case strings.Contains(s, ":"):
		num, den, _ := strings.Cut(s, ":")
		n, err := strconv.ParseUint(num, 10, 32)
		if err != nil {
			return Constraint{}, fmt.Errorf("invalid ratio %q: %w", s, err)
		}
		d, err := strconv.ParseUint(den, 10, 32)
		if err != nil {
			return Constraint{}, fmt.Errorf("invalid ratio %q: %w", s, err)
		}
		return Ratio(uint32(n), uint32(d)), nil
	}

	l, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return Constraint{}, fmt.Errorf("invalid length %q: %w", s, err)
	}
	return Length(uint16(l)), nil
}

// ParseConstraints reads a comma-separated constraint list
func ParseConstraints(s string) ([]Constraint, error) {
	var out []Constraint
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		c, err := ParseConstraint(part)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
