package cassowary

import "fmt"

// Relation is the comparison operator of a constraint
type Relation uint8

const (
	LE Relation = iota
	GE
	EQ
)

func (r Relation) String() string {
	switch r {
	case LE:
		return "<="
	case GE:
		return ">="
	}
	return "=="
}

// Strength weights, each level dominating any realistic sum of the one below
var (
	Required = CreateStrength(1000, 1000, 1000, 1)
	Strong   = CreateStrength(1, 0, 0, 1)
	Medium   = CreateStrength(0, 1, 0, 1)
	Weak     = CreateStrength(0, 0, 1, 1)
)

// CreateStrength combines three tiers scaled by w, each tier clamped to [0, 1000]
func CreateStrength(a, b, c, w float64) float64 {
	return clamp(a*w, 0, 1000)*1_000_000 + clamp(b*w, 0, 1000)*1000 + clamp(c*w, 0, 1000)
}

// ClipStrength limits s to [0, Required]
func ClipStrength(s float64) float64 {
	return clamp(s, 0, Required)
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}

// Constraint is `expression op 0` with a strength.
// Constraints are identified by pointer; adding the same pointer twice is an error.
type Constraint struct {
	expr     Expression
	op       Relation
	strength float64
}

// NewConstraint creates lhs op rhs at strength
func NewConstraint(lhs Expression, op Relation, rhs Expression, strength float64) *Constraint {
	return &Constraint{
		expr:     lhs.Minus(rhs),
		op:       op,
		strength: ClipStrength(strength),
	}
}

// Expression returns the normalized lhs - rhs
func (c *Constraint) Expression() Expression {
	return c.expr
}

// Op returns the relation
func (c *Constraint) Op() Relation {
	return c.op
}

// Strength returns the clipped strength
func (c *Constraint) Strength() float64 {
	return c.strength
}

func (c *Constraint) String() string {
	return fmt.Sprintf("%s %s 0 | strength %g", c.expr, c.op, c.strength)
}
