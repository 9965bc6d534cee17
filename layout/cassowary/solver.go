package cassowary

import (
	"math"

	"github.com/pkg/errors"
)

var (
	ErrDuplicateConstraint     = errors.New("duplicate constraint")
	ErrUnsatisfiableConstraint = errors.New("unsatisfiable constraint")
	ErrUnknownConstraint       = errors.New("unknown constraint")
	// ErrUnbounded means the objective has no lower bound, which the
	// error-variable formulation rules out; seeing it is a solver bug.
	ErrUnbounded = errors.New("objective is unbounded")
)

// tag records the marker symbols a constraint introduced into the tableau
type tag struct {
	marker symbol
	other  symbol
}

// Solver maintains a solved tableau for the constraints added so far.
// Not safe for concurrent use.
type Solver struct {
	constraints map[*Constraint]tag
	vars        map[*Variable]symbol
	rows        map[symbol]*row
	objective   *row
	artificial  *row
	nextID      uint64
}

// NewSolver returns an empty solver
func NewSolver() *Solver {
	s := &Solver{}
	s.Reset()
	return s
}

// Reset drops every constraint and variable
func (s *Solver) Reset() {
	s.constraints = make(map[*Constraint]tag)
	s.vars = make(map[*Variable]symbol)
	s.rows = make(map[symbol]*row)
	s.objective = newRow(0)
	s.artificial = nil
	s.nextID = 0
}

// HasConstraint reports whether c is part of the system
func (s *Solver) HasConstraint(c *Constraint) bool {
	_, ok := s.constraints[c]
	return ok
}

// AddConstraints adds each constraint in order, stopping at the first error
func (s *Solver) AddConstraints(cs ...*Constraint) error {
	for _, c := range cs {
		if err := s.AddConstraint(c); err != nil {
			return err
		}
	}
	return nil
}

// AddConstraint adds c and re-optimizes.
// Returns ErrUnsatisfiableConstraint when a required constraint conflicts with the system.
func (s *Solver) AddConstraint(c *Constraint) error {
	if s.HasConstraint(c) {
		return errors.Wrapf(ErrDuplicateConstraint, "add %v", c)
	}

	var t tag
	r := s.createRow(c, &t)
	subject := chooseSubject(r, t)

	if !subject.valid() && allDummies(r) {
		if !nearZero(r.constant) {
			return errors.Wrapf(ErrUnsatisfiableConstraint, "add %v", c)
		}
		subject = t.marker
	}

	if !subject.valid() {
		ok, err := s.addWithArtificialVariable(r)
		if err != nil {
			return err
		}
		if !ok {
			return errors.Wrapf(ErrUnsatisfiableConstraint, "add %v", c)
		}
	} else {
		r.solveFor(subject)
		s.substitute(subject, r)
		s.rows[subject] = r
	}

	s.constraints[c] = t
	return s.optimize(s.objective)
}

// RemoveConstraint removes c and re-optimizes
func (s *Solver) RemoveConstraint(c *Constraint) error {
	t, ok := s.constraints[c]
	if !ok {
		return errors.Wrapf(ErrUnknownConstraint, "remove %v", c)
	}
	delete(s.constraints, c)
	s.removeConstraintEffects(c, t)

	if _, ok := s.rows[t.marker]; ok {
		delete(s.rows, t.marker)
	} else {
		leaving, ok := s.markerLeavingRow(t.marker)
		if !ok {
			return errors.Wrapf(ErrUnbounded, "remove %v: no leaving row for marker", c)
		}
		r := s.rows[leaving]
		delete(s.rows, leaving)
		r.solveForPair(leaving, t.marker)
		s.substitute(t.marker, r)
	}
	return s.optimize(s.objective)
}

// UpdateVariables writes the solution into every variable seen by the solver.
// Variables that are not basic in the tableau take the value 0.
func (s *Solver) UpdateVariables() {
	for v, sym := range s.vars {
		if r, ok := s.rows[sym]; ok {
			v.Value = r.constant
		} else {
			v.Value = 0
		}
	}
}

func (s *Solver) newSymbol(kind symbolKind) symbol {
	s.nextID++
	return symbol{id: s.nextID, kind: kind}
}

func (s *Solver) varSymbol(v *Variable) symbol {
	if sym, ok := s.vars[v]; ok {
		return sym
	}
	sym := s.newSymbol(externalSymbol)
	s.vars[v] = sym
	return sym
}

// createRow builds the tableau row for c with basic variables substituted out,
// adding slack, error and dummy symbols as the relation and strength require
func (s *Solver) createRow(c *Constraint, t *tag) *row {
	r := newRow(c.expr.Constant)
	for _, term := range c.expr.Terms {
		if nearZero(term.Coefficient) {
			continue
		}
		sym := s.varSymbol(term.Variable)
		if basic, ok := s.rows[sym]; ok {
			r.insertRow(basic, term.Coefficient)
		} else {
			r.insertSymbol(sym, term.Coefficient)
		}
	}

	switch c.op {
	case LE, GE:
		coef := 1.0
		if c.op == GE {
			coef = -1.0
		}
		slack := s.newSymbol(slackSymbol)
		t.marker = slack
		r.insertSymbol(slack, coef)
		if c.strength < Required {
			e := s.newSymbol(errorSymbol)
			t.other = e
			r.insertSymbol(e, -coef)
			s.objective.insertSymbol(e, c.strength)
		}
	case EQ:
		if c.strength < Required {
			plus := s.newSymbol(errorSymbol)
			minus := s.newSymbol(errorSymbol)
			t.marker = plus
			t.other = minus
			r.insertSymbol(plus, -1)
			r.insertSymbol(minus, 1)
			s.objective.insertSymbol(plus, c.strength)
			s.objective.insertSymbol(minus, c.strength)
		} else {
			dummy := s.newSymbol(dummySymbol)
			t.marker = dummy
			r.insertSymbol(dummy, 1)
		}
	}

	if r.constant < 0 {
		r.reverseSign()
	}
	return r
}

// chooseSubject picks the symbol the new row is solved for: any external
// symbol, else a restricted marker with a negative coefficient
func chooseSubject(r *row, t tag) symbol {
	for _, sym := range r.symbols() {
		if sym.kind == externalSymbol {
			return sym
		}
	}
	if t.marker.restricted() && r.coefficientFor(t.marker) < 0 {
		return t.marker
	}
	if t.other.restricted() && r.coefficientFor(t.other) < 0 {
		return t.other
	}
	return symbol{}
}

func allDummies(r *row) bool {
	for sym := range r.cells {
		if sym.kind != dummySymbol {
			return false
		}
	}
	return true
}

// addWithArtificialVariable enters r through a temporary slack and drives it
// to zero; a non-zero optimum means r cannot be satisfied
func (s *Solver) addWithArtificialVariable(r *row) (bool, error) {
	art := s.newSymbol(slackSymbol)
	s.rows[art] = r.clone()
	s.artificial = r.clone()

	if err := s.optimize(s.artificial); err != nil {
		s.artificial = nil
		return false, err
	}
	success := nearZero(s.artificial.constant)
	s.artificial = nil

	if basic, ok := s.rows[art]; ok {
		delete(s.rows, art)
		if len(basic.cells) == 0 {
			return success, nil
		}
		entering := anyPivotableSymbol(basic)
		if !entering.valid() {
			return false, nil
		}
		basic.solveForPair(art, entering)
		s.substitute(entering, basic)
		s.rows[entering] = basic
	}

	for _, basic := range s.rows {
		basic.remove(art)
	}
	s.objective.remove(art)
	return success, nil
}

// substitute replaces sym by r in every row and in the objectives
func (s *Solver) substitute(sym symbol, r *row) {
	for _, basic := range s.rows {
		basic.substitute(sym, r)
	}
	s.objective.substitute(sym, r)
	if s.artificial != nil {
		s.artificial.substitute(sym, r)
	}
}

// optimize pivots until no objective coefficient is negative
func (s *Solver) optimize(objective *row) error {
	for {
		entering := enteringSymbol(objective)
		if !entering.valid() {
			return nil
		}
		leaving, ok := s.leavingRow(entering)
		if !ok {
			return errors.WithStack(ErrUnbounded)
		}
		r := s.rows[leaving]
		delete(s.rows, leaving)
		r.solveForPair(leaving, entering)
		s.substitute(entering, r)
		s.rows[entering] = r
	}
}

// enteringSymbol returns the first non-dummy symbol with a negative objective coefficient
func enteringSymbol(objective *row) symbol {
	for _, sym := range objective.symbols() {
		if sym.kind != dummySymbol && objective.cells[sym] < 0 {
			return sym
		}
	}
	return symbol{}
}

// leavingRow applies the minimum ratio test over restricted rows
func (s *Solver) leavingRow(entering symbol) (symbol, bool) {
	ratio := math.MaxFloat64
	var found symbol
	for _, sym := range sortedSymbols(s.rows) {
		if sym.kind == externalSymbol {
			continue
		}
		r := s.rows[sym]
		coef := r.coefficientFor(entering)
		if coef < 0 {
			if rr := -r.constant / coef; rr < ratio {
				ratio = rr
				found = sym
			}
		}
	}
	return found, found.valid()
}

// markerLeavingRow finds the row to pivot out when removing a non-basic marker
func (s *Solver) markerLeavingRow(marker symbol) (symbol, bool) {
	r1, r2 := math.MaxFloat64, math.MaxFloat64
	var first, second, third symbol
	for _, sym := range sortedSymbols(s.rows) {
		r := s.rows[sym]
		c := r.coefficientFor(marker)
		if c == 0 {
			continue
		}
		switch {
		case sym.kind == externalSymbol:
			third = sym
		case c < 0:
			if rr := -r.constant / c; rr < r1 {
				r1 = rr
				first = sym
			}
		default:
			if rr := r.constant / c; rr < r2 {
				r2 = rr
				second = sym
			}
		}
	}
	switch {
	case first.valid():
		return first, true
	case second.valid():
		return second, true
	}
	return third, third.valid()
}

// removeConstraintEffects takes the constraint's error symbols out of the objective
func (s *Solver) removeConstraintEffects(c *Constraint, t tag) {
	if t.marker.kind == errorSymbol {
		s.removeMarkerEffects(t.marker, c.strength)
	}
	if t.other.kind == errorSymbol {
		s.removeMarkerEffects(t.other, c.strength)
	}
}

func (s *Solver) removeMarkerEffects(marker symbol, strength float64) {
	if r, ok := s.rows[marker]; ok {
		s.objective.insertRow(r, -strength)
	} else {
		s.objective.insertSymbol(marker, -strength)
	}
}

func anyPivotableSymbol(r *row) symbol {
	for _, sym := range r.symbols() {
		if sym.restricted() {
			return sym
		}
	}
	return symbol{}
}
