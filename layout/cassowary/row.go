package cassowary

import (
	"math"
	"slices"
)

const epsilon = 1e-8

func nearZero(v float64) bool {
	return math.Abs(v) < epsilon
}

type symbolKind uint8

const (
	invalidSymbol symbolKind = iota
	externalSymbol
	slackSymbol
	errorSymbol
	dummySymbol
)

// symbol is a tableau column; ids grow in creation order and drive every pivot choice
type symbol struct {
	id   uint64
	kind symbolKind
}

func (s symbol) valid() bool {
	return s.kind != invalidSymbol
}

func (s symbol) restricted() bool {
	return s.kind == slackSymbol || s.kind == errorSymbol
}

// row is `constant + sum(coef * symbol)`
type row struct {
	cells    map[symbol]float64
	constant float64
}

func newRow(constant float64) *row {
	return &row{cells: make(map[symbol]float64), constant: constant}
}

func (r *row) clone() *row {
	c := newRow(r.constant)
	for s, v := range r.cells {
		c.cells[s] = v
	}
	return c
}

// symbols returns the row's symbols in creation order
func (r *row) symbols() []symbol {
	return sortedSymbols(r.cells)
}

func (r *row) coefficientFor(s symbol) float64 {
	return r.cells[s]
}

// insertSymbol adds coef*s, dropping the cell if it cancels out
func (r *row) insertSymbol(s symbol, coef float64) {
	v := r.cells[s] + coef
	if nearZero(v) {
		delete(r.cells, s)
		return
	}
	r.cells[s] = v
}

// insertRow adds coef*other
func (r *row) insertRow(other *row, coef float64) {
	r.constant += other.constant * coef
	for s, v := range other.cells {
		r.insertSymbol(s, v*coef)
	}
}

func (r *row) remove(s symbol) {
	delete(r.cells, s)
}

func (r *row) reverseSign() {
	r.constant = -r.constant
	for s, v := range r.cells {
		r.cells[s] = -v
	}
}

// solveFor rewrites the row so that s is its subject and removes s from the cells
func (r *row) solveFor(s symbol) {
	coef := -1.0 / r.cells[s]
	delete(r.cells, s)
	r.constant *= coef
	for k, v := range r.cells {
		r.cells[k] = v * coef
	}
}

// solveForPair solves `lhs = row` for rhs
func (r *row) solveForPair(lhs, rhs symbol) {
	r.insertSymbol(lhs, -1)
	r.solveFor(rhs)
}

// substitute replaces s with the expression held by other
func (r *row) substitute(s symbol, other *row) {
	if coef, ok := r.cells[s]; ok {
		delete(r.cells, s)
		r.insertRow(other, coef)
	}
}

func sortedSymbols[V any](m map[symbol]V) []symbol {
	out := make([]symbol, 0, len(m))
	for s := range m {
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b symbol) int {
		switch {
		case a.id < b.id:
			return -1
		case a.id > b.id:
			return 1
		}
		return 0
	})
	return out
}
