// Package cassowary implements an incremental simplex solver for systems of
// weighted linear equalities and inequalities.
//
// Constraints are added one at a time; each addition keeps the tableau in a
// solved state, so variable values can be read back at any point with
// UpdateVariables. Required constraints must hold; weaker ones are satisfied
// as far as their strength allows when they conflict.
package cassowary

import (
	"fmt"
	"strings"
)

// Variable is a solver unknown, identified by pointer
type Variable struct {
	Name  string
	Value float64
}

// NewVariable creates a named variable with value 0
func NewVariable(name string) *Variable {
	return &Variable{Name: name}
}

// Expr returns the expression 1*v
func (v *Variable) Expr() Expression {
	return Expression{Terms: []Term{{Variable: v, Coefficient: 1}}}
}

// Times returns the term c*v
func (v *Variable) Times(c float64) Term {
	return Term{Variable: v, Coefficient: c}
}

// Minus returns v - other
func (v *Variable) Minus(other *Variable) Expression {
	return v.Expr().Minus(other.Expr())
}

func (v *Variable) String() string {
	return v.Name
}

// Term is a coefficient applied to a variable
type Term struct {
	Variable    *Variable
	Coefficient float64
}

// Expression is a linear combination of terms plus a constant
type Expression struct {
	Terms    []Term
	Constant float64
}

// NewExpression builds constant + sum(terms)
func NewExpression(constant float64, terms ...Term) Expression {
	return Expression{Terms: append([]Term(nil), terms...), Constant: constant}
}

// Const returns an expression with no terms
func Const(c float64) Expression {
	return Expression{Constant: c}
}

// Plus returns e + other
func (e Expression) Plus(other Expression) Expression {
	terms := make([]Term, 0, len(e.Terms)+len(other.Terms))
	terms = append(terms, e.Terms...)
	terms = append(terms, other.Terms...)
	return Expression{Terms: terms, Constant: e.Constant + other.Constant}
}

// Minus returns e - other
func (e Expression) Minus(other Expression) Expression {
	return e.Plus(other.Times(-1))
}

// Times returns c*e
func (e Expression) Times(c float64) Expression {
	terms := make([]Term, len(e.Terms))
	for i, t := range e.Terms {
		terms[i] = Term{Variable: t.Variable, Coefficient: t.Coefficient * c}
	}
	return Expression{Terms: terms, Constant: e.Constant * c}
}

// Value evaluates the expression with the current variable values
func (e Expression) Value() float64 {
	v := e.Constant
	for _, t := range e.Terms {
		v += t.Coefficient * t.Variable.Value
	}
	return v
}

func (e Expression) String() string {
	var parts []string
	for _, t := range e.Terms {
		parts = append(parts, fmt.Sprintf("%g*%s", t.Coefficient, t.Variable))
	}
	parts = append(parts, fmt.Sprintf("%g", e.Constant))
	return strings.Join(parts, " + ")
}
