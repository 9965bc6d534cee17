package layout

import (
	"math"
	"strconv"

	"github.com/pkg/errors"

	"github.com/lixenwraith/tilekit/geom"
	"github.com/lixenwraith/tilekit/layout/cassowary"
)

// segment is one output rectangle along the split axis
type segment struct {
	start *cassowary.Variable
	end   *cassowary.Variable
}

func (s segment) size() cassowary.Expression {
	return s.end.Minus(s.start)
}

// solve builds and solves the constraint system for one split.
// Segments stay inside the margin-shrunk area, touch without gaps and start at
// its leading edge; each layout constraint adds soft size objectives.
func solve(area geom.Geometry, l Layout) ([]geom.Geometry, error) {
	inner := area.Inner(l.margin)

	var areaStart, areaEnd float64
	if l.direction == Horizontal {
		areaStart, areaEnd = float64(inner.Left()), float64(inner.Right())
	} else {
		areaStart, areaEnd = float64(inner.Top()), float64(inner.Bottom())
	}
	available := areaEnd - areaStart

	segments := make([]segment, len(l.constraints))
	for i := range segments {
		n := strconv.Itoa(i)
		segments[i] = segment{
			start: cassowary.NewVariable("start" + n),
			end:   cassowary.NewVariable("end" + n),
		}
	}

	s := cassowary.NewSolver()
	req := cassowary.Required

	for _, seg := range segments {
		if err := s.AddConstraints(
			cassowary.NewConstraint(seg.start.Expr(), cassowary.GE, cassowary.Const(areaStart), req),
			cassowary.NewConstraint(seg.end.Expr(), cassowary.LE, cassowary.Const(areaEnd), req),
			cassowary.NewConstraint(seg.start.Expr(), cassowary.LE, seg.end.Expr(), req),
		); err != nil {
			return nil, errors.Wrap(err, "bound segment")
		}
	}
	for i := 1; i < len(segments); i++ {
		c := cassowary.NewConstraint(segments[i-1].end.Expr(), cassowary.EQ, segments[i].start.Expr(), req)
		if err := s.AddConstraint(c); err != nil {
			return nil, errors.Wrap(err, "join segments")
		}
	}
	if len(segments) > 0 {
		c := cassowary.NewConstraint(segments[0].start.Expr(), cassowary.EQ, cassowary.Const(areaStart), req)
		if err := s.AddConstraint(c); err != nil {
			return nil, errors.Wrap(err, "anchor first segment")
		}
	}

	for i, c := range l.constraints {
		size := segments[i].size()
		var cs []*cassowary.Constraint
		switch c.Kind {
		case KindPercentage:
			target := available * float64(c.Value) / 100
			cs = append(cs, cassowary.NewConstraint(size, cassowary.EQ, cassowary.Const(target), cassowary.Strong))
		case KindRatio:
			target := available * float64(c.Value) / float64(max(c.Den, 1))
			cs = append(cs, cassowary.NewConstraint(size, cassowary.EQ, cassowary.Const(target), cassowary.Strong))
		case KindLength:
			cs = append(cs, cassowary.NewConstraint(size, cassowary.EQ, cassowary.Const(float64(c.Value)), cassowary.Strong))
		case KindMax:
			m := cassowary.Const(float64(c.Value))
			cs = append(cs,
				cassowary.NewConstraint(size, cassowary.LE, m, cassowary.Strong),
				cassowary.NewConstraint(size, cassowary.EQ, m, cassowary.Medium),
			)
		case KindMin:
			m := cassowary.Const(float64(c.Value))
			cs = append(cs,
				cassowary.NewConstraint(size, cassowary.GE, m, cassowary.Strong),
				cassowary.NewConstraint(size, cassowary.EQ, m, cassowary.Medium),
			)
		}
		if err := s.AddConstraints(cs...); err != nil {
			return nil, errors.Wrapf(err, "apply %v", c)
		}
	}

	s.UpdateVariables()

	rects := make([]geom.Geometry, len(segments))
	var prevEnd uint16
	for i, seg := range segments {
		start := roundCoord(seg.start.Value)
		if i > 0 {
			// Joined segments share an edge; reuse it so float noise cannot open a gap
			start = prevEnd
		}
		end := max(roundCoord(seg.end.Value), start)
		prevEnd = end
		size := end - start
		if l.direction == Horizontal {
			rects[i] = geom.Geometry{X: start, Y: inner.Y, Cols: size, Rows: inner.Rows}
		} else {
			rects[i] = geom.Geometry{X: inner.X, Y: start, Cols: inner.Cols, Rows: size}
		}
	}
	return rects, nil
}

// roundCoord rounds half away from zero and clamps to the coordinate range
func roundCoord(v float64) uint16 {
	r := math.Round(v)
	if r <= 0 {
		return 0
	}
	if r >= math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(r)
}
