// seehuhn.de/go/piecewise - sampled piecewise functions
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package piecewise

import (
	"math"
)

// Piece is one part of a [Function].  The piece is active for Duration
// units of the function's axis, during which it traces Shape from From
// to To (or from To to From, if Reverse is set).
type Piece struct {
	Shape    Shape
	From, To float64
	Duration float64
	Reverse  bool
}

func (p Piece) validate() error {
	if p.Shape == nil {
		return ErrEmptyCoefficients
	}
	if poly, ok := p.Shape.(Polynomial); ok && len(poly) == 0 {
		return ErrEmptyCoefficients
	}
	if !(p.From < p.To) || math.IsInf(p.From, 0) || math.IsInf(p.To, 0) {
		return ErrInvalidDomain
	}
	if !(p.Duration > 0) || math.IsInf(p.Duration, 0) {
		return ErrInvalidDuration
	}
	return nil
}

// at evaluates the piece at t, for 0 <= t < p.Duration.
func (p Piece) at(t float64) float64 {
	u := t / p.Duration * (p.To - p.From)
	if p.Reverse {
		return p.Shape.Eval(p.To - u)
	}
	return p.Shape.Eval(p.From + u)
}

// Function is a piecewise function on a continuous axis.  Its pieces
// follow each other, starting at Delay.  Values of stacked functions,
// added with [Function.AddFunction], are summed with the function's own
// value.
//
// Before Delay, and between the end of the pieces and the end of the
// function, the function's own contribution is 0.
type Function struct {
	Delay float64

	pieces   []Piece
	children []*Function
}

// NewFunction returns an empty function whose first piece starts at
// delay.
func NewFunction(delay float64) *Function {
	return &Function{Delay: delay}
}

// AddPiece appends a piece.
func (f *Function) AddPiece(p Piece) error {
	if err := p.validate(); err != nil {
		return &SegmentError{Index: len(f.pieces), Err: err}
	}
	f.pieces = append(f.pieces, p)
	return nil
}

// AddSegment appends a piece which traces the segment's shape over its
// domain.  The width of the segment on the shared axis (see
// [Segment.Width]) becomes the duration of the piece.
func (f *Function) AddSegment(seg Segment) error {
	if err := seg.validate(); err != nil {
		return &SegmentError{Index: len(f.pieces), Err: err}
	}
	return f.AddPiece(Piece{
		Shape:    seg.shape,
		From:     seg.start,
		To:       seg.end,
		Duration: seg.Width(),
		Reverse:  seg.reverse,
	})
}

// AddFunction stacks g on top of f.  g is evaluated on the same axis as
// f; the delay of f does not apply to g.  If f is g, or is already
// stacked somewhere below g, [ErrCyclicFunction] is returned and f is
// left unchanged.
func (f *Function) AddFunction(g *Function) error {
	if g.reaches(f) {
		return ErrCyclicFunction
	}
	f.children = append(f.children, g)
	return nil
}

// reaches reports whether target is f or one of the functions stacked
// below f.
func (f *Function) reaches(target *Function) bool {
	if f == target {
		return true
	}
	for _, child := range f.children {
		if child.reaches(target) {
			return true
		}
	}
	return false
}

// Duration returns the end of the function: the delay plus the duration
// of all pieces, or the end of the longest stacked function, whichever
// is larger.
func (f *Function) Duration() float64 {
	d := f.Delay
	for _, p := range f.pieces {
		d += p.Duration
	}
	for _, g := range f.children {
		d = max(d, g.Duration())
	}
	return d
}

// Generate evaluates f at x.  The second return value is false if x is
// at or beyond the end of the function.
func (f *Function) Generate(x float64) (float64, bool) {
	if x >= f.Duration() {
		return 0, false
	}

	var y float64
	t := x - f.Delay
	for _, p := range f.pieces {
		if t >= 0 && t < p.Duration {
			y = p.at(t)
			break
		}
		t -= p.Duration
	}
	for _, g := range f.children {
		if v, ok := g.Generate(x); ok {
			y += v
		}
	}
	return y, true
}

// Sample evaluates f at rate points per unit, starting at 0.  The
// result has floor(Duration·rate) points.
func (f *Function) Sample(rate float64) (Curve, error) {
	if !(rate > 0) || math.IsInf(rate, 0) {
		return Curve{}, ErrInvalidRate
	}
	n := int(math.Floor(f.Duration() * rate))
	if n < 1 {
		return Curve{}, ErrInvalidSampleCount
	}

	c := Curve{
		X: make([]float64, n),
		Y: make([]float64, n),
	}
	for i := range n {
		x := float64(i) / rate
		c.X[i] = x
		c.Y[i], _ = f.Generate(x)
	}
	return c, nil
}
