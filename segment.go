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
	"slices"

	"seehuhn.de/go/piecewise/internal/options"
)

// Segment is one piece of a piecewise function: a shape restricted to
// the domain [DomainStart, DomainEnd] and sampled at SampleCount evenly
// spaced points.
//
// Segments are immutable.  Use [NewSegment] or [NewShapeSegment] to
// create them.
type Segment struct {
	shape    Shape
	start    float64
	end      float64
	n        int
	offset   float64
	duration float64
	reverse  bool
}

// SegmentOption configures optional properties of a [Segment].
type SegmentOption = options.Option[*Segment]

// WithOffset sets the horizontal shift used by the [OffsetExplicit]
// convention.
func WithOffset(dx float64) SegmentOption {
	return options.New(func(s *Segment) error {
		if math.IsNaN(dx) || math.IsInf(dx, 0) {
			return ErrInvalidOffset
		}
		s.offset = dx
		return nil
	})
}

// WithDuration sets the width the segment occupies once placed on the
// shared axis.  The samples are rescaled linearly to this width.  Zero,
// the default, keeps the width of the domain.
func WithDuration(d float64) SegmentOption {
	return options.New(func(s *Segment) error {
		if !(d >= 0) || math.IsInf(d, 0) {
			return ErrInvalidDuration
		}
		s.duration = d
		return nil
	})
}

// WithReverse makes the segment trace its shape from DomainEnd back to
// DomainStart.  The x samples still increase; only the y values are
// mirrored.
func WithReverse() SegmentOption {
	return options.NoError(func(s *Segment) {
		s.reverse = true
	})
}

// NewSegment returns a polynomial segment.  The coefficients are given
// highest degree first and are copied.
func NewSegment(coefficients []float64, start, end float64, n int, opts ...SegmentOption) (Segment, error) {
	if len(coefficients) == 0 {
		return Segment{}, ErrEmptyCoefficients
	}
	return NewShapeSegment(Polynomial(slices.Clone(coefficients)), start, end, n, opts...)
}

// NewShapeSegment returns a segment for an arbitrary shape.
func NewShapeSegment(shape Shape, start, end float64, n int, opts ...SegmentOption) (Segment, error) {
	s := Segment{
		shape: shape,
		start: start,
		end:   end,
		n:     n,
	}
	if err := options.Apply(&s, opts...); err != nil {
		return Segment{}, err
	}
	if err := s.validate(); err != nil {
		return Segment{}, err
	}
	return s, nil
}

func (s Segment) validate() error {
	switch p := s.shape.(type) {
	case nil:
		return ErrEmptyCoefficients
	case Polynomial:
		if len(p) == 0 {
			return ErrEmptyCoefficients
		}
	}
	if !(s.start < s.end) || math.IsInf(s.start, 0) || math.IsInf(s.end, 0) {
		return ErrInvalidDomain
	}
	if s.n < 2 {
		return ErrInvalidSampleCount
	}
	return nil
}

// Shape returns the function sampled by the segment.
func (s Segment) Shape() Shape { return s.shape }

// Coefficients returns a copy of the polynomial coefficients, highest
// degree first, or nil if the segment is not a polynomial.
func (s Segment) Coefficients() []float64 {
	if p, ok := s.shape.(Polynomial); ok {
		return slices.Clone(p)
	}
	return nil
}

// DomainStart returns the left end of the domain.
func (s Segment) DomainStart() float64 { return s.start }

// DomainEnd returns the right end of the domain.
func (s Segment) DomainEnd() float64 { return s.end }

// SampleCount returns the number of samples.
func (s Segment) SampleCount() int { return s.n }

// XOffset returns the horizontal shift set by [WithOffset].
func (s Segment) XOffset() float64 { return s.offset }

// Duration returns the value set by [WithDuration].
func (s Segment) Duration() float64 { return s.duration }

// Reversed reports whether the segment was created with [WithReverse].
func (s Segment) Reversed() bool { return s.reverse }

// Width returns the width of the segment on the shared axis.
func (s Segment) Width() float64 {
	if s.duration > 0 {
		return s.duration
	}
	return s.end - s.start
}

// Evaluate samples the segment.  The x values are SampleCount evenly
// spaced points of the domain, including both end points exactly.  No
// offset is applied.
func (s Segment) Evaluate() (Curve, error) {
	if err := s.validate(); err != nil {
		return Curve{}, err
	}

	x := linspace(s.start, s.end, s.n)
	y := make([]float64, s.n)
	for i, xi := range x {
		if s.reverse {
			xi = s.end - (xi - s.start)
		}
		y[i] = s.shape.Eval(xi)
	}
	return Curve{X: x, Y: y}, nil
}

// linspace returns n >= 2 evenly spaced values from a to b.  The first
// and last values are exactly a and b.
func linspace(a, b float64, n int) []float64 {
	x := make([]float64, n)
	step := (b - a) / float64(n-1)
	for i := range x {
		x[i] = a + float64(i)*step
	}
	x[n-1] = b
	return x
}
