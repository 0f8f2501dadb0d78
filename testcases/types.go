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

// Package testcases holds a catalogue of named piecewise scenarios.  The
// scenarios are used by the tests of several packages and by the export
// command, which writes the sampled curves to CSV files.
package testcases

import (
	"fmt"

	"seehuhn.de/go/piecewise"
)

// Case defines a single scenario.
type Case struct {
	Name string    // lowercase a-z and _ only
	Op   Operation // how the curve is produced
}

// Operation describes how the curve of a scenario is produced.
type Operation interface {
	isOperation()
}

// SegmentSpec describes a [piecewise.Segment].  Zero values of Offset
// and Duration mean that the option is not set.
type SegmentSpec struct {
	Shape      piecewise.Shape
	Start, End float64
	Samples    int
	Offset     float64
	Duration   float64
	Reverse    bool
}

// Sampled places segments on a shared axis using a [piecewise.Sampler].
type Sampled struct {
	Convention piecewise.Convention
	Origin     float64
	Segments   []SegmentSpec
}

func (Sampled) isOperation() {}

// Generated samples a [piecewise.Function] at a fixed rate.
type Generated struct {
	Rate    float64 // samples per unit, ignored for stacked functions
	Delay   float64
	Pieces  []piecewise.Piece
	Stacked []Generated
}

func (Generated) isOperation() {}

// Curve computes the combined curve of the scenario.
func (c Case) Curve() (piecewise.Curve, error) {
	switch op := c.Op.(type) {
	case Sampled:
		res, err := op.Sample()
		if err != nil {
			return piecewise.Curve{}, err
		}
		return res.Combined, nil
	case Generated:
		f, err := op.Function()
		if err != nil {
			return piecewise.Curve{}, err
		}
		return f.Sample(op.Rate)
	default:
		return piecewise.Curve{}, fmt.Errorf("testcases: unknown operation %T", c.Op)
	}
}

// Segment constructs the segment.
func (s SegmentSpec) Segment() (piecewise.Segment, error) {
	var opts []piecewise.SegmentOption
	if s.Offset != 0 {
		opts = append(opts, piecewise.WithOffset(s.Offset))
	}
	if s.Duration != 0 {
		opts = append(opts, piecewise.WithDuration(s.Duration))
	}
	if s.Reverse {
		opts = append(opts, piecewise.WithReverse())
	}
	return piecewise.NewShapeSegment(s.Shape, s.Start, s.End, s.Samples, opts...)
}

// Sample evaluates and places all segments.
func (op Sampled) Sample() (*piecewise.Result, error) {
	s, err := piecewise.NewSampler(
		piecewise.WithConvention(op.Convention),
		piecewise.WithOrigin(op.Origin),
	)
	if err != nil {
		return nil, err
	}
	segs := make([]piecewise.Segment, len(op.Segments))
	for i, spec := range op.Segments {
		segs[i], err = spec.Segment()
		if err != nil {
			return nil, &piecewise.SegmentError{Index: i, Err: err}
		}
	}
	return s.Sample(segs...)
}

// Function constructs the function, including all stacked functions.
func (op Generated) Function() (*piecewise.Function, error) {
	f := piecewise.NewFunction(op.Delay)
	for _, p := range op.Pieces {
		if err := f.AddPiece(p); err != nil {
			return nil, err
		}
	}
	for _, child := range op.Stacked {
		g, err := child.Function()
		if err != nil {
			return nil, err
		}
		if err := f.AddFunction(g); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// poly is a helper to write polynomial literals compactly.
func poly(coefficients ...float64) piecewise.Polynomial {
	return piecewise.Polynomial(coefficients)
}
