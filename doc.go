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

// Package piecewise builds piecewise functions from sampled segments.
//
// A [Segment] is a function (usually a [Polynomial]) restricted to a
// domain and sampled at evenly spaced points.  A [Sampler] evaluates a
// list of segments, places the samples side by side on a shared x-axis
// and concatenates them into one combined [Curve]:
//
//	s, _ := piecewise.NewSampler(piecewise.WithConvention(piecewise.OffsetContiguous))
//	seg1, _ := piecewise.NewSegment([]float64{2, 0, -2}, -1, 1, 101)
//	seg2, _ := piecewise.NewSegment([]float64{4, 0}, 0, 1, 101)
//	res, _ := s.Sample(seg1, seg2)
//	// res.Combined.X runs from 0 to 3
//
// The combined curve is a plain concatenation.  If neighbouring segments
// do not agree at their common boundary, the curve jumps there.
//
// [Function] is the continuous counterpart: pieces are joined along a
// time-like axis, functions can be delayed and stacked, and the result
// can be generated at arbitrary points.
package piecewise
