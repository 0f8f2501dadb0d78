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

import "math"

// Curve is a sequence of sample points.  X and Y have the same length.
type Curve struct {
	X []float64
	Y []float64
}

// Len returns the number of points.
func (c Curve) Len() int {
	return len(c.X)
}

// Extent returns the smallest rectangle containing all points.  NaN
// values are ignored.  For an empty curve all four values are NaN.
func (c Curve) Extent() (xMin, xMax, yMin, yMax float64) {
	xMin, xMax = minMax(c.X)
	yMin, yMax = minMax(c.Y)
	return xMin, xMax, yMin, yMax
}

func minMax(v []float64) (lo, hi float64) {
	lo, hi = math.NaN(), math.NaN()
	for _, x := range v {
		if math.IsNaN(x) {
			continue
		}
		if !(x >= lo) {
			lo = x
		}
		if !(x <= hi) {
			hi = x
		}
	}
	return lo, hi
}

// Combine concatenates the curves in order.  The x values are used as
// they are: curves are expected to be placed on the shared axis
// already.  Nothing is interpolated across the joins.
//
// The result has exactly as many points as all curves together.
func Combine(curves ...Curve) (Curve, error) {
	if len(curves) == 0 {
		return Curve{}, ErrNoSegments
	}

	total := 0
	for i, c := range curves {
		if len(c.X) != len(c.Y) {
			return Curve{}, &DimensionMismatchError{Index: i, X: len(c.X), Y: len(c.Y)}
		}
		total += len(c.X)
	}

	out := Curve{
		X: make([]float64, 0, total),
		Y: make([]float64, 0, total),
	}
	for _, c := range curves {
		out.X = append(out.X, c.X...)
		out.Y = append(out.Y, c.Y...)
	}
	return out, nil
}
