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

// Shape is a real function of one variable.
type Shape interface {
	Eval(x float64) float64
}

// Polynomial holds polynomial coefficients, highest degree first.
// The polynomial [2, 0, -2] is 2x²-2.
type Polynomial []float64

// Eval evaluates the polynomial at x using Horner's scheme.
func (p Polynomial) Eval(x float64) float64 {
	var y float64
	for _, c := range p {
		y = y*x + c
	}
	return y
}

// Degree returns the degree of p, ignoring leading zero coefficients.
// The zero polynomial has degree -1.
func (p Polynomial) Degree() int {
	for i, c := range p {
		if c != 0 {
			return len(p) - 1 - i
		}
	}
	return -1
}

// Bump is the smooth bump function
//
//	Scale·exp(x²/(x²-1)) + Offset
//
// on the open interval (-1, 1).  Outside this interval the value is 0.
// The maximum, Scale+Offset, is attained at x = 0.
type Bump struct {
	Scale  float64
	Offset float64
}

// Eval evaluates the bump function at x.
func (b Bump) Eval(x float64) float64 {
	if x <= -1 || x >= 1 {
		return 0
	}
	x2 := x * x
	return b.Scale*math.Exp(x2/(x2-1)) + b.Offset
}
