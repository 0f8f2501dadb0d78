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

package render

import "seehuhn.de/go/geom/vec"

// clipLine clips the segment a→b to the rectangle box using the
// Liang-Barsky algorithm.  The result is false if nothing remains.
func clipLine(a, b vec.Vec2, xMin, yMin, xMax, yMax float64) (vec.Vec2, vec.Vec2, bool) {
	d := b.Sub(a)
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-d.X, a.X - xMin},
		{d.X, xMax - a.X},
		{-d.Y, a.Y - yMin},
		{d.Y, yMax - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return a, b, false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return a, b, false
			}
			t1 = min(t1, t)
		}
	}
	return a.Add(d.Mul(t0)), a.Add(d.Mul(t1)), true
}

// clipPolyline clips a polyline to a rectangle and returns the visible
// pieces.  Consecutive visible segments are merged.
func clipPolyline(pts []vec.Vec2, xMin, yMin, xMax, yMax float64) [][]vec.Vec2 {
	var res [][]vec.Vec2
	var cur []vec.Vec2
	for i := 1; i < len(pts); i++ {
		a, b, ok := clipLine(pts[i-1], pts[i], xMin, yMin, xMax, yMax)
		if !ok {
			if len(cur) > 1 {
				res = append(res, cur)
			}
			cur = nil
			continue
		}
		if cur != nil && cur[len(cur)-1] == a {
			cur = append(cur, b)
		} else {
			if len(cur) > 1 {
				res = append(res, cur)
			}
			cur = []vec.Vec2{a, b}
		}
		if b != pts[i] {
			res = append(res, cur)
			cur = nil
		}
	}
	if len(cur) > 1 {
		res = append(res, cur)
	}
	return res
}
