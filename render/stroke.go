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

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke renders the outline of the path using Width, Cap, Join,
// MiterLimit, Dash and DashPhase.  The emit callback receives coverage
// row by row; its slice argument is only valid during the call.
//
// The outline is assembled from one polygon per segment, join and cap.
// All polygons have the same orientation and are filled together with
// the nonzero rule, so that overlaps are painted once.
func (r *Rasterizer) Stroke(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.edges = r.edges[:0]
	if !(r.Width > 0) {
		return
	}

	r.flatten(p)
	dash := r.dashPattern()
	for i, line := range r.lines {
		if dash == nil {
			r.strokeLine(line, r.closed[i])
			continue
		}
		for _, piece := range r.applyDash(line, dash) {
			r.strokeLine(piece, false)
		}
	}
	r.fillEdges(emit)
}

// strokeLine adds the outline of one polyline to the edge list.
func (r *Rasterizer) strokeLine(pts []vec.Vec2, closed bool) {
	pts = dedupe(pts)
	h := r.Width / 2

	if len(pts) == 1 {
		// zero length subpath: only round caps have a well-defined shape
		if r.Cap == graphics.LineCapRound {
			r.addCircle(pts[0], h)
		}
		return
	}

	for i := 1; i < len(pts); i++ {
		r.addSegment(pts[i-1], pts[i], h)
	}
	for i := 1; i < len(pts)-1; i++ {
		r.addJoin(pts[i-1], pts[i], pts[i+1], h)
	}

	n := len(pts)
	if closed && n > 2 {
		r.addJoin(pts[n-2], pts[0], pts[1], h)
		return
	}
	r.addCap(pts[0], unit(pts[0].Sub(pts[1])), h)
	r.addCap(pts[n-1], unit(pts[n-1].Sub(pts[n-2])), h)
}

// dedupe removes consecutive points closer than zeroLengthThreshold.
// The slice is modified in place.
func dedupe(pts []vec.Vec2) []vec.Vec2 {
	if len(pts) == 0 {
		return pts
	}
	out := pts[:1]
	for _, p := range pts[1:] {
		if p.Sub(out[len(out)-1]).Length() >= zeroLengthThreshold {
			out = append(out, p)
		}
	}
	return out
}

// unit returns v scaled to length 1.
func unit(v vec.Vec2) vec.Vec2 {
	return v.Mul(1 / v.Length())
}

// normal returns the unit normal 90° counter-clockwise from the unit
// vector t.
func normal(t vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -t.Y, Y: t.X}
}

// addSegment adds the rectangle covering the segment a→b.
func (r *Rasterizer) addSegment(a, b vec.Vec2, h float64) {
	n := normal(unit(b.Sub(a))).Mul(h)
	r.addOriented(a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
}

// addJoin adds the join geometry at p1, between the segments p0→p1 and
// p1→p2.
func (r *Rasterizer) addJoin(p0, p1, p2 vec.Vec2, h float64) {
	t1 := unit(p1.Sub(p0))
	t2 := unit(p2.Sub(p1))
	cross := t1.X*t2.Y - t1.Y*t2.X
	cos := t1.Dot(t2)
	if math.Abs(cross) < collinearityThreshold && cos > 0 {
		return
	}

	// the join goes on the outer side of the turn
	side := h
	if cross > 0 {
		side = -h
	}
	n1 := normal(t1)
	n2 := normal(t2)
	a := p1.Add(n1.Mul(side))
	b := p1.Add(n2.Mul(side))

	switch r.Join {
	case graphics.LineJoinRound:
		r.addCircle(p1, h)
	case graphics.LineJoinMiter:
		if cos > cuspCosineThreshold && math.Sqrt(2/(1+cos)) <= r.MiterLimit {
			tip := p1.Add(n1.Add(n2).Mul(side / (1 + cos)))
			r.addOriented(p1, a, tip, b)
			return
		}
		r.addOriented(p1, a, b)
	default:
		r.addOriented(p1, a, b)
	}
}

// addCap adds the cap at the end point p of an open line.  dir is the
// unit vector pointing away from the line.
func (r *Rasterizer) addCap(p, dir vec.Vec2, h float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addCircle(p, h)
	case graphics.LineCapSquare:
		n := normal(dir).Mul(h)
		d := dir.Mul(h)
		r.addOriented(p.Add(n), p.Add(n).Add(d), p.Sub(n).Add(d), p.Sub(n))
	}
}

// addCircle adds a polygon approximating the circle of radius h around
// c, to within r.Flatness.
func (r *Rasterizer) addCircle(c vec.Vec2, h float64) {
	step := math.Pi / 2
	if h > r.Flatness {
		step = 2 * math.Acos(1-r.Flatness/h)
	}
	n := max(8, int(math.Ceil(2*math.Pi/step)))

	r.poly = r.poly[:0]
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		r.poly = append(r.poly, vec.Vec2{
			X: c.X + h*math.Cos(phi),
			Y: c.Y + h*math.Sin(phi),
		})
	}
	r.addOriented(r.poly...)
}

// addOriented adds the closed polygon through pts, reversing it if
// needed so that all stroke polygons have negative signed area.
// Polygons with zero area are ignored.
func (r *Rasterizer) addOriented(pts ...vec.Vec2) {
	var a float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		a += p.X*q.Y - q.X*p.Y
	}
	switch {
	case a < 0:
		r.addPolygon(pts)
	case a > 0:
		for i := len(pts) - 1; i > 0; i-- {
			r.addEdge(pts[i], pts[i-1])
		}
		r.addEdge(pts[0], pts[len(pts)-1])
	}
}

// dashPattern returns the dash pattern to use, or nil for solid lines.
// Patterns of odd length are repeated once, so that on and off lengths
// alternate.
func (r *Rasterizer) dashPattern() []float64 {
	if len(r.Dash) == 0 {
		return nil
	}
	var total float64
	for _, d := range r.Dash {
		if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return nil
		}
		total += d
	}
	if total <= 0 {
		return nil
	}
	if len(r.Dash)%2 == 1 {
		return append(append([]float64(nil), r.Dash...), r.Dash...)
	}
	return r.Dash
}

// applyDash cuts a polyline into its "on" pieces.
func (r *Rasterizer) applyDash(pts []vec.Vec2, pattern []float64) [][]vec.Vec2 {
	var total float64
	for _, d := range pattern {
		total += d
	}

	phase := math.Mod(r.DashPhase, total)
	if phase < 0 {
		phase += total
	}
	idx := 0
	on := true
	for phase >= pattern[idx] {
		phase -= pattern[idx]
		idx = (idx + 1) % len(pattern)
		on = !on
	}
	rem := pattern[idx] - phase

	var out [][]vec.Vec2
	var cur []vec.Vec2
	if on {
		cur = []vec.Vec2{pts[0]}
	}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		d := b.Sub(a)
		segLen := d.Length()
		pos := 0.0
		for segLen-pos > rem {
			pos += rem
			q := a.Add(d.Mul(pos / segLen))
			if on {
				out = append(out, append(cur, q))
				cur = nil
			} else {
				cur = []vec.Vec2{q}
			}
			on = !on
			idx = (idx + 1) % len(pattern)
			rem = pattern[idx]
		}
		rem -= segLen - pos
		if on {
			cur = append(cur, b)
		}
	}
	if on && len(cur) > 1 {
		out = append(out, cur)
	}
	return out
}

const (
	// collinearityThreshold is the largest |sin| between two segments
	// which still counts as collinear.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold detects segments which double back on
	// themselves; these get a bevel instead of a miter.
	cuspCosineThreshold = -0.9999
)
