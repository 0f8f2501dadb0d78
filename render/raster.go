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
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// edge is a line segment in device coordinates with y0 < y1.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dir    float32 // +1 if the input segment pointed down, -1 otherwise
}

// Rasterizer converts paths to per-pixel coverage values between 0
// (outside) and 1 (inside).  Create one instance and reuse it; internal
// buffers grow as needed but never shrink.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space.  Must be non-singular.
	CTM matrix.Matrix

	// Clip limits output to this device rectangle.  Coordinates must be
	// integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the polygon used to approximate it.
	Flatness float64

	// Width is the stroke width in device pixels.  Stroke geometry is
	// built after the CTM has been applied, so lines keep their width
	// under the anisotropic scaling used for data coordinates.
	Width float64

	// Cap is the style of the end points of open subpaths.
	Cap graphics.LineCapStyle

	// Join is the style of corners.
	Join graphics.LineJoinStyle

	// MiterLimit converts miter joins to bevels when the miter would
	// extend further than MiterLimit·Width/2 from the corner.
	MiterLimit float64

	// Dash lists alternating on and off lengths in device pixels.  Nil
	// means solid lines.
	Dash []float64

	// DashPhase is the distance into the dash pattern at which each
	// subpath starts.
	DashPhase float64

	cover       []float32
	area        []float32
	rowHasEdges []bool
	edges       []edge

	edgeXMin, edgeXMax float64
	edgeYMin, edgeYMax float64

	// flattened geometry, in device space
	lines  [][]vec.Vec2 // flattened subpaths
	closed []bool       // whether lines[i] was closed
	poly   []vec.Vec2   // scratch polygon
}

// NewRasterizer returns a Rasterizer for the given clip rectangle, with
// an identity CTM and PDF default values for the other fields.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	r := &Rasterizer{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is kept.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit
	r.Dash = nil
	r.DashPhase = 0

	r.edges = r.edges[:0]
	r.lines = r.lines[:0]
	r.closed = r.closed[:0]
	r.poly = r.poly[:0]
}

// toDevice applies the CTM to a point.
func (r *Rasterizer) toDevice(p vec.Vec2) vec.Vec2 {
	return apply(r.CTM, p)
}

// Fill fills the path using the nonzero winding rule.  Open subpaths
// are closed implicitly.  The emit callback receives coverage row by
// row; its slice argument is only valid during the call.
func (r *Rasterizer) Fill(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.flatten(p)
	r.edges = r.edges[:0]
	for _, line := range r.lines {
		r.addPolygon(line)
	}
	r.fillEdges(emit)
}

// flatten converts p into polylines in device space, one per subpath.
// Subpaths without a drawing operation are dropped.  Closed subpaths
// repeat their first point at the end and are marked in r.closed.
func (r *Rasterizer) flatten(p *path.Data) {
	r.lines = r.lines[:0]
	r.closed = r.closed[:0]

	var cur []vec.Vec2
	var start, last vec.Vec2
	finish := func(closed bool) {
		if len(cur) > 1 {
			r.lines = append(r.lines, cur)
			r.closed = append(r.closed, closed)
		}
		cur = nil
	}
	// begin starts a new subpath at the current point, if needed.
	begin := func() {
		if cur == nil {
			cur = []vec.Vec2{last}
			start = last
		}
	}
	pts := p.Coords
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			finish(false)
			last = r.toDevice(pts[0])
			pts = pts[1:]
			begin()
		case path.CmdLineTo:
			begin()
			last = r.toDevice(pts[0])
			pts = pts[1:]
			cur = append(cur, last)
		case path.CmdQuadTo:
			begin()
			p1, p2 := r.toDevice(pts[0]), r.toDevice(pts[1])
			pts = pts[2:]
			cur = r.flattenQuadratic(cur, last, p1, p2)
			last = p2
		case path.CmdCubeTo:
			begin()
			p1, p2, p3 := r.toDevice(pts[0]), r.toDevice(pts[1]), r.toDevice(pts[2])
			pts = pts[3:]
			cur = r.flattenCubic(cur, last, p1, p2, p3)
			last = p3
		case path.CmdClose:
			if cur != nil {
				if cur[len(cur)-1] != start {
					cur = append(cur, start)
				}
				last = start
				finish(true)
			}
		}
	}
	finish(false)
}

// flattenQuadratic appends the end points of a polygonal approximation
// of a quadratic Bézier curve.  All points are in device space.
func (r *Rasterizer) flattenQuadratic(out []vec.Vec2, p0, p1, p2 vec.Vec2) []vec.Vec2 {
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	n := 1
	if d := e.Length(); d > r.Flatness {
		n = int(math.Ceil(math.Sqrt(d / r.Flatness)))
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		out = append(out, p0.Mul(s*s).Add(p1.Mul(2*s*t)).Add(p2.Mul(t*t)))
	}
	return out
}

// flattenCubic appends the end points of a polygonal approximation of
// a cubic Bézier curve, using Wang's formula for the number of pieces.
func (r *Rasterizer) flattenCubic(out []vec.Vec2, p0, p1, p2, p3 vec.Vec2) []vec.Vec2 {
	d1 := p0.Sub(p1.Mul(2)).Add(p2)
	d2 := p1.Sub(p2.Mul(2)).Add(p3)
	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if k := math.Sqrt(3 * m / (4 * r.Flatness)); k > 1 {
			n = int(math.Ceil(k))
		}
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		out = append(out, p0.Mul(s*s*s).
			Add(p1.Mul(3*s*s*t)).
			Add(p2.Mul(3*s*t*t)).
			Add(p3.Mul(t*t*t)))
	}
	return out
}

// addPolygon adds the edges of the closed polygon through pts.
func (r *Rasterizer) addPolygon(pts []vec.Vec2) {
	if len(pts) < 2 {
		return
	}
	for i := 1; i < len(pts); i++ {
		r.addEdge(pts[i-1], pts[i])
	}
	r.addEdge(pts[len(pts)-1], pts[0])
}

// addEdge adds a device space edge.  Horizontal edges are dropped.
func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	if a == b {
		return
	}
	dy := b.Y - a.Y
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}

	e := edge{x0: a.X, y0: a.Y, x1: b.X, y1: b.Y, dir: 1}
	if dy < 0 {
		e = edge{x0: b.X, y0: b.Y, x1: a.X, y1: a.Y, dir: -1}
	}

	if len(r.edges) == 0 {
		r.edgeXMin, r.edgeXMax = min(e.x0, e.x1), max(e.x0, e.x1)
		r.edgeYMin, r.edgeYMax = e.y0, e.y1
	} else {
		r.edgeXMin = min(r.edgeXMin, e.x0, e.x1)
		r.edgeXMax = max(r.edgeXMax, e.x0, e.x1)
		r.edgeYMin = min(r.edgeYMin, e.y0)
		r.edgeYMax = max(r.edgeYMax, e.y1)
	}
	r.edges = append(r.edges, e)
}

// Coverage accumulation.
//
// For every pixel two values are collected:
//
//	cover: signed vertical extent of the edges crossing the pixel
//	area:  the same, weighted by the fraction of the pixel to the right
//	       of the crossing
//
// Scanning a row from the left, the coverage of pixel i is the sum of
// cover over all pixels left of i, plus area[i].  This is the signed
// area of the path inside the pixel; the nonzero rule clamps its
// absolute value to 1.

// fillEdges rasterizes the collected edges and emits the coverage.
func (r *Rasterizer) fillEdges(emit func(y, xMin int, coverage []float32)) {
	if len(r.edges) == 0 {
		return
	}

	xMin := max(int(math.Floor(r.edgeXMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.edgeXMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.edgeYMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.edgeYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}
	width := xMax - xMin
	height := yMax - yMin

	size := width * height
	r.cover = slices.Grow(r.cover[:0], size)[:size]
	r.area = slices.Grow(r.area[:0], size)[:size]
	clear(r.cover)
	clear(r.area)
	r.rowHasEdges = slices.Grow(r.rowHasEdges[:0], height)[:height]
	clear(r.rowHasEdges)

	for i := range r.edges {
		e := &r.edges[i]
		yTop := max(e.y0, float64(yMin))
		yBot := min(e.y1, float64(yMax))
		if yTop >= yBot {
			continue
		}
		dxdy := (e.x1 - e.x0) / (e.y1 - e.y0)
		for y := int(math.Floor(yTop)); float64(y) < yBot; y++ {
			ya := max(yTop, float64(y))
			yb := min(yBot, float64(y+1))
			if yb <= ya {
				continue
			}
			row := y - yMin
			off := row * width
			xa := e.x0 + (ya-e.y0)*dxdy
			xb := e.x0 + (yb-e.y0)*dxdy
			accumulateRow(r.cover[off:off+width], r.area[off:off+width],
				xa, xb, e.dir*float32(yb-ya), xMin)
			r.rowHasEdges[row] = true
		}
	}

	for row := range height {
		if !r.rowHasEdges[row] {
			continue
		}
		off := row * width
		coverage := r.cover[off : off+width]
		integrateNonZero(coverage, r.area[off:off+width])
		if trimmed, offset := trimZeros(coverage); trimmed != nil {
			emit(yMin+row, xMin+offset, trimmed)
		}
	}
}

// accumulateRow adds the contribution of an edge piece which lies within
// a single row.  The piece runs from x-coordinate xa to xb and has
// signed height h.  Pixel i of the row corresponds to device x-coordinate
// xMin+i.
func accumulateRow(cover, area []float32, xa, xb float64, h float32, xMin int) {
	width := len(cover)
	deposit := func(col int, v float32, xMid float64) {
		if col < xMin {
			cover[0] += v
			area[0] += v
			return
		}
		i := col - xMin
		if i >= width {
			return
		}
		cover[i] += v
		area[i] += v * float32(1-(xMid-float64(col)))
	}

	if xa > xb {
		xa, xb = xb, xa
	}
	first := int(math.Floor(xa))
	last := int(math.Floor(xb))
	if first == last {
		deposit(first, h, (xa+xb)/2)
		return
	}

	dx := xb - xa
	for col := first; col <= last; col++ {
		c0 := max(xa, float64(col))
		c1 := min(xb, float64(col+1))
		if c1 <= c0 {
			continue
		}
		deposit(col, h*float32((c1-c0)/dx), (c0+c1)/2)
	}
}

// integrateNonZero converts accumulated cover/area values into coverage
// using the nonzero winding rule.  The result overwrites cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// trimZeros returns the part of coverage between the first and last
// non-zero entry, together with its offset.  For all-zero input, nil is
// returned.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is the default curve tolerance in device pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit is the PDF default.
	defaultMiterLimit = 10.0

	// horizontalEdgeThreshold is the minimal vertical extent of an edge.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the minimal length of a stroked segment.
	zeroLengthThreshold = 1e-10
)
