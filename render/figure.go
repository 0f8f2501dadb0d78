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
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/piecewise/internal/logger"
)

// Figure describes a chart made of panels on a regular grid.  All
// information needed for drawing is held here; nothing is taken from
// global state.
type Figure struct {
	// Width and Height give the size of the figure in pixels (or PDF
	// points).
	Width, Height int

	// Title is drawn centred above the grid.  If empty, no space is
	// reserved.
	Title string

	// Rows and Cols give the grid size.
	Rows, Cols int

	// Margin is the space around the grid, Gap the space between grid
	// cells, both in pixels.
	Margin, Gap int

	// Panels are drawn in order.
	Panels []Panel
}

// Span is a rectangular block of grid cells.
type Span struct {
	Row, Col   int // top left cell, zero based
	Rows, Cols int // number of cells, treated as 1 if zero
}

// Limits is a closed interval on an axis.
type Limits struct {
	Min, Max float64
}

// Panel is a single plot within a figure.
type Panel struct {
	Cell Span

	XLim, YLim Limits

	// Grid enables grid lines at the tick positions.
	Grid bool

	// Tag is drawn in the centre of the panel.
	Tag string

	Series []Series
	Labels []Label
}

// Series is a polyline in data coordinates.  Points with a NaN
// coordinate break the line.
type Series struct {
	X, Y []float64

	// Color defaults to DefaultColor if zero.
	Color color.NRGBA

	// Width is the line width in pixels; 1.5 if zero.
	Width float64
}

// Label is a text annotation, centred on a point in data coordinates.
type Label struct {
	X, Y float64
	Text string
}

// DefaultColor is the line colour used for series without a colour.
var DefaultColor = color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}

var (
	background = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	foreground = color.NRGBA{A: 0xff}
	gridColor  = color.NRGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff}
)

const (
	titleHeight  = 24
	defaultWidth = 1.5
)

// Validate checks the figure for errors which would prevent drawing.
func (f *Figure) Validate() error {
	if f.Width <= 0 || f.Height <= 0 || f.Rows <= 0 || f.Cols <= 0 || len(f.Panels) == 0 {
		return ErrEmptyFigure
	}
	for i := range f.Panels {
		if err := f.Panels[i].validate(f.Rows, f.Cols); err != nil {
			return &PanelError{Index: i, Err: err}
		}
	}
	return nil
}

func (p *Panel) validate(rows, cols int) error {
	s := p.Cell.normalized()
	if s.Row < 0 || s.Col < 0 || s.Rows < 0 || s.Cols < 0 ||
		s.Row+s.Rows > rows || s.Col+s.Cols > cols {
		return ErrBadSpan
	}
	if !p.XLim.valid() || !p.YLim.valid() {
		return ErrBadLimits
	}
	for j, s := range p.Series {
		if len(s.X) != len(s.Y) {
			return fmt.Errorf("series %d: %w", j, ErrLengthMismatch)
		}
	}
	return nil
}

func (l Limits) valid() bool {
	return l.Min < l.Max && !math.IsInf(l.Min, 0) && !math.IsInf(l.Max, 0)
}

func (s Span) normalized() Span {
	if s.Rows == 0 {
		s.Rows = 1
	}
	if s.Cols == 0 {
		s.Cols = 1
	}
	return s
}

// layout returns the pixel rectangle of every panel.
func (f *Figure) layout() []image.Rectangle {
	top := f.Margin
	if f.Title != "" {
		top += titleHeight
	}
	left := f.Margin
	cellW := float64(f.Width-2*f.Margin-(f.Cols-1)*f.Gap) / float64(f.Cols)
	cellH := float64(f.Height-top-f.Margin-(f.Rows-1)*f.Gap) / float64(f.Rows)

	rects := make([]image.Rectangle, len(f.Panels))
	for i, p := range f.Panels {
		s := p.Cell.normalized()
		x0 := float64(left) + float64(s.Col)*(cellW+float64(f.Gap))
		y0 := float64(top) + float64(s.Row)*(cellH+float64(f.Gap))
		x1 := x0 + float64(s.Cols)*cellW + float64(s.Cols-1)*float64(f.Gap)
		y1 := y0 + float64(s.Rows)*cellH + float64(s.Rows-1)*float64(f.Gap)
		rects[i] = image.Rect(
			int(math.Round(x0)), int(math.Round(y0)),
			int(math.Round(x1)), int(math.Round(y1)))
	}
	return rects
}

// panelCTM maps the data coordinates of p to the pixel rectangle box.
func panelCTM(p *Panel, box image.Rectangle) matrix.Matrix {
	sx := float64(box.Dx()) / (p.XLim.Max - p.XLim.Min)
	sy := float64(box.Dy()) / (p.YLim.Max - p.YLim.Min)
	return matrix.Matrix{
		sx, 0,
		0, -sy,
		float64(box.Min.X) - p.XLim.Min*sx, float64(box.Max.Y) + p.YLim.Min*sy,
	}
}

func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

func toRect(b image.Rectangle) rect.Rect {
	return rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
}

// Render draws the figure into a new image.
func Render(f *Figure) (*image.RGBA, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	c := NewCanvas(f.Width, f.Height, background)
	r := NewRasterizer(toRect(c.Img.Bounds()))

	if f.Title != "" {
		drawText(c.Img, f.Title, f.Width/2, f.Margin+titleHeight/2, AlignCenter, foreground)
	}

	boxes := f.layout()
	for i := range f.Panels {
		drawPanel(c, r, &f.Panels[i], boxes[i])
	}

	logger.Get().Debug("render: figure drawn",
		"width", f.Width, "height", f.Height, "panels", len(f.Panels))
	return c.Img, nil
}

// drawPanel draws grid, series, labels and frame of one panel.
func drawPanel(c *Canvas, r *Rasterizer, p *Panel, box image.Rectangle) {
	ctm := panelCTM(p, box)

	if p.Grid {
		r.Reset(toRect(box))
		r.Width = 1
		r.Dash = []float64{2, 2}
		grid := &path.Data{}
		for _, x := range ticks(p.XLim.Min, p.XLim.Max) {
			grid.MoveTo(vec.Vec2{X: x, Y: p.YLim.Min}).LineTo(vec.Vec2{X: x, Y: p.YLim.Max})
		}
		for _, y := range ticks(p.YLim.Min, p.YLim.Max) {
			grid.MoveTo(vec.Vec2{X: p.XLim.Min, Y: y}).LineTo(vec.Vec2{X: p.XLim.Max, Y: y})
		}
		r.CTM = ctm
		r.Stroke(grid, c.Paint(gridColor))
	}

	for _, s := range p.Series {
		r.Reset(toRect(box))
		r.CTM = ctm
		r.Width = s.Width
		if r.Width <= 0 {
			r.Width = defaultWidth
		}
		r.Cap = graphics.LineCapRound
		r.Join = graphics.LineJoinRound
		col := s.Color
		if col == (color.NRGBA{}) {
			col = DefaultColor
		}
		r.Stroke(seriesPath(s.X, s.Y), c.Paint(col))
	}

	for _, l := range p.Labels {
		pt := apply(ctm, vec.Vec2{X: l.X, Y: l.Y})
		drawText(c.Img, l.Text, int(math.Round(pt.X)), int(math.Round(pt.Y)), AlignCenter, foreground)
	}
	if p.Tag != "" {
		mid := box.Min.Add(box.Max).Div(2)
		drawText(c.Img, p.Tag, mid.X, mid.Y, AlignCenter, foreground)
	}

	// frame, drawn half a pixel inside the box
	r.Reset(toRect(c.Img.Bounds()))
	frame := &path.Data{}
	x0, y0 := float64(box.Min.X)+0.5, float64(box.Min.Y)+0.5
	x1, y1 := float64(box.Max.X)-0.5, float64(box.Max.Y)-0.5
	frame.MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close()
	r.Stroke(frame, c.Paint(foreground))
}

// seriesPath converts sample arrays into a path.  NaN and infinite
// values start a new subpath.
func seriesPath(x, y []float64) *path.Data {
	p := &path.Data{}
	pen := false
	for i := range x {
		if !finite(x[i], y[i]) {
			pen = false
			continue
		}
		pt := vec.Vec2{X: x[i], Y: y[i]}
		if pen {
			p.LineTo(pt)
		} else {
			p.MoveTo(pt)
			pen = true
		}
	}
	return p
}

// finite reports whether the sample (x, y) can be drawn.
func finite(x, y float64) bool {
	return !math.IsNaN(x) && !math.IsNaN(y) && !math.IsInf(x, 0) && !math.IsInf(y, 0)
}

// WritePNG renders the figure and writes it to w in PNG format.
func WritePNG(w io.Writer, f *Figure) error {
	img, err := Render(f)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
