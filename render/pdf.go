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
	imgcolor "image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/piecewise/internal/logger"
)

// WritePDF writes the line art of the figure to a single page PDF
// file, using one PDF point per pixel.  Colours are converted to gray
// and text is omitted.
func WritePDF(fname string, f *Figure) error {
	if err := f.Validate(); err != nil {
		return err
	}

	paper := &pdf.Rectangle{
		URx: float64(f.Width),
		URy: float64(f.Height),
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// Work in pixel coordinates with the origin at the top left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(f.Height)})

	boxes := f.layout()
	for i := range f.Panels {
		p := &f.Panels[i]
		box := boxes[i]
		ctm := panelCTM(p, box)
		xMin, yMin := float64(box.Min.X), float64(box.Min.Y)
		xMax, yMax := float64(box.Max.X), float64(box.Max.Y)

		page.SetLineCap(graphics.LineCapRound)
		page.SetLineJoin(graphics.LineJoinRound)

		if p.Grid {
			page.SetStrokeColor(color.DeviceGray(luma(gridColor)))
			page.SetLineWidth(1)
			page.SetLineDash([]float64{2, 2}, 0)
			for _, x := range ticks(p.XLim.Min, p.XLim.Max) {
				a := apply(ctm, vec.Vec2{X: x, Y: p.YLim.Min})
				b := apply(ctm, vec.Vec2{X: x, Y: p.YLim.Max})
				page.MoveTo(a.X, a.Y)
				page.LineTo(b.X, b.Y)
			}
			for _, y := range ticks(p.YLim.Min, p.YLim.Max) {
				a := apply(ctm, vec.Vec2{X: p.XLim.Min, Y: y})
				b := apply(ctm, vec.Vec2{X: p.XLim.Max, Y: y})
				page.MoveTo(a.X, a.Y)
				page.LineTo(b.X, b.Y)
			}
			page.Stroke()
			page.SetLineDash(nil, 0)
		}

		for _, s := range p.Series {
			width := s.Width
			if width <= 0 {
				width = defaultWidth
			}
			col := s.Color
			if col == (imgcolor.NRGBA{}) {
				col = DefaultColor
			}
			page.SetStrokeColor(color.DeviceGray(luma(col)))
			page.SetLineWidth(width)

			drawn := false
			for _, line := range devicePolylines(ctm, s.X, s.Y) {
				for _, piece := range clipPolyline(line, xMin, yMin, xMax, yMax) {
					page.MoveTo(piece[0].X, piece[0].Y)
					for _, pt := range piece[1:] {
						page.LineTo(pt.X, pt.Y)
					}
					drawn = true
				}
			}
			if drawn {
				page.Stroke()
			}
		}

		page.SetStrokeColor(color.DeviceGray(luma(foreground)))
		page.SetLineWidth(1)
		page.SetLineJoin(graphics.LineJoinMiter)
		x0, y0 := xMin+0.5, yMin+0.5
		x1, y1 := xMax-0.5, yMax-0.5
		page.MoveTo(x0, y0)
		page.LineTo(x1, y0)
		page.LineTo(x1, y1)
		page.LineTo(x0, y1)
		page.ClosePath()
		page.Stroke()
	}

	logger.Get().Debug("render: pdf written", "file", fname, "panels", len(f.Panels))
	return page.Close()
}

// devicePolylines maps the samples to device space and splits them at
// NaN and infinite values.
func devicePolylines(ctm matrix.Matrix, x, y []float64) [][]vec.Vec2 {
	var res [][]vec.Vec2
	var cur []vec.Vec2
	for i := range x {
		if !finite(x[i], y[i]) {
			if len(cur) > 1 {
				res = append(res, cur)
			}
			cur = nil
			continue
		}
		cur = append(cur, apply(ctm, vec.Vec2{X: x[i], Y: y[i]}))
	}
	if len(cur) > 1 {
		res = append(res, cur)
	}
	return res
}

// luma converts c to a gray level in [0, 1] using Rec. 601 weights.
func luma(c imgcolor.NRGBA) float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}
