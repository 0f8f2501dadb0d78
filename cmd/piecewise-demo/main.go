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

// Command piecewise-demo samples three polynomial segments, joins them
// into one piecewise curve and draws the result.
//
// The upper row of the figure shows each segment on its own domain, the
// lower panel shows the combined curve.  The figure is written to
// piecewise.png and piecewise.pdf in the current directory.
package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"

	"seehuhn.de/go/piecewise"
	"seehuhn.de/go/piecewise/render"
)

// Output files and figure size.
const (
	pngName = "piecewise.png"
	pdfName = "piecewise.pdf"
	width   = 960
	height  = 720
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	piecewise.SetLogger(logger)

	if err := run(pngName, pdfName, width, height, logger); err != nil {
		logger.Error("piecewise-demo failed", "error", err)
		os.Exit(1)
	}
}

func run(pngName, pdfName string, width, height int, logger *slog.Logger) error {
	segs, err := segments()
	if err != nil {
		return err
	}

	s, err := piecewise.NewSampler(piecewise.WithConvention(piecewise.OffsetContiguous))
	if err != nil {
		return err
	}
	res, err := s.Sample(segs...)
	if err != nil {
		return err
	}

	fig := figure(res, width, height)

	f, err := os.Create(pngName)
	if err != nil {
		return err
	}
	err = render.WritePNG(f, fig)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("%s: %w", pngName, err)
	}
	logger.Info("wrote figure", "file", pngName)

	if pdfName != "" {
		if err := render.WritePDF(pdfName, fig); err != nil {
			return fmt.Errorf("%s: %w", pdfName, err)
		}
		logger.Info("wrote figure", "file", pdfName)
	}
	return nil
}

// segments returns 2x²-2 on [-1,1], 4x on [0,1] and -4x²+4 on [0,1.5],
// each sampled at 101 points.  On the combined axis the segments are
// drawn with widths 0.5, 1 and 3, so that they meet at x = 0.5 and
// x = 1.5.
func segments() ([]piecewise.Segment, error) {
	defs := []struct {
		coeffs     []float64
		start, end float64
		width      float64
	}{
		{[]float64{2, 0, -2}, -1, 1, 0.5},
		{[]float64{4, 0}, 0, 1, 1},
		{[]float64{-4, 0, 4}, 0, 1.5, 3},
	}
	segs := make([]piecewise.Segment, len(defs))
	for i, d := range defs {
		seg, err := piecewise.NewSegment(d.coeffs, d.start, d.end, 101,
			piecewise.WithDuration(d.width))
		if err != nil {
			return nil, &piecewise.SegmentError{Index: i, Err: err}
		}
		segs[i] = seg
	}
	return segs, nil
}

var lineColor = color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}

// figure lays out a 3×3 grid: one panel per segment in the top row and
// the combined curve spanning the two lower rows.
func figure(res *piecewise.Result, width, height int) *render.Figure {
	type panelDef struct {
		xLim, yLim render.Limits
		label      render.Label
	}
	defs := []panelDef{
		{render.Limits{Min: -1, Max: 1}, render.Limits{Min: -2, Max: 0}, render.Label{X: 0, Y: -0.5, Text: "fcn1"}},
		{render.Limits{Min: 0, Max: 1}, render.Limits{Min: 0, Max: 4}, render.Label{X: 0.5, Y: 0.5, Text: "fcn2"}},
		{render.Limits{Min: 0, Max: 1.5}, render.Limits{Min: -5, Max: 4}, render.Label{X: 0.5, Y: 0.5, Text: "fcn3"}},
	}

	fig := &render.Figure{
		Width:  width,
		Height: height,
		Title:  "Piecewise Function Example",
		Rows:   3,
		Cols:   3,
		Margin: 16,
		Gap:    16,
	}
	for i, d := range defs {
		raw := res.Raw[i]
		fig.Panels = append(fig.Panels, render.Panel{
			Cell:   render.Span{Row: 0, Col: i},
			XLim:   d.xLim,
			YLim:   d.yLim,
			Grid:   true,
			Tag:    fmt.Sprintf("ax%d", i+1),
			Series: []render.Series{{X: raw.X, Y: raw.Y, Color: lineColor}},
			Labels: []render.Label{d.label},
		})
	}

	xMin, xMax, _, _ := res.Combined.Extent()
	fig.Panels = append(fig.Panels, render.Panel{
		Cell:   render.Span{Row: 1, Col: 0, Rows: 2, Cols: 3},
		XLim:   render.Limits{Min: xMin, Max: xMax},
		YLim:   render.Limits{Min: -5, Max: 4},
		Grid:   true,
		Tag:    "ax4",
		Series: []render.Series{{X: res.Combined.X, Y: res.Combined.Y, Color: lineColor}},
	})
	return fig
}
