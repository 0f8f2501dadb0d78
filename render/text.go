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
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Align selects the horizontal alignment of a text label.
type Align int

const (
	// AlignCenter centres the text on the reference point.
	AlignCenter Align = iota

	// AlignLeft starts the text at the reference point.
	AlignLeft

	// AlignRight ends the text at the reference point.
	AlignRight
)

// labelFace is the font used for all text.
var labelFace font.Face = basicfont.Face7x13

// textWidth returns the advance width of s in pixels.
func textWidth(s string) int {
	return font.MeasureString(labelFace, s).Ceil()
}

// drawText draws s so that its vertical centre is at y.  The
// horizontal reference point x is interpreted according to align.
func drawText(dst *image.RGBA, s string, x, y int, align Align, col color.Color) {
	switch align {
	case AlignCenter:
		x -= textWidth(s) / 2
	case AlignRight:
		x -= textWidth(s)
	}
	m := labelFace.Metrics()
	baseline := y + (m.Ascent-m.Descent).Round()/2

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: labelFace,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(s)
}
