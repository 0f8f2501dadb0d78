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
	"image/draw"
)

// Canvas is an RGBA image which coverage from a [Rasterizer] can be
// painted onto.
type Canvas struct {
	Img *image.RGBA
}

// NewCanvas returns a canvas of the given size, filled with bg.
func NewCanvas(width, height int, bg color.Color) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return &Canvas{Img: img}
}

// Paint returns an emit callback for [Rasterizer.Fill] and
// [Rasterizer.Stroke] which composites col onto the canvas, using the
// coverage values as additional opacity.
func (c *Canvas) Paint(col color.NRGBA) func(y, xMin int, coverage []float32) {
	b := c.Img.Bounds()
	return func(y, xMin int, coverage []float32) {
		if y < b.Min.Y || y >= b.Max.Y {
			return
		}
		for i, cov := range coverage {
			x := xMin + i
			if x < b.Min.X || x >= b.Max.X {
				continue
			}
			a := cov * float32(col.A) / 255
			if a <= 0 {
				continue
			}
			off := c.Img.PixOffset(x, y)
			pix := c.Img.Pix[off : off+4 : off+4]
			pix[0] = blend(pix[0], col.R, a)
			pix[1] = blend(pix[1], col.G, a)
			pix[2] = blend(pix[2], col.B, a)
			pix[3] = blend(pix[3], 255, a)
		}
	}
}

// blend returns the source-over composition of the premultiplied
// destination value dst and the straight source value src with opacity a.
func blend(dst, src uint8, a float32) uint8 {
	v := float32(src)*a + float32(dst)*(1-a)
	return uint8(min(255, max(0, v+0.5)))
}
