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

// Package render draws sampled curves into raster images and PDF files.
//
// The low level part is an anti-aliasing [Rasterizer] which turns
// paths into per-pixel coverage, and a [Canvas] which composites that
// coverage onto an RGBA image.  On top of this, a [Figure] arranges
// plot panels on a grid.  Panels can span several grid cells, have fixed
// axis limits, optional grid lines and text labels placed in data
// coordinates.
//
// Figures are plain values.  [Render], [WritePNG] and [WritePDF] take
// all their input from the figure, so figures can be drawn
// concurrently.
package render
