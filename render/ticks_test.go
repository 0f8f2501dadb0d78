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
	"testing"

	"github.com/stretchr/testify/assert"
	"seehuhn.de/go/geom/vec"
)

func TestTicks(t *testing.T) {
	cases := []struct {
		lo, hi float64
		want   []float64
	}{
		{0, 4.5, []float64{0, 1, 2, 3, 4}},
		{-5, 4, []float64{-4, -2, 0, 2, 4}},
		{0, 1, []float64{0, 0.2, 0.4, 0.6, 0.8, 1}},
		{-1, 1, []float64{-1, -0.5, 0, 0.5, 1}},
		{100, 1000, []float64{200, 400, 600, 800, 1000}},
	}
	for _, tc := range cases {
		got := ticks(tc.lo, tc.hi)
		assert.InDeltaSlice(t, tc.want, got, 1e-9, "[%g, %g]", tc.lo, tc.hi)
	}

	assert.Nil(t, ticks(1, 1))
	assert.Nil(t, ticks(2, 1))
}

func TestNiceStep(t *testing.T) {
	assert.Equal(t, 1.0, niceStep(1.2))
	assert.Equal(t, 2.0, niceStep(1.8))
	assert.Equal(t, 5.0, niceStep(4))
	assert.Equal(t, 10.0, niceStep(8))
	assert.InDelta(t, 0.05, niceStep(0.06), 1e-12)
}

func TestClipLine(t *testing.T) {
	a, b := vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 2, Y: 3}
	ca, cb, ok := clipLine(a, b, 0, 0, 10, 10)
	assert.True(t, ok)
	assert.Equal(t, a, ca)
	assert.Equal(t, b, cb)

	ca, cb, ok = clipLine(vec.Vec2{X: -5, Y: 5}, vec.Vec2{X: 15, Y: 5}, 0, 0, 10, 10)
	assert.True(t, ok)
	assert.Equal(t, vec.Vec2{X: 0, Y: 5}, ca)
	assert.Equal(t, vec.Vec2{X: 10, Y: 5}, cb)

	_, _, ok = clipLine(vec.Vec2{X: -5, Y: -1}, vec.Vec2{X: 15, Y: -1}, 0, 0, 10, 10)
	assert.False(t, ok)
}

func TestClipPolyline(t *testing.T) {
	pts := []vec.Vec2{
		{X: 1, Y: 5}, {X: 5, Y: 5}, {X: 15, Y: 5}, {X: 15, Y: 6}, {X: 5, Y: 6}, {X: 4, Y: 6},
	}
	pieces := clipPolyline(pts, 0, 0, 10, 10)
	assert.Equal(t, [][]vec.Vec2{
		{{X: 1, Y: 5}, {X: 5, Y: 5}, {X: 10, Y: 5}},
		{{X: 10, Y: 6}, {X: 5, Y: 6}, {X: 4, Y: 6}},
	}, pieces)

	assert.Empty(t, clipPolyline([]vec.Vec2{{X: 20, Y: 20}, {X: 30, Y: 30}}, 0, 0, 10, 10))
}
