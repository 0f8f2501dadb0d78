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

package piecewise

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func TestFunctionPieces(t *testing.T) {
	f := NewFunction(0)
	require.NoError(t, f.AddPiece(Piece{Shape: Polynomial{8, 4, 7}, From: 0, To: 1, Duration: 1}))
	require.NoError(t, f.AddPiece(Piece{Shape: Polynomial{-2, 0, 2}, From: -1, To: 1, Duration: 1}))
	require.NoError(t, f.AddPiece(Piece{Shape: Polynomial{8, 4, 7}, From: 0, To: 1, Duration: 1, Reverse: true}))
	require.Equal(t, 3.0, f.Duration())

	want := []float64{
		7, 7.48, 8.12, 8.92, 9.88, 11, 12.28, 13.72, 15.32, 17.08,
		0, 0.72, 1.28, 1.68, 1.92, 2, 1.92, 1.68, 1.28, 0.72,
		19, 17.08, 15.32, 13.72, 12.28, 11, 9.88, 8.92, 8.12, 7.48,
	}
	for i, y := range want {
		x := float64(i) / 10
		got, ok := f.Generate(x)
		require.True(t, ok, "x=%g", x)
		assert.Equal(t, y, round2(got), "x=%g", x)
	}

	_, ok := f.Generate(3)
	assert.False(t, ok)
}

func TestFunctionStacked(t *testing.T) {
	a := NewFunction(0)
	require.NoError(t, a.AddPiece(Piece{Shape: Polynomial{-2, 0, 2}, From: -1, To: 1, Duration: 1}))
	b := NewFunction(0)
	require.NoError(t, b.AddPiece(Piece{Shape: Polynomial{2, 0, -2}, From: -1, To: 1, Duration: 1}))
	require.NoError(t, a.AddFunction(b))

	for i := range 100 {
		y, ok := a.Generate(float64(i) / 100)
		require.True(t, ok)
		assert.InDelta(t, 0, y, 1e-12)
	}
}

func TestFunctionDelay(t *testing.T) {
	constant := func(delay float64) *Function {
		f := NewFunction(delay)
		require.NoError(t, f.AddPiece(Piece{Shape: Polynomial{2}, From: 0, To: 1, Duration: 1}))
		return f
	}
	a, b, c, d := constant(0), constant(0.25), constant(0.5), constant(0.75)
	require.NoError(t, c.AddFunction(d))
	require.NoError(t, b.AddFunction(c))
	require.NoError(t, a.AddFunction(b))

	require.Equal(t, 1.75, a.Duration())
	for _, tc := range []struct{ x, y float64 }{
		{0.125, 2}, {0.375, 4}, {0.625, 6}, {0.875, 8},
		{1.125, 6}, {1.375, 4}, {1.625, 2},
	} {
		y, ok := a.Generate(tc.x)
		require.True(t, ok)
		assert.Equal(t, tc.y, y, "x=%g", tc.x)
	}
}

func TestFunctionNegativeDelay(t *testing.T) {
	base := NewFunction(0)
	require.NoError(t, base.AddPiece(Piece{Shape: Polynomial{1}, From: -1, To: 1, Duration: 2}))
	early := NewFunction(-1)
	require.NoError(t, early.AddPiece(Piece{Shape: Polynomial{1}, From: -1, To: 1, Duration: 4}))
	require.NoError(t, base.AddFunction(early))

	assert.Equal(t, 3.0, base.Duration())
	y, _ := base.Generate(1)
	assert.Equal(t, 2.0, y)
	y, _ = base.Generate(2.5)
	assert.Equal(t, 1.0, y)
}

func TestFunctionCycle(t *testing.T) {
	a, b, c := NewFunction(0), NewFunction(0), NewFunction(0)
	for _, f := range []*Function{a, b, c} {
		require.NoError(t, f.AddPiece(Piece{Shape: Polynomial{1}, From: 0, To: 1, Duration: 1}))
	}

	require.ErrorIs(t, a.AddFunction(a), ErrCyclicFunction)

	require.NoError(t, a.AddFunction(b))
	require.NoError(t, b.AddFunction(c))
	require.ErrorIs(t, c.AddFunction(a), ErrCyclicFunction)
	require.ErrorIs(t, b.AddFunction(a), ErrCyclicFunction)

	// the same function may be stacked twice without forming a cycle
	require.NoError(t, a.AddFunction(c))

	assert.Equal(t, 1.0, a.Duration())
	y, ok := a.Generate(0.5)
	require.True(t, ok)
	assert.Equal(t, 4.0, y)
}

func TestFunctionBump(t *testing.T) {
	f := NewFunction(0)
	require.NoError(t, f.AddPiece(Piece{Shape: Bump{Scale: 1}, From: -1, To: 1, Duration: 2}))

	want := []float64{0, 0.01, 0.17, 0.38, 0.57, 0.72, 0.83, 0.91, 0.96, 0.99, 1}
	for i, y := range want {
		got, ok := f.Generate(float64(i) / 10)
		require.True(t, ok)
		assert.Equal(t, y, round2(got), "i=%d", i)
	}
}

func TestFunctionAddSegment(t *testing.T) {
	seg, err := NewSegment([]float64{5, 4}, 0, 1, 2, WithDuration(2))
	require.NoError(t, err)

	f := NewFunction(0)
	require.NoError(t, f.AddSegment(seg))
	assert.Equal(t, 2.0, f.Duration())
	y, _ := f.Generate(1)
	assert.Equal(t, 6.5, y)

	err = f.AddSegment(Segment{})
	require.ErrorIs(t, err, ErrEmptyCoefficients)
}

func TestFunctionPieceErrors(t *testing.T) {
	f := NewFunction(0)
	require.ErrorIs(t, f.AddPiece(Piece{From: 0, To: 1, Duration: 1}), ErrEmptyCoefficients)
	require.ErrorIs(t, f.AddPiece(Piece{Shape: Polynomial{}, From: 0, To: 1, Duration: 1}), ErrEmptyCoefficients)
	require.ErrorIs(t, f.AddPiece(Piece{Shape: Polynomial{1}, From: 1, To: 0, Duration: 1}), ErrInvalidDomain)
	require.ErrorIs(t, f.AddPiece(Piece{Shape: Polynomial{1}, From: 0, To: 1}), ErrInvalidDuration)
	assert.Equal(t, 0.0, f.Duration())
}

func TestFunctionSample(t *testing.T) {
	f := NewFunction(0)
	require.NoError(t, f.AddPiece(Piece{Shape: Polynomial{1, 0, 0}, From: 0, To: 1, Duration: 1}))
	require.NoError(t, f.AddPiece(Piece{Shape: Bump{Scale: 2}, From: 0, To: 1, Duration: 1}))

	c, err := f.Sample(1000)
	require.NoError(t, err)
	require.Equal(t, 2000, c.Len())
	require.Len(t, c.Y, 2000)
	assert.Equal(t, 0.0, c.X[0])
	assert.InDelta(t, 1.999, c.X[1999], 1e-12)
	assert.InDelta(t, 0.25, c.Y[500], 1e-12)
	assert.InDelta(t, 2, c.Y[1000], 1e-12)

	_, err = f.Sample(0)
	require.ErrorIs(t, err, ErrInvalidRate)
	_, err = f.Sample(math.Inf(1))
	require.ErrorIs(t, err, ErrInvalidRate)
	_, err = NewFunction(0).Sample(10)
	require.ErrorIs(t, err, ErrInvalidSampleCount)
}
