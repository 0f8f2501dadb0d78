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

func TestNewSegmentValidation(t *testing.T) {
	cases := []struct {
		name   string
		coeffs []float64
		start  float64
		end    float64
		n      int
		opts   []SegmentOption
		want   error
	}{
		{"empty_domain", []float64{1}, 1, 1, 10, nil, ErrInvalidDomain},
		{"reversed_domain", []float64{1}, 2, 1, 10, nil, ErrInvalidDomain},
		{"nan_domain", []float64{1}, math.NaN(), 1, 10, nil, ErrInvalidDomain},
		{"infinite_domain", []float64{1}, 0, math.Inf(1), 10, nil, ErrInvalidDomain},
		{"one_sample", []float64{1}, 0, 1, 1, nil, ErrInvalidSampleCount},
		{"no_samples", []float64{1}, 0, 1, 0, nil, ErrInvalidSampleCount},
		{"no_coefficients", nil, 0, 1, 10, nil, ErrEmptyCoefficients},
		{"negative_duration", []float64{1}, 0, 1, 10, []SegmentOption{WithDuration(-1)}, ErrInvalidDuration},
		{"nan_offset", []float64{1}, 0, 1, 10, []SegmentOption{WithOffset(math.NaN())}, ErrInvalidOffset},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSegment(tc.coeffs, tc.start, tc.end, tc.n, tc.opts...)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestSegmentIsImmutable(t *testing.T) {
	coeffs := []float64{2, 0, -2}
	seg, err := NewSegment(coeffs, -1, 1, 5)
	require.NoError(t, err)

	coeffs[0] = 100
	got := seg.Coefficients()
	require.Equal(t, []float64{2, 0, -2}, got)

	got[0] = 100
	require.Equal(t, []float64{2, 0, -2}, seg.Coefficients())
}

func TestSegmentAccessors(t *testing.T) {
	seg, err := NewSegment([]float64{4, 0}, 0, 1, 101,
		WithOffset(0.5), WithDuration(2), WithReverse())
	require.NoError(t, err)

	assert.Equal(t, 0.0, seg.DomainStart())
	assert.Equal(t, 1.0, seg.DomainEnd())
	assert.Equal(t, 101, seg.SampleCount())
	assert.Equal(t, 0.5, seg.XOffset())
	assert.Equal(t, 2.0, seg.Duration())
	assert.Equal(t, 2.0, seg.Width())
	assert.True(t, seg.Reversed())
	assert.Equal(t, Polynomial{4, 0}, seg.Shape())

	plain, err := NewSegment([]float64{1}, -1, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, plain.Width())

	bump, err := NewShapeSegment(Bump{Scale: 1}, -1, 1, 3)
	require.NoError(t, err)
	assert.Nil(t, bump.Coefficients())
}

func TestEvaluateSegment(t *testing.T) {
	for _, n := range []int{2, 3, 10, 101, 1000} {
		seg, err := NewSegment([]float64{2, 0, -2}, -1, 1, n)
		require.NoError(t, err)

		c, err := seg.Evaluate()
		require.NoError(t, err)
		require.Len(t, c.X, n)
		require.Len(t, c.Y, n)
		assert.Equal(t, -1.0, c.X[0])
		assert.Equal(t, 1.0, c.X[n-1])

		for i := 1; i < n; i++ {
			assert.Greater(t, c.X[i], c.X[i-1])
		}
		for i, x := range c.X {
			assert.InDelta(t, 2*x*x-2, c.Y[i], 1e-12)
		}
	}
}

func TestEvaluateSpacing(t *testing.T) {
	seg, err := NewSegment([]float64{1, 0}, 0, 1.5, 4)
	require.NoError(t, err)
	c, err := seg.Evaluate()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0.5, 1, 1.5}, c.X, 1e-15)
	assert.InDeltaSlice(t, []float64{0, 0.5, 1, 1.5}, c.Y, 1e-15)
}

func TestEvaluateReverse(t *testing.T) {
	// 5x+4 traced from x=1 back to x=0
	seg, err := NewSegment([]float64{5, 4}, 0, 1, 3, WithReverse())
	require.NoError(t, err)
	c, err := seg.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1}, c.X)
	assert.InDeltaSlice(t, []float64{9, 6.5, 4}, c.Y, 1e-12)
}

func TestEvaluateZeroSegment(t *testing.T) {
	var seg Segment
	_, err := seg.Evaluate()
	require.ErrorIs(t, err, ErrEmptyCoefficients)
}

func TestEvaluateIsDeterministic(t *testing.T) {
	seg, err := NewSegment([]float64{-4, 0, 4}, 0, 1.5, 101)
	require.NoError(t, err)
	a, err := seg.Evaluate()
	require.NoError(t, err)
	b, err := seg.Evaluate()
	require.NoError(t, err)
	require.Equal(t, a, b)

	a.X[0] = 42
	require.Equal(t, 0.0, b.X[0])
}
