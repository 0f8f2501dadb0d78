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
package testcases

import (
	"maps"
	"regexp"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/piecewise"
)

var validName = regexp.MustCompile(`^[a-z_]+$`)

func TestAllCases(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(All)) {
		seen := map[string]bool{}
		for _, tc := range All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				assert.Regexp(t, validName, tc.Name)
				assert.False(t, seen[tc.Name], "duplicate name")
				seen[tc.Name] = true

				c, err := tc.Curve()
				require.NoError(t, err)
				require.Equal(t, len(c.X), len(c.Y))
				require.NotZero(t, c.Len())

				if op, ok := tc.Op.(Sampled); ok {
					want := 0
					for _, s := range op.Segments {
						want += s.Samples
					}
					assert.Equal(t, want, c.Len())
					if op.Convention == piecewise.OffsetContiguous {
						assert.True(t, slices.IsSorted(c.X), "x not sorted")
					}
				}
			})
		}
	}
}

func TestDemoSpans(t *testing.T) {
	tc, ok := Lookup("demo", "contiguous")
	require.True(t, ok)
	c, err := tc.Curve()
	require.NoError(t, err)
	require.Equal(t, 303, c.Len())
	assert.Equal(t, 0.0, c.X[0])
	assert.InDelta(t, 4.5, c.X[302], 1e-12)

	tc, _ = Lookup("demo", "explicit_offsets")
	res, err := tc.Op.(Sampled).Sample()
	require.NoError(t, err)
	require.Len(t, res.Placed, 3)
	assert.Equal(t, -1.0, res.Placed[0].X[0])
	assert.Equal(t, 0.5, res.Placed[1].X[0])
	assert.Equal(t, 1.5, res.Placed[2].X[0])
	assert.InDelta(t, 3.0, res.Placed[2].X[100], 1e-12)

	tc, _ = Lookup("demo", "display_widths")
	c, err = tc.Curve()
	require.NoError(t, err)
	assert.InDelta(t, 4.5, c.X[302], 1e-12)
}

func TestFlip(t *testing.T) {
	tc, _ := Lookup("polynomial", "flip")
	c, err := tc.Curve()
	require.NoError(t, err)
	require.Equal(t, 2000, c.Len())
	assert.InDelta(t, 0.0625, c.Y[250], 1e-12)
	assert.InDelta(t, 0.5625, c.Y[1250], 1e-12)
}

func TestStacked(t *testing.T) {
	tc, _ := Lookup("function", "stacked")
	c, err := tc.Curve()
	require.NoError(t, err)
	require.Equal(t, 3000, c.Len())
	assert.Equal(t, 2.0, c.Y[0])
	assert.Equal(t, 2.0, c.Y[1999])
	assert.Equal(t, 1.0, c.Y[2000])
	assert.Equal(t, 1.0, c.Y[2999])
}

func TestDelayed(t *testing.T) {
	tc, _ := Lookup("function", "delayed")
	c, err := tc.Curve()
	require.NoError(t, err)
	require.Equal(t, 1500, c.Len())
	assert.Zero(t, c.Y[499])
	assert.InDelta(t, 0.5, c.Y[1000], 1e-12)
}

func TestInvalidSegment(t *testing.T) {
	bad := Case{Name: "bad", Op: Sampled{Segments: []SegmentSpec{
		{Shape: poly(1), Start: 0, End: 1, Samples: 1},
	}}}
	_, err := bad.Curve()
	assert.ErrorIs(t, err, piecewise.ErrInvalidSampleCount)

	var segErr *piecewise.SegmentError
	require.ErrorAs(t, err, &segErr)
	assert.Equal(t, 0, segErr.Index)

	_, ok := Lookup("demo", "no_such_case")
	assert.False(t, ok)
}
