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
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, Curve{X: []float64{0, 0.5, 1}, Y: []float64{-2, -1.5, 0}})
	require.NoError(t, err)
	require.Equal(t, "0,-2\n0.5,-1.5\n1,0\n", buf.String())
}

func TestWriteCSVMismatch(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, Curve{X: []float64{0, 1}, Y: []float64{0}})
	require.ErrorIs(t, err, ErrDimensionMismatch)
	require.Zero(t, buf.Len())
}
