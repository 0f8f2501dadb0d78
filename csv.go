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
	"encoding/csv"
	"io"
	"strconv"
)

// WriteCSV writes one "x,y" record per point of c.
func WriteCSV(w io.Writer, c Curve) error {
	if len(c.X) != len(c.Y) {
		return &DimensionMismatchError{X: len(c.X), Y: len(c.Y)}
	}

	cw := csv.NewWriter(w)
	rec := make([]string, 2)
	for i := range c.X {
		rec[0] = strconv.FormatFloat(c.X[i], 'g', -1, 64)
		rec[1] = strconv.FormatFloat(c.Y[i], 'g', -1, 64)
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
