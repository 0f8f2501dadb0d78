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
	"errors"
	"fmt"
)

var (
	// ErrEmptyFigure is returned for figures without size, grid or panels.
	ErrEmptyFigure = errors.New("render: empty figure")

	// ErrBadLimits is returned for axis limits which are not a finite,
	// strictly increasing interval.
	ErrBadLimits = errors.New("render: invalid axis limits")

	// ErrBadSpan is returned when a panel does not fit into the grid.
	ErrBadSpan = errors.New("render: panel outside the grid")

	// ErrLengthMismatch is returned for a series with different numbers
	// of x and y values.
	ErrLengthMismatch = errors.New("render: x and y lengths differ")
)

// PanelError records which panel of a figure is invalid.
type PanelError struct {
	Index int
	Err   error
}

func (e *PanelError) Error() string {
	return fmt.Sprintf("render: panel %d: %v", e.Index, e.Err)
}

func (e *PanelError) Unwrap() error {
	return e.Err
}
