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
	"errors"
	"fmt"
)

// Sentinel errors.  Errors returned by this package can be matched
// against these with [errors.Is].
var (
	// ErrInvalidDomain is returned when a domain is not a finite,
	// strictly increasing interval.
	ErrInvalidDomain = errors.New("piecewise: domain start must be less than domain end")

	// ErrInvalidSampleCount is returned when fewer than two samples are
	// requested.
	ErrInvalidSampleCount = errors.New("piecewise: at least two samples are required")

	// ErrEmptyCoefficients is returned for a polynomial without
	// coefficients, or a segment without a shape.
	ErrEmptyCoefficients = errors.New("piecewise: no coefficients")

	// ErrDimensionMismatch is returned when the x and y values of a
	// curve differ in length.
	ErrDimensionMismatch = errors.New("piecewise: x and y lengths differ")

	// ErrNoSegments is returned when there is nothing to combine.
	ErrNoSegments = errors.New("piecewise: no segments")

	// ErrInvalidDuration is returned for negative or non-finite durations.
	ErrInvalidDuration = errors.New("piecewise: invalid duration")

	// ErrInvalidOffset is returned for a non-finite offset or origin.
	ErrInvalidOffset = errors.New("piecewise: invalid offset")

	// ErrInvalidRate is returned for a sample rate which is not positive.
	ErrInvalidRate = errors.New("piecewise: invalid sample rate")

	// ErrInvalidConvention is returned for an unknown offset convention.
	ErrInvalidConvention = errors.New("piecewise: unknown offset convention")

	// ErrCyclicFunction is returned when a function would be stacked on
	// top of itself, directly or through other stacked functions.
	ErrCyclicFunction = errors.New("piecewise: function stacked onto itself")
)

// SegmentError records which segment of a piecewise definition failed.
type SegmentError struct {
	Index int
	Err   error
}

func (e *SegmentError) Error() string {
	return fmt.Sprintf("segment %d: %v", e.Index, e.Err)
}

func (e *SegmentError) Unwrap() error {
	return e.Err
}

// DimensionMismatchError is returned by [Combine] when one of the
// curves has different numbers of x and y values.
type DimensionMismatchError struct {
	Index int // position of the curve in the argument list
	X, Y  int // number of x and y values
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("piecewise: curve %d has %d x values but %d y values",
		e.Index, e.X, e.Y)
}

// Is makes errors.Is(err, ErrDimensionMismatch) report true.
func (e *DimensionMismatchError) Is(target error) bool {
	return target == ErrDimensionMismatch
}
