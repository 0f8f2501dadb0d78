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
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/piecewise/internal/logger"
	"seehuhn.de/go/piecewise/internal/options"
)

// Convention selects how sampled segments are positioned on the shared
// x-axis of the combined curve.
type Convention int

const (
	// OffsetExplicit shifts every segment, the first one included, by
	// its own offset (see [WithOffset]).  Segments may overlap or leave
	// gaps.
	OffsetExplicit Convention = iota

	// OffsetContiguous lays the segments end to end, starting at the
	// sampler origin.  Offsets set on the segments are ignored.
	OffsetContiguous
)

func (c Convention) String() string {
	switch c {
	case OffsetExplicit:
		return "explicit"
	case OffsetContiguous:
		return "contiguous"
	default:
		return fmt.Sprintf("Convention(%d)", int(c))
	}
}

// Sampler turns an ordered list of segments into per-segment and
// combined sample arrays.  A Sampler is immutable and may be shared
// between goroutines.
type Sampler struct {
	convention Convention
	origin     float64
}

// Option configures a [Sampler].
type Option = options.Option[*Sampler]

// WithConvention selects the offset convention.  The default is
// [OffsetExplicit].
func WithConvention(c Convention) Option {
	return options.New(func(s *Sampler) error {
		if c != OffsetExplicit && c != OffsetContiguous {
			return ErrInvalidConvention
		}
		s.convention = c
		return nil
	})
}

// WithOrigin sets the x position where the first segment starts under
// the [OffsetContiguous] convention.  The default is 0.
func WithOrigin(x float64) Option {
	return options.New(func(s *Sampler) error {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return ErrInvalidOffset
		}
		s.origin = x
		return nil
	})
}

// NewSampler returns a new sampler.
func NewSampler(opts ...Option) (*Sampler, error) {
	s := &Sampler{convention: OffsetExplicit}
	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}
	return s, nil
}

// Convention returns the offset convention of the sampler.
func (s *Sampler) Convention() Convention {
	return s.convention
}

// Origin returns the start of the first segment under the
// [OffsetContiguous] convention.
func (s *Sampler) Origin() float64 {
	return s.origin
}

// Result holds the output of [Sampler.Sample].
type Result struct {
	// Raw holds the samples of each segment over its own domain.
	Raw []Curve

	// Placed holds the same samples, moved to their position on the
	// shared axis.
	Placed []Curve

	// Combined is the concatenation of Placed.
	Combined Curve
}

// Evaluate samples a single segment over its domain.  This is the same
// as [Segment.Evaluate].
func (s *Sampler) Evaluate(seg Segment) (Curve, error) {
	c, err := seg.Evaluate()
	if err != nil {
		return Curve{}, err
	}
	logger.Get().Debug("piecewise: evaluated segment",
		"start", seg.start, "end", seg.end, "samples", seg.n)
	return c, nil
}

// Place moves the samples of each segment to their position on the
// shared axis, according to the sampler's convention.  raw[i] must be
// the samples of segs[i].  The y values are copied unchanged.
func (s *Sampler) Place(segs []Segment, raw []Curve) ([]Curve, error) {
	if len(segs) != len(raw) {
		return nil, fmt.Errorf("piecewise: %d segments but %d curves: %w",
			len(segs), len(raw), ErrDimensionMismatch)
	}

	placed := make([]Curve, len(segs))
	cursor := s.origin
	for i, seg := range segs {
		c := raw[i]
		if len(c.X) != len(c.Y) {
			return nil, &SegmentError{
				Index: i,
				Err:   &DimensionMismatchError{Index: i, X: len(c.X), Y: len(c.Y)},
			}
		}
		if len(c.X) < 2 {
			return nil, &SegmentError{Index: i, Err: ErrInvalidSampleCount}
		}

		var anchor, shift float64
		switch s.convention {
		case OffsetContiguous:
			anchor = cursor
			shift = cursor - seg.start
		default:
			anchor = seg.start + seg.offset
			shift = seg.offset
		}
		placed[i] = placeCurve(seg, c, anchor, shift)
		cursor = anchor + seg.Width()
	}
	return placed, nil
}

// placeCurve maps the domain of seg onto the interval of length
// seg.Width() starting at anchor.  Unless the segment is rescaled, every
// x value is simply moved by shift.
func placeCurve(seg Segment, c Curve, anchor, shift float64) Curve {
	n := len(c.X)
	x := make([]float64, n)
	if seg.duration > 0 {
		scale := seg.duration / (seg.end - seg.start)
		for i, xi := range c.X {
			x[i] = anchor + (xi-seg.start)*scale
		}
		x[0] = anchor
		x[n-1] = anchor + seg.duration
	} else {
		for i, xi := range c.X {
			x[i] = xi + shift
		}
	}
	return Curve{X: x, Y: slices.Clone(c.Y)}
}

// Sample evaluates, places and combines the given segments.  Nothing
// is returned if any segment is invalid.
func (s *Sampler) Sample(segs ...Segment) (*Result, error) {
	if len(segs) == 0 {
		return nil, ErrNoSegments
	}

	raw := make([]Curve, len(segs))
	for i, seg := range segs {
		c, err := s.Evaluate(seg)
		if err != nil {
			return nil, &SegmentError{Index: i, Err: err}
		}
		raw[i] = c
	}

	placed, err := s.Place(segs, raw)
	if err != nil {
		return nil, err
	}

	combined, err := Combine(placed...)
	if err != nil {
		return nil, err
	}

	xMin, xMax, _, _ := combined.Extent()
	logger.Get().Debug("piecewise: combined segments",
		"segments", len(segs),
		"points", combined.Len(),
		"convention", s.convention,
		"xmin", xMin, "xmax", xMax)

	return &Result{Raw: raw, Placed: placed, Combined: combined}, nil
}
