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

import "seehuhn.de/go/piecewise"

// demoSegments are the three segments of the demonstration program:
// 2x²-2 on [-1,1], 4x on [0,1] and -4x²+4 on [0,1.5].
func demoSegments() []SegmentSpec {
	return []SegmentSpec{
		{Shape: poly(2, 0, -2), Start: -1, End: 1, Samples: 101},
		{Shape: poly(4, 0), Start: 0, End: 1, Samples: 101, Offset: 0.5},
		{Shape: poly(-4, 0, 4), Start: 0, End: 1.5, Samples: 101, Offset: 1.5},
	}
}

var demo = []Case{
	{
		Name: "explicit_offsets",
		Op: Sampled{
			Convention: piecewise.OffsetExplicit,
			Segments:   demoSegments(),
		},
	},
	{
		Name: "contiguous",
		Op: Sampled{
			Convention: piecewise.OffsetContiguous,
			Segments:   demoSegments(),
		},
	},
	{
		Name: "contiguous_origin",
		Op: Sampled{
			Convention: piecewise.OffsetContiguous,
			Origin:     -2,
			Segments:   demoSegments(),
		},
	},
	{
		Name: "display_widths",
		Op: Sampled{
			Convention: piecewise.OffsetContiguous,
			Segments: []SegmentSpec{
				{Shape: poly(2, 0, -2), Start: -1, End: 1, Samples: 101, Duration: 0.5},
				{Shape: poly(4, 0), Start: 0, End: 1, Samples: 101, Duration: 1},
				{Shape: poly(-4, 0, 4), Start: 0, End: 1.5, Samples: 101, Duration: 3},
			},
		},
	},
	{
		Name: "reversed",
		Op: Sampled{
			Convention: piecewise.OffsetContiguous,
			Segments: []SegmentSpec{
				{Shape: poly(4, 0), Start: 0, End: 1, Samples: 11},
				{Shape: poly(4, 0), Start: 0, End: 1, Samples: 11, Reverse: true},
			},
		},
	},
	{
		Name: "bump_segment",
		Op: Sampled{
			Convention: piecewise.OffsetExplicit,
			Segments: []SegmentSpec{
				{Shape: piecewise.Bump{Scale: 2}, Start: -1, End: 1, Samples: 201},
			},
		},
	},
}
