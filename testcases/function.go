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

// rate is the sample rate used for all generated scenarios.
const rate = 1000

var square = poly(1, 0, 0)

var polynomial = []Case{
	{
		Name: "duration",
		Op: Generated{Rate: rate, Pieces: []piecewise.Piece{
			{Shape: square, From: -1, To: 1, Duration: 0.5},
			{Shape: square, From: -1, To: 1, Duration: 1},
			{Shape: square, From: -1, To: 1, Duration: 2},
			{Shape: square, From: -1, To: 1, Duration: 4},
		}},
	},
	{
		Name: "domain",
		Op: Generated{Rate: rate, Pieces: []piecewise.Piece{
			{Shape: square, From: -1, To: 1, Duration: 1},
			{Shape: square, From: 0, To: 1, Duration: 1},
			{Shape: square, From: -1, To: 0, Duration: 1},
			{Shape: square, From: -5, To: 5, Duration: 1},
		}},
	},
	{
		Name: "coefficients",
		Op: Generated{Rate: rate, Pieces: []piecewise.Piece{
			{Shape: poly(1), From: 0, To: 1, Duration: 1},
			{Shape: poly(2, 1), From: 0, To: 1, Duration: 1},
			{Shape: poly(3, 2, 1), From: 0, To: 1, Duration: 1},
			{Shape: poly(4, 3, 2, 1), From: 0, To: 1, Duration: 1},
			{Shape: poly(5, 4, 3, 2, 1), From: 0, To: 1, Duration: 1},
			{Shape: poly(6, 5, 4, 3, 2, 1), From: 0, To: 1, Duration: 1},
		}},
	},
	{
		Name: "flip",
		Op: Generated{Rate: rate, Pieces: []piecewise.Piece{
			{Shape: square, From: 0, To: 1, Duration: 1},
			{Shape: square, From: 0, To: 1, Duration: 1, Reverse: true},
		}},
	},
}

func unitBump(duration, from, to, scale, offset float64) piecewise.Piece {
	return piecewise.Piece{
		Shape:    piecewise.Bump{Scale: scale, Offset: offset},
		From:     from,
		To:       to,
		Duration: duration,
	}
}

var bump = []Case{
	{
		Name: "duration",
		Op: Generated{Rate: rate, Pieces: []piecewise.Piece{
			unitBump(1, -1, 1, 1, 0),
			unitBump(2, -1, 1, 1, 0),
			unitBump(4, -1, 1, 1, 0),
			unitBump(8, -1, 1, 1, 0),
		}},
	},
	{
		Name: "interval",
		Op: Generated{Rate: rate, Pieces: []piecewise.Piece{
			unitBump(1, -1, 1, 1, 0),
			unitBump(1, -1, 0, 1, 0),
			unitBump(1, 0, 1, 1, 0),
			unitBump(1, -2, 2, 1, 0),
		}},
	},
	{
		Name: "scale_offset",
		Op: Generated{Rate: rate, Pieces: []piecewise.Piece{
			unitBump(1, -1, 1, 1, 0),
			unitBump(1, -1, 1, 2, 0),
			unitBump(1, -1, 1, 1, 1),
			unitBump(1, -1, 1, 2, 1),
		}},
	},
}

var function = []Case{
	{
		Name: "mixed",
		Op: Generated{Rate: rate, Pieces: []piecewise.Piece{
			{Shape: square, From: 0, To: 1, Duration: 1},
			unitBump(1, 0, 1, 2, 0),
		}},
	},
	{
		Name: "chain",
		Op: Generated{Rate: rate, Pieces: []piecewise.Piece{
			{Shape: square, From: -1, To: 1, Duration: 2},
			unitBump(4, -2, 2, 1, 0),
		}},
	},
	{
		Name: "stacked",
		Op: Generated{
			Rate:   rate,
			Pieces: []piecewise.Piece{{Shape: poly(1), From: -1, To: 1, Duration: 2}},
			Stacked: []Generated{{
				Delay:  -1,
				Pieces: []piecewise.Piece{{Shape: poly(1), From: -1, To: 1, Duration: 4}},
			}},
		},
	},
	{
		Name: "delayed",
		Op: Generated{
			Rate:   rate,
			Delay:  0.5,
			Pieces: []piecewise.Piece{{Shape: poly(1, 0), From: 0, To: 1, Duration: 1}},
		},
	},
}
