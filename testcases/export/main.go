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

// Command export writes the sampled curve of every scenario in the
// testcases catalogue to testdata/<category>_<name>.csv, together with
// an index file testdata/testcases.json describing the scenarios.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/piecewise"
	"seehuhn.de/go/piecewise/testcases"
)

// outDir is the directory the files are written to.
const outDir = "testdata"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	piecewise.SetLogger(logger)

	if err := run(outDir, logger); err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}
}

type jsonCase struct {
	Name     string        `json:"name"`
	File     string        `json:"file"`
	Op       string        `json:"op"`
	Points   int           `json:"points"`
	Extent   [4]float64    `json:"extent"`
	Segments []jsonSegment `json:"segments,omitempty"`
	Rate     float64       `json:"rate,omitempty"`
	Delay    float64       `json:"delay,omitempty"`
}

type jsonSegment struct {
	Shape    string  `json:"shape"`
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
	Samples  int     `json:"samples"`
	Offset   float64 `json:"offset,omitempty"`
	Duration float64 `json:"duration,omitempty"`
	Reverse  bool    `json:"reverse,omitempty"`
}

func run(dir string, logger *slog.Logger) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var out struct {
		TestCases []jsonCase `json:"testcases"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			c, err := tc.Curve()
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			fname := name + ".csv"
			if err := writeCurve(filepath.Join(dir, fname), c); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			logger.Debug("wrote scenario", "name", name, "points", c.Len())

			out.TestCases = append(out.TestCases, toJSON(name, fname, tc, c))
		}
	}

	f, err := os.Create(filepath.Join(dir, "testcases.json"))
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	err = enc.Encode(out)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	logger.Info("export complete", "dir", dir, "scenarios", len(out.TestCases))
	return nil
}

func writeCurve(fname string, c piecewise.Curve) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return piecewise.WriteCSV(f, c)
}

func toJSON(name, fname string, tc testcases.Case, c piecewise.Curve) jsonCase {
	xMin, xMax, yMin, yMax := c.Extent()
	jc := jsonCase{
		Name:   name,
		File:   fname,
		Points: c.Len(),
		Extent: [4]float64{xMin, xMax, yMin, yMax},
	}
	switch op := tc.Op.(type) {
	case testcases.Sampled:
		jc.Op = "sampled/" + op.Convention.String()
		for _, s := range op.Segments {
			jc.Segments = append(jc.Segments, jsonSegment{
				Shape:    shapeName(s.Shape),
				Start:    s.Start,
				End:      s.End,
				Samples:  s.Samples,
				Offset:   s.Offset,
				Duration: s.Duration,
				Reverse:  s.Reverse,
			})
		}
	case testcases.Generated:
		jc.Op = "generated"
		jc.Rate = op.Rate
		jc.Delay = op.Delay
	}
	return jc
}

func shapeName(s piecewise.Shape) string {
	switch s := s.(type) {
	case piecewise.Polynomial:
		return fmt.Sprintf("polynomial%v", []float64(s))
	case piecewise.Bump:
		return fmt.Sprintf("bump(scale=%g, offset=%g)", s.Scale, s.Offset)
	default:
		return fmt.Sprintf("%T", s)
	}
}
