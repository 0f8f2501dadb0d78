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
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPackageDoc checks that the licence header is kept apart from the
// package comment, and that exactly one file documents the package.
func TestPackageDoc(t *testing.T) {
	files, err := filepath.Glob("*.go")
	require.NoError(t, err)

	documented := 0
	for _, fname := range files {
		f, err := parser.ParseFile(token.NewFileSet(), fname, nil,
			parser.PackageClauseOnly|parser.ParseComments)
		require.NoError(t, err, fname)
		if f.Doc == nil {
			continue
		}
		text := f.Doc.Text()
		assert.NotContains(t, text, "Copyright", fname)
		if strings.HasPrefix(text, "Package piecewise ") {
			documented++
		}
	}
	assert.Equal(t, 1, documented)
}
