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

// All maps category names to scenarios.
var All = map[string][]Case{
	"demo":       demo,
	"polynomial": polynomial,
	"bump":       bump,
	"function":   function,
}

// Lookup returns the scenario with the given category and name.
func Lookup(category, name string) (Case, bool) {
	for _, c := range All[category] {
		if c.Name == name {
			return c, true
		}
	}
	return Case{}, false
}
