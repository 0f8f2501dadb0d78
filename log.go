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
	"log/slog"

	"seehuhn.de/go/piecewise/internal/logger"
)

// SetLogger configures the logger used by piecewise and its
// sub-packages.  By default nothing is logged.  Passing nil restores
// the default.
//
// Evaluation and placement are reported at [slog.LevelDebug].
func SetLogger(l *slog.Logger) {
	logger.Set(l)
}

// Logger returns the logger used by piecewise.
func Logger() *slog.Logger {
	return logger.Get()
}
