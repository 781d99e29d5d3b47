// This file is part of GopherVGA.
//
// GopherVGA is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherVGA is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherVGA.  If not, see <https://www.gnu.org/licenses/>.

package ansi_test

import (
	"testing"

	"github.com/jetsetilly/gophervga/terminal/ansi"
	"github.com/jetsetilly/gophervga/test"
)

func TestColorBuild(t *testing.T) {
	s, err := ansi.ColorBuild("red", "", "", false, false)
	test.ExpectedSuccess(t, err)
	test.Equate(t, s, "\033[31m")

	s, err = ansi.ColorBuild("red", "", "", true, false)
	test.ExpectedSuccess(t, err)
	test.Equate(t, s, "\033[91m")

	s, err = ansi.ColorBuild("yellow", "blue", "", false, false)
	test.ExpectedSuccess(t, err)
	test.Equate(t, s, "\033[33;44m")

	s, err = ansi.ColorBuild("white", "black", "", true, true)
	test.ExpectedSuccess(t, err)
	test.Equate(t, s, "\033[97;100m")

	s, err = ansi.ColorBuild("", "green", "", false, false)
	test.ExpectedSuccess(t, err)
	test.Equate(t, s, "\033[42m")

	s, err = ansi.ColorBuild("", "", "bold", false, false)
	test.ExpectedSuccess(t, err)
	test.Equate(t, s, "\033[1m")

	s, err = ansi.ColorBuild("", "", "strike", false, false)
	test.ExpectedSuccess(t, err)
	test.Equate(t, s, "\033[9m")

	_, err = ansi.ColorBuild("puce", "", "", false, false)
	test.ExpectedFailure(t, err)

	_, err = ansi.ColorBuild("", "puce", "", false, false)
	test.ExpectedFailure(t, err)

	_, err = ansi.ColorBuild("", "", "flashing", false, false)
	test.ExpectedFailure(t, err)
}

func TestPens(t *testing.T) {
	test.Equate(t, ansi.NormalPen, "\033[m")

	// pens specify the default paper alongside the color
	test.Equate(t, ansi.Pens["red"], "\033[91;49m")
	test.Equate(t, ansi.DimPens["red"], "\033[31;49m")

	test.Equate(t, ansi.PenStyles["bold"], "\033[1m")
	test.Equate(t, ansi.PenStyles["underline"], "\033[4m")
}
