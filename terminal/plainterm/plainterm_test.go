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

package plainterm_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gophervga/terminal/plainterm"
	"github.com/jetsetilly/gophervga/test"
	"github.com/jetsetilly/gophervga/vga"
)

func TestRenderMonochrome(t *testing.T) {
	srf := vga.NewSurface()
	tw := &test.CompareWriter{}

	// an untouched surface renders as empty rows
	test.ExpectedSuccess(t, plainterm.RenderMonochrome(tw, srf))
	test.Equate(t, tw.Compare(strings.Repeat("\n", vga.Rows)), true)

	// text placed on the surface by a writer appears on the bottom row of the
	// rendering
	wrt := vga.NewWriter(srf)
	_, _ = wrt.WriteString("hello")

	tw.Clear()
	test.ExpectedSuccess(t, plainterm.RenderMonochrome(tw, srf))
	test.Equate(t, tw.Compare(strings.Repeat("\n", vga.Rows-1)+"hello\n"), true)
}

func TestRender(t *testing.T) {
	srf := vga.NewSurface()
	srf.Poke(0, 0, vga.Cell{Char: 'A', Attr: vga.DefaultAttr})

	tw := &test.CompareWriter{}
	test.ExpectedSuccess(t, plainterm.Render(tw, srf))

	// the first row switches to the default pen for the single character,
	// then to the pen of the untouched cells for the rest of the row
	s := strings.Builder{}
	s.WriteString("\033[93;40m")
	s.WriteString("A")
	s.WriteString("\033[30;40m")
	s.WriteString(strings.Repeat(" ", vga.Cols-1))
	s.WriteString("\033[m")
	s.WriteString("\n")

	// the remaining rows are a single pen of blanks
	for row := 1; row < vga.Rows; row++ {
		s.WriteString("\033[30;40m")
		s.WriteString(strings.Repeat(" ", vga.Cols))
		s.WriteString("\033[m")
		s.WriteString("\n")
	}

	test.Equate(t, tw.Compare(s.String()), true)
}

func TestRenderGlyphs(t *testing.T) {
	srf := vga.NewSurface()
	srf.Poke(0, 0, vga.Cell{Char: vga.SubstituteChar})
	srf.Poke(0, 1, vga.Cell{Char: 0xdb})

	tw := &test.CompareWriter{}
	test.ExpectedSuccess(t, plainterm.RenderMonochrome(tw, srf))
	test.Equate(t, tw.Compare("■█"+strings.Repeat("\n", vga.Rows)), true)
}
