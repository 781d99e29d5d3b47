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

package terminal_test

import (
	"testing"

	"github.com/jetsetilly/gophervga/terminal"
	"github.com/jetsetilly/gophervga/test"
	"github.com/jetsetilly/gophervga/vga"
)

func TestPen(t *testing.T) {
	// the default pen. bright yellow text on a black background
	test.Equate(t, terminal.Pen(vga.DefaultAttr), "\033[93;40m")

	// brown is the dim version of yellow in the ANSI approximation
	test.Equate(t, terminal.Pen(vga.NewAttr(vga.Brown, vga.Black)), "\033[33;40m")

	// bright paper
	test.Equate(t, terminal.Pen(vga.NewAttr(vga.White, vga.Yellow)), "\033[97;103m")

	// every attribute byte has a pen
	for a := 0; a < 256; a++ {
		if terminal.Pen(vga.Attr(a)) == "" {
			t.Errorf("no pen for attribute %#02x", a)
		}
	}
}

func TestGlyph(t *testing.T) {
	// ascii passes through
	test.Equate(t, terminal.Glyph('A') == 'A', true)
	test.Equate(t, terminal.Glyph(' ') == ' ', true)

	// the substitution character is a small square in the hardware font
	test.Equate(t, terminal.Glyph(vga.SubstituteChar) == '■', true)

	// control codes show their code page 437 glyph forms
	test.Equate(t, terminal.Glyph(0x00) == ' ', true)
	test.Equate(t, terminal.Glyph(0x03) == '♥', true)
	test.Equate(t, terminal.Glyph(0x7f) == '⌂', true)

	// the high half of the code page
	test.Equate(t, terminal.Glyph(0xb0) == '░', true)
	test.Equate(t, terminal.Glyph(0xdb) == '█', true)
}
