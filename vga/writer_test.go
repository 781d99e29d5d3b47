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

package vga_test

import (
	"testing"

	"github.com/jetsetilly/gophervga/test"
	"github.com/jetsetilly/gophervga/vga"
)

// equateCell tests the cell at the given coordinates against an expected
// value.
func equateCell(t *testing.T, surface *vga.Surface, row int, col int, expected vga.Cell) {
	t.Helper()
	c := surface.Peek(row, col)
	if c != expected {
		t.Errorf("unexpected cell at (%d, %d): %s - wanted %s", row, col, c, expected)
	}
}

// equateRowText tests the text of a row against an expected string. Cells
// after the expected string must be blank cells in the expected attribute.
func equateRowText(t *testing.T, surface *vga.Surface, row int, text string, attr vga.Attr) {
	t.Helper()
	for col := 0; col < vga.Cols; col++ {
		expected := vga.Cell{Char: vga.ClearChar, Attr: attr}
		if col < len(text) {
			expected = vga.Cell{Char: text[col], Attr: attr}
		}
		c := surface.Peek(row, col)
		if c != expected {
			t.Errorf("unexpected cell at (%d, %d): %s - wanted %s", row, col, c, expected)
		}
	}
}

func TestFirstByte(t *testing.T) {
	surface := vga.NewSurface()
	wrt := vga.NewWriter(surface)

	test.Equate(t, wrt.Col(), 0)
	test.ExpectedSuccess(t, wrt.WriteByte('A'))
	test.Equate(t, wrt.Col(), 1)

	equateCell(t, surface, vga.Rows-1, 0, vga.Cell{Char: 'A', Attr: vga.DefaultAttr})

	// every row above the bottom row is untouched
	for row := 0; row < vga.Rows-1; row++ {
		for col := 0; col < vga.Cols; col++ {
			equateCell(t, surface, row, col, vga.Cell{})
		}
	}
}

func TestNewline(t *testing.T) {
	surface := vga.NewSurface()
	wrt := vga.NewWriter(surface)

	n, err := wrt.Write([]byte("AB"))
	test.ExpectedSuccess(t, err)
	test.Equate(t, n, 2)
	test.Equate(t, wrt.Col(), 2)

	// the newline byte displays nothing and returns the cursor to the first
	// column
	test.ExpectedSuccess(t, wrt.WriteByte('\n'))
	test.Equate(t, wrt.Col(), 0)

	equateCell(t, surface, vga.Rows-2, 0, vga.Cell{Char: 'A', Attr: vga.DefaultAttr})
	equateCell(t, surface, vga.Rows-2, 1, vga.Cell{Char: 'B', Attr: vga.DefaultAttr})

	// the bottom row has been blanked
	for col := 0; col < vga.Cols; col++ {
		equateCell(t, surface, vga.Rows-1, col, vga.Cell{Char: vga.ClearChar, Attr: vga.DefaultAttr})
	}
}

func TestFullRow(t *testing.T) {
	surface := vga.NewSurface()
	wrt := vga.NewWriter(surface)

	line := make([]byte, vga.Cols)
	for i := range line {
		line[i] = byte('a' + i%26)
	}

	n, err := wrt.Write(line)
	test.ExpectedSuccess(t, err)
	test.Equate(t, n, vga.Cols)

	// the row is full but no line advance has happened yet
	test.Equate(t, wrt.Col(), vga.Cols)
	for col := 0; col < vga.Cols; col++ {
		equateCell(t, surface, vga.Rows-1, col, vga.Cell{Char: line[col], Attr: vga.DefaultAttr})
		equateCell(t, surface, vga.Rows-2, col, vga.Cell{})
	}

	// the Cols+1'th byte of the line causes exactly one line advance before
	// it is displayed
	test.ExpectedSuccess(t, wrt.WriteByte('!'))
	test.Equate(t, wrt.Col(), 1)

	// the full row has moved up in its entirety
	for col := 0; col < vga.Cols; col++ {
		equateCell(t, surface, vga.Rows-2, col, vga.Cell{Char: line[col], Attr: vga.DefaultAttr})
	}

	equateCell(t, surface, vga.Rows-1, 0, vga.Cell{Char: '!', Attr: vga.DefaultAttr})
	for col := 1; col < vga.Cols; col++ {
		equateCell(t, surface, vga.Rows-1, col, vga.Cell{Char: vga.ClearChar, Attr: vga.DefaultAttr})
	}
}

func TestLineAdvance(t *testing.T) {
	surface := vga.NewSurface()
	wrt := vga.NewWriter(surface)

	// put recognisable text on several rows
	for _, s := range []string{"top row", "middle row", "bottom row"} {
		_, err := wrt.WriteString(s)
		test.ExpectedSuccess(t, err)
		test.ExpectedSuccess(t, wrt.WriteByte('\n'))
	}

	// snapshot the surface before the next line advance
	var before [vga.Rows][vga.Cols]vga.Cell
	for row := 0; row < vga.Rows; row++ {
		for col := 0; col < vga.Cols; col++ {
			before[row][col] = surface.Peek(row, col)
		}
	}

	test.ExpectedSuccess(t, wrt.WriteByte('\n'))

	// every row has moved up by one, across the full width of the surface
	for row := 1; row < vga.Rows; row++ {
		for col := 0; col < vga.Cols; col++ {
			equateCell(t, surface, row-1, col, before[row][col])
		}
	}

	// the bottom row is blank in the active attribute
	for col := 0; col < vga.Cols; col++ {
		equateCell(t, surface, vga.Rows-1, col, vga.Cell{Char: vga.ClearChar, Attr: vga.DefaultAttr})
	}

	test.Equate(t, wrt.Col(), 0)
}

func TestSanitisation(t *testing.T) {
	for b := 0; b < 256; b++ {
		if b == '\n' {
			continue
		}

		surface := vga.NewSurface()
		wrt := vga.NewWriter(surface)

		n, err := wrt.Write([]byte{byte(b)})
		test.ExpectedSuccess(t, err)
		test.Equate(t, n, 1)

		expected := byte(b)
		if b < 0x20 || b > 0x7e {
			expected = vga.SubstituteChar
		}

		c := surface.Peek(vga.Rows-1, 0)
		if c.Char != expected {
			t.Errorf("unexpected character for byte %#02x: %#02x - wanted %#02x", b, c.Char, expected)
		}
	}
}

func TestAttrRoundTrip(t *testing.T) {
	surface := vga.NewSurface()
	wrt := vga.NewWriter(surface)

	hot := vga.NewAttr(vga.LightRed, vga.Black)
	cold := vga.NewAttr(vga.LightCyan, vga.Blue)

	wrt.SetAttr(hot)
	test.Equate(t, uint8(wrt.Attr()), uint8(hot))
	_, err := wrt.WriteString("hot")
	test.ExpectedSuccess(t, err)

	wrt.SetAttr(cold)
	_, err = wrt.WriteString("cold")
	test.ExpectedSuccess(t, err)

	test.Equate(t, wrt.Col(), 7)

	// cells keep the attribute that was active when they were written
	for col, c := range []byte("hot") {
		equateCell(t, surface, vga.Rows-1, col, vga.Cell{Char: c, Attr: hot})
	}
	for col, c := range []byte("cold") {
		equateCell(t, surface, vga.Rows-1, col+3, vga.Cell{Char: c, Attr: cold})
	}
}

func TestTwoLines(t *testing.T) {
	surface := vga.NewSurface()
	wrt := vga.NewWriter(surface)

	wrt.Clear()

	n, err := wrt.Write([]byte("AB\nC"))
	test.ExpectedSuccess(t, err)
	test.Equate(t, n, 4)
	test.Equate(t, wrt.Col(), 1)

	equateRowText(t, surface, vga.Rows-2, "AB", vga.DefaultAttr)
	equateRowText(t, surface, vga.Rows-1, "C", vga.DefaultAttr)
}

func TestSubstituteAtCursor(t *testing.T) {
	surface := vga.NewSurface()
	wrt := vga.NewWriter(surface)

	_, err := wrt.Write([]byte{0x01})
	test.ExpectedSuccess(t, err)
	equateCell(t, surface, vga.Rows-1, 0, vga.Cell{Char: vga.SubstituteChar, Attr: vga.DefaultAttr})
}

func TestClear(t *testing.T) {
	surface := vga.NewSurface()
	wrt := vga.NewWriter(surface)

	_, err := wrt.WriteString("some text\nspread over\nthree rows")
	test.ExpectedSuccess(t, err)

	attr := vga.NewAttr(vga.White, vga.Green)
	wrt.SetAttr(attr)
	wrt.Clear()

	test.Equate(t, wrt.Col(), 0)
	for row := 0; row < vga.Rows; row++ {
		equateRowText(t, surface, row, "", attr)
	}
}
