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

package digest_test

import (
	"testing"

	"github.com/jetsetilly/gophervga/digest"
	"github.com/jetsetilly/gophervga/test"
	"github.com/jetsetilly/gophervga/vga"
)

// fill puts a recognisable pattern onto the renderer. different seeds produce
// different cell content.
func fill(dig *digest.Grid, seed int) {
	for row := 0; row < vga.Rows; row++ {
		for col := 0; col < vga.Cols; col++ {
			ch := byte(0x20 + ((seed + row + col) % 0x5f))
			dig.SetCell(row, col, vga.Cell{Char: ch, Attr: vga.DefaultAttr})
		}
	}
}

func TestHashFormat(t *testing.T) {
	dig := digest.NewGrid()

	// sha1 produces 20 bytes. two characters per byte once stringified
	test.Equate(t, len(dig.Hash()), 40)

	// the digest starts out at zero
	test.Equate(t, dig.Hash(), "0000000000000000000000000000000000000000")
}

func TestStability(t *testing.T) {
	a := digest.NewGrid()
	b := digest.NewGrid()

	fill(a, 1)
	fill(b, 1)
	test.ExpectedSuccess(t, a.Flush())
	test.ExpectedSuccess(t, b.Flush())

	// the same cell content must always produce the same hash
	test.Equate(t, a.Hash(), b.Hash())
}

func TestSensitivity(t *testing.T) {
	base := digest.NewGrid()
	char := digest.NewGrid()
	attr := digest.NewGrid()

	base.SetCell(12, 40, vga.Cell{Char: 'a', Attr: vga.NewAttr(vga.Yellow, vga.Black)})
	char.SetCell(12, 40, vga.Cell{Char: 'b', Attr: vga.NewAttr(vga.Yellow, vga.Black)})
	attr.SetCell(12, 40, vga.Cell{Char: 'a', Attr: vga.NewAttr(vga.Red, vga.Black)})

	test.ExpectedSuccess(t, base.Flush())
	test.ExpectedSuccess(t, char.Flush())
	test.ExpectedSuccess(t, attr.Flush())

	if base.Hash() == char.Hash() {
		t.Errorf("hash not sensitive to character changes")
	}
	if base.Hash() == attr.Hash() {
		t.Errorf("hash not sensitive to attribute changes")
	}
}

func TestChaining(t *testing.T) {
	// one flush per cell
	a := digest.NewGrid()
	a.SetCell(0, 0, vga.Cell{Char: 'x', Attr: vga.DefaultAttr})
	test.ExpectedSuccess(t, a.Flush())
	a.SetCell(0, 1, vga.Cell{Char: 'y', Attr: vga.DefaultAttr})
	test.ExpectedSuccess(t, a.Flush())

	// the same cells in a single flush
	b := digest.NewGrid()
	b.SetCell(0, 0, vga.Cell{Char: 'x', Attr: vga.DefaultAttr})
	b.SetCell(0, 1, vga.Cell{Char: 'y', Attr: vga.DefaultAttr})
	test.ExpectedSuccess(t, b.Flush())

	// the cell content is now identical but the histories are not
	if a.Hash() == b.Hash() {
		t.Errorf("hash not sensitive to surface history")
	}
}

func TestResetDigest(t *testing.T) {
	a := digest.NewGrid()
	fill(a, 1)
	test.ExpectedSuccess(t, a.Flush())
	test.ExpectedSuccess(t, a.Flush())

	// resetting restarts the chain. a flush after a reset produces the same
	// value as the first flush of a fresh Grid with the same cells
	a.ResetDigest()
	test.Equate(t, a.Hash(), "0000000000000000000000000000000000000000")
	test.ExpectedSuccess(t, a.Flush())

	b := digest.NewGrid()
	fill(b, 1)
	test.ExpectedSuccess(t, b.Flush())

	test.Equate(t, a.Hash(), b.Hash())
}

func TestSurface(t *testing.T) {
	run := func(text string) string {
		srf := vga.NewSurface()
		dig := digest.NewGrid()
		srf.AddRenderer(dig)

		wrt := vga.NewWriter(srf)
		_, _ = wrt.WriteString(text)
		test.ExpectedSuccess(t, srf.Flush())

		return dig.Hash()
	}

	test.Equate(t, run("hello, world"), run("hello, world"))

	if run("hello, world") == run("hello, world!") {
		t.Errorf("hash does not differentiate surfaces")
	}
}
