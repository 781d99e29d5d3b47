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

package vga

import "fmt"

// Attr is the attribute byte of a cell. The low nibble selects the text
// color and the high nibble selects the background color.
type Attr uint8

// NewAttr combines a text and a background color into an attribute byte.
func NewAttr(fg, bg Color) Attr {
	return Attr(uint8(bg)<<4 | uint8(fg)&0x0f)
}

// Foreground returns the text color of the attribute.
func (a Attr) Foreground() Color {
	return Color(a & 0x0f)
}

// Background returns the background color of the attribute.
func (a Attr) Background() Color {
	return Color(a >> 4)
}

func (a Attr) String() string {
	return fmt.Sprintf("%s on %s", a.Foreground(), a.Background())
}

// ClearChar is the character used for cells that show nothing.
const ClearChar = byte(' ')

// SubstituteChar is displayed in place of any byte the text mode character
// set cannot show. It appears as a small square in the hardware font.
const SubstituteChar = byte(0xfe)

// Cell is the two byte display unit of the text mode surface.
type Cell struct {
	Char byte
	Attr Attr
}

func (c Cell) String() string {
	return fmt.Sprintf("%c (%s)", c.Char, c.Attr)
}

// the framebuffer keeps a cell in a single uint16, attribute byte in the
// high byte and character code in the low byte
func (c Cell) pack() uint16 {
	return uint16(c.Attr)<<8 | uint16(c.Char)
}

func unpack(v uint16) Cell {
	return Cell{Char: byte(v), Attr: Attr(v >> 8)}
}
