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

// Package terminal contains the parts common to the terminal renderings of
// the character surface. The two renderings are found in the plainterm and
// colorterm sub-packages: the first dumps a snapshot of the surface to any
// io.Writer, the second is a live viewer for an interactive terminal.
//
// The first shared part is the translation of the sixteen color text mode
// palette to ANSI pens. The match is approximate. ANSI terminals define eight
// base colors plus a bright version of each, which is close enough to the
// dim/bright split of the hardware palette that every attribute byte can be
// given a usable pen.
//
// The second shared part is the translation of character codes to unicode.
// The hardware font is code page 437 so for the most part the translation is
// a matter of deferring to the charmap package.
package terminal

import (
	"fmt"

	"github.com/jetsetilly/gophervga/terminal/ansi"
	"github.com/jetsetilly/gophervga/vga"
	"golang.org/x/text/encoding/charmap"
)

// pens is the translation of every possible attribute byte, prepared during
// package initialisation.
var pens [256]string

// penName converts a palette entry to the nearest ANSI color name, along with
// whether the bright version of that name is required.
func penName(col vga.Color) (string, bool) {
	switch col {
	case vga.Black:
		return "black", false
	case vga.Blue:
		return "blue", false
	case vga.Green:
		return "green", false
	case vga.Cyan:
		return "cyan", false
	case vga.Red:
		return "red", false
	case vga.Magenta:
		return "magenta", false
	case vga.Brown:
		return "yellow", false
	case vga.LightGray:
		return "white", false
	case vga.DarkGray:
		return "black", true
	case vga.LightBlue:
		return "blue", true
	case vga.LightGreen:
		return "green", true
	case vga.LightCyan:
		return "cyan", true
	case vga.LightRed:
		return "red", true
	case vga.Pink:
		return "magenta", true
	case vga.Yellow:
		return "yellow", true
	case vga.White:
		return "white", true
	}
	return "normal", false
}

func init() {
	for a := 0; a < len(pens); a++ {
		attr := vga.Attr(a)
		pen, brightPen := penName(attr.Foreground())
		paper, brightPaper := penName(attr.Background())

		s, err := ansi.ColorBuild(pen, paper, "", brightPen, brightPaper)
		if err != nil {
			fmt.Println(err)
		}
		pens[a] = s
	}
}

// Pen returns the CSI sequence that switches the terminal to the nearest ANSI
// approximation of the attribute byte.
func Pen(attr vga.Attr) string {
	return pens[attr]
}

// the hardware font gives visible glyphs to the control codes. the code page
// tables map these to the control codes themselves, which are no use for
// display, so the glyph forms are kept separately.
var controlGlyphs = [0x20]rune{
	' ', '☺', '☻', '♥', '♦', '♣', '♠', '•',
	'◘', '○', '◙', '♂', '♀', '♪', '♫', '☼',
	'►', '◄', '↕', '‼', '¶', '§', '▬', '↨',
	'↑', '↓', '→', '←', '∟', '↔', '▲', '▼',
}

// Glyph returns the unicode equivalent of the glyph the hardware font shows
// for a character code.
func Glyph(char byte) rune {
	if char < 0x20 {
		return controlGlyphs[char]
	}
	if char == 0x7f {
		return '⌂'
	}
	return charmap.CodePage437.DecodeByte(char)
}
