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

import "image/color"

// Color represents one entry in the sixteen color text mode palette.
type Color uint8

// The sixteen colors of the text mode palette. The first eight can be used
// for both text and background. The second eight are the bright versions of
// the first eight and are ordinarily only available for text.
const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	Pink
	Yellow
	White
	NumColors
)

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case Blue:
		return "blue"
	case Green:
		return "green"
	case Cyan:
		return "cyan"
	case Red:
		return "red"
	case Magenta:
		return "magenta"
	case Brown:
		return "brown"
	case LightGray:
		return "light gray"
	case DarkGray:
		return "dark gray"
	case LightBlue:
		return "light blue"
	case LightGreen:
		return "light green"
	case LightCyan:
		return "light cyan"
	case LightRed:
		return "light red"
	case Pink:
		return "pink"
	case Yellow:
		return "yellow"
	case White:
		return "white"
	}
	return "unknown"
}

// Palette is the RGB rendering of the text mode palette, using the values
// produced by the hardware DAC in its default state. Front-ends that work
// with real colors rather than palette indices should use this table.
var Palette = color.Palette{
	color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}, /* black */
	color.RGBA{R: 0x00, G: 0x00, B: 0xaa, A: 0xff}, /* blue */
	color.RGBA{R: 0x00, G: 0xaa, B: 0x00, A: 0xff}, /* green */
	color.RGBA{R: 0x00, G: 0xaa, B: 0xaa, A: 0xff}, /* cyan */
	color.RGBA{R: 0xaa, G: 0x00, B: 0x00, A: 0xff}, /* red */
	color.RGBA{R: 0xaa, G: 0x00, B: 0xaa, A: 0xff}, /* magenta */
	color.RGBA{R: 0xaa, G: 0x55, B: 0x00, A: 0xff}, /* brown */
	color.RGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}, /* light gray */
	color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}, /* dark gray */
	color.RGBA{R: 0x55, G: 0x55, B: 0xff, A: 0xff}, /* light blue */
	color.RGBA{R: 0x55, G: 0xff, B: 0x55, A: 0xff}, /* light green */
	color.RGBA{R: 0x55, G: 0xff, B: 0xff, A: 0xff}, /* light cyan */
	color.RGBA{R: 0xff, G: 0x55, B: 0x55, A: 0xff}, /* light red */
	color.RGBA{R: 0xff, G: 0x55, B: 0xff, A: 0xff}, /* pink */
	color.RGBA{R: 0xff, G: 0xff, B: 0x55, A: 0xff}, /* yellow */
	color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, /* white */
}
