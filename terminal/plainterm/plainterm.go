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

// Package plainterm renders a snapshot of the character surface to an
// io.Writer. It is as simple as simple can be: one call, one picture, no
// terminal state to manage. It is the renderer to use when the output is a
// file or a pipe rather than an interactive terminal.
package plainterm

import (
	"io"
	"strings"

	"github.com/jetsetilly/gophervga/curated"
	"github.com/jetsetilly/gophervga/terminal"
	"github.com/jetsetilly/gophervga/terminal/ansi"
	"github.com/jetsetilly/gophervga/vga"
)

// Render writes a snapshot of the surface to the writer. ANSI pens are used
// to approximate the hardware palette and unicode to approximate the hardware
// font.
func Render(w io.Writer, srf *vga.Surface) error {
	return render(w, srf, true)
}

// RenderMonochrome is like Render but without the ANSI pens. Because there is
// no background color to preserve, trailing blanks are trimmed from each row.
func RenderMonochrome(w io.Writer, srf *vga.Surface) error {
	return render(w, srf, false)
}

func render(w io.Writer, srf *vga.Surface, pens bool) error {
	s := strings.Builder{}

	for row := 0; row < vga.Rows; row++ {
		pen := ""
		for col := 0; col < vga.Cols; col++ {
			cell := srf.Peek(row, col)
			if pens {
				if p := terminal.Pen(cell.Attr); p != pen {
					pen = p
					s.WriteString(p)
				}
			}
			s.WriteRune(terminal.Glyph(cell.Char))
		}

		line := s.String()
		if pens {
			line += ansi.NormalPen
		} else {
			line = strings.TrimRight(line, " ")
		}

		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return curated.Errorf("plainterm: %v", err)
		}
		s.Reset()
	}

	return nil
}
