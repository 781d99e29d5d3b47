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

package logger

import (
	"io"
	"strings"

	"github.com/jetsetilly/gophervga/terminal/ansi"
)

// Colorizer applies basic coloring rules to logging output. The tag part of
// an entry is dimmed, leaving the detail of the entry prominent.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method of initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	n = 0

	for _, l := range strings.Split(strings.TrimSpace(string(p)), "\n") {
		t := strings.SplitN(l, ": ", 2)
		if len(t) == 2 {
			m, err := c.out.Write([]byte(ansi.DimPens["white"] + t[0] + ": " + ansi.NormalPen))
			if err != nil {
				return n + m, err
			}
			n += m
			l = t[1]
		}

		m, err := c.out.Write([]byte(l + "\n"))
		if err != nil {
			return n + m, err
		}
		n += m
	}

	return n, nil
}
