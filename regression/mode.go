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

package regression

import (
	"strings"

	"github.com/jetsetilly/gophervga/curated"
)

// Mode specifies what part of the console output is fingerprinted for a
// regression entry.
type Mode int

// Valid Mode values. Use String() and ParseMode() to convert to and from
// the string representation stored in the database.
const (
	ModeUndefined Mode = iota

	// a fingerprint of the surface cells, as seen by the digest package
	ModeCells

	// a fingerprint of the ANSI rendering of the surface, as produced by
	// the plainterm package
	ModeRender
)

func (mod Mode) String() string {
	switch mod {
	case ModeCells:
		return "cells"
	case ModeRender:
		return "render"
	}
	return "undefined"
}

// ParseMode converts the string representation of a fingerprint mode to the
// Mode type.
func ParseMode(mode string) (Mode, error) {
	switch strings.ToLower(mode) {
	case "cells":
		return ModeCells, nil
	case "render":
		return ModeRender, nil
	}
	return ModeUndefined, curated.Errorf("regression: invalid fingerprint mode (%s)", mode)
}
