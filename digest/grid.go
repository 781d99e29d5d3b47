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

package digest

import (
	"crypto/sha1"
	"fmt"
	"sync"

	"github.com/jetsetilly/gophervga/curated"
	"github.com/jetsetilly/gophervga/vga"
)

// Grid is an implementation of the vga.Renderer interface. It generates a
// SHA-1 value of the character surface on every flush. It does not display
// the surface anywhere.
//
// Note that the use of SHA-1 is fine for this application because this is
// not a cryptographic task.
type Grid struct {
	// cell updates and flushes arrive on whichever goroutine wrote to the
	// console, see the vga.Renderer documentation
	crit   sync.Mutex
	digest [sha1.Size]byte
	cells  []byte
}

// every cell contributes its character code and its attribute byte.
const cellDepth = 2

// NewGrid is the preferred method of initialisation for the Grid type.
func NewGrid() *Grid {
	dig := &Grid{}

	// the cell data is prefixed with enough room for the previous digest
	// value
	dig.cells = make([]byte, sha1.Size+(vga.Rows*vga.Cols*cellDepth))

	return dig
}

// Hash implements the digest.Digest interface.
func (dig *Grid) Hash() string {
	dig.crit.Lock()
	defer dig.crit.Unlock()
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the digest.Digest interface.
func (dig *Grid) ResetDigest() {
	dig.crit.Lock()
	defer dig.crit.Unlock()
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// SetCell implements the vga.Renderer interface.
func (dig *Grid) SetCell(row int, col int, cell vga.Cell) {
	dig.crit.Lock()
	defer dig.crit.Unlock()
	i := len(dig.digest)
	i += ((row * vga.Cols) + col) * cellDepth
	dig.cells[i] = cell.Char
	dig.cells[i+1] = byte(cell.Attr)
}

// Flush implements the vga.Renderer interface. Fingerprints are chained: the
// previous digest value is folded into the head of the cell data before the
// new value is computed, so the hash reflects the history of the surface and
// not just its latest content.
func (dig *Grid) Flush() error {
	dig.crit.Lock()
	defer dig.crit.Unlock()
	n := copy(dig.cells, dig.digest[:])
	if n != len(dig.digest) {
		return curated.Errorf("digest: error while chaining fingerprints")
	}
	dig.digest = sha1.Sum(dig.cells)
	return nil
}

// EndRendering implements the vga.Renderer interface.
func (dig *Grid) EndRendering() error {
	return nil
}
