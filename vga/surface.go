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

import (
	"fmt"
	"reflect"
	"unsafe"
)

// Dimensions of the text mode grid. These are fixed by the hardware mode and
// the Surface is never resized.
const (
	Rows = 25
	Cols = 80
)

// FramebufferAddr is the physical address of the text mode framebuffer on PC
// hardware. Useful as the argument to MapSurface() in an environment where
// that address has been identity mapped.
const FramebufferAddr = uintptr(0xb8000)

// Surface is the text mode display device. Cell memory is reachable only
// through the Poke() and Peek() functions. Each call acts directly on the
// backing memory, there is no caching or shadowing of cell data inside the
// Surface itself.
type Surface struct {
	fb []uint16

	// list of attached renderers. every Poke() is relayed to every renderer
	renderers []Renderer
}

// NewSurface returns a Surface backed by ordinary process memory. Every cell
// starts out as zero, which is not a blank cell. Callers that want a blank
// display should clear the surface through a Writer.
func NewSurface() *Surface {
	return &Surface{
		fb: make([]uint16, Rows*Cols),
	}
}

// MapSurface returns a Surface laid over the framebuffer at the given
// address. The address must already be mapped into the address space with
// read and write permission. The cells of the returned Surface alias the
// framebuffer memory, nothing is copied.
func MapSurface(physAddr uintptr) *Surface {
	s := &Surface{}
	*(*reflect.SliceHeader)(unsafe.Pointer(&s.fb)) = reflect.SliceHeader{
		Len:  Rows * Cols,
		Cap:  Rows * Cols,
		Data: physAddr,
	}
	return s
}

// Poke writes a cell at the given coordinates. Coordinates outside the grid
// are a contract violation and cause a panic, the device never clips.
func (s *Surface) Poke(row int, col int, cell Cell) {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		panic(fmt.Sprintf("vga: poke outside the surface (row %d, col %d)", row, col))
	}

	s.fb[row*Cols+col] = cell.pack()

	for _, r := range s.renderers {
		r.SetCell(row, col, cell)
	}
}

// Peek reads the cell at the given coordinates. Coordinates outside the grid
// are a contract violation and cause a panic.
func (s *Surface) Peek(row int, col int) Cell {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		panic(fmt.Sprintf("vga: peek outside the surface (row %d, col %d)", row, col))
	}

	return unpack(s.fb[row*Cols+col])
}

// AddRenderer attaches a Renderer to the surface. The renderer is brought up
// to date with the current content of every cell before the function
// returns.
func (s *Surface) AddRenderer(r Renderer) {
	s.renderers = append(s.renderers, r)

	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			r.SetCell(row, col, unpack(s.fb[row*Cols+col]))
		}
	}
}

// Flush asks every attached renderer to make the accumulated cell updates
// visible. The first renderer error ends the flush.
func (s *Surface) Flush() error {
	for _, r := range s.renderers {
		if err := r.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// End instructs every attached renderer to finalise. The surface itself
// remains usable but renderers should be considered dead after this.
func (s *Surface) End() error {
	for _, r := range s.renderers {
		if err := r.EndRendering(); err != nil {
			return err
		}
	}
	return nil
}
