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

// Renderer implementations display, or otherwise work with, cell information
// from a Surface. For example digest.Grid.
//
// Renderer implementations should keep whatever display side state they need
// to satisfy Flush() without touching the Surface. The SetCell() function
// gives them every cell update as it happens.
//
// When the Surface belongs to a Console, SetCell() and Flush() arrive on
// whichever goroutine wrote to the console. Cell updates within one batch
// never overlap but a Flush() can overlap the next batch, so implementations
// must guard their own state.
type Renderer interface {
	// SetCell is called for every Poke() on the Surface the renderer is
	// attached to. The cell carries the character and its attribute byte.
	//
	// A renderer attached with AddRenderer() receives the current content of
	// the whole surface through SetCell() before AddRenderer() returns.
	SetCell(row int, col int, cell Cell)

	// Flush is called when a batch of cell updates is complete and should be
	// made visible.
	Flush() error

	// some renderers may need to conclude and/or dispose of resources gently.
	// for simplicity, the Renderer should be considered unusable after
	// EndRendering() has been called
	EndRendering() error
}
