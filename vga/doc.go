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

// Package vga emulates the VGA text mode display and implements a driver for
// it. The text mode presents a fixed grid of 25 rows and 80 columns. Each
// cell of the grid is two bytes: an ASCII character code and an attribute
// byte selecting the foreground and background colors from the sixteen color
// text mode palette.
//
// The Surface type is the device. It owns the cell memory and allows access
// only through the Poke() and Peek() functions, each call acting directly on
// the backing memory. A Surface is normally backed by process memory but can
// also be laid over a pre-mapped framebuffer address with MapSurface().
//
// The Writer type is the driver proper. It tracks a cursor column on the
// bottom row of the surface and interprets a byte stream: printable ASCII
// advances the cursor, the newline byte starts a new line, every other byte
// is displayed as the substitution character. Writing past the last column
// or starting a new line scrolls the surface up by one row.
//
// The Console type shares one Writer between any number of goroutines, with
// a spin lock serialising access. Console implements the io.Writer interface
// and is the type the rest of the application should depend on. A
// package-level Console is available through the Print(), Printf() and
// Println() functions and is created on first use.
//
// Visual output is delegated to implementations of the Renderer interface.
// Renderers attached to a Surface with AddRenderer() receive every cell
// update as it happens and are asked to Flush() at the end of every console
// write.
package vga
