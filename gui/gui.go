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

// Package gui defines the operations required of a display for the character
// surface.
package gui

import (
	"github.com/jetsetilly/gophervga/vga"
)

// Viewer is a display for the character surface. In addition to receiving
// the surface through the vga.Renderer interface, a Viewer has a lifecycle
// and a way of telling its owner that the user no longer wants to look.
//
// There are two implementations: the CellView in the cellview sub-package,
// which works everywhere, and the ColorTerminal in the terminal/colorterm
// package, which requires a posix terminal.
type Viewer interface {
	vga.Renderer

	// Initialise the viewer. The viewer is not usable before a successful
	// Initialise.
	Initialise() error

	// CleanUp releases everything acquired by Initialise. The viewer is not
	// usable afterwards.
	CleanUp()

	// Quit returns a channel that is closed when the user asks the viewer to
	// close.
	Quit() <-chan bool
}
