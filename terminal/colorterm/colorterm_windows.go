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

//go:build windows
// +build windows

// Package colorterm is not available under windows. The cellview package
// works on every platform and should be used instead.
package colorterm

import (
	"github.com/jetsetilly/gophervga/curated"
	"github.com/jetsetilly/gophervga/vga"
)

// ColorTerminal is a display for the character surface in an ANSI terminal.
// It implements the gui.Viewer interface.
type ColorTerminal struct {
	quit chan bool
}

// Initialise implements the gui.Viewer interface.
func (ct *ColorTerminal) Initialise() error {
	return curated.Errorf("colorterm: %v", "not available on windows")
}

// CleanUp implements the gui.Viewer interface.
func (ct *ColorTerminal) CleanUp() {
}

// Quit implements the gui.Viewer interface.
func (ct *ColorTerminal) Quit() <-chan bool {
	return ct.quit
}

// SetCell implements the vga.Renderer interface.
func (ct *ColorTerminal) SetCell(row int, col int, cell vga.Cell) {
}

// Flush implements the vga.Renderer interface.
func (ct *ColorTerminal) Flush() error {
	return nil
}

// EndRendering implements the vga.Renderer interface.
func (ct *ColorTerminal) EndRendering() error {
	return nil
}
