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

//go:build !windows
// +build !windows

// Package colorterm is a live view of the character surface for ANSI
// terminals. The surface is redrawn whenever it is flushed, using the
// terminal translations of the hardware palette and font.
//
// The terminal is kept in raw mode for the lifetime of the view. The q,
// escape and ctrl-c keys ask the view to quit, a request that is visible
// through the Quit() channel. The ctrl-z key suspends the process, restoring
// the terminal until the process is continued.
package colorterm

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/jetsetilly/gophervga/curated"
	"github.com/jetsetilly/gophervga/terminal"
	"github.com/jetsetilly/gophervga/terminal/ansi"
	"github.com/jetsetilly/gophervga/terminal/colorterm/easyterm"
	"github.com/jetsetilly/gophervga/vga"
	"golang.org/x/term"
)

// ColorTerminal is a display for the character surface in an ANSI terminal.
// It implements the gui.Viewer interface.
type ColorTerminal struct {
	easyterm.Terminal

	// the local copy of the surface. keeping a copy means a redraw is
	// possible at any time, not just when a cell changes
	crit sync.Mutex
	grid [vga.Rows][vga.Cols]vga.Cell

	quit     chan bool
	quitOnce sync.Once
}

// Initialise implements the gui.Viewer interface.
func (ct *ColorTerminal) Initialise() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return curated.Errorf("colorterm: %v", "not a real terminal")
	}

	if err := ct.Terminal.Initialise(os.Stdin, os.Stdout); err != nil {
		return curated.Errorf("colorterm: %v", err)
	}

	ct.quit = make(chan bool)

	ct.RawMode()
	ct.TermPrint(ansi.CursorHide)
	ct.TermPrint(ansi.ClearScreen)
	ct.TermPrint(ansi.CursorHome)

	go ct.inputLoop()

	// redraw on changes of window size
	go func() {
		for {
			select {
			case <-ct.Resized:
				ct.crit.Lock()
				ct.TermPrint(ansi.ClearScreen)
				ct.draw()
				ct.crit.Unlock()
			case <-ct.quit:
				return
			}
		}
	}()

	return nil
}

// CleanUp implements the gui.Viewer interface. The terminal is of no use
// after CleanUp.
func (ct *ColorTerminal) CleanUp() {
	ct.crit.Lock()
	_ = ct.FlushBuffers()
	ct.TermPrint(ansi.NormalPen)
	ct.TermPrint(ansi.CursorShow)
	ct.TermPrint("\r\n")
	ct.CanonicalMode()
	ct.crit.Unlock()

	ct.Terminal.CleanUp()
}

// Quit implements the gui.Viewer interface. The returned channel is closed
// when the user asks the view to quit.
func (ct *ColorTerminal) Quit() <-chan bool {
	return ct.quit
}

// SetCell implements the vga.Renderer interface.
func (ct *ColorTerminal) SetCell(row int, col int, cell vga.Cell) {
	ct.crit.Lock()
	defer ct.crit.Unlock()
	ct.grid[row][col] = cell
}

// Flush implements the vga.Renderer interface.
func (ct *ColorTerminal) Flush() error {
	ct.crit.Lock()
	defer ct.crit.Unlock()
	ct.draw()
	return nil
}

// EndRendering implements the vga.Renderer interface.
func (ct *ColorTerminal) EndRendering() error {
	return nil
}

// draw repaints the entire surface. the crit mutex must be held.
func (ct *ColorTerminal) draw() {
	rows, cols := ct.WindowSize()

	s := strings.Builder{}
	s.WriteString(ansi.CursorHome)

	if rows < vga.Rows || cols < vga.Cols {
		s.WriteString(ansi.ClearScreen)
		s.WriteString(ansi.PenStyles["bold"])
		s.WriteString(fmt.Sprintf("window is too small (%dx%d required)", vga.Cols, vga.Rows))
		s.WriteString(ansi.NormalPen)
		ct.TermPrint(s.String())
		return
	}

	pen := ""
	for row := 0; row < vga.Rows; row++ {
		for col := 0; col < vga.Cols; col++ {
			cell := ct.grid[row][col]
			if p := terminal.Pen(cell.Attr); p != pen {
				pen = p
				s.WriteString(p)
			}
			s.WriteRune(terminal.Glyph(cell.Char))
		}

		// no newline after the bottom row. it would scroll the window when
		// the window is exactly the height of the surface
		if row < vga.Rows-1 {
			s.WriteString("\r\n")
		}
	}
	s.WriteString(ansi.NormalPen)

	ct.TermPrint(s.String())
}

func (ct *ColorTerminal) inputLoop() {
	buf := make([]byte, 8)

	for {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			ct.quitOnce.Do(func() { close(ct.quit) })
			return
		}

		for _, b := range buf[:n] {
			switch b {
			case 'q', 'Q', easyterm.KeyInterrupt, easyterm.KeyEsc:
				ct.quitOnce.Do(func() { close(ct.quit) })
				return
			case easyterm.KeySuspend:
				ct.suspend()
			}
		}
	}
}

// suspend stops the process until it is continued, restoring the terminal
// for the duration.
func (ct *ColorTerminal) suspend() {
	ct.crit.Lock()
	ct.TermPrint(ansi.NormalPen)
	ct.TermPrint(ansi.CursorShow)
	ct.TermPrint("\r\n")
	ct.CanonicalMode()
	ct.crit.Unlock()

	easyterm.SuspendProcess()

	ct.crit.Lock()
	ct.RawMode()
	ct.TermPrint(ansi.CursorHide)
	ct.TermPrint(ansi.ClearScreen)
	ct.draw()
	ct.crit.Unlock()
}
