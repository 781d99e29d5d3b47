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

// Package cellview is a live view of the character surface built on the
// tcell library. Unlike the colorterm package it works on every platform
// tcell works on, and it can show the palette exactly rather than through
// the nearest ANSI pens.
//
// The q, escape and ctrl-c keys ask the view to quit. The request is visible
// through the Quit() channel.
package cellview

import (
	"image/color"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/jetsetilly/gophervga/curated"
	"github.com/jetsetilly/gophervga/terminal"
	"github.com/jetsetilly/gophervga/vga"
)

// CellView is a display for the character surface. It implements the
// gui.Viewer interface.
type CellView struct {
	screen tcell.Screen

	// the local copy of the surface. keeping a copy means a redraw is
	// possible at any time, not just when a cell changes
	crit sync.Mutex
	grid [vga.Rows][vga.Cols]vga.Cell

	// the tcell rendering of every possible attribute byte. prepared during
	// Initialise()
	styles [256]tcell.Style

	quit     chan bool
	quitOnce sync.Once
}

// Initialise implements the gui.Viewer interface.
func (cv *CellView) Initialise() error {
	scr, err := tcell.NewScreen()
	if err != nil {
		return curated.Errorf("cellview: %v", err)
	}
	if err := scr.Init(); err != nil {
		return curated.Errorf("cellview: %v", err)
	}
	cv.screen = scr
	cv.quit = make(chan bool)

	for a := 0; a < len(cv.styles); a++ {
		attr := vga.Attr(a)
		cv.styles[a] = tcell.StyleDefault.
			Foreground(paletteColor(attr.Foreground())).
			Background(paletteColor(attr.Background()))
	}

	go cv.eventLoop()

	return nil
}

// CleanUp implements the gui.Viewer interface. The view is of no use after
// CleanUp.
func (cv *CellView) CleanUp() {
	cv.screen.Fini()
}

// Quit implements the gui.Viewer interface. The returned channel is closed
// when the user asks the view to quit.
func (cv *CellView) Quit() <-chan bool {
	return cv.quit
}

// SetCell implements the vga.Renderer interface.
func (cv *CellView) SetCell(row int, col int, cell vga.Cell) {
	cv.crit.Lock()
	defer cv.crit.Unlock()
	cv.grid[row][col] = cell
}

// Flush implements the vga.Renderer interface.
func (cv *CellView) Flush() error {
	cv.crit.Lock()
	defer cv.crit.Unlock()
	cv.draw()
	return nil
}

// EndRendering implements the vga.Renderer interface.
func (cv *CellView) EndRendering() error {
	return nil
}

// draw repaints the entire surface. the crit mutex must be held. cells that
// fall outside the window are clipped by tcell.
func (cv *CellView) draw() {
	for row := 0; row < vga.Rows; row++ {
		for col := 0; col < vga.Cols; col++ {
			cell := cv.grid[row][col]
			cv.screen.SetContent(col, row, terminal.Glyph(cell.Char), nil, cv.styles[cell.Attr])
		}
	}
	cv.screen.Show()
}

func (cv *CellView) eventLoop() {
	for {
		switch ev := cv.screen.PollEvent().(type) {
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
				cv.quitOnce.Do(func() { close(cv.quit) })
				return
			case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
				cv.quitOnce.Do(func() { close(cv.quit) })
				return
			}
		case *tcell.EventResize:
			cv.screen.Sync()
			cv.crit.Lock()
			cv.draw()
			cv.crit.Unlock()
		case nil:
			// the screen has been finalised
			return
		}
	}
}

// paletteColor converts a palette entry to the tcell rendering of its RGB
// value.
func paletteColor(col vga.Color) tcell.Color {
	c := vga.Palette[col].(color.RGBA)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
