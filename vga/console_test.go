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

package vga_test

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/jetsetilly/gophervga/test"
	"github.com/jetsetilly/gophervga/vga"
)

func newTestConsole() *vga.Console {
	return vga.NewConsole(vga.NewWriter(vga.NewSurface()))
}

func TestConsoleWrite(t *testing.T) {
	console := newTestConsole()
	console.Clear()

	n, err := console.Write([]byte("hello"))
	test.ExpectedSuccess(t, err)
	test.Equate(t, n, 5)

	console.BorrowSurface(func(surface *vga.Surface) {
		equateRowText(t, surface, vga.Rows-1, "hello", vga.DefaultAttr)
	})
}

func TestConsoleForwarding(t *testing.T) {
	console := newTestConsole()

	attr := vga.NewAttr(vga.Black, vga.LightGray)
	console.SetAttr(attr)
	console.Clear()

	_, err := console.Write([]byte("inverse"))
	test.ExpectedSuccess(t, err)

	console.BorrowSurface(func(surface *vga.Surface) {
		equateRowText(t, surface, vga.Rows-1, "inverse", attr)
	})
}

func TestConsoleFlushBatching(t *testing.T) {
	console := newTestConsole()

	m := &mockRenderer{}
	console.AddRenderer(m)
	m.setCells = 0

	// one flush per write, however many cells the write touches
	_, err := console.Write([]byte("hello"))
	test.ExpectedSuccess(t, err)
	test.Equate(t, m.setCells, 5)
	test.Equate(t, m.flushes, 1)

	_, err = console.Write([]byte("hello again\n"))
	test.ExpectedSuccess(t, err)
	test.Equate(t, m.flushes, 2)

	// clearing the console is also one batch
	console.Clear()
	test.Equate(t, m.flushes, 3)

	test.ExpectedSuccess(t, console.End())
	test.Equate(t, m.ended, true)
}

func TestConsoleMirror(t *testing.T) {
	console := newTestConsole()
	mirror := &test.CompareWriter{}

	console.SetMirror(mirror)

	_, err := console.Write([]byte("to the screen "))
	test.ExpectedSuccess(t, err)
	_, err = console.Write([]byte("and down the wire\n"))
	test.ExpectedSuccess(t, err)

	// the mirror receives the bytes as accepted, before any sanitisation
	test.Equate(t, mirror.Compare("to the screen and down the wire\n"), true)

	// a nil mirror stops the tee
	console.SetMirror(nil)
	_, err = console.Write([]byte("gone"))
	test.ExpectedSuccess(t, err)
	test.Equate(t, mirror.Compare("to the screen and down the wire\n"), true)
}

func TestConsoleConcurrency(t *testing.T) {
	console := newTestConsole()
	console.Clear()

	const numWorkers = 8
	const numLines = 50

	// the set of every line any worker will write. a surface row must only
	// ever show one member of this set
	valid := make(map[string]bool)
	for i := 0; i < numWorkers; i++ {
		for j := 0; j < numLines; j++ {
			valid[fmt.Sprintf("worker %d line %d", i, j)] = true
		}
	}

	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func(worker int) {
			for j := 0; j < numLines; j++ {
				s := fmt.Sprintf("worker %d line %d\n", worker, j)
				_, _ = console.Write([]byte(s))
			}
			wg.Done()
		}(i)
	}
	wg.Wait()

	console.BorrowSurface(func(surface *vga.Surface) {
		// every write ended with a line advance so the bottom row is blank
		equateRowText(t, surface, vga.Rows-1, "", vga.DefaultAttr)

		// each remaining row holds exactly one complete line. a torn row
		// would mean two writers interleaved within a write
		lastLine := make(map[int]int)
		for row := 0; row < vga.Rows-1; row++ {
			b := strings.Builder{}
			for col := 0; col < vga.Cols; col++ {
				b.WriteByte(surface.Peek(row, col).Char)
			}
			line := strings.TrimRight(b.String(), " ")

			if !valid[line] {
				t.Errorf("row %d shows %q which is not a line any worker wrote", row, line)
				continue
			}

			// rows read top to bottom are in write order, so each worker's
			// line numbers must increase down the surface
			var worker, number int
			_, err := fmt.Sscanf(line, "worker %d line %d", &worker, &number)
			test.ExpectedSuccess(t, err)
			if last, ok := lastLine[worker]; ok && number <= last {
				t.Errorf("row %d shows %q out of order for worker %d", row, line, worker)
			}
			lastLine[worker] = number
		}
	})
}

func TestDefaultConsole(t *testing.T) {
	// the package level console is a singleton
	if vga.Default() != vga.Default() {
		t.Fatal("expected Default() to return the same console every time")
	}

	vga.Default().SetAttr(vga.DefaultAttr)
	vga.Default().Clear()

	vga.Print("2+2=")
	vga.Printf("%d", 2+2)

	vga.Default().BorrowSurface(func(surface *vga.Surface) {
		equateRowText(t, surface, vga.Rows-1, "2+2=4", vga.DefaultAttr)
	})

	vga.Println("!")

	vga.Default().BorrowSurface(func(surface *vga.Surface) {
		equateRowText(t, surface, vga.Rows-2, "2+2=4!", vga.DefaultAttr)
		equateRowText(t, surface, vga.Rows-1, "", vga.DefaultAttr)
	})
}
