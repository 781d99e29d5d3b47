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
	"io"

	"github.com/jetsetilly/gophervga/spinlock"
)

// Console shares one Writer between any number of goroutines. Every entry
// point takes a spin lock, so a console can be driven from contexts where
// blocking on a sleeping lock is not an option. The spin lock is not
// reentrant: code running while the lock is held must never call back into
// the same console, see the spinlock package.
//
// Console implements the io.Writer interface and is the type callers should
// depend on for appending rendered text. It never fails: every write
// reports success.
type Console struct {
	crit   spinlock.Spinlock
	writer *Writer

	// mirror receives a copy of every byte accepted by Write(). failures in
	// the mirror never affect the console
	mirror io.Writer
}

// NewConsole is the preferred method of initialisation for the Console type.
// The Console takes ownership of the Writer and its Surface.
func NewConsole(writer *Writer) *Console {
	return &Console{writer: writer}
}

// Write implements the io.Writer interface. The byte stream is interpreted
// as described for Writer.Write(). The returned error is always nil and the
// returned length is always len(p).
//
// The whole of p is written under one hold of the lock, so text written by
// concurrent callers never interleaves within a single Write().
func (cs *Console) Write(p []byte) (int, error) {
	func() {
		cs.crit.Acquire()
		defer cs.crit.Release()

		_, _ = cs.writer.Write(p)

		if cs.mirror != nil {
			_, _ = cs.mirror.Write(p)
		}
	}()

	// renderers are flushed outside of the critical section. a slow renderer
	// should not hold up concurrent writers
	_ = cs.writer.Surface().Flush()

	return len(p), nil
}

// SetAttr changes the attribute used for subsequent writes.
func (cs *Console) SetAttr(attr Attr) {
	cs.crit.Acquire()
	defer cs.crit.Release()
	cs.writer.SetAttr(attr)
}

// Clear blanks the surface with the attribute currently in use.
func (cs *Console) Clear() {
	func() {
		cs.crit.Acquire()
		defer cs.crit.Release()
		cs.writer.Clear()
	}()

	_ = cs.writer.Surface().Flush()
}

// AddRenderer attaches a renderer to the console's surface. See
// Surface.AddRenderer().
func (cs *Console) AddRenderer(r Renderer) {
	cs.crit.Acquire()
	defer cs.crit.Release()
	cs.writer.Surface().AddRenderer(r)
}

// SetMirror duplicates every byte subsequently accepted by Write() to the
// given writer. A nil writer stops the mirroring.
func (cs *Console) SetMirror(mirror io.Writer) {
	cs.crit.Acquire()
	defer cs.crit.Release()
	cs.mirror = mirror
}

// BorrowSurface gives the provided function the critical section and access
// to the console's surface. The surface must not be retained once the
// function returns.
func (cs *Console) BorrowSurface(f func(*Surface)) {
	cs.crit.Acquire()
	defer cs.crit.Release()
	f(cs.writer.Surface())
}

// End instructs the renderers attached to the console's surface to finalise.
func (cs *Console) End() error {
	cs.crit.Acquire()
	defer cs.crit.Release()
	return cs.writer.Surface().End()
}
