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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It
// provides some features not present in the third-party package, such as
// terminal geometry, and wraps termios methods in functions with friendlier
// names.
package easyterm

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/jetsetilly/gophervga/curated"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Terminal is the main container for posix terminals. Usually embedded in
// other struct types.
type Terminal struct {
	input  *os.File
	output *os.File

	// Resized receives a signal whenever the window size of the output
	// terminal changes. The geometry has been updated by the time the signal
	// is received.
	Resized chan bool

	canAttr    unix.Termios
	rawAttr    unix.Termios
	cbreakAttr unix.Termios

	// sig/ack channels to control the signal handler
	terminateHandlerSig chan bool
	terminateHandlerAck chan bool

	// geometry is written from the signal handler goroutine. any function
	// that touches it must hold the mutex
	mu       sync.Mutex
	geometry unix.Winsize
}

// Initialise the fields in the Terminal struct. The two files are usually
// os.Stdin and os.Stdout.
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return curated.Errorf("easyterm: %v", "an input file is required")
	}
	if outputFile == nil {
		return curated.Errorf("easyterm: %v", "an output file is required")
	}

	pt.input = inputFile
	pt.output = outputFile

	// prepare the attributes for the different terminal modes we'll be
	// using. the cbreak and raw attributes start from the canonical
	// attributes, altering only what each mode requires
	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return curated.Errorf("easyterm: %v", err)
	}

	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)

	pt.rawAttr = pt.canAttr
	termios.Cfmakeraw(&pt.rawAttr)

	// prime the geometry. without this the geometry would be unknown until
	// the first change of window size
	_ = pt.UpdateGeometry()

	pt.Resized = make(chan bool, 1)

	// set up sig/ack channels for signal handler
	pt.terminateHandlerSig = make(chan bool)
	pt.terminateHandlerAck = make(chan bool)

	// kickstart signal handler
	go func() {
		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, syscall.SIGWINCH)
		defer func() {
			signal.Stop(sigwinch)
			pt.terminateHandlerAck <- true
		}()

		for {
			select {
			case <-sigwinch:
				_ = pt.UpdateGeometry()
				select {
				case pt.Resized <- true:
				default:
				}
			case <-pt.terminateHandlerSig:
				return
			}
		}
	}()

	return nil
}

// CleanUp closes resources created in the Initialise() function.
func (pt *Terminal) CleanUp() {
	pt.terminateHandlerSig <- true
	<-pt.terminateHandlerAck
}

// TermPrint writes the string to the output terminal.
func (pt *Terminal) TermPrint(s string) {
	_, _ = pt.output.WriteString(s)
}

// UpdateGeometry gets the current dimensions (in characters and pixels) of
// the output terminal.
func (pt *Terminal) UpdateGeometry() error {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	ws, err := unix.IoctlGetWinsize(int(pt.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return curated.Errorf("easyterm: %v", err)
	}
	pt.geometry = *ws

	return nil
}

// WindowSize returns the dimensions of the output terminal in characters.
func (pt *Terminal) WindowSize() (rows int, cols int) {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	return int(pt.geometry.Row), int(pt.geometry.Col)
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() {
	_ = termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.canAttr)
}

// RawMode puts terminal into raw mode.
func (pt *Terminal) RawMode() {
	_ = termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.rawAttr)
}

// CBreakMode puts terminal into cbreak mode.
func (pt *Terminal) CBreakMode() {
	_ = termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.cbreakAttr)
}

// FlushBuffers makes sure the terminal's input/output buffers are empty.
func (pt *Terminal) FlushBuffers() error {
	if err := termios.Tcflush(pt.input.Fd(), unix.TCIFLUSH); err != nil {
		return curated.Errorf("easyterm: %v", err)
	}
	if err := termios.Tcflush(pt.output.Fd(), unix.TCOFLUSH); err != nil {
		return curated.Errorf("easyterm: %v", err)
	}
	return nil
}
