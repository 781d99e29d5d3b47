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

// Package serialmirror opens serial devices suitable for console mirroring.
// Sending a copy of the character stream down a serial line reproduces the
// traditional arrangement of a console that can be read on a terminal at
// the other end of a wire, which remains the easiest way to capture console
// output from a machine with no other way of talking to the world.
package serialmirror

import (
	"io"

	"github.com/jacobsa/go-serial/serial"
	"github.com/jetsetilly/gophervga/curated"
)

// Open a serial device for console mirroring. The connection is eight data
// bits, no parity, one stop bit. The returned writer is best wrapped in a
// mirror.Writer before being given to the console, so that a failing device
// is reported through the log.
func Open(device string, baud uint) (io.WriteCloser, error) {
	options := serial.OpenOptions{
		PortName:        device,
		BaudRate:        baud,
		DataBits:        8,
		StopBits:        1,
		MinimumReadSize: 1,
	}

	port, err := serial.Open(options)
	if err != nil {
		return nil, curated.Errorf("serialmirror: %v", err)
	}

	return port, nil
}
