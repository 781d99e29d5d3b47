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

// Package mirror copies console output to a secondary destination. The
// console deliberately ignores errors from its mirror, so the Writer type
// reports failures through the central logger where they can be seen,
// rather than letting them disappear.
package mirror

import (
	"io"

	"github.com/jetsetilly/gophervga/logger"
)

// Writer copies everything written to it to the destination. Write always
// succeeds from the caller's point of view. Characters that cannot be
// mirrored are dropped, not retried, and the failure is logged.
type Writer struct {
	tag  string
	dest io.Writer
}

// NewWriter is the preferred method of initialisation for the Writer type.
// The tag appears in the log when the destination fails.
func NewWriter(tag string, dest io.Writer) *Writer {
	return &Writer{tag: tag, dest: dest}
}

// Write implements the io.Writer interface.
func (mw *Writer) Write(p []byte) (int, error) {
	if n, err := mw.dest.Write(p); err != nil {
		logger.Logf(logger.Allow, mw.tag, "%v", err)
	} else if n < len(p) {
		logger.Logf(logger.Allow, mw.tag, "short write (%d of %d bytes)", n, len(p))
	}
	return len(p), nil
}

// Close closes the destination, if the destination can be closed.
func (mw *Writer) Close() error {
	if c, ok := mw.dest.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
