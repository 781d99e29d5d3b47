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

package mirror_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gophervga/logger"
	"github.com/jetsetilly/gophervga/mirror"
	"github.com/jetsetilly/gophervga/test"
)

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("no destination")
}

type closeWriter struct {
	closed bool
}

func (cw *closeWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

func (cw *closeWriter) Close() error {
	cw.closed = true
	return nil
}

func TestWriter(t *testing.T) {
	dest := &test.CompareWriter{}
	mw := mirror.NewWriter("test mirror", dest)

	n, err := mw.Write([]byte("hello"))
	test.ExpectedSuccess(t, err)
	test.Equate(t, n, 5)
	test.Equate(t, dest.Compare("hello"), true)
}

func TestWriterFailure(t *testing.T) {
	logger.Clear()
	mw := mirror.NewWriter("test mirror", failWriter{})

	// the write succeeds from the caller's point of view
	n, err := mw.Write([]byte("hello"))
	test.ExpectedSuccess(t, err)
	test.Equate(t, n, 5)

	// but the failure has been logged
	tw := &test.CompareWriter{}
	logger.Tail(tw, 1)
	test.Equate(t, tw.Compare("test mirror: no destination\n"), true)
}

func TestWriterClose(t *testing.T) {
	// closing a writer around an unclosable destination is a no-op
	mw := mirror.NewWriter("test mirror", &test.CompareWriter{})
	test.ExpectedSuccess(t, mw.Close())

	// destinations that can be closed are closed
	dest := &closeWriter{}
	mw = mirror.NewWriter("test mirror", dest)
	test.ExpectedSuccess(t, mw.Close())
	test.Equate(t, dest.closed, true)
}
