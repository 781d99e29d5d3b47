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

package performance_test

import (
	"io"
	"strings"
	"testing"

	"github.com/jetsetilly/gophervga/performance"
	"github.com/jetsetilly/gophervga/test"
)

func TestCheck(t *testing.T) {
	output := &strings.Builder{}

	err := performance.Check(output, false, "100ms", 2)
	test.ExpectedSuccess(t, err)
	test.Equate(t, strings.Contains(output.String(), "lines/sec"), true)
}

func TestCheckBadDuration(t *testing.T) {
	err := performance.Check(io.Discard, false, "not a duration", 1)
	test.ExpectedFailure(t, err)
}

func TestCheckNoWriters(t *testing.T) {
	err := performance.Check(io.Discard, false, "1s", 0)
	test.ExpectedFailure(t, err)
}
