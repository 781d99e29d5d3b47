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

package main_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/gophervga/digest"
	"github.com/jetsetilly/gophervga/vga"
)

func BenchmarkConsole(b *testing.B) {
	console := vga.NewConsole(vga.NewWriter(vga.NewSurface()))
	console.Clear()

	// a renderer is attached so the benchmark includes the cost of relaying
	// cells and of the flush at the end of every write
	console.AddRenderer(digest.NewGrid())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		fmt.Fprintf(console, "benchmark line %08d\n", i)
	}
}
