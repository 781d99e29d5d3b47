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
	"fmt"
	"sync"
)

// only allowing one package level console for the entire application. it is
// created on first use and lives for the rest of the process.
var def *Console
var defOnce sync.Once

// Default returns the package level Console, creating it on first use. The
// console types onto a surface backed by ordinary process memory.
func Default() *Console {
	defOnce.Do(func() {
		def = NewConsole(NewWriter(NewSurface()))
	})
	return def
}

// Print renders the operands in the manner of fmt.Print and hands the text
// to the package level console in a single write.
func Print(a ...interface{}) {
	fmt.Fprint(Default(), a...)
}

// Printf renders the operands in the manner of fmt.Printf and hands the text
// to the package level console in a single write.
func Printf(format string, a ...interface{}) {
	fmt.Fprintf(Default(), format, a...)
}

// Println renders the operands in the manner of fmt.Println, with a trailing
// newline, and hands the text to the package level console in a single
// write.
func Println(a ...interface{}) {
	fmt.Fprintln(Default(), a...)
}
