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

package main

import (
	"github.com/jetsetilly/gophervga/performance/limiter"
	"github.com/jetsetilly/gophervga/version"
	"github.com/jetsetilly/gophervga/vga"
)

// demo writes an endless demonstration to the package level console, showing
// off colour attributes, line wrapping, scrolling and the substitution of
// unprintable bytes. one step of the script is written per tick of the rate
// limiter. returns when the end channel closes.
func demo(lim *limiter.RateLimiter, end <-chan bool) {
	console := vga.Default()

	script := []func(pass int){
		func(_ int) {
			console.SetAttr(vga.NewAttr(vga.White, vga.Blue))
			vga.Printf(" %s demonstration ", version.ApplicationName)
			console.SetAttr(vga.DefaultAttr)
			vga.Println()
		},
		func(_ int) {
			vga.Println("the sixteen colours of the palette:")
		},
		func(_ int) {
			for c := vga.Black; c <= vga.White; c++ {
				console.SetAttr(vga.NewAttr(c, vga.Black))
				vga.Print("# ")
			}
			console.SetAttr(vga.DefaultAttr)
			vga.Println()
		},
		func(_ int) {
			for c := vga.Black; c <= vga.White; c++ {
				console.SetAttr(vga.NewAttr(vga.Black, c))
				vga.Print("  ")
			}
			console.SetAttr(vga.DefaultAttr)
			vga.Println()
		},
		func(_ int) {
			vga.Println("text written past the end of a row wraps onto a fresh row. this " +
				"sentence is longer than the display is wide, so here is the wrap in action.")
		},
		func(_ int) {
			vga.Printf("bytes the character set cannot show are substituted: bell %c escape %c tab %c\n",
				0x07, 0x1b, 0x09)
		},
		func(pass int) {
			console.SetAttr(vga.NewAttr(vga.LightCyan, vga.Black))
			vga.Printf("pass %d\n", pass)
			console.SetAttr(vga.DefaultAttr)
		},
	}

	for i := 0; ; i++ {
		select {
		case <-end:
			return
		case <-lim.Tick():
		}

		script[i%len(script)](i / len(script))
	}
}
