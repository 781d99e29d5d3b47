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

package performance

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/gophervga/curated"
	"github.com/jetsetilly/gophervga/digest"
	"github.com/jetsetilly/gophervga/vga"
)

// Check the performance of the console driver.
//
// The given number of concurrent writers saturate a console for the
// specified duration. A fingerprinting renderer is attached to the console
// so the measurement includes the cost of relaying cells to a renderer and
// of the flush at the end of every write.
//
// Will create a cpu and a memory profile as defined by the profile argument.
func Check(output io.Writer, profile bool, duration string, writers int) error {
	if writers < 1 {
		return curated.Errorf("performance: %v", "at least one writer required")
	}

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	console := vga.NewConsole(vga.NewWriter(vga.NewSurface()))
	console.Clear()
	console.AddRenderer(digest.NewGrid())

	// counters are updated by every writer
	var lines uint64
	var bytes uint64

	runner := func() error {
		end := make(chan bool)

		var wg sync.WaitGroup
		for w := 0; w < writers; w++ {
			wg.Add(1)
			go func(id int) {
				defer wg.Done()
				for i := 0; ; i++ {
					select {
					case <-end:
						return
					default:
					}

					n, _ := fmt.Fprintf(console, "writer %02d line %08d\n", id, i)
					atomic.AddUint64(&lines, 1)
					atomic.AddUint64(&bytes, uint64(n))
				}
			}(w)
		}

		// end the writers when the measurement period has elapsed
		time.AfterFunc(dur, func() {
			close(end)
		})

		wg.Wait()
		return nil
	}

	// launch runner directly or through the cpu profiler, depending on
	// supplied arguments
	err = cpuProfile(profile, "cpu.profile", runner)
	if err != nil {
		return err
	}

	l := atomic.LoadUint64(&lines)
	b := atomic.LoadUint64(&bytes)
	output.Write([]byte(fmt.Sprintf("%.0f lines/sec %.0f bytes/sec (%d lines in %.2f seconds)\n",
		float64(l)/dur.Seconds(), float64(b)/dur.Seconds(), l, dur.Seconds())))

	return memProfile(profile, "mem.profile")
}
