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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gophervga/performance/limiter"
)

func TestWait(t *testing.T) {
	lim := limiter.NewRateLimiter(1000)

	// five ticks at a thousand per second take a handful of milliseconds. the
	// timeout is very generous so a slow machine does not fail the test
	done := make(chan bool)
	go func() {
		for i := 0; i < 5; i++ {
			lim.Wait()
		}
		done <- true
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatalf("rate limiter did not tick")
	}
}

func TestTick(t *testing.T) {
	lim := limiter.NewRateLimiter(1000)

	select {
	case <-lim.Tick():
	case <-time.After(10 * time.Second):
		t.Fatalf("rate limiter did not tick")
	}
}

func TestClampedLimit(t *testing.T) {
	// rates of less than one per second are clamped rather than causing a
	// divide by zero
	lim := limiter.NewRateLimiter(0)

	select {
	case <-lim.Tick():
	case <-time.After(10 * time.Second):
		t.Fatalf("rate limiter did not tick")
	}
}
