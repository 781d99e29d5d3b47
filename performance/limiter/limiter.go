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

// Package limiter provides a rough and ready way of limiting events to a
// fixed rate.
//
// A new RateLimiter can be created with:
//
//	lim := limiter.NewRateLimiter(10)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		lim.Wait()
//		writeLine()
//	}
//
// Callers that need to wait on other channels at the same time can select
// on the Tick() channel instead.
package limiter

import (
	"time"
)

// this is a really rough attempt at rate limiting. probably only any good if
// base performance of the machine is well above the required rate.

// RateLimiter will trigger at a fixed number of events per second.
type RateLimiter struct {
	eventsPerSecond int
	secondsPerEvent time.Duration

	tick chan bool
}

// NewRateLimiter is the preferred method of initialisation for the
// RateLimiter type.
func NewRateLimiter(eventsPerSecond int) *RateLimiter {
	lim := &RateLimiter{}
	lim.SetLimit(eventsPerSecond)

	lim.tick = make(chan bool)

	// run ticker concurrently
	go func() {
		adjustedSecondPerEvent := lim.secondsPerEvent
		t := time.Now()
		for {
			lim.tick <- true
			time.Sleep(adjustedSecondPerEvent)
			nt := time.Now()
			adjustedSecondPerEvent -= nt.Sub(t) - lim.secondsPerEvent
			t = nt
		}
	}()

	return lim
}

// SetLimit changes the rate at which the RateLimiter triggers. Rates of less
// than one event per second are clamped to one per second.
func (lim *RateLimiter) SetLimit(eventsPerSecond int) {
	if eventsPerSecond < 1 {
		eventsPerSecond = 1
	}
	lim.eventsPerSecond = eventsPerSecond
	lim.secondsPerEvent = time.Duration(float64(time.Second) / float64(eventsPerSecond))
}

// Wait will block until the next tick.
func (lim *RateLimiter) Wait() {
	<-lim.tick
}

// Tick returns the channel on which ticks are delivered.
func (lim *RateLimiter) Tick() <-chan bool {
	return lim.tick
}
