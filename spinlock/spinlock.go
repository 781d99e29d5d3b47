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

// Package spinlock provides a busy-wait mutual exclusion lock. Unlike
// sync.Mutex, a task that fails to acquire the lock does not sleep on a
// blocking primitive. It retries in a tight loop, yielding to the scheduler
// every so often to keep the rest of the program moving.
//
// The lock is not reentrant. A task that tries to acquire a lock it already
// holds will spin forever. In an environment where the holding task can be
// interrupted and the interrupt handler takes the same lock, the handler will
// deadlock; masking interrupts around the critical section is the
// responsibility of that environment.
package spinlock

import (
	"runtime"
	"sync/atomic"
)

// number of acquisition attempts before yielding to the scheduler.
const attemptsBeforeYielding = 100

// replaceable for testing.
var yieldFn = runtime.Gosched

// Spinlock implements a lock where each task trying to acquire it busy-waits
// until the lock becomes available.
type Spinlock struct {
	state uint32
}

// Acquire blocks until the lock can be acquired by the currently active task.
// Any attempt to re-acquire a lock already held by the current task will cause
// a deadlock.
func (l *Spinlock) Acquire() {
	var attempts uint32
	for !atomic.CompareAndSwapUint32(&l.state, 0, 1) {
		attempts++
		if attempts == attemptsBeforeYielding {
			attempts = 0
			yieldFn()
		}
	}
}

// TryToAcquire attempts to acquire the lock and returns true if the lock could
// be acquired or false otherwise.
func (l *Spinlock) TryToAcquire() bool {
	return atomic.SwapUint32(&l.state, 1) == 0
}

// Release relinquishes a held lock allowing other tasks to acquire it. Calling
// Release while the lock is free has no effect.
func (l *Spinlock) Release() {
	atomic.StoreUint32(&l.state, 0)
}
