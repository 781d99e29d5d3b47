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

package spinlock

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSpinlock(t *testing.T) {
	// substitute the yieldFn to prove that contended acquisition backs off to
	// the scheduler
	var yields uint32
	defer func(origYieldFn func()) { yieldFn = origYieldFn }(yieldFn)
	yieldFn = func() {
		atomic.AddUint32(&yields, 1)
		runtime.Gosched()
	}

	var (
		sl         Spinlock
		wg         sync.WaitGroup
		numWorkers = 10
	)

	sl.Acquire()

	if sl.TryToAcquire() != false {
		t.Error("expected TryToAcquire to return false when lock is held")
	}

	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func(worker int) {
			sl.Acquire()
			sl.Release()
			wg.Done()
		}(i)
	}

	<-time.After(100 * time.Millisecond)
	sl.Release()
	wg.Wait()

	if atomic.LoadUint32(&yields) == 0 {
		t.Error("expected contended acquisition to yield to the scheduler")
	}
}

func TestSpinlockExclusion(t *testing.T) {
	var (
		sl         Spinlock
		wg         sync.WaitGroup
		numWorkers = 8
		numRounds  = 1000
	)

	// counter is not touched with atomic operations. if the lock fails to
	// serialise the workers the final count will come up short
	var counter int

	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			for j := 0; j < numRounds; j++ {
				sl.Acquire()
				counter++
				sl.Release()
			}
			wg.Done()
		}()
	}
	wg.Wait()

	if counter != numWorkers*numRounds {
		t.Errorf("expected counter to be %d (got %d)", numWorkers*numRounds, counter)
	}
}

func TestSpinlockRelease(t *testing.T) {
	var sl Spinlock

	// releasing a lock that is not held has no effect
	sl.Release()

	if sl.TryToAcquire() != true {
		t.Error("expected TryToAcquire to return true when lock is free")
	}
	sl.Release()
}
