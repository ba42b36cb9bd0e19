package chrono

import (
	"sync"
	"time"
)

// Clock provides the current instant.
// Now() construction is the only non-deterministic input of this package,
// so it is kept behind this interface for tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the system clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }

var (
	clockMu sync.RWMutex
	clock   Clock = SystemClock{}
)

// SetClock replaces the package clock and returns the previous one.
func SetClock(c Clock) Clock {
	clockMu.Lock()
	defer clockMu.Unlock()
	prev := clock
	if c == nil {
		c = SystemClock{}
	}
	clock = c
	return prev
}

func readClock() time.Time {
	clockMu.RLock()
	defer clockMu.RUnlock()
	return clock.Now()
}
