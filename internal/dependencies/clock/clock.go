package clock

import "time"

// Clock abstracts the wall clock so services can be tested at a fixed
// instant. Every timestamp the ledger records flows through it.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current system time
func (c *RealClock) Now() time.Time {
	return time.Now()
}
