package availability

import "time"

// Clock supplies the current time. The engine never calls time.Now
// directly so tests can pin "now" to any instant.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall clock.
func SystemClock() Clock { return systemClock{} }
