// Package clock provides the time source used to stamp ledger transactions.
package clock

import "time"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// UTC reads the system clock in UTC.
type UTC struct{}

// Now returns the current system time in UTC.
func (UTC) Now() time.Time {
	return time.Now().UTC()
}

// Fixed always returns the same instant. Useful in tests.
type Fixed struct {
	At time.Time
}

// Now returns the fixed instant.
func (f Fixed) Now() time.Time {
	return f.At
}

// Make sure we conform to the interface
var (
	_ Clock = UTC{}
	_ Clock = Fixed{}
)
