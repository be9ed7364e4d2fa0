package models

import "time"

// Now returns the current time at the precision MongoDB stores dates with,
// so values read back compare equal to the ones written.
var Now = func() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
