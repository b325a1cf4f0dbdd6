package timer

import "time"

// Elapsed returns the whole seconds between start and stop, floored at zero.
func Elapsed(start, stop time.Time) int64 {
	seconds := stop.Unix() - start.Unix()
	if seconds < 0 {
		return 0
	}
	return seconds
}
