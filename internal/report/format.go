package report

import "fmt"

// FormatHours renders seconds as hours with one fractional digit, rounding
// half-up, e.g. 45360 -> "12.6h".
func FormatHours(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	// 360 seconds per tenth of an hour; +180 rounds half-up.
	tenths := (seconds + 180) / 360
	return fmt.Sprintf("%d.%dh", tenths/10, tenths%10)
}
