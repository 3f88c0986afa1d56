package counter

import (
	"fmt"
	"strconv"
	"time"
)

// ParseInterval parses the text of the interval field as a whole number of
// milliseconds. It reports false for empty or non-numeric input, including
// text with surrounding spaces. Whether the value is positive is left to
// SetInterval.
func ParseInterval(input string) (int64, bool) {
	val, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return 0, false
	}
	return val, true
}

// FormatInterval renders an interval in milliseconds, e.g. "3000 ms".
func FormatInterval(ms int64) string {
	return fmt.Sprintf("%d ms", ms)
}

// FormatCountdown renders the time left until the next tick with one
// decimal, e.g. "2.4 s". Negative durations render as zero.
func FormatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return fmt.Sprintf("%.1f s", d.Seconds())
}
