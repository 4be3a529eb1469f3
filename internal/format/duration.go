package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration renders scan and benchmark timings at a precision
// suited to their magnitude: "< 1µs", "850µs", "12ms", "1.235s".
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return "< 1µs"
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return d.Round(time.Millisecond).String()
	}
}
