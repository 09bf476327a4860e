// Package timefmt formats durations for terminal output.
package timefmt

import (
	"fmt"
	"time"
)

// HHMMSS formats d as HH:MM:SS. Negative durations (clock adjustment
// during a tracked period) clamp to 00:00:00.
func HHMMSS(d time.Duration) string {
	if d < 0 {
		return "00:00:00"
	}
	total := int64(d.Seconds())
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
