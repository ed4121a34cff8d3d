// Package timewin holds the window arithmetic shared by the classifier
// and the report renderer.
package timewin

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// ElapsedMinutes returns (ts - now) in minutes. Positive means ts is in
// the future.
func ElapsedMinutes(now, ts time.Time) float64 {
	return ts.Sub(now).Minutes()
}

// InPastWindow reports whether elapsed lies within windowMinutes behind
// now. The boundary is inclusive; zero elapsed does not count as past.
func InPastWindow(elapsed, windowMinutes float64) bool {
	return elapsed < 0 && -elapsed <= windowMinutes
}

// InFutureWindow reports whether elapsed lies within windowMinutes ahead
// of now. Both boundaries are inclusive, so zero elapsed qualifies.
func InFutureWindow(elapsed, windowMinutes float64) bool {
	return elapsed >= 0 && elapsed <= windowMinutes
}

// HourWidth returns the printf field width that fits the largest
// configured window when rendered as hours with one decimal place. Using
// a single width for the whole run keeps every magnitude column-aligned
// regardless of category.
func HourWidth(maxWindowMinutes int) int {
	hours := maxWindowMinutes / 60
	if hours < 1 {
		hours = 1
	}
	return len(strconv.Itoa(hours)) + 2
}

// FormatHours renders the magnitude of elapsed as right-aligned hours
// with one decimal place in the given field width.
func FormatHours(elapsed float64, width int) string {
	return fmt.Sprintf("%*.1f", width, math.Abs(elapsed)/60)
}
