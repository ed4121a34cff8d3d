package scan

import (
	"regexp"
	"strings"
)

var (
	repeaterRegex     = regexp.MustCompile(`\s*[.+]?[+-]\d+[ymwdh]`)
	explicitTimeRegex = regexp.MustCompile(`\d{4}-\d{2}-\d{2}\s+[A-Za-z]{3}\s+\d{2}:\d{2}`)
)

// StripRepeater removes recurrence markers such as "+1w", "++2d" or
// ".+1m" (and warning delays like "-2d") from a raw timestamp.
func StripRepeater(ts string) string {
	return repeaterRegex.ReplaceAllString(ts, "")
}

// EnsureTime injects defaultTime before the closing delimiter unless the
// timestamp already carries an explicit HH:MM after the weekday
// abbreviation. Text that fails the pattern is treated as having no
// time-of-day rather than as an error.
func EnsureTime(ts, defaultTime string) string {
	if ts == "" {
		return ""
	}
	if explicitTimeRegex.MatchString(ts) {
		return ts
	}
	if i := strings.LastIndex(ts, ">"); i >= 0 {
		return ts[:i] + " " + defaultTime + ts[i:]
	}
	return ts + " " + defaultTime
}

// Normalize applies both normalization steps. Normalizing an already
// normalized timestamp returns it unchanged.
func Normalize(raw, defaultTime string) string {
	return EnsureTime(StripRepeater(raw), defaultTime)
}
