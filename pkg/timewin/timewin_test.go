package timewin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElapsedMinutes(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, -60.0, ElapsedMinutes(now, now.Add(-time.Hour)))
	assert.Equal(t, 20.0, ElapsedMinutes(now, now.Add(20*time.Minute)))
	assert.Equal(t, 0.0, ElapsedMinutes(now, now))
}

func TestWindowBoundariesAreInclusive(t *testing.T) {
	tests := []struct {
		name    string
		elapsed float64
		window  float64
		past    bool
		future  bool
	}{
		{"exactly at past boundary", -60, 60, true, false},
		{"just inside past window", -59.9, 60, true, false},
		{"beyond past window", -60.1, 60, false, false},
		{"zero elapsed counts as future", 0, 60, false, true},
		{"exactly at future boundary", 60, 60, false, true},
		{"beyond future window", 60.1, 60, false, false},
		{"future never satisfies past", 30, 60, false, true},
		{"past never satisfies future", -30, 60, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.past, InPastWindow(tt.elapsed, tt.window))
			assert.Equal(t, tt.future, InFutureWindow(tt.elapsed, tt.window))
		})
	}
}

func TestHourWidth(t *testing.T) {
	assert.Equal(t, 3, HourWidth(30))    // under an hour still renders "0.5"
	assert.Equal(t, 3, HourWidth(540))   // 9 hours
	assert.Equal(t, 4, HourWidth(600))   // 10 hours
	assert.Equal(t, 5, HourWidth(6000))  // 100 hours
	assert.Equal(t, 6, HourWidth(86400)) // 1440 hours
}

func TestFormatHours(t *testing.T) {
	width := HourWidth(600)
	require.Equal(t, 4, width)

	assert.Equal(t, " 1.0", FormatHours(-60, width))
	assert.Equal(t, " 0.3", FormatHours(20, width))
	assert.Equal(t, "10.0", FormatHours(600, width))
}

func TestFormatHoursSharesColumnWidth(t *testing.T) {
	width := HourWidth(1440)
	for _, elapsed := range []float64{-1440, -0.5, 0, 12, 600} {
		assert.Len(t, FormatHours(elapsed, width), width)
	}
}
