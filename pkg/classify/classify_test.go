package classify

import (
	"testing"
	"time"

	"github.com/harrisonrobin/orgwatch/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-01-01 is a Monday.
var now = time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local)

func defaultWindows() Windows {
	return Windows{
		ScheduleLead:  30,
		DeadlineLead:  60,
		ScheduleGrace: 60,
		DeadlineGrace: 600,
	}
}

func TestMissedDeadline(t *testing.T) {
	tasks := []model.Task{{
		Name:     "file taxes",
		Deadline: "<2024-01-01 Mon 09:00>",
	}}

	got := Classify(tasks, defaultWindows(), now)
	require.Len(t, got, 1)
	assert.Equal(t, model.MissedDeadline, got[0].Category)
	assert.Equal(t, " 1.0", got[0].Hours)
	assert.Equal(t, "file taxes", got[0].Task.Name)
}

func TestUpcomingSchedule(t *testing.T) {
	tasks := []model.Task{{
		Name:      "standup",
		Scheduled: "<2024-01-01 Mon 10:20>",
	}}

	got := Classify(tasks, defaultWindows(), now)
	require.Len(t, got, 1)
	assert.Equal(t, model.UpcomingSchedule, got[0].Category)
	assert.Equal(t, " 0.3", got[0].Hours)
}

func TestDeadlineWinsOverMissedSchedule(t *testing.T) {
	tasks := []model.Task{{
		Name:      "both overdue",
		Scheduled: "<2024-01-01 Mon 09:30>",
		Deadline:  "<2024-01-01 Mon 09:00>",
	}}

	got := Classify(tasks, defaultWindows(), now)
	require.Len(t, got, 1)
	assert.Equal(t, model.MissedDeadline, got[0].Category)
}

func TestMissedScheduleOnlyWhenDeadlineOutsideGrace(t *testing.T) {
	w := defaultWindows()
	w.DeadlineGrace = 30
	tasks := []model.Task{{
		Name:      "deadline long gone",
		Scheduled: "<2024-01-01 Mon 09:30>",
		Deadline:  "<2024-01-01 Mon 08:00>",
	}}

	got := Classify(tasks, w, now)
	require.Len(t, got, 1)
	assert.Equal(t, model.MissedSchedule, got[0].Category)
}

func TestUpcomingAxesAreIndependent(t *testing.T) {
	tasks := []model.Task{{
		Name:      "busy morning",
		Scheduled: "<2024-01-01 Mon 10:15>",
		Deadline:  "<2024-01-01 Mon 10:45>",
	}}

	got := Classify(tasks, defaultWindows(), now)
	require.Len(t, got, 2)
	assert.Equal(t, model.UpcomingDeadline, got[0].Category)
	assert.Equal(t, model.UpcomingSchedule, got[1].Category)
}

func TestZeroElapsedIsUpcomingOnBothAxes(t *testing.T) {
	tasks := []model.Task{{
		Name:      "at this very minute",
		Scheduled: "<2024-01-01 Mon 10:00>",
		Deadline:  "<2024-01-01 Mon 10:00>",
	}}

	got := Classify(tasks, defaultWindows(), now)
	require.Len(t, got, 2)
	assert.Equal(t, model.UpcomingDeadline, got[0].Category)
	assert.Equal(t, model.UpcomingSchedule, got[1].Category)
}

func TestAbsentAxesAreNeverEvaluated(t *testing.T) {
	tasks := []model.Task{
		{Name: "no timestamps at all"},
		{Name: "unparseable", Deadline: "<someday maybe>"},
	}

	assert.Empty(t, Classify(tasks, defaultWindows(), now))
}

func TestBoundaryInclusive(t *testing.T) {
	w := defaultWindows()
	tasks := []model.Task{{
		Name:     "exactly at grace boundary",
		Deadline: "<2024-01-01 Mon 00:00>", // 600 minutes before now
	}}

	got := Classify(tasks, w, now)
	require.Len(t, got, 1)
	assert.Equal(t, model.MissedDeadline, got[0].Category)
	assert.Equal(t, "10.0", got[0].Hours)
}

func TestWindowsMax(t *testing.T) {
	assert.Equal(t, 600, defaultWindows().Max())
	assert.Equal(t, 30, Windows{ScheduleLead: 30}.Max())
}
