// Package classify assigns scanned tasks to the four alert buckets.
package classify

import (
	"strings"
	"time"

	"github.com/harrisonrobin/orgwatch/pkg/model"
	"github.com/harrisonrobin/orgwatch/pkg/timewin"
)

// Windows holds the four configured window sizes in minutes.
type Windows struct {
	ScheduleLead  int `mapstructure:"schedule_lead"`
	DeadlineLead  int `mapstructure:"deadline_lead"`
	ScheduleGrace int `mapstructure:"schedule_grace"`
	DeadlineGrace int `mapstructure:"deadline_grace"`
}

// Max returns the largest configured window, which fixes the hour column
// width for a whole run.
func (w Windows) Max() int {
	max := w.ScheduleLead
	for _, v := range []int{w.DeadlineLead, w.ScheduleGrace, w.DeadlineGrace} {
		if v > max {
			max = v
		}
	}
	return max
}

const timestampLayout = "2006-01-02 Mon 15:04"

// parseTimestamp parses a normalized "<2006-01-02 Mon 15:04>" string in
// the local timezone.
func parseTimestamp(ts string) (time.Time, bool) {
	t, err := time.ParseInLocation(timestampLayout, strings.Trim(ts, "<>"), time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Classify evaluates each task's axes against the windows at the given
// instant. A past deadline within its grace period wins over a past
// schedule: at most one missed assignment per task. Upcoming deadline
// and upcoming schedule are evaluated independently of the missed check
// and of each other, so one task can yield up to three assignments.
func Classify(tasks []model.Task, w Windows, now time.Time) []model.Assignment {
	width := timewin.HourWidth(w.Max())

	var out []model.Assignment
	for i := range tasks {
		t := &tasks[i]

		var dlElapsed, schElapsed float64
		dlOK, schOK := false, false
		if t.Deadline != "" {
			if ts, ok := parseTimestamp(t.Deadline); ok {
				dlElapsed = timewin.ElapsedMinutes(now, ts)
				dlOK = true
			}
		}
		if t.Scheduled != "" {
			if ts, ok := parseTimestamp(t.Scheduled); ok {
				schElapsed = timewin.ElapsedMinutes(now, ts)
				schOK = true
			}
		}

		switch {
		case dlOK && timewin.InPastWindow(dlElapsed, float64(w.DeadlineGrace)):
			out = append(out, model.Assignment{
				Task:     t,
				Category: model.MissedDeadline,
				Hours:    timewin.FormatHours(dlElapsed, width),
			})
		case schOK && timewin.InPastWindow(schElapsed, float64(w.ScheduleGrace)):
			out = append(out, model.Assignment{
				Task:     t,
				Category: model.MissedSchedule,
				Hours:    timewin.FormatHours(schElapsed, width),
			})
		}

		if dlOK && timewin.InFutureWindow(dlElapsed, float64(w.DeadlineLead)) {
			out = append(out, model.Assignment{
				Task:     t,
				Category: model.UpcomingDeadline,
				Hours:    timewin.FormatHours(dlElapsed, width),
			})
		}
		if schOK && timewin.InFutureWindow(schElapsed, float64(w.ScheduleLead)) {
			out = append(out, model.Assignment{
				Task:     t,
				Category: model.UpcomingSchedule,
				Hours:    timewin.FormatHours(schElapsed, width),
			})
		}
	}
	return out
}
