// Package scan turns org files into the task records the classifier
// consumes. Each scan fully replaces the previous result set.
package scan

import (
	"os"

	"github.com/harrisonrobin/orgwatch/pkg/filter"
	"github.com/harrisonrobin/orgwatch/pkg/model"
	"github.com/harrisonrobin/orgwatch/pkg/orgmode"
)

// Options configures one extraction pass.
type Options struct {
	Rules filter.Rules

	// ScheduleTime and DeadlineTime are the times-of-day injected into
	// timestamps that carry only a date, per axis ("HH:MM").
	ScheduleTime string
	DeadlineTime string
}

// Extract walks the admitted files and returns a record for every entry
// that passes the rules. Missing or unreadable files are skipped
// silently; an entry without a heading is not a task.
func Extract(files []string, opts Options) []model.Task {
	var tasks []model.Task
	for _, path := range files {
		if !opts.Rules.AdmitFile(path) {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		entries, err := orgmode.ParseFile(path)
		if err != nil {
			continue
		}
		for i := range entries {
			e := &entries[i]
			if e.Heading == "" {
				continue
			}
			if !opts.Rules.Admit(e.AllTags(opts.Rules.InheritTags), e.Keyword, e.Properties) {
				continue
			}
			tasks = append(tasks, model.Task{
				Name:      e.Heading,
				Scheduled: Normalize(e.Scheduled, opts.ScheduleTime),
				Deadline:  Normalize(e.Deadline, opts.DeadlineTime),
				Locator:   model.Locator{File: e.File, Line: e.Line},
			})
		}
	}
	return tasks
}
