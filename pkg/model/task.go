package model

// Task represents a single admitted entry pulled from an org file.
// A record only exists once the entry has passed every configured filter;
// it is never mutated after extraction.
type Task struct {
	Name string
	// Scheduled and Deadline hold normalized timestamp strings
	// ("<2006-01-02 Mon 15:04>"). Empty means the entry carries no
	// timestamp on that axis, and that axis is never classified.
	Scheduled string
	Deadline  string
	Locator   Locator
}

// Locator points back at the entry's heading so a report line can be
// followed to its source. Line numbers are stable within a session.
type Locator struct {
	File string
	Line int
}

// Category is one of the four buckets a task can be classified into.
type Category int

const (
	MissedDeadline Category = iota
	MissedSchedule
	UpcomingDeadline
	UpcomingSchedule
)

// Label returns the fixed report label for the category.
func (c Category) Label() string {
	switch c {
	case MissedDeadline:
		return "Missed Deadline by"
	case MissedSchedule:
		return "Missed Schedule by"
	case UpcomingDeadline:
		return "Upcmng Deadline in"
	case UpcomingSchedule:
		return "Upcmng Schedule in"
	default:
		return "unknown"
	}
}

// Assignment ties a task to a category with the formatted hour magnitude.
// Assignments are recomputed on every check and never persisted.
type Assignment struct {
	Task     *Task
	Category Category
	Hours    string
}
