// Package report formats classified tasks into the alert report and
// manages the surface it lives on.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/harrisonrobin/orgwatch/pkg/model"
)

// Options controls rendering.
type Options struct {
	// LinkMode replaces each task name with an org link back to the
	// entry's source locator.
	LinkMode bool

	// Now is the instant stamped into the title line.
	Now time.Time
}

// Notifier receives the assignment set after a report has been
// published. Delivery is up to the caller; none is shipped here.
type Notifier func([]model.Assignment)

// Render formats assignments into the report text. Lines are sorted
// case-sensitively after formatting; because hour magnitudes are
// right-aligned to a shared width, the sort groups lines by category.
// Output is deterministic for a fixed assignment set and instant.
func Render(assignments []model.Assignment, opts Options) string {
	lines := make([]string, 0, len(assignments))
	for _, a := range assignments {
		name := a.Task.Name
		if opts.LinkMode {
			target := fmt.Sprintf("file:%s::%d", a.Task.Locator.File, a.Task.Locator.Line)
			name = fmt.Sprintf("[[%s][%s]]", EscapeLink(target), a.Task.Name)
		}
		lines = append(lines, fmt.Sprintf("%s %s Hours: %s", a.Category.Label(), a.Hours, name))
	}
	sort.Strings(lines)

	var b strings.Builder
	b.WriteString("#+TITLE: Tasks List as of ")
	b.WriteString(opts.Now.Format("2006-01-02 15:04:05"))
	b.WriteByte('\n')
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// Publish renders the assignments onto the surface. With zero
// assignments the surface is discarded instead of left empty and
// Publish reports false; otherwise the surface is recreated fresh and
// the notifiers run. Republishing the same assignments is idempotent.
func Publish(surface Surface, assignments []model.Assignment, opts Options, notifiers ...Notifier) (bool, error) {
	if len(assignments) == 0 {
		if err := surface.Discard(); err != nil {
			return false, fmt.Errorf("failed to discard report surface: %w", err)
		}
		return false, nil
	}
	if err := surface.Replace(Render(assignments, opts)); err != nil {
		return false, fmt.Errorf("failed to write report surface: %w", err)
	}
	for _, notify := range notifiers {
		notify(assignments)
	}
	return true, nil
}
