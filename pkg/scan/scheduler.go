package scan

import (
	"time"

	"github.com/rs/zerolog"
)

// Scheduler owns the store and runs scans off the caller's path. One
// goroutine per Scan call, fire-and-forget: there is no pool and no
// cancellation. Overlapping scans are not serialized here; callers that
// can issue concurrent scans must serialize them themselves.
type Scheduler struct {
	store  *Store
	logger zerolog.Logger
}

func NewScheduler(store *Store, logger zerolog.Logger) *Scheduler {
	return &Scheduler{store: store, logger: logger}
}

// Store returns the store scans publish into.
func (s *Scheduler) Store() *Store {
	return s.store
}

// Scan extracts tasks from files on a background goroutine and replaces
// the store's contents when done. The returned channel is closed after
// the new result set is published; the store must not be read for this
// scan's results before then.
func (s *Scheduler) Scan(files []string, opts Options) <-chan struct{} {
	done := make(chan struct{})
	s.logger.Debug().Int("files", len(files)).Msg("scan started")
	go func() {
		defer close(done)
		start := time.Now()
		tasks := Extract(files, opts)
		s.store.Replace(tasks)
		s.logger.Info().
			Int("tasks", len(tasks)).
			Dur("took", time.Since(start)).
			Msg("scan complete")
	}()
	return done
}
