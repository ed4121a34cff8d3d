package scan

import (
	"sync"

	"github.com/harrisonrobin/orgwatch/pkg/model"
)

// Store holds the task list produced by the most recent completed scan.
// Replace swaps the whole list in one step, so readers either see the
// previous scan's result or the new one, never a partial set.
type Store struct {
	mu    sync.RWMutex
	tasks []model.Task
}

func NewStore() *Store {
	return &Store{}
}

// Replace publishes a fresh result set, discarding the previous one.
func (s *Store) Replace(tasks []model.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = tasks
}

// Tasks returns a copy of the current task list.
func (s *Store) Tasks() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}
