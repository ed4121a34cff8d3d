package report

import (
	"os"
	"path/filepath"
	"sync"
)

// Surface is the sink a rendered report materializes into. Replace
// recreates the surface with fresh content, never appends. Discard
// tears the surface down; discarding an absent surface is not an error.
type Surface interface {
	Replace(content string) error
	Discard() error
}

// FileSurface materializes the report as "<name>.org" in a directory.
type FileSurface struct {
	Path string
}

func NewFileSurface(dir, name string) *FileSurface {
	return &FileSurface{Path: filepath.Join(dir, name+".org")}
}

func (s *FileSurface) Replace(content string) error {
	return os.WriteFile(s.Path, []byte(content), 0644)
}

func (s *FileSurface) Discard() error {
	if err := os.Remove(s.Path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// MemorySurface keeps the report in memory, mainly for the library API
// and tests.
type MemorySurface struct {
	mu      sync.Mutex
	content string
	exists  bool
}

func (s *MemorySurface) Replace(content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.content = content
	s.exists = true
	return nil
}

func (s *MemorySurface) Discard() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.content = ""
	s.exists = false
	return nil
}

// Content returns the current content and whether the surface exists.
func (s *MemorySurface) Content() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.content, s.exists
}
