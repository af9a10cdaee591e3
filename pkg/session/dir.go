package session

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
)

// DirStore derives the counter from artifacts already present in a
// directory. The directory is scanned once, on the first NextIndex call;
// after that the counter lives in memory, so files created by other
// processes in the meantime are not noticed.
type DirStore struct {
	mu      sync.Mutex
	dir     string
	naming  Naming
	scanned bool
	next    int
}

// NewDirStore creates a store over dir. An empty dir means the working
// directory.
func NewDirStore(dir string, naming Naming) *DirStore {
	if dir == "" {
		dir = "."
	}
	return &DirStore{dir: dir, naming: naming}
}

// Dir returns the scanned directory.
func (s *DirStore) Dir() string { return s.dir }

func (s *DirStore) NextIndex(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.scan(); err != nil {
		return 0, err
	}
	return s.next, nil
}

func (s *DirStore) RecordUsed(ctx context.Context, n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.scan(); err != nil {
		return err
	}
	s.next = max(s.next, n+1)
	return nil
}

func (s *DirStore) scan() error {
	if s.scanned {
		return nil
	}
	arts, err := Artifacts(s.dir, s.naming)
	if err != nil {
		return err
	}
	s.next = FirstIndex
	if len(arts) > 0 {
		s.next = arts[len(arts)-1].Index + 1
	}
	s.scanned = true
	return nil
}

var _ Store = (*DirStore)(nil)

// Artifact is an output file found on disk.
type Artifact struct {
	Index int
	Name  string
	Path  string
	Size  int64
}

// Artifacts lists files in dir whose names match naming, sorted by index.
// A missing directory yields no artifacts.
func Artifacts(dir string, naming Naming) ([]Artifact, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read output dir: %w", err)
	}

	var out []Artifact
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		idx, ok := naming.ParseIndex(entry.Name())
		if !ok {
			continue
		}
		a := Artifact{Index: idx, Name: entry.Name(), Path: filepath.Join(dir, entry.Name())}
		if info, err := entry.Info(); err == nil {
			a.Size = info.Size()
		}
		out = append(out, a)
	}
	slices.SortFunc(out, func(a, b Artifact) int { return a.Index - b.Index })
	return out, nil
}
