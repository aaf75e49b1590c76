package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/example/stackgen/internal/ports/secondary"
	"github.com/example/stackgen/internal/scaffold"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// memStore implements secondary.FileStore in memory.
type memStore struct {
	mu       sync.Mutex
	files    map[string]string
	dirs     map[string]bool
	writes   []string
	failOn   map[string]error // path -> write error
	readFail map[string]error
}

func newMemStore() *memStore {
	return &memStore{
		files:    make(map[string]string),
		dirs:     make(map[string]bool),
		failOn:   make(map[string]error),
		readFail: make(map[string]error),
	}
}

func (m *memStore) ReadIfExists(ctx context.Context, path string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.readFail[path]; err != nil {
		return "", false, scaffold.NewFileSystemError("read", path, err)
	}
	content, ok := m.files[path]
	return content, ok, nil
}

func (m *memStore) Exists(ctx context.Context, path string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.files[path]
	return ok, nil
}

func (m *memStore) Write(ctx context.Context, path string, content []byte, mode uint32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failOn[path]; err != nil {
		return scaffold.NewFileSystemError("write", path, err)
	}
	m.files[path] = string(content)
	m.writes = append(m.writes, path)
	return nil
}

func (m *memStore) EnsureDir(ctx context.Context, path string, mode uint32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[path] = true
	return nil
}

func (m *memStore) Root() string { return "/project" }

func (m *memStore) paths() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	paths := make([]string, 0, len(m.files))
	for p := range m.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

var _ secondary.FileStore = (*memStore)(nil)

// mockRunRepository implements secondary.RunRepository for testing.
type mockRunRepository struct {
	runs      []*secondary.RunRecord
	createErr error
	nextID    int
}

func (m *mockRunRepository) Create(ctx context.Context, run *secondary.RunRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	if run.ID == "" {
		m.nextID++
		run.ID = fmt.Sprintf("run-%d", m.nextID)
	}
	m.runs = append(m.runs, run)
	return nil
}

func (m *mockRunRepository) GetByID(ctx context.Context, id string) (*secondary.RunRecord, error) {
	for _, r := range m.runs {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, errors.New("run not found")
}

func (m *mockRunRepository) List(ctx context.Context, filters secondary.RunFilters) ([]*secondary.RunRecord, error) {
	var out []*secondary.RunRecord
	for i := len(m.runs) - 1; i >= 0; i-- {
		r := m.runs[i]
		if filters.Entity != "" && r.Entity != filters.Entity {
			continue
		}
		out = append(out, r)
		if filters.Limit > 0 && len(out) == filters.Limit {
			break
		}
	}
	return out, nil
}

var _ secondary.RunRepository = (*mockRunRepository)(nil)

// stepClock returns a clock that advances one second per call.
func stepClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	next := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t := next
		next = next.Add(time.Second)
		return t
	}
}

var errDiskFull = errors.New("no space left on device")
