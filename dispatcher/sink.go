package dispatcher

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/pablor21/enumgen/types"
	"github.com/pablor21/enumgen/utils"
)

// Sink is the destination of finished files. Write receives the complete
// content of one file and must never leave it partially written.
type Sink interface {
	// Write stores content under name and returns the resolved path and
	// whether the destination changed.
	Write(ctx context.Context, name string, content []byte) (path string, changed bool, err error)
}

// FileSink writes files under Dir, replacing each one atomically
type FileSink struct {
	Dir string
}

func NewFileSink(dir string) *FileSink {
	return &FileSink{Dir: dir}
}

func (s *FileSink) Write(_ context.Context, name string, content []byte) (string, bool, error) {
	path := filepath.Join(s.Dir, name)

	if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, content) {
		return path, false, nil
	}

	dir := filepath.Dir(path)
	if err := utils.EnsureDir(dir); err != nil {
		return path, false, fmt.Errorf("create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return path, false, fmt.Errorf("create temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return path, false, fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return path, false, fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return path, false, fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return path, false, fmt.Errorf("rename into %s: %w", path, err)
	}
	return path, true, nil
}

// MemorySink keeps files in memory. It is safe for concurrent use.
type MemorySink struct {
	mu    sync.Mutex
	files map[string][]byte
}

func NewMemorySink() *MemorySink {
	return &MemorySink{files: make(map[string][]byte)}
}

func (s *MemorySink) Write(_ context.Context, name string, content []byte) (string, bool, error) {
	buf := make([]byte, len(content))
	copy(buf, content)

	s.mu.Lock()
	defer s.mu.Unlock()
	prev, existed := s.files[name]
	s.files[name] = buf
	return name, !existed || !bytes.Equal(prev, buf), nil
}

// Get returns the stored content for name
func (s *MemorySink) Get(name string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.files[name]
	return b, ok
}

// Names lists stored file names in sorted order
func (s *MemorySink) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.files))
	for n := range s.files {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// DriftError reports a destination whose content differs from what would be generated
type DriftError struct {
	Path string
	Diff string
}

func (e *DriftError) Error() string {
	if e.Diff == "" {
		return fmt.Sprintf("%s does not exist", e.Path)
	}
	return fmt.Sprintf("%s differs from generated output:\n%s", e.Path, e.Diff)
}

func (e *DriftError) Unwrap() error { return types.ErrOutOfDate }

// CheckSink compares content with the files under Dir without writing anything
type CheckSink struct {
	Dir string
}

func NewCheckSink(dir string) *CheckSink {
	return &CheckSink{Dir: dir}
}

func (s *CheckSink) Write(_ context.Context, name string, content []byte) (string, bool, error) {
	path := filepath.Join(s.Dir, name)

	existing, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return path, false, &DriftError{Path: path}
	}
	if err != nil {
		return path, false, fmt.Errorf("read %s: %w", path, err)
	}
	if bytes.Equal(existing, content) {
		return path, false, nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(existing)),
		B:        difflib.SplitLines(string(content)),
		FromFile: path,
		ToFile:   path + " (generated)",
		Context:  3,
	})
	if err != nil {
		return path, false, fmt.Errorf("diff %s: %w", path, err)
	}
	return path, false, &DriftError{Path: path, Diff: diff}
}
