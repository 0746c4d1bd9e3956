package core

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// FileSystem abstracts read-only filesystem access for testability.
type FileSystem interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	ReadDir(ctx context.Context, dir string) ([]fs.DirEntry, error)
	Stat(ctx context.Context, path string) (fs.FileInfo, error)
}

// osFileSystem is the production FileSystem backed by the os package.
type osFileSystem struct{}

// NewOSFileSystem returns a FileSystem backed by the real filesystem.
func NewOSFileSystem() FileSystem {
	return &osFileSystem{}
}

func (o *osFileSystem) ReadFile(_ context.Context, path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (o *osFileSystem) ReadDir(_ context.Context, dir string) ([]fs.DirEntry, error) {
	return os.ReadDir(dir)
}

func (o *osFileSystem) Stat(_ context.Context, path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// MockFileSystem is an in-memory FileSystem for tests. Directories are
// implied by the paths of the files set on it.
type MockFileSystem struct {
	files map[string][]byte
}

// NewMockFileSystem creates an empty MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{files: make(map[string][]byte)}
}

// SetFile registers a file with the given contents. Parent directories
// are created implicitly.
func (m *MockFileSystem) SetFile(path string, data []byte) {
	m.files[filepath.Clean(path)] = data
}

func (m *MockFileSystem) ReadFile(_ context.Context, path string) ([]byte, error) {
	data, ok := m.files[filepath.Clean(path)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return data, nil
}

func (m *MockFileSystem) Stat(_ context.Context, path string) (fs.FileInfo, error) {
	path = filepath.Clean(path)
	if data, ok := m.files[path]; ok {
		return &mockFileInfo{name: filepath.Base(path), size: int64(len(data))}, nil
	}
	if m.isDir(path) {
		return &mockFileInfo{name: filepath.Base(path), dir: true}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
}

func (m *MockFileSystem) ReadDir(_ context.Context, dir string) ([]fs.DirEntry, error) {
	dir = filepath.Clean(dir)
	if !m.isDir(dir) {
		return nil, &fs.PathError{Op: "open", Path: dir, Err: fs.ErrNotExist}
	}

	seen := make(map[string]bool)
	var entries []fs.DirEntry
	prefix := dir + string(filepath.Separator)

	for path := range m.files {
		if !strings.HasPrefix(path, prefix) {
			continue
		}
		rest := strings.TrimPrefix(path, prefix)
		name, _, isNested := strings.Cut(rest, string(filepath.Separator))
		if seen[name] {
			continue
		}
		seen[name] = true
		entries = append(entries, &mockDirEntry{name: name, dir: isNested})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

// isDir reports whether any file lives at or below the given path.
func (m *MockFileSystem) isDir(dir string) bool {
	prefix := dir + string(filepath.Separator)
	for path := range m.files {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

type mockDirEntry struct {
	name string
	dir  bool
}

func (e *mockDirEntry) Name() string { return e.name }
func (e *mockDirEntry) IsDir() bool  { return e.dir }

func (e *mockDirEntry) Type() fs.FileMode {
	if e.dir {
		return fs.ModeDir
	}
	return 0
}

func (e *mockDirEntry) Info() (fs.FileInfo, error) {
	return &mockFileInfo{name: e.name, dir: e.dir}, nil
}

type mockFileInfo struct {
	name string
	size int64
	dir  bool
}

func (i *mockFileInfo) Name() string       { return i.name }
func (i *mockFileInfo) Size() int64        { return i.size }
func (i *mockFileInfo) ModTime() time.Time { return time.Time{} }
func (i *mockFileInfo) IsDir() bool        { return i.dir }
func (i *mockFileInfo) Sys() any           { return nil }

func (i *mockFileInfo) Mode() fs.FileMode {
	if i.dir {
		return fs.ModeDir | 0755
	}
	return 0644
}
