package filesystem

import (
	"io/fs"
	"testing/fstest"
)

// TestFileSystem backs the FileSystem interface with fstest.MapFS so
// materialization can run fully in memory.
type TestFileSystem struct {
	fstest.MapFS
}

// NewTestFileSystem creates an empty in-memory filesystem.
func NewTestFileSystem() *TestFileSystem {
	return &TestFileSystem{MapFS: make(fstest.MapFS)}
}

// WriteFile implements WriteFS.
func (tfs *TestFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if !fs.ValidPath(name) {
		return &fs.PathError{Op: "writefile", Path: name, Err: fs.ErrInvalid}
	}
	tfs.MapFS[name] = &fstest.MapFile{Data: data, Mode: perm}
	return nil
}

// MkdirAll implements WriteFS.
func (tfs *TestFileSystem) MkdirAll(path string, perm fs.FileMode) error {
	if !fs.ValidPath(path) {
		return &fs.PathError{Op: "mkdirall", Path: path, Err: fs.ErrInvalid}
	}
	tfs.MapFS[path] = &fstest.MapFile{Mode: perm | fs.ModeDir}
	return nil
}
