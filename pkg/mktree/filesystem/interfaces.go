package filesystem

import (
	"io/fs"
)

// ReadFS is an alias for fs.FS, representing a read-only file system.
type ReadFS = fs.FS

// WriteFS defines the write operations materialization needs.
type WriteFS interface {
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
}

// FileSystem combines read, write and stat operations. It is the
// collaborator the materializer issues side effects against.
type FileSystem interface {
	ReadFS
	WriteFS
	Stat(name string) (fs.FileInfo, error)
}

// Exists reports whether a path exists in the filesystem.
func Exists(fsys FileSystem, name string) bool {
	_, err := fsys.Stat(name)
	return err == nil
}
