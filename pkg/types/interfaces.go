package types

import (
	"io/fs"
)

// FS is the filesystem interface required for ayarla operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)

	// Directory operations
	ReadDir(name string) ([]fs.DirEntry, error)
	MkdirAll(path string, perm fs.FileMode) error

	// Symlink operations
	Symlink(oldname, newname string) error

	// EvalSymlinks returns the absolute path of name with every symlink resolved
	EvalSymlinks(name string) (string, error)

	// Removal
	Remove(name string) error
	RemoveAll(path string) error
}
