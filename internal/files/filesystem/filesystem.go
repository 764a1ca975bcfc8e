package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// File is one entry discovered while walking a directory.
type File interface {
	// Path returns the absolute path to the entry
	Path() string

	// RelativePath returns the path relative to the walked directory, slash separated
	RelativePath() string

	// Info returns entry metadata
	Info() FileInfo
}

// Directory represents a directory that can be traversed to discover files
type Directory interface {
	// Path returns the absolute path to the directory
	Path() string

	// Walk visits the directory itself and every entry below it, parents before children.
	// If fn returns an error, walking stops and Walk returns that error.
	Walk(fn func(File, error) error) error
}

// FileSystemProvider is the set of filesystem operations an icon run needs:
// reading the manifest, walking the icon tree and deleting icon files.
type FileSystemProvider interface {
	// Open opens a directory at the specified path
	Open(path string) (Directory, error)

	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// Remove deletes a single file. Removing a directory is an error.
	Remove(path string) error
}
