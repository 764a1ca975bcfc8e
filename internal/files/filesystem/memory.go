package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.mode.IsDir() }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

type memoryEntry struct {
	absPath string
	content []byte
	info    *memoryFileInfo
}

type memoryFile struct {
	entry   *memoryEntry
	relPath string
}

func (f *memoryFile) Path() string         { return f.entry.absPath }
func (f *memoryFile) RelativePath() string { return f.relPath }
func (f *memoryFile) Info() FileInfo       { return f.entry.info }

type memoryDirectory struct {
	absPath string
	fs      *MemoryFileSystem
}

func (d *memoryDirectory) Path() string { return d.absPath }

// Walk visits entries in lexical path order, which puts parents before children.
func (d *memoryDirectory) Walk(fn func(File, error) error) error {
	entries := d.fs.entriesUnder(d.absPath)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].absPath < entries[j].absPath
	})

	for _, entry := range entries {
		rel := strings.TrimPrefix(strings.TrimPrefix(entry.absPath, d.absPath), "/")
		if rel == "" {
			rel = "."
		}

		var callbackErr error
		func() {
			defer func() {
				if r := recover(); r != nil {
					callbackErr = fmt.Errorf("walk callback panicked at %s: %v", entry.absPath, r)
				}
			}()
			callbackErr = fn(&memoryFile{entry: entry, relPath: rel}, nil)
		}()

		if callbackErr != nil {
			return callbackErr
		}
	}

	return nil
}

// MemoryFileSystem implements FileSystemProvider in memory for tests.
// Paths use forward slashes; relative paths are resolved against the root.
type MemoryFileSystem struct {
	entries      map[string]*memoryEntry
	root         string
	removeErrors map[string]error
}

// NewMemoryFileSystem creates an empty in-memory filesystem rooted at root.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	mfs := &MemoryFileSystem{
		entries:      make(map[string]*memoryEntry),
		root:         path.Clean(filepath.ToSlash(root)),
		removeErrors: make(map[string]error),
	}
	mfs.addDir(mfs.root)
	return mfs
}

// AddFile adds a file, creating parent directories as needed.
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	abs := mfs.abs(filePath)
	mfs.entries[abs] = &memoryEntry{
		absPath: abs,
		content: []byte(content),
		info: &memoryFileInfo{
			name:    path.Base(abs),
			size:    int64(len(content)),
			mode:    0644,
			modTime: time.Now(),
		},
	}
	for dir := path.Dir(abs); dir != "/" && dir != "."; dir = path.Dir(dir) {
		if _, ok := mfs.entries[dir]; ok {
			break
		}
		mfs.addDir(dir)
	}
}

// FailRemove makes a later Remove of filePath return err.
func (mfs *MemoryFileSystem) FailRemove(filePath string, err error) {
	mfs.removeErrors[mfs.abs(filePath)] = err
}

// Exists reports whether a file or directory is present.
func (mfs *MemoryFileSystem) Exists(filePath string) bool {
	_, ok := mfs.entries[mfs.abs(filePath)]
	return ok
}

// Files returns the absolute paths of all regular files, sorted.
func (mfs *MemoryFileSystem) Files() []string {
	var out []string
	for p, e := range mfs.entries {
		if !e.info.IsDir() {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}

func (mfs *MemoryFileSystem) addDir(dir string) {
	mfs.entries[dir] = &memoryEntry{
		absPath: dir,
		info: &memoryFileInfo{
			name:    path.Base(dir),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
		},
	}
}

func (mfs *MemoryFileSystem) abs(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

func (mfs *MemoryFileSystem) entriesUnder(base string) []*memoryEntry {
	var out []*memoryEntry
	for p, e := range mfs.entries {
		if p == base || strings.HasPrefix(p, strings.TrimSuffix(base, "/")+"/") {
			out = append(out, e)
		}
	}
	return out
}

func (mfs *MemoryFileSystem) Open(openPath string) (Directory, error) {
	abs := mfs.abs(openPath)
	entry, ok := mfs.entries[abs]
	if !ok {
		return nil, fmt.Errorf("directory not found: %s", openPath)
	}
	if !entry.info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", openPath)
	}
	return &memoryDirectory{absPath: abs, fs: mfs}, nil
}

func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	entry, ok := mfs.entries[mfs.abs(filePath)]
	if !ok {
		return nil, fmt.Errorf("file not found: %s: %w", filePath, fs.ErrNotExist)
	}
	if entry.info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	return entry.content, nil
}

func (mfs *MemoryFileSystem) Remove(filePath string) error {
	abs := mfs.abs(filePath)
	if err, ok := mfs.removeErrors[abs]; ok {
		return err
	}
	entry, ok := mfs.entries[abs]
	if !ok {
		return fmt.Errorf("remove %s: %w", filePath, fs.ErrNotExist)
	}
	if entry.info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	delete(mfs.entries, abs)
	return nil
}

var _ FileSystemProvider = (*MemoryFileSystem)(nil)
