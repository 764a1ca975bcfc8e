package scanner

import (
	"fmt"
	"path/filepath"

	"github.com/vvka-141/iconprune/internal/files/filesystem"
	"github.com/vvka-141/iconprune/pkg/iconprune"
)

// Scanner discovers icon files in a directory tree.
type Scanner struct {
	fsProvider filesystem.FileSystemProvider
	extension  string
}

// NewScanner creates an icon scanner on the OS filesystem.
func NewScanner() *Scanner {
	return NewScannerWithFS(filesystem.NewOSFileSystem())
}

// NewScannerWithFS creates an icon scanner with a custom filesystem provider.
// Panics if fsProvider is nil.
func NewScannerWithFS(fsProvider filesystem.FileSystemProvider) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{
		fsProvider: fsProvider,
		extension:  iconprune.IconExtension,
	}
}

// ScanIcons walks root at unbounded depth and returns the path of every regular
// file whose extension is exactly the icon extension. Directories are skipped even
// when their name ends in the extension. Paths are returned in walk order.
func (s *Scanner) ScanIcons(root string) ([]string, error) {
	dir, err := s.fsProvider.Open(root)
	if err != nil {
		return nil, fmt.Errorf("failed to open icons directory: %w", err)
	}

	var icons []string
	err = dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			return fmt.Errorf("error walking path: %w", err)
		}
		if file.Info().IsDir() {
			return nil
		}
		if filepath.Ext(file.Info().Name()) != s.extension {
			return nil
		}
		icons = append(icons, file.Path())
		return nil
	})
	if err != nil {
		return nil, err
	}

	return icons, nil
}

// Verify Scanner implements the interface at compile time
var _ iconprune.IconScanner = (*Scanner)(nil)
