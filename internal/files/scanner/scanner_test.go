package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/iconprune/internal/files/filesystem"
)

func newTestScanner() (*Scanner, *filesystem.MemoryFileSystem) {
	fs := filesystem.NewMemoryFileSystem("/plugin")
	return NewScannerWithFS(fs), fs
}

func TestNewScannerWithFS_NilProvider(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for nil filesystem")
		}
	}()
	NewScannerWithFS(nil)
}

func TestScanIcons(t *testing.T) {
	s, fs := newTestScanner()
	fs.AddFile("data.json", "{}")
	fs.AddFile("icons/simple-icons/Github.svg", "<svg/>")
	fs.AddFile("icons/font-awesome-solid/AddressBook.svg", "<svg/>")
	fs.AddFile("icons/font-awesome-solid/README.md", "notes")
	fs.AddFile("icons/Loose.svg", "<svg/>")
	fs.AddFile("icons/deep/nested/set/Icon.svg", "<svg/>")

	icons, err := s.ScanIcons("/plugin/icons")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"/plugin/icons/simple-icons/Github.svg",
		"/plugin/icons/font-awesome-solid/AddressBook.svg",
		"/plugin/icons/Loose.svg",
		"/plugin/icons/deep/nested/set/Icon.svg",
	}, icons)
}

func TestScanIcons_ExtensionIsCaseSensitive(t *testing.T) {
	s, fs := newTestScanner()
	fs.AddFile("icons/set/Upper.SVG", "")
	fs.AddFile("icons/set/lower.svg", "")
	fs.AddFile("icons/set/double.svg.bak", "")

	icons, err := s.ScanIcons("/plugin/icons")
	require.NoError(t, err)
	assert.Equal(t, []string{"/plugin/icons/set/lower.svg"}, icons)
}

func TestScanIcons_SkipsDirectoriesNamedLikeIcons(t *testing.T) {
	s, fs := newTestScanner()
	fs.AddFile("icons/odd.svg/Inner.svg", "")

	icons, err := s.ScanIcons("/plugin/icons")
	require.NoError(t, err)
	assert.Equal(t, []string{"/plugin/icons/odd.svg/Inner.svg"}, icons)
}

func TestScanIcons_EmptyLibrary(t *testing.T) {
	s, fs := newTestScanner()
	fs.AddFile("icons/.keep", "")

	icons, err := s.ScanIcons("/plugin/icons")
	require.NoError(t, err)
	assert.Empty(t, icons)
}

func TestScanIcons_MissingRoot(t *testing.T) {
	s, _ := newTestScanner()

	_, err := s.ScanIcons("/plugin/icons")
	assert.ErrorContains(t, err, "failed to open icons directory")
}
