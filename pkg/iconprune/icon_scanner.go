package iconprune

// IconScanner discovers icon files on disk.
type IconScanner interface {
	// ScanIcons recursively lists every icon file under root, at any depth.
	// Returned paths are root joined with the file's path relative to root.
	ScanIcons(root string) ([]string, error)
}
