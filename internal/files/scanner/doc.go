// Package scanner discovers icon files in the icon library.
//
// The scanner walks the library through filesystem.FileSystemProvider, so the
// same code runs against the OS filesystem and the in-memory one used in tests.
package scanner
