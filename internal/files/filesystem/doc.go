// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// Key interfaces:
//   - FileSystemProvider: Opens directories, reads and removes files
//   - Directory: Represents a directory that can be traversed
//   - File: Represents an entry discovered during a walk
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
package filesystem
