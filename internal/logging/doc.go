// Package logging provides concrete implementations of the iconprune.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes prefixed messages to stderr (or any writer)
//   - NullLogger: Discards all messages (useful for testing)
package logging
