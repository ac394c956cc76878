// Package logging provides concrete implementations of the dogsearch.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes prefixed diagnostic lines to a writer (stderr in the CLI)
//   - NullLogger: Discards all messages (useful for testing)
//
// Diagnostics never go to stdout, which carries only the match report.
package logging
