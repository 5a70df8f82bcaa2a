// Package sink persists a run's accumulated logs to destination files.
//
// Supported formats:
//   - json: indented JSON keyed by spec and test
//   - txt: indented plain text
//   - custom: serialization delegated to a caller-supplied function
//
// Sinks are resolved once from target declarations, initialized before the
// run, and written at most once per run on flush.
package sink
