// Package session wires the log pipeline together: it buffers each test
// case's log sequence, renders it to the terminal under the console
// policy, and flushes the accumulated buffer to the configured sinks at
// the end of the run.
//
// Known surprise: the file-output policy is evaluated against the result
// of the last ingested test only, not an aggregate of the run. With the
// default onFail policy, a run whose final test passes writes no files
// even if earlier tests failed. This matches the behavior file consumers
// have come to rely on and is preserved deliberately.
package session
