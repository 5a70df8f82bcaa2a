// Package logs defines the data model shared by the log pipeline:
// entries, per-test sequences, test outcomes, and the batch buffer that
// accumulates sequences across a run.
package logs
