// Package cmd implements the speclog CLI commands using Cobra.
//
// Available commands:
//   - replay: Feed recorded ingestion events through the log pipeline
//   - version: Show speclog version information
package cmd
