// Package config defines the pipeline options, their defaults, and their
// validation. Options load from JSON or YAML files and are checked against
// a fixed schema before any test executes, so configuration mistakes fail
// the setup rather than a run in progress.
package config
