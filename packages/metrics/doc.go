// Package metrics tracks how long sink writes take, aggregated across
// every flush in the process.
package metrics
