// Package compact reduces a test's log sequence to the entries near
// failures, replacing everything else with omission markers. It keeps the
// output readable when a test produces hundreds of entries but only the
// context around errors matters.
package compact
