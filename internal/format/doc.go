// Package format holds the display helpers shared by the CLI presenters:
// durations, ETAs, progress bars, and human-readable numbers.
package format
