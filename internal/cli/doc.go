// Package cli renders the terminal output of the check and bench commands:
// the verdict banner, the benchmark table, the progress spinner and the
// system footer.
package cli
