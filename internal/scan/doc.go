// Package scan implements the concurrent blacklist scan: it partitions the
// server index space across workers, runs the workers in parallel against a
// shared Oracle, stops early once the alarm threshold is reached, and
// aggregates the matches into an immutable Result.
//
// The Oracle and the Policy are injected through NewChecker; the package owns
// no global state. Every call to Checker.CheckHost builds its own scan state,
// so concurrent calls never interfere.
package scan
