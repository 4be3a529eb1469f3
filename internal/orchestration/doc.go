// Package orchestration runs benchmark sweeps of the blacklist checker and
// aggregates their results. It decouples the sweep from presentation via the
// ProgressReporter and ResultPresenter interfaces.
package orchestration
