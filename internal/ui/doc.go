// Package ui provides the color themes shared by the CLI presenters: ANSI
// escape accessors for inline output and lipgloss styles for boxed output.
// Both honor --no-color and the NO_COLOR environment variable.
package ui
