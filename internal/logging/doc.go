// Package logging provides a unified logging interface for the blacklist
// checker. It abstracts the underlying logging implementation, allowing
// consistent logging across the scan core, the data source and the HTTP layer
// while supporting multiple backends.
package logging
