// Package app wires configuration, the blacklist registry, the scan checker
// and the presentation layers into the serve, check and bench commands.
package app
