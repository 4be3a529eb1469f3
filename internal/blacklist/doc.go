// Package blacklist provides the in-memory population of blacklist servers
// that the scanner queries.
//
// A Registry maps host identifiers to the set of server indices on which
// they are listed. It implements scan.Oracle and can be populated
// programmatically (Seed, Clear), from the built-in demonstration data
// (NewDemoRegistry) or from a YAML seed file (LoadSeedFile).
package blacklist
