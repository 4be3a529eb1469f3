// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// envOverride maps an env key (without the BLCHECK_ prefix) to the CLI flag
// name(s) it corresponds to and a function that applies the env value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

func intOverride(set func(*AppConfig, int)) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			set(c, parsed)
		}
	}
}

// envOverrides is the declarative table of all environment variable overrides.
var envOverrides = []envOverride{
	// Numeric overrides
	{"ALARM_COUNT", []string{"alarm-count"}, intOverride(func(c *AppConfig, n int) { c.AlarmCount = n })},
	{"SERVERS", []string{"servers"}, intOverride(func(c *AppConfig, n int) { c.ServerCount = n })},
	{"THREADS", []string{"threads", "t"}, intOverride(func(c *AppConfig, n int) { c.Threads = n })},
	{"MAX_THREADS", []string{"max-threads"}, intOverride(func(c *AppConfig, n int) { c.MaxThreads = n })},
	{"BENCH_REPS", []string{"bench-reps"}, intOverride(func(c *AppConfig, n int) { c.BenchReps = n })},
	{"BENCH_THREADS", []string{"bench-threads"}, func(c *AppConfig, v string) {
		if parsed, err := ParseThreadList(v); err == nil {
			c.BenchThreads = parsed
		}
	}},

	// Duration overrides
	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},

	// String overrides
	{"ADDR", []string{"addr"}, func(c *AppConfig, v string) { c.Addr = v }},
	{"SEED_FILE", []string{"seed-file"}, func(c *AppConfig, v string) { c.SeedFile = v }},
	{"IP", []string{"ip"}, func(c *AppConfig, v string) { c.IP = v }},
	{"OUTPUT", []string{"output", "o"}, func(c *AppConfig, v string) { c.OutputFile = v }},
	{"LOG_LEVEL", []string{"log-level"}, func(c *AppConfig, v string) { c.LogLevel = v }},
	{"BENCH_HOST", []string{"bench-host"}, func(c *AppConfig, v string) { c.BenchHost = v }},

	// Boolean overrides
	{"NO_COLOR", []string{"no-color"}, func(c *AppConfig, v string) {
		c.NoColor = parseBoolEnv(v, c.NoColor)
	}},
	{"JSON", []string{"json"}, func(c *AppConfig, v string) {
		c.JSON = parseBoolEnv(v, c.JSON)
	}},
	{"QUIET", []string{"quiet", "q"}, func(c *AppConfig, v string) {
		c.Quiet = parseBoolEnv(v, c.Quiet)
	}},
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
//
// Supported environment variables (all prefixed with BLCHECK_):
//   - ALARM_COUNT, SERVERS, THREADS, MAX_THREADS, BENCH_REPS, BENCH_THREADS,
//     TIMEOUT, ADDR, SEED_FILE, IP, OUTPUT, LOG_LEVEL, BENCH_HOST, NO_COLOR, JSON, QUIET
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
}
