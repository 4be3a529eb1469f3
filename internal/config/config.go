// Package config parses and validates the blcheck configuration.
//
// Values are resolved with the priority CLI flags > BLCHECK_* environment
// variables > defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/agbru/blcheck/internal/errors"
)

// EnvPrefix is prepended to every environment variable the configuration
// reads.
const EnvPrefix = "BLCHECK_"

// Commands understood by the binary.
const (
	CommandServe = "serve"
	CommandCheck = "check"
	CommandBench = "bench"
)

// Defaults.
const (
	DefaultAddr        = ":8080"
	DefaultAlarmCount  = 5
	DefaultServerCount = 10000
	DefaultMaxThreads  = 10000
	DefaultTimeout     = time.Minute
	DefaultLogLevel    = "info"
	DefaultBenchHost   = "202.24.34.55"
	DefaultBenchReps   = 3
)

// DefaultBenchThreads is the thread-count sweep of the benchmark command.
var DefaultBenchThreads = []int{1, 2, 4, 8, 16, 32, 50, 100}

var validLogLevels = []string{"trace", "debug", "info", "warn", "error", "disabled"}

// AppConfig aggregates the configuration of every command.
type AppConfig struct {
	// Command is one of CommandServe, CommandCheck or CommandBench.
	Command string
	// Addr is the HTTP listen address of the serve command.
	Addr string
	// AlarmCount is the number of matches at which a host is untrustworthy.
	AlarmCount int
	// ServerCount is the size of the demonstration population. Ignored when
	// SeedFile is set.
	ServerCount int
	// SeedFile optionally points to a YAML registry seed file.
	SeedFile string
	// IP is the host checked by the check command.
	IP string
	// Threads is the worker count of the check command; 0 means one per CPU.
	Threads int
	// MaxThreads caps every requested worker count.
	MaxThreads int
	// Timeout bounds a single check or the whole benchmark run.
	Timeout time.Duration
	// LogLevel is a zerolog level name.
	LogLevel string
	NoColor  bool
	JSON     bool
	Quiet    bool

	// OutputFile optionally receives the check result as JSON.
	OutputFile string
	// BenchHost is the host the benchmark checks.
	BenchHost string
	// BenchThreads is the benchmark's thread-count sweep.
	BenchThreads []int
	// BenchReps is the number of runs averaged per thread count.
	BenchReps int
}

// Default returns the configuration used when nothing is overridden.
func Default() AppConfig {
	return AppConfig{
		Command:      CommandServe,
		Addr:         DefaultAddr,
		AlarmCount:   DefaultAlarmCount,
		ServerCount:  DefaultServerCount,
		MaxThreads:   DefaultMaxThreads,
		Timeout:      DefaultTimeout,
		LogLevel:     DefaultLogLevel,
		BenchHost:    DefaultBenchHost,
		BenchThreads: slices.Clone(DefaultBenchThreads),
		BenchReps:    DefaultBenchReps,
	}
}

// intListValue is a flag.Value for comma-separated integer lists.
type intListValue struct {
	target *[]int
}

func (v intListValue) String() string {
	if v.target == nil {
		return ""
	}
	parts := make([]string, len(*v.target))
	for i, n := range *v.target {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func (v intListValue) Set(s string) error {
	list, err := ParseThreadList(s)
	if err != nil {
		return err
	}
	*v.target = list
	return nil
}

// ParseConfig parses the command line into an AppConfig.
//
// The first argument selects the command when it does not start with a dash.
// Environment overrides are applied to every flag not set explicitly, then
// the result is validated.
//
// Parameters:
//   - programName: Used in usage messages.
//   - args: Command-line arguments without the program name.
//   - errorWriter: Destination of usage and parse errors.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp for -h, a parse error, or a ConfigError.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	config := Default()
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		config.Command = args[0]
		args = args[1:]
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	fs.Usage = func() {
		fmt.Fprintf(errorWriter, "Usage: %s [serve|check|bench] [flags]\n\nFlags:\n", programName)
		fs.PrintDefaults()
	}

	fs.StringVar(&config.Addr, "addr", config.Addr, "HTTP listen address (serve).")
	fs.IntVar(&config.AlarmCount, "alarm-count", config.AlarmCount, "Matches at which a host becomes untrustworthy.")
	fs.IntVar(&config.ServerCount, "servers", config.ServerCount, "Number of blacklist servers in the demo registry.")
	fs.StringVar(&config.SeedFile, "seed-file", "", "YAML file describing the blacklist registry.")
	fs.StringVar(&config.IP, "ip", "", "Host IP address to check (check).")
	fs.IntVar(&config.Threads, "threads", 0, "Worker count (0 = one per CPU).")
	fs.IntVar(&config.Threads, "t", 0, "Worker count (shorthand).")
	fs.IntVar(&config.MaxThreads, "max-threads", config.MaxThreads, "Upper bound on requested worker counts.")
	fs.DurationVar(&config.Timeout, "timeout", config.Timeout, "Maximum duration of a check or benchmark run.")
	fs.StringVar(&config.LogLevel, "log-level", config.LogLevel, "Log level (trace, debug, info, warn, error, disabled).")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.BoolVar(&config.JSON, "json", false, "Print the check result as JSON.")
	fs.StringVar(&config.OutputFile, "output", "", "Also write the check result as JSON to this file.")
	fs.StringVar(&config.OutputFile, "o", "", "Output file (shorthand).")
	fs.BoolVar(&config.Quiet, "quiet", false, "Minimal output.")
	fs.BoolVar(&config.Quiet, "q", false, "Minimal output (shorthand).")
	fs.StringVar(&config.BenchHost, "bench-host", config.BenchHost, "Host checked by the benchmark.")
	fs.Var(intListValue{&config.BenchThreads}, "bench-threads", "Comma-separated thread counts to benchmark.")
	fs.IntVar(&config.BenchReps, "bench-reps", config.BenchReps, "Runs averaged per thread count.")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	applyEnvOverrides(&config, fs)

	if err := config.Validate(); err != nil {
		return AppConfig{}, err
	}
	return config, nil
}

// Validate checks the semantic consistency of the configuration.
func (c AppConfig) Validate() error {
	switch c.Command {
	case CommandServe, CommandCheck, CommandBench:
	default:
		return apperrors.NewConfigError("unknown command %q (expected serve, check or bench)", c.Command)
	}
	if c.AlarmCount < 0 {
		return apperrors.NewConfigError("alarm count cannot be negative, got %d", c.AlarmCount)
	}
	if c.ServerCount < 0 {
		return apperrors.NewConfigError("server count cannot be negative, got %d", c.ServerCount)
	}
	if c.MaxThreads < 1 {
		return apperrors.NewConfigError("max threads must be at least 1, got %d", c.MaxThreads)
	}
	if c.Threads < 0 || c.Threads > c.MaxThreads {
		return apperrors.NewConfigError("threads must be between 0 and %d, got %d", c.MaxThreads, c.Threads)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", c.Timeout)
	}
	if !slices.Contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return apperrors.NewConfigError("unknown log level %q", c.LogLevel)
	}
	if c.Command == CommandCheck {
		if strings.TrimSpace(c.IP) == "" {
			return apperrors.NewConfigError("the check command requires --ip")
		}
		if !ValidHostIP(c.IP) {
			return apperrors.NewConfigError("Invalid IP address: %s", c.IP)
		}
	}
	if c.Command == CommandBench {
		if strings.TrimSpace(c.BenchHost) == "" {
			return apperrors.NewConfigError("benchmark host cannot be empty")
		}
		if !ValidHostIP(c.BenchHost) {
			return apperrors.NewConfigError("Invalid benchmark host address: %s", c.BenchHost)
		}
		if c.BenchReps < 1 {
			return apperrors.NewConfigError("benchmark repetitions must be at least 1, got %d", c.BenchReps)
		}
		if len(c.BenchThreads) == 0 {
			return apperrors.NewConfigError("benchmark thread list cannot be empty")
		}
		for _, n := range c.BenchThreads {
			if n < 1 || n > c.MaxThreads {
				return apperrors.NewConfigError("benchmark thread count %d outside [1, %d]", n, c.MaxThreads)
			}
		}
	}
	return nil
}
