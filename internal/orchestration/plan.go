package orchestration

import (
	"slices"

	"github.com/agbru/blcheck/internal/config"
)

// PlanFromConfig builds the benchmark plan selected by the configuration.
func PlanFromConfig(cfg config.AppConfig) BenchmarkPlan {
	return BenchmarkPlan{
		Host:    cfg.BenchHost,
		Threads: slices.Clone(cfg.BenchThreads),
		Reps:    cfg.BenchReps,
	}
}
