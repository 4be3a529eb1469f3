package config

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

// EffectiveThreads resolves a requested worker count: 0 selects one worker
// per available CPU, any other value is returned unchanged.
func EffectiveThreads(requested int) int {
	if requested == 0 {
		return runtime.NumCPU()
	}
	return requested
}

// ParseThreadList parses a comma-separated list of positive integers such as
// "1,2,4,8". Blank entries are ignored.
func ParseThreadList(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid thread count %q", part)
		}
		if n < 1 {
			return nil, fmt.Errorf("thread count must be positive, got %d", n)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty thread list")
	}
	return out, nil
}
