package blacklist

import (
	"slices"
	"strings"
	"sync"

	apperrors "github.com/agbru/blcheck/internal/errors"
	"github.com/agbru/blcheck/internal/logging"
	"github.com/agbru/blcheck/internal/scan"
)

// DefaultServerCount is the size of the demonstration population.
const DefaultServerCount = 10000

// Demonstration hosts seeded by NewDemoRegistry.
const (
	// ConcentratedHost is listed on the first ten servers, so a scan stops
	// almost immediately.
	ConcentratedHost = "200.24.34.55"
	// DispersedHost is listed on six servers spread over the population.
	DispersedHost = "202.24.34.55"
	// CleanHost is listed nowhere and forces an exhaustive scan.
	CleanHost = "212.24.24.55"
)

var _ scan.Oracle = (*Registry)(nil)

// Registry is a thread-safe host to listed-servers table over a fixed
// population of servers.
type Registry struct {
	servers int
	logger  logging.Logger

	mu     sync.RWMutex
	listed map[string]map[int]struct{}
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger that receives verdict reports.
func WithLogger(l logging.Logger) Option {
	return func(r *Registry) { r.logger = l }
}

// NewRegistry creates an empty registry of serverCount servers.
func NewRegistry(serverCount int, opts ...Option) (*Registry, error) {
	if serverCount < 0 {
		return nil, apperrors.NewInvalidArgument("servers", "cannot be negative, got %d", serverCount)
	}
	r := &Registry{
		servers: serverCount,
		logger:  logging.Nop(),
		listed:  make(map[string]map[int]struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// NewDemoRegistry creates a DefaultServerCount registry seeded with the
// concentrated and dispersed demonstration hosts. CleanHost stays unseeded.
func NewDemoRegistry(opts ...Option) *Registry {
	r, _ := NewSizedDemoRegistry(DefaultServerCount, opts...)
	return r
}

// NewSizedDemoRegistry is NewDemoRegistry over serverCount servers. Seeds
// that fall outside the population are dropped.
func NewSizedDemoRegistry(serverCount int, opts ...Option) (*Registry, error) {
	r, err := NewRegistry(serverCount, opts...)
	if err != nil {
		return nil, err
	}
	seeds := map[string][]int{
		ConcentratedHost: {0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
		DispersedHost:    {5, 111, 999, 2048, 4096, 8191},
	}
	for host, indices := range seeds {
		inRange := slices.DeleteFunc(slices.Clone(indices), func(i int) bool { return i >= serverCount })
		if err := r.Seed(host, inRange...); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// RegisteredServerCount returns the population size.
func (r *Registry) RegisteredServerCount() int { return r.servers }

// IsMatched reports whether host is listed on server index. Indices outside
// the population are never matched.
func (r *Registry) IsMatched(index int, host string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.listed[host][index]
	return ok, nil
}

// ReportVerdict logs the verdict of a completed scan.
func (r *Registry) ReportVerdict(host string, trustworthy bool) error {
	if trustworthy {
		r.logger.Info("HOST reported as trustworthy", logging.String("host", host))
	} else {
		r.logger.Info("HOST reported as NOT trustworthy", logging.String("host", host))
	}
	return nil
}

// Seed adds indices to the servers on which host is listed. Existing
// listings are kept.
func (r *Registry) Seed(host string, indices ...int) error {
	if strings.TrimSpace(host) == "" {
		return apperrors.NewInvalidArgument("host", "cannot be empty")
	}
	for _, i := range indices {
		if i < 0 || i >= r.servers {
			return apperrors.NewInvalidArgument("servers", "index %d outside [0, %d)", i, r.servers)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	set, ok := r.listed[host]
	if !ok {
		set = make(map[int]struct{}, len(indices))
		r.listed[host] = set
	}
	for _, i := range indices {
		set[i] = struct{}{}
	}
	return nil
}

// Clear removes every listing of host.
func (r *Registry) Clear(host string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.listed, host)
}

// Hosts returns the seeded hosts in lexical order.
func (r *Registry) Hosts() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	hosts := make([]string, 0, len(r.listed))
	for h := range r.listed {
		hosts = append(hosts, h)
	}
	slices.Sort(hosts)
	return hosts
}

// Listed returns the servers on which host is listed, ascending.
func (r *Registry) Listed(host string) []int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	set := r.listed[host]
	out := make([]int, 0, len(set))
	for i := range set {
		out = append(out, i)
	}
	slices.Sort(out)
	return out
}
