package scan

import (
	"errors"
	"sync"
	"sync/atomic"
)

// fakeOracle is an in-memory Oracle with optional fault injection.
type fakeOracle struct {
	total   int
	listed  map[string]map[int]bool
	failAt  int
	panicAt int
	failErr error

	queries atomic.Int64

	mu       sync.Mutex
	verdicts []verdict
}

type verdict struct {
	host        string
	trustworthy bool
	queries     int64
}

func newFakeOracle(total int) *fakeOracle {
	return &fakeOracle{
		total:   total,
		listed:  make(map[string]map[int]bool),
		failAt:  -1,
		panicAt: -1,
		failErr: errors.New("blacklist server unreachable"),
	}
}

// list must be called before the oracle is shared with a scan.
func (f *fakeOracle) list(host string, indices ...int) *fakeOracle {
	set, ok := f.listed[host]
	if !ok {
		set = make(map[int]bool)
		f.listed[host] = set
	}
	for _, i := range indices {
		set[i] = true
	}
	return f
}

func (f *fakeOracle) RegisteredServerCount() int { return f.total }

func (f *fakeOracle) IsMatched(index int, host string) (bool, error) {
	f.queries.Add(1)
	if index == f.panicAt {
		panic("corrupted server entry")
	}
	if index == f.failAt {
		return false, f.failErr
	}
	return f.listed[host][index], nil
}

func (f *fakeOracle) ReportVerdict(host string, trustworthy bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.verdicts = append(f.verdicts, verdict{host: host, trustworthy: trustworthy, queries: f.queries.Load()})
	return nil
}

func (f *fakeOracle) reported() []verdict {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]verdict(nil), f.verdicts...)
}
