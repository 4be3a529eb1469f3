package scan

import (
	"context"
	"fmt"

	apperrors "github.com/agbru/blcheck/internal/errors"
)

// worker scans one partition. Matches are kept in a worker-local buffer and
// merged by the coordinator after the join, so the only shared writes are
// the atomic counters in state.
type worker struct {
	id     int
	host   string
	part   Partition
	oracle Oracle
	state  *scanState
	found  []int
}

// run walks the partition in increasing order. The stop flag and the
// context are checked at the top of each iteration only, so a worker may
// examine one index after another worker raised the flag.
func (w *worker) run(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("worker %d panicked: %v", w.id, r)
		}
	}()

	for i := w.part.Start; i < w.part.End; i++ {
		if w.state.stopped() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		hit, err := w.oracle.IsMatched(i, w.host)
		if err != nil {
			return apperrors.WrapError(err, "worker %d: oracle query for server %d", w.id, i)
		}
		if hit {
			w.found = append(w.found, i)
			w.state.recordMatch()
		}
		w.state.recordChecked()
	}
	return nil
}
