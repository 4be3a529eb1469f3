package scan

import apperrors "github.com/agbru/blcheck/internal/errors"

// Partition is the half-open range [Start, End) of server indices owned by a
// single worker.
type Partition struct {
	Start int
	End   int
}

// Len returns the number of indices in the partition.
func (p Partition) Len() int { return p.End - p.Start }

// Empty reports whether the partition holds no indices.
func (p Partition) Empty() bool { return p.End <= p.Start }

// PartitionRange splits [0, total) into exactly workers contiguous,
// non-overlapping partitions ordered by Start. Each partition holds
// total/workers indices and the first total%workers partitions hold one more.
// When workers exceeds total the trailing partitions are empty.
//
// Parameters:
//   - total: The population size; must be non-negative.
//   - workers: The number of partitions; must be positive.
//
// Returns:
//   - []Partition: The partitions, len(result) == workers.
//   - error: An InvalidArgumentError for a negative total or non-positive workers.
func PartitionRange(total, workers int) ([]Partition, error) {
	if workers <= 0 {
		return nil, apperrors.NewInvalidArgument("workers", "must be positive, got %d", workers)
	}
	if total < 0 {
		return nil, apperrors.NewInvalidArgument("total", "cannot be negative, got %d", total)
	}

	base, remainder := total/workers, total%workers
	parts := make([]Partition, workers)
	start := 0
	for i := range parts {
		size := base
		if i < remainder {
			size++
		}
		parts[i] = Partition{Start: start, End: start + size}
		start += size
	}
	return parts, nil
}
