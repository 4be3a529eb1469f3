//go:generate mockgen -source=oracle.go -destination=mocks/mock_oracle.go -package=mocks

package scan

import apperrors "github.com/agbru/blcheck/internal/errors"

// DefaultAlarmCount is the number of matches at which a host stops being
// trustworthy when no other policy is configured.
const DefaultAlarmCount = 5

// Oracle answers membership questions about a population of blacklist
// servers. Implementations must be safe for concurrent use by many workers.
type Oracle interface {
	// RegisteredServerCount returns the size of the population. It must be
	// stable for the duration of one scan.
	RegisteredServerCount() int
	// IsMatched reports whether host is listed on the server at index.
	IsMatched(index int, host string) (bool, error)
	// ReportVerdict is notified once per completed scan. Its error is logged
	// by the caller and never fails the scan.
	ReportVerdict(host string, trustworthy bool) error
}

// Policy holds the alarm threshold: the minimum number of matches at which a
// host is declared not trustworthy. An AlarmCount of 0 makes every host
// untrustworthy and stops a scan at the first match.
type Policy struct {
	AlarmCount int
}

// DefaultPolicy returns the policy with DefaultAlarmCount.
func DefaultPolicy() Policy {
	return Policy{AlarmCount: DefaultAlarmCount}
}

// Validate rejects negative alarm counts.
func (p Policy) Validate() error {
	if p.AlarmCount < 0 {
		return apperrors.NewInvalidArgument("alarm-count", "cannot be negative, got %d", p.AlarmCount)
	}
	return nil
}
