package valueobject

import (
	"fmt"
	"time"
)

// ---------------------------------------------------------------------------
// RepaymentFrequency – immutable value object
// ---------------------------------------------------------------------------

// RepaymentFrequency is the cadence at which loan installments fall due.
type RepaymentFrequency struct {
	value string
}

const (
	frequencyDaily     = "daily"
	frequencyWeekly    = "weekly"
	frequencyMonthly   = "monthly"
	frequencyQuarterly = "quarterly"
)

var (
	FrequencyDaily     = RepaymentFrequency{value: frequencyDaily}
	FrequencyWeekly    = RepaymentFrequency{value: frequencyWeekly}
	FrequencyMonthly   = RepaymentFrequency{value: frequencyMonthly}
	FrequencyQuarterly = RepaymentFrequency{value: frequencyQuarterly}
)

var validFrequencies = map[string]RepaymentFrequency{
	frequencyDaily:     FrequencyDaily,
	frequencyWeekly:    FrequencyWeekly,
	frequencyMonthly:   FrequencyMonthly,
	frequencyQuarterly: FrequencyQuarterly,
}

// NewRepaymentFrequency creates a RepaymentFrequency from a raw string.
func NewRepaymentFrequency(s string) (RepaymentFrequency, error) {
	v, ok := validFrequencies[s]
	if !ok {
		return RepaymentFrequency{}, fmt.Errorf("invalid repayment frequency: %q", s)
	}
	return v, nil
}

// String returns the string representation of the frequency.
func (f RepaymentFrequency) String() string { return f.value }

// IsZero returns true if the frequency has not been initialised.
func (f RepaymentFrequency) IsZero() bool { return f.value == "" }

// Equal returns true when both frequencies carry the same value.
func (f RepaymentFrequency) Equal(other RepaymentFrequency) bool { return f.value == other.value }

// AddPeriods returns t advanced by n frequency periods. Monthly and quarterly
// frequencies use calendar-month arithmetic, so the 31st rolls forward the way
// time.AddDate does.
func (f RepaymentFrequency) AddPeriods(t time.Time, n int) time.Time {
	switch f.value {
	case frequencyDaily:
		return t.AddDate(0, 0, n)
	case frequencyWeekly:
		return t.AddDate(0, 0, 7*n)
	case frequencyMonthly:
		return t.AddDate(0, n, 0)
	case frequencyQuarterly:
		return t.AddDate(0, 3*n, 0)
	default:
		return t
	}
}
