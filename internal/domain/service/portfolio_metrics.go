package service

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/asantefin/asante/internal/domain/model"
)

// ---------------------------------------------------------------------------
// PortfolioMetrics – domain service for derived, read-only loan metrics
// ---------------------------------------------------------------------------

// metricEpsilon is the tolerance used when comparing cumulative amounts.
var metricEpsilon = decimal.NewFromFloat(0.0001)

// ArrearsStatus is the outcome of an arrears check.
type ArrearsStatus struct {
	InArrears      bool
	DaysInArrears  int
	EarliestUnpaid int
}

// PortfolioMetrics computes arrears and repayment-quality figures from a
// loan's schedule and payment history. Every calculation takes now as an
// explicit parameter so results are deterministic and testable.
type PortfolioMetrics struct{}

// NewPortfolioMetrics returns a new metrics service.
func NewPortfolioMetrics() *PortfolioMetrics {
	return &PortfolioMetrics{}
}

// CheckArrears scans the schedule in sequence order for the earliest
// installment whose due date has passed without full payment. Days in arrears
// is the number of calendar days between now and that due date.
func (m *PortfolioMetrics) CheckArrears(schedule []model.ScheduleInstallment, now time.Time) ArrearsStatus {
	for _, inst := range schedule {
		if inst.DueDate.After(now) {
			break
		}
		if inst.IsSettled() {
			continue
		}
		days := int(now.Sub(inst.DueDate).Hours() / 24)
		return ArrearsStatus{
			InArrears:      true,
			DaysInArrears:  days,
			EarliestUnpaid: inst.Sequence,
		}
	}
	return ArrearsStatus{}
}

// TimelyRepaymentPercentage derives the TRP metric: for every installment due
// on or before now, the cumulative amount payable by its due date is compared
// against the cumulative payments received by that date. An installment is
// timely when payments covered the obligation. The result is the timely share
// as a percentage rounded to the nearest integer.
//
// With no installments yet due the metric is vacuously 100. It is recomputed
// on demand and never cached.
func (m *PortfolioMetrics) TimelyRepaymentPercentage(
	schedule []model.ScheduleInstallment,
	payments []model.Payment,
	now time.Time,
) int {
	sorted := make([]model.Payment, len(payments))
	copy(sorted, payments)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	due := 0
	timely := 0
	requiredCumulative := decimal.Zero

	for _, inst := range schedule {
		if inst.DueDate.After(now) {
			break
		}
		due++
		requiredCumulative = requiredCumulative.Add(inst.TotalDue())

		paidByDue := decimal.Zero
		for _, p := range sorted {
			if p.Date.After(inst.DueDate) {
				break
			}
			paidByDue = paidByDue.Add(p.Amount)
		}

		if paidByDue.Add(metricEpsilon).GreaterThanOrEqual(requiredCumulative) {
			timely++
		}
	}

	if due == 0 {
		return 100
	}
	return int(math.Round(float64(timely) / float64(due) * 100))
}
