package model

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/asantefin/asante/internal/domain/valueobject"
)

var oneHundred = decimal.NewFromInt(100)

// GenerateSchedule produces the ordered installment schedule for the given
// terms and charges. now is only consulted when the terms carry no first
// repayment date, in which case installment 1 falls one frequency period
// after it.
//
// Monetary values are kept at full precision throughout. The last installment
// absorbs any division residue so that the principal components sum exactly
// to the original principal, and likewise for interest and recurring fees.
func GenerateSchedule(terms LoanTerms, charges []ChargeSpec, now time.Time) ([]ScheduleInstallment, error) {
	if err := terms.Validate(); err != nil {
		return nil, err
	}

	n := terms.Installments
	first := terms.firstDueDate(now)

	dueDates := make([]time.Time, n)
	for i := 0; i < n; i++ {
		dueDates[i] = terms.Frequency.AddPeriods(first, i)
	}

	fees := spreadCharges(charges, dueDates)

	var principals, interests []decimal.Decimal
	if terms.Method.Equal(valueobject.InterestMethodFlat) {
		principals, interests = flatComponents(terms)
	} else {
		principals, interests = reducingBalanceComponents(terms)
	}

	schedule := make([]ScheduleInstallment, 0, n)
	remaining := terms.Principal
	for i := 0; i < n; i++ {
		remaining = remaining.Sub(principals[i])
		schedule = append(schedule, ScheduleInstallment{
			Sequence:         i + 1,
			DueDate:          dueDates[i],
			Principal:        principals[i],
			Interest:         interests[i],
			Fee:              fees[i],
			OutstandingAfter: remaining,
			PrincipalPaid:    decimal.Zero,
			InterestPaid:     decimal.Zero,
			FeePaid:          decimal.Zero,
			Status:           valueobject.InstallmentStatusUnpaid,
		})
	}

	return schedule, nil
}

// flatComponents implements the flat-rate method: interest is charged once on
// the original principal over the full nominal term and split evenly, giving
// a level total payment.
//
//	totalInterest = principal * rate * term / 100
func flatComponents(terms LoanTerms) (principals, interests []decimal.Decimal) {
	n := terms.Installments
	count := decimal.NewFromInt(int64(n))

	totalInterest := terms.Principal.
		Mul(terms.AnnualRatePercent).
		Mul(decimal.NewFromInt(int64(terms.TermLength))).
		Div(oneHundred)

	perInterest := totalInterest.Div(count)
	perPrincipal := terms.Principal.Div(count)

	principals = make([]decimal.Decimal, n)
	interests = make([]decimal.Decimal, n)
	for i := 0; i < n; i++ {
		principals[i] = perPrincipal
		interests[i] = perInterest
	}

	// Balancing adjustment: the final installment absorbs division residue.
	countMinusOne := decimal.NewFromInt(int64(n - 1))
	principals[n-1] = terms.Principal.Sub(perPrincipal.Mul(countMinusOne))
	interests[n-1] = totalInterest.Sub(perInterest.Mul(countMinusOne))

	return principals, interests
}

// reducingBalanceComponents implements the declining-balance annuity method.
// The annual rate is always converted to a monthly periodic rate, regardless
// of repayment frequency, so that the standard formula applies:
//
//	payment = P * r * (1+r)^n / ((1+r)^n - 1)
func reducingBalanceComponents(terms LoanTerms) (principals, interests []decimal.Decimal) {
	n := terms.Installments
	monthlyRate := terms.AnnualRatePercent.InexactFloat64() / 100.0 / 12.0

	var payment decimal.Decimal
	if monthlyRate == 0 {
		payment = terms.Principal.Div(decimal.NewFromInt(int64(n)))
	} else {
		factor := math.Pow(1+monthlyRate, float64(n))
		paymentFloat := terms.Principal.InexactFloat64() * monthlyRate * factor / (factor - 1)
		payment = decimal.NewFromFloat(paymentFloat)
	}

	rateDec := decimal.NewFromFloat(monthlyRate)
	principals = make([]decimal.Decimal, n)
	interests = make([]decimal.Decimal, n)

	balance := terms.Principal
	for i := 0; i < n; i++ {
		interest := balance.Mul(rateDec)
		principal := payment.Sub(interest)
		if i == n-1 {
			// Final installment repays whatever balance is left.
			principal = balance
		}
		principals[i] = principal
		interests[i] = interest
		balance = balance.Sub(principal)
	}

	return principals, interests
}

// spreadCharges distributes the charges over the schedule's fee components.
// Recurring charges split evenly with the last installment absorbing residue;
// one-off charges land on installment 1 unless a due date places them later.
func spreadCharges(charges []ChargeSpec, dueDates []time.Time) []decimal.Decimal {
	n := len(dueDates)
	fees := make([]decimal.Decimal, n)
	for i := range fees {
		fees[i] = decimal.Zero
	}

	for _, c := range charges {
		if c.Amount.LessThanOrEqual(decimal.Zero) {
			continue
		}
		if c.Recurring {
			per := c.Amount.Div(decimal.NewFromInt(int64(n)))
			for i := 0; i < n-1; i++ {
				fees[i] = fees[i].Add(per)
			}
			fees[n-1] = fees[n-1].Add(c.Amount.Sub(per.Mul(decimal.NewFromInt(int64(n - 1)))))
			continue
		}

		idx := 0
		if !c.DueDate.IsZero() {
			idx = n - 1
			for i, due := range dueDates {
				if !due.Before(c.DueDate) {
					idx = i
					break
				}
			}
		}
		fees[idx] = fees[idx].Add(c.Amount)
	}

	return fees
}
