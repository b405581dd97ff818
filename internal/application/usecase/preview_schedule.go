package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/asantefin/asante/internal/application/dto"
	"github.com/asantefin/asante/internal/domain/model"
	"github.com/asantefin/asante/internal/domain/valueobject"
	"github.com/asantefin/asante/pkg/money"
)

// PreviewScheduleUseCase generates a schedule without creating a loan, for
// display before an application is submitted. It touches no storage.
type PreviewScheduleUseCase struct{}

// NewPreviewScheduleUseCase returns the use case.
func NewPreviewScheduleUseCase() *PreviewScheduleUseCase {
	return &PreviewScheduleUseCase{}
}

// Execute generates the preview.
func (uc *PreviewScheduleUseCase) Execute(
	_ context.Context,
	req dto.PreviewScheduleRequest,
) (dto.ScheduleResponse, error) {
	now := time.Now().UTC()

	frequency, err := valueobject.NewRepaymentFrequency(req.Frequency)
	if err != nil {
		return dto.ScheduleResponse{}, fmt.Errorf("parse frequency: %w", err)
	}
	method, err := valueobject.NewInterestMethod(req.Method)
	if err != nil {
		return dto.ScheduleResponse{}, fmt.Errorf("parse interest method: %w", err)
	}

	terms := model.LoanTerms{
		Principal:          req.Principal,
		AnnualRatePercent:  req.AnnualRatePercent,
		TermLength:         req.TermLength,
		Installments:       req.Installments,
		Frequency:          frequency,
		Method:             method,
		FirstRepaymentDate: req.FirstRepaymentDate,
	}

	var charges []model.ChargeSpec
	if req.OneOffFee.IsPositive() {
		charges = append(charges, model.ChargeSpec{Name: "one-off fee", Amount: req.OneOffFee})
	}
	if req.RecurringFee.IsPositive() {
		charges = append(charges, model.ChargeSpec{Name: "recurring fee", Amount: req.RecurringFee, Recurring: true})
	}

	schedule, err := model.GenerateSchedule(terms, charges, now)
	if err != nil {
		return dto.ScheduleResponse{}, fmt.Errorf("generate schedule: %w", err)
	}

	totalPayable := decimal.Zero
	totalInterest := decimal.Zero
	totalFees := decimal.Zero
	for _, inst := range schedule {
		totalPayable = totalPayable.Add(inst.TotalDue())
		totalInterest = totalInterest.Add(inst.Interest)
		totalFees = totalFees.Add(inst.Fee)
	}

	return dto.ScheduleResponse{
		Installments:  installmentViews(schedule),
		TotalPayable:  money.Display(totalPayable),
		TotalInterest: money.Display(totalInterest),
		TotalFees:     money.Display(totalFees),
	}, nil
}
