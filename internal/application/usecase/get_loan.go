package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/asantefin/asante/internal/application/dto"
	"github.com/asantefin/asante/internal/domain/model"
	"github.com/asantefin/asante/internal/domain/port"
	"github.com/asantefin/asante/internal/domain/service"
	"github.com/asantefin/asante/pkg/money"
)

// GetLoanUseCase retrieves a loan with its schedule and the derived arrears
// and timely-repayment figures, recomputed on every call.
type GetLoanUseCase struct {
	loanRepo port.LoanRepository
	metrics  *service.PortfolioMetrics
}

// NewGetLoanUseCase wires dependencies.
func NewGetLoanUseCase(loanRepo port.LoanRepository, metrics *service.PortfolioMetrics) *GetLoanUseCase {
	return &GetLoanUseCase{
		loanRepo: loanRepo,
		metrics:  metrics,
	}
}

// Execute fetches the loan.
func (uc *GetLoanUseCase) Execute(
	ctx context.Context,
	req dto.GetLoanRequest,
) (dto.LoanResponse, error) {
	now := time.Now().UTC()

	loan, err := uc.loanRepo.FindByID(ctx, req.TenantID, req.LoanID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find loan: %w", err)
	}

	arrears := uc.metrics.CheckArrears(loan.Schedule(), now)
	trp := uc.metrics.TimelyRepaymentPercentage(loan.Schedule(), loan.Payments(), now)

	return loanResponse(loan, arrears.InArrears, arrears.DaysInArrears, trp), nil
}

func loanResponse(loan model.Loan, inArrears bool, daysInArrears, trp int) dto.LoanResponse {
	return dto.LoanResponse{
		ID:             loan.ID(),
		TenantID:       loan.TenantID(),
		ClientID:       loan.ClientID(),
		ProductID:      loan.ProductID(),
		Principal:      loan.Terms().Principal,
		Currency:       loan.Currency().Code(),
		Status:         loan.Status().String(),
		Outstanding:    loan.Outstanding(),
		OverpaidAmount: loan.OverpaidAmount(),
		InArrears:      inArrears,
		DaysInArrears:  daysInArrears,
		TimelyPercent:  trp,
		Schedule:       installmentViews(loan.Schedule()),
	}
}

func installmentViews(schedule []model.ScheduleInstallment) []dto.InstallmentView {
	views := make([]dto.InstallmentView, 0, len(schedule))
	for _, inst := range schedule {
		views = append(views, dto.InstallmentView{
			Sequence:         inst.Sequence,
			DueDate:          inst.DueDate,
			Principal:        money.Display(inst.Principal),
			Interest:         money.Display(inst.Interest),
			Fee:              money.Display(inst.Fee),
			TotalDue:         money.Display(inst.TotalDue()),
			OutstandingAfter: money.Display(inst.OutstandingAfter),
			Status:           inst.Status.String(),
		})
	}
	return views
}
