package grpc

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/asantefin/asante/internal/application/dto"
	"github.com/asantefin/asante/internal/application/usecase"
	"github.com/asantefin/asante/pkg/auth"
)

// requireRole checks that the caller has at least one of the given roles.
func requireRole(ctx context.Context, roles ...string) error {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return status.Error(codes.Unauthenticated, "authentication required")
	}
	for _, role := range roles {
		if claims.HasRole(role) {
			return nil
		}
	}
	return status.Error(codes.PermissionDenied, "insufficient permissions")
}

// callerFromContext extracts the tenant and user from JWT claims in the context.
func callerFromContext(ctx context.Context) (tenantID, userID string, err error) {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return "", "", status.Error(codes.Unauthenticated, "authentication required")
	}
	return claims.TenantID, claims.UserID, nil
}

// Compile-time assertion that BackofficeHandler implements BackofficeServiceServer.
var _ BackofficeServiceServer = (*BackofficeHandler)(nil)

// BackofficeHandler implements the gRPC BackofficeServiceServer interface.
type BackofficeHandler struct {
	UnimplementedBackofficeServiceServer
	registerClient  *usecase.RegisterClientUseCase
	activateClient  *usecase.ActivateClientUseCase
	submitApp       *usecase.SubmitLoanApplicationUseCase
	reviewApp       *usecase.ReviewLoanApplicationUseCase
	disburseLoan    *usecase.DisburseLoanUseCase
	previewSchedule *usecase.PreviewScheduleUseCase
	getLoan         *usecase.GetLoanUseCase
	recordRepayment *usecase.RecordRepaymentUseCase
	settleEarly     *usecase.SettleEarlyUseCase
	writeOffLoan    *usecase.WriteOffLoanUseCase
	openSavings     *usecase.OpenSavingsAccountUseCase
	depositSavings  *usecase.DepositSavingsUseCase
	withdrawSavings *usecase.WithdrawSavingsUseCase
	accrueInterest  *usecase.AccrueSavingsInterestUseCase
}

// Usecases bundles the use-case dependencies of the handler.
type Usecases struct {
	RegisterClient  *usecase.RegisterClientUseCase
	ActivateClient  *usecase.ActivateClientUseCase
	SubmitApp       *usecase.SubmitLoanApplicationUseCase
	ReviewApp       *usecase.ReviewLoanApplicationUseCase
	DisburseLoan    *usecase.DisburseLoanUseCase
	PreviewSchedule *usecase.PreviewScheduleUseCase
	GetLoan         *usecase.GetLoanUseCase
	RecordRepayment *usecase.RecordRepaymentUseCase
	SettleEarly     *usecase.SettleEarlyUseCase
	WriteOffLoan    *usecase.WriteOffLoanUseCase
	OpenSavings     *usecase.OpenSavingsAccountUseCase
	DepositSavings  *usecase.DepositSavingsUseCase
	WithdrawSavings *usecase.WithdrawSavingsUseCase
	AccrueInterest  *usecase.AccrueSavingsInterestUseCase
}

// NewBackofficeHandler creates a new handler with all use-case dependencies.
func NewBackofficeHandler(uc Usecases) *BackofficeHandler {
	return &BackofficeHandler{
		registerClient:  uc.RegisterClient,
		activateClient:  uc.ActivateClient,
		submitApp:       uc.SubmitApp,
		reviewApp:       uc.ReviewApp,
		disburseLoan:    uc.DisburseLoan,
		previewSchedule: uc.PreviewSchedule,
		getLoan:         uc.GetLoan,
		recordRepayment: uc.RecordRepayment,
		settleEarly:     uc.SettleEarly,
		writeOffLoan:    uc.WriteOffLoan,
		openSavings:     uc.OpenSavings,
		depositSavings:  uc.DepositSavings,
		withdrawSavings: uc.WithdrawSavings,
		accrueInterest:  uc.AccrueInterest,
	}
}

// Proto-aligned request/response message types.

type ClientMsg struct {
	ID          string
	FullName    string
	PhoneNumber string
	NationalID  string
	BranchID    string
	Status      string
	CreatedAt   *timestamppb.Timestamp
}

type RegisterClientRequest struct {
	FullName    string
	PhoneNumber string
	NationalID  string
	BranchID    string
}

type RegisterClientResponse struct {
	Client *ClientMsg
}

type ActivateClientRequest struct {
	ClientID string
}

type ActivateClientResponse struct {
	Client *ClientMsg
}

type LoanApplicationMsg struct {
	ID              string
	ClientID        string
	ProductID       string
	RequestedAmount string
	Currency        string
	TermLength      int32
	Installments    int32
	Status          string
	CreditScore     int32
	DecisionReason  string
}

type SubmitLoanApplicationRequest struct {
	ClientID        string
	ProductID       string
	RequestedAmount string
	Currency        string
	TermLength      int32
	Installments    int32
	Frequency       string
	Method          string
	Purpose         string
}

type SubmitLoanApplicationResponse struct {
	Application *LoanApplicationMsg
}

type ReviewLoanApplicationRequest struct {
	ApplicationID string
}

type ReviewLoanApplicationResponse struct {
	Application *LoanApplicationMsg
}

type InstallmentMsg struct {
	Sequence         int32
	DueDate          *timestamppb.Timestamp
	Principal        string
	Interest         string
	Fee              string
	TotalDue         string
	OutstandingAfter string
	Status           string
}

type LoanMsg struct {
	ID                     string
	ClientID               string
	ProductID              string
	Principal              string
	Currency               string
	Status                 string
	Outstanding            string
	OverpaidAmount         string
	InArrears              bool
	DaysInArrears          int32
	TimelyRepaymentPercent int32
	Schedule               []*InstallmentMsg
}

type DisburseLoanRequest struct {
	ApplicationID      string
	FirstRepaymentDate *timestamppb.Timestamp
}

type DisburseLoanResponse struct {
	Loan *LoanMsg
}

type PreviewScheduleRequest struct {
	Principal          string
	AnnualRatePercent  string
	TermLength         int32
	Installments       int32
	Frequency          string
	Method             string
	FirstRepaymentDate *timestamppb.Timestamp
	OneOffFee          string
	RecurringFee       string
}

type PreviewScheduleResponse struct {
	Installments  []*InstallmentMsg
	TotalPayable  string
	TotalInterest string
	TotalFees     string
}

type GetLoanRequest struct {
	ID string
}

type GetLoanResponse struct {
	Loan *LoanMsg
}

type RepaymentMsg struct {
	LoanID               string
	AmountPaid           string
	PrincipalApplied     string
	InterestApplied      string
	FeeApplied           string
	PenaltyApplied       string
	Outstanding          string
	LoanStatus           string
	OverpaidAmount       string
	TransferredToSavings string
}

type RecordRepaymentRequest struct {
	LoanID    string
	Amount    string
	Method    string
	Reference string
}

type RecordRepaymentResponse struct {
	Receipt *RepaymentMsg
}

type SettleLoanEarlyRequest struct {
	LoanID    string
	Method    string
	Reference string
}

type SettleLoanEarlyResponse struct {
	Receipt *RepaymentMsg
}

type WriteOffLoanRequest struct {
	LoanID            string
	Reason            string
	ConfirmationToken string
}

type WriteOffLoanResponse struct {
	Loan *LoanMsg
}

type SavingsAccountMsg struct {
	ID       string
	ClientID string
	Currency string
	Balance  string
	Status   string
}

type OpenSavingsAccountRequest struct {
	ClientID string
	Currency string
}

type OpenSavingsAccountResponse struct {
	Account *SavingsAccountMsg
}

type DepositSavingsRequest struct {
	AccountID string
	Amount    string
	Reference string
}

type DepositSavingsResponse struct {
	Account *SavingsAccountMsg
}

type WithdrawSavingsRequest struct {
	AccountID string
	Amount    string
	Reference string
}

type WithdrawSavingsResponse struct {
	Account *SavingsAccountMsg
}

type AccrueSavingsInterestRequest struct {
	AccountID         string
	AnnualRatePercent string
}

type AccrueSavingsInterestResponse struct {
	Account *SavingsAccountMsg
}

// RegisterClient processes client registration requests.
func (h *BackofficeHandler) RegisterClient(ctx context.Context, req *RegisterClientRequest) (*RegisterClientResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleLoanOfficer, auth.RoleAPIClient); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	tenantID, _, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	result, err := h.registerClient.Execute(ctx, dto.RegisterClientRequest{
		TenantID:    tenantID,
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		NationalID:  req.NationalID,
		BranchID:    req.BranchID,
	})
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "register client: %v", err)
	}

	return &RegisterClientResponse{Client: toClientMsg(result)}, nil
}

// ActivateClient marks a client's KYC checks as complete.
func (h *BackofficeHandler) ActivateClient(ctx context.Context, req *ActivateClientRequest) (*ActivateClientResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleLoanOfficer); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	tenantID, userID, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	result, err := h.activateClient.Execute(ctx, dto.ActivateClientRequest{
		TenantID:  tenantID,
		ClientID:  req.ClientID,
		OfficerID: userID,
	})
	if err != nil {
		return nil, status.Errorf(codes.FailedPrecondition, "activate client: %v", err)
	}

	return &ActivateClientResponse{Client: toClientMsg(result)}, nil
}

// SubmitLoanApplication processes a new loan application.
func (h *BackofficeHandler) SubmitLoanApplication(ctx context.Context, req *SubmitLoanApplicationRequest) (*SubmitLoanApplicationResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleLoanOfficer, auth.RoleAPIClient); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	tenantID, _, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(req.RequestedAmount)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid requested_amount: %v", err)
	}

	result, err := h.submitApp.Execute(ctx, dto.SubmitApplicationRequest{
		TenantID:        tenantID,
		ClientID:        req.ClientID,
		ProductID:       req.ProductID,
		RequestedAmount: amount,
		Currency:        req.Currency,
		TermLength:      int(req.TermLength),
		Installments:    int(req.Installments),
		Frequency:       req.Frequency,
		Method:          req.Method,
		Purpose:         req.Purpose,
	})
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "submit application: %v", err)
	}

	return &SubmitLoanApplicationResponse{Application: toApplicationMsg(result)}, nil
}

// ReviewLoanApplication runs underwriting and decides the application.
func (h *BackofficeHandler) ReviewLoanApplication(ctx context.Context, req *ReviewLoanApplicationRequest) (*ReviewLoanApplicationResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleLoanOfficer); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	tenantID, userID, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	result, err := h.reviewApp.Execute(ctx, dto.ReviewApplicationRequest{
		TenantID:      tenantID,
		ApplicationID: req.ApplicationID,
		OfficerID:     userID,
	})
	if err != nil {
		return nil, status.Errorf(codes.FailedPrecondition, "review application: %v", err)
	}

	return &ReviewLoanApplicationResponse{Application: toApplicationMsg(result)}, nil
}

// DisburseLoan converts an approved application into an active loan.
func (h *BackofficeHandler) DisburseLoan(ctx context.Context, req *DisburseLoanRequest) (*DisburseLoanResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleLoanOfficer); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	tenantID, _, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var firstRepayment time.Time
	if req.FirstRepaymentDate != nil {
		firstRepayment = req.FirstRepaymentDate.AsTime()
	}

	result, err := h.disburseLoan.Execute(ctx, dto.DisburseLoanRequest{
		TenantID:           tenantID,
		ApplicationID:      req.ApplicationID,
		FirstRepaymentDate: firstRepayment,
	})
	if err != nil {
		return nil, status.Errorf(codes.FailedPrecondition, "disburse loan: %v", err)
	}

	return &DisburseLoanResponse{Loan: toLoanMsg(result)}, nil
}

// PreviewSchedule generates a repayment schedule without creating a loan.
func (h *BackofficeHandler) PreviewSchedule(ctx context.Context, req *PreviewScheduleRequest) (*PreviewScheduleResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleLoanOfficer, auth.RoleTeller, auth.RoleAuditor, auth.RoleAPIClient); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	tenantID, _, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	principal, err := decimal.NewFromString(req.Principal)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid principal: %v", err)
	}
	rate, err := decimal.NewFromString(req.AnnualRatePercent)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid annual_rate_percent: %v", err)
	}
	oneOffFee, err := optionalDecimal(req.OneOffFee)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid one_off_fee: %v", err)
	}
	recurringFee, err := optionalDecimal(req.RecurringFee)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid recurring_fee: %v", err)
	}

	var firstRepayment time.Time
	if req.FirstRepaymentDate != nil {
		firstRepayment = req.FirstRepaymentDate.AsTime()
	}

	result, err := h.previewSchedule.Execute(ctx, dto.PreviewScheduleRequest{
		TenantID:           tenantID,
		Principal:          principal,
		AnnualRatePercent:  rate,
		TermLength:         int(req.TermLength),
		Installments:       int(req.Installments),
		Frequency:          req.Frequency,
		Method:             req.Method,
		FirstRepaymentDate: firstRepayment,
		OneOffFee:          oneOffFee,
		RecurringFee:       recurringFee,
	})
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "preview schedule: %v", err)
	}

	return &PreviewScheduleResponse{
		Installments:  toInstallmentMsgs(result.Installments),
		TotalPayable:  result.TotalPayable,
		TotalInterest: result.TotalInterest,
		TotalFees:     result.TotalFees,
	}, nil
}

// GetLoan retrieves a loan with its schedule and derived metrics.
func (h *BackofficeHandler) GetLoan(ctx context.Context, req *GetLoanRequest) (*GetLoanResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleLoanOfficer, auth.RoleTeller, auth.RoleAuditor, auth.RoleAPIClient); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	tenantID, _, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	result, err := h.getLoan.Execute(ctx, dto.GetLoanRequest{
		TenantID: tenantID,
		LoanID:   req.ID,
	})
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "loan not found: %v", err)
	}

	return &GetLoanResponse{Loan: toLoanMsg(result)}, nil
}

// RecordRepayment applies a payment to a loan.
func (h *BackofficeHandler) RecordRepayment(ctx context.Context, req *RecordRepaymentRequest) (*RecordRepaymentResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleLoanOfficer, auth.RoleTeller, auth.RoleAPIClient); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	tenantID, _, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid amount: %v", err)
	}

	result, err := h.recordRepayment.Execute(ctx, dto.RecordRepaymentRequest{
		TenantID:  tenantID,
		LoanID:    req.LoanID,
		Amount:    amount,
		Method:    req.Method,
		Reference: req.Reference,
	})
	if err != nil {
		return nil, status.Errorf(codes.FailedPrecondition, "record repayment: %v", err)
	}

	return &RecordRepaymentResponse{Receipt: toRepaymentMsg(result)}, nil
}

// SettleLoanEarly pays a loan off ahead of schedule.
func (h *BackofficeHandler) SettleLoanEarly(ctx context.Context, req *SettleLoanEarlyRequest) (*SettleLoanEarlyResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleLoanOfficer); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	tenantID, _, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	result, err := h.settleEarly.Execute(ctx, dto.SettleEarlyRequest{
		TenantID:  tenantID,
		LoanID:    req.LoanID,
		Method:    req.Method,
		Reference: req.Reference,
	})
	if err != nil {
		return nil, status.Errorf(codes.FailedPrecondition, "settle loan early: %v", err)
	}

	return &SettleLoanEarlyResponse{Receipt: toRepaymentMsg(result)}, nil
}

// WriteOffLoan cancels a loan's remaining balance.
func (h *BackofficeHandler) WriteOffLoan(ctx context.Context, req *WriteOffLoanRequest) (*WriteOffLoanResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	tenantID, _, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	result, err := h.writeOffLoan.Execute(ctx, dto.WriteOffLoanRequest{
		TenantID:          tenantID,
		LoanID:            req.LoanID,
		Reason:            req.Reason,
		ConfirmationToken: req.ConfirmationToken,
	})
	if err != nil {
		return nil, status.Errorf(codes.FailedPrecondition, "write off loan: %v", err)
	}

	return &WriteOffLoanResponse{Loan: toLoanMsg(result)}, nil
}

// OpenSavingsAccount opens a savings account for a client.
func (h *BackofficeHandler) OpenSavingsAccount(ctx context.Context, req *OpenSavingsAccountRequest) (*OpenSavingsAccountResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleLoanOfficer, auth.RoleTeller); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	tenantID, _, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	result, err := h.openSavings.Execute(ctx, dto.OpenSavingsAccountRequest{
		TenantID: tenantID,
		ClientID: req.ClientID,
		Currency: req.Currency,
	})
	if err != nil {
		return nil, status.Errorf(codes.FailedPrecondition, "open savings account: %v", err)
	}

	return &OpenSavingsAccountResponse{Account: toSavingsMsg(result)}, nil
}

// DepositSavings credits a savings account.
func (h *BackofficeHandler) DepositSavings(ctx context.Context, req *DepositSavingsRequest) (*DepositSavingsResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleLoanOfficer, auth.RoleTeller); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	tenantID, _, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid amount: %v", err)
	}

	result, err := h.depositSavings.Execute(ctx, dto.SavingsTransactionRequest{
		TenantID:  tenantID,
		AccountID: req.AccountID,
		Amount:    amount,
		Reference: req.Reference,
	})
	if err != nil {
		return nil, status.Errorf(codes.FailedPrecondition, "deposit savings: %v", err)
	}

	return &DepositSavingsResponse{Account: toSavingsMsg(result)}, nil
}

// WithdrawSavings debits a savings account.
func (h *BackofficeHandler) WithdrawSavings(ctx context.Context, req *WithdrawSavingsRequest) (*WithdrawSavingsResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleLoanOfficer, auth.RoleTeller); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	tenantID, _, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid amount: %v", err)
	}

	result, err := h.withdrawSavings.Execute(ctx, dto.SavingsTransactionRequest{
		TenantID:  tenantID,
		AccountID: req.AccountID,
		Amount:    amount,
		Reference: req.Reference,
	})
	if err != nil {
		return nil, status.Errorf(codes.FailedPrecondition, "withdraw savings: %v", err)
	}

	return &WithdrawSavingsResponse{Account: toSavingsMsg(result)}, nil
}

// AccrueSavingsInterest credits daily interest to a savings account.
func (h *BackofficeHandler) AccrueSavingsInterest(ctx context.Context, req *AccrueSavingsInterestRequest) (*AccrueSavingsInterestResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	tenantID, _, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	rate, err := decimal.NewFromString(req.AnnualRatePercent)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid annual_rate_percent: %v", err)
	}

	result, err := h.accrueInterest.Execute(ctx, dto.AccrueSavingsInterestRequest{
		TenantID:          tenantID,
		AccountID:         req.AccountID,
		AnnualRatePercent: rate,
	})
	if err != nil {
		return nil, status.Errorf(codes.FailedPrecondition, "accrue savings interest: %v", err)
	}

	return &AccrueSavingsInterestResponse{Account: toSavingsMsg(result)}, nil
}

// ---------------------------------------------------------------------------
// DTO to wire-message conversions
// ---------------------------------------------------------------------------

func optionalDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

func toClientMsg(r dto.ClientResponse) *ClientMsg {
	return &ClientMsg{
		ID:          r.ID,
		FullName:    r.FullName,
		PhoneNumber: r.PhoneNumber,
		NationalID:  r.NationalID,
		BranchID:    r.BranchID,
		Status:      r.Status,
		CreatedAt:   timestamppb.New(r.CreatedAt),
	}
}

func toApplicationMsg(r dto.LoanApplicationResponse) *LoanApplicationMsg {
	return &LoanApplicationMsg{
		ID:              r.ID,
		ClientID:        r.ClientID,
		ProductID:       r.ProductID,
		RequestedAmount: r.RequestedAmount.String(),
		Currency:        r.Currency,
		TermLength:      int32(r.TermLength),   //nolint:gosec
		Installments:    int32(r.Installments), //nolint:gosec
		Status:          r.Status,
		CreditScore:     int32(r.CreditScore), //nolint:gosec
		DecisionReason:  r.DecisionReason,
	}
}

func toLoanMsg(r dto.LoanResponse) *LoanMsg {
	return &LoanMsg{
		ID:                     r.ID,
		ClientID:               r.ClientID,
		ProductID:              r.ProductID,
		Principal:              r.Principal.String(),
		Currency:               r.Currency,
		Status:                 r.Status,
		Outstanding:            r.Outstanding.String(),
		OverpaidAmount:         r.OverpaidAmount.String(),
		InArrears:              r.InArrears,
		DaysInArrears:          int32(r.DaysInArrears), //nolint:gosec
		TimelyRepaymentPercent: int32(r.TimelyPercent), //nolint:gosec
		Schedule:               toInstallmentMsgs(r.Schedule),
	}
}

func toInstallmentMsgs(views []dto.InstallmentView) []*InstallmentMsg {
	msgs := make([]*InstallmentMsg, 0, len(views))
	for _, v := range views {
		msgs = append(msgs, &InstallmentMsg{
			Sequence:         int32(v.Sequence), //nolint:gosec
			DueDate:          timestamppb.New(v.DueDate),
			Principal:        v.Principal,
			Interest:         v.Interest,
			Fee:              v.Fee,
			TotalDue:         v.TotalDue,
			OutstandingAfter: v.OutstandingAfter,
			Status:           v.Status,
		})
	}
	return msgs
}

func toRepaymentMsg(r dto.RepaymentResponse) *RepaymentMsg {
	return &RepaymentMsg{
		LoanID:               r.LoanID,
		AmountPaid:           r.AmountPaid.String(),
		PrincipalApplied:     r.PrincipalApplied.String(),
		InterestApplied:      r.InterestApplied.String(),
		FeeApplied:           r.FeeApplied.String(),
		PenaltyApplied:       r.PenaltyApplied.String(),
		Outstanding:          r.Outstanding.String(),
		LoanStatus:           r.LoanStatus,
		OverpaidAmount:       r.OverpaidAmount.String(),
		TransferredToSavings: r.TransferredToSavings.String(),
	}
}

func toSavingsMsg(r dto.SavingsAccountResponse) *SavingsAccountMsg {
	return &SavingsAccountMsg{
		ID:       r.ID,
		ClientID: r.ClientID,
		Currency: r.Currency,
		Balance:  r.Balance.String(),
		Status:   r.Status,
	}
}
