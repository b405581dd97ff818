package grpc

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/asantefin/asante/internal/application/usecase"
	"github.com/asantefin/asante/internal/domain/event"
	"github.com/asantefin/asante/internal/domain/model"
	"github.com/asantefin/asante/internal/domain/service"
	"github.com/asantefin/asante/pkg/auth"
)

// --- Mock implementations ---

type mockClientRepo struct {
	saveErr      error
	findByIDFunc func(ctx context.Context, tenantID, id string) (model.Client, error)
}

func (m *mockClientRepo) Save(_ context.Context, _ model.Client) error {
	return m.saveErr
}

func (m *mockClientRepo) FindByID(ctx context.Context, tenantID, id string) (model.Client, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, tenantID, id)
	}
	return model.Client{}, fmt.Errorf("client not found")
}

func (m *mockClientRepo) FindByNationalID(_ context.Context, _, _ string) (model.Client, error) {
	return model.Client{}, fmt.Errorf("client not found")
}

type mockLoanRepo struct {
	saveErr      error
	findByIDFunc func(ctx context.Context, tenantID, id string) (model.Loan, error)
}

func (m *mockLoanRepo) Save(_ context.Context, _ model.Loan) error {
	return m.saveErr
}

func (m *mockLoanRepo) FindByID(ctx context.Context, tenantID, id string) (model.Loan, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, tenantID, id)
	}
	return model.Loan{}, fmt.Errorf("loan not found")
}

func (m *mockLoanRepo) FindByApplicationID(_ context.Context, _, _ string) (model.Loan, error) {
	return model.Loan{}, fmt.Errorf("loan not found")
}

func (m *mockLoanRepo) FindByClientID(_ context.Context, _, _ string) ([]model.Loan, error) {
	return nil, nil
}

type mockAppRepo struct{}

func (m *mockAppRepo) Save(_ context.Context, _ model.LoanApplication) error {
	return nil
}

func (m *mockAppRepo) FindByID(_ context.Context, _, _ string) (model.LoanApplication, error) {
	return model.LoanApplication{}, fmt.Errorf("application not found")
}

func (m *mockAppRepo) FindByClientID(_ context.Context, _, _ string) ([]model.LoanApplication, error) {
	return nil, nil
}

type mockSavingsRepo struct{}

func (m *mockSavingsRepo) Save(_ context.Context, _ model.SavingsAccount) error {
	return nil
}

func (m *mockSavingsRepo) FindByID(_ context.Context, _, _ string) (model.SavingsAccount, error) {
	return model.SavingsAccount{}, fmt.Errorf("savings account not found")
}

func (m *mockSavingsRepo) FindByClientID(_ context.Context, _, _ string) ([]model.SavingsAccount, error) {
	return nil, nil
}

type mockProductRepo struct{}

func (m *mockProductRepo) FindByID(_ context.Context, _, _ string) (model.ProductConfig, error) {
	return model.ProductConfig{}, fmt.Errorf("product not found")
}

type mockPublisher struct {
	publishErr error
}

func (m *mockPublisher) Publish(_ context.Context, _ ...event.DomainEvent) error {
	return m.publishErr
}

type stubFeeSchedule struct{}

func (s *stubFeeSchedule) EarlySettlementFee(_ context.Context, _, _ string, _ decimal.Decimal) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

type mockCreditBureau struct{}

func (m *mockCreditBureau) GetCreditScore(_ context.Context, _ string) (int, error) {
	return 700, nil
}

// --- Helpers ---

func contextWithRoles(roles ...string) context.Context {
	claims := &auth.Claims{
		UserID:   uuid.NewString(),
		TenantID: uuid.NewString(),
		Roles:    roles,
	}
	return auth.ContextWithClaims(context.Background(), claims)
}

func buildTestHandler(clientRepo *mockClientRepo, loanRepo *mockLoanRepo) *BackofficeHandler {
	appRepo := &mockAppRepo{}
	savingsRepo := &mockSavingsRepo{}
	productRepo := &mockProductRepo{}
	publisher := &mockPublisher{}
	bureau := &mockCreditBureau{}
	underwriting := service.NewUnderwritingEngine()
	metrics := service.NewPortfolioMetrics()

	return NewBackofficeHandler(Usecases{
		RegisterClient:  usecase.NewRegisterClientUseCase(clientRepo, publisher),
		ActivateClient:  usecase.NewActivateClientUseCase(clientRepo, publisher),
		SubmitApp:       usecase.NewSubmitLoanApplicationUseCase(clientRepo, appRepo, productRepo, publisher),
		ReviewApp:       usecase.NewReviewLoanApplicationUseCase(appRepo, clientRepo, bureau, underwriting, publisher),
		DisburseLoan:    usecase.NewDisburseLoanUseCase(appRepo, loanRepo, productRepo, publisher),
		PreviewSchedule: usecase.NewPreviewScheduleUseCase(),
		GetLoan:         usecase.NewGetLoanUseCase(loanRepo, metrics),
		RecordRepayment: usecase.NewRecordRepaymentUseCase(loanRepo, savingsRepo, publisher),
		SettleEarly:     usecase.NewSettleEarlyUseCase(loanRepo, &stubFeeSchedule{}, publisher),
		WriteOffLoan:    usecase.NewWriteOffLoanUseCase(loanRepo, publisher),
		OpenSavings:     usecase.NewOpenSavingsAccountUseCase(clientRepo, savingsRepo, publisher),
		DepositSavings:  usecase.NewDepositSavingsUseCase(savingsRepo, publisher),
		WithdrawSavings: usecase.NewWithdrawSavingsUseCase(savingsRepo, publisher),
		AccrueInterest:  usecase.NewAccrueSavingsInterestUseCase(savingsRepo, publisher),
	})
}

// requireGRPCCode asserts that an error is a gRPC status error with the given code.
func requireGRPCCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok, "expected gRPC status error, got %T: %v", err, err)
	assert.Equal(t, code, st.Code(), "expected gRPC code %s, got %s: %s", code, st.Code(), st.Message())
}

// --- Tests ---

func TestRegisterClient(t *testing.T) {
	t.Run("missing claims returns Unauthenticated", func(t *testing.T) {
		h := buildTestHandler(&mockClientRepo{}, &mockLoanRepo{})
		_, err := h.RegisterClient(context.Background(), &RegisterClientRequest{})
		requireGRPCCode(t, err, codes.Unauthenticated)
	})

	t.Run("teller role returns PermissionDenied", func(t *testing.T) {
		h := buildTestHandler(&mockClientRepo{}, &mockLoanRepo{})
		_, err := h.RegisterClient(contextWithRoles(auth.RoleTeller), &RegisterClientRequest{})
		requireGRPCCode(t, err, codes.PermissionDenied)
	})

	t.Run("nil request returns InvalidArgument", func(t *testing.T) {
		h := buildTestHandler(&mockClientRepo{}, &mockLoanRepo{})
		_, err := h.RegisterClient(contextWithRoles(auth.RoleLoanOfficer), nil)
		requireGRPCCode(t, err, codes.InvalidArgument)
	})

	t.Run("missing full name returns InvalidArgument", func(t *testing.T) {
		h := buildTestHandler(&mockClientRepo{}, &mockLoanRepo{})
		_, err := h.RegisterClient(contextWithRoles(auth.RoleLoanOfficer), &RegisterClientRequest{
			PhoneNumber: "+254700000001",
			NationalID:  "12345678",
		})
		requireGRPCCode(t, err, codes.InvalidArgument)
	})

	t.Run("happy path registers a client", func(t *testing.T) {
		h := buildTestHandler(&mockClientRepo{}, &mockLoanRepo{})
		resp, err := h.RegisterClient(contextWithRoles(auth.RoleLoanOfficer), &RegisterClientRequest{
			FullName:    "Amina Odhiambo",
			PhoneNumber: "+254700000001",
			NationalID:  "12345678",
			BranchID:    "branch-nakuru",
		})
		require.NoError(t, err)
		require.NotNil(t, resp.Client)
		assert.NotEmpty(t, resp.Client.ID)
		assert.Equal(t, "PENDING_KYC", resp.Client.Status)
		assert.NotNil(t, resp.Client.CreatedAt)
	})
}

func TestPreviewSchedule(t *testing.T) {
	validRequest := func() *PreviewScheduleRequest {
		return &PreviewScheduleRequest{
			Principal:         "100000",
			AnnualRatePercent: "12",
			TermLength:        12,
			Installments:      12,
			Frequency:         "monthly",
			Method:            "flat",
		}
	}

	t.Run("any authenticated role may preview", func(t *testing.T) {
		h := buildTestHandler(&mockClientRepo{}, &mockLoanRepo{})
		resp, err := h.PreviewSchedule(contextWithRoles(auth.RoleAuditor), validRequest())
		require.NoError(t, err)
		require.Len(t, resp.Installments, 12)
		assert.Equal(t, "244000.00", resp.TotalPayable)
		assert.Equal(t, "144000.00", resp.TotalInterest)
	})

	t.Run("malformed principal returns InvalidArgument", func(t *testing.T) {
		h := buildTestHandler(&mockClientRepo{}, &mockLoanRepo{})
		req := validRequest()
		req.Principal = "not-a-number"
		_, err := h.PreviewSchedule(contextWithRoles(auth.RoleLoanOfficer), req)
		requireGRPCCode(t, err, codes.InvalidArgument)
		assert.Contains(t, err.Error(), "invalid principal")
	})

	t.Run("unknown frequency returns InvalidArgument", func(t *testing.T) {
		h := buildTestHandler(&mockClientRepo{}, &mockLoanRepo{})
		req := validRequest()
		req.Frequency = "hourly"
		_, err := h.PreviewSchedule(contextWithRoles(auth.RoleLoanOfficer), req)
		requireGRPCCode(t, err, codes.InvalidArgument)
	})
}

func TestRecordRepayment(t *testing.T) {
	t.Run("auditor role returns PermissionDenied", func(t *testing.T) {
		h := buildTestHandler(&mockClientRepo{}, &mockLoanRepo{})
		_, err := h.RecordRepayment(contextWithRoles(auth.RoleAuditor), &RecordRepaymentRequest{})
		requireGRPCCode(t, err, codes.PermissionDenied)
	})

	t.Run("malformed amount returns InvalidArgument", func(t *testing.T) {
		h := buildTestHandler(&mockClientRepo{}, &mockLoanRepo{})
		_, err := h.RecordRepayment(contextWithRoles(auth.RoleTeller), &RecordRepaymentRequest{
			LoanID: uuid.NewString(),
			Amount: "ten thousand",
		})
		requireGRPCCode(t, err, codes.InvalidArgument)
		assert.Contains(t, err.Error(), "invalid amount")
	})

	t.Run("unknown loan returns FailedPrecondition", func(t *testing.T) {
		h := buildTestHandler(&mockClientRepo{}, &mockLoanRepo{})
		_, err := h.RecordRepayment(contextWithRoles(auth.RoleTeller), &RecordRepaymentRequest{
			LoanID: uuid.NewString(),
			Amount: "10000",
		})
		requireGRPCCode(t, err, codes.FailedPrecondition)
	})
}

func TestGetLoan(t *testing.T) {
	t.Run("unknown loan returns NotFound", func(t *testing.T) {
		h := buildTestHandler(&mockClientRepo{}, &mockLoanRepo{})
		_, err := h.GetLoan(contextWithRoles(auth.RoleAuditor), &GetLoanRequest{ID: uuid.NewString()})
		requireGRPCCode(t, err, codes.NotFound)
	})
}

func TestWriteOffLoan(t *testing.T) {
	t.Run("loan officer returns PermissionDenied", func(t *testing.T) {
		h := buildTestHandler(&mockClientRepo{}, &mockLoanRepo{})
		_, err := h.WriteOffLoan(contextWithRoles(auth.RoleLoanOfficer), &WriteOffLoanRequest{})
		requireGRPCCode(t, err, codes.PermissionDenied)
	})
}
