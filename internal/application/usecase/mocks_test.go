package usecase_test

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/asantefin/asante/internal/domain/event"
	"github.com/asantefin/asante/internal/domain/model"
)

// --- Mock implementations ---

type mockClientRepository struct {
	saveFunc             func(ctx context.Context, c model.Client) error
	findByIDFunc         func(ctx context.Context, tenantID, id string) (model.Client, error)
	findByNationalIDFunc func(ctx context.Context, tenantID, nationalID string) (model.Client, error)
	savedClients         []model.Client
}

func (m *mockClientRepository) Save(ctx context.Context, c model.Client) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, c)
	}
	m.savedClients = append(m.savedClients, c)
	return nil
}

func (m *mockClientRepository) FindByID(ctx context.Context, tenantID, id string) (model.Client, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, tenantID, id)
	}
	return model.Client{}, fmt.Errorf("client not found")
}

func (m *mockClientRepository) FindByNationalID(ctx context.Context, tenantID, nationalID string) (model.Client, error) {
	if m.findByNationalIDFunc != nil {
		return m.findByNationalIDFunc(ctx, tenantID, nationalID)
	}
	return model.Client{}, fmt.Errorf("client not found")
}

type mockLoanApplicationRepository struct {
	saveFunc     func(ctx context.Context, app model.LoanApplication) error
	findByIDFunc func(ctx context.Context, tenantID, id string) (model.LoanApplication, error)
	savedApps    []model.LoanApplication
}

func (m *mockLoanApplicationRepository) Save(ctx context.Context, app model.LoanApplication) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, app)
	}
	m.savedApps = append(m.savedApps, app)
	return nil
}

func (m *mockLoanApplicationRepository) FindByID(ctx context.Context, tenantID, id string) (model.LoanApplication, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, tenantID, id)
	}
	return model.LoanApplication{}, fmt.Errorf("application not found")
}

func (m *mockLoanApplicationRepository) FindByClientID(_ context.Context, _, _ string) ([]model.LoanApplication, error) {
	return nil, nil
}

type mockLoanRepository struct {
	saveFunc     func(ctx context.Context, loan model.Loan) error
	findByIDFunc func(ctx context.Context, tenantID, id string) (model.Loan, error)
	savedLoans   []model.Loan
}

func (m *mockLoanRepository) Save(ctx context.Context, loan model.Loan) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, loan)
	}
	m.savedLoans = append(m.savedLoans, loan)
	return nil
}

func (m *mockLoanRepository) FindByID(ctx context.Context, tenantID, id string) (model.Loan, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, tenantID, id)
	}
	return model.Loan{}, fmt.Errorf("loan not found")
}

func (m *mockLoanRepository) FindByApplicationID(_ context.Context, _, _ string) (model.Loan, error) {
	return model.Loan{}, nil
}

func (m *mockLoanRepository) FindByClientID(_ context.Context, _, _ string) ([]model.Loan, error) {
	return nil, nil
}

type mockSavingsAccountRepository struct {
	saveFunc         func(ctx context.Context, acc model.SavingsAccount) error
	findByIDFunc     func(ctx context.Context, tenantID, id string) (model.SavingsAccount, error)
	findByClientFunc func(ctx context.Context, tenantID, clientID string) ([]model.SavingsAccount, error)
	savedAccounts    []model.SavingsAccount
}

func (m *mockSavingsAccountRepository) Save(ctx context.Context, acc model.SavingsAccount) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, acc)
	}
	m.savedAccounts = append(m.savedAccounts, acc)
	return nil
}

func (m *mockSavingsAccountRepository) FindByID(ctx context.Context, tenantID, id string) (model.SavingsAccount, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, tenantID, id)
	}
	return model.SavingsAccount{}, fmt.Errorf("savings account not found")
}

func (m *mockSavingsAccountRepository) FindByClientID(ctx context.Context, tenantID, clientID string) ([]model.SavingsAccount, error) {
	if m.findByClientFunc != nil {
		return m.findByClientFunc(ctx, tenantID, clientID)
	}
	return nil, nil
}

type mockProductConfigRepository struct {
	findByIDFunc func(ctx context.Context, tenantID, productID string) (model.ProductConfig, error)
}

func (m *mockProductConfigRepository) FindByID(ctx context.Context, tenantID, productID string) (model.ProductConfig, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, tenantID, productID)
	}
	return model.ProductConfig{}, fmt.Errorf("product not found")
}

type mockEventPublisher struct {
	publishFunc     func(ctx context.Context, events ...event.DomainEvent) error
	publishedEvents []event.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...event.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}

type mockCreditBureauClient struct {
	getCreditScoreFunc func(ctx context.Context, nationalID string) (int, error)
}

func (m *mockCreditBureauClient) GetCreditScore(ctx context.Context, nationalID string) (int, error) {
	if m.getCreditScoreFunc != nil {
		return m.getCreditScoreFunc(ctx, nationalID)
	}
	return 720, nil
}

type mockFeeSchedule struct {
	earlySettlementFeeFunc func(ctx context.Context, tenantID, productID string, outstanding decimal.Decimal) (decimal.Decimal, error)
}

func (m *mockFeeSchedule) EarlySettlementFee(ctx context.Context, tenantID, productID string, outstanding decimal.Decimal) (decimal.Decimal, error) {
	if m.earlySettlementFeeFunc != nil {
		return m.earlySettlementFeeFunc(ctx, tenantID, productID, outstanding)
	}
	return decimal.Zero, nil
}
