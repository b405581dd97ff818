package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/asantefin/asante/internal/domain/model"
	"github.com/asantefin/asante/internal/domain/valueobject"
	"github.com/asantefin/asante/pkg/money"
	"github.com/asantefin/asante/pkg/testutil"
)

// --- Shared fixtures ---

func activeClient(t *testing.T) model.Client {
	t.Helper()
	c, err := model.NewClient(testutil.TestTenantID, "Amina Odhiambo", "+254700111222", "ID-998877", "branch-01", testutil.TestDate())
	require.NoError(t, err)
	c, err = c.Activate(testutil.TestOfficerID, testutil.TestDate())
	require.NoError(t, err)
	return c.ClearEvents()
}

func submittedApplication(t *testing.T) model.LoanApplication {
	t.Helper()
	app, err := model.NewLoanApplication(
		testutil.TestTenantID, testutil.TestClientID, "prod-1",
		decimal.NewFromInt(100_000), money.KES,
		12, 12,
		valueobject.FrequencyMonthly, valueobject.InterestMethodFlat,
		"working capital", testutil.TestDate(),
	)
	require.NoError(t, err)
	return app.ClearEvents()
}

func approvedApplication(t *testing.T) model.LoanApplication {
	t.Helper()
	app := submittedApplication(t)
	app, err := app.StartReview(testutil.TestDate())
	require.NoError(t, err)
	app, err = app.Approve(testutil.TestOfficerID, "good credit tier", 680, testutil.TestDate())
	require.NoError(t, err)
	return app.ClearEvents()
}

func activeLoan(t *testing.T) model.Loan {
	t.Helper()
	terms := model.LoanTerms{
		Principal:         decimal.NewFromInt(100_000),
		AnnualRatePercent: decimal.NewFromInt(12),
		TermLength:        12,
		Installments:      12,
		Frequency:         valueobject.FrequencyMonthly,
		Method:            valueobject.InterestMethodFlat,
	}
	loan, err := model.NewLoan(
		testutil.TestTenantID, testutil.TestClientID, "app-1", "prod-1",
		terms, money.KES, nil, valueobject.StrategyDefault, testutil.TestDate(),
	)
	require.NoError(t, err)
	return loan.ClearEvents()
}

func activeSavingsAccount(t *testing.T) model.SavingsAccount {
	t.Helper()
	acc, err := model.NewSavingsAccount(testutil.TestTenantID, testutil.TestClientID, money.KES, testutil.TestDate())
	require.NoError(t, err)
	return acc.ClearEvents()
}

func testProduct() model.ProductConfig {
	return model.ProductConfig{
		ProductID:         "prod-1",
		TenantID:          testutil.TestTenantID,
		Name:              "Biashara Loan",
		AnnualRatePercent: decimal.NewFromInt(12),
		Method:            valueobject.InterestMethodFlat,
		Strategy:          valueobject.StrategyDefault,
		MinPrincipal:      decimal.NewFromInt(1_000),
		MaxPrincipal:      decimal.NewFromInt(1_000_000),
	}
}
