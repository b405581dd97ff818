package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/asantefin/asante/internal/domain/model"
	"github.com/asantefin/asante/internal/domain/valueobject"
	"github.com/asantefin/asante/pkg/money"
	pkgpostgres "github.com/asantefin/asante/pkg/postgres"
)

// LoanRepo implements port.LoanRepository. A loan row owns two child tables:
// loan_installments for the repayment schedule and loan_payments for the
// payment history. Installments are upserted on every save because the paid
// components and status change as payments land; payments are append-only.
type LoanRepo struct {
	pool *pgxpool.Pool
}

// NewLoanRepo creates a new PostgreSQL-backed loan repository.
func NewLoanRepo(pool *pgxpool.Pool) *LoanRepo {
	return &LoanRepo{pool: pool}
}

// Save persists a loan, its schedule and its payments in one transaction.
func (r *LoanRepo) Save(ctx context.Context, loan model.Loan) error {
	return pkgpostgres.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		return r.save(ctx, tx, loan)
	})
}

func (r *LoanRepo) save(ctx context.Context, tx pgx.Tx, loan model.Loan) error {
	terms := loan.Terms()
	loanQuery := `
		INSERT INTO loans (
			id, tenant_id, client_id, application_id, product_id,
			principal, annual_rate_percent, term_length, installments,
			frequency, interest_method, first_repayment_date,
			currency, allocation_strategy, status,
			outstanding, overpaid_amount, disbursed_at,
			version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21)
		ON CONFLICT (id) DO UPDATE SET
			status          = EXCLUDED.status,
			outstanding     = EXCLUDED.outstanding,
			overpaid_amount = EXCLUDED.overpaid_amount,
			version         = loans.version + 1,
			updated_at      = EXCLUDED.updated_at
		WHERE loans.version = $19
	`
	schedule := loan.Schedule()
	firstDue := loan.DisbursedAt()
	if len(schedule) > 0 {
		firstDue = schedule[0].DueDate
	}
	tag, err := tx.Exec(ctx, loanQuery,
		loan.ID(), loan.TenantID(), loan.ClientID(), loan.ApplicationID(), loan.ProductID(),
		terms.Principal, terms.AnnualRatePercent, terms.TermLength, terms.Installments,
		terms.Frequency.String(), terms.Method.String(), firstDue,
		loan.Currency().Code(), loan.Strategy().String(), loan.Status().String(),
		loan.Outstanding(), loan.OverpaidAmount(), loan.DisbursedAt(),
		loan.Version(), loan.CreatedAt(), loan.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save loan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.New("optimistic locking conflict on loan")
	}

	installmentQuery := `
		INSERT INTO loan_installments (
			loan_id, sequence, due_date, principal, interest, fee,
			outstanding_after, principal_paid, interest_paid, fee_paid, status
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		ON CONFLICT (loan_id, sequence) DO UPDATE SET
			fee            = EXCLUDED.fee,
			principal_paid = EXCLUDED.principal_paid,
			interest_paid  = EXCLUDED.interest_paid,
			fee_paid       = EXCLUDED.fee_paid,
			status         = EXCLUDED.status
	`
	for _, inst := range schedule {
		_, err := tx.Exec(ctx, installmentQuery,
			loan.ID(), inst.Sequence, inst.DueDate, inst.Principal, inst.Interest, inst.Fee,
			inst.OutstandingAfter, inst.PrincipalPaid, inst.InterestPaid, inst.FeePaid,
			inst.Status.String(),
		)
		if err != nil {
			return fmt.Errorf("save installment %d: %w", inst.Sequence, err)
		}
	}

	paymentQuery := `
		INSERT INTO loan_payments (loan_id, seq, amount, paid_at, method, reference)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (loan_id, seq) DO NOTHING
	`
	for i, p := range loan.Payments() {
		_, err := tx.Exec(ctx, paymentQuery,
			loan.ID(), i+1, p.Amount, p.Date, p.Method, p.Reference,
		)
		if err != nil {
			return fmt.Errorf("save payment %d: %w", i+1, err)
		}
	}

	return nil
}

// FindByID retrieves a loan with its schedule and payment history.
func (r *LoanRepo) FindByID(ctx context.Context, tenantID, id string) (model.Loan, error) {
	query := loanSelect + ` WHERE tenant_id = $1 AND id = $2`
	return r.findOne(ctx, query, tenantID, id)
}

// FindByApplicationID retrieves a loan by its originating application.
func (r *LoanRepo) FindByApplicationID(ctx context.Context, tenantID, applicationID string) (model.Loan, error) {
	query := loanSelect + ` WHERE tenant_id = $1 AND application_id = $2`
	return r.findOne(ctx, query, tenantID, applicationID)
}

// FindByClientID retrieves all loans for a client, newest first.
func (r *LoanRepo) FindByClientID(ctx context.Context, tenantID, clientID string) ([]model.Loan, error) {
	query := loanSelect + ` WHERE tenant_id = $1 AND client_id = $2 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, tenantID, clientID)
	if err != nil {
		return nil, fmt.Errorf("query loans: %w", err)
	}
	defer rows.Close()

	var bare []loanRow
	for rows.Next() {
		lr, err := scanLoanRow(rows)
		if err != nil {
			return nil, err
		}
		bare = append(bare, lr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	loans := make([]model.Loan, 0, len(bare))
	for _, lr := range bare {
		loan, err := r.hydrate(ctx, lr)
		if err != nil {
			return nil, err
		}
		loans = append(loans, loan)
	}
	return loans, nil
}

// ---------------------------------------------------------------------------
// internal helpers
// ---------------------------------------------------------------------------

const loanSelect = `
	SELECT id, tenant_id, client_id, application_id, product_id,
	       principal, annual_rate_percent, term_length, installments,
	       frequency, interest_method, first_repayment_date,
	       currency, allocation_strategy, status,
	       outstanding, overpaid_amount, disbursed_at,
	       version, created_at, updated_at
	FROM loans`

// loanRow holds a scanned loan row before the children are loaded.
type loanRow struct {
	id, tenantID, clientID, applicationID, productID string
	terms                                            model.LoanTerms
	currency                                         money.Currency
	strategy                                         valueobject.AllocationStrategy
	status                                           valueobject.LoanStatus
	outstanding, overpaidAmount                      decimal.Decimal
	disbursedAt                                      time.Time
	version                                          int
	createdAt, updatedAt                             time.Time
}

func (r *LoanRepo) findOne(ctx context.Context, query string, args ...any) (model.Loan, error) {
	lr, err := scanLoanRow(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return model.Loan{}, err
	}
	return r.hydrate(ctx, lr)
}

func (r *LoanRepo) hydrate(ctx context.Context, lr loanRow) (model.Loan, error) {
	schedule, err := r.loadSchedule(ctx, lr.id)
	if err != nil {
		return model.Loan{}, err
	}
	payments, err := r.loadPayments(ctx, lr.id)
	if err != nil {
		return model.Loan{}, err
	}

	return model.ReconstructLoan(
		lr.id, lr.tenantID, lr.clientID, lr.applicationID, lr.productID,
		lr.terms, lr.currency, lr.strategy, lr.status,
		schedule, payments,
		lr.outstanding, lr.overpaidAmount, lr.disbursedAt,
		lr.version, lr.createdAt, lr.updatedAt,
	), nil
}

func scanLoanRow(s scannable) (loanRow, error) {
	var (
		lr                                    loanRow
		currencyCode, frequencyStr, methodStr string
		firstRepaymentDate                    time.Time
		strategyStr, statusStr                string
	)

	err := s.Scan(
		&lr.id, &lr.tenantID, &lr.clientID, &lr.applicationID, &lr.productID,
		&lr.terms.Principal, &lr.terms.AnnualRatePercent, &lr.terms.TermLength, &lr.terms.Installments,
		&frequencyStr, &methodStr, &firstRepaymentDate,
		&currencyCode, &strategyStr, &statusStr,
		&lr.outstanding, &lr.overpaidAmount, &lr.disbursedAt,
		&lr.version, &lr.createdAt, &lr.updatedAt,
	)
	if err != nil {
		return loanRow{}, fmt.Errorf("scan loan: %w", err)
	}

	lr.terms.FirstRepaymentDate = firstRepaymentDate
	if lr.terms.Frequency, err = valueobject.NewRepaymentFrequency(frequencyStr); err != nil {
		return loanRow{}, fmt.Errorf("parse frequency: %w", err)
	}
	if lr.terms.Method, err = valueobject.NewInterestMethod(methodStr); err != nil {
		return loanRow{}, fmt.Errorf("parse interest method: %w", err)
	}
	if lr.currency, err = money.NewCurrency(currencyCode); err != nil {
		return loanRow{}, fmt.Errorf("parse currency: %w", err)
	}
	if lr.strategy, err = valueobject.NewAllocationStrategy(strategyStr); err != nil {
		return loanRow{}, fmt.Errorf("parse allocation strategy: %w", err)
	}
	if lr.status, err = valueobject.NewLoanStatus(statusStr); err != nil {
		return loanRow{}, fmt.Errorf("parse loan status: %w", err)
	}

	return lr, nil
}

func (r *LoanRepo) loadSchedule(ctx context.Context, loanID string) ([]model.ScheduleInstallment, error) {
	query := `
		SELECT sequence, due_date, principal, interest, fee,
		       outstanding_after, principal_paid, interest_paid, fee_paid, status
		FROM loan_installments
		WHERE loan_id = $1
		ORDER BY sequence
	`
	rows, err := r.pool.Query(ctx, query, loanID)
	if err != nil {
		return nil, fmt.Errorf("query installments: %w", err)
	}
	defer rows.Close()

	var schedule []model.ScheduleInstallment
	for rows.Next() {
		var (
			inst      model.ScheduleInstallment
			statusStr string
		)
		err := rows.Scan(
			&inst.Sequence, &inst.DueDate, &inst.Principal, &inst.Interest, &inst.Fee,
			&inst.OutstandingAfter, &inst.PrincipalPaid, &inst.InterestPaid, &inst.FeePaid,
			&statusStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scan installment: %w", err)
		}
		if inst.Status, err = valueobject.NewInstallmentStatus(statusStr); err != nil {
			return nil, fmt.Errorf("parse installment status: %w", err)
		}
		schedule = append(schedule, inst)
	}
	return schedule, rows.Err()
}

func (r *LoanRepo) loadPayments(ctx context.Context, loanID string) ([]model.Payment, error) {
	query := `
		SELECT amount, paid_at, method, reference
		FROM loan_payments
		WHERE loan_id = $1
		ORDER BY seq
	`
	rows, err := r.pool.Query(ctx, query, loanID)
	if err != nil {
		return nil, fmt.Errorf("query payments: %w", err)
	}
	defer rows.Close()

	var payments []model.Payment
	for rows.Next() {
		var p model.Payment
		if err := rows.Scan(&p.Amount, &p.Date, &p.Method, &p.Reference); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
