package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/asantefin/asante/internal/application/dto"
	"github.com/asantefin/asante/internal/application/usecase"
	pkgkafka "github.com/asantefin/asante/pkg/kafka"
)

// mobileMoneyPayment is the notification shape pushed by the mobile-money
// gateway when a borrower pays outside a branch.
type mobileMoneyPayment struct {
	TenantID  string `json:"tenant_id"`
	LoanID    string `json:"loan_id"`
	Amount    string `json:"amount"`
	Method    string `json:"method"`
	Reference string `json:"reference"`
}

// PaymentConsumer consumes mobile-money payment notifications from Kafka and
// records them as loan repayments. Malformed or unprocessable messages are
// logged and skipped so one bad payload cannot stall the partition.
type PaymentConsumer struct {
	consumer *pkgkafka.Consumer
	logger   *slog.Logger
}

// NewPaymentConsumer builds a consumer for the given topic that feeds the
// repayment use case.
func NewPaymentConsumer(
	cfg pkgkafka.Config,
	topic string,
	recordRepayment *usecase.RecordRepaymentUseCase,
	logger *slog.Logger,
) (*PaymentConsumer, error) {
	handler := func(ctx context.Context, msg pkgkafka.Message) error {
		var payment mobileMoneyPayment
		if err := json.Unmarshal(msg.Value, &payment); err != nil {
			logger.ErrorContext(ctx, "skipping malformed payment notification",
				"error", err,
				"key", string(msg.Key),
			)
			return nil
		}

		amount, err := decimal.NewFromString(payment.Amount)
		if err != nil {
			logger.ErrorContext(ctx, "skipping payment with invalid amount",
				"error", err,
				"loan_id", payment.LoanID,
				"reference", payment.Reference,
			)
			return nil
		}

		receipt, err := recordRepayment.Execute(ctx, dto.RecordRepaymentRequest{
			TenantID:  payment.TenantID,
			LoanID:    payment.LoanID,
			Amount:    amount,
			Method:    payment.Method,
			Reference: payment.Reference,
		})
		if err != nil {
			return fmt.Errorf("record mobile money repayment %s: %w", payment.Reference, err)
		}

		logger.InfoContext(ctx, "recorded mobile money repayment",
			"loan_id", receipt.LoanID,
			"amount", amount,
			"loan_status", receipt.LoanStatus,
			"reference", payment.Reference,
		)
		return nil
	}

	consumer, err := pkgkafka.NewConsumer(cfg, topic, handler, logger)
	if err != nil {
		return nil, fmt.Errorf("build payment consumer: %w", err)
	}

	return &PaymentConsumer{
		consumer: consumer,
		logger:   logger,
	}, nil
}

// Start consumes until the context is canceled.
func (c *PaymentConsumer) Start(ctx context.Context) error {
	return c.consumer.Start(ctx)
}

// Close closes the underlying reader.
func (c *PaymentConsumer) Close() error {
	return c.consumer.Close()
}
