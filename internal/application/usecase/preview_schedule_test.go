package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asantefin/asante/internal/application/dto"
	"github.com/asantefin/asante/internal/application/usecase"
	"github.com/asantefin/asante/pkg/testutil"
)

func previewRequest() dto.PreviewScheduleRequest {
	return dto.PreviewScheduleRequest{
		TenantID:          testutil.TestTenantID,
		Principal:         decimal.NewFromInt(100_000),
		AnnualRatePercent: decimal.NewFromInt(12),
		TermLength:        12,
		Installments:      12,
		Frequency:         "monthly",
		Method:            "flat",
	}
}

func TestPreviewSchedule_Execute(t *testing.T) {
	t.Run("previews a flat schedule", func(t *testing.T) {
		uc := usecase.NewPreviewScheduleUseCase()
		resp, err := uc.Execute(context.Background(), previewRequest())

		require.NoError(t, err)
		require.Len(t, resp.Installments, 12)
		assert.Equal(t, "244000.00", resp.TotalPayable)
		assert.Equal(t, "144000.00", resp.TotalInterest)
		assert.Equal(t, "0.00", resp.TotalFees)
		assert.Equal(t, "20333.33", resp.Installments[0].TotalDue)
		assert.Equal(t, "0.00", resp.Installments[11].OutstandingAfter)
	})

	t.Run("includes one-off and recurring fees in the totals", func(t *testing.T) {
		req := previewRequest()
		req.OneOffFee = decimal.NewFromInt(1_500)
		req.RecurringFee = decimal.NewFromInt(600)

		uc := usecase.NewPreviewScheduleUseCase()
		resp, err := uc.Execute(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "2100.00", resp.TotalFees)
		assert.Equal(t, "246100.00", resp.TotalPayable)
	})

	t.Run("rejects an unknown frequency", func(t *testing.T) {
		req := previewRequest()
		req.Frequency = "fortnightly"

		uc := usecase.NewPreviewScheduleUseCase()
		_, err := uc.Execute(context.Background(), req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse frequency")
	})

	t.Run("rejects invalid terms", func(t *testing.T) {
		req := previewRequest()
		req.Principal = decimal.Zero

		uc := usecase.NewPreviewScheduleUseCase()
		_, err := uc.Execute(context.Background(), req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "generate schedule")
	})
}
