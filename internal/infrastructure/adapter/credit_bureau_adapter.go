package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Bureau identifies a credit reference bureau provider.
type Bureau string

const (
	BureauMetropol   Bureau = "METROPOL"
	BureauTransUnion Bureau = "TRANSUNION"
	BureauCreditinfo Bureau = "CREDITINFO"
)

// CreditBureauConfig holds configuration for the credit bureau adapter.
type CreditBureauConfig struct {
	// PrimaryBureau is the preferred bureau for credit pulls.
	PrimaryBureau Bureau
	// BaseURL is the base URL for the bureau API.
	BaseURL string
	// APIKey is the authentication credential for the bureau API.
	APIKey string
	// Timeout is the HTTP client timeout per attempt.
	Timeout time.Duration
	// MaxRetries is the maximum number of retry attempts on transient failures.
	MaxRetries int
	// RetryBackoff is the base backoff duration between retries.
	RetryBackoff time.Duration
}

// CreditReport represents a parsed credit report from a bureau.
type CreditReport struct {
	Bureau         Bureau
	NationalID     string
	Score          int
	ReportDate     time.Time
	AccountCount   int
	DefaultCount   int
	PaymentHistory string // "GOOD", "FAIR", "POOR"
}

// creditReportPayload is the bureau API's wire format for a report.
type creditReportPayload struct {
	Score          int    `json:"score"`
	ReportDate     string `json:"report_date"`
	AccountCount   int    `json:"account_count"`
	DefaultCount   int    `json:"default_count"`
	PaymentHistory string `json:"payment_history"`
}

// CreditBureauAdapter pulls credit reports over the bureau's HTTP API. It
// implements port.CreditBureauClient; when no bureau endpoint is configured,
// main wires StubCreditBureauClient instead.
type CreditBureauAdapter struct {
	config CreditBureauConfig
	httpc  *http.Client
}

// NewCreditBureauAdapter creates a new adapter with the given configuration.
// Zero-valued fields fall back to defaults suitable for development.
func NewCreditBureauAdapter(config CreditBureauConfig) *CreditBureauAdapter {
	if config.PrimaryBureau == "" {
		config.PrimaryBureau = BureauMetropol
	}
	if config.Timeout <= 0 {
		config.Timeout = 10 * time.Second
	}
	if config.MaxRetries <= 0 {
		config.MaxRetries = 3
	}
	if config.RetryBackoff <= 0 {
		config.RetryBackoff = 200 * time.Millisecond
	}
	return &CreditBureauAdapter{
		config: config,
		httpc:  &http.Client{Timeout: config.Timeout},
	}
}

// GetCreditScore retrieves a credit score for the given national ID.
// It implements port.CreditBureauClient.
func (a *CreditBureauAdapter) GetCreditScore(ctx context.Context, nationalID string) (int, error) {
	report, err := a.GetFullReport(ctx, nationalID)
	if err != nil {
		return 0, err
	}
	return report.Score, nil
}

// GetFullReport retrieves a complete credit report for the national ID.
// This method is not part of the minimal CreditBureauClient port but
// provides additional data for enhanced underwriting.
func (a *CreditBureauAdapter) GetFullReport(ctx context.Context, nationalID string) (CreditReport, error) {
	if nationalID == "" {
		return CreditReport{}, fmt.Errorf("national ID is required")
	}

	var lastErr error
	for attempt := 0; attempt <= a.config.MaxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff with jitter.
			backoff := a.config.RetryBackoff * (1 << uint(attempt-1))
			jitter := time.Duration(rand.Int63n(int64(backoff)/2 + 1))
			select {
			case <-ctx.Done():
				return CreditReport{}, ctx.Err()
			case <-time.After(backoff + jitter):
			}
		}

		report, retryable, err := a.fetchReport(ctx, nationalID)
		if err == nil {
			return report, nil
		}
		if !retryable {
			return CreditReport{}, err
		}
		lastErr = err
	}

	return CreditReport{}, fmt.Errorf("exhausted %d retries: %w", a.config.MaxRetries, lastErr)
}

// fetchReport performs a single bureau API call. Network failures and 5xx
// responses are retryable; everything else fails the lookup outright.
func (a *CreditBureauAdapter) fetchReport(ctx context.Context, nationalID string) (CreditReport, bool, error) {
	endpoint := fmt.Sprintf("%s/v1/reports/%s?bureau=%s",
		strings.TrimRight(a.config.BaseURL, "/"),
		url.PathEscape(nationalID),
		a.config.PrimaryBureau,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return CreditReport{}, false, fmt.Errorf("build bureau request: %w", err)
	}
	req.Header.Set("X-API-Key", a.config.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := a.httpc.Do(req)
	if err != nil {
		return CreditReport{}, true, fmt.Errorf("call credit bureau: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return CreditReport{}, false, fmt.Errorf("no credit file for national ID %s at %s", nationalID, a.config.PrimaryBureau)
	case resp.StatusCode >= 500:
		return CreditReport{}, true, fmt.Errorf("credit bureau returned status %d", resp.StatusCode)
	default:
		return CreditReport{}, false, fmt.Errorf("credit bureau returned status %d", resp.StatusCode)
	}

	var payload creditReportPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return CreditReport{}, false, fmt.Errorf("decode bureau report: %w", err)
	}

	reportDate, err := time.Parse(time.RFC3339, payload.ReportDate)
	if err != nil {
		reportDate = time.Now().UTC()
	}

	return CreditReport{
		Bureau:         a.config.PrimaryBureau,
		NationalID:     nationalID,
		Score:          payload.Score,
		ReportDate:     reportDate,
		AccountCount:   payload.AccountCount,
		DefaultCount:   payload.DefaultCount,
		PaymentHistory: payload.PaymentHistory,
	}, false, nil
}
