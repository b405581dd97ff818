package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bureauConfig(baseURL string) CreditBureauConfig {
	return CreditBureauConfig{
		PrimaryBureau: BureauMetropol,
		BaseURL:       baseURL,
		APIKey:        "test-api-key",
		Timeout:       2 * time.Second,
		MaxRetries:    2,
		RetryBackoff:  time.Millisecond,
	}
}

func TestCreditBureauAdapter_GetFullReport(t *testing.T) {
	var gotPath, gotKey, gotBureau string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-API-Key")
		gotBureau = r.URL.Query().Get("bureau")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"score": 712,
			"report_date": "2025-06-01T00:00:00Z",
			"account_count": 4,
			"default_count": 0,
			"payment_history": "GOOD"
		}`))
	}))
	defer srv.Close()

	a := NewCreditBureauAdapter(bureauConfig(srv.URL))
	report, err := a.GetFullReport(context.Background(), "ID-998877")
	require.NoError(t, err)

	assert.Equal(t, "/v1/reports/ID-998877", gotPath)
	assert.Equal(t, "test-api-key", gotKey)
	assert.Equal(t, "METROPOL", gotBureau)

	assert.Equal(t, 712, report.Score)
	assert.Equal(t, BureauMetropol, report.Bureau)
	assert.Equal(t, "ID-998877", report.NationalID)
	assert.Equal(t, 4, report.AccountCount)
	assert.Equal(t, "GOOD", report.PaymentHistory)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), report.ReportDate)
}

func TestCreditBureauAdapter_GetCreditScore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"score": 655, "report_date": "2025-06-01T00:00:00Z"}`))
	}))
	defer srv.Close()

	a := NewCreditBureauAdapter(bureauConfig(srv.URL))
	score, err := a.GetCreditScore(context.Background(), "ID-998877")
	require.NoError(t, err)
	assert.Equal(t, 655, score)
}

func TestCreditBureauAdapter_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"score": 601, "report_date": "2025-06-01T00:00:00Z"}`))
	}))
	defer srv.Close()

	a := NewCreditBureauAdapter(bureauConfig(srv.URL))
	score, err := a.GetCreditScore(context.Background(), "ID-555")
	require.NoError(t, err)
	assert.Equal(t, 601, score)
	assert.Equal(t, int32(2), calls.Load())
}

func TestCreditBureauAdapter_MissingFileDoesNotRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	a := NewCreditBureauAdapter(bureauConfig(srv.URL))
	_, err := a.GetCreditScore(context.Background(), "ID-UNKNOWN")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no credit file")
	assert.Equal(t, int32(1), calls.Load())
}

func TestCreditBureauAdapter_ExhaustsRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := NewCreditBureauAdapter(bureauConfig(srv.URL))
	_, err := a.GetCreditScore(context.Background(), "ID-555")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exhausted 2 retries")
}

func TestCreditBureauAdapter_RequiresNationalID(t *testing.T) {
	a := NewCreditBureauAdapter(bureauConfig("http://localhost:0"))
	_, err := a.GetCreditScore(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "national ID is required")
}
