package adapter

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
)

// StubCreditBureauClient is a development/test adapter that returns a
// deterministic credit score derived from the national ID.
// It implements port.CreditBureauClient.
type StubCreditBureauClient struct{}

// NewStubCreditBureauClient creates a new stub adapter.
func NewStubCreditBureauClient() *StubCreditBureauClient {
	return &StubCreditBureauClient{}
}

// GetCreditScore returns a deterministic score between 300 and 850 based on
// a hash of the national ID. This allows repeatable test scenarios.
func (c *StubCreditBureauClient) GetCreditScore(_ context.Context, nationalID string) (int, error) {
	if nationalID == "" {
		return 0, fmt.Errorf("national ID is required")
	}

	h := sha256.Sum256([]byte(nationalID))
	num := binary.BigEndian.Uint32(h[:4])
	score := 300 + int(num%551) // range [300, 850]

	return score, nil
}
