// Package testutil holds shared helpers and fixtures for tests.
package testutil

import (
	"time"
)

// Fixed identifiers for deterministic testing.
const (
	TestTenantID  = "tenant-0001"
	TestClientID  = "client-0001"
	TestOfficerID = "officer-0001"
)

// TestDate returns a fixed, timezone-stable reference date for schedule and
// arrears tests.
func TestDate() time.Time {
	return time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
}
