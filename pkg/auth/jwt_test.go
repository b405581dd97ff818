package auth

import (
	"testing"
	"time"
)

func TestJWTService_HMACRoundTrip(t *testing.T) {
	svc, err := NewJWTService(JWTConfig{
		Secret:     "test-secret",
		Issuer:     "asante-backoffice",
		Expiration: time.Hour,
	})
	if err != nil {
		t.Fatalf("NewJWTService: %v", err)
	}

	token, err := svc.GenerateToken("user-1", "tenant-1", []string{RoleLoanOfficer})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("user ID = %q", claims.UserID)
	}
	if claims.TenantID != "tenant-1" {
		t.Errorf("tenant ID = %q", claims.TenantID)
	}
	if !claims.HasRole(RoleLoanOfficer) {
		t.Error("expected loan_officer role")
	}
	if claims.HasRole(RoleAdmin) {
		t.Error("did not expect admin role")
	}
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc, err := NewJWTService(JWTConfig{Secret: "test-secret", Issuer: "asante-backoffice", Expiration: time.Hour})
	if err != nil {
		t.Fatalf("NewJWTService: %v", err)
	}

	token, err := svc.GenerateToken("user-1", "tenant-1", nil)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := svc.ValidateToken(token + "x"); err == nil {
		t.Error("expected error for tampered token")
	}
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	issuer, _ := NewJWTService(JWTConfig{Secret: "secret-a", Issuer: "asante-backoffice", Expiration: time.Hour})
	validator, _ := NewJWTService(JWTConfig{Secret: "secret-b", Issuer: "asante-backoffice", Expiration: time.Hour})

	token, err := issuer.GenerateToken("user-1", "tenant-1", nil)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := validator.ValidateToken(token); err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc, err := NewJWTService(JWTConfig{Secret: "test-secret", Issuer: "asante-backoffice", Expiration: -time.Minute})
	if err != nil {
		t.Fatalf("NewJWTService: %v", err)
	}

	token, err := svc.GenerateToken("user-1", "tenant-1", nil)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := svc.ValidateToken(token); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestNewJWTService_RequiresKeyMaterial(t *testing.T) {
	if _, err := NewJWTService(JWTConfig{}); err == nil {
		t.Error("expected error when no key material configured")
	}
}
