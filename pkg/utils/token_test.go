package utils

import (
	"testing"
	"time"
)

func TestIssueAndValidate(t *testing.T) {
	manager := NewAdminTokenManager("test-secret", time.Minute)

	token, err := manager.Issue()
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims, err := manager.Validate(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.Role != "admin" {
		t.Fatalf("expected admin role, got %q", claims.Role)
	}
	if claims.Subject != "admin" {
		t.Fatalf("expected admin subject, got %q", claims.Subject)
	}
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	manager := NewAdminTokenManager("test-secret", -time.Minute)

	token, err := manager.Issue()
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := manager.Validate(token); err == nil {
		t.Fatalf("expired token must be rejected")
	}
}

func TestValidateRejectsForeignSignature(t *testing.T) {
	token, err := NewAdminTokenManager("secret-a", time.Minute).Issue()
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := NewAdminTokenManager("secret-b", time.Minute).Validate(token); err == nil {
		t.Fatalf("token signed with another secret must be rejected")
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	manager := NewAdminTokenManager("test-secret", time.Minute)
	if _, err := manager.Validate("not.a.token"); err == nil {
		t.Fatalf("garbage token must be rejected")
	}
}
