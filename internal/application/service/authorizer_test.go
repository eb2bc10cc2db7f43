package service

import (
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/bakehouse/counter-api/pkg/apperror"
	"github.com/bakehouse/counter-api/pkg/utils"
)

func TestPassphraseAuthorizerPlainSecret(t *testing.T) {
	authz := NewPassphraseAuthorizer("letmein")

	if err := authz.Authorize(ActionRemoveLedgerOrder, "letmein"); err != nil {
		t.Fatalf("correct passphrase rejected: %v", err)
	}
	if err := authz.Authorize(ActionRemoveLedgerOrder, "wrong"); !apperror.IsKind(err, apperror.KindAuthorization) {
		t.Fatalf("expected authorization error, got %v", err)
	}
}

func TestPassphraseAuthorizerBcryptSecret(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("letmein"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	authz := NewPassphraseAuthorizer(string(hash))

	if err := authz.Authorize(ActionRemoveLedgerOrder, "letmein"); err != nil {
		t.Fatalf("correct passphrase rejected against bcrypt secret: %v", err)
	}
	if err := authz.Authorize(ActionRemoveLedgerOrder, "wrong"); !apperror.IsKind(err, apperror.KindAuthorization) {
		t.Fatalf("expected authorization error, got %v", err)
	}
}

func TestPassphraseAuthorizerUnconfigured(t *testing.T) {
	authz := NewPassphraseAuthorizer("")

	// An empty credential must not pass an empty secret.
	if err := authz.Authorize(ActionRemoveLedgerOrder, ""); !apperror.IsKind(err, apperror.KindAuthorization) {
		t.Fatalf("unconfigured secret must deny everything, got %v", err)
	}
}

func TestTokenAuthorizer(t *testing.T) {
	tokens := utils.NewAdminTokenManager("test-secret", time.Minute)
	authz := NewTokenAuthorizer(tokens)

	token, err := tokens.Issue()
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if err := authz.Authorize(ActionRemoveLedgerOrder, token); err != nil {
		t.Fatalf("valid token rejected: %v", err)
	}

	if err := authz.Authorize(ActionRemoveLedgerOrder, ""); !apperror.IsKind(err, apperror.KindAuthorization) {
		t.Fatalf("missing token must be denied, got %v", err)
	}
	if err := authz.Authorize(ActionRemoveLedgerOrder, "not-a-token"); !apperror.IsKind(err, apperror.KindAuthorization) {
		t.Fatalf("garbage token must be denied, got %v", err)
	}

	// Token signed with a different secret.
	other, err := utils.NewAdminTokenManager("other-secret", time.Minute).Issue()
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if err := authz.Authorize(ActionRemoveLedgerOrder, other); !apperror.IsKind(err, apperror.KindAuthorization) {
		t.Fatalf("foreign token must be denied, got %v", err)
	}
}
