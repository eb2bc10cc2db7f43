package service

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/bakehouse/counter-api/pkg/apperror"
	"github.com/bakehouse/counter-api/pkg/utils"
)

// Action names a gated admin operation.
type Action string

// ActionRemoveLedgerOrder gates destructive edits to the daily sales ledger.
const ActionRemoveLedgerOrder Action = "ledger.remove_order"

// Authorizer is the pluggable confirmation gate checked before any
// destructive ledger edit. A failed check aborts the operation with no side
// effects.
type Authorizer interface {
	Authorize(action Action, credential string) error
}

// PassphraseAuthorizer compares the presented credential against the
// configured admin secret. A secret stored as a bcrypt hash is compared with
// bcrypt; a plain secret is compared in constant time.
type PassphraseAuthorizer struct {
	secret string
}

// NewPassphraseAuthorizer creates an authorizer backed by a shared secret.
func NewPassphraseAuthorizer(secret string) *PassphraseAuthorizer {
	return &PassphraseAuthorizer{secret: secret}
}

func (a *PassphraseAuthorizer) Authorize(_ Action, credential string) error {
	if a.secret == "" {
		return apperror.NewAuthorizationError("Admin passphrase is not configured")
	}
	if isBcryptHash(a.secret) {
		if bcrypt.CompareHashAndPassword([]byte(a.secret), []byte(credential)) != nil {
			return apperror.NewAuthorizationError("Incorrect admin passphrase")
		}
		return nil
	}
	if subtle.ConstantTimeCompare([]byte(a.secret), []byte(credential)) != 1 {
		return apperror.NewAuthorizationError("Incorrect admin passphrase")
	}
	return nil
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

// TokenAuthorizer accepts a valid admin session token as the credential. The
// token itself is issued only after a passphrase exchange, so the distinct
// confirmation step is preserved while the check is backed by a real
// credential.
type TokenAuthorizer struct {
	tokens *utils.AdminTokenManager
}

// NewTokenAuthorizer creates an authorizer backed by admin session tokens.
func NewTokenAuthorizer(tokens *utils.AdminTokenManager) *TokenAuthorizer {
	return &TokenAuthorizer{tokens: tokens}
}

func (a *TokenAuthorizer) Authorize(_ Action, credential string) error {
	if credential == "" {
		return apperror.NewAuthorizationError("Admin authorization required")
	}
	if _, err := a.tokens.Validate(credential); err != nil {
		return apperror.NewAuthorizationError("Invalid or expired admin token")
	}
	return nil
}
