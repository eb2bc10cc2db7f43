package request

// LoginRequest exchanges the admin passphrase for a short-lived session token.
type LoginRequest struct {
	Passphrase string `json:"passphrase" binding:"required"`
}

// RemoveOrderRequest removes a finalized order from a daily ledger. Reason is
// recorded in the removal audit log; empty uses the default reason.
type RemoveOrderRequest struct {
	Reason string `json:"reason"`
}
