package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditEntry records one admin-authorized removal from the daily ledger.
// Entries are append-only; the system never mutates or deletes them.
type AuditEntry struct {
	ID               uuid.UUID     `json:"id"`
	RemovalTimestamp time.Time     `json:"removal_timestamp"`
	OriginalDate     string        `json:"original_date"`
	RemovedOrder     OrderSnapshot `json:"removed_order"`
	Reason           string        `json:"reason"`
}

// AuditLog is the persisted audit document, independent of the ledger files.
type AuditLog struct {
	Removals []AuditEntry `json:"removals"`
}
