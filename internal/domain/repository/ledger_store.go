package repository

import (
	"github.com/bakehouse/counter-api/internal/domain/entity"
)

// LedgerStore persists one daily sales document per calendar date.
type LedgerStore interface {
	// Load reads the ledger for a date (YYYY-MM-DD). A date with no document
	// yields (nil, nil), which is the explicit no-data result.
	Load(date string) (*entity.DailyLedger, error)
	// Save writes the whole document back.
	Save(ledger *entity.DailyLedger) error
}

// AuditStore persists the append-only removal audit log.
type AuditStore interface {
	Append(entry entity.AuditEntry) error
	List() ([]entity.AuditEntry, error)
}
