package service

import (
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/bakehouse/counter-api/internal/domain/entity"
	"github.com/bakehouse/counter-api/internal/domain/repository"
	"github.com/bakehouse/counter-api/pkg/apperror"
)

// DefaultRemovalReason is recorded when an admin removal gives no reason.
const DefaultRemovalReason = "Manual removal via admin interface"

// LedgerService maintains the per-day sales ledgers and the removal audit
// log. Destructive edits pass through the Authorizer before any mutation.
type LedgerService struct {
	store repository.LedgerStore
	audit repository.AuditStore
	authz Authorizer
}

// NewLedgerService creates a new ledger service
func NewLedgerService(store repository.LedgerStore, audit repository.AuditStore, authz Authorizer) *LedgerService {
	return &LedgerService{store: store, audit: audit, authz: authz}
}

// Record appends a finalized-order snapshot to its date's ledger, creating
// the document lazily on the first finalize of the day. The summary fields
// and the order list are updated in the same write.
func (s *LedgerService) Record(snap entity.OrderSnapshot) error {
	date := snap.FinalizedAt.Format("2006-01-02")
	ledger, err := s.store.Load(date)
	if err != nil {
		return err
	}
	if ledger == nil {
		ledger = entity.NewDailyLedger(date)
	}
	ledger.Record(snap)
	return s.store.Save(ledger)
}

// Remove retracts the order at index from the date's ledger after a
// successful admin authorization, then appends one audit entry. An
// authorization failure aborts with no side effects.
func (s *LedgerService) Remove(date string, index int, reason, credential string) (*entity.OrderSnapshot, error) {
	if err := s.authz.Authorize(ActionRemoveLedgerOrder, credential); err != nil {
		return nil, err
	}

	ledger, err := s.store.Load(date)
	if err != nil {
		return nil, err
	}
	if ledger == nil {
		return nil, apperror.NewNotFoundError("Sales record for " + date)
	}

	removed, err := ledger.RemoveOrder(index)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ledger); err != nil {
		return nil, err
	}

	if reason == "" {
		reason = DefaultRemovalReason
	}
	entry := entity.AuditEntry{
		ID:               uuid.New(),
		RemovalTimestamp: time.Now(),
		OriginalDate:     date,
		RemovedOrder:     removed,
		Reason:           reason,
	}
	if err := s.audit.Append(entry); err != nil {
		// The ledger edit is already applied at this point.
		return nil, err
	}
	return &removed, nil
}

// Report returns the ledger for a date, or (nil, nil) when no sales were
// recorded on that date.
func (s *LedgerService) Report(date string) (*entity.DailyLedger, error) {
	ledger, err := s.store.Load(date)
	if err != nil {
		log.Printf("ledger: error loading report for %s: %v", date, err)
		return nil, err
	}
	return ledger, nil
}

// AuditLog returns every recorded removal, oldest first.
func (s *LedgerService) AuditLog() ([]entity.AuditEntry, error) {
	return s.audit.List()
}
