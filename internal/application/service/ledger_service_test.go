package service

import (
	"testing"
	"time"

	"github.com/bakehouse/counter-api/internal/domain/entity"
	"github.com/bakehouse/counter-api/pkg/apperror"
)

// memoryLedgerStore is an in-memory LedgerStore keyed by date.
type memoryLedgerStore struct {
	ledgers map[string]*entity.DailyLedger
	saves   int
}

func newMemoryLedgerStore() *memoryLedgerStore {
	return &memoryLedgerStore{ledgers: map[string]*entity.DailyLedger{}}
}

func (m *memoryLedgerStore) Load(date string) (*entity.DailyLedger, error) {
	return m.ledgers[date], nil
}

func (m *memoryLedgerStore) Save(ledger *entity.DailyLedger) error {
	m.saves++
	m.ledgers[ledger.Date] = ledger
	return nil
}

// memoryAuditStore is an in-memory AuditStore.
type memoryAuditStore struct {
	entries []entity.AuditEntry
}

func (m *memoryAuditStore) Append(entry entity.AuditEntry) error {
	m.entries = append(m.entries, entry)
	return nil
}

func (m *memoryAuditStore) List() ([]entity.AuditEntry, error) {
	return m.entries, nil
}

// allowAll and denyAll stub the authorization gate.
type allowAll struct{}

func (allowAll) Authorize(Action, string) error { return nil }

type denyAll struct{}

func (denyAll) Authorize(Action, string) error {
	return apperror.NewAuthorizationError("Incorrect admin passphrase")
}

func testSnapshot(hour int, name string, price float64, qty int) entity.OrderSnapshot {
	return entity.OrderSnapshot{
		TableName:   "Table 1",
		TableNumber: 1,
		FinalizedAt: time.Date(2026, 8, 26, hour, 45, 0, 0, time.Local),
		Items:       []entity.SaleItem{{Name: name, Price: price, Quantity: qty}},
		TotalAmount: price * float64(qty),
		ItemsCount:  1,
	}
}

func TestRecordCreatesLedgerLazily(t *testing.T) {
	store := newMemoryLedgerStore()
	svc := NewLedgerService(store, &memoryAuditStore{}, allowAll{})

	if err := svc.Record(testSnapshot(11, "Coffee", 3.50, 2)); err != nil {
		t.Fatalf("record failed: %v", err)
	}

	ledger := store.ledgers["2026-08-26"]
	if ledger == nil {
		t.Fatalf("first finalize of the day must create the ledger")
	}
	if ledger.TotalSales != 7.00 || ledger.TotalOrders != 1 {
		t.Fatalf("unexpected totals: %+v", ledger)
	}

	if err := svc.Record(testSnapshot(12, "Tea", 2.50, 1)); err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if store.ledgers["2026-08-26"].TotalOrders != 2 {
		t.Fatalf("second record must land in the same document")
	}
}

func TestRemoveRoundTripRestoresLedgerAndAudits(t *testing.T) {
	store := newMemoryLedgerStore()
	audit := &memoryAuditStore{}
	svc := NewLedgerService(store, audit, allowAll{})

	if err := svc.Record(testSnapshot(11, "Coffee", 3.50, 2)); err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if err := svc.Record(testSnapshot(14, "Burger", 12.00, 1)); err != nil {
		t.Fatalf("record failed: %v", err)
	}

	removed, err := svc.Remove("2026-08-26", 1, "", "token")
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if removed.TotalAmount != 12.00 {
		t.Fatalf("expected the Burger order back, got %+v", removed)
	}

	ledger := store.ledgers["2026-08-26"]
	if ledger.TotalSales != 7.00 || ledger.TotalOrders != 1 {
		t.Fatalf("remove must reverse the contribution: %+v", ledger)
	}
	if _, ok := ledger.HourlyBreakdown["14:00"]; ok {
		t.Fatalf("drained hour bucket should be deleted")
	}

	if len(audit.entries) != 1 {
		t.Fatalf("expected exactly one audit entry, got %d", len(audit.entries))
	}
	entry := audit.entries[0]
	if entry.OriginalDate != "2026-08-26" {
		t.Fatalf("audit entry must reference the ledger date, got %q", entry.OriginalDate)
	}
	if entry.Reason != DefaultRemovalReason {
		t.Fatalf("empty reason must fall back to the default, got %q", entry.Reason)
	}
	if entry.RemovedOrder.TotalAmount != 12.00 {
		t.Fatalf("audit entry must embed the removed order")
	}
}

func TestRemoveDeniedHasNoSideEffects(t *testing.T) {
	store := newMemoryLedgerStore()
	audit := &memoryAuditStore{}
	svc := NewLedgerService(store, audit, denyAll{})

	recording := NewLedgerService(store, audit, allowAll{})
	if err := recording.Record(testSnapshot(11, "Coffee", 3.50, 2)); err != nil {
		t.Fatalf("record failed: %v", err)
	}
	savesBefore := store.saves

	_, err := svc.Remove("2026-08-26", 0, "test", "wrong")
	if !apperror.IsKind(err, apperror.KindAuthorization) {
		t.Fatalf("expected authorization error, got %v", err)
	}
	if store.saves != savesBefore {
		t.Fatalf("denied removal must not touch the store")
	}
	if store.ledgers["2026-08-26"].TotalOrders != 1 {
		t.Fatalf("denied removal must leave the ledger intact")
	}
	if len(audit.entries) != 0 {
		t.Fatalf("denied removal must not be audited")
	}
}

func TestRemoveFromUnrecordedDate(t *testing.T) {
	svc := NewLedgerService(newMemoryLedgerStore(), &memoryAuditStore{}, allowAll{})

	_, err := svc.Remove("2026-01-01", 0, "", "token")
	if !apperror.IsKind(err, apperror.KindNotFound) {
		t.Fatalf("expected not found for an unrecorded date, got %v", err)
	}
}

func TestReportNoData(t *testing.T) {
	svc := NewLedgerService(newMemoryLedgerStore(), &memoryAuditStore{}, allowAll{})

	ledger, err := svc.Report("2026-01-01")
	if err != nil {
		t.Fatalf("no data must not be an error: %v", err)
	}
	if ledger != nil {
		t.Fatalf("expected nil ledger for an unrecorded date")
	}
}
