package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/bakehouse/counter-api/internal/domain/entity"
)

func TestLedgerStoreMissingDateIsNoData(t *testing.T) {
	store, err := NewJSONLedgerStore(t.TempDir())
	if err != nil {
		t.Fatalf("store init failed: %v", err)
	}

	ledger, err := store.Load("2026-08-26")
	if err != nil {
		t.Fatalf("missing date must not be an error: %v", err)
	}
	if ledger != nil {
		t.Fatalf("expected nil ledger for an unrecorded date")
	}
}

func TestLedgerStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewJSONLedgerStore(dir)
	if err != nil {
		t.Fatalf("store init failed: %v", err)
	}

	ledger := entity.NewDailyLedger("2026-08-26")
	ledger.Record(entity.OrderSnapshot{
		TableName:   "Table 2",
		TableNumber: 2,
		FinalizedAt: time.Date(2026, 8, 26, 13, 15, 0, 0, time.Local),
		Items:       []entity.SaleItem{{Name: "Pizza", Price: 15, Quantity: 1}},
		TotalAmount: 15,
		ItemsCount:  1,
	})
	if err := store.Save(ledger); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "daily_sales_2026-08-26.json")); err != nil {
		t.Fatalf("expected per-date document on disk: %v", err)
	}

	loaded, err := store.Load("2026-08-26")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.TotalSales != 15 || loaded.TotalOrders != 1 {
		t.Fatalf("unexpected totals after round trip: %+v", loaded)
	}
	if loaded.HourlyBreakdown["13:00"] != 15 {
		t.Fatalf("hourly bucket lost in round trip: %+v", loaded.HourlyBreakdown)
	}
}

func TestLedgerStoreCorruptDocumentFails(t *testing.T) {
	dir := t.TempDir()
	store, err := NewJSONLedgerStore(dir)
	if err != nil {
		t.Fatalf("store init failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "daily_sales_2026-08-26.json"), []byte("{broken"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if _, err := store.Load("2026-08-26"); err == nil {
		t.Fatalf("corrupt ledger document must surface an error")
	}
}

func TestAuditStoreAppendAndList(t *testing.T) {
	store, err := NewJSONAuditStore(t.TempDir())
	if err != nil {
		t.Fatalf("store init failed: %v", err)
	}

	entries, err := store.List()
	if err != nil {
		t.Fatalf("list on fresh store failed: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty log, got %d entries", len(entries))
	}

	first := entity.AuditEntry{
		ID:               uuid.New(),
		RemovalTimestamp: time.Now(),
		OriginalDate:     "2026-08-25",
		Reason:           "Voided by manager",
	}
	second := entity.AuditEntry{
		ID:               uuid.New(),
		RemovalTimestamp: time.Now(),
		OriginalDate:     "2026-08-26",
		Reason:           "Duplicate entry",
	}
	if err := store.Append(first); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if err := store.Append(second); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	entries, err = store.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != first.ID || entries[1].ID != second.ID {
		t.Fatalf("entries must keep append order")
	}
}
