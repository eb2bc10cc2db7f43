package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bakehouse/counter-api/internal/domain/entity"
)

func TestTableStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewJSONTableStore(dir)
	if err != nil {
		t.Fatalf("store init failed: %v", err)
	}

	table := entity.NewTable(1)
	if err := table.AddItem("Coffee", 3.50, 2); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if err := store.SaveTables(map[string]*entity.Table{"Table 1": table}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	// Reopen from disk.
	reopened, err := NewJSONTableStore(dir)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	tables, err := reopened.LoadTables()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	loaded, ok := tables["Table 1"]
	if !ok {
		t.Fatalf("expected Table 1 in store, got %v", tables)
	}
	if len(loaded.Items) != 1 || loaded.Items[0].Quantity != 2 {
		t.Fatalf("unexpected items after round trip: %+v", loaded.Items)
	}
	if !loaded.IsActive {
		t.Fatalf("active flag lost in round trip")
	}
}

func TestTableStoreSkipsCorruptEntries(t *testing.T) {
	dir := t.TempDir()
	store, err := NewJSONTableStore(dir)
	if err != nil {
		t.Fatalf("store init failed: %v", err)
	}

	doc := map[string]interface{}{
		"tables": map[string]json.RawMessage{
			"Table 1": json.RawMessage(`{"table_number":1,"items":[],"is_active":true}`),
			"Table 2": json.RawMessage(`"not a table"`),
		},
		"settings": map[string]interface{}{"last_table_number": 2},
	}
	data, _ := json.Marshal(doc)
	if err := os.WriteFile(filepath.Join(dir, "sales_data.json"), data, 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	tables, err := store.LoadTables()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(tables) != 1 {
		t.Fatalf("expected the corrupt entry to be skipped, got %d tables", len(tables))
	}
	if _, ok := tables["Table 1"]; !ok {
		t.Fatalf("good entry missing after partial load")
	}
}

func TestTableStoreDegradesOnCorruptDocument(t *testing.T) {
	dir := t.TempDir()
	store, err := NewJSONTableStore(dir)
	if err != nil {
		t.Fatalf("store init failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sales_data.json"), []byte("{broken"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	tables, err := store.LoadTables()
	if err != nil {
		t.Fatalf("corrupt document must degrade, not fail: %v", err)
	}
	if len(tables) != 0 {
		t.Fatalf("expected empty book, got %d tables", len(tables))
	}
}

func TestNextTableNumberIsMonotonicAndPersisted(t *testing.T) {
	dir := t.TempDir()
	store, err := NewJSONTableStore(dir)
	if err != nil {
		t.Fatalf("store init failed: %v", err)
	}

	first, err := store.NextTableNumber()
	if err != nil {
		t.Fatalf("counter draw failed: %v", err)
	}
	second, err := store.NextTableNumber()
	if err != nil {
		t.Fatalf("counter draw failed: %v", err)
	}
	if first != 1 || second != 2 {
		t.Fatalf("expected 1 then 2, got %d then %d", first, second)
	}

	// Saving tables must not reset the counter.
	if err := store.SaveTables(map[string]*entity.Table{}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	reopened, err := NewJSONTableStore(dir)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	third, err := reopened.NextTableNumber()
	if err != nil {
		t.Fatalf("counter draw failed: %v", err)
	}
	if third != 3 {
		t.Fatalf("counter must survive reopen and saves, got %d", third)
	}
}

func TestBackupCopiesTheWholeDocument(t *testing.T) {
	dir := t.TempDir()
	store, err := NewJSONTableStore(dir)
	if err != nil {
		t.Fatalf("store init failed: %v", err)
	}
	table := entity.NewTable(4)
	_ = table.AddItem("Tea", 2.50, 1)
	if err := store.SaveTables(map[string]*entity.Table{"Table 4": table}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	path, err := store.Backup("")
	if err != nil {
		t.Fatalf("backup failed: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(path), "backup_") {
		t.Fatalf("unexpected backup name %q", path)
	}

	original, _ := os.ReadFile(filepath.Join(dir, "sales_data.json"))
	copied, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("backup unreadable: %v", err)
	}
	if string(original) != string(copied) {
		t.Fatalf("backup must be a byte-for-byte copy")
	}
}
