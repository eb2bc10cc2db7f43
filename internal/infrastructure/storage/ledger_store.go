package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/bakehouse/counter-api/internal/domain/entity"
	"github.com/bakehouse/counter-api/pkg/apperror"
)

// JSONLedgerStore keeps one daily sales document per calendar date, named
// daily_sales_YYYY-MM-DD.json.
type JSONLedgerStore struct {
	mu  sync.Mutex
	dir string
}

// NewJSONLedgerStore creates the data directory if missing.
func NewJSONLedgerStore(dir string) (*JSONLedgerStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, apperror.NewPersistenceError("failed to create data directory: " + err.Error())
	}
	return &JSONLedgerStore{dir: dir}, nil
}

func (s *JSONLedgerStore) fileFor(date string) string {
	return filepath.Join(s.dir, "daily_sales_"+date+".json")
}

// Load reads the ledger for a date. A missing document is the no-data case
// and yields (nil, nil).
func (s *JSONLedgerStore) Load(date string) (*entity.DailyLedger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.fileFor(date))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.NewPersistenceError("failed to read daily sales for " + date + ": " + err.Error())
	}
	var ledger entity.DailyLedger
	if err := json.Unmarshal(data, &ledger); err != nil {
		return nil, apperror.NewPersistenceError("failed to decode daily sales for " + date + ": " + err.Error())
	}
	return &ledger, nil
}

// Save writes the whole daily document back.
func (s *JSONLedgerStore) Save(ledger *entity.DailyLedger) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(ledger, "", "  ")
	if err != nil {
		return apperror.NewPersistenceError("failed to encode daily sales: " + err.Error())
	}
	if err := os.WriteFile(s.fileFor(ledger.Date), data, 0o644); err != nil {
		return apperror.NewPersistenceError("failed to write daily sales: " + err.Error())
	}
	return nil
}
