package storage

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bakehouse/counter-api/internal/domain/entity"
	"github.com/bakehouse/counter-api/pkg/apperror"
)

const tableStoreFile = "sales_data.json"

// storeDocument is the on-disk shape of the table store. Tables are held as
// raw messages so one corrupt entry can be skipped without aborting the load.
type storeDocument struct {
	Tables   map[string]json.RawMessage `json:"tables"`
	Settings storeSettings              `json:"settings"`
}

type storeSettings struct {
	LastTableNumber int       `json:"last_table_number"`
	CreatedAt       time.Time `json:"created_at"`
}

// JSONTableStore persists the order book and numbering counter to a single
// JSON document with whole-document read-modify-write semantics. Saves
// replace only the tables section; the settings section is merged, not
// overwritten.
type JSONTableStore struct {
	mu   sync.Mutex
	dir  string
	path string
}

// NewJSONTableStore creates the data directory and backing document if
// missing.
func NewJSONTableStore(dir string) (*JSONTableStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, apperror.NewPersistenceError("failed to create data directory: " + err.Error())
	}
	s := &JSONTableStore{dir: dir, path: filepath.Join(dir, tableStoreFile)}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		doc := defaultDocument()
		if err := s.writeDocument(doc); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func defaultDocument() *storeDocument {
	return &storeDocument{
		Tables:   map[string]json.RawMessage{},
		Settings: storeSettings{LastTableNumber: 0, CreatedAt: time.Now()},
	}
}

// loadDocument reads the backing file. I/O or decode failures are logged and
// degrade to a default structure so a corrupted store never takes the
// application down; data loss is the accepted tradeoff for availability.
func (s *JSONTableStore) loadDocument() *storeDocument {
	data, err := os.ReadFile(s.path)
	if err != nil {
		log.Printf("storage: error loading %s: %v", s.path, err)
		return defaultDocument()
	}
	var doc storeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Printf("storage: error decoding %s: %v", s.path, err)
		return defaultDocument()
	}
	if doc.Tables == nil {
		doc.Tables = map[string]json.RawMessage{}
	}
	return &doc
}

func (s *JSONTableStore) writeDocument(doc *storeDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return apperror.NewPersistenceError("failed to encode store document: " + err.Error())
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return apperror.NewPersistenceError("failed to write store document: " + err.Error())
	}
	return nil
}

// LoadTables decodes every table entry, skipping (and logging) the ones that
// fail to decode.
func (s *JSONTableStore) LoadTables() (map[string]*entity.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.loadDocument()
	tables := make(map[string]*entity.Table, len(doc.Tables))
	for name, raw := range doc.Tables {
		var table entity.Table
		if err := json.Unmarshal(raw, &table); err != nil {
			log.Printf("storage: error loading table %q: %v", name, err)
			continue
		}
		if table.Items == nil {
			table.Items = []*entity.SaleItem{}
		}
		tables[name] = &table
	}
	return tables, nil
}

// SaveTables performs a read-modify-write of the backing document, replacing
// the tables section and keeping whatever the settings section holds.
func (s *JSONTableStore) SaveTables(tables map[string]*entity.Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.loadDocument()
	doc.Tables = make(map[string]json.RawMessage, len(tables))
	for name, table := range tables {
		raw, err := json.Marshal(table)
		if err != nil {
			return apperror.NewPersistenceError("failed to encode table " + name + ": " + err.Error())
		}
		doc.Tables[name] = raw
	}
	return s.writeDocument(doc)
}

// NextTableNumber increments and persists the numbering counter.
func (s *JSONTableStore) NextTableNumber() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.loadDocument()
	doc.Settings.LastTableNumber++
	if err := s.writeDocument(doc); err != nil {
		return 0, err
	}
	return doc.Settings.LastTableNumber, nil
}

// Backup writes a timestamped full copy of the backing document.
func (s *JSONTableStore) Backup(path string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if path == "" {
		path = filepath.Join(s.dir, "backup_"+time.Now().Format("20060102_150405")+".json")
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", apperror.NewPersistenceError("failed to read store for backup: " + err.Error())
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", apperror.NewPersistenceError("failed to write backup: " + err.Error())
	}
	return path, nil
}
