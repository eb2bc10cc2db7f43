package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/bakehouse/counter-api/internal/domain/entity"
	"github.com/bakehouse/counter-api/pkg/apperror"
)

const auditLogFile = "order_removals_audit.json"

// JSONAuditStore persists the append-only removal audit log, independent of
// the ledger files it references.
type JSONAuditStore struct {
	mu   sync.Mutex
	path string
}

// NewJSONAuditStore creates the data directory if missing.
func NewJSONAuditStore(dir string) (*JSONAuditStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, apperror.NewPersistenceError("failed to create data directory: " + err.Error())
	}
	return &JSONAuditStore{path: filepath.Join(dir, auditLogFile)}, nil
}

func (s *JSONAuditStore) load() (*entity.AuditLog, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return &entity.AuditLog{Removals: []entity.AuditEntry{}}, nil
	}
	if err != nil {
		return nil, apperror.NewPersistenceError("failed to read audit log: " + err.Error())
	}
	var auditLog entity.AuditLog
	if err := json.Unmarshal(data, &auditLog); err != nil {
		return nil, apperror.NewPersistenceError("failed to decode audit log: " + err.Error())
	}
	return &auditLog, nil
}

// Append adds one entry to the audit document.
func (s *JSONAuditStore) Append(entry entity.AuditEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	auditLog, err := s.load()
	if err != nil {
		return err
	}
	auditLog.Removals = append(auditLog.Removals, entry)

	data, err := json.MarshalIndent(auditLog, "", "  ")
	if err != nil {
		return apperror.NewPersistenceError("failed to encode audit log: " + err.Error())
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return apperror.NewPersistenceError("failed to write audit log: " + err.Error())
	}
	return nil
}

// List returns every recorded removal, oldest first.
func (s *JSONAuditStore) List() ([]entity.AuditEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	auditLog, err := s.load()
	if err != nil {
		return nil, err
	}
	return auditLog.Removals, nil
}
