package repository

import (
	"github.com/bakehouse/counter-api/internal/domain/entity"
)

// TableStore persists the live order book and the table-numbering counter.
type TableStore interface {
	// LoadTables reads the backing document. A table entry that fails to
	// decode is logged and skipped; one corrupt record never aborts the load.
	LoadTables() (map[string]*entity.Table, error)
	// SaveTables replaces the document's tables section wholesale while
	// preserving the settings section.
	SaveTables(tables map[string]*entity.Table) error
	// NextTableNumber increments and persists the numbering counter. It
	// never returns a duplicate within a single process lifetime.
	NextTableNumber() (int, error)
	// Backup writes a timestamped full copy of the backing document without
	// mutating live state. An empty path picks a default location and the
	// chosen path is returned.
	Backup(path string) (string, error)
}
