package service

import (
	"log"
	"sort"
	"sync"

	"github.com/bakehouse/counter-api/internal/domain/entity"
	"github.com/bakehouse/counter-api/internal/domain/repository"
	"github.com/bakehouse/counter-api/pkg/apperror"
)

// salesRecorder receives finalized-order snapshots. Satisfied by
// LedgerService.
type salesRecorder interface {
	Record(snap entity.OrderSnapshot) error
}

// Observer is a no-argument callback invoked after every state-changing
// operation. Observers may be called arbitrarily often and must tolerate it.
type Observer func()

// SalesSummary aggregates the live order book. Only finalized tables
// contribute to the totals; active-table revenue is not yet committed.
type SalesSummary struct {
	TotalSales      float64 `json:"total_sales"`
	TotalItems      int     `json:"total_items"`
	ActiveTables    int     `json:"active_tables"`
	FinalizedTables int     `json:"finalized_tables"`
	TotalTables     int     `json:"total_tables"`
}

// OrderService owns the live order book and orchestrates table lifecycle
// operations. Every mutating operation applies the change in memory,
// persists the whole book, then notifies subscribers; a panicking subscriber
// is logged and never blocks the others.
type OrderService struct {
	mu        sync.Mutex
	store     repository.TableStore
	ledger    salesRecorder
	tables    map[string]*entity.Table
	observers map[int]Observer
	nextToken int
}

// NewOrderService loads the persisted order book and returns the controller.
func NewOrderService(store repository.TableStore, ledger salesRecorder) *OrderService {
	tables, err := store.LoadTables()
	if err != nil {
		log.Printf("orders: error loading tables: %v", err)
		tables = map[string]*entity.Table{}
	}
	return &OrderService{
		store:     store,
		ledger:    ledger,
		tables:    tables,
		observers: map[int]Observer{},
	}
}

// Subscribe registers an observer and returns a token for Unsubscribe.
func (s *OrderService) Subscribe(fn Observer) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextToken++
	s.observers[s.nextToken] = fn
	return s.nextToken
}

// Unsubscribe removes a previously registered observer.
func (s *OrderService) Unsubscribe(token int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.observers, token)
}

// notify invokes every observer, trapping panics per call so one failing
// subscriber cannot block the rest.
func (s *OrderService) notify() {
	s.mu.Lock()
	observers := make([]Observer, 0, len(s.observers))
	for _, fn := range s.observers {
		observers = append(observers, fn)
	}
	s.mu.Unlock()

	for _, fn := range observers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("orders: observer panicked: %v", r)
				}
			}()
			fn()
		}()
	}
}

// persistLocked saves the whole book. Persistence failures are logged, not
// propagated; the in-memory state stays authoritative for the session.
func (s *OrderService) persistLocked() {
	if err := s.store.SaveTables(s.tables); err != nil {
		log.Printf("orders: error saving tables: %v", err)
	}
}

// CreateTable draws a fresh number from the persistent counter, re-drawing
// until the derived display name is unused, then inserts a new table.
func (s *OrderService) CreateTable() (string, error) {
	s.mu.Lock()
	var name string
	var number int
	for {
		n, err := s.store.NextTableNumber()
		if err != nil {
			s.mu.Unlock()
			return "", err
		}
		number = n
		name = entity.TableDisplayName(n)
		if _, exists := s.tables[name]; !exists {
			break
		}
	}
	s.tables[name] = entity.NewTable(number)
	s.persistLocked()
	s.mu.Unlock()

	s.notify()
	return name, nil
}

// GetOrCreateTable returns the table at name, inserting one with the given
// number if absent. This is the fixed-grid path: grid slots are reserved
// identities, so the persistent counter is neither consulted nor advanced.
func (s *OrderService) GetOrCreateTable(name string, number int) *entity.Table {
	s.mu.Lock()
	table, ok := s.tables[name]
	if ok {
		clone := table.Clone()
		s.mu.Unlock()
		return clone
	}
	table = entity.NewTable(number)
	s.tables[name] = table
	clone := table.Clone()
	s.persistLocked()
	s.mu.Unlock()

	s.notify()
	return clone
}

// GetTable returns a copy of the table at name, or nil.
func (s *OrderService) GetTable(name string) *entity.Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	table, ok := s.tables[name]
	if !ok {
		return nil
	}
	return table.Clone()
}

// Tables returns copies of every table keyed by display name.
func (s *OrderService) Tables() map[string]*entity.Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]*entity.Table, len(s.tables))
	for name, table := range s.tables {
		out[name] = table.Clone()
	}
	return out
}

// DeleteTable removes the entry if present and reports whether it existed.
// Clearing a table frees the slot for reuse; recorded sales history is
// untouched.
func (s *OrderService) DeleteTable(name string) bool {
	s.mu.Lock()
	_, ok := s.tables[name]
	if !ok {
		s.mu.Unlock()
		return false
	}
	delete(s.tables, name)
	s.persistLocked()
	s.mu.Unlock()

	s.notify()
	return true
}

// ClearAllFinalized removes every finalized table from the live book,
// returning how many were cleared.
func (s *OrderService) ClearAllFinalized() int {
	s.mu.Lock()
	cleared := 0
	for name, table := range s.tables {
		if !table.IsActive {
			delete(s.tables, name)
			cleared++
		}
	}
	if cleared > 0 {
		s.persistLocked()
	}
	s.mu.Unlock()

	if cleared > 0 {
		s.notify()
	}
	return cleared
}

// mutate applies fn to the named table, persists and notifies. Domain errors
// from fn are returned as-is and leave the book unpersisted.
func (s *OrderService) mutate(name string, fn func(*entity.Table) error) error {
	s.mu.Lock()
	table, ok := s.tables[name]
	if !ok {
		s.mu.Unlock()
		return apperror.NewNotFoundError(name)
	}
	if err := fn(table); err != nil {
		s.mu.Unlock()
		return err
	}
	s.persistLocked()
	s.mu.Unlock()

	s.notify()
	return nil
}

// AddItemToTable adds or accumulates a line on an active table.
func (s *OrderService) AddItemToTable(name, itemName string, price float64, quantity int) error {
	return s.mutate(name, func(t *entity.Table) error {
		return t.AddItem(itemName, price, quantity)
	})
}

// RemoveItemFromTable removes the line at index.
func (s *OrderService) RemoveItemFromTable(name string, index int) error {
	return s.mutate(name, func(t *entity.Table) error {
		return t.RemoveItem(index)
	})
}

// UpdateItemQuantity sets a line's quantity; zero or less removes the line.
func (s *OrderService) UpdateItemQuantity(name string, index, quantity int) error {
	return s.mutate(name, func(t *entity.Table) error {
		return t.UpdateItemQuantity(index, quantity)
	})
}

// UpdateItemPrice sets a line's unit price.
func (s *OrderService) UpdateItemPrice(name string, index int, price float64) error {
	return s.mutate(name, func(t *entity.Table) error {
		return t.UpdateItemPrice(index, price)
	})
}

// FinalizeTable closes the bill and records its snapshot in the daily
// ledger. A ledger write failure is logged, never rolls back the finalize;
// the live book is already persisted with the closed state.
func (s *OrderService) FinalizeTable(name string) (*entity.OrderSnapshot, error) {
	var snap entity.OrderSnapshot
	err := s.mutate(name, func(t *entity.Table) error {
		if err := t.Finalize(); err != nil {
			return err
		}
		snap = t.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}
	if s.ledger != nil {
		if err := s.ledger.Record(snap); err != nil {
			log.Printf("orders: error recording %s to daily sales: %v", name, err)
		}
	}
	return &snap, nil
}

// Summary scans the live book. Finalized tables alone contribute to
// TotalSales and TotalItems.
func (s *OrderService) Summary() SalesSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	var summary SalesSummary
	for _, table := range s.tables {
		if table.IsActive {
			summary.ActiveTables++
		} else {
			summary.FinalizedTables++
			summary.TotalSales += table.Total()
			summary.TotalItems += table.ItemCount()
		}
	}
	summary.TotalTables = len(s.tables)
	return summary
}

// TableNames returns the book's display names sorted by table number.
func (s *OrderService) TableNames() []string {
	s.mu.Lock()
	type entry struct {
		name   string
		number int
	}
	entries := make([]entry, 0, len(s.tables))
	for name, table := range s.tables {
		entries = append(entries, entry{name: name, number: table.TableNumber})
	}
	s.mu.Unlock()

	sort.Slice(entries, func(i, j int) bool { return entries[i].number < entries[j].number })
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}
