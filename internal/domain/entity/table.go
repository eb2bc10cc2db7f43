package entity

import (
	"fmt"
	"time"

	"github.com/bakehouse/counter-api/pkg/apperror"
)

// Table is an order aggregate: one open or finalized bill identified by a
// display name ("Table N") and a number. Items are exclusively owned and
// keep insertion order.
type Table struct {
	TableNumber int         `json:"table_number"`
	Items       []*SaleItem `json:"items"`
	IsActive    bool        `json:"is_active"`
	CreatedAt   time.Time   `json:"created_at"`
	FinalizedAt *time.Time  `json:"finalized_at"`
}

// NewTable creates an active table with no items.
func NewTable(number int) *Table {
	return &Table{
		TableNumber: number,
		Items:       []*SaleItem{},
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
}

// DisplayName derives the table's map key, e.g. "Table 3".
func (t *Table) DisplayName() string {
	return TableDisplayName(t.TableNumber)
}

// TableDisplayName derives the display name for a table number.
func TableDisplayName(number int) string {
	return fmt.Sprintf("Table %d", number)
}

// AddItem appends a new line or, when a line with the same name already
// exists, accumulates its quantity. A repeat add keeps the existing line's
// price; the new price argument is discarded.
func (t *Table) AddItem(name string, price float64, quantity int) error {
	if !t.IsActive {
		return apperror.NewInvalidStateError("Cannot add items to a finalized table")
	}
	for _, item := range t.Items {
		if item.Name == name {
			item.Quantity += quantity
			return nil
		}
	}
	item, err := NewSaleItem(name, price, quantity)
	if err != nil {
		return err
	}
	t.Items = append(t.Items, item)
	return nil
}

// RemoveItem deletes the line at index.
func (t *Table) RemoveItem(index int) error {
	if !t.IsActive {
		return apperror.NewInvalidStateError("Cannot remove items from a finalized table")
	}
	if index < 0 || index >= len(t.Items) {
		return apperror.NewIndexError("Invalid item index")
	}
	t.Items = append(t.Items[:index], t.Items[index+1:]...)
	return nil
}

// UpdateItemQuantity sets the line's quantity. A quantity of zero or less
// removes the line instead of failing.
func (t *Table) UpdateItemQuantity(index, newQuantity int) error {
	if !t.IsActive {
		return apperror.NewInvalidStateError("Cannot update items on a finalized table")
	}
	if index < 0 || index >= len(t.Items) {
		return apperror.NewIndexError("Invalid item index")
	}
	if newQuantity <= 0 {
		return t.RemoveItem(index)
	}
	t.Items[index].Quantity = newQuantity
	return nil
}

// UpdateItemPrice sets the line's unit price.
func (t *Table) UpdateItemPrice(index int, newPrice float64) error {
	if !t.IsActive {
		return apperror.NewInvalidStateError("Cannot update items on a finalized table")
	}
	if index < 0 || index >= len(t.Items) {
		return apperror.NewIndexError("Invalid item index")
	}
	if newPrice < 0 {
		return apperror.NewValidationError("Price cannot be negative")
	}
	t.Items[index].Price = newPrice
	return nil
}

// Total returns the sum of all line totals.
func (t *Table) Total() float64 {
	var total float64
	for _, item := range t.Items {
		total += item.Total()
	}
	return total
}

// ItemCount returns the sum of all line quantities.
func (t *Table) ItemCount() int {
	var count int
	for _, item := range t.Items {
		count += item.Quantity
	}
	return count
}

// Finalize closes the bill and stamps the finalization time. Finalizing an
// empty table or re-finalizing a closed one is rejected.
func (t *Table) Finalize() error {
	if !t.IsActive {
		return apperror.NewInvalidStateError("Table is already finalized")
	}
	if len(t.Items) == 0 {
		return apperror.NewInvalidStateError("Cannot finalize an empty table")
	}
	now := time.Now()
	t.IsActive = false
	t.FinalizedAt = &now
	return nil
}

// Snapshot builds an immutable copy of the table's state for ledger
// recording. Item copies are by value; mutating the live table afterwards
// does not affect the snapshot.
func (t *Table) Snapshot() OrderSnapshot {
	finalizedAt := time.Now()
	if t.FinalizedAt != nil {
		finalizedAt = *t.FinalizedAt
	}
	items := make([]SaleItem, len(t.Items))
	for i, item := range t.Items {
		items[i] = *item
	}
	return OrderSnapshot{
		TableName:   t.DisplayName(),
		TableNumber: t.TableNumber,
		FinalizedAt: finalizedAt,
		Items:       items,
		TotalAmount: t.Total(),
		ItemsCount:  len(t.Items),
	}
}

// Clone returns a deep copy used for read access outside the controller.
func (t *Table) Clone() *Table {
	items := make([]*SaleItem, len(t.Items))
	for i, item := range t.Items {
		c := *item
		items[i] = &c
	}
	var finalizedAt *time.Time
	if t.FinalizedAt != nil {
		ts := *t.FinalizedAt
		finalizedAt = &ts
	}
	return &Table{
		TableNumber: t.TableNumber,
		Items:       items,
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt,
		FinalizedAt: finalizedAt,
	}
}
