package entity

import (
	"encoding/json"
	"strings"

	"github.com/bakehouse/counter-api/pkg/apperror"
)

// SaleItem represents one line on a table's bill
type SaleItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// NewSaleItem constructs a validated line item.
func NewSaleItem(name string, price float64, quantity int) (*SaleItem, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperror.NewValidationError("Item name cannot be empty")
	}
	if price < 0 {
		return nil, apperror.NewValidationError("Price cannot be negative")
	}
	if quantity <= 0 {
		return nil, apperror.NewValidationError("Quantity must be positive")
	}
	return &SaleItem{Name: name, Price: price, Quantity: quantity}, nil
}

// Total returns the line total (unit price times quantity).
func (i *SaleItem) Total() float64 {
	return i.Price * float64(i.Quantity)
}

// MarshalJSON includes the derived total so persisted documents carry it,
// matching the receipt and ledger wire format. Decoding ignores the field.
func (i SaleItem) MarshalJSON() ([]byte, error) {
	type Alias SaleItem
	return json.Marshal(&struct {
		Alias
		Total float64 `json:"total"`
	}{
		Alias: Alias(i),
		Total: i.Total(),
	})
}
