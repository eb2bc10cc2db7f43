package entity

import "time"

// OrderSnapshot is an immutable copy of a table's state at finalize time.
// It is what the daily ledger stores and what receipts are printed from.
type OrderSnapshot struct {
	TableName   string     `json:"table_name"`
	TableNumber int        `json:"table_number"`
	FinalizedAt time.Time  `json:"finalized_at"`
	Items       []SaleItem `json:"items"`
	TotalAmount float64    `json:"total_amount"`
	ItemsCount  int        `json:"items_count"`
}

// HourBucket returns the ledger's hourly-breakdown key for this snapshot,
// e.g. "14:00".
func (s OrderSnapshot) HourBucket() string {
	return s.FinalizedAt.Format("15") + ":00"
}
