package entity

import (
	"github.com/bakehouse/counter-api/pkg/apperror"
)

// DailyLedger aggregates all finalized orders for one calendar date.
// TotalSales and TotalOrders always equal the sum/count derivable from
// Orders; Record and RemoveOrder keep the summary fields consistent in the
// same operation.
type DailyLedger struct {
	Date            string             `json:"date"`
	TotalSales      float64            `json:"total_sales"`
	TotalOrders     int                `json:"total_orders"`
	ItemsSold       map[string]int     `json:"items_sold"`
	HourlyBreakdown map[string]float64 `json:"hourly_breakdown"`
	Orders          []OrderSnapshot    `json:"orders"`
}

// NewDailyLedger creates an empty ledger for the given date (YYYY-MM-DD).
func NewDailyLedger(date string) *DailyLedger {
	return &DailyLedger{
		Date:            date,
		ItemsSold:       map[string]int{},
		HourlyBreakdown: map[string]float64{},
		Orders:          []OrderSnapshot{},
	}
}

// Record appends a finalized-order snapshot and updates the running totals,
// per-item counts and hourly revenue bucket in the same operation.
func (l *DailyLedger) Record(snap OrderSnapshot) {
	if l.ItemsSold == nil {
		l.ItemsSold = map[string]int{}
	}
	if l.HourlyBreakdown == nil {
		l.HourlyBreakdown = map[string]float64{}
	}

	l.TotalSales += snap.TotalAmount
	l.TotalOrders++

	for _, item := range snap.Items {
		l.ItemsSold[item.Name] += item.Quantity
	}

	l.HourlyBreakdown[snap.HourBucket()] += snap.TotalAmount
	l.Orders = append(l.Orders, snap)
}

// RemoveOrder retracts the snapshot at index, reversing its contribution to
// the summary fields. An item or hour bucket whose running value drops to
// zero or below is deleted rather than floored; a later re-addition starts
// the bucket fresh.
func (l *DailyLedger) RemoveOrder(index int) (OrderSnapshot, error) {
	if index < 0 || index >= len(l.Orders) {
		return OrderSnapshot{}, apperror.NewNotFoundError("Order")
	}
	removed := l.Orders[index]

	l.TotalSales -= removed.TotalAmount
	l.TotalOrders--

	for _, item := range removed.Items {
		if _, ok := l.ItemsSold[item.Name]; ok {
			l.ItemsSold[item.Name] -= item.Quantity
			if l.ItemsSold[item.Name] <= 0 {
				delete(l.ItemsSold, item.Name)
			}
		}
	}

	hour := removed.HourBucket()
	if _, ok := l.HourlyBreakdown[hour]; ok {
		l.HourlyBreakdown[hour] -= removed.TotalAmount
		if l.HourlyBreakdown[hour] <= 0 {
			delete(l.HourlyBreakdown, hour)
		}
	}

	l.Orders = append(l.Orders[:index], l.Orders[index+1:]...)
	return removed, nil
}
