package entity

// ReceiptHeader holds the business header printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	GSTNumber string `json:"gst_number,omitempty"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// Receipt is a value object representing a printable bill. It is composed
// from a finalized-order snapshot at print time and never persisted.
type Receipt struct {
	Header      ReceiptHeader `json:"header"`
	TableName   string        `json:"table_name"`
	TableNumber int           `json:"table_number"`
	Date        string        `json:"date"`
	Items       []ReceiptItem `json:"items"`
	Total       float64       `json:"total"`
}

// ReceiptFromSnapshot composes a printable receipt from a finalized order.
func ReceiptFromSnapshot(header ReceiptHeader, snap OrderSnapshot) *Receipt {
	items := make([]ReceiptItem, len(snap.Items))
	for i, it := range snap.Items {
		items[i] = ReceiptItem{
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.Price,
			Total:     it.Total(),
		}
	}
	return &Receipt{
		Header:      header,
		TableName:   snap.TableName,
		TableNumber: snap.TableNumber,
		Date:        snap.FinalizedAt.Format("02/01/2006 15:04:05"),
		Items:       items,
		Total:       snap.TotalAmount,
	}
}
