package request

// CreateTableRequest creates an ad-hoc order with an optional explicit name.
// When Name is empty the server assigns the next "Table N" name.
type CreateTableRequest struct {
	Name string `json:"name"`
}

// AddItemRequest adds a line to an open order.
type AddItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// UpdateQuantityRequest sets the quantity on an existing line. Pointer so a
// missing field is distinguishable from an explicit zero; zero or below
// removes the line.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// UpdatePriceRequest sets the unit price on an existing line.
type UpdatePriceRequest struct {
	Price *float64 `json:"price" binding:"required"`
}
