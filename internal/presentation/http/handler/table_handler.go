package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bakehouse/counter-api/internal/application/service"
	"github.com/bakehouse/counter-api/internal/domain/entity"
	"github.com/bakehouse/counter-api/internal/presentation/http/dto/request"
	"github.com/bakehouse/counter-api/internal/presentation/http/dto/response"
)

// TableHandler handles table lifecycle HTTP requests.
type TableHandler struct {
	orderService   *service.OrderService
	printerService *service.PrinterService
}

// NewTableHandler creates a new table handler.
func NewTableHandler(orderService *service.OrderService, printerService *service.PrinterService) *TableHandler {
	return &TableHandler{orderService: orderService, printerService: printerService}
}

// List returns every table in the live order book, keyed by display name.
func (h *TableHandler) List(c *gin.Context) {
	response.OK(c, "Tables retrieved", gin.H{
		"tables": h.orderService.Tables(),
		"names":  h.orderService.TableNames(),
	})
}

// Create opens a new ad-hoc table using the next number from the persistent
// counter.
func (h *TableHandler) Create(c *gin.Context) {
	name, err := h.orderService.CreateTable()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Table created", gin.H{
		"name":  name,
		"table": h.orderService.GetTable(name),
	})
}

// GetOrCreateGridSlot returns the table bound to a fixed grid slot, creating
// it on first touch. Grid slots carry reserved numbers, so the counter is not
// consulted.
func (h *TableHandler) GetOrCreateGridSlot(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number < 1 {
		response.BadRequest(c, "Invalid table number")
		return
	}
	name := entity.TableDisplayName(number)
	table := h.orderService.GetOrCreateTable(name, number)
	response.OK(c, "Table retrieved", gin.H{
		"name":  name,
		"table": table,
	})
}

// Get returns one table by display name.
func (h *TableHandler) Get(c *gin.Context) {
	name := c.Param("name")
	table := h.orderService.GetTable(name)
	if table == nil {
		response.NotFound(c, name+" not found")
		return
	}
	response.OK(c, "Table retrieved", gin.H{"table": table})
}

// Delete removes a table from the live book. Sales already recorded in the
// daily ledger are untouched.
func (h *TableHandler) Delete(c *gin.Context) {
	name := c.Param("name")
	if !h.orderService.DeleteTable(name) {
		response.NotFound(c, name+" not found")
		return
	}
	response.OK(c, "Table cleared", nil)
}

// ClearFinalized removes every finalized table from the live book.
func (h *TableHandler) ClearFinalized(c *gin.Context) {
	cleared := h.orderService.ClearAllFinalized()
	response.OK(c, "Finalized tables cleared", gin.H{"cleared": cleared})
}

// AddItem adds an order line to a table. An existing line with the same item
// name accumulates quantity instead.
func (h *TableHandler) AddItem(c *gin.Context) {
	name := c.Param("name")

	var req request.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if err := h.orderService.AddItemToTable(name, req.Name, req.Price, req.Quantity); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item added", gin.H{"table": h.orderService.GetTable(name)})
}

// RemoveItem removes the order line at index.
func (h *TableHandler) RemoveItem(c *gin.Context) {
	name := c.Param("name")
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.BadRequest(c, "Invalid item index")
		return
	}

	if err := h.orderService.RemoveItemFromTable(name, index); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item removed", gin.H{"table": h.orderService.GetTable(name)})
}

// UpdateQuantity sets the quantity on an order line; zero or below removes
// the line.
func (h *TableHandler) UpdateQuantity(c *gin.Context) {
	name := c.Param("name")
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.BadRequest(c, "Invalid item index")
		return
	}

	var req request.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	if err := h.orderService.UpdateItemQuantity(name, index, *req.Quantity); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Quantity updated", gin.H{"table": h.orderService.GetTable(name)})
}

// UpdatePrice sets the unit price on an order line.
func (h *TableHandler) UpdatePrice(c *gin.Context) {
	name := c.Param("name")
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.BadRequest(c, "Invalid item index")
		return
	}

	var req request.UpdatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	if err := h.orderService.UpdateItemPrice(name, index, *req.Price); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Price updated", gin.H{"table": h.orderService.GetTable(name)})
}

// Finalize closes the bill and records it in the daily sales ledger.
func (h *TableHandler) Finalize(c *gin.Context) {
	name := c.Param("name")
	snap, err := h.orderService.FinalizeTable(name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Table finalized", gin.H{"order": snap})
}

// PrintReceipt prints the receipt for a finalized table.
func (h *TableHandler) PrintReceipt(c *gin.Context) {
	name := c.Param("name")
	table := h.orderService.GetTable(name)
	if table == nil {
		response.NotFound(c, name+" not found")
		return
	}
	if table.IsActive {
		response.ErrorWithCode(c, http.StatusConflict, "Table is not finalized")
		return
	}

	receipt, err := h.printerService.PrintSnapshot(table.Snapshot())
	if err != nil {
		// Return the composed receipt so the terminal can fall back to
		// on-screen display.
		response.OK(c, "Receipt generated but printing failed", gin.H{
			"receipt": receipt,
			"warning": err.Error(),
		})
		return
	}
	response.OK(c, "Receipt printed", gin.H{"receipt": receipt})
}

// Summary returns the live order book totals.
func (h *TableHandler) Summary(c *gin.Context) {
	response.OK(c, "Summary retrieved", h.orderService.Summary())
}
