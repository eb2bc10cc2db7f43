package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bakehouse/counter-api/internal/application/service"
	"github.com/bakehouse/counter-api/internal/presentation/http/dto/request"
	"github.com/bakehouse/counter-api/internal/presentation/http/dto/response"
	"github.com/bakehouse/counter-api/internal/presentation/http/middleware"
)

// LedgerHandler handles daily sales report and removal audit requests.
type LedgerHandler struct {
	ledgerService *service.LedgerService
}

// NewLedgerHandler creates a new ledger handler.
func NewLedgerHandler(ledgerService *service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// GetReport returns the sales ledger for a date (YYYY-MM-DD). "today" is
// accepted as a shortcut.
func (h *LedgerHandler) GetReport(c *gin.Context) {
	date := c.Param("date")
	if date == "today" {
		date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	ledger, err := h.ledgerService.Report(date)
	if err != nil {
		response.Error(c, err)
		return
	}
	if ledger == nil {
		response.NotFound(c, "No sales recorded for "+date)
		return
	}
	response.OK(c, "Sales report retrieved", ledger)
}

// RemoveOrder retracts a finalized order from a day's ledger. The admin
// session token validated by the middleware is re-checked by the service's
// authorization gate before any mutation.
func (h *LedgerHandler) RemoveOrder(c *gin.Context) {
	date := c.Param("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.BadRequest(c, "Invalid order index")
		return
	}

	var req request.RemoveOrderRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Invalid request: "+err.Error())
			return
		}
	}

	removed, err := h.ledgerService.Remove(date, index, req.Reason, middleware.GetAdminToken(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order removed from sales record", gin.H{"removed": removed})
}

// GetAuditLog returns every recorded removal, oldest first.
func (h *LedgerHandler) GetAuditLog(c *gin.Context) {
	entries, err := h.ledgerService.AuditLog()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Removal audit log retrieved", gin.H{"removals": entries})
}
