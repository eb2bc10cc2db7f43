package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/bakehouse/counter-api/internal/application/service"
	"github.com/bakehouse/counter-api/internal/domain/repository"
	"github.com/bakehouse/counter-api/internal/presentation/http/dto/request"
	"github.com/bakehouse/counter-api/internal/presentation/http/dto/response"
	"github.com/bakehouse/counter-api/pkg/utils"
)

// AdminHandler handles the admin session exchange and store maintenance.
type AdminHandler struct {
	passphrase   service.Authorizer
	tokenManager *utils.AdminTokenManager
	tableStore   repository.TableStore
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(passphrase service.Authorizer, tokenManager *utils.AdminTokenManager, tableStore repository.TableStore) *AdminHandler {
	return &AdminHandler{
		passphrase:   passphrase,
		tokenManager: tokenManager,
		tableStore:   tableStore,
	}
}

// Login exchanges the admin passphrase for a short-lived session token.
func (h *AdminHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	if err := h.passphrase.Authorize(service.ActionRemoveLedgerOrder, req.Passphrase); err != nil {
		response.Error(c, err)
		return
	}

	token, err := h.tokenManager.Issue()
	if err != nil {
		response.InternalServerError(c, "Failed to issue admin token")
		return
	}
	response.OK(c, "Admin session started", gin.H{"token": token})
}

// Backup writes a timestamped copy of the order book store and returns its
// path.
func (h *AdminHandler) Backup(c *gin.Context) {
	path, err := h.tableStore.Backup("")
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Backup created", gin.H{"path": path})
}
