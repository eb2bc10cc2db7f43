package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/bakehouse/counter-api/internal/application/service"
	"github.com/bakehouse/counter-api/internal/presentation/http/dto/response"
)

// MenuHandler serves the item catalog the ordering grid offers.
type MenuHandler struct {
	menuService *service.MenuService
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// GetCatalog returns the merged item catalog.
func (h *MenuHandler) GetCatalog(c *gin.Context) {
	response.OK(c, "Menu retrieved", gin.H{"items": h.menuService.LoadCatalog()})
}
