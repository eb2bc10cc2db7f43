package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/bakehouse/counter-api/internal/application/service"
	"github.com/bakehouse/counter-api/internal/config"
	"github.com/bakehouse/counter-api/internal/domain/entity"
	"github.com/bakehouse/counter-api/internal/infrastructure/storage"
	"github.com/bakehouse/counter-api/internal/presentation/http/handler"
	"github.com/bakehouse/counter-api/internal/presentation/http/routes"
	"github.com/bakehouse/counter-api/pkg/printer"
	"github.com/bakehouse/counter-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize JSON document stores
	tableStore, err := storage.NewJSONTableStore(cfg.Store.DataDir)
	if err != nil {
		log.Fatalf("Failed to initialize order book store: %v", err)
	}
	ledgerStore, err := storage.NewJSONLedgerStore(cfg.Store.DataDir)
	if err != nil {
		log.Fatalf("Failed to initialize sales ledger store: %v", err)
	}
	auditStore, err := storage.NewJSONAuditStore(cfg.Store.DataDir)
	if err != nil {
		log.Fatalf("Failed to initialize removal audit store: %v", err)
	}

	// Initialize admin session tokens. Destructive ledger edits require a
	// token obtained by exchanging the admin passphrase.
	tokenManager := utils.NewAdminTokenManager(cfg.Admin.TokenSecret, cfg.Admin.TokenExpiry)
	passphraseGate := service.NewPassphraseAuthorizer(cfg.Admin.Passphrase)
	tokenGate := service.NewTokenAuthorizer(tokenManager)

	// Initialize services
	ledgerService := service.NewLedgerService(ledgerStore, auditStore, tokenGate)
	orderService := service.NewOrderService(tableStore, ledgerService)
	menuService := service.NewMenuService(cfg.Store.MenuDir)

	// Initialize thermal printer
	thermalPrinter, err := printer.New(cfg.Printer.Type, cfg.Printer.Target)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(thermalPrinter, cfg.Printer.Type, service.ReceiptOptions{
		Header: entity.ReceiptHeader{
			StoreName: cfg.Receipt.StoreName,
			Address:   cfg.Receipt.Address,
			Phone:     cfg.Receipt.Phone,
			GSTNumber: cfg.Receipt.GSTNumber,
		},
		CharWidth:    cfg.Printer.CharWidth,
		ShowHeader:   cfg.Receipt.ShowHeader,
		ShowFooter:   cfg.Receipt.ShowFooter,
		ShowGST:      cfg.Receipt.ShowGST,
		ShowDatetime: cfg.Receipt.ShowDatetime,
	})

	// Initialize handlers
	h := &routes.Handlers{
		Table:   handler.NewTableHandler(orderService, printerService),
		Ledger:  handler.NewLedgerHandler(ledgerService),
		Menu:    handler.NewMenuHandler(menuService),
		Printer: handler.NewPrinterHandler(printerService),
		Admin:   handler.NewAdminHandler(passphraseGate, tokenManager, tableStore),
	}

	// Setup router
	router := routes.Setup(h, &routes.Deps{
		TokenManager: tokenManager,
		Cfg:          cfg,
	})

	// Start server
	port := cfg.App.Port
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s on port %s (env: %s)", cfg.App.Name, port, cfg.App.Env)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
