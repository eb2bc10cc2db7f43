package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Store     StoreConfig
	Admin     AdminConfig
	Printer   PrinterConfig
	Receipt   ReceiptConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type StoreConfig struct {
	DataDir string
	MenuDir string
}

type AdminConfig struct {
	// Passphrase gates destructive ledger edits. Plain text or a bcrypt
	// hash; empty disables the admin surface entirely.
	Passphrase  string
	TokenSecret string
	TokenExpiry time.Duration
}

type PrinterConfig struct {
	Type      string // usb, network, spool, or none
	Target    string // device path, TCP address, or spool directory
	CharWidth int
}

type ReceiptConfig struct {
	StoreName    string
	Address      string
	Phone        string
	GSTNumber    string
	ShowHeader   bool
	ShowFooter   bool
	ShowGST      bool
	ShowDatetime bool
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "counter-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("MENU_DIR", "./menu")
	viper.SetDefault("ADMIN_PASSPHRASE", "")
	viper.SetDefault("ADMIN_TOKEN_SECRET", "change-this-secret-in-production")
	viper.SetDefault("ADMIN_TOKEN_EXPIRY_MINUTES", 15)
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("PRINTER_TARGET", "")
	viper.SetDefault("PRINTER_CHAR_WIDTH", 32)
	viper.SetDefault("RECEIPT_STORE_NAME", "Restaurant")
	viper.SetDefault("RECEIPT_ADDRESS", "")
	viper.SetDefault("RECEIPT_PHONE", "")
	viper.SetDefault("RECEIPT_GST_NUMBER", "")
	viper.SetDefault("RECEIPT_SHOW_HEADER", true)
	viper.SetDefault("RECEIPT_SHOW_FOOTER", true)
	viper.SetDefault("RECEIPT_SHOW_GST", true)
	viper.SetDefault("RECEIPT_SHOW_DATETIME", true)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Store: StoreConfig{
			DataDir: viper.GetString("DATA_DIR"),
			MenuDir: viper.GetString("MENU_DIR"),
		},
		Admin: AdminConfig{
			Passphrase:  viper.GetString("ADMIN_PASSPHRASE"),
			TokenSecret: viper.GetString("ADMIN_TOKEN_SECRET"),
			TokenExpiry: time.Duration(viper.GetInt("ADMIN_TOKEN_EXPIRY_MINUTES")) * time.Minute,
		},
		Printer: PrinterConfig{
			Type:      viper.GetString("PRINTER_TYPE"),
			Target:    viper.GetString("PRINTER_TARGET"),
			CharWidth: viper.GetInt("PRINTER_CHAR_WIDTH"),
		},
		Receipt: ReceiptConfig{
			StoreName:    viper.GetString("RECEIPT_STORE_NAME"),
			Address:      viper.GetString("RECEIPT_ADDRESS"),
			Phone:        viper.GetString("RECEIPT_PHONE"),
			GSTNumber:    viper.GetString("RECEIPT_GST_NUMBER"),
			ShowHeader:   viper.GetBool("RECEIPT_SHOW_HEADER"),
			ShowFooter:   viper.GetBool("RECEIPT_SHOW_FOOTER"),
			ShowGST:      viper.GetBool("RECEIPT_SHOW_GST"),
			ShowDatetime: viper.GetBool("RECEIPT_SHOW_DATETIME"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}
