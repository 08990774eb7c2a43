package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Addr         string
	AllowOrigins string

	InventoryFile string
	InvoiceDir    string

	ShippingFee decimal.Decimal
	// StrictStock rejects sales that would drive quantity below zero.
	// Off by default, matching the original behavior.
	StrictStock bool

	JWTSecret string
	AdminUser string
	AdminPass string

	ShopName    string
	ShopAddress string
	ShopPhone   string

	Production bool
}

// Load reads .env when present and builds the config from the environment.
func Load() Config {
	_ = godotenv.Load()

	shipping, err := decimal.NewFromString(getEnv("WECARE_SHIPPING_FEE", "500"))
	if err != nil {
		shipping = decimal.NewFromInt(500)
	}

	return Config{
		Addr:          getEnv("WECARE_ADDR", ":8080"),
		AllowOrigins:  getEnv("ALLOW_ORIGINS", "http://127.0.0.1:5500,http://localhost:5500,http://localhost:3000"),
		InventoryFile: getEnv("WECARE_INVENTORY_FILE", "inventory.txt"),
		InvoiceDir:    getEnv("WECARE_INVOICE_DIR", "."),
		ShippingFee:   shipping,
		StrictStock:   getEnv("WECARE_STRICT_STOCK", "false") == "true",
		JWTSecret:     getEnv("WECARE_JWT_SECRET", "wecare-secret-key"),
		AdminUser:     getEnv("WECARE_ADMIN_USER", "admin"),
		AdminPass:     getEnv("WECARE_ADMIN_PASS", "admin"),
		ShopName:      getEnv("WECARE_SHOP_NAME", "WeCare BEAUTY PRODUCTS"),
		ShopAddress:   getEnv("WECARE_SHOP_ADDRESS", "Kamalpokhari, Kathmandu"),
		ShopPhone:     getEnv("WECARE_SHOP_PHONE", "9811112255"),
		Production:    getEnv("WECARE_ENV", "dev") == "production",
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
