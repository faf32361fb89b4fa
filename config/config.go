package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Kiosk   KioskConfig
	Catalog CatalogConfig
}

type KioskConfig struct {
	Location     string // label shown in the menu header
	PerItemLimit int    // max units of one menu item per cart
	OTPCode      string // fixed acceptance code for the login stub
}

type CatalogConfig struct {
	MenuPath string // optional YAML menu seed; empty uses the embedded menu
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	limit, err := strconv.Atoi(getEnv("PER_ITEM_LIMIT", "5"))
	if err != nil || limit < 1 {
		limit = 5
	}

	return &Config{
		Kiosk: KioskConfig{
			Location:     getEnv("KIOSK_LOCATION", "Nexus Tower Kiosk"),
			PerItemLimit: limit,
			OTPCode:      getEnv("OTP_CODE", "123456"),
		},
		Catalog: CatalogConfig{
			MenuPath: getEnv("MENU_PATH", ""),
		},
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
