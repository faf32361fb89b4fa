package main

import (
	"fmt"
	"os"

	"foodhub-kiosk/catalog"
	"foodhub-kiosk/config"
	"foodhub-kiosk/kiosk"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	menu, err := catalog.Load(cfg.Catalog.MenuPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "catalog:", err)
		os.Exit(1)
	}

	k := kiosk.New(cfg, menu)
	if err := k.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "kiosk:", err)
		os.Exit(1)
	}
}
