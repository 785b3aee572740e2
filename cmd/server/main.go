package main

import (
	"log"
	"os"

	"github.com/NhatNguyen1502/ecommerce-services/internal/app"
	"github.com/NhatNguyen1502/ecommerce-services/internal/config"
)

func main() {
	cfg := config.Load(os.Getenv("CONFIG_PATH"))

	server, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("failed to init app: %v", err)
	}

	if err := server.Run(":" + cfg.HTTP.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
