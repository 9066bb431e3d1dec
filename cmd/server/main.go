package main

import (
	"log"

	"github.com/joho/godotenv"

	"gstinvoice/internal/config"
	"gstinvoice/ui"
)

func main() {
	// .env is optional; environment variables win either way.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	server, err := ui.NewServer(cfg)
	if err != nil {
		log.Fatal("Failed to create server:", err)
	}

	log.Fatal(server.Start())
}
