package main

import (
	"log"

	"github.com/contask-dev/contask/internal/config"
	"github.com/contask-dev/contask/internal/database"
	"github.com/contask-dev/contask/internal/router"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	if cfg.DatabaseURL == "" || cfg.JWTSecret == "" {
		log.Fatal("DATABASE_URL and JWT_SECRET must be set")
	}

	db, err := database.Connect(cfg.DBDriver, cfg.DatabaseURL)

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	r := router.New(router.Dependencies{DB: db, JWTSecret: cfg.JWTSecret})

	log.Printf("Listening on :%s", cfg.Port)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
