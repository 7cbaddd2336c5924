package main

import (
	"bungeoppang/internal/config" // Custom import path (Config)
	"bungeoppang/internal/db"     // Custom import path (Database)
	"bungeoppang/internal/utils"  // Custom import path (Logging)

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main entry point for migration
func main() {
	cfg, err := config.LoadConfig() // Load configuration
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}
	if err := utils.SetupLogger(cfg.IsProd, cfg.LogLevel); err != nil {
		logrus.Fatalf("failed to setup logger: %v", err)
	}

	conn, err := db.Open(cfg) // Connect to the configured database
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		logrus.Fatal("migration aborted")
	}
}
