package main

import (
	"card_transfer/internal/config" // Custom import path (Config)
	"card_transfer/internal/db"     // Custom import path (Database)

	"github.com/sirupsen/logrus" // Logging library
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration

	gdb, err := db.Connect(cfg.DSN(), false) // Open a connection to the database
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		logrus.Fatalf("%v", err)
	}
}
