package main

import (
	"flag" // Command line flags

	"card_transfer/internal/config" // Custom import path (Config)
	"card_transfer/internal/db"     // Custom import path (Database)

	"github.com/sirupsen/logrus" // Logging library
)

// Main entry point for demo data seeding
func main() {
	opts := db.DefaultSeedOptions()
	flag.IntVar(&opts.Users, "users", opts.Users, "number of users")
	flag.IntVar(&opts.AccountsPerUser, "accounts", opts.AccountsPerUser, "accounts per user")
	flag.IntVar(&opts.CardsPerAccount, "cards", opts.CardsPerAccount, "cards per account")
	flag.Int64Var(&opts.Balance, "balance", opts.Balance, "opening balance of every card")
	flag.StringVar(&opts.BIN, "bin", opts.BIN, "leading digits of card numbers")
	flag.Parse()

	cfg := config.LoadConfig() // Load configuration

	gdb, err := db.Connect(cfg.DSN(), false) // Open a connection to the database
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}
	users, err := db.Seed(gdb, opts)
	if err != nil {
		logrus.Fatalf("%v", err)
	}
	// Print the generated card numbers so they can be used for transfers
	for _, u := range users {
		for _, a := range u.Accounts {
			for _, c := range a.Cards {
				logrus.WithFields(logrus.Fields{
					"user":    u.Email,
					"card":    c.CardNumber,
					"balance": c.Balance,
				}).Info("Card created")
			}
		}
	}
}
