package db

import (
	"crypto/rand" // Random card number bodies
	"fmt"         // Formatting
	"math/big"    // Bounded random numbers

	"card_transfer/internal/domain" // Importing domain models
	"card_transfer/internal/utils"  // Luhn helpers

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// SeedOptions controls how much demo data Seed creates
type SeedOptions struct {
	Users           int    // Number of users
	AccountsPerUser int    // Accounts per user
	CardsPerAccount int    // Cards per account
	Balance         int64  // Opening balance of every card
	BIN             string // Leading digits of every card number
}

// DefaultSeedOptions returns a small demo data set
func DefaultSeedOptions() SeedOptions {
	return SeedOptions{Users: 5, AccountsPerUser: 1, CardsPerAccount: 2, Balance: 1_000_000, BIN: "603799"}
}

// Seed creates users with accounts and Luhn-valid cards in a single database transaction
func Seed(db *gorm.DB, opts SeedOptions) ([]domain.User, error) {
	users := make([]domain.User, 0, opts.Users)
	for i := 1; i <= opts.Users; i++ {
		user := domain.User{
			Name:  fmt.Sprintf("User %d", i),
			Email: fmt.Sprintf("user%d@example.com", i),
		}
		for a := 0; a < opts.AccountsPerUser; a++ {
			var account domain.Account
			for c := 0; c < opts.CardsPerAccount; c++ {
				number, err := GenerateCardNumber(opts.BIN)
				if err != nil {
					return nil, err
				}
				account.Cards = append(account.Cards, domain.Card{CardNumber: number, Balance: opts.Balance})
			}
			user.Accounts = append(user.Accounts, account)
		}
		users = append(users, user)
	}

	// Nested associations are created along with each user
	if err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&users).Error
	}); err != nil {
		return nil, fmt.Errorf("seed failed: %w", err)
	}
	logrus.WithField("users", len(users)).Info("Seed completed.")
	return users, nil
}

// GenerateCardNumber returns a random 16-digit card number starting with bin whose last
// digit is the Luhn check digit
func GenerateCardNumber(bin string) (string, error) {
	if !utils.IsDigits(bin) || len(bin) >= domain.CardNumberLength {
		return "", fmt.Errorf("invalid bin %q", bin)
	}
	body := []byte(bin)
	for len(body) < domain.CardNumberLength-1 {
		d, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("random digit: %w", err)
		}
		body = append(body, byte('0'+d.Int64()))
	}
	return string(body) + string(utils.LuhnCheckDigit(string(body))), nil
}
