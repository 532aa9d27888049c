package domain

import "time"

// Transaction Model
type Transaction struct {
	ID            uint      `gorm:"primaryKey" json:"id"`           // Primary key
	CardID        uint      `gorm:"index;not null" json:"card_id"`  // Foreign key to the source Card
	DestinationID uint      `gorm:"not null" json:"destination_id"` // Foreign key to the destination Card
	Amount        int64     `gorm:"not null" json:"amount"`         // Debited amount, fee included
	CreatedAt     time.Time `gorm:"index" json:"created_at"`        // Timestamp of creation
}

// UserActivity is one leaderboard row: a user and their recent transactions
type UserActivity struct {
	User             User          `json:"user"`
	TransactionCount int64         `json:"transaction_count"`
	Transactions     []Transaction `json:"transactions"`
}

// Leaderboard is a computed top users list and the instant it stops being exact
type Leaderboard struct {
	TopUsers   []UserActivity `json:"top_users"`   // Ranked users
	ComputedAt time.Time      `json:"computed_at"` // Reporter clock at computation
	ValidUntil time.Time      `json:"valid_until"` // First counted transaction leaves the window; zero if none
}

// Expired reports whether the leaderboard no longer matches a window starting at since
func (l *Leaderboard) Expired(now, since time.Time) bool {
	if !l.ValidUntil.IsZero() && now.After(l.ValidUntil) {
		return true
	}
	for _, activity := range l.TopUsers {
		for _, tx := range activity.Transactions {
			if tx.CreatedAt.Before(since) {
				return true
			}
		}
	}
	return false
}
