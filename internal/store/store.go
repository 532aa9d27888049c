package store

import (
	"context" // Context for cancellation
	"errors"  // Error matching
	"fmt"     // Error wrapping
	"time"    // Activity window

	"card_transfer/internal/domain" // Importing domain models

	"gorm.io/gorm"        // GORM ORM library
	"gorm.io/gorm/clause" // Row locking clauses
)

// Store is the gorm-backed card ledger
type Store struct {
	db *gorm.DB
}

// New creates a Store on top of an open gorm connection
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// CardByNumber looks a card up by its unique card number
func (s *Store) CardByNumber(ctx context.Context, number string) (*domain.Card, error) {
	var card domain.Card
	if err := s.db.WithContext(ctx).Where("card_number = ?", number).First(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCardNotFound
		}
		return nil, fmt.Errorf("find card: %w", err)
	}
	return &card, nil
}

// Debit subtracts amount from the source card and records the transaction in one
// database transaction. The source row is locked for the whole check-and-debit.
func (s *Store) Debit(ctx context.Context, sourceID, destinationID uint, amount int64) (*domain.Transaction, error) {
	var record domain.Transaction
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var card domain.Card
		// SELECT ... FOR UPDATE on the source card
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&card, sourceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrCardNotFound
			}
			return fmt.Errorf("lock source card: %w", err)
		}
		// Balance may have moved since the caller's pre-check
		if card.Balance < amount {
			return domain.ErrInsufficientFunds
		}
		if err := tx.Model(&card).Update("balance", gorm.Expr("balance - ?", amount)).Error; err != nil {
			return fmt.Errorf("debit source card: %w", err)
		}
		record = domain.Transaction{
			CardID:        card.ID,       // Source card
			DestinationID: destinationID, // Destination card
			Amount:        amount,        // Fee included
		}
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("create transaction: %w", err)
		}
		return nil // Commit transaction
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ActivityCount is the number of transactions a user made since some point in time
type ActivityCount struct {
	UserID  uint       `gorm:"column:user_id"`  // User
	TxCount int64      `gorm:"column:tx_count"` // Transactions in the window
	Oldest  *time.Time `gorm:"column:oldest"`   // Oldest counted transaction; nil when none
}

// TopActivity counts every user's outgoing transactions created at or after since and
// returns the limit highest counts, ties broken by user id ascending. Users without
// transactions are counted as zero.
func (s *Store) TopActivity(ctx context.Context, since time.Time, limit int) ([]ActivityCount, error) {
	var rows []ActivityCount
	err := s.db.WithContext(ctx).
		Table("users").
		Select("users.id AS user_id, COUNT(transactions.id) AS tx_count, MIN(transactions.created_at) AS oldest").
		Joins("LEFT JOIN accounts ON accounts.user_id = users.id").
		Joins("LEFT JOIN cards ON cards.account_id = accounts.id").
		Joins("LEFT JOIN transactions ON transactions.card_id = cards.id AND transactions.created_at >= ?", since).
		Group("users.id").
		Order("tx_count DESC, users.id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count user activity: %w", err)
	}
	return rows, nil
}

// TransactionsForUser returns up to limit transactions made from any card of the user
// at or after since, newest first
func (s *Store) TransactionsForUser(ctx context.Context, userID uint, since time.Time, limit int) ([]domain.Transaction, error) {
	var txs []domain.Transaction
	err := s.db.WithContext(ctx).
		Joins("JOIN cards ON cards.id = transactions.card_id").
		Joins("JOIN accounts ON accounts.id = cards.account_id").
		Where("accounts.user_id = ? AND transactions.created_at >= ?", userID, since).
		Order("transactions.created_at DESC, transactions.id DESC").
		Limit(limit).
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("list user transactions: %w", err)
	}
	return txs, nil
}

// UsersByIDs loads users by id, in no particular order
func (s *Store) UsersByIDs(ctx context.Context, ids []uint) ([]domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []domain.User
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	return users, nil
}
