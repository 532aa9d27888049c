package service

import (
	"context" // Context for storage and cache calls
	"fmt"     // Error wrapping
	"time"    // Activity window

	"card_transfer/internal/domain" // Importing domain models
	"card_transfer/internal/store"  // Activity counts

	"github.com/sirupsen/logrus" // Logging library
)

// Leaderboard defaults
const (
	ActivityWindow      = 10 * time.Minute // Trailing window of counted transactions
	TopUsersLimit       = 3                // Users on the leaderboard
	TransactionsPerUser = 10               // Transactions listed per user
)

// ActivityStore is the storage the reporter needs
type ActivityStore interface {
	TopActivity(ctx context.Context, since time.Time, limit int) ([]store.ActivityCount, error)
	TransactionsForUser(ctx context.Context, userID uint, since time.Time, limit int) ([]domain.Transaction, error)
	UsersByIDs(ctx context.Context, ids []uint) ([]domain.User, error)
}

// LeaderboardCache holds the last computed leaderboard
type LeaderboardCache interface {
	Get(ctx context.Context) (*domain.Leaderboard, bool, error)
	Set(ctx context.Context, board *domain.Leaderboard) error
	Invalidate(ctx context.Context) error
}

// Reporter lists the most active users
type Reporter interface {
	// TopUsers returns the leaderboard and whether it was served from cache
	TopUsers(ctx context.Context) ([]domain.UserActivity, bool, error)
}

type reporter struct {
	store ActivityStore
	cache LeaderboardCache
	now   func() time.Time
}

// ReporterOption customizes a Reporter
type ReporterOption func(*reporter)

// WithClock overrides the reporter's time source
func WithClock(now func() time.Time) ReporterOption {
	return func(r *reporter) { r.now = now }
}

// WithCache serves the leaderboard through cache
func WithCache(cache LeaderboardCache) ReporterOption {
	return func(r *reporter) { r.cache = cache }
}

// NewReporter creates a Reporter on top of an ActivityStore
func NewReporter(s ActivityStore, opts ...ReporterOption) Reporter {
	r := &reporter{store: s, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *reporter) TopUsers(ctx context.Context) ([]domain.UserActivity, bool, error) {
	now := r.now()
	since := now.Add(-ActivityWindow) // Start of the trailing window

	if r.cache != nil {
		board, found, err := r.cache.Get(ctx) // Try cache first
		switch {
		case err != nil:
			logrus.WithError(err).Warn("Leaderboard cache read failed")
		case found && !board.Expired(now, since):
			return board.TopUsers, true, nil // Cached leaderboard still exact
		}
	}

	board, err := r.compute(ctx, now, since) // Load from database
	if err != nil {
		return nil, false, err
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, board); err != nil {
			logrus.WithError(err).Warn("Leaderboard cache write failed")
		}
	}
	return board.TopUsers, false, nil
}

func (r *reporter) compute(ctx context.Context, now, since time.Time) (*domain.Leaderboard, error) {
	board := &domain.Leaderboard{TopUsers: []domain.UserActivity{}, ComputedAt: now}

	counts, err := r.store.TopActivity(ctx, since, TopUsersLimit)
	if err != nil {
		return nil, err
	}
	if len(counts) == 0 {
		return board, nil
	}

	ids := make([]uint, len(counts))
	for i, c := range counts {
		ids[i] = c.UserID
		// The board stays exact until its oldest counted transaction leaves the window
		if c.Oldest != nil {
			until := c.Oldest.Add(ActivityWindow)
			if board.ValidUntil.IsZero() || until.Before(board.ValidUntil) {
				board.ValidUntil = until
			}
		}
	}
	users, err := r.store.UsersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]domain.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	for _, c := range counts {
		user, ok := byID[c.UserID]
		if !ok {
			return nil, fmt.Errorf("leaderboard user %d not loaded", c.UserID)
		}
		txs, err := r.store.TransactionsForUser(ctx, c.UserID, since, TransactionsPerUser)
		if err != nil {
			return nil, err
		}
		if txs == nil {
			txs = []domain.Transaction{} // Serialize as an empty list
		}
		board.TopUsers = append(board.TopUsers, domain.UserActivity{User: user, TransactionCount: c.TxCount, Transactions: txs})
	}
	return board, nil
}
