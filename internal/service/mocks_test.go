package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"card_transfer/internal/domain"
	"card_transfer/internal/store"
)

// MockLedger implements service.CardLedger and service.ActivityStore
type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) CardByNumber(ctx context.Context, number string) (*domain.Card, error) {
	args := m.Called(ctx, number)
	card, _ := args.Get(0).(*domain.Card)
	return card, args.Error(1)
}

func (m *MockLedger) Debit(ctx context.Context, sourceID, destinationID uint, amount int64) (*domain.Transaction, error) {
	args := m.Called(ctx, sourceID, destinationID, amount)
	tx, _ := args.Get(0).(*domain.Transaction)
	return tx, args.Error(1)
}

func (m *MockLedger) TopActivity(ctx context.Context, since time.Time, limit int) ([]store.ActivityCount, error) {
	args := m.Called(ctx, since, limit)
	counts, _ := args.Get(0).([]store.ActivityCount)
	return counts, args.Error(1)
}

func (m *MockLedger) TransactionsForUser(ctx context.Context, userID uint, since time.Time, limit int) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, since, limit)
	txs, _ := args.Get(0).([]domain.Transaction)
	return txs, args.Error(1)
}

func (m *MockLedger) UsersByIDs(ctx context.Context, ids []uint) ([]domain.User, error) {
	args := m.Called(ctx, ids)
	users, _ := args.Get(0).([]domain.User)
	return users, args.Error(1)
}

// MockCache implements service.LeaderboardCache
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context) (*domain.Leaderboard, bool, error) {
	args := m.Called(ctx)
	board, _ := args.Get(0).(*domain.Leaderboard)
	return board, args.Bool(1), args.Error(2)
}

func (m *MockCache) Set(ctx context.Context, board *domain.Leaderboard) error {
	return m.Called(ctx, board).Error(0)
}

func (m *MockCache) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockPublisher implements service.TransferPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishTransfer(ctx context.Context, tx *domain.Transaction) error {
	return m.Called(ctx, tx).Error(0)
}
