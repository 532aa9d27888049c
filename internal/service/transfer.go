package service

import (
	"context" // Context for storage calls
	"errors"  // Error matching

	"card_transfer/internal/domain"     // Importing domain models
	"card_transfer/internal/validation" // Input validation

	"github.com/sirupsen/logrus" // Logging library
)

// TransferFee is the flat fee added to every transfer, in base currency units
const TransferFee int64 = 500

// CardLedger is the storage the transfer service needs
type CardLedger interface {
	CardByNumber(ctx context.Context, number string) (*domain.Card, error)
	Debit(ctx context.Context, sourceID, destinationID uint, amount int64) (*domain.Transaction, error)
}

// TransferPublisher announces committed transfers
type TransferPublisher interface {
	PublishTransfer(ctx context.Context, tx *domain.Transaction) error
}

// TransferRequest carries the raw form values of a transfer
type TransferRequest struct {
	Source      string `json:"source" form:"source"`           // Source card number
	Destination string `json:"destination" form:"destination"` // Destination card number
	Amount      string `json:"amount" form:"amount"`           // Amount, possibly with localized digits
}

// TransferService moves money from one card to another
type TransferService interface {
	Transfer(ctx context.Context, req TransferRequest) (*domain.Transaction, error)
}

type transferService struct {
	ledger    CardLedger
	cache     LeaderboardCache
	publisher TransferPublisher
}

// NewTransferService creates a TransferService. cache and publisher may be nil.
func NewTransferService(ledger CardLedger, cache LeaderboardCache, publisher TransferPublisher) TransferService {
	return &transferService{ledger: ledger, cache: cache, publisher: publisher}
}

// Transfer validates the request, then debits the source card by the amount plus
// TransferFee and records a transaction. It fails with *domain.ValidationError,
// *domain.CardNotFoundError or domain.ErrInsufficientFunds, and otherwise only with
// infrastructure errors. Nothing is retried.
func (s *transferService) Transfer(ctx context.Context, req TransferRequest) (*domain.Transaction, error) {
	in, err := validation.ValidateTransfer(req.Source, req.Destination, req.Amount) // Normalize and validate
	if err != nil {
		return nil, err
	}

	source, err := s.findCard(ctx, "source", in.Source)
	if err != nil {
		return nil, err
	}
	destination, err := s.findCard(ctx, "destination", in.Destination)
	if err != nil {
		return nil, err
	}

	amount := in.Amount + TransferFee // Effective amount
	if source.Balance < amount {
		return nil, domain.ErrInsufficientFunds // Nothing locked or written yet
	}

	record, err := s.ledger.Debit(ctx, source.ID, destination.ID, amount) // Locked check-and-debit
	if err != nil {
		if errors.Is(err, domain.ErrCardNotFound) {
			return nil, &domain.CardNotFoundError{Field: "source", Number: in.Source} // Removed since lookup
		}
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"transaction_id": record.ID,
		"source_id":      source.ID,
		"destination_id": destination.ID,
		"amount":         amount,
	}).Info("Transfer transaction")

	s.afterCommit(ctx, record)
	return record, nil
}

func (s *transferService) findCard(ctx context.Context, field, number string) (*domain.Card, error) {
	card, err := s.ledger.CardByNumber(ctx, number)
	if errors.Is(err, domain.ErrCardNotFound) {
		return nil, &domain.CardNotFoundError{Field: field, Number: number}
	}
	return card, err
}

// afterCommit runs side effects that must not undo a committed transfer
func (s *transferService) afterCommit(ctx context.Context, record *domain.Transaction) {
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			logrus.WithError(err).Warn("Failed to invalidate leaderboard cache")
		}
	}
	if s.publisher != nil {
		if err := s.publisher.PublishTransfer(ctx, record); err != nil {
			logrus.WithError(err).WithField("transaction_id", record.ID).Error("Failed to publish transfer event")
		}
	}
}
