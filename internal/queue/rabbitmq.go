package queue

import (
	"context"       // Context for cancellation
	"encoding/json" // Event encoding
	"fmt"           // Error wrapping
	"time"          // Event timestamps

	"card_transfer/internal/domain" // Importing domain models

	"github.com/google/uuid"    // Event IDs
	"github.com/streadway/amqp" // RabbitMQ client
)

// TransferQueue is the durable queue receiving committed transfers
const TransferQueue = "transfers"

// TransferEvent is the message body published for every committed transfer
type TransferEvent struct {
	EventID       string    `json:"event_id"`       // Unique per publish
	Type          string    `json:"type"`           // Always transfer.completed
	TransactionID uint      `json:"transaction_id"` // Recorded transaction
	CardID        uint      `json:"card_id"`        // Source card
	DestinationID uint      `json:"destination_id"` // Destination card
	Amount        int64     `json:"amount"`         // Debited amount, fee included
	CreatedAt     time.Time `json:"created_at"`     // Transaction timestamp
}

// NewTransferEvent builds the event for a committed transaction
func NewTransferEvent(tx *domain.Transaction) TransferEvent {
	return TransferEvent{
		EventID:       uuid.NewString(),
		Type:          "transfer.completed",
		TransactionID: tx.ID,
		CardID:        tx.CardID,
		DestinationID: tx.DestinationID,
		Amount:        tx.Amount,
		CreatedAt:     tx.CreatedAt,
	}
}

// Channel is the subset of *amqp.Channel the publisher uses
type Channel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Publisher publishes transfer events to RabbitMQ
type Publisher struct {
	conn    *amqp.Connection // Nil when built with NewPublisher
	channel Channel
}

// NewPublisher wraps an already open channel
func NewPublisher(ch Channel) *Publisher {
	return &Publisher{channel: ch}
}

// Dial connects to RabbitMQ and declares the transfer queue
func Dial(uri string) (*Publisher, error) {
	conn, err := amqp.Dial(uri) // Connect to RabbitMQ
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel() // Open a channel
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}
	if _, err := ch.QueueDeclare(
		TransferQueue, // name
		true,          // durable
		false,         // delete when unused
		false,         // exclusive
		false,         // no-wait
		nil,           // arguments
	); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare a queue: %w", err)
	}

	return &Publisher{conn: conn, channel: ch}, nil
}

// Close closes the channel and connection opened by Dial
func (p *Publisher) Close() error {
	if p.conn == nil {
		return nil
	}
	if ch, ok := p.channel.(*amqp.Channel); ok {
		if err := ch.Close(); err != nil {
			return err
		}
	}
	return p.conn.Close()
}

// PublishTransfer publishes a transfer.completed event for tx
func (p *Publisher) PublishTransfer(ctx context.Context, tx *domain.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err // Request already gone
	}
	event := NewTransferEvent(tx)
	body, err := json.Marshal(event) // Encode event as JSON
	if err != nil {
		return fmt.Errorf("failed to marshal transfer event: %w", err)
	}

	err = p.channel.Publish(
		"",            // exchange
		TransferQueue, // routing key
		false,         // mandatory
		false,         // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    event.EventID,
			Type:         event.Type,
			Timestamp:    time.Now(),
			Body:         body,
			DeliveryMode: amqp.Persistent, // Survive broker restarts
		})
	if err != nil {
		return fmt.Errorf("failed to publish a message: %w", err)
	}
	return nil
}
