package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SscSPs/my_bank_api/internal/core/domain"
	portssvc "github.com/SscSPs/my_bank_api/internal/core/ports/services"
	amqp "github.com/rabbitmq/amqp091-go"
)

// RabbitMQPublisher publishes ledger events to a topic exchange. A channel or
// connection closed by the broker is reopened on the next publish.
type RabbitMQPublisher struct {
	url      string
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	logger   *slog.Logger
	mu       sync.Mutex
}

var _ portssvc.EventPublisher = (*RabbitMQPublisher)(nil)

// NewRabbitMQPublisher connects to url and declares exchange as a durable topic exchange.
func NewRabbitMQPublisher(url, exchange string, logger *slog.Logger) (*RabbitMQPublisher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	p := &RabbitMQPublisher{
		url:      url,
		exchange: exchange,
		logger:   logger,
	}
	if err := p.connect(); err != nil {
		if p.conn != nil {
			p.conn.Close()
		}
		return nil, err
	}

	logger.Info("RabbitMQ publisher initialized", slog.String("exchange", exchange))
	return p, nil
}

// connect dials the broker when the connection is gone and opens a fresh
// channel with the exchange declared. Callers hold p.mu, except the constructor.
func (p *RabbitMQPublisher) connect() error {
	if p.conn == nil || p.conn.IsClosed() {
		conn, err := amqp.Dial(p.url)
		if err != nil {
			return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
		}
		p.conn = conn
	}

	channel, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		p.exchange, // name
		"topic",    // type
		true,       // durable
		false,      // auto-deleted
		false,      // internal
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		channel.Close()
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	p.channel = channel
	return nil
}

// ensureChannel reopens the channel, and the connection if needed, after the
// broker closed them.
func (p *RabbitMQPublisher) ensureChannel() error {
	if p.channel != nil && !p.channel.IsClosed() && p.conn != nil && !p.conn.IsClosed() {
		return nil
	}
	p.logger.Warn("RabbitMQ channel closed, reconnecting", slog.String("exchange", p.exchange))
	return p.connect()
}

// PublishLedgerEvent serialises event as JSON and publishes it under its routing key.
func (p *RabbitMQPublisher) PublishLedgerEvent(ctx context.Context, event domain.LedgerEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// amqp channels must not be shared by concurrent publishers
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ensureChannel(); err != nil {
		return err
	}

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,         // exchange
		event.RoutingKey(), // routing key
		false,              // mandatory
		false,              // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    event.EventID,
			Timestamp:    event.OccurredAt,
			Type:         string(event.Type),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	p.logger.Debug("Ledger event published",
		slog.String("event_id", event.EventID),
		slog.String("routing_key", event.RoutingKey()))
	return nil
}

// Close closes the channel and the connection.
func (p *RabbitMQPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil {
		return nil
	}
	if p.channel != nil && !p.channel.IsClosed() {
		if err := p.channel.Close(); err != nil {
			p.conn.Close()
			return fmt.Errorf("failed to close channel: %w", err)
		}
	}
	if p.conn.IsClosed() {
		return nil
	}
	return p.conn.Close()
}

// NoopPublisher drops every event. It is used when no broker is configured.
type NoopPublisher struct{}

var _ portssvc.EventPublisher = NoopPublisher{}

func (NoopPublisher) PublishLedgerEvent(context.Context, domain.LedgerEvent) error { return nil }
