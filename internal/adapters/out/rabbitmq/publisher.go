// Package rabbitmq publishes order events to a topic exchange. The routing key
// of each message is the event name, e.g. "order.status_changed".
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"flowerorder/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
)

const DefaultConfirmTimeout = 5 * time.Second

var (
	ErrPublishNacked    = errors.New("broker rejected the message")
	ErrConfirmsDisabled = errors.New("channel is not in confirm mode")
)

// Message is the JSON body of a published event.
type Message struct {
	Event          string    `json:"event"`
	OrderID        string    `json:"orderId"`
	OrderNumber    string    `json:"orderNumber"`
	MemberID       string    `json:"memberId"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previousStatus,omitempty"`
	Actor          string    `json:"actor,omitempty"`
	OccurredAt     time.Time `json:"occurredAt"`
}

func NewMessage(e order.Event) Message {
	return Message{
		Event:          string(e.Name),
		OrderID:        e.OrderID.String(),
		OrderNumber:    e.Number,
		MemberID:       e.MemberID.String(),
		Status:         e.Status.String(),
		PreviousStatus: e.PreviousStatus.String(),
		Actor:          e.Actor,
		OccurredAt:     e.OccurredAt.UTC(),
	}
}

// Confirmation resolves to the broker's ack (true) or nack (false) for one
// published message.
type Confirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

type channel interface {
	PublishWithDeferredConfirmWithContext(
		ctx context.Context,
		exchange, key string,
		mandatory, immediate bool,
		msg amqp.Publishing,
	) (Confirmation, error)
}

// amqpChannel matches every confirm to its own delivery tag, so a confirm that
// arrives after its timeout is never read by a later Publish.
type amqpChannel struct {
	ch *amqp.Channel
}

func (c amqpChannel) PublishWithDeferredConfirmWithContext(
	ctx context.Context,
	exchange, key string,
	mandatory, immediate bool,
	msg amqp.Publishing,
) (Confirmation, error) {
	confirm, err := c.ch.PublishWithDeferredConfirmWithContext(ctx, exchange, key, mandatory, immediate, msg)
	if err != nil {
		return nil, err
	}
	if confirm == nil {
		return nil, ErrConfirmsDisabled
	}
	return confirm, nil
}

// Publisher sends persistent JSON messages and waits for the broker confirm of
// each one. Publish calls are serialized.
type Publisher struct {
	ch       channel
	exchange string
	timeout  time.Duration
	logger   *slog.Logger

	mu     sync.Mutex
	closer func() error
}

func NewPublisher(ch channel, exchange string, logger *slog.Logger) *Publisher {
	return &Publisher{
		ch:       ch,
		exchange: exchange,
		timeout:  DefaultConfirmTimeout,
		logger:   logger.With("component", "event_publisher"),
		closer:   func() error { return nil },
	}
}

// SetConfirmTimeout bounds the wait for each broker confirm.
func (p *Publisher) SetConfirmTimeout(timeout time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.timeout = timeout
}

// Dial connects to url, declares the durable topic exchange and enables
// publisher confirms.
func Dial(url, exchange string, logger *slog.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err = ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	if err = ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("enable confirms: %w", err)
	}

	p := NewPublisher(amqpChannel{ch: ch}, exchange, logger)
	p.closer = func() error {
		return errors.Join(ch.Close(), conn.Close())
	}
	return p, nil
}

// Publish stops at the first event that cannot be delivered.
func (p *Publisher) Publish(ctx context.Context, events ...order.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, e := range events {
		if err := p.publishOne(ctx, e); err != nil {
			return fmt.Errorf("publish %s for order %s: %w", e.Name, e.Number, err)
		}
		p.logger.DebugContext(ctx, "Order event published", "event", e.Name, "order_number", e.Number)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.closer()
}

func (p *Publisher) publishOne(ctx context.Context, e order.Event) error {
	body, err := json.Marshal(NewMessage(e))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	confirm, err := p.ch.PublishWithDeferredConfirmWithContext(ctx, p.exchange, string(e.Name), false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		MessageId:    MessageID(e),
		Timestamp:    e.OccurredAt,
		Body:         body,
	})
	if err != nil {
		return err
	}

	ack, err := confirm.WaitContext(ctx)
	if err != nil {
		return err
	}
	if !ack {
		return ErrPublishNacked
	}
	return nil
}

// MessageID is unique per event: repeated status changes of one order differ
// in status and time.
func MessageID(e order.Event) string {
	return fmt.Sprintf("%s:%s:%s:%d", e.OrderID, e.Name, e.Status, e.OccurredAt.UnixNano())
}
