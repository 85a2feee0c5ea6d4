// Package events publishes onboarding domain events to a topic exchange
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"onboarding-backend/internal/logger"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
)

// ExchangeName is the topic exchange all onboarding events go to
const ExchangeName = "onboarding"

// Routing keys
const (
	NewHireCreated    = "new_hire.created"
	NewHireDeleted    = "new_hire.deleted"
	TaskStatusChanged = "task.status_changed"
	PlanRegenerated   = "plan.regenerated"
	FeedbackSubmitted = "feedback.submitted"
)

// Envelope is the JSON body of every event
type Envelope struct {
	Event      string      `json:"event"`
	OccurredAt time.Time   `json:"occurred_at"`
	NewHireID  uuid.UUID   `json:"new_hire_id"`
	Data       interface{} `json:"data,omitempty"`
}

// NewEnvelope stamps an event with the current time
func NewEnvelope(event string, newHireID uuid.UUID, data interface{}) Envelope {
	return Envelope{
		Event:      event,
		OccurredAt: time.Now().UTC(),
		NewHireID:  newHireID,
		Data:       data,
	}
}

// Publisher sends events
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
}

// AMQPPublisher publishes persistent JSON messages to RabbitMQ.
// A dropped connection is re-dialed on the next Publish.
type AMQPPublisher struct {
	mu      sync.Mutex
	url     string
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

var _ Publisher = (*AMQPPublisher)(nil)

// NewAMQPPublisher dials the broker and declares the exchange
func NewAMQPPublisher(url string) (*AMQPPublisher, error) {
	p := &AMQPPublisher{url: url}
	if err := p.connect(); err != nil {
		return nil, err
	}
	return p, nil
}

// connect replaces the connection and channel; callers hold mu or own p exclusively
func (p *AMQPPublisher) connect() error {
	conn, err := amqp091.Dial(p.url)
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to open channel: %w", err)
	}

	if err := declareExchange(ch); err != nil {
		ch.Close()
		conn.Close()
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	p.conn = conn
	p.channel = ch
	return nil
}

func (p *AMQPPublisher) connected() bool {
	return p.conn != nil && p.channel != nil && !p.conn.IsClosed() && !p.channel.IsClosed()
}

func declareExchange(ch *amqp091.Channel) error {
	return ch.ExchangeDeclare(
		ExchangeName,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
}

// Publish marshals payload to JSON and publishes it under routingKey
func (p *AMQPPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode event %s: %w", routingKey, err)
	}

	// channels are not safe for concurrent publishing
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.connected() {
		p.closeLocked()
		if err := p.connect(); err != nil {
			return fmt.Errorf("failed to reconnect before publishing %s: %w", routingKey, err)
		}
		logger.WithContext(ctx).Component("events").Info("Reconnected to RabbitMQ")
	}

	err = p.channel.PublishWithContext(
		ctx,
		ExchangeName,
		routingKey,
		false,
		false,
		amqp091.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", routingKey, err)
	}

	logger.WithContext(ctx).Component("events").WithField("routing_key", routingKey).Debug("Event published")
	return nil
}

// IsConnected reports whether the broker connection is still open
func (p *AMQPPublisher) IsConnected() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.connected()
}

// Close closes the channel and the connection
func (p *AMQPPublisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closeLocked()
}

func (p *AMQPPublisher) closeLocked() {
	if p.channel != nil {
		_ = p.channel.Close()
		p.channel = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

// NoopPublisher drops every event
type NoopPublisher struct{}

var _ Publisher = NoopPublisher{}

func (NoopPublisher) Publish(context.Context, string, interface{}) error { return nil }

// RecordingPublisher keeps published events in memory
type RecordingPublisher struct {
	mu     sync.Mutex
	Events []Recorded
}

// Recorded is one captured event
type Recorded struct {
	RoutingKey string
	Payload    interface{}
}

var _ Publisher = (*RecordingPublisher)(nil)

func (r *RecordingPublisher) Publish(_ context.Context, routingKey string, payload interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, Recorded{RoutingKey: routingKey, Payload: payload})
	return nil
}

// Keys returns the routing keys in publish order
func (r *RecordingPublisher) Keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	keys := make([]string, 0, len(r.Events))
	for _, e := range r.Events {
		keys = append(keys, e.RoutingKey)
	}
	return keys
}
