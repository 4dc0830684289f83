package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/JoseSC30/superburguer-miniapp/internal/config"
	"github.com/JoseSC30/superburguer-miniapp/internal/models"
)

// EventType identifies the kind of order event.
type EventType string

const (
	EventTypeOrderCreated       EventType = "order.created"
	EventTypeOrderStatusChanged EventType = "order.status_changed"
)

// OrderEvent is the envelope published for every order mutation.
type OrderEvent struct {
	ID             string             `json:"id"`
	Type           EventType          `json:"type"`
	OrderID        int64              `json:"order_id"`
	RequesterID    string             `json:"requester_id"`
	PreviousStatus models.OrderStatus `json:"previous_status,omitempty"`
	Order          *models.Order      `json:"order"`
	Timestamp      time.Time          `json:"timestamp"`
}

// Publisher emits order events. Publishing is best-effort everywhere: a
// failed publish is logged by the caller and never fails the request.
type Publisher interface {
	PublishOrderCreated(ctx context.Context, order *models.Order) error
	PublishOrderStatusChanged(ctx context.Context, order *models.Order, previous models.OrderStatus) error
	Close() error
}

// KafkaPublisher publishes order events to Kafka.
type KafkaPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

func NewKafkaPublisher(cfg config.KafkaConfig, logger *slog.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.OrdersTopic,
		Balancer:     &kafka.LeastBytes{},
		WriteTimeout: 10 * time.Second,
		RequiredAcks: kafka.RequireOne,
	}

	return &KafkaPublisher{
		writer: writer,
		logger: logger,
	}
}

func (p *KafkaPublisher) PublishOrderCreated(ctx context.Context, order *models.Order) error {
	return p.publish(ctx, OrderEvent{
		ID:          uuid.NewString(),
		Type:        EventTypeOrderCreated,
		OrderID:     order.ID,
		RequesterID: order.RequesterID,
		Order:       order,
		Timestamp:   time.Now().UTC(),
	})
}

func (p *KafkaPublisher) PublishOrderStatusChanged(ctx context.Context, order *models.Order, previous models.OrderStatus) error {
	return p.publish(ctx, OrderEvent{
		ID:             uuid.NewString(),
		Type:           EventTypeOrderStatusChanged,
		OrderID:        order.ID,
		RequesterID:    order.RequesterID,
		PreviousStatus: previous,
		Order:          order,
		Timestamp:      time.Now().UTC(),
	})
}

func (p *KafkaPublisher) publish(ctx context.Context, event OrderEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.RequesterID),
		Value: value,
	})
	if err != nil {
		p.logger.Error("failed to publish event",
			"type", event.Type,
			"order_id", event.OrderID,
			"error", err,
		)
		return err
	}

	p.logger.Debug("event published", "type", event.Type, "order_id", event.OrderID)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher is used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) PublishOrderCreated(ctx context.Context, order *models.Order) error {
	return nil
}

func (NopPublisher) PublishOrderStatusChanged(ctx context.Context, order *models.Order, previous models.OrderStatus) error {
	return nil
}

func (NopPublisher) Close() error { return nil }

// MockPublisher records events for tests.
type MockPublisher struct {
	Events []OrderEvent
}

func NewMockPublisher() *MockPublisher {
	return &MockPublisher{Events: make([]OrderEvent, 0)}
}

func (m *MockPublisher) PublishOrderCreated(ctx context.Context, order *models.Order) error {
	m.Events = append(m.Events, OrderEvent{Type: EventTypeOrderCreated, OrderID: order.ID, Order: order})
	return nil
}

func (m *MockPublisher) PublishOrderStatusChanged(ctx context.Context, order *models.Order, previous models.OrderStatus) error {
	m.Events = append(m.Events, OrderEvent{
		Type:           EventTypeOrderStatusChanged,
		OrderID:        order.ID,
		PreviousStatus: previous,
		Order:          order,
	})
	return nil
}

func (m *MockPublisher) Close() error { return nil }
