// Package events publishes order lifecycle events for downstream
// consumers (confirmation emails, analytics).
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/verdantgoods/storefront/internal/config"
	"github.com/verdantgoods/storefront/internal/entities"
)

const EventTypeOrderCreated = "order.created"

type OrderItemEvent struct {
	ProductID    int64  `json:"product_id"`
	Quantity     int    `json:"quantity"`
	ProductCost  string `json:"product_cost"`
	ProductTotal string `json:"product_total"`
}

type OrderCreatedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`

	OrderID         int64            `json:"order_id"`
	PaymentIntentID string           `json:"payment_intent_id"`
	UserID          *int64           `json:"user_id,omitempty"`
	Email           string           `json:"email"`
	GrandTotal      string           `json:"grand_total"`
	Items           []OrderItemEvent `json:"items"`
}

type Publisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

func NewPublisher(logger *slog.Logger, cfg config.Kafka) *Publisher {
	return &Publisher{
		logger: logger.With(slog.String("publisher", "kafka")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

// PublishOrderCreated emits an order.created event keyed by order id.
// Delivery retries are the writer's own.
func (p *Publisher) PublishOrderCreated(ctx context.Context, order entities.Order) error {
	event := OrderCreatedEvent{
		EventID:         uuid.New().String(),
		EventType:       EventTypeOrderCreated,
		Timestamp:       time.Now(),
		OrderID:         order.ID,
		PaymentIntentID: order.PaymentIntentID,
		UserID:          order.UserID,
		Email:           order.Email,
		GrandTotal:      order.GrandTotal.StringFixed(2),
	}
	for _, item := range order.Items {
		event.Items = append(event.Items, OrderItemEvent{
			ProductID:    item.ProductID,
			Quantity:     item.Quantity,
			ProductCost:  item.ProductCost.StringFixed(2),
			ProductTotal: item.ProductTotal.StringFixed(2),
		})
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(order.ID, 10)),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	p.logger.DebugContext(ctx, "published event",
		slog.String("type", EventTypeOrderCreated),
		slog.Int64("order_id", order.ID),
	)
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
