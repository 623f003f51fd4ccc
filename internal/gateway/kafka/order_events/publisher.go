package order_events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/diegoamaro-sudo/levaali/internal/entities"
)

// statusChangedEvent тело сообщения в топике order.status.changed.
// Ключ партиционирования OrderID: события одного заказа читаются по порядку.
type statusChangedEvent struct {
	OrderID         string    `json:"order_id"`
	EstablishmentID string    `json:"establishment_id"`
	DriverID        string    `json:"driver_id,omitempty"`
	Status          string    `json:"status"`
	OccurredAt      time.Time `json:"occurred_at"`
}

type Publisher struct {
	producer producer
	topic    string
}

func New(producer producer, topic string) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
	}
}

func (p *Publisher) PublishStatusChanged(_ context.Context, order *entities.Order) error {
	event := statusChangedEvent{
		OrderID:         order.ID,
		EstablishmentID: order.EstablishmentID,
		DriverID:        order.DriverID,
		Status:          order.Status.String(),
		OccurredAt:      time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("gateway order events, marshal: %w", err)
	}

	err = p.producer.Send(p.topic, order.ID, payload)
	if err != nil {
		return fmt.Errorf("gateway order events, publish %s: %w", order.ID, err)
	}

	return nil
}
