package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Santhosh132-ops/Geo-Fence/module/core/domain"
	"github.com/Santhosh132-ops/Geo-Fence/module/core/internal/repository/publisher"
)

var _ publisher.TransitionPublisher = (*TransitionPublisher)(nil)

const (
	exchangeName = "geofence.events"
	queueName    = "zone_transitions"
)

type TransitionPublisher struct {
	ch *amqp.Channel
}

func NewTransitionPublisher(conn *amqp.Connection) (*TransitionPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchangeName, "fanout", true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(queueName, "", exchangeName, false, nil); err != nil {
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	return &TransitionPublisher{ch: ch}, nil
}

type transitionMessage struct {
	VehicleID string                `json:"vehicle_id"`
	Event     domain.TransitionType `json:"event"`
	ZoneID    string                `json:"zone_id"`
	Location  messageLocation       `json:"location"`
	Timestamp int64                 `json:"timestamp"`
}

type messageLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (p *TransitionPublisher) PublishTransition(ctx context.Context, t *domain.Transition) error {
	msg := transitionMessage{
		VehicleID: t.VehicleID,
		Event:     t.Type,
		ZoneID:    t.ZoneID,
		Location: messageLocation{
			Latitude:  t.Location.Lat,
			Longitude: t.Location.Lng,
		},
		Timestamp: t.Timestamp.Unix(),
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal transition: %w", err)
	}

	return p.ch.PublishWithContext(ctx, exchangeName, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
}
