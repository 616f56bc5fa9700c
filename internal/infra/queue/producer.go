package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/nexus-prive/internal/entity"
)

type EventType string

const (
	EventCaptured      EventType = "mandate.captured"
	EventStatusChanged EventType = "mandate.status_changed"
)

// MandateEvent is published whenever the pipeline changes.
type MandateEvent struct {
	Type             EventType           `json:"type"`
	LeadID           string              `json:"lead_id"`
	ClientName       string              `json:"client_name"`
	Email            string              `json:"email"`
	Residency        entity.Residency    `json:"residency"`
	Status           entity.MandateLevel `json:"status"`
	PreviousStatus   entity.MandateLevel `json:"previous_status,omitempty"`
	EstimatedValue   int64               `json:"estimated_value"`
	PropertyInterest string              `json:"property_interest,omitempty"`
	ChangedBy        entity.Role         `json:"changed_by,omitempty"`
	OccurredAt       time.Time           `json:"occurred_at"`
}

func (e MandateEvent) RoutingKey() string {
	return string(e.Type)
}

func CapturedEvent(l entity.Lead) MandateEvent {
	return MandateEvent{
		Type:             EventCaptured,
		LeadID:           l.ID,
		ClientName:       l.FullName(),
		Email:            l.Email,
		Residency:        l.ResidencyStatus,
		Status:           l.Status,
		EstimatedValue:   l.EstimatedValue,
		PropertyInterest: l.PropertyInterest,
		OccurredAt:       l.Timestamp,
	}
}

func StatusChangedEvent(l entity.Lead, previous entity.MandateLevel, by entity.Role, at time.Time) MandateEvent {
	return MandateEvent{
		Type:             EventStatusChanged,
		LeadID:           l.ID,
		ClientName:       l.FullName(),
		Email:            l.Email,
		Residency:        l.ResidencyStatus,
		Status:           l.Status,
		PreviousStatus:   previous,
		EstimatedValue:   l.EstimatedValue,
		PropertyInterest: l.PropertyInterest,
		ChangedBy:        by,
		OccurredAt:       at.UTC(),
	}
}

// Publisher is the part of an AMQP channel the producer needs.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type Producer struct {
	Ch Publisher
}

func NewProducer(ch Publisher) *Producer {
	return &Producer{Ch: ch}
}

func (p *Producer) PublishMandateEvent(ctx context.Context, event MandateEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode mandate event: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		event.RoutingKey(),
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.OccurredAt,
			Type:         string(event.Type),
		},
	)
	if err != nil {
		return fmt.Errorf("publish %s: %w", event.Type, err)
	}

	return nil
}
