package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"care-shift-api/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Domain events are the notification hand-off: one event per application
// status transition and per job-type promotion or downgrade. Delivery to
// workers and facilities is entirely the messaging subsystem's concern; the
// engine only publishes.

// Event types.
const (
	TypeApplicationApplied   = "application.applied"
	TypeApplicationScheduled = "application.scheduled"
	TypeApplicationCancelled = "application.cancelled"
	TypeApplicationWorking   = "application.working"
	TypeReviewsOpen          = "application.reviews_open"
	TypeApplicationRated     = "application.rated"
	TypeJobPromoted          = "job.promoted_to_normal"
	TypeJobDowngraded        = "job.weekly_frequency_cleared"
)

// DomainEvent is the wire contract toward the notification subsystem.
type DomainEvent struct {
	EventType     string       `json:"event_type"`
	JobID         uuid.UUID    `json:"job_id"`
	WorkDateID    *uuid.UUID   `json:"work_date_id,omitempty"`
	ApplicationID *uuid.UUID   `json:"application_id,omitempty"`
	Actor         models.Actor `json:"actor"`
	Timestamp     time.Time    `json:"timestamp"`
}

// Publisher emits domain events toward the notification collaborator.
type Publisher interface {
	Publish(ctx context.Context, event DomainEvent) error
}

// RedisPublisher publishes events as JSON on a Redis pub/sub channel.
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

// NewRedisPublisher creates a publisher on the given channel.
func NewRedisPublisher(client *redis.Client, channel string) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel}
}

var _ Publisher = (*RedisPublisher)(nil)

func (p *RedisPublisher) Publish(ctx context.Context, event DomainEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal domain event: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish domain event %s: %w", event.EventType, err)
	}
	return nil
}

// NopPublisher discards events; used when Redis is not configured.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, event DomainEvent) error {
	log.Printf("Event publisher disabled, dropping event %s for job %s", event.EventType, event.JobID)
	return nil
}
