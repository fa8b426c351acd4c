package events_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"care-shift-api/internal/events"
	"care-shift-api/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPublisherTest(t *testing.T) (*redis.Client, *events.RedisPublisher) {
	t.Helper()
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { client.Close() })
	return client, events.NewRedisPublisher(client, "staffing.events")
}

func TestRedisPublisher_PublishesJSONOnChannel(t *testing.T) {
	client, publisher := setupPublisherTest(t)
	ctx := context.Background()

	sub := client.Subscribe(ctx, "staffing.events")
	t.Cleanup(func() { sub.Close() })
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	jobID := uuid.New()
	workDateID := uuid.New()
	applicationID := uuid.New()
	err = publisher.Publish(ctx, events.DomainEvent{
		EventType:     events.TypeApplicationScheduled,
		JobID:         jobID,
		WorkDateID:    &workDateID,
		ApplicationID: &applicationID,
		Actor:         models.ActorFacility,
	})
	require.NoError(t, err)

	select {
	case msg := <-sub.Channel():
		var got events.DomainEvent
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
		assert.Equal(t, events.TypeApplicationScheduled, got.EventType)
		assert.Equal(t, jobID, got.JobID)
		require.NotNil(t, got.ApplicationID)
		assert.Equal(t, applicationID, *got.ApplicationID)
		assert.Equal(t, models.ActorFacility, got.Actor)
		assert.False(t, got.Timestamp.IsZero())
	case <-time.After(2 * time.Second):
		t.Fatal("no event received on channel")
	}
}

func TestRedisPublisher_KeepsCallerTimestamp(t *testing.T) {
	client, publisher := setupPublisherTest(t)
	ctx := context.Background()

	sub := client.Subscribe(ctx, "staffing.events")
	t.Cleanup(func() { sub.Close() })
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	stamp := time.Date(2026, time.September, 1, 9, 30, 0, 0, time.UTC)
	err = publisher.Publish(ctx, events.DomainEvent{
		EventType: events.TypeJobPromoted,
		JobID:     uuid.New(),
		Actor:     models.ActorSystem,
		Timestamp: stamp,
	})
	require.NoError(t, err)

	select {
	case msg := <-sub.Channel():
		var got events.DomainEvent
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
		assert.True(t, stamp.Equal(got.Timestamp))
	case <-time.After(2 * time.Second):
		t.Fatal("no event received on channel")
	}
}

func TestRedisPublisher_ErrorWhenRedisDown(t *testing.T) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { client.Close() })
	publisher := events.NewRedisPublisher(client, "staffing.events")

	s.Close()

	err := publisher.Publish(context.Background(), events.DomainEvent{
		EventType: events.TypeApplicationApplied,
		JobID:     uuid.New(),
		Actor:     models.ActorWorker,
	})
	assert.Error(t, err)
}

func TestNopPublisher_DiscardsWithoutError(t *testing.T) {
	err := events.NopPublisher{}.Publish(context.Background(), events.DomainEvent{
		EventType: events.TypeApplicationApplied,
		JobID:     uuid.New(),
	})
	assert.NoError(t, err)
}
