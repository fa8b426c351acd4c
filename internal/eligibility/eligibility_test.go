package eligibility_test

import (
	"context"
	"fmt"
	"testing"

	"care-shift-api/internal/eligibility"
	"care-shift-api/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEligibilityTest(t *testing.T) (*miniredis.Miniredis, *eligibility.RedisService) {
	t.Helper()
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { client.Close() })
	return s, eligibility.NewRedisService(client)
}

func TestRedisService_IsEligibleForLimitedJob(t *testing.T) {
	s, svc := setupEligibilityTest(t)
	ctx := context.Background()

	eligibleWorker := uuid.New()
	otherWorker := uuid.New()
	s.Set(fmt.Sprintf("worker:%s:eligible:%s", eligibleWorker, models.JobTypeLimitedWorked), "1")

	ok, err := svc.IsEligibleForLimitedJob(ctx, eligibleWorker, models.JobTypeLimitedWorked)
	require.NoError(t, err)
	assert.True(t, ok)

	// Eligibility is per job type, not per worker.
	ok, err = svc.IsEligibleForLimitedJob(ctx, eligibleWorker, models.JobTypeLimitedFavorite)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.IsEligibleForLimitedJob(ctx, otherWorker, models.JobTypeLimitedWorked)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisService_IsBlocked(t *testing.T) {
	s, svc := setupEligibilityTest(t)
	ctx := context.Background()

	facilityID := uuid.New()
	blockedWorker := uuid.New()
	otherWorker := uuid.New()
	s.SAdd(fmt.Sprintf("facility:%s:blocked", facilityID), blockedWorker.String())

	blocked, err := svc.IsBlocked(ctx, blockedWorker, facilityID)
	require.NoError(t, err)
	assert.True(t, blocked)

	blocked, err = svc.IsBlocked(ctx, otherWorker, facilityID)
	require.NoError(t, err)
	assert.False(t, blocked)

	// Block lists are per facility.
	blocked, err = svc.IsBlocked(ctx, blockedWorker, uuid.New())
	require.NoError(t, err)
	assert.False(t, blocked)
}

func TestRedisService_HasEligibleWorkers(t *testing.T) {
	s, svc := setupEligibilityTest(t)
	ctx := context.Background()

	facilityID := uuid.New()
	s.SAdd(fmt.Sprintf("facility:%s:audience:%s", facilityID, models.JobTypeLimitedFavorite), uuid.New().String())

	ok, err := svc.HasEligibleWorkers(ctx, facilityID, models.JobTypeLimitedFavorite)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.HasEligibleWorkers(ctx, facilityID, models.JobTypeLimitedWorked)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.HasEligibleWorkers(ctx, uuid.New(), models.JobTypeLimitedFavorite)
	require.NoError(t, err)
	assert.False(t, ok)
}
